package clickhouse

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/holiman/uint256"
	"github.com/paulrouge/multitoken-presale/internal/presale/model"
)

// InsertPurchases stores purchase events. Rows are keyed by (collection, token_id),
// so a redelivered event replaces its earlier copy.
func (r *Repository) InsertPurchases(ctx context.Context, purchases []model.Purchase) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_purchases", firstCollection(purchases), err, start)
	}()

	if len(purchases) == 0 {
		return nil
	}

	const query = `
INSERT INTO presale_purchases (
	collection,
	event,
	topic,
	phase,
	buyer,
	token_id,
	unit_price,
	service_fee,
	net_price,
	timestamp
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare purchases batch: %w", err)
	}

	for _, p := range purchases {
		if err = batch.Append(
			p.Collection,
			string(p.Event),
			p.Topic.Hex(),
			string(p.Phase),
			p.Buyer.Hex(),
			p.TokenID,
			toBig(p.UnitPrice),
			toBig(p.ServiceFee),
			toBig(p.NetPrice),
			p.Timestamp,
		); err != nil {
			return fmt.Errorf("append purchase: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert purchases: %w", err)
	}
	return nil
}

func toBig(v *uint256.Int) *big.Int {
	if v == nil {
		return new(big.Int)
	}
	return v.ToBig()
}

func fromBig(v *big.Int) (*uint256.Int, error) {
	if v == nil {
		return new(uint256.Int), nil
	}
	out, overflow := uint256.FromBig(v)
	if overflow {
		return nil, fmt.Errorf("amount %s overflows 256 bits", v)
	}
	return out, nil
}

func firstCollection[T any](items []T) string {
	if len(items) == 0 {
		return ""
	}

	switch v := any(items[0]).(type) {
	case model.Purchase:
		return v.Collection
	case model.AuditRecord:
		return v.Collection
	default:
		return ""
	}
}
