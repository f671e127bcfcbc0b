package clickhouse

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/paulrouge/multitoken-presale/internal/presale/model"
)

// PurchasesByBuyer returns the purchases of one buyer in token id order.
func (r *Repository) PurchasesByBuyer(ctx context.Context, collection string, buyer model.Address) ([]model.Purchase, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("purchases_by_buyer", collection, err, start)
	}()

	const query = `
SELECT
	event,
	topic,
	phase,
	token_id,
	unit_price,
	service_fee,
	net_price,
	timestamp
FROM presale_purchases FINAL
WHERE collection = ? AND buyer = ?
ORDER BY token_id ASC`

	rows, err := r.conn.Query(ctx, query, collection, buyer.Hex())
	if err != nil {
		return nil, fmt.Errorf("query purchases by buyer: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", cerr)
		}
	}()

	var purchases []model.Purchase
	for rows.Next() {
		var (
			event, topic   string
			phase          string
			unit, fee, net big.Int
			purchase       model.Purchase
		)
		if err = rows.Scan(
			&event,
			&topic,
			&phase,
			&purchase.TokenID,
			&unit,
			&fee,
			&net,
			&purchase.Timestamp,
		); err != nil {
			return nil, fmt.Errorf("scan purchase: %w", err)
		}

		purchase.Collection = collection
		purchase.Buyer = buyer
		purchase.Event = model.EventName(event)
		purchase.Topic = common.HexToHash(topic)
		purchase.Phase = model.Phase(phase)
		if purchase.UnitPrice, err = fromBig(&unit); err != nil {
			return nil, fmt.Errorf("decode unit price: %w", err)
		}
		if purchase.ServiceFee, err = fromBig(&fee); err != nil {
			return nil, fmt.Errorf("decode service fee: %w", err)
		}
		if purchase.NetPrice, err = fromBig(&net); err != nil {
			return nil, fmt.Errorf("decode net price: %w", err)
		}

		purchases = append(purchases, purchase)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate purchases: %w", err)
	}

	return purchases, nil
}
