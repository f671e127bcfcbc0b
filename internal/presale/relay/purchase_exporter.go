package relay

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/paulrouge/multitoken-presale/internal/presale/model"
	"github.com/paulrouge/multitoken-presale/internal/presale/outbox"
	"go.uber.org/zap"
)

// PurchaseExporter copies purchase events into the analytics repository.
type PurchaseExporter struct {
	repo   PurchaseRepository
	logger *zap.Logger
}

func NewPurchaseExporter(repo PurchaseRepository, logger *zap.Logger) *PurchaseExporter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PurchaseExporter{repo: repo, logger: logger}
}

// Handle inserts the whole batch at once. Undecodable payloads are logged and skipped.
func (e *PurchaseExporter) Handle(ctx context.Context, entries []outbox.Entry) (uint64, error) {
	if len(entries) == 0 {
		return 0, nil
	}

	purchases := make([]model.Purchase, 0, len(entries))
	for _, entry := range entries {
		var purchase model.Purchase
		if err := json.Unmarshal(entry.Payload, &purchase); err != nil {
			e.logger.Error("skipping undecodable purchase", zap.Uint64("seq", entry.Seq), zap.Error(err))
			continue
		}
		purchases = append(purchases, purchase)
	}

	if err := e.repo.InsertPurchases(ctx, purchases); err != nil {
		return 0, fmt.Errorf("export purchases: %w", err)
	}
	return entries[len(entries)-1].Seq, nil
}
