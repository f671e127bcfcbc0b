package relay

import (
	"context"
	"fmt"
	"time"

	"github.com/paulrouge/multitoken-presale/internal/presale/escrow"
	"github.com/paulrouge/multitoken-presale/internal/presale/model"
	"github.com/paulrouge/multitoken-presale/internal/presale/outbox"
	"github.com/paulrouge/multitoken-presale/pkg/workerpool"
	"go.uber.org/zap"
)

// EscrowSettlement forwards route instructions to the escrow service concurrently.
type EscrowSettlement struct {
	settler     Settler
	workerCount int
	metrics     EntryMetrics
	logger      *zap.Logger
}

func NewEscrowSettlement(settler Settler, workerCount int, metrics EntryMetrics, logger *zap.Logger) *EscrowSettlement {
	if workerCount <= 0 {
		workerCount = defaultSettleWorkerCount
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EscrowSettlement{
		settler:     settler,
		workerCount: workerCount,
		metrics:     metrics,
		logger:      logger,
	}
}

// Handle settles every route and reports the prefix that settled before the first failure.
// Routes after a failure may already be settled; the settler tolerates their redelivery.
func (h *EscrowSettlement) Handle(ctx context.Context, entries []outbox.Entry) (uint64, error) {
	if len(entries) == 0 {
		return 0, nil
	}

	routes := make([]model.EscrowRoute, 0, len(entries))
	for _, entry := range entries {
		route, err := escrow.DecodeRoute(entry.Seq, entry.Payload)
		if err != nil {
			h.logger.Error("skipping undecodable route", zap.Uint64("seq", entry.Seq), zap.Error(err))
			continue
		}
		routes = append(routes, route)
	}

	errs := workerpool.Each(ctx, h.workerCount, routes, h.settle)
	failed := workerpool.FirstFailure(errs)
	if failed == len(routes) {
		return entries[len(entries)-1].Seq, nil
	}

	return routes[failed].Seq - 1, fmt.Errorf("settle route %d: %w", routes[failed].Seq, errs[failed])
}

func (h *EscrowSettlement) settle(ctx context.Context, route model.EscrowRoute) error {
	started := time.Now()
	err := h.settler.Settle(ctx, route)
	h.metrics.ObserveProcessEntry(err, route.Seq, started)
	if err != nil {
		h.logger.Warn("settle route failed",
			zap.Uint64("seq", route.Seq),
			zap.Stringer("escrow", route.Escrow),
			zap.Error(err),
		)
	}
	return err
}
