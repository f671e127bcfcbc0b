// Package audit keeps a best-effort trail of administrative calls.
package audit

import (
	"context"
	"time"

	"github.com/paulrouge/multitoken-presale/internal/presale/model"
	"github.com/paulrouge/multitoken-presale/pkg/batcher"
	"go.uber.org/zap"
)

const (
	defaultFlushSize     = 100
	defaultFlushInterval = 2 * time.Second
	// enqueueTimeout bounds how long Record waits for room in a full buffer.
	enqueueTimeout = 50 * time.Millisecond
)

// Recorder batches audit records into the repository.
// A lost record is logged and never reported back to the caller.
type Recorder struct {
	batcher *batcher.Batcher[model.AuditRecord]
	logger  *zap.Logger
}

func NewRecorder(repo Repository, cfg batcher.Config, logger *zap.Logger) *Recorder {
	if cfg.FlushSize <= 0 {
		cfg.FlushSize = defaultFlushSize
	}
	if cfg.FlushInterval <= 0 {
		cfg.FlushInterval = defaultFlushInterval
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.Named("audit")
	return &Recorder{
		batcher: batcher.New(logger, repo.InsertAuditRecords, cfg),
		logger:  logger,
	}
}

// Start begins flushing in the background.
func (r *Recorder) Start(ctx context.Context) {
	r.batcher.Start(ctx)
}

// Stop flushes queued records and stops the recorder.
func (r *Recorder) Stop() {
	r.batcher.Stop()
}

// Record queues rec for the next flush. It waits at most enqueueTimeout and ignores
// cancellation of ctx, since the call being audited has already completed.
func (r *Recorder) Record(ctx context.Context, rec model.AuditRecord) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), enqueueTimeout)
	defer cancel()
	if err := r.batcher.Add(ctx, rec); err != nil {
		r.logger.Warn("audit record dropped",
			zap.String("operation", rec.Operation),
			zap.Stringer("caller", rec.Caller),
			zap.Error(err),
		)
	}
}
