// Package relay delivers committed outbox entries to their downstream sinks.
package relay

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/paulrouge/multitoken-presale/internal/clock"
	"github.com/paulrouge/multitoken-presale/internal/presale/outbox"
	"github.com/paulrouge/multitoken-presale/internal/presale/store"
	"go.uber.org/zap"
)

// Config tunes a relay loop. Zero values fall back to defaults.
type Config struct {
	BatchSize         int
	SleepDuration     time.Duration
	IdleSleepDuration time.Duration
}

// Service polls one outbox topic, hands pending entries to a Handler and acknowledges
// what was delivered. Entries are delivered at least once.
type Service struct {
	logger            *zap.Logger
	store             store.Store
	queue             Queue
	handler           Handler
	metrics           Metrics
	sleep             func(context.Context, time.Duration) error
	sleepDuration     time.Duration
	idleSleepDuration time.Duration
	batchSize         int
}

// NewService builds a relay for queue.
func NewService(
	st store.Store,
	queue Queue,
	handler Handler,
	metrics Metrics,
	cfg Config,
	logger *zap.Logger,
) (*Service, error) {
	if st == nil {
		return nil, errors.New("relay store is required")
	}
	if queue == nil {
		return nil, errors.New("relay queue is required")
	}
	if handler == nil {
		return nil, errors.New("relay handler is required")
	}
	if metrics == nil {
		return nil, errors.New("relay metrics is required")
	}
	if logger == nil {
		return nil, errors.New("relay logger is required")
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = defaultBatchSize
	}
	if cfg.SleepDuration <= 0 {
		cfg.SleepDuration = sleepDuration
	}
	if cfg.IdleSleepDuration <= 0 {
		cfg.IdleSleepDuration = idleSleepDuration
	}

	return &Service{
		logger:            logger.With(zap.String("topic", queue.Topic())),
		store:             st,
		queue:             queue,
		handler:           handler,
		metrics:           metrics,
		sleep:             clock.SleepWithContext,
		sleepDuration:     cfg.SleepDuration,
		idleSleepDuration: cfg.IdleSleepDuration,
		batchSize:         cfg.BatchSize,
	}, nil
}

// Run delivers entries until the context is canceled.
func (s *Service) Run(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := s.run(ctx); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			s.logger.Warn("relay iteration failed, backing off", zap.Error(err), zap.Duration("sleep", s.sleepDuration))
			if sleepErr := s.sleep(ctx, s.sleepDuration); sleepErr != nil {
				return sleepErr
			}
		}
	}
}

func (s *Service) run(ctx context.Context) error {
	started := time.Now()
	entries, err := s.fetch(ctx)
	s.metrics.ObserveFetch(err, started)
	if err != nil {
		s.logger.Error("fetch pending entries failed", zap.Error(err))
		return err
	}

	if len(entries) == 0 {
		return s.sleep(ctx, s.idleSleepDuration)
	}

	started = time.Now()
	delivered, err := s.handler.Handle(ctx, entries)
	s.metrics.ObserveProcessBatch(err, len(entries), started)
	if delivered > 0 {
		if ackErr := s.ack(ctx, delivered); ackErr != nil {
			return errors.Join(err, ackErr)
		}
	}
	if err != nil {
		return fmt.Errorf("deliver batch from seq %d: %w", entries[0].Seq, err)
	}

	s.logger.Debug("delivered batch",
		zap.Uint64("first_seq", entries[0].Seq),
		zap.Uint64("last_seq", delivered),
	)

	// a full batch means more entries are likely waiting
	if len(entries) >= s.batchSize {
		return nil
	}
	return s.sleep(ctx, s.idleSleepDuration)
}

func (s *Service) fetch(ctx context.Context) ([]outbox.Entry, error) {
	var entries []outbox.Entry
	err := s.store.View(ctx, func(r store.Reader) error {
		var err error
		entries, err = s.queue.Pending(r, s.batchSize)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("read pending entries: %w", err)
	}
	return entries, nil
}

func (s *Service) ack(ctx context.Context, seq uint64) error {
	if err := s.store.Update(ctx, func(tx store.Tx) error {
		return s.queue.Ack(tx, seq)
	}); err != nil {
		return fmt.Errorf("ack seq %d: %w", seq, err)
	}
	s.metrics.ObserveAck(seq)
	return nil
}
