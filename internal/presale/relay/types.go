package relay

import (
	"context"
	"time"

	"github.com/paulrouge/multitoken-presale/internal/presale/model"
	"github.com/paulrouge/multitoken-presale/internal/presale/outbox"
	"github.com/paulrouge/multitoken-presale/internal/presale/store"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Queue interface {
		Topic() string
		Pending(r store.Reader, limit int) ([]outbox.Entry, error)
		Ack(tx store.Tx, seq uint64) error
	}

	// Handler delivers entries in seq order and returns the highest seq of the delivered
	// prefix, or zero when nothing was delivered.
	Handler interface {
		Handle(ctx context.Context, entries []outbox.Entry) (uint64, error)
	}

	Metrics interface {
		ObserveFetch(err error, started time.Time)
		ObserveProcessBatch(err error, entries int, started time.Time)
		ObserveProcessEntry(err error, seq uint64, started time.Time)
		ObserveAck(seq uint64)
	}

	EntryMetrics interface {
		ObserveProcessEntry(err error, seq uint64, started time.Time)
	}

	PurchaseRepository interface {
		InsertPurchases(ctx context.Context, purchases []model.Purchase) error
	}

	Settler interface {
		Settle(ctx context.Context, route model.EscrowRoute) error
	}
)
