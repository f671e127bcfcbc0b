package sale

import (
	"context"
	"time"

	"github.com/holiman/uint256"

	"github.com/paulrouge/multitoken-presale/internal/presale/model"
	"github.com/paulrouge/multitoken-presale/internal/presale/store"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	TokenLedger interface {
		Mint(tx store.Tx, to model.Address, id, quantity uint64) error
		SetTokenURI(tx store.Tx, id uint64, uri string) error
		BalanceOf(r store.Reader, owner model.Address, id uint64) (uint64, error)
		TokenURI(r store.Reader, id uint64) (string, error)
	}
	Payments interface {
		Transfer(tx store.Tx, to model.Address, amount *uint256.Int) error
	}
	EscrowRouter interface {
		Route(tx store.Tx, escrow model.Address, amount *uint256.Int, buyer, treasury model.Address, tokenID uint64) error
	}
	EventQueue interface {
		Push(tx store.Tx, payload []byte) (uint64, error)
	}
	Whitelist interface {
		Add(tx store.Tx, addr model.Address) error
		Remove(tx store.Tx, addr model.Address) error
		Contains(r store.Reader, addr model.Address) (bool, error)
		Enumerate(r store.Reader) ([]model.Address, error)
	}
	Auditor interface {
		Record(ctx context.Context, rec model.AuditRecord)
	}
	ControllerMetrics interface {
		Observe(operation string, err error, started time.Time)
		ObserveMinted(phase model.Phase, units uint64)
	}
)
