package escrow

import (
	"context"

	"github.com/holiman/uint256"

	"github.com/paulrouge/multitoken-presale/internal/presale/model"
	"github.com/paulrouge/multitoken-presale/internal/presale/store"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type Payments interface {
	Transfer(tx store.Tx, to model.Address, amount *uint256.Int) error
}

type Queue interface {
	Push(tx store.Tx, payload []byte) (uint64, error)
}

// Settler delivers a committed route instruction to the downstream escrow service.
// Implementations must tolerate redelivery of the same Seq.
type Settler interface {
	Settle(ctx context.Context, route model.EscrowRoute) error
}
