// Package escrow forwards net sale proceeds to the escrow router.
package escrow

import (
	"encoding/json"
	"fmt"

	"github.com/holiman/uint256"

	"github.com/paulrouge/multitoken-presale/internal/presale/model"
	"github.com/paulrouge/multitoken-presale/internal/presale/store"
)

// Router credits the escrow and queues a settlement instruction in the same transaction,
// so a rolled back call neither pays nor instructs the escrow.
type Router struct {
	payments Payments
	routes   Queue
}

// NewRouter constructs a Router.
func NewRouter(payments Payments, routes Queue) *Router {
	return &Router{payments: payments, routes: routes}
}

// Route forwards amount to escrow on behalf of buyer, naming treasury for downstream settlement.
func (r *Router) Route(tx store.Tx, escrow model.Address, amount *uint256.Int, buyer, treasury model.Address, tokenID uint64) error {
	if escrow == model.ZeroAddress {
		return fmt.Errorf("%w: escrow router is not set", model.ErrInvalidConfiguration)
	}
	if err := r.payments.Transfer(tx, escrow, amount); err != nil {
		return fmt.Errorf("transfer to escrow: %w", err)
	}

	payload, err := json.Marshal(model.EscrowRoute{
		Escrow:   escrow,
		Amount:   amount,
		Buyer:    buyer,
		Treasury: treasury,
		TokenID:  tokenID,
	})
	if err != nil {
		return fmt.Errorf("marshal route: %w", err)
	}
	if _, err := r.routes.Push(tx, payload); err != nil {
		return fmt.Errorf("push route: %w", err)
	}
	return nil
}

// DecodeRoute restores a queued route and stamps it with its outbox sequence.
func DecodeRoute(seq uint64, payload []byte) (model.EscrowRoute, error) {
	var route model.EscrowRoute
	if err := json.Unmarshal(payload, &route); err != nil {
		return model.EscrowRoute{}, fmt.Errorf("unmarshal route %d: %w", seq, err)
	}
	route.Seq = seq
	return route, nil
}
