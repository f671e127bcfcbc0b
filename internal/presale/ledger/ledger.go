// Package ledger keeps multi-token balances and metadata URIs.
package ledger

import (
	"fmt"

	"github.com/paulrouge/multitoken-presale/internal/presale/model"
	"github.com/paulrouge/multitoken-presale/internal/presale/store"
)

const (
	balancePrefix = "ledger/balance"
	supplyPrefix  = "ledger/supply"
	uriPrefix     = "ledger/uri"
)

// Ledger owns the token-id to owner/quantity mapping and the token-id to URI mapping.
// It does not re-validate sale rules.
type Ledger struct{}

// New returns a ledger.
func New() *Ledger {
	return &Ledger{}
}

// Mint issues quantity units of id to the given owner.
func (l *Ledger) Mint(tx store.Tx, to model.Address, id, quantity uint64) error {
	if to == model.ZeroAddress {
		return fmt.Errorf("mint token %d: mint to the zero address", id)
	}
	if quantity == 0 {
		return fmt.Errorf("mint token %d: zero quantity", id)
	}

	balance, err := store.GetUint64(tx, store.Key(balancePrefix, id, to))
	if err != nil {
		return fmt.Errorf("get balance: %w", err)
	}
	supply, err := store.GetUint64(tx, store.Key(supplyPrefix, id))
	if err != nil {
		return fmt.Errorf("get supply: %w", err)
	}
	if balance+quantity < balance || supply+quantity < supply {
		return fmt.Errorf("mint token %d: quantity overflow", id)
	}

	if err := store.PutUint64(tx, store.Key(balancePrefix, id, to), balance+quantity); err != nil {
		return fmt.Errorf("put balance: %w", err)
	}
	if err := store.PutUint64(tx, store.Key(supplyPrefix, id), supply+quantity); err != nil {
		return fmt.Errorf("put supply: %w", err)
	}
	return nil
}

// SetTokenURI overwrites the metadata URI of id.
func (l *Ledger) SetTokenURI(tx store.Tx, id uint64, uri string) error {
	if err := store.PutString(tx, store.Key(uriPrefix, id), uri); err != nil {
		return fmt.Errorf("put uri: %w", err)
	}
	return nil
}

// BalanceOf returns the quantity of id held by owner.
func (l *Ledger) BalanceOf(r store.Reader, owner model.Address, id uint64) (uint64, error) {
	return store.GetUint64(r, store.Key(balancePrefix, id, owner))
}

// TotalSupply returns the issued quantity of id.
func (l *Ledger) TotalSupply(r store.Reader, id uint64) (uint64, error) {
	return store.GetUint64(r, store.Key(supplyPrefix, id))
}

// TokenURI returns the metadata URI of id, or an empty string when none is set.
func (l *Ledger) TokenURI(r store.Reader, id uint64) (string, error) {
	uri, _, err := store.GetString(r, store.Key(uriPrefix, id))
	return uri, err
}
