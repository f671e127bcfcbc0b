// Package bank keeps native currency balances credited by the sale.
package bank

import (
	"fmt"

	"github.com/holiman/uint256"

	"github.com/paulrouge/multitoken-presale/internal/presale/model"
	"github.com/paulrouge/multitoken-presale/internal/presale/store"
)

const balancePrefix = "bank/balance"

// Bank credits payments that were attached to a call. The attached value is already held,
// so a transfer only moves it to the destination.
type Bank struct{}

// New returns a bank.
func New() *Bank {
	return &Bank{}
}

// Transfer credits amount to the destination.
func (b *Bank) Transfer(tx store.Tx, to model.Address, amount *uint256.Int) error {
	if to == model.ZeroAddress {
		return fmt.Errorf("transfer %s: destination is the zero address", amount.Dec())
	}
	if amount.IsZero() {
		return nil
	}

	key := store.Key(balancePrefix, to)
	balance, err := store.GetAmount(tx, key)
	if err != nil {
		return fmt.Errorf("get balance: %w", err)
	}
	if _, overflow := balance.AddOverflow(balance, amount); overflow {
		return fmt.Errorf("transfer %s to %s: balance overflow", amount.Dec(), to.Hex())
	}
	if err := store.PutAmount(tx, key, balance); err != nil {
		return fmt.Errorf("put balance: %w", err)
	}
	return nil
}

// BalanceOf returns the credited balance of owner.
func (b *Bank) BalanceOf(r store.Reader, owner model.Address) (*uint256.Int, error) {
	return store.GetAmount(r, store.Key(balancePrefix, owner))
}
