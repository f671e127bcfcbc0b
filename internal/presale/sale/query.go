package sale

import (
	"context"

	"github.com/paulrouge/multitoken-presale/internal/presale/model"
	"github.com/paulrouge/multitoken-presale/internal/presale/store"
)

// State returns a snapshot of the sale.
func (c *Controller) State(ctx context.Context) (model.SaleState, error) {
	var st model.SaleState
	err := c.store.View(ctx, func(r store.Reader) error {
		var err error
		st, err = loadState(r, c.deployment)
		return err
	})
	return st, err
}

// MintCount returns the units bought by addr across both paid phases.
func (c *Controller) MintCount(ctx context.Context, addr model.Address) (uint64, error) {
	var count uint64
	err := c.store.View(ctx, func(r store.Reader) error {
		var err error
		count, err = store.GetUint64(r, mintCountKey(addr))
		return err
	})
	return count, err
}

// IsWhitelisted reports whitelist membership.
func (c *Controller) IsWhitelisted(ctx context.Context, addr model.Address) (bool, error) {
	var ok bool
	err := c.store.View(ctx, func(r store.Reader) error {
		var err error
		ok, err = c.whitelist.Contains(r, addr)
		return err
	})
	return ok, err
}

// Whitelist returns whitelist members in insertion order.
func (c *Controller) Whitelist(ctx context.Context) ([]model.Address, error) {
	var addrs []model.Address
	err := c.store.View(ctx, func(r store.Reader) error {
		var err error
		addrs, err = c.whitelist.Enumerate(r)
		return err
	})
	return addrs, err
}

// BalanceOf returns the quantity of id held by owner.
func (c *Controller) BalanceOf(ctx context.Context, owner model.Address, id uint64) (uint64, error) {
	var balance uint64
	err := c.store.View(ctx, func(r store.Reader) error {
		var err error
		balance, err = c.ledger.BalanceOf(r, owner, id)
		return err
	})
	return balance, err
}

// TokenURI returns the metadata URI of id.
func (c *Controller) TokenURI(ctx context.Context, id uint64) (string, error) {
	var uri string
	err := c.store.View(ctx, func(r store.Reader) error {
		var err error
		uri, err = c.ledger.TokenURI(r, id)
		return err
	})
	return uri, err
}
