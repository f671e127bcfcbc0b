package sale

import (
	"context"
	"fmt"
	"strings"

	"github.com/holiman/uint256"

	"github.com/paulrouge/multitoken-presale/internal/presale/model"
	"github.com/paulrouge/multitoken-presale/internal/presale/store"
)

// SetPresalePrice sets the presale unit price. The price is frozen while the presale is open.
func (c *Controller) SetPresalePrice(ctx context.Context, caller model.Address, price *uint256.Int) error {
	return c.administer(ctx, "set_presale_price", caller, "price="+decimal(price), func(tx store.Tx, st *model.SaleState) error {
		if price == nil {
			return fmt.Errorf("%w: price is required", model.ErrInvalidConfiguration)
		}
		if st.PresaleOpened {
			return fmt.Errorf("%w: price cannot be changed during presale", model.ErrPhaseAlreadyOpen)
		}
		return store.PutAmount(tx, keyPresalePrice, price)
	})
}

// SetRegularPrice sets the regular unit price. The price is frozen while the regular sale is open.
func (c *Controller) SetRegularPrice(ctx context.Context, caller model.Address, price *uint256.Int) error {
	return c.administer(ctx, "set_regular_price", caller, "price="+decimal(price), func(tx store.Tx, st *model.SaleState) error {
		if price == nil {
			return fmt.Errorf("%w: price is required", model.ErrInvalidConfiguration)
		}
		if st.RegularSaleOpened {
			return fmt.Errorf("%w: price cannot be changed during regular sale", model.ErrPhaseAlreadyOpen)
		}
		return store.PutAmount(tx, keyRegularPrice, price)
	})
}

// SetMintLimit sets the per-address cap. Zero means unlimited.
func (c *Controller) SetMintLimit(ctx context.Context, caller model.Address, limit uint64) error {
	return c.administer(ctx, "set_mint_limit", caller, fmt.Sprintf("limit=%d", limit), func(tx store.Tx, _ *model.SaleState) error {
		return store.PutUint64(tx, keyMintLimit, limit)
	})
}

// SetCraftEscrow sets the escrow router receiving net proceeds.
func (c *Controller) SetCraftEscrow(ctx context.Context, caller, escrow model.Address) error {
	return c.administer(ctx, "set_craft_escrow", caller, "escrow="+escrow.Hex(), func(tx store.Tx, _ *model.SaleState) error {
		if escrow == model.ZeroAddress {
			return fmt.Errorf("%w: escrow is the zero address", model.ErrInvalidConfiguration)
		}
		return store.PutAddress(tx, keyCraftEscrow, escrow)
	})
}

// SetTreasury sets the treasury passed to the escrow router and credited by MintRemaining.
func (c *Controller) SetTreasury(ctx context.Context, caller, treasury model.Address) error {
	return c.administer(ctx, "set_treasury", caller, "treasury="+treasury.Hex(), func(tx store.Tx, _ *model.SaleState) error {
		if treasury == model.ZeroAddress {
			return fmt.Errorf("%w: treasury is the zero address", model.ErrInvalidConfiguration)
		}
		return store.PutAddress(tx, keyTreasury, treasury)
	})
}

// AddWhitelist adds addresses to the whitelist. Existing members are skipped.
func (c *Controller) AddWhitelist(ctx context.Context, caller model.Address, addrs []model.Address) error {
	return c.administer(ctx, "add_whitelist", caller, joinAddresses(addrs), func(tx store.Tx, _ *model.SaleState) error {
		for _, addr := range addrs {
			if err := c.whitelist.Add(tx, addr); err != nil {
				return fmt.Errorf("add %s to whitelist: %w", addr.Hex(), err)
			}
		}
		return nil
	})
}

// RemoveWhitelist removes addresses from the whitelist. Non-members are skipped.
func (c *Controller) RemoveWhitelist(ctx context.Context, caller model.Address, addrs []model.Address) error {
	return c.administer(ctx, "remove_whitelist", caller, joinAddresses(addrs), func(tx store.Tx, _ *model.SaleState) error {
		for _, addr := range addrs {
			if err := c.whitelist.Remove(tx, addr); err != nil {
				return fmt.Errorf("remove %s from whitelist: %w", addr.Hex(), err)
			}
		}
		return nil
	})
}

// OpenPresale opens the presale. The price must be at least one whole unit and supply must remain.
func (c *Controller) OpenPresale(ctx context.Context, caller model.Address) error {
	return c.administer(ctx, "open_presale", caller, "", func(tx store.Tx, st *model.SaleState) error {
		if st.PresaleOpened {
			return fmt.Errorf("%w: presale", model.ErrPhaseAlreadyOpen)
		}
		if floor := model.OneWholeUnit(); st.PresalePrice.Lt(floor) {
			return fmt.Errorf("%w: presale price %s is below %s", model.ErrInvalidConfiguration, st.PresalePrice.Dec(), floor.Dec())
		}
		if st.MintID >= st.MaxSupply {
			return fmt.Errorf("%w: all items have been minted", model.ErrSoldOut)
		}
		return store.PutBool(tx, keyPresaleOpened, true)
	})
}

// ClosePresale closes the presale.
func (c *Controller) ClosePresale(ctx context.Context, caller model.Address) error {
	return c.administer(ctx, "close_presale", caller, "", func(tx store.Tx, st *model.SaleState) error {
		if !st.PresaleOpened {
			return fmt.Errorf("%w: presale", model.ErrPhaseAlreadyClosed)
		}
		return store.PutBool(tx, keyPresaleOpened, false)
	})
}

// OpenRegularSale opens the regular sale.
func (c *Controller) OpenRegularSale(ctx context.Context, caller model.Address) error {
	return c.administer(ctx, "open_regular_sale", caller, "", func(tx store.Tx, st *model.SaleState) error {
		if st.RegularSaleOpened {
			return fmt.Errorf("%w: regular sale", model.ErrPhaseAlreadyOpen)
		}
		return store.PutBool(tx, keyRegularOpened, true)
	})
}

// CloseRegularSale closes the regular sale.
func (c *Controller) CloseRegularSale(ctx context.Context, caller model.Address) error {
	return c.administer(ctx, "close_regular_sale", caller, "", func(tx store.Tx, st *model.SaleState) error {
		if !st.RegularSaleOpened {
			return fmt.Errorf("%w: regular sale", model.ErrPhaseAlreadyClosed)
		}
		return store.PutBool(tx, keyRegularOpened, false)
	})
}

// EnableWhitelist makes whitelist membership required for presale purchases.
func (c *Controller) EnableWhitelist(ctx context.Context, caller model.Address) error {
	return c.administer(ctx, "enable_whitelist", caller, "", func(tx store.Tx, st *model.SaleState) error {
		if st.RequireWhitelist {
			return fmt.Errorf("%w: whitelist already required", model.ErrInvalidConfiguration)
		}
		return store.PutBool(tx, keyRequireWhitelist, true)
	})
}

// DisableWhitelist lifts the whitelist requirement.
func (c *Controller) DisableWhitelist(ctx context.Context, caller model.Address) error {
	return c.administer(ctx, "disable_whitelist", caller, "", func(tx store.Tx, st *model.SaleState) error {
		if !st.RequireWhitelist {
			return fmt.Errorf("%w: whitelist already disabled", model.ErrInvalidConfiguration)
		}
		return store.PutBool(tx, keyRequireWhitelist, false)
	})
}

// NftReveal replaces the placeholder URI of a minted id once the whole supply is sold
// and the presale is closed.
func (c *Controller) NftReveal(ctx context.Context, caller model.Address, id uint64, uri string) error {
	detail := fmt.Sprintf("id=%d uri=%s", id, uri)
	return c.administer(ctx, "nft_reveal", caller, detail, func(tx store.Tx, st *model.SaleState) error {
		if st.PresaleOpened {
			return fmt.Errorf("%w: presale should be closed", model.ErrPhaseAlreadyOpen)
		}
		if st.MintID != st.MaxSupply {
			return fmt.Errorf("%w: all items should be minted, %d of %d", model.ErrInvalidConfiguration, st.MintID, st.MaxSupply)
		}
		if id == 0 || id > st.MintID {
			return fmt.Errorf("%w: %d", model.ErrUnknownToken, id)
		}
		if err := c.ledger.SetTokenURI(tx, id, uri); err != nil {
			return fmt.Errorf("set token %d uri: %w", id, err)
		}
		return nil
	})
}

func joinAddresses(addrs []model.Address) string {
	hex := make([]string, len(addrs))
	for i, a := range addrs {
		hex[i] = a.Hex()
	}
	return strings.Join(hex, ",")
}

func decimal(v *uint256.Int) string {
	if v == nil {
		return "<nil>"
	}
	return v.Dec()
}
