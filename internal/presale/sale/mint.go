package sale

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/holiman/uint256"
	"go.uber.org/zap"

	"github.com/paulrouge/multitoken-presale/internal/presale/model"
	"github.com/paulrouge/multitoken-presale/internal/presale/store"
	"github.com/paulrouge/multitoken-presale/pkg/safe"
)

// issuance describes one run of single-unit mints.
type issuance struct {
	phase     model.Phase
	event     model.EventName
	recipient model.Address
	amount    uint64
	// price is charged, split and routed per unit. Nil for unpaid flows.
	price *uint256.Int
}

// PresaleMint sells amount units to caller at the presale price.
// payment must equal presalePrice * amount exactly.
func (c *Controller) PresaleMint(ctx context.Context, caller model.Address, amount uint64, payment *uint256.Int) (model.Receipt, error) {
	var receipt model.Receipt
	err := c.update(ctx, "presale_mint", func(tx store.Tx, st *model.SaleState) error {
		if !st.PresaleOpened {
			return fmt.Errorf("%w: presale", model.ErrPhaseClosed)
		}
		if st.RequireWhitelist {
			ok, err := c.whitelist.Contains(tx, caller)
			if err != nil {
				return fmt.Errorf("check whitelist: %w", err)
			}
			if !ok {
				return fmt.Errorf("%w: %s", model.ErrNotWhitelisted, caller.Hex())
			}
		}
		if err := c.checkMintLimit(tx, st, caller, amount); err != nil {
			return err
		}
		if err := checkHeadroom(st, amount); err != nil {
			return err
		}
		if err := checkPayment(st.PresalePrice, amount, payment); err != nil {
			return err
		}

		var err error
		receipt, err = c.issue(tx, st, issuance{
			phase:     model.PhasePresale,
			event:     model.PresalePurchaseEvent,
			recipient: caller,
			amount:    amount,
			price:     st.PresalePrice,
		})
		if err != nil {
			return err
		}
		return putLatestPurchase(tx, c.clock.Now())
	})
	c.observeIssue(model.PhasePresale, caller, amount, receipt, err)
	if err != nil {
		return model.Receipt{}, err
	}
	return receipt, nil
}

// RegularMint sells amount units to caller at the regular price.
func (c *Controller) RegularMint(ctx context.Context, caller model.Address, amount uint64, payment *uint256.Int) (model.Receipt, error) {
	var receipt model.Receipt
	err := c.update(ctx, "regular_mint", func(tx store.Tx, st *model.SaleState) error {
		if !st.RegularSaleOpened {
			return fmt.Errorf("%w: regular sale", model.ErrPhaseClosed)
		}
		if err := c.checkMintLimit(tx, st, caller, amount); err != nil {
			return err
		}
		if err := checkHeadroom(st, amount); err != nil {
			return err
		}
		if err := checkPayment(st.RegularPrice, amount, payment); err != nil {
			return err
		}

		var err error
		receipt, err = c.issue(tx, st, issuance{
			phase:     model.PhaseRegular,
			event:     model.RegularPurchaseEvent,
			recipient: caller,
			amount:    amount,
			price:     st.RegularPrice,
		})
		return err
	})
	c.observeIssue(model.PhaseRegular, caller, amount, receipt, err)
	if err != nil {
		return model.Receipt{}, err
	}
	return receipt, nil
}

// FreeMint grants amount units to recipient without payment. Whitelist and mint limit do not apply.
func (c *Controller) FreeMint(ctx context.Context, caller model.Address, amount uint64, recipient model.Address) (model.Receipt, error) {
	var receipt model.Receipt
	detail := fmt.Sprintf("amount=%d recipient=%s", amount, recipient.Hex())
	err := c.administer(ctx, "free_mint", caller, detail, func(tx store.Tx, st *model.SaleState) error {
		if err := checkHeadroom(st, amount); err != nil {
			return err
		}
		if recipient == model.ZeroAddress {
			return fmt.Errorf("%w: recipient is the zero address", model.ErrInvalidConfiguration)
		}

		var err error
		receipt, err = c.issue(tx, st, issuance{
			phase:     model.PhaseFree,
			event:     model.PresalePurchaseEvent,
			recipient: recipient,
			amount:    amount,
		})
		return err
	})
	c.observeIssue(model.PhaseFree, recipient, amount, receipt, err)
	if err != nil {
		return model.Receipt{}, err
	}
	return receipt, nil
}

// MintRemaining mints the next id to the treasury once the presale is closed.
func (c *Controller) MintRemaining(ctx context.Context, caller model.Address) (model.Receipt, error) {
	var receipt model.Receipt
	err := c.administer(ctx, "mint_remaining", caller, "", func(tx store.Tx, st *model.SaleState) error {
		if st.PresaleOpened {
			return fmt.Errorf("%w: presale should be closed", model.ErrPhaseAlreadyOpen)
		}

		var err error
		receipt, err = c.issue(tx, st, issuance{
			phase:     model.PhaseRemaining,
			recipient: st.Treasury,
			amount:    1,
		})
		return err
	})
	c.observeIssue(model.PhaseRemaining, caller, 1, receipt, err)
	if err != nil {
		return model.Receipt{}, err
	}
	return receipt, nil
}

// issue mints amount units one id at a time. Paid flows add to the recipient's mint count,
// pay the service fee and route the rest to escrow.
func (c *Controller) issue(tx store.Tx, st *model.SaleState, req issuance) (model.Receipt, error) {
	var (
		receipt model.Receipt
		fee     *uint256.Int
		net     *uint256.Int
		count   uint64
		err     error
	)
	if req.price != nil {
		fee, net = SplitPrice(req.price)
		if count, err = store.GetUint64(tx, mintCountKey(req.recipient)); err != nil {
			return model.Receipt{}, fmt.Errorf("get mint count: %w", err)
		}
	}
	now := c.clock.Now()

	for i := uint64(0); i < req.amount; i++ {
		newID := st.MintID + 1
		if newID > st.MaxSupply || newID == 0 {
			return model.Receipt{}, fmt.Errorf("%w: all items have been minted", model.ErrSoldOut)
		}

		if err := c.ledger.Mint(tx, req.recipient, newID, 1); err != nil {
			return model.Receipt{}, fmt.Errorf("mint token %d: %w", newID, err)
		}
		if err := c.ledger.SetTokenURI(tx, newID, st.UnrevealedURI); err != nil {
			return model.Receipt{}, fmt.Errorf("set token %d uri: %w", newID, err)
		}
		if err := store.PutUint64(tx, keyMintID, newID); err != nil {
			return model.Receipt{}, fmt.Errorf("put mint id: %w", err)
		}
		st.MintID = newID

		if req.price != nil {
			count++
			if err := store.PutUint64(tx, mintCountKey(req.recipient), count); err != nil {
				return model.Receipt{}, fmt.Errorf("put mint count: %w", err)
			}
			if err := c.payments.Transfer(tx, st.FeeTreasury, fee); err != nil {
				return model.Receipt{}, fmt.Errorf("transfer service fee: %w", err)
			}
			if err := c.escrow.Route(tx, st.CraftEscrow, net, req.recipient, st.Treasury, newID); err != nil {
				return model.Receipt{}, fmt.Errorf("route to escrow: %w", err)
			}
		}

		if req.event != "" {
			purchase := model.Purchase{
				Collection: st.Name,
				Event:      req.event,
				Topic:      req.event.Topic(),
				Phase:      req.phase,
				Buyer:      req.recipient,
				TokenID:    newID,
				UnitPrice:  uint256.NewInt(0),
				ServiceFee: uint256.NewInt(0),
				NetPrice:   uint256.NewInt(0),
				Timestamp:  now,
			}
			if req.price != nil {
				purchase.UnitPrice = req.price.Clone()
				purchase.ServiceFee = fee.Clone()
				purchase.NetPrice = net.Clone()
			}
			if err := c.emit(tx, purchase); err != nil {
				return model.Receipt{}, err
			}
			receipt.Events = append(receipt.Events, purchase)
		}

		if receipt.FirstID == 0 {
			receipt.FirstID = newID
		}
		receipt.LastID = newID

		// Exhaustion closes the presale flag whichever flow minted the last unit.
		if newID == st.MaxSupply && st.PresaleOpened {
			if err := store.PutBool(tx, keyPresaleOpened, false); err != nil {
				return model.Receipt{}, fmt.Errorf("close presale: %w", err)
			}
			st.PresaleOpened = false
		}
	}
	return receipt, nil
}

func (c *Controller) emit(tx store.Tx, purchase model.Purchase) error {
	payload, err := json.Marshal(purchase)
	if err != nil {
		return fmt.Errorf("marshal purchase: %w", err)
	}
	if _, err := c.events.Push(tx, payload); err != nil {
		return fmt.Errorf("push purchase: %w", err)
	}
	return nil
}

// checkMintLimit keeps mintCount + amount strictly below a non-zero limit.
func (c *Controller) checkMintLimit(r store.Reader, st *model.SaleState, buyer model.Address, amount uint64) error {
	if st.MintLimit == 0 {
		return nil
	}
	count, err := store.GetUint64(r, mintCountKey(buyer))
	if err != nil {
		return fmt.Errorf("get mint count: %w", err)
	}
	total, err := safe.Add(count, amount)
	if err != nil || total >= st.MintLimit {
		return fmt.Errorf("%w: %d minted, %d requested, limit %d", model.ErrMintLimitExceeded, count, amount, st.MintLimit)
	}
	return nil
}

func checkHeadroom(st *model.SaleState, amount uint64) error {
	if amount == 0 {
		return model.ErrInvalidAmount
	}
	end, err := safe.Add(st.MintID, amount)
	if err != nil || end > st.MaxSupply {
		return fmt.Errorf("%w: %d requested, %d left", model.ErrSoldOut, amount, st.MaxSupply-st.MintID)
	}
	return nil
}

func checkPayment(price *uint256.Int, amount uint64, payment *uint256.Int) error {
	required, err := safe.MulAmount(price, amount)
	if err != nil {
		return fmt.Errorf("%w: %v", model.ErrInvalidPayment, err)
	}
	if payment == nil || !payment.Eq(required) {
		paid := "0"
		if payment != nil {
			paid = payment.Dec()
		}
		return fmt.Errorf("%w: paid %s, required %s", model.ErrInvalidPayment, paid, required.Dec())
	}
	return nil
}

func (c *Controller) observeIssue(phase model.Phase, recipient model.Address, amount uint64, receipt model.Receipt, err error) {
	logger := c.logger.With(
		zap.String("phase", string(phase)),
		zap.String("recipient", recipient.Hex()),
		zap.Uint64("amount", amount),
	)
	switch {
	case err == nil:
		c.metrics.ObserveMinted(phase, receipt.Minted())
		logger.Info("units minted", zap.Uint64("first_id", receipt.FirstID), zap.Uint64("last_id", receipt.LastID))
	case model.IsRejection(err):
		logger.Debug("mint rejected", zap.Error(err))
	default:
		logger.Error("mint failed", zap.Error(err))
	}
}
