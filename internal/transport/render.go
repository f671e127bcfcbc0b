package transport

import (
	"time"

	"github.com/holiman/uint256"
	"github.com/paulrouge/multitoken-presale/internal/presale/model"
)

func decimal(v *uint256.Int) string {
	if v == nil {
		return "0"
	}
	return v.Dec()
}

func timestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func renderAddresses(addrs []model.Address) []any {
	out := make([]any, 0, len(addrs))
	for _, a := range addrs {
		out = append(out, a.Hex())
	}
	return out
}

func renderState(st model.SaleState) map[string]any {
	return map[string]any{
		"name":              st.Name,
		"administrator":     st.Administrator.Hex(),
		"maxSupply":         st.MaxSupply,
		"unrevealedUri":     st.UnrevealedURI,
		"feeTreasury":       st.FeeTreasury.Hex(),
		"presalePrice":      decimal(st.PresalePrice),
		"regularPrice":      decimal(st.RegularPrice),
		"presaleOpened":     st.PresaleOpened,
		"regularSaleOpened": st.RegularSaleOpened,
		"requireWhitelist":  st.RequireWhitelist,
		"mintId":            st.MintID,
		"mintLimit":         st.MintLimit,
		"craftEscrow":       st.CraftEscrow.Hex(),
		"treasury":          st.Treasury.Hex(),
		"latestPurchaseAt":  timestamp(st.LatestPurchaseAt),
	}
}

func renderPurchase(p model.Purchase) map[string]any {
	return map[string]any{
		"event":      string(p.Event),
		"topic":      p.Topic.Hex(),
		"phase":      string(p.Phase),
		"buyer":      p.Buyer.Hex(),
		"tokenId":    p.TokenID,
		"unitPrice":  decimal(p.UnitPrice),
		"serviceFee": decimal(p.ServiceFee),
		"netPrice":   decimal(p.NetPrice),
		"timestamp":  timestamp(p.Timestamp),
	}
}

func renderPurchases(purchases []model.Purchase) []any {
	out := make([]any, 0, len(purchases))
	for _, p := range purchases {
		out = append(out, renderPurchase(p))
	}
	return out
}

func renderReceipt(r model.Receipt) map[string]any {
	return map[string]any{
		"firstId": r.FirstID,
		"lastId":  r.LastID,
		"minted":  r.Minted(),
		"events":  renderPurchases(r.Events),
	}
}

func acknowledged() map[string]any {
	return map[string]any{"ok": true}
}
