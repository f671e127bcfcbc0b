package transport

import (
	"context"
	"net/http"

	"github.com/paulrouge/multitoken-presale/internal/presale/model"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type invokeFunc func(ctx context.Context, h *Handler, caller model.Address, p params) (map[string]any, error)

// operation is one entry of the public surface. name doubles as the gRPC method name.
type operation struct {
	name   string
	method string
	path   string
	caller bool
	invoke invokeFunc
}

var operations = []operation{
	// queries
	{name: "Name", method: http.MethodGet, path: "/v1/name", invoke: collectionName},
	{name: "State", method: http.MethodGet, path: "/v1/state", invoke: saleState},
	{name: "MintCount", method: http.MethodGet, path: "/v1/mint-count/{address}", invoke: mintCount},
	{name: "IsWhitelisted", method: http.MethodGet, path: "/v1/whitelist/{address}", invoke: isWhitelisted},
	{name: "Whitelist", method: http.MethodGet, path: "/v1/whitelist", invoke: whitelist},
	{name: "BalanceOf", method: http.MethodGet, path: "/v1/balances/{owner}/{id}", invoke: balanceOf},
	{name: "TokenURI", method: http.MethodGet, path: "/v1/tokens/{id}/uri", invoke: tokenURI},
	{name: "PurchasesByBuyer", method: http.MethodGet, path: "/v1/purchases/{buyer}", invoke: purchasesByBuyer},
	{name: "PurchaseCount", method: http.MethodGet, path: "/v1/purchase-count", invoke: purchaseCount},

	// mints
	{name: "PresaleMint", method: http.MethodPost, path: "/v1/presale/mint", caller: true, invoke: presaleMint},
	{name: "RegularMint", method: http.MethodPost, path: "/v1/regular/mint", caller: true, invoke: regularMint},
	{name: "FreeMint", method: http.MethodPost, path: "/v1/free-mint", caller: true, invoke: freeMint},
	{name: "MintRemaining", method: http.MethodPost, path: "/v1/mint-remaining", caller: true, invoke: mintRemaining},

	// administration
	{name: "SetPresalePrice", method: http.MethodPost, path: "/v1/presale/price", caller: true, invoke: setPresalePrice},
	{name: "SetRegularPrice", method: http.MethodPost, path: "/v1/regular/price", caller: true, invoke: setRegularPrice},
	{name: "SetMintLimit", method: http.MethodPost, path: "/v1/mint-limit", caller: true, invoke: setMintLimit},
	{name: "SetCraftEscrow", method: http.MethodPost, path: "/v1/craft-escrow", caller: true, invoke: setCraftEscrow},
	{name: "SetTreasury", method: http.MethodPost, path: "/v1/treasury", caller: true, invoke: setTreasury},
	{name: "AddWhitelist", method: http.MethodPost, path: "/v1/whitelist/add", caller: true, invoke: addWhitelist},
	{name: "RemoveWhitelist", method: http.MethodPost, path: "/v1/whitelist/remove", caller: true, invoke: removeWhitelist},
	{name: "OpenPresale", method: http.MethodPost, path: "/v1/presale/open", caller: true, invoke: toggle(Sale.OpenPresale)},
	{name: "ClosePresale", method: http.MethodPost, path: "/v1/presale/close", caller: true, invoke: toggle(Sale.ClosePresale)},
	{name: "OpenRegularSale", method: http.MethodPost, path: "/v1/regular/open", caller: true, invoke: toggle(Sale.OpenRegularSale)},
	{name: "CloseRegularSale", method: http.MethodPost, path: "/v1/regular/close", caller: true, invoke: toggle(Sale.CloseRegularSale)},
	{name: "EnableWhitelist", method: http.MethodPost, path: "/v1/whitelist/enable", caller: true, invoke: toggle(Sale.EnableWhitelist)},
	{name: "DisableWhitelist", method: http.MethodPost, path: "/v1/whitelist/disable", caller: true, invoke: toggle(Sale.DisableWhitelist)},
	{name: "NftReveal", method: http.MethodPost, path: "/v1/tokens/{id}/reveal", caller: true, invoke: nftReveal},
}

func collectionName(_ context.Context, h *Handler, _ model.Address, _ params) (map[string]any, error) {
	return map[string]any{"name": h.sale.Name()}, nil
}

func saleState(ctx context.Context, h *Handler, _ model.Address, _ params) (map[string]any, error) {
	st, err := h.sale.State(ctx)
	if err != nil {
		return nil, err
	}
	return renderState(st), nil
}

func mintCount(ctx context.Context, h *Handler, _ model.Address, p params) (map[string]any, error) {
	addr, err := p.address("address")
	if err != nil {
		return nil, invalidArgument(err)
	}
	count, err := h.sale.MintCount(ctx, addr)
	if err != nil {
		return nil, err
	}
	return map[string]any{"address": addr.Hex(), "mintCount": count}, nil
}

func isWhitelisted(ctx context.Context, h *Handler, _ model.Address, p params) (map[string]any, error) {
	addr, err := p.address("address")
	if err != nil {
		return nil, invalidArgument(err)
	}
	member, err := h.sale.IsWhitelisted(ctx, addr)
	if err != nil {
		return nil, err
	}
	return map[string]any{"address": addr.Hex(), "whitelisted": member}, nil
}

func whitelist(ctx context.Context, h *Handler, _ model.Address, _ params) (map[string]any, error) {
	addrs, err := h.sale.Whitelist(ctx)
	if err != nil {
		return nil, err
	}
	return map[string]any{"addresses": renderAddresses(addrs)}, nil
}

func balanceOf(ctx context.Context, h *Handler, _ model.Address, p params) (map[string]any, error) {
	owner, err := p.address("owner")
	if err != nil {
		return nil, invalidArgument(err)
	}
	id, err := p.uint64("id")
	if err != nil {
		return nil, invalidArgument(err)
	}
	balance, err := h.sale.BalanceOf(ctx, owner, id)
	if err != nil {
		return nil, err
	}
	return map[string]any{"owner": owner.Hex(), "id": id, "balance": balance}, nil
}

func tokenURI(ctx context.Context, h *Handler, _ model.Address, p params) (map[string]any, error) {
	id, err := p.uint64("id")
	if err != nil {
		return nil, invalidArgument(err)
	}
	uri, err := h.sale.TokenURI(ctx, id)
	if err != nil {
		return nil, err
	}
	return map[string]any{"id": id, "uri": uri}, nil
}

func purchasesByBuyer(ctx context.Context, h *Handler, _ model.Address, p params) (map[string]any, error) {
	if h.analytics == nil {
		return nil, status.Error(codes.Unimplemented, "purchase history is not configured")
	}
	buyer, err := p.address("buyer")
	if err != nil {
		return nil, invalidArgument(err)
	}
	purchases, err := h.analytics.PurchasesByBuyer(ctx, h.sale.Name(), buyer)
	if err != nil {
		return nil, err
	}
	return map[string]any{"buyer": buyer.Hex(), "purchases": renderPurchases(purchases)}, nil
}

func purchaseCount(ctx context.Context, h *Handler, _ model.Address, _ params) (map[string]any, error) {
	if h.analytics == nil {
		return nil, status.Error(codes.Unimplemented, "purchase history is not configured")
	}
	count, err := h.analytics.PurchaseCount(ctx, h.sale.Name())
	if err != nil {
		return nil, err
	}
	return map[string]any{"purchases": count}, nil
}

func presaleMint(ctx context.Context, h *Handler, caller model.Address, p params) (map[string]any, error) {
	amount, err := p.uint64("amount")
	if err != nil {
		return nil, invalidArgument(err)
	}
	payment, err := p.amount("payment", false)
	if err != nil {
		return nil, invalidArgument(err)
	}
	receipt, err := h.sale.PresaleMint(ctx, caller, amount, payment)
	if err != nil {
		return nil, err
	}
	return renderReceipt(receipt), nil
}

func regularMint(ctx context.Context, h *Handler, caller model.Address, p params) (map[string]any, error) {
	amount, err := p.uint64("amount")
	if err != nil {
		return nil, invalidArgument(err)
	}
	payment, err := p.amount("payment", false)
	if err != nil {
		return nil, invalidArgument(err)
	}
	receipt, err := h.sale.RegularMint(ctx, caller, amount, payment)
	if err != nil {
		return nil, err
	}
	return renderReceipt(receipt), nil
}

func freeMint(ctx context.Context, h *Handler, caller model.Address, p params) (map[string]any, error) {
	amount, err := p.uint64("amount")
	if err != nil {
		return nil, invalidArgument(err)
	}
	recipient, err := p.address("recipient")
	if err != nil {
		return nil, invalidArgument(err)
	}
	receipt, err := h.sale.FreeMint(ctx, caller, amount, recipient)
	if err != nil {
		return nil, err
	}
	return renderReceipt(receipt), nil
}

func mintRemaining(ctx context.Context, h *Handler, caller model.Address, _ params) (map[string]any, error) {
	receipt, err := h.sale.MintRemaining(ctx, caller)
	if err != nil {
		return nil, err
	}
	return renderReceipt(receipt), nil
}

func setPresalePrice(ctx context.Context, h *Handler, caller model.Address, p params) (map[string]any, error) {
	price, err := p.amount("price", true)
	if err != nil {
		return nil, invalidArgument(err)
	}
	return acknowledged(), h.sale.SetPresalePrice(ctx, caller, price)
}

func setRegularPrice(ctx context.Context, h *Handler, caller model.Address, p params) (map[string]any, error) {
	price, err := p.amount("price", true)
	if err != nil {
		return nil, invalidArgument(err)
	}
	return acknowledged(), h.sale.SetRegularPrice(ctx, caller, price)
}

func setMintLimit(ctx context.Context, h *Handler, caller model.Address, p params) (map[string]any, error) {
	limit, err := p.uint64("limit")
	if err != nil {
		return nil, invalidArgument(err)
	}
	return acknowledged(), h.sale.SetMintLimit(ctx, caller, limit)
}

func setCraftEscrow(ctx context.Context, h *Handler, caller model.Address, p params) (map[string]any, error) {
	addr, err := p.address("address")
	if err != nil {
		return nil, invalidArgument(err)
	}
	return acknowledged(), h.sale.SetCraftEscrow(ctx, caller, addr)
}

func setTreasury(ctx context.Context, h *Handler, caller model.Address, p params) (map[string]any, error) {
	addr, err := p.address("address")
	if err != nil {
		return nil, invalidArgument(err)
	}
	return acknowledged(), h.sale.SetTreasury(ctx, caller, addr)
}

func addWhitelist(ctx context.Context, h *Handler, caller model.Address, p params) (map[string]any, error) {
	addrs, err := p.addresses("addresses")
	if err != nil {
		return nil, invalidArgument(err)
	}
	return acknowledged(), h.sale.AddWhitelist(ctx, caller, addrs)
}

func removeWhitelist(ctx context.Context, h *Handler, caller model.Address, p params) (map[string]any, error) {
	addrs, err := p.addresses("addresses")
	if err != nil {
		return nil, invalidArgument(err)
	}
	return acknowledged(), h.sale.RemoveWhitelist(ctx, caller, addrs)
}

func toggle(fn func(Sale, context.Context, model.Address) error) invokeFunc {
	return func(ctx context.Context, h *Handler, caller model.Address, _ params) (map[string]any, error) {
		return acknowledged(), fn(h.sale, ctx, caller)
	}
}

func nftReveal(ctx context.Context, h *Handler, caller model.Address, p params) (map[string]any, error) {
	id, err := p.uint64("id")
	if err != nil {
		return nil, invalidArgument(err)
	}
	uri, err := p.str("uri")
	if err != nil {
		return nil, invalidArgument(err)
	}
	return acknowledged(), h.sale.NftReveal(ctx, caller, id, uri)
}
