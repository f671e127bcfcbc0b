package transport

import (
	"context"

	"github.com/holiman/uint256"
	"github.com/paulrouge/multitoken-presale/internal/presale/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Sale interface {
		Name() string
		State(ctx context.Context) (model.SaleState, error)
		MintCount(ctx context.Context, addr model.Address) (uint64, error)
		IsWhitelisted(ctx context.Context, addr model.Address) (bool, error)
		Whitelist(ctx context.Context) ([]model.Address, error)
		BalanceOf(ctx context.Context, owner model.Address, id uint64) (uint64, error)
		TokenURI(ctx context.Context, id uint64) (string, error)

		PresaleMint(ctx context.Context, caller model.Address, amount uint64, payment *uint256.Int) (model.Receipt, error)
		RegularMint(ctx context.Context, caller model.Address, amount uint64, payment *uint256.Int) (model.Receipt, error)
		FreeMint(ctx context.Context, caller model.Address, amount uint64, recipient model.Address) (model.Receipt, error)
		MintRemaining(ctx context.Context, caller model.Address) (model.Receipt, error)

		SetPresalePrice(ctx context.Context, caller model.Address, price *uint256.Int) error
		SetRegularPrice(ctx context.Context, caller model.Address, price *uint256.Int) error
		SetMintLimit(ctx context.Context, caller model.Address, limit uint64) error
		SetCraftEscrow(ctx context.Context, caller, escrow model.Address) error
		SetTreasury(ctx context.Context, caller, treasury model.Address) error
		AddWhitelist(ctx context.Context, caller model.Address, addrs []model.Address) error
		RemoveWhitelist(ctx context.Context, caller model.Address, addrs []model.Address) error
		OpenPresale(ctx context.Context, caller model.Address) error
		ClosePresale(ctx context.Context, caller model.Address) error
		OpenRegularSale(ctx context.Context, caller model.Address) error
		CloseRegularSale(ctx context.Context, caller model.Address) error
		EnableWhitelist(ctx context.Context, caller model.Address) error
		DisableWhitelist(ctx context.Context, caller model.Address) error
		NftReveal(ctx context.Context, caller model.Address, id uint64, uri string) error
	}

	// Analytics serves purchase history. It is optional.
	Analytics interface {
		PurchasesByBuyer(ctx context.Context, collection string, buyer model.Address) ([]model.Purchase, error)
		PurchaseCount(ctx context.Context, collection string) (uint64, error)
	}
)
