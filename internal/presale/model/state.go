package model

import (
	"time"

	"github.com/holiman/uint256"
)

// Deployment holds the parameters fixed when the collection is created.
type Deployment struct {
	Name          string
	Administrator Address
	MaxSupply     uint64
	UnrevealedURI string
	// FeeTreasury receives the service fee. It is distinct from the configurable treasury.
	FeeTreasury Address
	// DefaultEscrow is used until the administrator sets an escrow router.
	DefaultEscrow Address
}

// SaleState is a read-only snapshot of the sale.
type SaleState struct {
	Name              string
	Administrator     Address
	MaxSupply         uint64
	UnrevealedURI     string
	FeeTreasury       Address
	PresalePrice      *uint256.Int
	RegularPrice      *uint256.Int
	PresaleOpened     bool
	RegularSaleOpened bool
	RequireWhitelist  bool
	MintID            uint64
	MintLimit         uint64
	CraftEscrow       Address
	Treasury          Address
	LatestPurchaseAt  time.Time
}
