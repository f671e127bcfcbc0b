// Package model defines domain types shared by the presale components.
package model

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// Address identifies accounts and contracts.
type Address = common.Address

// ZeroAddress is never a valid owner or payment destination.
var ZeroAddress Address

const oneWholeUnit = 1_000_000_000_000_000_000

// OneWholeUnit returns 10^18 of the smallest currency unit as a fresh value.
func OneWholeUnit() *uint256.Int {
	return uint256.NewInt(oneWholeUnit)
}

// ParseAddress parses a 0x-prefixed hex address.
func ParseAddress(s string) (Address, error) {
	s = strings.TrimSpace(s)
	if !common.IsHexAddress(s) {
		return ZeroAddress, fmt.Errorf("invalid address %q", s)
	}
	return common.HexToAddress(s), nil
}

// ParseAmount parses a non-negative decimal amount of the smallest currency unit.
func ParseAmount(s string) (*uint256.Int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return uint256.NewInt(0), nil
	}
	v, err := uint256.FromDecimal(s)
	if err != nil {
		return nil, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return v, nil
}
