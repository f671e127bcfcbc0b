package model

import "github.com/holiman/uint256"

// EscrowRoute is a settlement instruction for net sale proceeds.
type EscrowRoute struct {
	Seq      uint64       `json:"seq"`
	Escrow   Address      `json:"escrow"`
	Amount   *uint256.Int `json:"amount"`
	Buyer    Address      `json:"buyer"`
	Treasury Address      `json:"treasury"`
	TokenID  uint64       `json:"tokenId"`
}
