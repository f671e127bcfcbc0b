package model

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/holiman/uint256"
)

// EventName names the purchase events, indexed by buyer.
type EventName string

const (
	PresalePurchaseEvent EventName = "PresalePurchase"
	RegularPurchaseEvent EventName = "RegularPurchase"
)

// Topic is the keccak hash of the event signature.
func (e EventName) Topic() common.Hash {
	return crypto.Keccak256Hash([]byte(string(e) + "(Address,int)"))
}

// Purchase is emitted once per minted unit that went through a sale flow.
type Purchase struct {
	Collection string       `json:"collection"`
	Event      EventName    `json:"event"`
	Topic      common.Hash  `json:"topic"`
	Phase      Phase        `json:"phase"`
	Buyer      Address      `json:"buyer"`
	TokenID    uint64       `json:"tokenId"`
	UnitPrice  *uint256.Int `json:"unitPrice"`
	ServiceFee *uint256.Int `json:"serviceFee"`
	NetPrice   *uint256.Int `json:"netPrice"`
	Timestamp  time.Time    `json:"timestamp"`
}

// Receipt describes the effects of a successful mint call.
type Receipt struct {
	FirstID uint64
	LastID  uint64
	Events  []Purchase
}

// Minted reports how many units the call issued.
func (r Receipt) Minted() uint64 {
	if r.LastID < r.FirstID || r.LastID == 0 {
		return 0
	}
	return r.LastID - r.FirstID + 1
}
