package sale

import "github.com/holiman/uint256"

const (
	// ServiceFeeBps is the share of every unit price sent to the fee treasury.
	ServiceFeeBps = 100
	// BpsBase is the denominator for basis-point math.
	BpsBase = 10_000
)

// SplitPrice returns floor(price * ServiceFeeBps / BpsBase) and the remainder of price.
func SplitPrice(price *uint256.Int) (fee, net *uint256.Int) {
	fee, _ = new(uint256.Int).MulDivOverflow(price, uint256.NewInt(ServiceFeeBps), uint256.NewInt(BpsBase))
	net = new(uint256.Int).Sub(price, fee)
	return fee, net
}
