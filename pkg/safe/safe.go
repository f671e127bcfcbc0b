// Package safe provides arithmetic helpers with overflow checks.
package safe

import (
	"errors"
	"fmt"
	"math"

	"github.com/holiman/uint256"
)

// ErrOverflow is returned when a result does not fit its type.
var ErrOverflow = errors.New("arithmetic overflow")

// Add returns a+b.
func Add(a, b uint64) (uint64, error) {
	sum := a + b
	if sum < a {
		return 0, fmt.Errorf("%d + %d: %w", a, b, ErrOverflow)
	}
	return sum, nil
}

// MulAmount returns x*n as a new value.
func MulAmount(x *uint256.Int, n uint64) (*uint256.Int, error) {
	product, overflow := new(uint256.Int).MulOverflow(x, uint256.NewInt(n))
	if overflow {
		return nil, fmt.Errorf("%s * %d: %w", x.Dec(), n, ErrOverflow)
	}
	return product, nil
}

// Int converts signed or unsigned integers to int with range validation.
func Int[T ~int | ~int32 | ~int64 | ~uint | ~uint32 | ~uint64](v T) (int, error) {
	switch value := any(v).(type) {
	case int:
		return value, nil
	case int32:
		return int(value), nil
	case int64:
		if value < math.MinInt || value > math.MaxInt {
			return 0, fmt.Errorf("value %d out of int range", v)
		}
	case uint:
		if value > math.MaxInt {
			return 0, fmt.Errorf("value %d out of int range", v)
		}
	case uint32:
		if uint64(value) > math.MaxInt {
			return 0, fmt.Errorf("value %d out of int range", v)
		}
	case uint64:
		if value > math.MaxInt {
			return 0, fmt.Errorf("value %d out of int range", v)
		}
	default:
		return 0, fmt.Errorf("unsupported type %T", v)
	}
	return int(v), nil
}

// Uint64 converts signed or unsigned integers to uint64 while guarding against negatives.
func Uint64[T ~int | ~int32 | ~int64 | ~uint | ~uint32 | ~uint64](v T) (uint64, error) {
	switch value := any(v).(type) {
	case int:
		if value < 0 {
			return 0, fmt.Errorf("value %d out of uint64 range", v)
		}
	case int32:
		if value < 0 {
			return 0, fmt.Errorf("value %d out of uint64 range", v)
		}
	case int64:
		if value < 0 {
			return 0, fmt.Errorf("value %d out of uint64 range", v)
		}
	case uint, uint32, uint64:
	default:
		return 0, fmt.Errorf("unsupported type %T", v)
	}
	return uint64(v), nil
}
