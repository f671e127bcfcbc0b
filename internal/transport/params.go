package transport

import (
	"fmt"
	"math"
	"strconv"

	"github.com/holiman/uint256"
	"github.com/paulrouge/multitoken-presale/internal/presale/model"
	"github.com/paulrouge/multitoken-presale/pkg/safe"
)

// params are the decoded request fields. Numbers arrive as float64 from JSON
// and as strings from paths and query strings.
type params map[string]any

func (p params) str(key string) (string, error) {
	v, ok := p[key]
	if !ok {
		return "", fmt.Errorf("%s is required", key)
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%s must be a string", key)
	}
	return s, nil
}

func (p params) address(key string) (model.Address, error) {
	s, err := p.str(key)
	if err != nil {
		return model.ZeroAddress, err
	}
	addr, err := model.ParseAddress(s)
	if err != nil {
		return model.ZeroAddress, fmt.Errorf("%s: %w", key, err)
	}
	return addr, nil
}

func (p params) addresses(key string) ([]model.Address, error) {
	v, ok := p[key]
	if !ok {
		return nil, fmt.Errorf("%s is required", key)
	}
	list, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("%s must be a list", key)
	}

	addrs := make([]model.Address, 0, len(list))
	for i, item := range list {
		s, ok := item.(string)
		if !ok {
			return nil, fmt.Errorf("%s[%d] must be a string", key, i)
		}
		addr, err := model.ParseAddress(s)
		if err != nil {
			return nil, fmt.Errorf("%s[%d]: %w", key, i, err)
		}
		addrs = append(addrs, addr)
	}
	return addrs, nil
}

func (p params) uint64(key string) (uint64, error) {
	v, ok := p[key]
	if !ok {
		return 0, fmt.Errorf("%s is required", key)
	}
	switch n := v.(type) {
	case float64:
		if n != math.Trunc(n) || math.Abs(n) > 1<<53 {
			return 0, fmt.Errorf("%s must be a non-negative integer", key)
		}
		u, err := safe.Uint64(int64(n))
		if err != nil {
			return 0, fmt.Errorf("%s must be a non-negative integer", key)
		}
		return u, nil
	case string:
		u, err := strconv.ParseUint(n, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%s must be a non-negative integer", key)
		}
		return u, nil
	default:
		return 0, fmt.Errorf("%s must be a non-negative integer", key)
	}
}

// amount reads a decimal string. A missing payment is zero.
func (p params) amount(key string, required bool) (*uint256.Int, error) {
	if _, ok := p[key]; !ok && !required {
		return uint256.NewInt(0), nil
	}
	s, err := p.str(key)
	if err != nil {
		return nil, err
	}
	v, err := model.ParseAmount(s)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", key, err)
	}
	return v, nil
}
