package store

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// Typed helpers used by the components that keep state in a Store.
// Missing keys decode to the zero value.

func GetUint64(r Reader, key []byte) (uint64, error) {
	data, err := r.Get(key)
	if errors.Is(err, ErrNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	if len(data) != 8 {
		return 0, fmt.Errorf("key %q: malformed uint64 of %d bytes", key, len(data))
	}
	return binary.BigEndian.Uint64(data), nil
}

func PutUint64(tx Tx, key []byte, v uint64) error {
	return tx.Put(key, binary.BigEndian.AppendUint64(nil, v))
}

func GetBool(r Reader, key []byte) (bool, error) {
	data, err := r.Get(key)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return len(data) == 1 && data[0] == 1, nil
}

func PutBool(tx Tx, key []byte, v bool) error {
	if v {
		return tx.Put(key, []byte{1})
	}
	return tx.Put(key, []byte{0})
}

func GetAmount(r Reader, key []byte) (*uint256.Int, error) {
	data, err := r.Get(key)
	if errors.Is(err, ErrNotFound) {
		return uint256.NewInt(0), nil
	}
	if err != nil {
		return nil, err
	}
	if len(data) != 32 {
		return nil, fmt.Errorf("key %q: malformed amount of %d bytes", key, len(data))
	}
	return new(uint256.Int).SetBytes(data), nil
}

func PutAmount(tx Tx, key []byte, v *uint256.Int) error {
	b := v.Bytes32()
	return tx.Put(key, b[:])
}

// GetAddress returns ok=false when the key is unset.
func GetAddress(r Reader, key []byte) (common.Address, bool, error) {
	data, err := r.Get(key)
	if errors.Is(err, ErrNotFound) {
		return common.Address{}, false, nil
	}
	if err != nil {
		return common.Address{}, false, err
	}
	if len(data) != common.AddressLength {
		return common.Address{}, false, fmt.Errorf("key %q: malformed address of %d bytes", key, len(data))
	}
	return common.BytesToAddress(data), true, nil
}

func PutAddress(tx Tx, key []byte, v common.Address) error {
	return tx.Put(key, v.Bytes())
}

// GetString returns ok=false when the key is unset.
func GetString(r Reader, key []byte) (string, bool, error) {
	data, err := r.Get(key)
	if errors.Is(err, ErrNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return string(data), true, nil
}

func PutString(tx Tx, key []byte, v string) error {
	return tx.Put(key, []byte(v))
}

// Key joins a prefix with binary parts: strings and byte slices verbatim,
// uint64 as 8 big-endian bytes, addresses as 20 bytes.
func Key(prefix string, parts ...any) []byte {
	key := []byte(prefix)
	for _, p := range parts {
		key = append(key, '/')
		switch v := p.(type) {
		case string:
			key = append(key, v...)
		case []byte:
			key = append(key, v...)
		case uint64:
			key = binary.BigEndian.AppendUint64(key, v)
		case common.Address:
			key = append(key, v.Bytes()...)
		default:
			panic(fmt.Sprintf("store: unsupported key part %T", p))
		}
	}
	return key
}
