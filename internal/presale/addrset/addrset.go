// Package addrset implements an insertion-ordered, duplicate-free set of addresses kept in a store.
package addrset

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"

	"github.com/paulrouge/multitoken-presale/internal/presale/store"
	"github.com/paulrouge/multitoken-presale/pkg/safe"
)

// Set stores its members under a name-derived key prefix.
//
// Layout:
//
//	<name>/next          -> next insertion sequence
//	<name>/len           -> member count
//	<name>/seq/<seq>     -> address
//	<name>/idx/<address> -> seq
type Set struct {
	name string
}

// New returns a set persisted under name.
func New(name string) *Set {
	return &Set{name: name}
}

// Add inserts addr. Adding a member again is a no-op.
func (s *Set) Add(tx store.Tx, addr common.Address) error {
	ok, err := s.Contains(tx, addr)
	if err != nil || ok {
		return err
	}

	seq, err := store.GetUint64(tx, s.key("next"))
	if err != nil {
		return err
	}
	size, err := store.GetUint64(tx, s.key("len"))
	if err != nil {
		return err
	}

	if err := store.PutAddress(tx, s.key("seq", seq), addr); err != nil {
		return err
	}
	if err := store.PutUint64(tx, s.key("idx", addr), seq); err != nil {
		return err
	}
	if err := store.PutUint64(tx, s.key("next"), seq+1); err != nil {
		return err
	}
	return store.PutUint64(tx, s.key("len"), size+1)
}

// Remove deletes addr. Removing a non-member is a no-op.
func (s *Set) Remove(tx store.Tx, addr common.Address) error {
	ok, err := s.Contains(tx, addr)
	if err != nil || !ok {
		return err
	}
	seq, err := store.GetUint64(tx, s.key("idx", addr))
	if err != nil {
		return err
	}

	size, err := store.GetUint64(tx, s.key("len"))
	if err != nil {
		return err
	}
	if err := tx.Delete(s.key("seq", seq)); err != nil {
		return err
	}
	if err := tx.Delete(s.key("idx", addr)); err != nil {
		return err
	}
	return store.PutUint64(tx, s.key("len"), size-1)
}

// Contains reports membership.
func (s *Set) Contains(r store.Reader, addr common.Address) (bool, error) {
	return r.Has(s.key("idx", addr))
}

// Len returns the member count.
func (s *Set) Len(r store.Reader) (uint64, error) {
	return store.GetUint64(r, s.key("len"))
}

// Enumerate returns members in insertion order.
func (s *Set) Enumerate(r store.Reader) ([]common.Address, error) {
	size, err := store.GetUint64(r, s.key("len"))
	if err != nil {
		return nil, err
	}
	next, err := store.GetUint64(r, s.key("next"))
	if err != nil {
		return nil, err
	}

	capacity, err := safe.Int(size)
	if err != nil {
		return nil, fmt.Errorf("addrset: member count: %w", err)
	}
	out := make([]common.Address, 0, capacity)
	for seq := uint64(0); seq < next && uint64(len(out)) < size; seq++ {
		addr, ok, err := store.GetAddress(r, s.key("seq", seq))
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, addr)
		}
	}
	if uint64(len(out)) != size {
		return nil, errors.New("addrset: member count does not match entries")
	}
	return out, nil
}

func (s *Set) key(parts ...any) []byte {
	return store.Key(s.name, parts...)
}
