// Package store provides the transactional key/value state behind the sale.
package store

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get for keys that hold no value.
var ErrNotFound = errors.New("store: not found")

// Reader reads committed state, or the state of an open transaction.
type Reader interface {
	Get(key []byte) ([]byte, error)
	Has(key []byte) (bool, error)
}

// Tx is a read-write view of state. Writes become visible to other callers only on commit.
type Tx interface {
	Reader
	Put(key, value []byte) error
	Delete(key []byte) error
}

// Store serializes Update calls and commits each one atomically.
type Store interface {
	// Update runs fn in a transaction. If fn returns an error, no write is applied.
	Update(ctx context.Context, fn func(Tx) error) error
	// View runs fn against a consistent snapshot.
	View(ctx context.Context, fn func(Reader) error) error
	Close() error
}

type write struct {
	value   []byte
	deleted bool
}

// overlay buffers writes on top of a base reader.
type overlay struct {
	base   Reader
	writes map[string]write
	order  []string
}

func newOverlay(base Reader) *overlay {
	return &overlay{base: base, writes: make(map[string]write)}
}

func (o *overlay) Get(key []byte) ([]byte, error) {
	if w, ok := o.writes[string(key)]; ok {
		if w.deleted {
			return nil, ErrNotFound
		}
		return append([]byte(nil), w.value...), nil
	}
	return o.base.Get(key)
}

func (o *overlay) Has(key []byte) (bool, error) {
	if w, ok := o.writes[string(key)]; ok {
		return !w.deleted, nil
	}
	return o.base.Has(key)
}

func (o *overlay) Put(key, value []byte) error {
	o.set(string(key), write{value: append([]byte(nil), value...)})
	return nil
}

func (o *overlay) Delete(key []byte) error {
	o.set(string(key), write{deleted: true})
	return nil
}

func (o *overlay) set(key string, w write) {
	if _, ok := o.writes[key]; !ok {
		o.order = append(o.order, key)
	}
	o.writes[key] = w
}

// each visits buffered writes in first-write order.
func (o *overlay) each(fn func(key string, w write)) {
	for _, key := range o.order {
		fn(key, o.writes[key])
	}
}
