package store

import (
	"context"
	"errors"
	"sync"
)

var errClosed = errors.New("store: closed")

type memoryReader map[string][]byte

func (m memoryReader) Get(key []byte) ([]byte, error) {
	v, ok := m[string(key)]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]byte(nil), v...), nil
}

func (m memoryReader) Has(key []byte) (bool, error) {
	_, ok := m[string(key)]
	return ok, nil
}

// Memory is an in-process Store.
type Memory struct {
	mu     sync.RWMutex
	data   map[string][]byte
	closed bool
}

// NewMemory returns an empty in-process store.
func NewMemory() *Memory {
	return &Memory{data: make(map[string][]byte)}
}

func (m *Memory) Update(ctx context.Context, fn func(Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return errClosed
	}

	tx := newOverlay(memoryReader(m.data))
	if err := fn(tx); err != nil {
		return err
	}
	tx.each(func(key string, w write) {
		if w.deleted {
			delete(m.data, key)
			return
		}
		m.data[key] = w.value
	})
	return nil
}

func (m *Memory) View(ctx context.Context, fn func(Reader) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.closed {
		return errClosed
	}
	return fn(memoryReader(m.data))
}

func (m *Memory) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}
