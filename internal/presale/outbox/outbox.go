// Package outbox queues messages in the state store so they commit with the call that produced them.
package outbox

import (
	"fmt"

	"github.com/paulrouge/multitoken-presale/internal/presale/store"
)

// Topics written by the sale.
const (
	TopicPurchases    = "purchases"
	TopicEscrowRoutes = "escrow_routes"
)

// Entry is one queued message. Seq starts at 1 and grows by one per push.
type Entry struct {
	Seq     uint64
	Payload []byte
}

// Queue is a FIFO of messages for one topic.
//
// Layout:
//
//	outbox/<topic>/head      -> last pushed seq
//	outbox/<topic>/acked     -> last acknowledged seq
//	outbox/<topic>/msg/<seq> -> payload
type Queue struct {
	topic string
}

// NewQueue returns the queue of topic.
func NewQueue(topic string) *Queue {
	return &Queue{topic: topic}
}

// Topic returns the queue topic.
func (q *Queue) Topic() string {
	return q.topic
}

// Push appends payload and returns its sequence number.
func (q *Queue) Push(tx store.Tx, payload []byte) (uint64, error) {
	head, err := store.GetUint64(tx, q.key("head"))
	if err != nil {
		return 0, fmt.Errorf("get head: %w", err)
	}
	seq := head + 1
	if err := tx.Put(q.key("msg", seq), payload); err != nil {
		return 0, fmt.Errorf("put message: %w", err)
	}
	if err := store.PutUint64(tx, q.key("head"), seq); err != nil {
		return 0, fmt.Errorf("put head: %w", err)
	}
	return seq, nil
}

// Pending returns up to limit unacknowledged entries in push order.
func (q *Queue) Pending(r store.Reader, limit int) ([]Entry, error) {
	head, err := store.GetUint64(r, q.key("head"))
	if err != nil {
		return nil, fmt.Errorf("get head: %w", err)
	}
	acked, err := store.GetUint64(r, q.key("acked"))
	if err != nil {
		return nil, fmt.Errorf("get acked: %w", err)
	}

	var entries []Entry
	for seq := acked + 1; seq <= head && len(entries) < limit; seq++ {
		payload, err := r.Get(q.key("msg", seq))
		if err != nil {
			return nil, fmt.Errorf("get message %d: %w", seq, err)
		}
		entries = append(entries, Entry{Seq: seq, Payload: payload})
	}
	return entries, nil
}

// Ack removes every entry up to and including seq.
func (q *Queue) Ack(tx store.Tx, seq uint64) error {
	head, err := store.GetUint64(tx, q.key("head"))
	if err != nil {
		return fmt.Errorf("get head: %w", err)
	}
	acked, err := store.GetUint64(tx, q.key("acked"))
	if err != nil {
		return fmt.Errorf("get acked: %w", err)
	}
	if seq > head {
		return fmt.Errorf("ack %d beyond head %d", seq, head)
	}
	if seq <= acked {
		return nil
	}

	for s := acked + 1; s <= seq; s++ {
		if err := tx.Delete(q.key("msg", s)); err != nil {
			return fmt.Errorf("delete message %d: %w", s, err)
		}
	}
	return store.PutUint64(tx, q.key("acked"), seq)
}

func (q *Queue) key(parts ...any) []byte {
	return store.Key("outbox/"+q.topic, parts...)
}
