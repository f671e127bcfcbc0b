package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	relayFetchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "presale",
		Subsystem: "outbox_relay",
		Name:      "fetch_total",
		Help:      "Count of attempts to read pending outbox entries.",
	}, []string{"topic", "status"})

	relayFetchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "presale",
		Subsystem: "outbox_relay",
		Name:      "fetch_duration_seconds",
		Help:      "Duration of reading pending outbox entries.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"topic", "status"})

	relayProcessBatchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "presale",
		Subsystem: "outbox_relay",
		Name:      "process_batch_total",
		Help:      "Count of outbox batches delivered.",
	}, []string{"topic", "status"})

	relayProcessBatchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "presale",
		Subsystem: "outbox_relay",
		Name:      "process_batch_duration_seconds",
		Help:      "Duration of delivering an outbox batch.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"topic", "status"})

	relayProcessBatchSize = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "presale",
		Subsystem: "outbox_relay",
		Name:      "process_batch_size",
		Help:      "Number of entries per delivered batch.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
	}, []string{"topic"})

	relayProcessEntryTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "presale",
		Subsystem: "outbox_relay",
		Name:      "process_entry_total",
		Help:      "Count of single entries delivered.",
	}, []string{"topic", "status"})

	relayAckedSeq = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "presale",
		Subsystem: "outbox_relay",
		Name:      "acked_seq",
		Help:      "Last acknowledged outbox sequence.",
	}, []string{"topic"})
)

// OutboxRelay tracks metrics for one outbox topic relay.
type OutboxRelay struct {
	topic string
}

// NewOutboxRelay constructs an OutboxRelay collector.
func NewOutboxRelay(topic string) *OutboxRelay {
	return &OutboxRelay{topic: orUnknown(topic)}
}

// ObserveFetch records a pending read outcome and duration.
func (m OutboxRelay) ObserveFetch(err error, started time.Time) {
	s := status(err)
	relayFetchTotal.WithLabelValues(m.topic, s).Inc()
	relayFetchDuration.WithLabelValues(m.topic, s).Observe(time.Since(started).Seconds())
}

// ObserveProcessBatch records delivery of a batch.
func (m OutboxRelay) ObserveProcessBatch(err error, entries int, started time.Time) {
	s := status(err)
	relayProcessBatchTotal.WithLabelValues(m.topic, s).Inc()
	relayProcessBatchDuration.WithLabelValues(m.topic, s).Observe(time.Since(started).Seconds())
	relayProcessBatchSize.WithLabelValues(m.topic).Observe(float64(entries))
}

// ObserveProcessEntry records delivery of a single entry.
func (m OutboxRelay) ObserveProcessEntry(err error, _ uint64, _ time.Time) {
	relayProcessEntryTotal.WithLabelValues(m.topic, status(err)).Inc()
}

// ObserveAck records the last acknowledged sequence.
func (m OutboxRelay) ObserveAck(seq uint64) {
	relayAckedSeq.WithLabelValues(m.topic).Set(float64(seq))
}
