package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/paulrouge/multitoken-presale/internal/presale/model"
)

var (
	saleOperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "presale",
		Subsystem: "sale_controller",
		Name:      "operations_total",
		Help:      "Count of sale controller operations by outcome.",
	}, []string{"collection", "operation", "status"})
	saleOperationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "presale",
		Subsystem: "sale_controller",
		Name:      "operation_duration_seconds",
		Help:      "Duration of sale controller operations, including the state commit.",
		Buckets:   []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
	}, []string{"collection", "operation", "status"})
	saleMintedUnitsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "presale",
		Subsystem: "sale_controller",
		Name:      "minted_units_total",
		Help:      "Units minted by phase.",
	}, []string{"collection", "phase"})
)

// SaleController tracks metrics for sale controller calls.
type SaleController struct {
	collection string
}

// NewSaleController creates a SaleController metrics collector.
func NewSaleController(collection string) *SaleController {
	return &SaleController{collection: orUnknown(collection)}
}

// Observe records duration and outcome of an operation. Rejections are counted apart from failures.
func (m SaleController) Observe(operation string, err error, started time.Time) {
	s := status(err)
	saleOperationsTotal.WithLabelValues(m.collection, operation, s).Inc()
	saleOperationDuration.WithLabelValues(m.collection, operation, s).Observe(time.Since(started).Seconds())
}

// ObserveMinted counts units issued in one successful call.
func (m SaleController) ObserveMinted(phase model.Phase, units uint64) {
	saleMintedUnitsTotal.WithLabelValues(m.collection, orUnknown(string(phase))).Add(float64(units))
}
