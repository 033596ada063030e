package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	settlerSettlementsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "settlement_engine",
		Subsystem: "settler",
		Name:      "settlements_total",
		Help:      "Count of outgoing settlement requests.",
	}, []string{"asset", "status"})
	settlerSettlementDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "settlement_engine",
		Subsystem: "settler",
		Name:      "settlement_duration_seconds",
		Help:      "Duration of outgoing settlement requests.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"asset", "status"})

	settlerTransfersTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "settlement_engine",
		Subsystem: "settler",
		Name:      "transfer_attempts_total",
		Help:      "Count of ledger transfer attempts, including retries.",
	}, []string{"asset", "status"})
	settlerTransferDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "settlement_engine",
		Subsystem: "settler",
		Name:      "transfer_attempt_duration_seconds",
		Help:      "Duration of ledger transfer attempts.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"asset", "status"})
)

// Settler tracks metrics for the outgoing settlement path.
type Settler struct {
	asset string
}

// NewSettler constructs a metrics collector for the settler.
func NewSettler(asset string) *Settler {
	if asset == "" {
		asset = "unknown"
	}
	return &Settler{asset: asset}
}

// ObserveSettle records one settlement request outcome and duration.
func (m Settler) ObserveSettle(err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}

	settlerSettlementsTotal.WithLabelValues(m.asset, status).Inc()
	settlerSettlementDuration.WithLabelValues(m.asset, status).Observe(time.Since(started).Seconds())
}

// ObserveTransfer records one ledger transfer attempt.
func (m Settler) ObserveTransfer(err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}

	settlerTransfersTotal.WithLabelValues(m.asset, status).Inc()
	settlerTransferDuration.WithLabelValues(m.asset, status).Observe(time.Since(started).Seconds())
}
