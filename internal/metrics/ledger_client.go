package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ledgerRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "settlement_engine",
		Subsystem: "ledger_client",
		Name:      "operations_total",
		Help:      "Count of ledger gateway operations.",
	}, []string{"operation", "asset", "status"})
	ledgerRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "settlement_engine",
		Subsystem: "ledger_client",
		Name:      "operation_duration_seconds",
		Help:      "Duration of ledger gateway operations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "asset", "status"})
)

// LedgerClient tracks metrics for calls to the ledger gateway.
type LedgerClient struct {
	asset string
}

// NewLedgerClient constructs a metrics collector for ledger calls.
func NewLedgerClient(asset string) *LedgerClient {
	if asset == "" {
		asset = "unknown"
	}
	return &LedgerClient{asset: asset}
}

// Observe records a single ledger call outcome and duration.
func (m LedgerClient) Observe(operation string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}

	ledgerRequestsTotal.WithLabelValues(operation, m.asset, status).Inc()
	ledgerRequestDuration.WithLabelValues(operation, m.asset, status).Observe(time.Since(started).Seconds())
}
