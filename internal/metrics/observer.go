package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	observerPollsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "settlement_engine",
		Subsystem: "observer",
		Name:      "polls_total",
		Help:      "Count of ledger poll ticks.",
	}, []string{"asset", "status"})
	observerPollDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "settlement_engine",
		Subsystem: "observer",
		Name:      "poll_duration_seconds",
		Help:      "Duration of ledger poll ticks.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"asset", "status"})
	observerPollBatchSize = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "settlement_engine",
		Subsystem: "observer",
		Name:      "poll_batch_size",
		Help:      "Number of transactions returned per poll.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 6), // 1..32
	}, []string{"asset"})

	observerNotificationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "settlement_engine",
		Subsystem: "observer",
		Name:      "notifications_total",
		Help:      "Count of settlement notifications sent to the connector.",
	}, []string{"asset", "status"})
	observerNotificationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "settlement_engine",
		Subsystem: "observer",
		Name:      "notification_duration_seconds",
		Help:      "Duration of settlement notifications, including retries.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"asset", "status"})
)

// Observer tracks metrics for the incoming settlement observer.
type Observer struct {
	asset string
}

// NewObserver constructs a metrics collector for the observer.
func NewObserver(asset string) *Observer {
	if asset == "" {
		asset = "unknown"
	}
	return &Observer{asset: asset}
}

// ObservePoll records one poll tick outcome, batch size and duration.
func (m Observer) ObservePoll(err error, txs int, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}

	observerPollsTotal.WithLabelValues(m.asset, status).Inc()
	observerPollDuration.WithLabelValues(m.asset, status).Observe(time.Since(started).Seconds())
	observerPollBatchSize.WithLabelValues(m.asset).Observe(float64(txs))
}

// ObserveNotify records one connector notification outcome and duration.
func (m Observer) ObserveNotify(err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}

	observerNotificationsTotal.WithLabelValues(m.asset, status).Inc()
	observerNotificationDuration.WithLabelValues(m.asset, status).Observe(time.Since(started).Seconds())
}
