package metrics

import (
	"time"

	"github.com/goodnatureofminers/evm-indexer/internal/evm/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Height outcomes reported by the range indexer.
const (
	HeightIndexed = "indexed"
	HeightSkipped = "skipped"
	HeightFailed  = "failed"
)

var (
	rangeIndexerHeightsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "range_indexer",
		Name:      "heights_total",
		Help:      "Count of heights handled by the range indexer, by outcome.",
	}, []string{"coin", "network", "status"})
	rangeIndexerHeightDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "range_indexer",
		Name:      "height_duration_seconds",
		Help:      "Duration of handling one height.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"coin", "network", "status"})
	rangeIndexerTransactionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "range_indexer",
		Name:      "transactions_total",
		Help:      "Count of transactions persisted.",
	}, []string{"coin", "network"})
	rangeIndexerRangeDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "range_indexer",
		Name:      "range_duration_seconds",
		Help:      "Duration of indexing a whole range.",
		Buckets:   prometheus.ExponentialBuckets(0.05, 2, 14),
	}, []string{"coin", "network", "status"})
)

// RangeIndexer tracks metrics for range indexing.
type RangeIndexer struct {
	coin    string
	network string
}

// NewRangeIndexer constructs a RangeIndexer collector.
func NewRangeIndexer(coin model.Coin, network model.Network) *RangeIndexer {
	c, n := chainLabels(coin, network)
	return &RangeIndexer{coin: c, network: n}
}

// ObserveHeight records the outcome of a single height.
func (m RangeIndexer) ObserveHeight(status string, transactions int, started time.Time) {
	rangeIndexerHeightsTotal.WithLabelValues(m.coin, m.network, status).Inc()
	rangeIndexerHeightDuration.WithLabelValues(m.coin, m.network, status).Observe(time.Since(started).Seconds())
	if transactions > 0 {
		rangeIndexerTransactionsTotal.WithLabelValues(m.coin, m.network).Add(float64(transactions))
	}
}

// ObserveRange records a completed range; failed ranges had per-height errors.
func (m RangeIndexer) ObserveRange(failed bool, started time.Time) {
	status := "success"
	if failed {
		status = "error"
	}
	rangeIndexerRangeDuration.WithLabelValues(m.coin, m.network, status).Observe(time.Since(started).Seconds())
}
