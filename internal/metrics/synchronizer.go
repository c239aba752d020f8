package metrics

import (
	"time"

	"github.com/goodnatureofminers/evm-indexer/internal/evm/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	synchronizerNetworkHeight = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "synchronizer",
		Name:      "network_height",
		Help:      "Latest height reported by the node.",
	}, []string{"coin", "network"})
	synchronizerScheduledHeight = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "synchronizer",
		Name:      "scheduled_height",
		Help:      "Height up to which indexing has been scheduled.",
	}, []string{"coin", "network"})
	synchronizerPollTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "synchronizer",
		Name:      "poll_cycles_total",
		Help:      "Count of chainhead poll cycles.",
	}, []string{"coin", "network", "status"})
	synchronizerPollDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "synchronizer",
		Name:      "poll_cycle_duration_seconds",
		Help:      "Duration of chainhead poll cycles.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"coin", "network", "status"})
	synchronizerReorgsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "synchronizer",
		Name:      "reorgs_total",
		Help:      "Count of detected reorganizations.",
	}, []string{"coin", "network", "status"})
	synchronizerReorgDepth = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "synchronizer",
		Name:      "reorg_depth_blocks",
		Help:      "Number of blocks rolled back per reorganization.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
	}, []string{"coin", "network"})
)

// Synchronizer tracks metrics of the chainhead synchronizer.
type Synchronizer struct {
	coin    string
	network string
}

// NewSynchronizer constructs a Synchronizer collector.
func NewSynchronizer(coin model.Coin, network model.Network) *Synchronizer {
	c, n := chainLabels(coin, network)
	return &Synchronizer{coin: c, network: n}
}

// SetHeights publishes the node height and the scheduled height.
func (m Synchronizer) SetHeights(network, scheduled uint64) {
	synchronizerNetworkHeight.WithLabelValues(m.coin, m.network).Set(float64(network))
	synchronizerScheduledHeight.WithLabelValues(m.coin, m.network).Set(float64(scheduled))
}

// ObservePoll records a poll cycle outcome and duration.
func (m Synchronizer) ObservePoll(err error, started time.Time) {
	status := statusOf(err)
	synchronizerPollTotal.WithLabelValues(m.coin, m.network, status).Inc()
	synchronizerPollDuration.WithLabelValues(m.coin, m.network, status).Observe(time.Since(started).Seconds())
}

// ObserveReorg records a handled reorganization and how many blocks it removed.
func (m Synchronizer) ObserveReorg(depth uint64, err error) {
	synchronizerReorgsTotal.WithLabelValues(m.coin, m.network, statusOf(err)).Inc()
	synchronizerReorgDepth.WithLabelValues(m.coin, m.network).Observe(float64(depth))
}
