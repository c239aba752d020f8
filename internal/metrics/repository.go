package metrics

import (
	"time"

	"github.com/goodnatureofminers/evm-indexer/internal/evm/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	repositoryRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "repository",
		Name:      "operations_total",
		Help:      "Count of repository operations.",
	}, []string{"backend", "operation", "network", "status"})
	repositoryRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "repository",
		Name:      "operation_duration_seconds",
		Help:      "Duration of repository operations.",
		Buckets:   []float64{.0005, .001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30},
	}, []string{"backend", "operation", "network", "status"})
)

// Repository tracks metrics for one storage backend.
type Repository struct {
	backend string
}

// NewRepository creates a Repository metrics collector labeled with backend.
func NewRepository(backend string) *Repository {
	if backend == "" {
		backend = unknown
	}
	return &Repository{backend: backend}
}

// Observe records duration and status of a repository operation.
func (m Repository) Observe(operation string, network model.Network, err error, started time.Time) {
	_, n := chainLabels("", network)
	status := statusOf(err)

	repositoryRequestsTotal.WithLabelValues(m.backend, operation, n, status).Inc()
	repositoryRequestDuration.WithLabelValues(m.backend, operation, n, status).Observe(time.Since(started).Seconds())
}
