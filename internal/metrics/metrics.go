package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the various metrics used for monitoring the application.
// It includes a counter for store operations by outcome, a gauge for the
// last failed operation, and a histogram for query duration.
type Metrics struct {
	Operations      *prometheus.CounterVec
	LastFailure     prometheus.Gauge
	DBQueryDuration *prometheus.HistogramVec
}

// NewMetrics creates a new Metrics instance with the provided Registerer.
//
// Parameters:
//   - reg: A prometheus.Registerer used to register the metrics.
//
// Returns:
//   - A pointer to the newly created Metrics instance.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	metrics := &Metrics{
		Operations: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "employeestore_operations_total",
			Help: "Total number of employee store operations, labeled by operation and outcome.",
		}, []string{"operation", "status"}),
		LastFailure: promauto.With(reg).NewGauge(prometheus.GaugeOpts{
			Name: "employeestore_last_failure_timestamp",
			Help: "Unix time of the last failed store operation.",
		}),
		DBQueryDuration: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "employeestore_db_query_duration_seconds",
			Help:    "Duration of database queries.",
			Buckets: prometheus.DefBuckets,
		}, []string{"query_type"}), // query_type: 'get_employee_by_id', 'add_employee', ...
	}

	return metrics
}
