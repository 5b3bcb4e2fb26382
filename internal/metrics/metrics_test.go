package metrics_test

import (
	"testing"

	"github.com/HovsepH/northwind-employee-store/internal/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestNewMetrics(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()

	mts := metrics.NewMetrics(reg)

	mts.Operations.WithLabelValues("get_employee_by_id", "success").Inc()
	mts.DBQueryDuration.WithLabelValues("get_employee_by_id").Observe(0.01)

	assert.Equal(t, float64(1),
		testutil.ToFloat64(mts.Operations.WithLabelValues("get_employee_by_id", "success")))
}
