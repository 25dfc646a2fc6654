package postgres

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"catalog-backend/pkg/observability"
)

func TestRepoMetricsObserve(t *testing.T) {
	collector := observability.NewCollector("catalog")
	metrics := repoMetrics{collector: collector, table: "products"}

	okBefore := testutil.ToFloat64(collector.DBOperations.WithLabelValues("get_by_id", "products", "ok"))
	errBefore := testutil.ToFloat64(collector.DBOperations.WithLabelValues("get_by_id", "products", "error"))

	metrics.observe("get_by_id", time.Now(), nil)
	// Not-found is a regular outcome under the (nil, nil) contract.
	metrics.observe("get_by_id", time.Now(), gorm.ErrRecordNotFound)
	metrics.observe("get_by_id", time.Now(), errors.New("connection reset"))

	okAfter := testutil.ToFloat64(collector.DBOperations.WithLabelValues("get_by_id", "products", "ok"))
	errAfter := testutil.ToFloat64(collector.DBOperations.WithLabelValues("get_by_id", "products", "error"))
	assert.Equal(t, 2.0, okAfter-okBefore)
	assert.Equal(t, 1.0, errAfter-errBefore)
}

func TestRepoMetricsObserve_NilCollector(t *testing.T) {
	var metrics repoMetrics
	assert.NotPanics(t, func() {
		metrics.observe("get_by_id", time.Now(), nil)
	})
}
