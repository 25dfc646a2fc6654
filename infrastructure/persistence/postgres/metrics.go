package postgres

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"catalog-backend/pkg/observability"
)

// repoMetrics records the operation counter and latency histogram for one
// repository table. A nil collector disables recording. A not-found result
// counts as ok: the (nil, nil) contract treats it as a regular outcome.
type repoMetrics struct {
	collector *observability.Collector
	table     string
}

func (m repoMetrics) observe(operation string, start time.Time, err error) {
	if m.collector == nil {
		return
	}
	status := "ok"
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		status = "error"
	}
	m.collector.DBOperations.WithLabelValues(operation, m.table, status).Inc()
	m.collector.DBDuration.WithLabelValues(operation, m.table).Observe(time.Since(start).Seconds())
}
