package telemetry

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// DBMetrics records query latency and connection pool usage.
type DBMetrics struct {
	queryTotal    *Counter
	queryErrors   *Counter
	queryDuration *Histogram
	pool          metric.Registration
}

// RegisterDBMetrics installs query metric callbacks on db and observes its
// connection pool on every collection cycle.
func RegisterDBMetrics(db *gorm.DB, meter metric.Meter, logger *zap.Logger) (*DBMetrics, error) {
	if meter == nil {
		return nil, ErrMeterNil
	}

	queryTotal, err := NewCounter(meter, "db_query_total", "Total number of database queries", "{query}")
	if err != nil {
		return nil, err
	}
	queryErrors, err := NewCounter(meter, "db_query_errors_total", "Total number of failed database queries", "{query}")
	if err != nil {
		return nil, err
	}
	queryDuration, err := NewHistogram(meter, HistogramOpts{
		Name:        "db_query_duration_seconds",
		Description: "Database query latency distribution in seconds",
		Unit:        "s",
		Boundaries:  DBDurationBuckets,
	})
	if err != nil {
		return nil, err
	}

	m := &DBMetrics{
		queryTotal:    queryTotal,
		queryErrors:   queryErrors,
		queryDuration: queryDuration,
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	connections, err := meter.Int64ObservableGauge("db_pool_connections",
		metric.WithDescription("Number of connections in the pool by state"),
		metric.WithUnit("{connection}"),
	)
	if err != nil {
		return nil, err
	}
	waits, err := meter.Int64ObservableCounter("db_pool_wait_total",
		metric.WithDescription("Total number of connections waited for"),
		metric.WithUnit("{wait}"),
	)
	if err != nil {
		return nil, err
	}

	m.pool, err = meter.RegisterCallback(func(_ context.Context, o metric.Observer) error {
		stats := sqlDB.Stats()
		o.ObserveInt64(connections, int64(stats.InUse), metric.WithAttributes(AttrDBState.String("in_use")))
		o.ObserveInt64(connections, int64(stats.Idle), metric.WithAttributes(AttrDBState.String("idle")))
		o.ObserveInt64(connections, int64(stats.MaxOpenConnections), metric.WithAttributes(AttrDBState.String("max")))
		o.ObserveInt64(waits, stats.WaitCount)
		return nil
	}, connections, waits)
	if err != nil {
		return nil, err
	}

	if err := registerAround(db, "otel_metrics", markQueryStart(metricsStartKey), m.recordQuery); err != nil {
		return nil, err
	}

	logger.Info("Database metrics registered")
	return m, nil
}

func (m *DBMetrics) recordQuery(op string) func(*gorm.DB) {
	return func(db *gorm.DB) {
		ctx := db.Statement.Context
		if ctx == nil {
			return
		}
		attrs := []attribute.KeyValue{AttrDBOperation.String(op), AttrDBTable.String(db.Statement.Table)}

		m.queryTotal.Inc(ctx, attrs...)
		if db.Error != nil && !errors.Is(db.Error, gorm.ErrRecordNotFound) {
			m.queryErrors.Inc(ctx, attrs...)
		}
		if elapsed, ok := sinceQueryStart(ctx, metricsStartKey); ok {
			m.queryDuration.RecordDuration(ctx, elapsed, attrs...)
		}
	}
}

// Stop unregisters the pool observer.
func (m *DBMetrics) Stop() error {
	if m == nil || m.pool == nil {
		return nil
	}
	return m.pool.Unregister()
}
