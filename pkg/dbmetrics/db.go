package dbmetrics

import (
	"context"
	"database/sql"
	"strings"
	"time"
)

// MetricsCollector интерфейс сборщика метрик запросов и connection pool
type MetricsCollector interface {
	ObserveDBQuery(operation string, duration time.Duration, err error)
	SetDBPoolStats(open, inUse, idle int)
}

// DB обёртка над *sql.DB, измеряющая длительность запросов
type DB struct {
	db        *sql.DB
	collector MetricsCollector
}

// Wrap оборачивает *sql.DB в сборщик метрик запросов
func Wrap(db *sql.DB, collector MetricsCollector) *DB {
	return &DB{db: db, collector: collector}
}

// WrapWithDefault оборачивает *sql.DB и запускает фоновый сбор статистики
// connection pool до закрытия stopCh
func WrapWithDefault(db *sql.DB, collector MetricsCollector, serviceName string, stopCh <-chan struct{}) *DB {
	wrapped := Wrap(db, collector)

	go func() {
		ticker := time.NewTicker(15 * time.Second)
		defer ticker.Stop()

		for {
			select {
			case <-stopCh:
				return
			case <-ticker.C:
				stats := db.Stats()
				collector.SetDBPoolStats(stats.OpenConnections, stats.InUse, stats.Idle)
			}
		}
	}()

	return wrapped
}

// ExecContext выполняет запрос с измерением длительности
func (d *DB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	result, err := d.db.ExecContext(ctx, query, args...)
	d.collector.ObserveDBQuery(operationName(query), time.Since(start), err)
	return result, err
}

// QueryContext выполняет запрос с измерением длительности
func (d *DB) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := d.db.QueryContext(ctx, query, args...)
	d.collector.ObserveDBQuery(operationName(query), time.Since(start), err)
	return rows, err
}

// QueryRowContext выполняет запрос с измерением длительности
// Ошибка выполнения доступна только при Scan, поэтому здесь не учитывается
func (d *DB) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := d.db.QueryRowContext(ctx, query, args...)
	d.collector.ObserveDBQuery(operationName(query), time.Since(start), nil)
	return row
}

// BeginTx начинает транзакцию, запросы внутри которой тоже попадают в метрики
func (d *DB) BeginTx(ctx context.Context, opts *sql.TxOptions) (TxExecutor, error) {
	tx, err := d.db.BeginTx(ctx, opts)
	if err != nil {
		return nil, err
	}
	return &metricTx{tx: tx, collector: d.collector}, nil
}

// metricTx транзакция с измерением длительности запросов
type metricTx struct {
	tx        *sql.Tx
	collector MetricsCollector
}

func (t *metricTx) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	result, err := t.tx.ExecContext(ctx, query, args...)
	t.collector.ObserveDBQuery(operationName(query), time.Since(start), err)
	return result, err
}

func (t *metricTx) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := t.tx.QueryContext(ctx, query, args...)
	t.collector.ObserveDBQuery(operationName(query), time.Since(start), err)
	return rows, err
}

func (t *metricTx) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := t.tx.QueryRowContext(ctx, query, args...)
	t.collector.ObserveDBQuery(operationName(query), time.Since(start), nil)
	return row
}

func (t *metricTx) Commit() error {
	return t.tx.Commit()
}

func (t *metricTx) Rollback() error {
	return t.tx.Rollback()
}

// operationName возвращает тип SQL операции для label метрики
func operationName(query string) string {
	fields := strings.Fields(query)
	if len(fields) == 0 {
		return "unknown"
	}
	return strings.ToLower(fields[0])
}
