package studentdir

import (
	"log/slog"

	"github.com/hupe1980/studentdir/store"
)

type options struct {
	store            *store.RecordStore
	records          []Record
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures a Directory.
type Option func(*options)

// WithStore makes the Directory operate on an existing store instead of
// creating its own. Several directories may share one store.
func WithStore(st *store.RecordStore) Option {
	return func(o *options) {
		o.store = st
	}
}

// WithRecords seeds the store the Directory creates. It is ignored when
// WithStore is given.
func WithRecords(recs ...Record) Option {
	return func(o *options) {
		o.records = append(o.records, recs...)
	}
}

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &studentdir.BasicMetricsCollector{}
//	dir, _ := studentdir.New(studentdir.WithMetricsCollector(metrics))
//	// ... use dir ...
//	stats := metrics.GetStats()
//	fmt.Printf("Inserts: %d, Avg latency: %dns\n", stats.InsertCount, stats.InsertAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := studentdir.NewJSONLogger(slog.LevelInfo)
//	dir, _ := studentdir.New(studentdir.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	if o.metricsCollector == nil {
		o.metricsCollector = NoopMetricsCollector{}
	}
	if o.logger == nil {
		o.logger = NoopLogger()
	}
	return o
}
