package prommetrics

import (
	"time"

	"github.com/hupe1980/studentdir"
	"github.com/prometheus/client_golang/prometheus"
)

// Compile-time interface check
var _ studentdir.MetricsCollector = (*Collector)(nil)

// Options configures a Collector.
type Options struct {
	// Namespace prefixes every metric name.
	Namespace string
	// Buckets are the latency histogram buckets in seconds.
	Buckets []float64
}

// DefaultOptions contains the default options for a Collector.
var DefaultOptions = Options{
	Namespace: "studentdir",
	Buckets:   prometheus.ExponentialBuckets(0.000_001, 4, 10),
}

// Collector implements studentdir.MetricsCollector on Prometheus metrics.
type Collector struct {
	opLatency  *prometheus.HistogramVec
	operations *prometheus.CounterVec
	batchItems *prometheus.CounterVec
}

// New creates a Collector and registers its metrics with reg.
func New(reg prometheus.Registerer, optFns ...func(o *Options)) (*Collector, error) {
	opts := DefaultOptions
	for _, fn := range optFns {
		fn(&opts)
	}

	c := &Collector{
		opLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: opts.Namespace,
			Name:      "operation_latency_seconds",
			Help:      "Latency of directory operations",
			Buckets:   opts.Buckets,
		}, []string{"op", "status"}),
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: opts.Namespace,
			Name:      "operations_total",
			Help:      "Total directory operations",
		}, []string{"op", "status"}),
		batchItems: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: opts.Namespace,
			Name:      "batch_save_items_total",
			Help:      "Total records submitted through batch saves",
		}, []string{"status"}),
	}

	cols := []prometheus.Collector{c.opLatency, c.operations, c.batchItems}
	for i, col := range cols {
		if err := reg.Register(col); err != nil {
			for _, registered := range cols[:i] {
				reg.Unregister(registered)
			}
			return nil, err
		}
	}

	return c, nil
}

// RecordInsert implements studentdir.MetricsCollector.
func (c *Collector) RecordInsert(d time.Duration, err error) {
	c.observe("insert", d, err)
}

// RecordUpdate implements studentdir.MetricsCollector.
func (c *Collector) RecordUpdate(d time.Duration, err error) {
	c.observe("update", d, err)
}

// RecordDelete implements studentdir.MetricsCollector.
func (c *Collector) RecordDelete(d time.Duration, err error) {
	c.observe("delete", d, err)
}

// RecordLookup implements studentdir.MetricsCollector.
func (c *Collector) RecordLookup(d time.Duration, err error) {
	c.observe("lookup", d, err)
}

// RecordBatchSave implements studentdir.MetricsCollector.
func (c *Collector) RecordBatchSave(count, failed int, d time.Duration) {
	var err error
	if failed > 0 {
		err = errPartialBatch
	}
	c.observe("batch_save", d, err)
	c.batchItems.WithLabelValues("success").Add(float64(count - failed))
	c.batchItems.WithLabelValues("error").Add(float64(failed))
}

func (c *Collector) observe(op string, d time.Duration, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	c.opLatency.WithLabelValues(op, status).Observe(d.Seconds())
	c.operations.WithLabelValues(op, status).Inc()
}
