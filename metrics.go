package studentdir

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems; package
// prommetrics provides a Prometheus implementation.
type MetricsCollector interface {
	// RecordInsert is called after each save of a new id, err is nil if
	// successful.
	RecordInsert(duration time.Duration, err error)

	// RecordUpdate is called after each save of an existing id.
	RecordUpdate(duration time.Duration, err error)

	// RecordBatchSave is called after each batch save.
	// count is the number of items attempted, failed is the number that failed.
	RecordBatchSave(count, failed int, duration time.Duration)

	// RecordDelete is called after each delete operation.
	RecordDelete(duration time.Duration, err error)

	// RecordLookup is called after each lookup by id.
	RecordLookup(duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordInsert(time.Duration, error)       {}
func (NoopMetricsCollector) RecordUpdate(time.Duration, error)       {}
func (NoopMetricsCollector) RecordBatchSave(int, int, time.Duration) {}
func (NoopMetricsCollector) RecordDelete(time.Duration, error)       {}
func (NoopMetricsCollector) RecordLookup(time.Duration, error)       {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	InsertCount      atomic.Int64
	InsertErrors     atomic.Int64
	InsertTotalNanos atomic.Int64
	UpdateCount      atomic.Int64
	UpdateErrors     atomic.Int64
	BatchSaveCount   atomic.Int64
	BatchSaveItems   atomic.Int64
	BatchSaveFailed  atomic.Int64
	DeleteCount      atomic.Int64
	DeleteErrors     atomic.Int64
	LookupCount      atomic.Int64
	LookupMisses     atomic.Int64
	LookupTotalNanos atomic.Int64
}

// RecordInsert implements MetricsCollector.
func (b *BasicMetricsCollector) RecordInsert(duration time.Duration, err error) {
	b.InsertCount.Add(1)
	b.InsertTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.InsertErrors.Add(1)
	}
}

// RecordUpdate implements MetricsCollector.
func (b *BasicMetricsCollector) RecordUpdate(duration time.Duration, err error) {
	b.UpdateCount.Add(1)
	if err != nil {
		b.UpdateErrors.Add(1)
	}
}

// RecordBatchSave implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBatchSave(count, failed int, duration time.Duration) {
	b.BatchSaveCount.Add(1)
	b.BatchSaveItems.Add(int64(count))
	b.BatchSaveFailed.Add(int64(failed))
}

// RecordDelete implements MetricsCollector.
func (b *BasicMetricsCollector) RecordDelete(duration time.Duration, err error) {
	b.DeleteCount.Add(1)
	if err != nil {
		b.DeleteErrors.Add(1)
	}
}

// RecordLookup implements MetricsCollector.
func (b *BasicMetricsCollector) RecordLookup(duration time.Duration, err error) {
	b.LookupCount.Add(1)
	b.LookupTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.LookupMisses.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		InsertCount:     b.InsertCount.Load(),
		InsertErrors:    b.InsertErrors.Load(),
		InsertAvgNanos:  avg(b.InsertTotalNanos.Load(), b.InsertCount.Load()),
		UpdateCount:     b.UpdateCount.Load(),
		UpdateErrors:    b.UpdateErrors.Load(),
		BatchSaveCount:  b.BatchSaveCount.Load(),
		BatchSaveItems:  b.BatchSaveItems.Load(),
		BatchSaveFailed: b.BatchSaveFailed.Load(),
		DeleteCount:     b.DeleteCount.Load(),
		DeleteErrors:    b.DeleteErrors.Load(),
		LookupCount:     b.LookupCount.Load(),
		LookupMisses:    b.LookupMisses.Load(),
		LookupAvgNanos:  avg(b.LookupTotalNanos.Load(), b.LookupCount.Load()),
	}
}

func avg(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	InsertCount     int64
	InsertErrors    int64
	InsertAvgNanos  int64
	UpdateCount     int64
	UpdateErrors    int64
	BatchSaveCount  int64
	BatchSaveItems  int64
	BatchSaveFailed int64
	DeleteCount     int64
	DeleteErrors    int64
	LookupCount     int64
	LookupMisses    int64
	LookupAvgNanos  int64
}
