package studentdir

import (
	"context"
	"fmt"
	"iter"
	"time"

	"github.com/hupe1980/studentdir/model"
	"github.com/hupe1980/studentdir/store"
)

type (
	// ID is the primary key of a student record (alias of model.ID).
	ID = model.ID
	// Record is a student record (alias of model.Record).
	Record = model.Record
)

// Directory is the operation surface of the student directory. It delegates
// to a store.RecordStore and adds error translation, metrics and logging.
//
// A Directory is safe for concurrent use.
type Directory struct {
	store   *store.RecordStore
	metrics MetricsCollector
	logger  *Logger
}

// New creates a Directory. Without WithStore it owns a new, empty store
// (seeded by WithRecords, if given).
func New(optFns ...Option) (*Directory, error) {
	opts := applyOptions(optFns)

	st := opts.store
	if st == nil {
		var err error
		st, err = store.New(store.WithRecords(opts.records...))
		if err != nil {
			return nil, fmt.Errorf("studentdir: %w", translateError(err))
		}
	}

	return &Directory{
		store:   st,
		metrics: opts.metricsCollector,
		logger:  opts.logger,
	}, nil
}

// List returns all records in ascending id order, as of one point in time.
func (d *Directory) List() []Record {
	return d.store.Snapshot()
}

// All returns a lazy iterator over all records in ascending id order.
// The iterator may be ranged over more than once.
func (d *Directory) All() iter.Seq[Record] {
	return d.store.All()
}

// Get retrieves a record by id.
func (d *Directory) Get(id ID) (Record, error) {
	start := time.Now()
	rec, err := d.store.Get(id)
	err = translateError(err)
	d.metrics.RecordLookup(time.Since(start), err)
	return rec, err
}

// Save inserts rec, or updates the record with the same id. A zero id asks
// for a freshly allocated one. The stored record is returned.
func (d *Directory) Save(ctx context.Context, rec Record) (Record, error) {
	start := time.Now()
	stored, created, err := d.store.Save(rec)
	duration := time.Since(start)
	err = translateError(err)

	if created {
		d.metrics.RecordInsert(duration, err)
	} else {
		d.metrics.RecordUpdate(duration, err)
	}

	if err != nil {
		d.logger.LogSave(ctx, rec, created, err)
		return Record{}, err
	}
	d.logger.LogSave(ctx, stored, created, nil)
	return stored, nil
}

// BatchSaveResult holds the outcome of a batch save.
type BatchSaveResult struct {
	Records []Record // Stored records of successful saves, in input order
	Errors  []error  // Errors for failed saves (nil for successful)
}

// Failed returns the number of failed saves.
func (r BatchSaveResult) Failed() int {
	n := 0
	for _, err := range r.Errors {
		if err != nil {
			n++
		}
	}
	return n
}

// SaveBatch saves several records. Each record is saved on its own: a
// failure does not undo or prevent the others.
func (d *Directory) SaveBatch(ctx context.Context, recs []Record) BatchSaveResult {
	start := time.Now()
	result := BatchSaveResult{
		Records: make([]Record, 0, len(recs)),
		Errors:  make([]error, len(recs)),
	}

	for i, rec := range recs {
		stored, _, err := d.store.Save(rec)
		if err != nil {
			result.Errors[i] = translateError(err)
			continue
		}
		result.Records = append(result.Records, stored)
	}

	failed := result.Failed()
	d.metrics.RecordBatchSave(len(recs), failed, time.Since(start))
	d.logger.LogBatchSave(ctx, len(recs), failed)
	return result
}

// Delete removes the record with the given id. Deleting an unknown id
// returns ErrNotFound.
func (d *Directory) Delete(ctx context.Context, id ID) error {
	start := time.Now()
	_, err := d.store.Delete(id)
	err = translateError(err)
	d.metrics.RecordDelete(time.Since(start), err)
	d.logger.LogDelete(ctx, id, err)
	return err
}

// ListMajors returns the majors held by at least one record, in
// lexicographic order.
func (d *Directory) ListMajors() []string {
	return d.store.Majors()
}

// ListByMajor returns the records with the given major in ascending id
// order. An unknown major yields an empty slice.
func (d *Directory) ListByMajor(major string) []Record {
	return d.store.ByMajor(major)
}

// Len returns the number of records.
func (d *Directory) Len() int {
	return d.store.Len()
}
