package store

import (
	"github.com/hupe1980/studentdir/model"
	"github.com/hupe1980/studentdir/multiindex"
)

type options struct {
	records     []model.Record
	indexDegree int
}

// Option configures a RecordStore.
type Option func(*options)

// WithRecords seeds the store. Seed records go through Save, so they are
// validated and ids of zero are allocated.
func WithRecords(recs ...model.Record) Option {
	return func(o *options) {
		o.records = append(o.records, recs...)
	}
}

// WithIndexDegree sets the B-tree degree of the major index.
func WithIndexDegree(degree int) Option {
	return func(o *options) {
		o.indexDegree = degree
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		indexDegree: multiindex.DefaultOptions.Degree,
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
