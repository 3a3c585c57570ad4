package store

import (
	"fmt"
	"iter"
	"math"
	"sync"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/studentdir/model"
	"github.com/hupe1980/studentdir/multiindex"
)

// RecordStore is a thread-safe, in-memory store of student records with a
// secondary index by major.
type RecordStore struct {
	mu sync.RWMutex

	// Primary storage (id -> record)
	records map[model.ID]model.Record

	// Key set of records, iterated in ascending id order
	ids *roaring.Bitmap

	// Secondary index (major -> records ordered by id)
	byMajor *multiindex.MultiIndex[string, model.Record]

	// Highest id ever stored; allocation continues above it
	lastID model.ID
}

// New creates an empty RecordStore, seeded with any records passed via
// WithRecords.
func New(optFns ...Option) (*RecordStore, error) {
	opts := applyOptions(optFns)

	s := &RecordStore{
		records: make(map[model.ID]model.Record),
		ids:     roaring.New(),
		byMajor: multiindex.New[string](model.Compare, func(o *multiindex.Options) {
			o.Degree = opts.indexDegree
		}),
	}

	for _, r := range opts.records {
		if _, _, err := s.Save(r); err != nil {
			return nil, fmt.Errorf("store: seed %v: %w", r, err)
		}
	}

	return s, nil
}

// Get returns the record stored under id.
func (s *RecordStore) Get(id model.ID) (model.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.records[id]
	if !ok {
		return model.Record{}, fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	return r, nil
}

// Contains reports whether a record with the given id exists.
func (s *RecordStore) Contains(id model.ID) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.records[id]
	return ok
}

// Save inserts r, or replaces the record with the same id. An id of zero is
// replaced by a freshly allocated one. It returns the stored record and
// whether it was newly created.
//
// When an update moves a record to another major, the old index entry is
// removed (pruning its bucket if it became empty) before the new one is
// added. Updates within the same major replace the entry in place.
//
// On failure nothing changes, and created reports whether r would have been
// inserted rather than updated.
func (s *RecordStore) Save(r model.Record) (model.Record, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Zero is never stored, so an id to be allocated is always new.
	old, exists := s.records[r.ID]

	if err := r.Validate(); err != nil {
		return model.Record{}, !exists, fmt.Errorf("%w: %w", ErrInvalidRecord, err)
	}

	if r.ID == 0 {
		id, err := s.allocateIDLocked()
		if err != nil {
			return model.Record{}, true, err
		}
		r.ID = id
	}

	switch {
	case !exists:
		s.ids.Add(uint32(r.ID))
		s.byMajor.Put(r.Major, r)
	case old.Major != r.Major:
		s.byMajor.Remove(old.Major, old)
		s.byMajor.Put(r.Major, r)
	default:
		s.byMajor.Upsert(r.Major, r)
	}

	s.records[r.ID] = r
	s.lastID = max(s.lastID, r.ID)

	return r, !exists, nil
}

// Delete removes the record stored under id and returns it.
func (s *RecordStore) Delete(id model.ID) (model.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	old, ok := s.records[id]
	if !ok {
		return model.Record{}, fmt.Errorf("%w: id %d", ErrNotFound, id)
	}

	s.byMajor.Remove(old.Major, old)
	s.ids.Remove(uint32(id))
	delete(s.records, id)

	return old, nil
}

// All returns a lazy iterator over all records in ascending id order.
//
// Each iteration starts from the ids present when it begins; records deleted
// before they are reached are skipped. No lock is held while yielding, so
// the consumer may call back into the store. The iterator can be reused.
func (s *RecordStore) All() iter.Seq[model.Record] {
	return func(yield func(model.Record) bool) {
		s.mu.RLock()
		ids := s.ids.Clone()
		s.mu.RUnlock()

		it := ids.Iterator()
		for it.HasNext() {
			id := model.ID(it.Next())

			s.mu.RLock()
			r, ok := s.records[id]
			s.mu.RUnlock()

			if !ok {
				continue
			}
			if !yield(r) {
				return
			}
		}
	}
}

// Snapshot returns all records in ascending id order as of a single point in
// time.
func (s *RecordStore) Snapshot() []model.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Record, 0, len(s.records))
	it := s.ids.Iterator()
	for it.HasNext() {
		out = append(out, s.records[model.ID(it.Next())])
	}
	return out
}

// Majors returns the majors held by at least one record, in lexicographic
// order.
func (s *RecordStore) Majors() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.byMajor.Keys()
}

// ByMajor returns the records with the given major in ascending id order.
// The result is empty, never nil, for an unknown major.
func (s *RecordStore) ByMajor(major string) []model.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.byMajor.Get(major)
}

// CountByMajor returns the number of records with the given major.
func (s *RecordStore) CountByMajor(major string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.byMajor.LenOfKey(major)
}

// Len returns the number of records.
func (s *RecordStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.records)
}

// allocateIDLocked returns the next unused id.
// Caller must hold s.mu.Lock().
func (s *RecordStore) allocateIDLocked() (model.ID, error) {
	if s.lastID == math.MaxUint32 {
		return 0, fmt.Errorf("%w: %w", ErrInvalidRecord, &model.ValidationError{
			Field:  "id",
			Reason: "id space exhausted",
		})
	}
	return s.lastID + 1, nil
}
