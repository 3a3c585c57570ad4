package multiindex

import (
	"cmp"
	"iter"

	"github.com/google/btree"
)

// Options configures a MultiIndex.
type Options struct {
	// Degree is the B-tree degree used for the key tree and every bucket.
	Degree int
}

// DefaultOptions contains the default options for a MultiIndex.
var DefaultOptions = Options{
	Degree: 16,
}

type bucket[K cmp.Ordered, V any] struct {
	key    K
	values *btree.BTreeG[V]
}

// MultiIndex maps keys of type K to ordered sets of values of type V.
type MultiIndex[K cmp.Ordered, V any] struct {
	opts    Options
	less    btree.LessFunc[V]
	buckets *btree.BTreeG[*bucket[K, V]]
}

// New creates an empty MultiIndex. compare orders the values of a bucket and
// decides equality: two values comparing as 0 are the same member.
func New[K cmp.Ordered, V any](compare func(a, b V) int, optFns ...func(o *Options)) *MultiIndex[K, V] {
	opts := DefaultOptions
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Degree < 2 {
		opts.Degree = DefaultOptions.Degree
	}

	return &MultiIndex[K, V]{
		opts: opts,
		less: func(a, b V) bool { return compare(a, b) < 0 },
		buckets: btree.NewG(opts.Degree, func(a, b *bucket[K, V]) bool {
			return cmp.Less(a.key, b.key)
		}),
	}
}

// Put adds value to the bucket for key, creating the bucket if needed.
// If an equal value is already present the call changes nothing and
// returns false.
func (mi *MultiIndex[K, V]) Put(key K, value V) bool {
	b := mi.getOrCreate(key)
	if b.values.Has(value) {
		return false
	}

	b.values.ReplaceOrInsert(value)
	return true
}

// Upsert adds value to the bucket for key, replacing an equal member if one
// exists. It returns the replaced member.
func (mi *MultiIndex[K, V]) Upsert(key K, value V) (V, bool) {
	return mi.getOrCreate(key).values.ReplaceOrInsert(value)
}

// Get returns the values for key in order. The result is empty, not nil,
// when the key is absent. The returned slice is owned by the caller.
func (mi *MultiIndex[K, V]) Get(key K) []V {
	b, ok := mi.lookup(key)
	if !ok {
		return []V{}
	}

	out := make([]V, 0, b.values.Len())
	b.values.Ascend(func(v V) bool {
		out = append(out, v)
		return true
	})
	return out
}

// Values returns an iterator over the values for key in order.
// The index must not be modified while the iteration is in progress.
func (mi *MultiIndex[K, V]) Values(key K) iter.Seq[V] {
	return func(yield func(V) bool) {
		b, ok := mi.lookup(key)
		if !ok {
			return
		}
		b.values.Ascend(btree.ItemIteratorG[V](yield))
	}
}

// Remove removes value from the bucket for key. The key itself is removed
// once its bucket is empty. It returns false if the value was not present.
func (mi *MultiIndex[K, V]) Remove(key K, value V) bool {
	b, ok := mi.lookup(key)
	if !ok {
		return false
	}

	if _, ok := b.values.Delete(value); !ok {
		return false
	}

	if b.values.Len() == 0 {
		mi.buckets.Delete(b)
	}
	return true
}

// RemoveKey drops the whole bucket for key and returns how many values it held.
func (mi *MultiIndex[K, V]) RemoveKey(key K) int {
	b, ok := mi.buckets.Delete(&bucket[K, V]{key: key})
	if !ok {
		return 0
	}
	return b.values.Len()
}

// Contains reports whether the bucket for key holds a value equal to value.
func (mi *MultiIndex[K, V]) Contains(key K, value V) bool {
	b, ok := mi.lookup(key)
	if !ok {
		return false
	}
	return b.values.Has(value)
}

// ContainsKey reports whether key has a (non-empty) bucket.
func (mi *MultiIndex[K, V]) ContainsKey(key K) bool {
	return mi.buckets.Has(&bucket[K, V]{key: key})
}

// Keys returns all keys in order.
func (mi *MultiIndex[K, V]) Keys() []K {
	keys := make([]K, 0, mi.buckets.Len())
	mi.buckets.Ascend(func(b *bucket[K, V]) bool {
		keys = append(keys, b.key)
		return true
	})
	return keys
}

// AllKeys returns an iterator over all keys in order.
// The index must not be modified while the iteration is in progress.
func (mi *MultiIndex[K, V]) AllKeys() iter.Seq[K] {
	return func(yield func(K) bool) {
		mi.buckets.Ascend(func(b *bucket[K, V]) bool {
			return yield(b.key)
		})
	}
}

// Len returns the number of keys.
func (mi *MultiIndex[K, V]) Len() int {
	return mi.buckets.Len()
}

// LenOfKey returns the number of values in the bucket for key, or 0 if the
// key is absent.
func (mi *MultiIndex[K, V]) LenOfKey(key K) int {
	b, ok := mi.lookup(key)
	if !ok {
		return 0
	}
	return b.values.Len()
}

// Clear removes all keys and values.
func (mi *MultiIndex[K, V]) Clear() {
	mi.buckets.Clear(false)
}

func (mi *MultiIndex[K, V]) lookup(key K) (*bucket[K, V], bool) {
	return mi.buckets.Get(&bucket[K, V]{key: key})
}

func (mi *MultiIndex[K, V]) getOrCreate(key K) *bucket[K, V] {
	if b, ok := mi.lookup(key); ok {
		return b
	}

	b := &bucket[K, V]{
		key:    key,
		values: btree.NewG(mi.opts.Degree, mi.less),
	}
	mi.buckets.ReplaceOrInsert(b)
	return b
}
