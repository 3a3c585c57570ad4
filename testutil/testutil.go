package testutil

import (
	"fmt"
	"math/rand"
	"sync"

	"github.com/hupe1980/studentdir/model"
)

// Majors is the pool random records draw their major from.
var Majors = []string{
	"Alchemy",
	"Basket Weaving",
	"Knitting",
	"Ninjitsu",
	"Underwater Origami",
}

var names = []string{
	"Jack", "Jim", "Jill", "Jane", "Joe", "Ann", "Bob", "Cleo", "Dana", "Eve",
}

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Major returns a random major from Majors.
func (r *RNG) Major() string {
	return Majors[r.Intn(len(Majors))]
}

// Name returns a random name with a numeric suffix.
func (r *RNG) Name() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return fmt.Sprintf("%s-%d", names[r.rand.Intn(len(names))], r.rand.Intn(1000))
}

// Record returns a random record with the given id.
func (r *RNG) Record(id model.ID) model.Record {
	return model.Record{
		ID:    id,
		Name:  r.Name(),
		Major: r.Major(),
	}
}

// Records returns n random records with consecutive ids starting at first.
func (r *RNG) Records(n int, first model.ID) []model.Record {
	out := make([]model.Record, n)
	for i := range out {
		out[i] = r.Record(first + model.ID(i))
	}
	return out
}

// Shuffle returns a shuffled copy of recs.
func (r *RNG) Shuffle(recs []model.Record) []model.Record {
	out := make([]model.Record, len(recs))
	copy(out, recs)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}
