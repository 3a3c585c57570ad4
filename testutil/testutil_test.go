package testutil

import (
	"slices"
	"testing"

	"github.com/hupe1980/studentdir/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecords(t *testing.T) {
	rng := NewRNG(4711)

	recs := rng.Records(8, 100)

	require.Len(t, recs, 8)
	for i, r := range recs {
		assert.Equal(t, model.ID(100+i), r.ID)
		assert.NoError(t, r.Validate())
		assert.Contains(t, Majors, r.Major)
	}
}

func TestReset(t *testing.T) {
	rng := NewRNG(4711)
	r1 := rng.Records(5, 1)

	rng.Reset()
	r2 := rng.Records(5, 1)

	assert.Equal(t, r1, r2)
	assert.Equal(t, int64(4711), rng.Seed())
}

func TestShuffle(t *testing.T) {
	rng := NewRNG(4711)
	recs := rng.Records(20, 1)

	shuffled := rng.Shuffle(recs)

	require.Len(t, shuffled, len(recs))
	slices.SortFunc(shuffled, model.Compare)
	assert.Equal(t, recs, shuffled)
}
