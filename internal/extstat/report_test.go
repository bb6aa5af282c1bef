package extstat

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregate(t *testing.T) {
	t.Parallel()

	entries := []FileEntry{
		{Ext: ".txt", Size: 100},
		{Ext: ".txt", Size: 924},
		{Ext: "", Size: 50},
	}

	sizes := Aggregate(slices.Values(entries))

	assert.Equal(t, map[string]int64{".txt": 1024, "": 50}, sizes.Map())
	assert.Equal(t, []string{".txt", ""}, sizes.Keys())
	assert.Equal(t, int64(1074), sizes.Total())
}

func TestAggregateEmpty(t *testing.T) {
	t.Parallel()

	sizes := Aggregate(slices.Values([]FileEntry(nil)))

	assert.Equal(t, 0, sizes.Len())
	assert.Empty(t, sizes.Map())
	assert.Equal(t, int64(0), sizes.Total())
}

func TestAggregateOrderIndependent(t *testing.T) {
	t.Parallel()

	exts := []string{".go", ".md", "", ".txt", ".gz"}
	rng := rand.New(rand.NewPCG(1, 2)) //nolint:gosec // Deterministic shuffle for tests

	entries := make([]FileEntry, 0, 200)

	var total int64

	for i := range 200 {
		size := rng.Int64N(1 << 20)
		total += size
		entries = append(entries, FileEntry{Ext: exts[i%len(exts)], Size: size})
	}

	want := Aggregate(slices.Values(entries)).Map()

	for range 5 {
		shuffled := slices.Clone(entries)
		rng.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})

		got := Aggregate(slices.Values(shuffled))
		require.Equal(t, want, got.Map())
		require.Equal(t, total, got.Total())
	}
}

func TestReportKeepsFirstSeenOrder(t *testing.T) {
	t.Parallel()

	report := NewReport[string]()
	report.Set("b", "1")
	report.Set("a", "2")
	report.Set("b", "3")

	assert.Equal(t, []string{"b", "a"}, report.Keys())

	var pairs []string
	for k, v := range report.All() {
		pairs = append(pairs, k+"="+v)
	}

	assert.Equal(t, []string{"b=3", "a=2"}, pairs)

	_, ok := report.Get("missing")
	assert.False(t, ok)
}
