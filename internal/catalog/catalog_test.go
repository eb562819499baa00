package catalog_test

import (
	"testing"

	"github.com/programme-lv/seqbench/internal/catalog"
	"github.com/stretchr/testify/require"
)

func TestDefaultRegistry(t *testing.T) {
	algos := catalog.Default()
	require.Len(t, algos, 7)

	seen := map[int]bool{}
	for _, a := range algos {
		require.False(t, seen[a.ID], "duplicate algorithm id %d", a.ID)
		seen[a.ID] = true
		require.NotEmpty(t, a.Key)
		require.NotEmpty(t, a.Name)
		require.NotEmpty(t, a.Complexity)
	}
}

func TestFind(t *testing.T) {
	algos := catalog.Default()

	naive, ok := catalog.Find(algos, "naive")
	require.True(t, ok)
	require.Equal(t, 15, naive.ID)

	_, ok = catalog.Find(algos, "bitap")
	require.False(t, ok)
}

func TestShiftOrPatternCeiling(t *testing.T) {
	algos := catalog.Default()
	shiftOr, ok := catalog.Find(algos, "shift-or")
	require.True(t, ok)

	require.True(t, shiftOr.Applicable(64))
	require.False(t, shiftOr.Applicable(65))
	require.False(t, shiftOr.Applicable(100))

	naive, _ := catalog.Find(algos, "naive")
	require.True(t, naive.Applicable(100))
	require.True(t, naive.Applicable(1_000_000))
}

func TestMemoryModel(t *testing.T) {
	algos := catalog.Default()

	cases := []struct {
		key  string
		want int64
	}{
		{"naive", 0},
		{"rabin-karp", 0},
		{"kmp", 40},
		{"boyer-moore", (10 + 256) * 4},
		{"suffix-array", 1_000_000 * 4},
		{"shift-or", 2048},
		{"z-algorithm", (1_000_000 + 10) * 4},
	}
	for _, tc := range cases {
		a, ok := catalog.Find(algos, tc.key)
		require.True(t, ok, tc.key)
		require.Equal(t, tc.want, a.MemoryBytes(1_000_000, 10), tc.key)
	}
}
