package testutil

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCyclic(t *testing.T) {
	cfg := DefaultWorkload()
	specs := Cyclic(cfg)

	require.Len(t, specs, 1000)

	// Counters advance before use.
	assert.Equal(t, strings.Repeat(cfg.NamePrefix, 2), specs[0].Name)
	assert.Equal(t, "attributeBase_1", specs[0].Attributes[0])
	assert.Equal(t, "attributeBase_250", specs[0].Attributes[249])
	assert.Equal(t, "attributeBase_251", specs[1].Attributes[0])
	assert.Equal(t, "attributeBase_0", specs[1].Attributes[49])
	assert.Equal(t, cfg.NamePrefix, specs[9].Name)

	for _, s := range specs {
		assert.Len(t, s.Attributes, 250)
		assert.True(t, strings.HasPrefix(s.Name, cfg.NamePrefix))

		seen := make(map[string]struct{}, len(s.Attributes))
		for _, a := range s.Attributes {
			seen[a] = struct{}{}
		}
		assert.Len(t, seen, 250)
	}
}

func TestWorkload_Deterministic(t *testing.T) {
	cfg := WorkloadConfig{
		Blocks:             50,
		BaseNames:          3,
		AttributesPerBlock: 5,
		DistinctAttributes: 20,
		NamePrefix:         "b",
		AttributePrefix:    "a",
	}

	rng := NewRNG(4711)
	first := rng.Workload(cfg)
	rng.Reset()
	second := rng.Workload(cfg)

	assert.Equal(t, first, second)
	assert.Equal(t, int64(4711), rng.Seed())

	for _, s := range first {
		assert.Contains(t, []string{"b", "bb", "bbb"}, s.Name)
		assert.Len(t, s.Attributes, 5)
	}
}

func TestRNG_PermAndIntn(t *testing.T) {
	rng := NewRNG(7)

	perm := rng.Perm(10)
	assert.ElementsMatch(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, perm)

	for range 100 {
		n := rng.Intn(3)
		assert.GreaterOrEqual(t, n, 0)
		assert.Less(t, n, 3)
	}
}
