package cell

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TragicallyProgrammed/WaveFunctionCollapseDemo/internal/catalog"
	"github.com/TragicallyProgrammed/WaveFunctionCollapseDemo/internal/rng"
)

func twoWayCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	all := "S"
	cat, err := catalog.Build([]catalog.RawPrototype{
		{Description: "A", Weight: 1, Sockets: [6]string{all, all, all, all, all, all}},
		{Description: "B", Weight: 9, Sockets: [6]string{all, all, all, all, all, all}},
	})
	require.NoError(t, err)
	return cat
}

// TestEntropyZeroIffCollapsed checks that entropy is zero exactly when the
// domain has been reduced to a single prototype.
func TestEntropyZeroIffCollapsed(t *testing.T) {
	cat := twoWayCatalog(t)
	c := New(cat, 0, 0, 0, cat.AllMask)

	assert.False(t, c.Collapsed())
	assert.NotZero(t, c.Entropy())

	_, err := c.RemoveProbabilities(uint64(1) << 1) // remove B
	require.NoError(t, err)
	assert.True(t, c.Collapsed())
	assert.Zero(t, c.Entropy())
}

func TestRemoveProbabilitiesToEmptyIsContradiction(t *testing.T) {
	cat := twoWayCatalog(t)
	c := New(cat, 1, 2, 3, cat.AllMask)

	_, err := c.RemoveProbabilities(cat.AllMask)
	var ce *ContradictionError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, 1, ce.X)
	assert.Equal(t, 2, ce.Z)
	assert.Equal(t, 3, ce.Y)
}

func TestCollapseIsNoopWhenAlreadySingleton(t *testing.T) {
	cat := twoWayCatalog(t)
	c := New(cat, 0, 0, 0, uint64(1))
	require.NoError(t, c.Collapse(rng.New(1)))
	assert.Equal(t, 0, c.Prototype())
}

// TestCollapseWeightDistribution checks that over many seeds, a 1:9 weight
// split lands close to the expected ratio.
func TestCollapseWeightDistribution(t *testing.T) {
	cat := twoWayCatalog(t)

	const trials = 4000
	counts := [2]int{}
	for seed := int64(0); seed < trials; seed++ {
		c := New(cat, 0, 0, 0, cat.AllMask)
		require.NoError(t, c.Collapse(rng.New(seed)))
		counts[c.Prototype()]++
	}

	ratioA := float64(counts[0]) / float64(trials)
	assert.InDelta(t, 0.10, ratioA, 0.03, "weight-1 prototype should occur near 10%% of the time")
}

func TestNeighborUnionTracksDomain(t *testing.T) {
	all := "S"
	cat, err := catalog.Build([]catalog.RawPrototype{
		{Description: "A", Weight: 1, Sockets: [6]string{"a", "bF", all, all, all, all}},
		{Description: "B", Weight: 1, Sockets: [6]string{"b", "aF", all, all, all, all}},
		{Description: "C", Weight: 1, Sockets: [6]string{all, all, all, all, all, all}},
	})
	require.NoError(t, err)

	c := New(cat, 0, 0, 0, cat.AllMask)
	// A's +X ("a") allows B only (index 1, negX "aF"); B's +X ("b") allows
	// A only (negX "bF"); C's +X ("S") allows C. So the union of A,B,C's +X
	// neighbor sets includes at least A and B.
	union := c.NeighborUnion(catalog.PosX)
	assert.NotZero(t, union&(uint64(1)<<1), "union should allow B via A's +X rule")

	_, err = c.RemoveProbabilities(uint64(1) << 2) // drop C from the domain
	require.NoError(t, err)
	// union recomputed over remaining domain {A,B}; must still allow B via A.
	assert.NotZero(t, c.NeighborUnion(catalog.PosX)&(uint64(1)<<1))
}
