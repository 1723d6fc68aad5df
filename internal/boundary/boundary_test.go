package boundary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TragicallyProgrammed/WaveFunctionCollapseDemo/internal/catalog"
	"github.com/TragicallyProgrammed/WaveFunctionCollapseDemo/internal/gridspace"
)

// TestCanonicalTopLayerSentinel checks that a hook forcing posY=="-1" on
// the top layer, with exactly one prototype satisfying it, restricts every
// interior top-layer cell's domain to that prototype. Both prototypes carry
// the sentinel on their side faces so the wall rules leave them in place.
func TestCanonicalTopLayerSentinel(t *testing.T) {
	all := "S"
	wall := NoNeighborSentinel
	cat, err := catalog.Build([]catalog.RawPrototype{
		{Description: "Sky", Weight: 1, Sockets: [6]string{wall, wall, wall, wall, NoNeighborSentinel, all}},
		{Description: "Ground", Weight: 1, Sockets: [6]string{wall, wall, wall, wall, "dirt", all}},
	})
	require.NoError(t, err)

	g, err := gridspace.New(cat, 4, 4, 3, gridspace.ApplyRules(Canonical()))
	require.NoError(t, err)

	for x := 1; x < 3; x++ {
		for z := 1; z < 3; z++ {
			top := g.Get(x, z, 2)
			assert.Equal(t, uint64(1), top.Domain(), "interior top-layer cell (%d,%d) should be restricted to Sky", x, z)
		}
	}
}

func TestCanonicalRemovesVerticalInInterior(t *testing.T) {
	// Every face carries the sentinel so the top-layer and wall rules keep
	// both prototypes; only the interior rule can tell them apart.
	all := NoNeighborSentinel
	cat, err := catalog.Build([]catalog.RawPrototype{
		{Description: "Vertical Pillar", Weight: 1, Sockets: [6]string{all, all, all, all, all, all}},
		{Description: "Flat", Weight: 1, Sockets: [6]string{all, all, all, all, all, all}},
	})
	require.NoError(t, err)

	g, err := gridspace.New(cat, 4, 4, 4, gridspace.ApplyRules(Canonical()))
	require.NoError(t, err)

	interior := g.Get(2, 2, 1)
	assert.Equal(t, uint64(1)<<1, interior.Domain(), "interior cell should have the Vertical prototype removed")
}

func TestNamedResolvesKnownSets(t *testing.T) {
	_, ok := Named("canonical")
	assert.True(t, ok)
	rules, ok := Named("none")
	assert.True(t, ok)
	assert.Nil(t, rules)
	_, ok = Named("bogus")
	assert.False(t, ok)
}
