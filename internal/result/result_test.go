package result

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TragicallyProgrammed/WaveFunctionCollapseDemo/internal/catalog"
	"github.com/TragicallyProgrammed/WaveFunctionCollapseDemo/internal/gridspace"
	"github.com/TragicallyProgrammed/WaveFunctionCollapseDemo/internal/rng"
)

func soloCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	all := "S"
	cat, err := catalog.Build([]catalog.RawPrototype{
		{Description: "solo", Weight: 1, Rotation: 2, Sockets: [6]string{all, all, all, all, all, all}},
	})
	require.NoError(t, err)
	return cat
}

func collapseAll(t *testing.T, g *gridspace.Grid) {
	t.Helper()
	r := rng.New(1)
	for i := 0; i < g.Len(); i++ {
		require.NoError(t, g.GetByIndex(i).Collapse(r))
	}
}

func TestExtractRecordsEveryCellInFlatOrder(t *testing.T) {
	cat := soloCatalog(t)
	g, err := gridspace.New(cat, 2, 2, 2, nil)
	require.NoError(t, err)
	collapseAll(t, g)

	res := Extract(g)
	require.Equal(t, g.Len(), len(res.Cells))
	assert.Equal(t, 2, res.W)
	assert.Equal(t, 2, res.D)
	assert.Equal(t, 2, res.H)

	for i, p := range res.Cells {
		x, z, y := g.Coords(i)
		assert.Equal(t, x, p.X)
		assert.Equal(t, z, p.Z)
		assert.Equal(t, y, p.Y)
		assert.Equal(t, 0, p.PrototypeID)
		assert.Equal(t, 2, p.Rotation)
	}
}

func TestAtMatchesExtractOrder(t *testing.T) {
	cat := soloCatalog(t)
	g, err := gridspace.New(cat, 3, 2, 1, nil)
	require.NoError(t, err)
	collapseAll(t, g)

	res := Extract(g)
	for i := 0; i < g.Len(); i++ {
		x, z, y := g.Coords(i)
		assert.Equal(t, res.Cells[i], res.At(x, z, y))
	}
}

func TestTransformTranslatesToCellCoordinates(t *testing.T) {
	cat := soloCatalog(t)
	g, err := gridspace.New(cat, 2, 2, 2, nil)
	require.NoError(t, err)
	collapseAll(t, g)

	res := Extract(g)
	idx := gridspace.Index(1, 0, 1, res.D, res.H)
	m := res.Transform(idx)

	translated := m.Mul4x1([4]float32{0, 0, 0, 1})
	assert.InDelta(t, 1, translated[0], 1e-5)
	assert.InDelta(t, 1, translated[1], 1e-5)
	assert.InDelta(t, 0, translated[2], 1e-5)
}
