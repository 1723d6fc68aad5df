// Package gridspace holds the 3D array of cells a solver attempt operates
// on: index math, bounds checks, and the boundary-hook application point.
package gridspace

import (
	"errors"

	"github.com/TragicallyProgrammed/WaveFunctionCollapseDemo/internal/catalog"
	"github.com/TragicallyProgrammed/WaveFunctionCollapseDemo/internal/cell"
)

// ErrInvalidDimensions indicates a grid was requested with a non-positive
// dimension.
var ErrInvalidDimensions = errors.New("gridspace: width, depth and height must all be >= 1")

// Hook is the closure form of a boundary constraint: it receives the freshly
// allocated cell slice and may mutate it or return a replacement of the same
// length. BoundaryRule (see hook.go) is the declarative alternative built on
// top of it.
type Hook func(cells []*cell.Cell, w, d, h int) ([]*cell.Cell, error)

// Grid is a W×D×H array of cells indexed [x][z][y], flattened internally.
type Grid struct {
	W, D, H int
	cat     *catalog.Catalog
	cells   []*cell.Cell
}

// Index converts 3D coordinates to the flat offset used by cells.
func Index(x, z, y, d, h int) int {
	return x*d*h + z*h + y
}

// New allocates a grid of fresh cells, each initialized to the full catalog
// domain, then applies hook (if non-nil). Returns ErrInvalidDimensions if
// any dimension is below 1.
func New(cat *catalog.Catalog, w, d, h int, hook Hook) (*Grid, error) {
	if w < 1 || d < 1 || h < 1 {
		return nil, ErrInvalidDimensions
	}

	cells := make([]*cell.Cell, w*d*h)
	for x := 0; x < w; x++ {
		for z := 0; z < d; z++ {
			for y := 0; y < h; y++ {
				cells[Index(x, z, y, d, h)] = cell.New(cat, x, z, y, cat.AllMask)
			}
		}
	}

	if hook != nil {
		replaced, err := hook(cells, w, d, h)
		if err != nil {
			return nil, err
		}
		if len(replaced) != len(cells) {
			return nil, errors.New("gridspace: boundary hook returned a differently-dimensioned array")
		}
		cells = replaced
	}

	return &Grid{W: w, D: d, H: h, cat: cat, cells: cells}, nil
}

// Get returns the cell at (x, z, y).
func (g *Grid) Get(x, z, y int) *cell.Cell {
	return g.cells[Index(x, z, y, g.D, g.H)]
}

// GetByIndex returns the cell at a precomputed flat index.
func (g *Grid) GetByIndex(i int) *cell.Cell {
	return g.cells[i]
}

// Len returns the total number of cells (W*D*H).
func (g *Grid) Len() int { return len(g.cells) }

// Coords recovers (x, z, y) from a flat index.
func (g *Grid) Coords(i int) (x, z, y int) {
	x = i / (g.D * g.H)
	rem := i % (g.D * g.H)
	z = rem / g.H
	y = rem % g.H
	return
}

// ForEach calls fn once per cell, in flat index order.
func (g *Grid) ForEach(fn func(i int, c *cell.Cell)) {
	for i, c := range g.cells {
		fn(i, c)
	}
}

// IsFinished reports whether every cell is collapsed (entropy == 0
// everywhere), per the solver's termination condition.
func (g *Grid) IsFinished() bool {
	for _, c := range g.cells {
		if !c.Collapsed() {
			return false
		}
	}
	return true
}

// Catalog returns the catalog this grid's cells were built from.
func (g *Grid) Catalog() *catalog.Catalog { return g.cat }

// Neighbor returns the neighboring cell across face f from (x, z, y), and
// whether that neighbor lies within the grid bounds.
func (g *Grid) Neighbor(x, z, y int, f catalog.Face) (nx, nz, ny int, ok bool) {
	nx, nz, ny = x, z, y
	switch f {
	case catalog.PosX:
		nx++
	case catalog.NegX:
		nx--
	case catalog.PosZ:
		nz++
	case catalog.NegZ:
		nz--
	case catalog.PosY:
		ny++
	case catalog.NegY:
		ny--
	}
	if nx < 0 || nx >= g.W || nz < 0 || nz >= g.D || ny < 0 || ny >= g.H {
		return 0, 0, 0, false
	}
	return nx, nz, ny, true
}
