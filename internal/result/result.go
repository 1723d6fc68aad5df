// Package result walks a fully collapsed grid and emits the flat
// (x, z, y) -> (prototypeID, rotation) mapping. This is the sole handoff
// point to external collaborators (mesh combination, rendering). A Placement
// carries the prototype id, not its Tile payload; the core never inspects
// Tile, and a consumer reads it from the catalog entry for PrototypeID.
package result

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/TragicallyProgrammed/WaveFunctionCollapseDemo/internal/cell"
	"github.com/TragicallyProgrammed/WaveFunctionCollapseDemo/internal/gridspace"
)

// Placement is one cell's final answer.
type Placement struct {
	X, Z, Y     int
	PrototypeID int
	Rotation    int
}

// Result is the flat extraction of a fully collapsed grid.
type Result struct {
	W, D, H int
	Cells   []Placement
}

// Extract walks grid in flat index order and records each cell's collapsed
// prototype id and rotation. The caller is responsible for having verified
// grid.IsFinished(); Extract panics (via Cell.Prototype) if it encounters a
// non-collapsed cell, since that should never happen for a grid returned by
// solver.Generate.
func Extract(grid *gridspace.Grid) Result {
	res := Result{W: grid.W, D: grid.D, H: grid.H, Cells: make([]Placement, grid.Len())}
	cat := grid.Catalog()

	grid.ForEach(func(i int, c *cell.Cell) {
		id := c.Prototype()
		res.Cells[i] = Placement{
			X:           i / (grid.D * grid.H),
			Z:           (i % (grid.D * grid.H)) / grid.H,
			Y:           i % grid.H,
			PrototypeID: id,
			Rotation:    cat.Prototypes[id].Rotation,
		}
	})

	return res
}

// At returns the placement at (x, z, y).
func (r Result) At(x, z, y int) Placement {
	return r.Cells[gridspace.Index(x, z, y, r.D, r.H)]
}

// Transform returns the world-space placement matrix for cell i: a rotation
// of Rotation*90 degrees about Y followed by a translation to the cell's
// grid coordinates. Mesh-combination callers use this directly instead of
// re-deriving rotation from PrototypeID.
func (r Result) Transform(i int) mgl32.Mat4 {
	p := r.Cells[i]
	rot := mgl32.HomogRotate3DY(float32(p.Rotation) * (mgl32.DegToRad(90)))
	translate := mgl32.Translate3D(float32(p.X), float32(p.Y), float32(p.Z))
	return translate.Mul4(rot)
}
