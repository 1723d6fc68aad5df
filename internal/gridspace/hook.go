package gridspace

import (
	"github.com/TragicallyProgrammed/WaveFunctionCollapseDemo/internal/catalog"
	"github.com/TragicallyProgrammed/WaveFunctionCollapseDemo/internal/cell"
)

// BoundaryPredicate decides whether a given prototype id remains allowed at
// a specific grid position. w, d, h are the grid dimensions so the
// predicate can reason about edges and corners without a closure over them.
type BoundaryPredicate func(x, z, y, w, d, h, prototypeID int, p *catalog.Prototype) bool

// BoundaryRule restricts the cells whose coordinates satisfy Region to the
// prototypes for which Allow returns true. This is a declarative
// alternative to writing a Hook by hand; ApplyRules adapts a slice of
// these into the Hook signature New expects.
type BoundaryRule struct {
	Region func(x, z, y, w, d, h int) bool
	Allow  BoundaryPredicate
}

// ApplyRules builds a Hook from a set of declarative rules. For every cell
// and every rule whose Region matches that cell's coordinates, prototypes
// for which Allow returns false are removed from the cell's domain.
// Multiple matching rules compose by intersection (each further restricts
// the surviving domain) — a cell on an edge where two side rules both
// apply ends up restricted to prototypes both rules allow.
func ApplyRules(rules []BoundaryRule) Hook {
	return func(cells []*cell.Cell, w, d, h int) ([]*cell.Cell, error) {
		for _, c := range cells {
			var remove uint64
			for _, rule := range rules {
				if !rule.Region(c.X, c.Z, c.Y, w, d, h) {
					continue
				}
				cat := c.Catalog()
				for _, p := range cat.Prototypes {
					if c.Domain()&(uint64(1)<<uint(p.ID)) == 0 {
						continue
					}
					if !rule.Allow(c.X, c.Z, c.Y, w, d, h, p.ID, &p) {
						remove |= uint64(1) << uint(p.ID)
					}
				}
			}
			if remove != 0 {
				if _, err := c.RemoveProbabilities(remove); err != nil {
					return nil, err
				}
			}
		}
		return cells, nil
	}
}
