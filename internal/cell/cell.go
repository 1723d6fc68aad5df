// Package cell implements the per-position domain of still-possible
// prototypes: a bitset of surviving prototype ids, plus the cached entropy
// and neighbor-union values the solver reads on every propagation step.
package cell

import (
	"fmt"
	"math"
	"math/bits"

	"github.com/TragicallyProgrammed/WaveFunctionCollapseDemo/internal/catalog"
	"github.com/TragicallyProgrammed/WaveFunctionCollapseDemo/internal/rng"
)

// ContradictionError reports a cell whose domain was reduced to empty.
type ContradictionError struct {
	X, Z, Y int
}

func (e *ContradictionError) Error() string {
	return fmt.Sprintf("cell: contradiction at (%d,%d,%d)", e.X, e.Z, e.Y)
}

// Cell is a single grid position's mutable WFC state.
type Cell struct {
	X, Z, Y int

	cat    *catalog.Catalog
	domain uint64

	entropy       float64
	neighborUnion [6]uint64
}

// New builds a cell whose domain is exactly the prototype ids set in
// initial (typically catalog.AllMask, or a subset a boundary hook already
// filtered), computing its entropy and neighborUnion.
func New(cat *catalog.Catalog, x, z, y int, initial uint64) *Cell {
	c := &Cell{X: x, Z: z, Y: y, cat: cat, domain: initial}
	c.recompute()
	return c
}

// Domain returns the current bitset of still-possible prototype ids.
func (c *Cell) Domain() uint64 { return c.domain }

// Catalog returns the catalog this cell's domain indexes into.
func (c *Cell) Catalog() *catalog.Catalog { return c.cat }

// Entropy returns the cached Shannon entropy of the domain's weights; 0 iff
// the domain is a singleton.
func (c *Cell) Entropy() float64 { return c.entropy }

// NeighborUnion returns the cached union, over every prototype currently in
// the domain, of that prototype's neighbor set for face f.
func (c *Cell) NeighborUnion(f catalog.Face) uint64 { return c.neighborUnion[f] }

// Len reports the number of prototypes still possible in this cell.
func (c *Cell) Len() int { return bits.OnesCount64(c.domain) }

// Collapsed reports whether the domain has been reduced to exactly one
// prototype.
func (c *Cell) Collapsed() bool { return c.Len() == 1 }

// Prototype returns the sole remaining prototype id once Collapsed is true.
// It panics if called on a non-collapsed cell; callers must check
// Collapsed first.
func (c *Cell) Prototype() int {
	if !c.Collapsed() {
		panic("cell: Prototype called on a non-collapsed cell")
	}
	return bits.TrailingZeros64(c.domain)
}

// RemoveProbabilities sets domain to domain \ remove, recomputing entropy
// and neighborUnion. It reports whether the domain is now a singleton, and
// returns a *ContradictionError if the domain became empty.
func (c *Cell) RemoveProbabilities(remove uint64) (bool, error) {
	newDomain := c.domain &^ remove
	if newDomain == c.domain {
		return c.Collapsed(), nil
	}
	if newDomain == 0 {
		return false, &ContradictionError{X: c.X, Z: c.Z, Y: c.Y}
	}
	c.domain = newDomain
	c.recompute()
	return c.Collapsed(), nil
}

// Collapse performs a weighted random pick among the domain's prototypes:
// draw r uniformly from [1, W] where W is the sum of weights, then walk the
// domain accumulating weights until the running sum reaches r. A no-op if
// the cell is already collapsed.
func (c *Cell) Collapse(r rng.Source) error {
	if c.Collapsed() {
		return nil
	}
	if c.domain == 0 {
		return &ContradictionError{X: c.X, Z: c.Z, Y: c.Y}
	}

	total := 0
	mask := c.domain
	for mask != 0 {
		id := bits.TrailingZeros64(mask)
		mask &^= uint64(1) << uint(id)
		total += c.cat.Prototypes[id].Weight
	}

	draw := 1 + r.Intn(total) // uniform over [1, total]
	running := 0
	chosen := -1
	mask = c.domain
	for mask != 0 {
		id := bits.TrailingZeros64(mask)
		mask &^= uint64(1) << uint(id)
		running += c.cat.Prototypes[id].Weight
		if running >= draw {
			chosen = id
			break
		}
	}
	if chosen < 0 {
		// Unreachable given draw <= total, kept as a defensive contradiction
		// rather than a panic so a caller sees it through the normal retry path.
		return &ContradictionError{X: c.X, Z: c.Z, Y: c.Y}
	}

	c.domain = uint64(1) << uint(chosen)
	c.recompute()
	return nil
}

func (c *Cell) recompute() {
	c.entropy = shannonEntropy(c.cat, c.domain)

	for f := catalog.Face(0); f < 6; f++ {
		var union uint64
		mask := c.domain
		for mask != 0 {
			id := bits.TrailingZeros64(mask)
			mask &^= uint64(1) << uint(id)
			union |= c.cat.Prototypes[id].Neighbors[f]
		}
		c.neighborUnion[f] = union
	}
}

// shannonEntropy computes H = ln(W) - (Σ w·ln(w))/W over the domain's
// weights, returning 0 for a singleton domain even though the formula
// already yields ~0 there.
func shannonEntropy(cat *catalog.Catalog, domain uint64) float64 {
	if bits.OnesCount64(domain) <= 1 {
		return 0
	}

	var totalWeight, weightedLog float64
	mask := domain
	for mask != 0 {
		id := bits.TrailingZeros64(mask)
		mask &^= uint64(1) << uint(id)
		w := float64(cat.Prototypes[id].Weight)
		totalWeight += w
		weightedLog += w * math.Log(w)
	}
	return math.Log(totalWeight) - weightedLog/totalWeight
}
