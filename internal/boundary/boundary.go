// Package boundary ships named boundary-rule sets: a config file selects a
// rule set by name instead of wiring Go closures directly.
package boundary

import (
	"strings"

	"github.com/TragicallyProgrammed/WaveFunctionCollapseDemo/internal/catalog"
	"github.com/TragicallyProgrammed/WaveFunctionCollapseDemo/internal/gridspace"
)

// NoNeighborSentinel is the label convention boundary rules use to mark a
// face that must see no neighbor at all.
const NoNeighborSentinel = "-1"

// Canonical returns the reference boundary rule set. The top layer and the
// four side faces are restricted to the no-neighbor sentinel; the bottom
// layer has no rule of its own:
//   - interior cells (interior x/z, below the top layer) drop prototypes
//     whose Description contains "Vertical".
//   - interior-x/z cells of the top layer (y = h-1) are restricted to
//     prototypes with posY == "-1"; top-layer cells on a side face get only
//     that face's rule.
//   - the ±Z / ±X side faces are restricted to prototypes with the sentinel
//     on the corresponding face.
//   - edges apply the conjunction of their two adjoining face rules, which
//     falls out naturally from ApplyRules composing matching rules by
//     intersection.
func Canonical() []gridspace.BoundaryRule {
	return []gridspace.BoundaryRule{
		{
			Region: isInterior,
			Allow: func(x, z, y, w, d, h, id int, p *catalog.Prototype) bool {
				return !strings.Contains(p.Description, "Vertical")
			},
		},
		{
			Region: func(x, z, y, w, d, h int) bool { return interiorXZ(x, z, w, d) && y == h-1 },
			Allow:  sentinelFace(catalog.PosY),
		},
		{
			Region: func(x, z, y, w, d, h int) bool { return z == d-1 },
			Allow:  sentinelFace(catalog.PosZ),
		},
		{
			Region: func(x, z, y, w, d, h int) bool { return z == 0 },
			Allow:  sentinelFace(catalog.NegZ),
		},
		{
			Region: func(x, z, y, w, d, h int) bool { return x == w-1 },
			Allow:  sentinelFace(catalog.PosX),
		},
		{
			Region: func(x, z, y, w, d, h int) bool { return x == 0 },
			Allow:  sentinelFace(catalog.NegX),
		},
	}
}

func isInterior(x, z, y, w, d, h int) bool {
	return interiorXZ(x, z, w, d) && y >= 0 && y < h-1
}

func interiorXZ(x, z, w, d int) bool {
	return x >= 1 && x < w-1 && z >= 1 && z < d-1
}

func sentinelFace(f catalog.Face) gridspace.BoundaryPredicate {
	return func(x, z, y, w, d, h, id int, p *catalog.Prototype) bool {
		return p.Sockets[f] == NoNeighborSentinel
	}
}

// Named resolves a boundary rule set by name for config-driven selection.
// "canonical" returns Canonical(); "none" and "" return nil (no hook).
func Named(name string) ([]gridspace.BoundaryRule, bool) {
	switch name {
	case "", "none":
		return nil, true
	case "canonical":
		return Canonical(), true
	default:
		return nil, false
	}
}
