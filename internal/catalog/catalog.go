// Package catalog holds the set of tile prototypes a solver run draws from,
// together with the per-face neighbor sets derived from their socket labels.
//
// Neighbor sets are represented as uint64 bitsets keyed by a prototype's
// index in the catalog, avoiding any ownership cycle between prototypes
// that reference each other. A catalog is frozen once built: Build is the
// only way to produce one, and nothing below it mutates a *Catalog
// afterwards.
package catalog

import "github.com/TragicallyProgrammed/WaveFunctionCollapseDemo/internal/socket"

// Face identifies one of a prototype's six sides.
type Face int

const (
	PosX Face = iota
	NegX
	PosZ
	NegZ
	PosY
	NegY
	faceCount
)

// Opposite returns the face directly across a cell from f.
func Opposite(f Face) Face {
	switch f {
	case PosX:
		return NegX
	case NegX:
		return PosX
	case PosZ:
		return NegZ
	case NegZ:
		return PosZ
	case PosY:
		return NegY
	case NegY:
		return PosY
	}
	return f
}

func axisFor(f Face) socket.Axis {
	switch f {
	case PosX, NegX:
		return socket.AxisX
	case PosZ, NegZ:
		return socket.AxisZ
	default:
		return socket.AxisY
	}
}

// maxPrototypes is the number of distinct tile ids a single uint64 bitset
// can address. Catalogs beyond this width are rejected rather than
// silently truncated.
const maxPrototypes = 64

// RawPrototype is the caller-authored description of a tile archetype
// before catalog construction derives its neighbor sets.
type RawPrototype struct {
	Description string
	Tile        any
	Weight      int
	Rotation    int
	Sockets     [faceCount]string
}

// Prototype is an immutable catalog entry. Neighbors[f] is a bitset of
// prototype ids compatible across face f.
type Prototype struct {
	ID          int
	Description string
	Tile        any
	Weight      int
	Rotation    int
	Sockets     [faceCount]string
	Neighbors   [faceCount]uint64
}

// Catalog is the frozen set of prototypes a solver run draws from.
type Catalog struct {
	Prototypes []Prototype
	AllMask    uint64
}

// Build derives per-face neighbor sets for every prototype and freezes the
// result. For every ordered pair (p, q) and every face f, q is added to
// p.Neighbors[f] iff socket.Match(p.Sockets[f], q.Sockets[Opposite(f)],
// axisFor(f)) holds; (p, p) is a legal pair and is tested like any other.
func Build(raw []RawPrototype) (*Catalog, error) {
	if len(raw) == 0 {
		return nil, ErrEmptyCatalog
	}
	if len(raw) > maxPrototypes {
		return nil, ErrTooManyPrototypes
	}

	prototypes := make([]Prototype, len(raw))
	for i, r := range raw {
		if r.Weight < 1 {
			return nil, ErrInvalidWeight
		}
		prototypes[i] = Prototype{
			ID:          i,
			Description: r.Description,
			Tile:        r.Tile,
			Weight:      r.Weight,
			Rotation:    r.Rotation,
			Sockets:     r.Sockets,
		}
	}

	for pi := range prototypes {
		for f := Face(0); f < faceCount; f++ {
			axis := axisFor(f)
			opp := Opposite(f)
			var mask uint64
			for qi := range prototypes {
				if socket.Match(prototypes[pi].Sockets[f], prototypes[qi].Sockets[opp], axis) {
					mask |= uint64(1) << uint(qi)
				}
			}
			prototypes[pi].Neighbors[f] = mask
		}
	}

	allMask := uint64(1)<<uint(len(prototypes)) - 1

	return &Catalog{Prototypes: prototypes, AllMask: allMask}, nil
}

// Len returns the number of prototypes in the catalog.
func (c *Catalog) Len() int { return len(c.Prototypes) }
