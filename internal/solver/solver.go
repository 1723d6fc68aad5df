// Package solver implements the observation/propagation engine and the
// retry/backtracking policy: one cell collapsed at a time, constraints
// propagated through the grid, contradictions restarting the whole
// attempt up to a configurable cap.
package solver

import (
	"context"
	"errors"

	"github.com/TragicallyProgrammed/WaveFunctionCollapseDemo/internal/catalog"
	"github.com/TragicallyProgrammed/WaveFunctionCollapseDemo/internal/cell"
	"github.com/TragicallyProgrammed/WaveFunctionCollapseDemo/internal/gridspace"
	"github.com/TragicallyProgrammed/WaveFunctionCollapseDemo/internal/rng"
)

// Unbounded is the sentinel value meaning "no cap" for both
// PropagationDepth and RetryCount.
const Unbounded = -1

// Config holds everything a single Generate call needs.
type Config struct {
	Catalog *catalog.Catalog
	W, D, H int

	// PropagationDepth bounds recursive propagation; Unbounded (-1) means no
	// cap, otherwise a non-negative depth.
	PropagationDepth int
	// RetryCount bounds contradiction-driven restarts; Unbounded (-1) means
	// no cap, otherwise a non-negative count.
	RetryCount int

	Seed int64

	// Hook is the boundary constraint hook applied once per attempt,
	// immediately after allocation and before solving starts. Nil means no
	// hook. gridspace.ApplyRules adapts a declarative []BoundaryRule into
	// this closure form.
	Hook gridspace.Hook
}

// Solver runs WFC attempts against one prototype catalog. A Solver may be
// reused for multiple Generate calls; each call allocates its own grids, so
// no cell state carries over between runs. The RNG is created once in New
// and its stream continues across calls, so a second Generate on the same
// Solver does not repeat the first one's draws.
type Solver struct {
	cfg Config
	rng rng.Source
}

// New validates cfg and returns a ready Solver.
func New(cfg Config) (*Solver, error) {
	if cfg.Catalog == nil || cfg.Catalog.Len() == 0 {
		return nil, invalidInputf("catalog must be non-empty")
	}
	if cfg.W < 1 || cfg.D < 1 || cfg.H < 1 {
		return nil, invalidInputf("dimensions must all be >= 1, got %d x %d x %d", cfg.W, cfg.D, cfg.H)
	}
	if cfg.PropagationDepth < Unbounded {
		return nil, invalidInputf("propagationDepth must be -1 or >= 0, got %d", cfg.PropagationDepth)
	}
	if cfg.RetryCount < Unbounded {
		return nil, invalidInputf("retryCount must be -1 or >= 0, got %d", cfg.RetryCount)
	}

	return &Solver{cfg: cfg, rng: rng.New(cfg.Seed)}, nil
}

// Generate runs attempts until a fully collapsed grid is produced, the
// retry budget is exhausted, or ctx is cancelled.
func (s *Solver) Generate(ctx context.Context) (*gridspace.Grid, error) {
	retries := 0
	for {
		if err := ctx.Err(); err != nil {
			return nil, ErrCancelled
		}

		grid, err := gridspace.New(s.cfg.Catalog, s.cfg.W, s.cfg.D, s.cfg.H, s.cfg.Hook)
		if err == nil {
			err = s.attempt(ctx, grid)
			if err == nil {
				return grid, nil
			}
		}

		var contradiction *cell.ContradictionError
		if errors.As(err, &contradiction) {
			retries++
			if s.cfg.RetryCount != Unbounded && retries > s.cfg.RetryCount {
				return nil, &RetryCountExceededError{RetryCount: s.cfg.RetryCount}
			}
			continue
		}

		return nil, err
	}
}

// attempt runs the seed step and observation loop against one freshly
// allocated grid.
func (s *Solver) attempt(ctx context.Context, grid *gridspace.Grid) error {
	seedIdx := s.rng.Intn(grid.Len())
	if err := grid.GetByIndex(seedIdx).Collapse(s.rng); err != nil {
		return err
	}
	if err := s.propagate(ctx, grid, seedIdx); err != nil {
		return err
	}

	for !grid.IsFinished() {
		if err := ctx.Err(); err != nil {
			return ErrCancelled
		}

		idx := s.selectCell(grid)
		if idx < 0 {
			// Every cell is already collapsed; IsFinished would have caught
			// this, but guards against a tie-break edge case cleanly.
			break
		}

		if err := grid.GetByIndex(idx).Collapse(s.rng); err != nil {
			return err
		}
		if err := s.propagate(ctx, grid, idx); err != nil {
			return err
		}
	}

	return nil
}

// selectCell scans every cell and returns the index of the one with the
// smallest strictly-positive entropy, or -1 if none remain open. Ties are
// broken by scan order (the first minimum encountered wins), which is
// deterministic for a given grid layout.
func (s *Solver) selectCell(grid *gridspace.Grid) int {
	best := -1
	bestEntropy := 0.0

	for i := 0; i < grid.Len(); i++ {
		c := grid.GetByIndex(i)
		e := c.Entropy()
		if e <= 0 {
			continue
		}
		if best < 0 || e < bestEntropy {
			best = i
			bestEntropy = e
		}
	}
	return best
}

type propagationItem struct {
	idx   int
	depth int
}

// propagate walks an explicit work-stack instead of recursing, so it can't
// overflow the call stack on a large grid with unbounded depth.
func (s *Solver) propagate(ctx context.Context, grid *gridspace.Grid, start int) error {
	stack := []propagationItem{{idx: start, depth: 0}}

	for len(stack) > 0 {
		if err := ctx.Err(); err != nil {
			return ErrCancelled
		}

		item := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if s.cfg.PropagationDepth != Unbounded && item.depth >= s.cfg.PropagationDepth {
			continue
		}

		origin := grid.GetByIndex(item.idx)
		x, z, y := origin.X, origin.Z, origin.Y

		var invalid uint64
		var shrunkNeighbors []int

		for f := catalog.Face(0); f < 6; f++ {
			nx, nz, ny, ok := grid.Neighbor(x, z, y, f)
			if !ok {
				continue
			}
			neighborIdx := gridspace.Index(nx, nz, ny, grid.D, grid.H)
			neighbor := grid.GetByIndex(neighborIdx)

			opposite := catalog.Opposite(f)
			invalidHere := origin.Domain() &^ neighbor.NeighborUnion(opposite)
			invalid |= invalidHere

			shrinkNeighbor := neighbor.Domain() &^ origin.NeighborUnion(f)
			if shrinkNeighbor != 0 {
				shrunkNeighbors = append(shrunkNeighbors, neighborIdx)
			}
		}

		if invalid != 0 {
			if _, err := origin.RemoveProbabilities(invalid); err != nil {
				return err
			}
		}

		for _, nIdx := range shrunkNeighbors {
			stack = append(stack, propagationItem{idx: nIdx, depth: item.depth + 1})
		}
	}

	return nil
}
