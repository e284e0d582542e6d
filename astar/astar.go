package astar

import (
	"container/heap"
	"fmt"

	"gridpath/geom"
	"gridpath/grid"
)

// FindPath computes the least-cost eight-connected path from from to to
// on g, or returns (nil, nil) if no path exists. Applies, in order:
// weight derivation from AttributeWeights, then the existing-path
// corridor bias, then A* itself.
//
// Preconditions and validation (in order):
//  1. from and to must be in bounds (grid.ErrOutOfBounds).
//  2. from and to must be registered (ErrNotRegistered).
//  3. PathCost must be >= 0, MaxLength (if set) must be >= 0,
//     ExistingPathMultiplier must be >= 1, ExistingPathRadius must be
//     >= 0 (ErrInvalidConfig).
//
// None of g's state is mutated until every check above passes, so a
// fatal error here never leaves the grid with partially-adjusted
// weights.
func FindPath(g *grid.Grid, from, to geom.Pos, opts ...Option) ([]geom.Pos, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 1) Bounds.
	fromReg, err := g.Registered(from)
	if err != nil {
		return nil, err
	}
	toReg, err := g.Registered(to)
	if err != nil {
		return nil, err
	}

	// 2) Registration.
	if !fromReg {
		return nil, fmt.Errorf("%w: %v", ErrNotRegistered, from)
	}
	if !toReg {
		return nil, fmt.Errorf("%w: %v", ErrNotRegistered, to)
	}

	// 3) Config.
	if cfg.PathCost < 0 {
		return nil, fmt.Errorf("%w: path cost %v must be >= 0", ErrInvalidConfig, cfg.PathCost)
	}
	if cfg.MaxLength != nil && *cfg.MaxLength < 0 {
		return nil, fmt.Errorf("%w: max length %v must be >= 0", ErrInvalidConfig, *cfg.MaxLength)
	}
	if cfg.ExistingPathMultiplier < 1 {
		return nil, fmt.Errorf("%w: existing-path multiplier %v must be >= 1", ErrInvalidConfig, cfg.ExistingPathMultiplier)
	}
	if cfg.ExistingPathRadius < 0 {
		return nil, fmt.Errorf("%w: existing-path radius %d must be >= 0", ErrInvalidConfig, cfg.ExistingPathRadius)
	}

	// 4) Weight derivation: always reset from base_weight first so the
	// corridor bias below never compounds on a previous call's result.
	g.Reset()
	g.DeriveWeights(cfg.AttributeWeights)
	if err := g.ApplyExistingPathCorridor(cfg.ExistingPaths, cfg.ExistingPathMultiplier, cfg.ExistingPathRadius); err != nil {
		return nil, err
	}

	r := &runner{
		g:        g,
		to:       to,
		pathCost: cfg.PathCost,
		maxLen:   cfg.MaxLength,
	}

	g.BeginSearch()
	r.init(from)

	found, err := r.process()
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}

	return g.PathTo(to)
}

// runner holds the mutable state for a single FindPath execution.
type runner struct {
	g        *grid.Grid
	to       geom.Pos
	pathCost float64
	maxLen   *float64

	pq     openSet
	nextID int
}

// heuristic computes the admissible estimate of the remaining cost from
// pos to the goal.
func (r *runner) heuristic(pos geom.Pos) float64 {
	return r.pathCost * geom.Dist(pos, r.to)
}

// init seeds the open set with the start cell.
func (r *runner) init(from geom.Pos) {
	r.pq = make(openSet, 0, 64)
	heap.Init(&r.pq)

	h := r.heuristic(from)
	_ = r.g.SetHeuristic(from, h)
	_ = r.g.SetVisitState(from, grid.Discovered)

	heap.Push(&r.pq, &entry{f: h, g: 0, pos: from, pathLength: 0, seq: r.nextID})
	r.nextID++
}

// process runs the main A* loop. Returns true if to was reached.
func (r *runner) process() (bool, error) {
	for r.pq.Len() > 0 {
		e := heap.Pop(&r.pq).(*entry)

		state, err := r.g.VisitState(e.pos)
		if err != nil {
			return false, err
		}
		// Stale entry: a better path to this cell was already finalized.
		if state == grid.Visited {
			continue
		}
		// Length cutoff: this entry's path is already too long to extend
		// or accept, so it is dropped without marking the cell Visited;
		// another queued entry for the same cell, if any, is still taken.
		if r.maxLen != nil && e.pathLength > *r.maxLen {
			continue
		}

		if err := r.g.SetVisitState(e.pos, grid.Visited); err != nil {
			return false, err
		}
		if e.pos == r.to {
			return true, nil
		}

		if err := r.relax(e); err != nil {
			return false, err
		}
	}

	return false, nil
}

// relax examines every registered neighbour of the just-finalized cell
// in e and pushes an improved entry for each one that admits a strictly
// better tentative g-cost.
func (r *runner) relax(e *entry) error {
	weightS, err := r.g.Weight(e.pos)
	if err != nil {
		return err
	}

	for _, n := range r.g.Neighbours(e.pos) {
		state, err := r.g.VisitState(n)
		if err != nil {
			return err
		}
		if state == grid.Visited {
			continue
		}

		weightC, err := r.g.Weight(n)
		if err != nil {
			return err
		}
		d := geom.Dist(e.pos, n)
		edgeCost := (weightS+weightC)/2 + d*r.pathCost
		gPrime := e.g + edgeCost

		if state == grid.Discovered {
			curCost, err := r.g.Cost(n)
			if err != nil {
				return err
			}
			if gPrime >= curCost {
				continue
			}
		}

		h := r.heuristic(n)
		pathLength := e.pathLength + d

		if err := r.g.SetVisitState(n, grid.Discovered); err != nil {
			return err
		}
		if err := r.g.SetParent(n, e.pos); err != nil {
			return err
		}
		if err := r.g.SetCost(n, gPrime); err != nil {
			return err
		}
		if err := r.g.SetHeuristic(n, h); err != nil {
			return err
		}
		if err := r.g.SetPathLength(n, pathLength); err != nil {
			return err
		}

		heap.Push(&r.pq, &entry{f: gPrime + h, g: gPrime, pos: n, pathLength: pathLength, seq: r.nextID})
		r.nextID++
	}

	return nil
}

// entry is one priority-queue item: a candidate visit of pos with
// known cost g, total estimate f = g + h, and path_length at time of
// push (used for the max-length cutoff).
type entry struct {
	f, g       float64
	pos        geom.Pos
	pathLength float64
	seq        int
}

// openSet is a min-heap of *entry ordered by f, then g, then insertion
// order (seq) — a fully deterministic tie-break per the open question in
// the design notes. Stale entries are never removed; they are discarded
// when popped (see runner.process), avoiding decrease-key entirely.
type openSet []*entry

func (pq openSet) Len() int { return len(pq) }

func (pq openSet) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}
	if pq[i].g != pq[j].g {
		return pq[i].g < pq[j].g
	}

	return pq[i].seq < pq[j].seq
}

func (pq openSet) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *openSet) Push(x interface{}) { *pq = append(*pq, x.(*entry)) }

func (pq *openSet) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
