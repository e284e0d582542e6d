package grid

import (
	"fmt"

	"gridpath/attribute"
	"gridpath/geom"
)

// DeriveWeights recomputes every registered cell's effective weight from
// its base weight, plus the additive contribution of weights for
// whatever attribute tags the cell carries (§4.3(a)).
//
// Always starts from base weight, even when weights is nil/empty — this
// is what keeps a later ApplyExistingPathCorridor call idempotent: corridor
// bias is layered on top of a weight that is always freshly derived from
// base_weight in the same call, never on top of whatever a previous
// FindPath call's corridor pass left behind (Open Question resolution,
// see DESIGN.md). Callers that want corridor bias without attribute
// adjustment still call this first with a nil/empty table.
func (g *Grid) DeriveWeights(weights attribute.Weights) {
	for i, base := range g.baseWeight {
		if !g.registered[i] {
			continue
		}
		g.weight[i] = base + weights.Sum(g.attributeMask[i])
	}
}

// lerp linearly interpolates between a and b at t.
func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// ApplyExistingPathCorridor scales the effective weight of cells within
// radius (eight-connected, BFS-depth) of any cell on any of paths, by a
// factor that is multiplier at depth 0 and falls off linearly to 1 at
// depth == radius (§4.3(b)). Each cell is touched at most once, via a
// single multi-source BFS seeded from every registered cell on every
// given path.
//
// multiplier must be >= 1 (ErrInvalidConfig otherwise — a multiplier < 1
// would make existing paths cheaper, defeating the point). radius must
// be >= 0. If multiplier == 1 or paths is empty, this is a no-op.
func (g *Grid) ApplyExistingPathCorridor(paths [][]geom.Pos, multiplier float64, radius int) error {
	if multiplier < 1 {
		return fmt.Errorf("%w: existing-path multiplier %v must be >= 1", ErrInvalidConfig, multiplier)
	}
	if radius < 0 {
		return fmt.Errorf("%w: existing-path radius %d must be >= 0", ErrInvalidConfig, radius)
	}
	if multiplier == 1 || len(paths) == 0 {
		return nil
	}

	type queueItem struct {
		pos   geom.Pos
		depth int
	}

	seen := make([]bool, g.width*g.height)
	queue := make([]queueItem, 0, len(paths))

	for _, path := range paths {
		for _, pos := range path {
			if !g.InBounds(pos) {
				continue
			}
			idx := g.index(pos)
			if !g.registered[idx] || seen[idx] {
				continue
			}
			seen[idx] = true
			queue = append(queue, queueItem{pos: pos, depth: 0})
		}
	}

	for head := 0; head < len(queue); head++ {
		item := queue[head]
		idx := g.index(item.pos)

		var factor float64
		if radius == 0 {
			factor = multiplier
		} else {
			factor = lerp(multiplier, 1, float64(item.depth)/float64(radius))
		}
		g.weight[idx] *= factor

		if item.depth >= radius {
			continue
		}
		for _, n := range g.Neighbours(item.pos) {
			nidx := g.index(n)
			if seen[nidx] {
				continue
			}
			seen[nidx] = true
			queue = append(queue, queueItem{pos: n, depth: item.depth + 1})
		}
	}

	return nil
}
