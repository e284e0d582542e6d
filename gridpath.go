package gridpath

import (
	"gridpath/astar"
	"gridpath/geom"
	"gridpath/grid"
)

// FindAlternatePaths calls astar.FindPath n times between from and to,
// feeding every previously found route into the next call's
// existing-path corridor bias (ExistingPathMultiplier/ExistingPathRadius),
// so each successive result is biased away from all the ones before it.
//
// Returns fewer than n paths if a call fails to find a route (the queue
// empties with some points still unreached); it stops at the first
// failure rather than returning a short list interspersed with gaps.
// n is the number of astar.FindPath calls; multiplier and radius are
// passed through as-is to every call after the first (the first has no
// earlier route to bias away from), alongside any extraOpts, which are
// applied to every call in addition to the accumulating existing-paths
// bias.
func FindAlternatePaths(g *grid.Grid, from, to geom.Pos, n int, multiplier float64, radius int, extraOpts ...astar.Option) ([][]geom.Pos, error) {
	paths := make([][]geom.Pos, 0, n)

	for i := 0; i < n; i++ {
		opts := make([]astar.Option, 0, len(extraOpts)+1)
		opts = append(opts, extraOpts...)
		if len(paths) > 0 {
			opts = append(opts, astar.WithExistingPaths(paths, multiplier, radius))
		}

		path, err := astar.FindPath(g, from, to, opts...)
		if err != nil {
			return paths, err
		}
		if path == nil {
			break
		}

		paths = append(paths, path)
	}

	return paths, nil
}
