package smooth_test

import (
	"testing"

	"gridpath/astar"
	"gridpath/geom"
	"gridpath/grid"
	"gridpath/smooth"
)

// BenchmarkSmooth measures smoothing cost on a long, uniformly weighted
// diagonal path across a 500x500 grid.
func BenchmarkSmooth(b *testing.B) {
	const n = 500
	g, err := grid.New(n, n)
	if err != nil {
		b.Fatalf("setup grid.New failed: %v", err)
	}
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			if err := g.Register(geom.Pos{X: x, Y: y}, 1); err != nil {
				b.Fatalf("setup Register failed: %v", err)
			}
		}
	}
	path, err := astar.FindPath(g, geom.Pos{X: 0, Y: 0}, geom.Pos{X: n - 1, Y: n - 1})
	if err != nil || path == nil {
		b.Fatalf("setup FindPath failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = smooth.Smooth(g, path)
	}
}
