package smooth_test

import (
	"fmt"

	"gridpath/geom"
	"gridpath/grid"
	"gridpath/smooth"
)

func ExampleSmooth() {
	g, _ := grid.New(10, 10)
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			_ = g.Register(geom.Pos{X: x, Y: y}, 1)
		}
	}

	path := make([]geom.Pos, 10)
	for x := 0; x < 10; x++ {
		path[x] = geom.Pos{X: x, Y: 0}
	}

	fmt.Println(smooth.Smooth(g, path))
	// Output: [{0 0} {9 0}]
}
