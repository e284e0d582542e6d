package gridpath_test

import (
	"fmt"

	"gridpath"
	"gridpath/geom"
	"gridpath/grid"
)

func ExampleFindAlternatePaths() {
	g, _ := grid.New(5, 1)
	for x := 0; x < 5; x++ {
		_ = g.Register(geom.Pos{X: x, Y: 0}, 1)
	}

	paths, _ := gridpath.FindAlternatePaths(g, geom.Pos{X: 0, Y: 0}, geom.Pos{X: 4, Y: 0}, 1, 10, 2)
	fmt.Println(len(paths))
	// Output: 1
}
