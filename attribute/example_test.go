package attribute_test

import (
	"fmt"

	"gridpath/attribute"
)

func ExampleWeights_Sum() {
	weights := attribute.Weights{
		attribute.Waterdeel:       200,
		attribute.Wegdeel_Voetpad: 5,
	}
	mask := attribute.MaskOf(attribute.Wegdeel_Voetpad)
	fmt.Println(weights.Sum(mask))
	// Output: 5
}
