package distance_test

import (
	"fmt"

	"github.com/katalvlaran/lvtda/distance"
)

// ExampleFromPoints shows the distance matrix of a 3-4-5 triangle.
func ExampleFromPoints() {
	m, err := distance.FromPoints([][]float64{{0, 0}, {3, 0}, {3, 4}})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Print(m)
	fmt.Println("diameter:", m.Max())
	// Output:
	// [0, 3, 5]
	// [3, 0, 4]
	// [5, 4, 0]
	// diameter: 5
}
