// File: terrain/example_test.go
package terrain_test

import (
	"fmt"

	"github.com/katalvlaran/terrainpath/terrain"
)

// ExampleFromIntensity demonstrates building a height field from 8-bit
// grayscale pixels and listing the neighborhood of a corner cell.
func ExampleFromIntensity() {
	g, _ := terrain.FromIntensity([][]uint8{
		{0, 255},
		{51, 102},
	})

	for _, n := range g.Neighbors(terrain.Cell{Row: 0, Col: 0}, terrain.ReferenceDiagonal, nil, nil) {
		fmt.Printf("%v dist=%.3f height=%.1f\n", n.Cell, n.Distance, g.HeightAt(n.Cell))
	}
	// Output:
	// (0,1) dist=1.000 height=1.0
	// (1,1) dist=1.414 height=0.4
	// (1,0) dist=1.000 height=0.2
}
