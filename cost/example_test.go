package cost_test

import (
	"fmt"

	"github.com/katalvlaran/terrainpath/cost"
	"github.com/katalvlaran/terrainpath/terrain"
)

// ExampleModel_EdgeCost shows how Alpha turns a climb into extra distance.
func ExampleModel_EdgeCost() {
	g, _ := terrain.New([][]float64{{0.0, 0.25}})
	m, _ := cost.NewModel(g, 100, terrain.Diagonal)

	fmt.Println(m.EdgeCost(terrain.Cell{Row: 0, Col: 0}, terrain.Cell{Row: 0, Col: 1}, terrain.Orthogonal))
	// Output: 26
}
