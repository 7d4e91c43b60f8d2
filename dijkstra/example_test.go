// Package dijkstra_test provides examples demonstrating terrain cost fields.
package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/terrainpath/dijkstra"
	"github.com/katalvlaran/terrainpath/terrain"
)

// ExampleCostToGoal prints the exact remaining cost from each cell of a
// small ridge to the goal in the bottom-left corner.
func ExampleCostToGoal() {
	g, _ := terrain.New([][]float64{
		{0, 0.5, 0},
		{0, 0.5, 0},
	})
	dist, err := dijkstra.CostToGoal(g, terrain.Cell{Row: 1, Col: 0},
		dijkstra.WithAlpha(4), dijkstra.WithDiagonal(terrain.ReferenceDiagonal))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			fmt.Printf("%6.3f", dist[g.Index(terrain.Cell{Row: r, Col: c})])
		}
		fmt.Println()
	}
	// Output:
	//  1.000 3.414 6.414
	//  0.000 3.000 6.000
}
