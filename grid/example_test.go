// File: grid/example_test.go
package grid_test

import (
	"fmt"

	"github.com/katalvlaran/labyrinth/grid"
)

// ExampleGrid_Render draws a 3×2 grid with one horizontal corridor on top
// and a single drop into the bottom row.
func ExampleGrid_Render() {
	g, _ := grid.New(3, 2, grid.WithStart(0, 0), grid.WithFinish(2, 1))
	carve := func(c, r int, d grid.Direction) {
		a, _ := g.Room(c, r)
		b, _ := g.Neighbor(a, d)
		a.RemoveWall(d)
		b.RemoveWall(d.Opposite())
	}
	carve(0, 0, grid.East)
	carve(1, 0, grid.East)
	carve(2, 0, grid.South)
	carve(1, 1, grid.East)
	carve(0, 1, grid.East)

	fmt.Print(g.Render([]grid.Point{{Column: 1, Row: 0}, {Column: 2, Row: 0}}))
	fmt.Println("components:", g.Components())

	// Output:
	// +---+---+---+
	// | S   *   * |
	// +---+---+   +
	// |         F |
	// +---+---+---+
	// components: 1
}
