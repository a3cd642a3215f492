package generator_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/labyrinth/generator"
	"github.com/katalvlaran/labyrinth/grid"
)

// alwaysEast answers 0 to every draw, which Sidewinder reads as "carve east".
type alwaysEast struct{}

func (alwaysEast) Intn(int) int { return 0 }

// ExampleSidewinder runs one row per Update with a fixed source.
func ExampleSidewinder() {
	g, _ := grid.New(4, 3, grid.WithStart(0, 0), grid.WithFinish(3, 2))
	alg := generator.NewSidewinder(g)
	_ = alg.Initialize()
	for !alg.IsComplete() {
		_ = alg.Update(alwaysEast{})
		fmt.Println("rows:", alg.Progress())
	}
	fmt.Print(g)

	// Output:
	// rows: 1/3
	// rows: 2/3
	// rows: 3/3
	// +---+---+---+---+
	// | S             |
	// +   +---+---+---+
	// |               |
	// +   +---+---+---+
	// |             F |
	// +---+---+---+---+
}

// ExampleGenerate builds a seeded maze by method name.
func ExampleGenerate() {
	m, err := generator.ParseMethod("kruskal")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	g, _ := grid.New(10, 10, grid.WithStart(0, 0), grid.WithFinish(9, 9))
	alg, _ := generator.New(m, g)
	if err = generator.Generate(context.Background(), alg, generator.NewSource(7)); err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(alg.Method(), alg.IsComplete(), g.Components(), g.Passages())
	// Output: kruskal true 1 99
}
