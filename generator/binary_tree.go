package generator

import (
	"github.com/katalvlaran/labyrinth/grid"
	"github.com/katalvlaran/labyrinth/helper"
)

// BinaryTree visits one room per Update in row-major order and carves either
// north or west, uniformly among the sides that stay on-grid. The north-west
// corner carves nothing. Progress counts processed rooms.
type BinaryTree struct {
	base
	next int
}

// NewBinaryTree binds the algorithm to g.
func NewBinaryTree(g *grid.Grid) *BinaryTree {
	return &BinaryTree{base: base{grid: g}}
}

// Method returns MethodBinaryTree.
func (a *BinaryTree) Method() Method { return MethodBinaryTree }

// Initialize resets the grid and rewinds to the first room.
func (a *BinaryTree) Initialize() error {
	if _, err := a.prepare(sizeOf(a.grid)); err != nil {
		return err
	}
	a.next = 0
	return nil
}

// Update processes the next room.
func (a *BinaryTree) Update(rng Source) error {
	if done, err := a.begin(rng); done {
		return err
	}
	cols := a.grid.Columns()
	r, ok := a.grid.Room(a.next%cols, a.next/cols)
	if !ok {
		a.tracker.SetComplete()
		return nil
	}
	r.SetVisited(true)

	sides := make([]*grid.Room, 0, 2)
	for _, d := range [2]grid.Direction{grid.North, grid.West} {
		if n, ok := a.grid.Neighbor(r, d); ok {
			sides = append(sides, n)
		}
	}
	if len(sides) > 0 {
		if err := helper.JoinRooms(r, sides[rng.Intn(len(sides))]); err != nil {
			return err
		}
	}

	a.next++
	a.tracker.Increase()
	return nil
}
