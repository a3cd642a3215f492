package helper

import (
	"fmt"

	"github.com/katalvlaran/labyrinth/grid"
)

// CalculateCost assigns every room its hop distance from the grid's start.
//
// Behavior:
//  1. Reset every room's cost to 0.
//  2. Seed a FIFO queue with the start room (cost 0).
//  3. Pop a room; for each direction in grid.Cardinals whose wall pair is open
//     on both sides, enqueue the unseen neighbour at cost parent+1.
//  4. Rooms never reached keep cost 0.
//
// Returns ErrNilGrid, grid.ErrStartUnset or grid.ErrOutOfBounds.
// Complexity: O(W×H) time, O(W×H) memory.
func CalculateCost(g *grid.Grid) error {
	if g == nil {
		return ErrNilGrid
	}
	start, err := g.StartRoom()
	if err != nil {
		return fmt.Errorf("helper: calculate cost: %w", err)
	}

	g.Each(func(r *grid.Room) { r.SetCost(0) })

	cols := g.Columns()
	seen := make([]bool, g.Size())
	seen[start.Row()*cols+start.Column()] = true
	queue := make([]*grid.Room, 0, g.Size())
	queue = append(queue, start)

	for qi := 0; qi < len(queue); qi++ {
		cur := queue[qi]
		for _, d := range grid.Cardinals {
			if cur.HasWall(d) {
				continue
			}
			next, ok := g.Neighbor(cur, d)
			if !ok || next.HasWall(d.Opposite()) {
				continue
			}
			idx := next.Row()*cols + next.Column()
			if seen[idx] {
				continue
			}
			seen[idx] = true
			next.SetCost(cur.Cost() + 1)
			queue = append(queue, next)
		}
	}
	return nil
}

// LocateFinish runs CalculateCost and moves the grid's finish to the room
// with the highest cost. Ties go to the first maximum in row-major order.
// Returns the new finish.
func LocateFinish(g *grid.Grid) (grid.Point, error) {
	if err := CalculateCost(g); err != nil {
		return grid.Point{}, err
	}
	var (
		best    *grid.Room
		maxCost = -1
	)
	g.Each(func(r *grid.Room) {
		if r.Cost() > maxCost {
			best, maxCost = r, r.Cost()
		}
	})
	finish := best.Location()
	g.SetFinish(finish.Column, finish.Row)
	return finish, nil
}
