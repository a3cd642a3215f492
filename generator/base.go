package generator

import (
	"fmt"

	"github.com/katalvlaran/labyrinth/grid"
	"github.com/katalvlaran/labyrinth/helper"
	"github.com/katalvlaran/labyrinth/progress"
)

// base holds the grid and tracker every variant shares.
type base struct {
	grid    *grid.Grid
	tracker *progress.Tracker
}

// Grid returns the grid being carved.
func (b *base) Grid() *grid.Grid { return b.grid }

// Progress returns the tracker, or nil before Initialize.
func (b *base) Progress() *progress.Tracker { return b.tracker }

// IsComplete reports whether the tracker reached its goal. False before Initialize.
func (b *base) IsComplete() bool {
	return b.tracker != nil && b.tracker.IsComplete()
}

// prepare validates endpoints, resets the grid, installs a tracker with goal
// and returns the start room.
func (b *base) prepare(goal int) (*grid.Room, error) {
	if b.grid == nil {
		return nil, ErrNilGrid
	}
	if err := b.grid.CheckEndpoints(); err != nil {
		return nil, fmt.Errorf("generator: initialize: %w", err)
	}
	b.grid.Reset()
	b.tracker = progress.New(goal)
	return b.grid.StartRoom()
}

// begin checks Update preconditions. done is true when the caller must return
// immediately with err (nil for the completed no-op).
func (b *base) begin(rng Source) (done bool, err error) {
	if b.tracker == nil {
		return true, ErrNotInitialized
	}
	if rng == nil {
		return true, ErrNilSource
	}
	if b.tracker.IsComplete() {
		b.tracker.SetComplete()
		return true, nil
	}
	return false, nil
}

// carve joins a and b, marks b visited and counts one unit of work.
func (b *base) carve(from, to *grid.Room) error {
	if err := helper.JoinRooms(from, to); err != nil {
		return err
	}
	to.SetVisited(true)
	b.tracker.Increase()
	return nil
}

// neighbors returns the on-grid neighbours of r in grid.Cardinals order.
func neighbors(g *grid.Grid, r *grid.Room) []*grid.Room {
	out := make([]*grid.Room, 0, 4)
	for _, d := range grid.Cardinals {
		if n, ok := g.Neighbor(r, d); ok {
			out = append(out, n)
		}
	}
	return out
}

// unvisitedNeighbors returns the on-grid, not yet visited neighbours of r in
// grid.Cardinals order.
func unvisitedNeighbors(g *grid.Grid, r *grid.Room) []*grid.Room {
	out := make([]*grid.Room, 0, 4)
	for _, d := range grid.Cardinals {
		if n, ok := g.Neighbor(r, d); ok && !n.Visited() {
			out = append(out, n)
		}
	}
	return out
}

// removeAt deletes s[i] preserving order.
func removeAt(s []*grid.Room, i int) []*grid.Room {
	copy(s[i:], s[i+1:])
	s[len(s)-1] = nil
	return s[:len(s)-1]
}
