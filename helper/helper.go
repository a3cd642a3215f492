// Package helper provides the maze utilities shared by every generator and
// by game code: carving a passage between two rooms, breadth-first cost
// propagation from the start, locating the finish and bulk visited queries.
//
// JoinRooms is the canonical "carve" primitive. It always removes a matched
// wall pair (North↔South, East↔West), so wall symmetry holds after every call.
//
// Complexity:
//
//   - JoinRooms, DirectionTo: O(1).
//   - CalculateCost, LocateFinish: O(W×H) time and memory.
//   - HasVisited, AllVisited, SetVisitedAll: O(W×H).
package helper

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/labyrinth/grid"
)

// Sentinel errors for helper operations.
var (
	// ErrNilGrid indicates a nil *grid.Grid argument.
	ErrNilGrid = errors.New("helper: grid is nil")
	// ErrNilRoom indicates a nil *grid.Room argument.
	ErrNilRoom = errors.New("helper: room is nil")
	// ErrNotAdjacent indicates two rooms that do not share a wall.
	ErrNotAdjacent = errors.New("helper: rooms are not adjacent")
)

// DirectionTo returns the side of a that faces b, derived purely from the
// coordinate delta. ok is false unless the rooms are cardinal neighbours.
func DirectionTo(a, b *grid.Room) (d grid.Direction, ok bool) {
	dc, dr := b.Column()-a.Column(), b.Row()-a.Row()
	switch {
	case dc == 0 && dr == -1:
		return grid.North, true
	case dc == 1 && dr == 0:
		return grid.East, true
	case dc == 0 && dr == 1:
		return grid.South, true
	case dc == -1 && dr == 0:
		return grid.West, true
	}
	return 0, false
}

// JoinRooms removes the wall pair between adjacent rooms a and b.
// Returns ErrNilRoom or ErrNotAdjacent without touching either room.
func JoinRooms(a, b *grid.Room) error {
	if a == nil || b == nil {
		return ErrNilRoom
	}
	d, ok := DirectionTo(a, b)
	if !ok {
		return fmt.Errorf("%w: %v and %v", ErrNotAdjacent, a.Location(), b.Location())
	}
	a.RemoveWall(d)
	b.RemoveWall(d.Opposite())
	return nil
}

// Connected reports whether a and b are adjacent and the wall pair between
// them is open on both sides.
func Connected(a, b *grid.Room) bool {
	d, ok := DirectionTo(a, b)
	if !ok {
		return false
	}
	return !a.HasWall(d) && !b.HasWall(d.Opposite())
}

// HasVisited reports whether at least one room is marked visited.
func HasVisited(g *grid.Grid) bool {
	found := false
	g.Each(func(r *grid.Room) {
		if r.Visited() {
			found = true
		}
	})
	return found
}

// AllVisited reports whether every room is marked visited.
func AllVisited(g *grid.Grid) bool {
	all := true
	g.Each(func(r *grid.Room) {
		if !r.Visited() {
			all = false
		}
	})
	return all
}

// SetVisitedAll stores v in every room's visited flag.
func SetVisitedAll(g *grid.Grid, v bool) {
	g.Each(func(r *grid.Room) {
		r.SetVisited(v)
	})
}
