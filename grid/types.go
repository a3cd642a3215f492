package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid operations.
var (
	// ErrEmptyGrid indicates a grid with no columns or no rows.
	ErrEmptyGrid = errors.New("grid: must have at least one column and one row")
	// ErrStartUnset indicates the start coordinate was never assigned.
	ErrStartUnset = errors.New("grid: start is not set")
	// ErrFinishUnset indicates the finish coordinate was never assigned.
	ErrFinishUnset = errors.New("grid: finish is not set")
	// ErrOutOfBounds indicates a coordinate outside 0 ≤ col < cols, 0 ≤ row < rows.
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")
)

// Direction names one side of a room.
type Direction int

const (
	// North is the side facing row-1.
	North Direction = iota
	// East is the side facing column+1.
	East
	// South is the side facing row+1.
	South
	// West is the side facing column-1.
	West
)

// Cardinals lists the four directions in the fixed order used by every
// neighbour scan. Iterating this array (never a map) keeps seeded runs
// reproducible.
var Cardinals = [4]Direction{North, East, South, West}

// Opposite returns the geometrically opposite side: North↔South, East↔West.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	default:
		return East
	}
}

// Delta returns the column and row offsets of a step in direction d.
func (d Direction) Delta() (dc, dr int) {
	switch d {
	case North:
		return 0, -1
	case East:
		return 1, 0
	case South:
		return 0, 1
	default:
		return -1, 0
	}
}

func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	}
	return fmt.Sprintf("direction(%d)", int(d))
}

// Point is a (column,row) coordinate.
type Point struct {
	Column, Row int
}

// Step returns the point one cell away in direction d.
func (p Point) Step(d Direction) Point {
	dc, dr := d.Delta()
	return Point{Column: p.Column + dc, Row: p.Row + dr}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.Column, p.Row)
}

// View is the read-only surface a pathfinder needs: dimensions and per-room
// walls. HasWall reports true for any coordinate outside the grid.
type View interface {
	Columns() int
	Rows() int
	InBounds(column, row int) bool
	HasWall(column, row int, d Direction) bool
}
