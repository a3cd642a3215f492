package astar

import (
	"errors"

	"github.com/katalvlaran/labyrinth/grid"
)

// Sentinel errors for pathfinding.
var (
	// ErrNilGrid indicates the pathfinder has no grid to read.
	ErrNilGrid = errors.New("astar: grid is nil")
	// ErrOutOfBounds indicates a start or goal outside the grid.
	ErrOutOfBounds = errors.New("astar: coordinate out of bounds")
	// ErrNoPath indicates the open list emptied before the goal was reached.
	ErrNoPath = errors.New("astar: no path exists")
)

// Move costs.
const (
	// StraightCost is the movement cost of a cardinal step and the heuristic unit.
	StraightCost = 10
	// DiagonalCost approximates StraightCost·√2.
	DiagonalCost = 14
)

// State is the pathfinder's lifecycle stage.
type State int

const (
	// NotStarted is the state before the first Step/Generate and after a reset.
	NotStarted State = iota
	// Searching means the open list is being expanded.
	Searching
	// Found is terminal: ShortestPath holds the result.
	Found
	// NoPath is terminal: the goal is unreachable.
	NoPath
)

func (s State) String() string {
	switch s {
	case NotStarted:
		return "not-started"
	case Searching:
		return "searching"
	case Found:
		return "found"
	case NoPath:
		return "no-path"
	}
	return "unknown"
}

// Node is one discovered cell. It is identified by its coordinates inside the
// open and closed lists; parentID is an opaque back-reference into the closed
// list used only for path reconstruction.
type Node struct {
	id            int
	parentID      int
	column, row   int
	movementCost  int
	heuristicCost int
}

// noParent marks the start node.
const noParent = -1

// Column returns the node's column.
func (n *Node) Column() int { return n.column }

// Row returns the node's row.
func (n *Node) Row() int { return n.row }

// Location returns the node's coordinates.
func (n *Node) Location() grid.Point { return grid.Point{Column: n.column, Row: n.row} }

// MovementCost returns the accumulated cost from the start (g).
func (n *Node) MovementCost() int { return n.movementCost }

// HeuristicCost returns the estimate to the goal (h).
func (n *Node) HeuristicCost() int { return n.heuristicCost }

// TotalCost returns g+h.
func (n *Node) TotalCost() int { return n.movementCost + n.heuristicCost }

// Manhattan returns |Δcolumn|+|Δrow| × StraightCost.
func Manhattan(a, b grid.Point) int {
	return (abs(a.Column-b.Column) + abs(a.Row-b.Row)) * StraightCost
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Option configures a Pathfinder at construction.
type Option func(*Pathfinder)

// WithDiagonal enables or disables diagonal moves.
func WithDiagonal(on bool) Option {
	return func(p *Pathfinder) {
		p.diagonal = on
	}
}
