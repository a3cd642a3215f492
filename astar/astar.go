package astar

import (
	"fmt"

	"github.com/katalvlaran/labyrinth/grid"
)

// diagonals pairs the two cardinal walls that must both be open for a
// diagonal move, in the fixed expansion order NE, SE, SW, NW.
var diagonals = [4][2]grid.Direction{
	{grid.North, grid.East},
	{grid.South, grid.East},
	{grid.South, grid.West},
	{grid.North, grid.West},
}

// Pathfinder searches a grid.View for the cheapest path from start to goal.
// The zero value is not usable; build one with New or NewFromCoordinates.
type Pathfinder struct {
	rooms    grid.View
	start    grid.Point
	goal     grid.Point
	diagonal bool

	state    State
	nextID   int
	open     []*Node
	openAt   map[grid.Point]*Node
	closed   []*Node
	closedAt map[grid.Point]*Node
	byID     map[int]*Node
	path     []grid.Point
}

// New returns a pathfinder from start to goal over rooms.
// Inputs are validated when the search begins, not here.
func New(start, goal grid.Point, rooms grid.View, opts ...Option) *Pathfinder {
	p := &Pathfinder{rooms: rooms, start: start, goal: goal}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// NewFromCoordinates is New with the endpoints spelled out.
func NewFromCoordinates(startColumn, startRow, goalColumn, goalRow int, rooms grid.View, opts ...Option) *Pathfinder {
	return New(
		grid.Point{Column: startColumn, Row: startRow},
		grid.Point{Column: goalColumn, Row: goalRow},
		rooms, opts...,
	)
}

// SetDiagonal toggles diagonal moves for the next search.
func (p *Pathfinder) SetDiagonal(on bool) {
	p.diagonal = on
	p.invalidate()
}

// SetRooms replaces the grid for the next search.
func (p *Pathfinder) SetRooms(rooms grid.View) {
	p.rooms = rooms
	p.invalidate()
}

// SetStartColumn moves the start for the next search.
func (p *Pathfinder) SetStartColumn(column int) {
	p.start.Column = column
	p.invalidate()
}

// SetStartRow moves the start for the next search.
func (p *Pathfinder) SetStartRow(row int) {
	p.start.Row = row
	p.invalidate()
}

// SetGoalColumn moves the goal for the next search.
func (p *Pathfinder) SetGoalColumn(column int) {
	p.goal.Column = column
	p.invalidate()
}

// SetGoalRow moves the goal for the next search.
func (p *Pathfinder) SetGoalRow(row int) {
	p.goal.Row = row
	p.invalidate()
}

// Start returns the start coordinate.
func (p *Pathfinder) Start() grid.Point { return p.start }

// Goal returns the goal coordinate.
func (p *Pathfinder) Goal() grid.Point { return p.goal }

// Diagonal reports whether diagonal moves are enabled.
func (p *Pathfinder) Diagonal() bool { return p.diagonal }

// State returns the lifecycle stage.
func (p *Pathfinder) State() State { return p.state }

// Expanded returns how many nodes have been closed so far.
func (p *Pathfinder) Expanded() int { return len(p.closed) }

// Frontier returns copies of the open nodes in insertion order.
func (p *Pathfinder) Frontier() []Node {
	out := make([]Node, len(p.open))
	for i, n := range p.open {
		out[i] = *n
	}
	return out
}

// ShortestPath returns a copy of the last found path, goal first and start
// last. It is nil until a search reaches Found.
func (p *Pathfinder) ShortestPath() []grid.Point {
	if p.path == nil {
		return nil
	}
	out := make([]grid.Point, len(p.path))
	copy(out, p.path)
	return out
}

// Generate discards any previous result and runs a fresh search to completion.
//
// Returns:
//
//   - nil when the goal was reached (State() == Found).
//   - ErrNilGrid or ErrOutOfBounds for invalid inputs (State() == NotStarted).
//   - ErrNoPath when the goal is unreachable (State() == NoPath).
//
// Complexity: O(N²) time for N rooms because of the linear open-list scan,
// O(N) memory.
func (p *Pathfinder) Generate() error {
	p.invalidate()
	for {
		done, err := p.Step()
		if done {
			return err
		}
	}
}

// Step expands one node. The first call on a NotStarted pathfinder seeds the
// open list and validates inputs. done is true once the search is terminal;
// further calls return the same outcome without work.
func (p *Pathfinder) Step() (done bool, err error) {
	switch p.state {
	case Found:
		return true, nil
	case NoPath:
		return true, ErrNoPath
	case NotStarted:
		if err = p.begin(); err != nil {
			return true, err
		}
	}

	// 1) Exhausted frontier: the goal is unreachable.
	if len(p.open) == 0 {
		p.state = NoPath
		return true, ErrNoPath
	}

	// 2) Pop the cheapest open node and close it.
	cur := p.pop()

	// 3) Goal reached: rebuild the path from the closed list.
	if cur.column == p.goal.Column && cur.row == p.goal.Row {
		p.path = p.trace(cur)
		p.state = Found
		return true, nil
	}

	// 4) Expand through open walls.
	p.expand(cur)
	return false, nil
}

// invalidate drops search state so the next Step starts over.
func (p *Pathfinder) invalidate() {
	p.state = NotStarted
	p.open, p.closed, p.path = nil, nil, nil
	p.openAt, p.closedAt, p.byID = nil, nil, nil
	p.nextID = 0
}

// begin validates inputs and seeds the open list with the start node.
func (p *Pathfinder) begin() error {
	if p.rooms == nil {
		return ErrNilGrid
	}
	if g, ok := p.rooms.(*grid.Grid); ok && g == nil {
		return ErrNilGrid
	}
	if !p.rooms.InBounds(p.start.Column, p.start.Row) {
		return fmt.Errorf("%w: start %v", ErrOutOfBounds, p.start)
	}
	if !p.rooms.InBounds(p.goal.Column, p.goal.Row) {
		return fmt.Errorf("%w: goal %v", ErrOutOfBounds, p.goal)
	}

	p.invalidate()
	p.openAt = make(map[grid.Point]*Node)
	p.closedAt = make(map[grid.Point]*Node)
	p.byID = make(map[int]*Node)
	p.push(p.start, noParent, 0)
	p.state = Searching
	return nil
}

// push appends a fresh open node.
func (p *Pathfinder) push(at grid.Point, parentID, movement int) {
	n := &Node{
		id:            p.nextID,
		parentID:      parentID,
		column:        at.Column,
		row:           at.Row,
		movementCost:  movement,
		heuristicCost: Manhattan(at, p.goal),
	}
	p.nextID++
	p.open = append(p.open, n)
	p.openAt[at] = n
}

// pop removes the open node with the lowest total cost. The strict comparison
// keeps the earliest-inserted node on ties.
func (p *Pathfinder) pop() *Node {
	best := 0
	for i := 1; i < len(p.open); i++ {
		if p.open[i].TotalCost() < p.open[best].TotalCost() {
			best = i
		}
	}
	n := p.open[best]
	p.open = append(p.open[:best], p.open[best+1:]...)

	at := n.Location()
	delete(p.openAt, at)
	p.closed = append(p.closed, n)
	p.closedAt[at] = n
	p.byID[n.id] = n
	return n
}

// expand offers every reachable neighbour of cur to the open list.
func (p *Pathfinder) expand(cur *Node) {
	at := cur.Location()
	for _, d := range grid.Cardinals {
		next := at.Step(d)
		// A passage needs the wall open on both sides.
		if p.rooms.HasWall(at.Column, at.Row, d) || p.rooms.HasWall(next.Column, next.Row, d.Opposite()) {
			continue
		}
		p.relax(cur, next, StraightCost)
	}
	if !p.diagonal {
		return
	}
	// Only the current room's walls gate a diagonal; the target's are not read.
	for _, pair := range diagonals {
		if p.rooms.HasWall(at.Column, at.Row, pair[0]) || p.rooms.HasWall(at.Column, at.Row, pair[1]) {
			continue
		}
		p.relax(cur, at.Step(pair[0]).Step(pair[1]), DiagonalCost)
	}
}

// relax inserts next or lowers its movement cost when reaching it through
// parent is cheaper. Out-of-grid and closed cells are ignored.
func (p *Pathfinder) relax(parent *Node, next grid.Point, step int) {
	if !p.rooms.InBounds(next.Column, next.Row) {
		return
	}
	if _, closed := p.closedAt[next]; closed {
		return
	}
	movement := parent.movementCost + step
	if n, ok := p.openAt[next]; ok {
		if n.movementCost > movement {
			n.movementCost = movement
			n.parentID = parent.id
		}
		return
	}
	p.push(next, parent.id, movement)
}

// trace follows parent ids from the goal node back to the start.
func (p *Pathfinder) trace(goal *Node) []grid.Point {
	path := []grid.Point{goal.Location()}
	for n := goal; n.parentID != noParent && n.Location() != p.start; {
		n = p.byID[n.parentID]
		path = append(path, n.Location())
	}
	return path
}
