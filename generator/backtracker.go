package generator

import "github.com/katalvlaran/labyrinth/grid"

// RecursiveBacktracker is depth-first carving with an explicit stack.
//
// Each Update looks at the top of the stack: if it has unvisited neighbours,
// one is chosen uniformly, carved, marked visited and pushed; otherwise the
// stack is popped. Progress counts visited rooms.
type RecursiveBacktracker struct {
	base
	stack []*grid.Room
}

// NewRecursiveBacktracker binds the algorithm to g. Call Initialize before Update.
func NewRecursiveBacktracker(g *grid.Grid) *RecursiveBacktracker {
	return &RecursiveBacktracker{base: base{grid: g}}
}

// Method returns MethodRecursiveBacktracker.
func (a *RecursiveBacktracker) Method() Method { return MethodRecursiveBacktracker }

// Initialize resets the grid and pushes the visited start room.
func (a *RecursiveBacktracker) Initialize() error {
	start, err := a.prepare(sizeOf(a.grid))
	if err != nil {
		return err
	}
	start.SetVisited(true)
	a.tracker.Increase()
	a.stack = append(a.stack[:0], start)
	return nil
}

// Update carves forward from the stack top or backtracks one cell.
func (a *RecursiveBacktracker) Update(rng Source) error {
	if done, err := a.begin(rng); done {
		return err
	}
	if len(a.stack) == 0 {
		a.tracker.SetComplete()
		return nil
	}

	cur := a.stack[len(a.stack)-1]
	next := unvisitedNeighbors(a.grid, cur)
	if len(next) == 0 {
		a.stack = a.stack[:len(a.stack)-1]
		return nil
	}
	n := next[rng.Intn(len(next))]
	if err := a.carve(cur, n); err != nil {
		return err
	}
	a.stack = append(a.stack, n)
	return nil
}

// Current returns the room on top of the stack, if any.
func (a *RecursiveBacktracker) Current() (grid.Point, bool) {
	if len(a.stack) == 0 {
		return grid.Point{}, false
	}
	return a.stack[len(a.stack)-1].Location(), true
}

// sizeOf tolerates a nil grid so prepare can report ErrNilGrid.
func sizeOf(g *grid.Grid) int {
	if g == nil {
		return 0
	}
	return g.Size()
}
