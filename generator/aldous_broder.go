package generator

import "github.com/katalvlaran/labyrinth/grid"

// AldousBroder is an unbiased random walk. Each Update steps to a uniformly
// random on-grid neighbour and carves the wall only if that neighbour was
// never visited. Progress counts visited rooms.
type AldousBroder struct {
	base
	current *grid.Room
}

// NewAldousBroder binds the algorithm to g.
func NewAldousBroder(g *grid.Grid) *AldousBroder {
	return &AldousBroder{base: base{grid: g}}
}

// Method returns MethodAldousBroder.
func (a *AldousBroder) Method() Method { return MethodAldousBroder }

// Initialize resets the grid and places the walker on the start room.
func (a *AldousBroder) Initialize() error {
	start, err := a.prepare(sizeOf(a.grid))
	if err != nil {
		return err
	}
	start.SetVisited(true)
	a.tracker.Increase()
	a.current = start
	return nil
}

// Update takes one step of the walk.
func (a *AldousBroder) Update(rng Source) error {
	if done, err := a.begin(rng); done {
		return err
	}
	next := neighbors(a.grid, a.current)
	if len(next) == 0 {
		a.tracker.SetComplete()
		return nil
	}
	n := next[rng.Intn(len(next))]
	if !n.Visited() {
		if err := a.carve(a.current, n); err != nil {
			return err
		}
	}
	a.current = n
	return nil
}
