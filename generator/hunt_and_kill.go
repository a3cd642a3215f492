package generator

import "github.com/katalvlaran/labyrinth/grid"

// HuntAndKill alternates a random walk ("kill") with a grid scan ("hunt").
//
// Kill: if the current room has unvisited neighbours, carve into a uniformly
// random one and move there.
// Hunt: otherwise scan every room row-major for visited rooms that touch at
// least one unvisited room, and continue from a uniformly random one of them.
// The hunt restarts from the visited room itself, not from its unvisited
// neighbour; the next Update carves out of it.
type HuntAndKill struct {
	base
	current *grid.Room
}

// NewHuntAndKill binds the algorithm to g.
func NewHuntAndKill(g *grid.Grid) *HuntAndKill {
	return &HuntAndKill{base: base{grid: g}}
}

// Method returns MethodHuntAndKill.
func (a *HuntAndKill) Method() Method { return MethodHuntAndKill }

// Initialize resets the grid and starts the walk at the start room.
func (a *HuntAndKill) Initialize() error {
	start, err := a.prepare(sizeOf(a.grid))
	if err != nil {
		return err
	}
	start.SetVisited(true)
	a.tracker.Increase()
	a.current = start
	return nil
}

// Update performs one kill step or one hunt scan.
func (a *HuntAndKill) Update(rng Source) error {
	if done, err := a.begin(rng); done {
		return err
	}

	if next := unvisitedNeighbors(a.grid, a.current); len(next) > 0 {
		n := next[rng.Intn(len(next))]
		if err := a.carve(a.current, n); err != nil {
			return err
		}
		a.current = n
		return nil
	}

	var candidates []*grid.Room
	a.grid.Each(func(r *grid.Room) {
		if r.Visited() && len(unvisitedNeighbors(a.grid, r)) > 0 {
			candidates = append(candidates, r)
		}
	})
	if len(candidates) == 0 {
		a.tracker.SetComplete()
		return nil
	}
	a.current = candidates[rng.Intn(len(candidates))]
	return nil
}

// Current returns the room the walk is at.
func (a *HuntAndKill) Current() (grid.Point, bool) {
	if a.current == nil {
		return grid.Point{}, false
	}
	return a.current.Location(), true
}
