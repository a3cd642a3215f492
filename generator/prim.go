package generator

import "github.com/katalvlaran/labyrinth/grid"

// Prim grows the maze outward through a frontier list.
//
// Each Update takes every unvisited neighbour of the current room, drawing
// them one at a time at random from the shrinking candidate list, carves into
// each, marks it visited and appends it to the frontier. The next current
// room is then removed from the frontier uniformly at random.
type Prim struct {
	base
	current  *grid.Room
	frontier []*grid.Room
}

// NewPrim binds the algorithm to g.
func NewPrim(g *grid.Grid) *Prim {
	return &Prim{base: base{grid: g}}
}

// Method returns MethodPrim.
func (a *Prim) Method() Method { return MethodPrim }

// Initialize resets the grid and starts at the start room with an empty frontier.
func (a *Prim) Initialize() error {
	start, err := a.prepare(sizeOf(a.grid))
	if err != nil {
		return err
	}
	start.SetVisited(true)
	a.tracker.Increase()
	a.current = start
	a.frontier = a.frontier[:0]
	return nil
}

// Update expands the current room and moves to a random frontier room.
func (a *Prim) Update(rng Source) error {
	if done, err := a.begin(rng); done {
		return err
	}

	candidates := unvisitedNeighbors(a.grid, a.current)
	for len(candidates) > 0 {
		i := rng.Intn(len(candidates))
		n := candidates[i]
		candidates = removeAt(candidates, i)
		if err := a.carve(a.current, n); err != nil {
			return err
		}
		a.frontier = append(a.frontier, n)
	}

	if len(a.frontier) == 0 {
		a.tracker.SetComplete()
		return nil
	}
	i := rng.Intn(len(a.frontier))
	a.current = a.frontier[i]
	a.frontier = removeAt(a.frontier, i)
	return nil
}

// Frontier returns the coordinates currently waiting to be expanded.
func (a *Prim) Frontier() []grid.Point {
	out := make([]grid.Point, len(a.frontier))
	for i, r := range a.frontier {
		out[i] = r.Location()
	}
	return out
}
