package generator

import "github.com/katalvlaran/labyrinth/grid"

// Wilson builds a uniform spanning tree from loop-erased random walks.
//
// The start room seeds the tree. Each Update picks a uniformly random
// unvisited room (row-major candidate list) and walks randomly until it hits
// the tree, remembering only the last exit taken from every room so loops
// erase themselves. The erased walk is then retraced and carved into the tree.
// Progress counts rooms in the tree.
type Wilson struct {
	base
}

// NewWilson binds the algorithm to g.
func NewWilson(g *grid.Grid) *Wilson {
	return &Wilson{base: base{grid: g}}
}

// Method returns MethodWilson.
func (a *Wilson) Method() Method { return MethodWilson }

// Initialize resets the grid and adds the start room to the tree.
func (a *Wilson) Initialize() error {
	start, err := a.prepare(sizeOf(a.grid))
	if err != nil {
		return err
	}
	start.SetVisited(true)
	a.tracker.Increase()
	return nil
}

// Update grafts one loop-erased walk onto the tree.
func (a *Wilson) Update(rng Source) error {
	if done, err := a.begin(rng); done {
		return err
	}

	var outside []*grid.Room
	a.grid.Each(func(r *grid.Room) {
		if !r.Visited() {
			outside = append(outside, r)
		}
	})
	if len(outside) == 0 {
		a.tracker.SetComplete()
		return nil
	}

	origin := outside[rng.Intn(len(outside))]
	exits := make(map[grid.Point]*grid.Room)
	for cur := origin; !cur.Visited(); {
		next := neighbors(a.grid, cur)
		n := next[rng.Intn(len(next))]
		exits[cur.Location()] = n
		cur = n
	}

	for cur := origin; !cur.Visited(); {
		n := exits[cur.Location()]
		if err := a.carve(n, cur); err != nil {
			return err
		}
		cur = n
	}
	return nil
}
