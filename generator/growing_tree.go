package generator

import "github.com/katalvlaran/labyrinth/grid"

// GrowingTree keeps a list of active rooms. Each Update selects one active
// room by the configured Selection; if it has unvisited neighbours one is
// carved uniformly at random and appended to the list, otherwise the room is
// retired. Progress counts visited rooms.
type GrowingTree struct {
	base
	selection Selection
	active    []*grid.Room
}

// NewGrowingTree binds the algorithm to g with the given selection policy.
func NewGrowingTree(g *grid.Grid, s Selection) *GrowingTree {
	return &GrowingTree{base: base{grid: g}, selection: s}
}

// Method returns MethodGrowingTree.
func (a *GrowingTree) Method() Method { return MethodGrowingTree }

// Selection returns the configured policy.
func (a *GrowingTree) Selection() Selection { return a.selection }

// Initialize resets the grid and activates the start room.
func (a *GrowingTree) Initialize() error {
	start, err := a.prepare(sizeOf(a.grid))
	if err != nil {
		return err
	}
	start.SetVisited(true)
	a.tracker.Increase()
	a.active = append(a.active[:0], start)
	return nil
}

// Update extends or retires one active room.
func (a *GrowingTree) Update(rng Source) error {
	if done, err := a.begin(rng); done {
		return err
	}
	if len(a.active) == 0 {
		a.tracker.SetComplete()
		return nil
	}

	i := a.pick(rng)
	cur := a.active[i]
	next := unvisitedNeighbors(a.grid, cur)
	if len(next) == 0 {
		a.active = removeAt(a.active, i)
		return nil
	}
	n := next[rng.Intn(len(next))]
	if err := a.carve(cur, n); err != nil {
		return err
	}
	a.active = append(a.active, n)
	return nil
}

// pick returns the index of the active room to extend.
func (a *GrowingTree) pick(rng Source) int {
	newest := len(a.active) - 1
	switch a.selection {
	case SelectOldest:
		return 0
	case SelectRandom:
		return rng.Intn(len(a.active))
	case SelectMixed:
		if rng.Intn(2) == 0 {
			return newest
		}
		return rng.Intn(len(a.active))
	default:
		return newest
	}
}
