package generator

import "github.com/katalvlaran/labyrinth/grid"

// wallPair is a shared wall between a room and a neighbour in another group.
type wallPair struct {
	from, to *grid.Room
}

// Kruskal merges connected components until one remains.
//
// Every room starts in its own group. Each Update collects the walls from the
// current room to neighbours in a different group, picks one uniformly,
// reassigns every room of the neighbour's group to the current room's group
// and carves the wall. The next current room is a uniformly random member of
// the group with the fewest rooms (ties: lowest group id).
//
// When the current room is surrounded by its own group, the candidate walls
// are gathered from every member of that group instead, so each Update merges
// exactly two groups. Progress counts merges; the goal is cols*rows-1.
type Kruskal struct {
	base
	current *grid.Room
	groups  *groupSet
}

// NewKruskal binds the algorithm to g.
func NewKruskal(g *grid.Grid) *Kruskal {
	return &Kruskal{base: base{grid: g}}
}

// Method returns MethodKruskal.
func (a *Kruskal) Method() Method { return MethodKruskal }

// Initialize resets the grid, giving every room a unique group, and starts
// at the start room.
func (a *Kruskal) Initialize() error {
	start, err := a.prepare(sizeOf(a.grid) - 1)
	if err != nil {
		return err
	}
	a.groups = newGroupSet(a.grid)
	a.current = start
	return nil
}

// Update performs one merge.
func (a *Kruskal) Update(rng Source) error {
	if done, err := a.begin(rng); done {
		return err
	}
	if a.groups.len() <= 1 {
		a.tracker.SetComplete()
		return nil
	}

	walls := a.foreignWalls(a.current)
	if len(walls) == 0 {
		for _, r := range a.groups.members[a.current.Group()] {
			walls = append(walls, a.foreignWalls(r)...)
		}
	}
	if len(walls) == 0 {
		// Unreachable on a rectangular grid with more than one group.
		a.tracker.SetComplete()
		return nil
	}

	w := walls[rng.Intn(len(walls))]
	a.groups.merge(w.from.Group(), w.to.Group())
	w.from.SetVisited(true)
	if err := a.carve(w.from, w.to); err != nil {
		return err
	}

	if a.groups.len() > 1 {
		members := a.groups.members[a.groups.smallest()]
		a.current = members[rng.Intn(len(members))]
	}
	return nil
}

// Groups returns the number of distinct groups left. Zero before Initialize.
func (a *Kruskal) Groups() int {
	if a.groups == nil {
		return 0
	}
	return a.groups.len()
}

// foreignWalls lists walls from r to neighbours outside r's group, in
// grid.Cardinals order.
func (a *Kruskal) foreignWalls(r *grid.Room) []wallPair {
	var out []wallPair
	for _, n := range neighbors(a.grid, r) {
		if n.Group() != r.Group() {
			out = append(out, wallPair{from: r, to: n})
		}
	}
	return out
}
