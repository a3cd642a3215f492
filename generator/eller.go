package generator

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/labyrinth/grid"
	"github.com/katalvlaran/labyrinth/helper"
)

// Eller carves one row per Update.
//
// Horizontal pass, west to east: each adjacent pair in different groups is
// merged and carved with probability 1/2. The first row joins every pair, and
// the last row joins every pair still in different groups.
// Vertical pass (all rows but the last): for every distinct group in the row,
// in order of first appearance, a uniformly sized non-empty random subset of
// its rooms carves south, pulling each south neighbour into the group.
// Progress counts finished rows.
type Eller struct {
	base
	row    int
	groups *groupSet
}

// NewEller binds the algorithm to g.
func NewEller(g *grid.Grid) *Eller {
	return &Eller{base: base{grid: g}}
}

// Method returns MethodEller.
func (a *Eller) Method() Method { return MethodEller }

// Initialize resets the grid and rewinds to row 0.
func (a *Eller) Initialize() error {
	rows := 0
	if a.grid != nil {
		rows = a.grid.Rows()
	}
	if _, err := a.prepare(rows); err != nil {
		return err
	}
	a.groups = newGroupSet(a.grid)
	a.row = 0
	return nil
}

// Update processes the next row.
func (a *Eller) Update(rng Source) error {
	if done, err := a.begin(rng); done {
		return err
	}
	if a.row >= a.grid.Rows() {
		a.tracker.SetComplete()
		return nil
	}

	rooms := a.grid.RowRooms(a.row)
	first := a.row == 0
	last := a.row == a.grid.Rows()-1

	for _, r := range rooms {
		r.SetVisited(true)
	}

	for c := 0; c+1 < len(rooms); c++ {
		west, east := rooms[c], rooms[c+1]
		join := first || last || rng.Intn(2) == 0
		if !join || west.Group() == east.Group() {
			continue
		}
		a.groups.merge(west.Group(), east.Group())
		if err := helper.JoinRooms(west, east); err != nil {
			return err
		}
	}

	if !last {
		if err := a.drop(rng, rooms); err != nil {
			return err
		}
	}

	a.row++
	a.tracker.Increase()
	return nil
}

// drop carves a random non-empty subset of every group in rooms southward.
func (a *Eller) drop(rng Source, rooms []*grid.Room) error {
	seen := mapset.New[int64]()
	var order []int64
	byGroup := make(map[int64][]*grid.Room)
	for _, r := range rooms {
		g := r.Group()
		if !seen.Has(g) {
			seen.Put(g)
			order = append(order, g)
		}
		byGroup[g] = append(byGroup[g], r)
	}

	for _, g := range order {
		members := byGroup[g]
		k := 1 + rng.Intn(len(members))
		// Partial Fisher–Yates: the first k slots become the sample.
		for i := 0; i < k; i++ {
			j := i + rng.Intn(len(members)-i)
			members[i], members[j] = members[j], members[i]
		}
		for _, r := range members[:k] {
			south, ok := a.grid.Neighbor(r, grid.South)
			if !ok {
				continue
			}
			a.groups.merge(g, south.Group())
			if err := helper.JoinRooms(r, south); err != nil {
				return err
			}
		}
	}
	return nil
}
