package generator

import "github.com/katalvlaran/labyrinth/grid"

// groupSet indexes rooms by their group tag so union-style generators can
// merge components and query component sizes without rescanning the grid.
type groupSet struct {
	members map[int64][]*grid.Room
}

// newGroupSet snapshots the current group of every room.
func newGroupSet(g *grid.Grid) *groupSet {
	s := &groupSet{members: make(map[int64][]*grid.Room, g.Size())}
	g.Each(func(r *grid.Room) {
		s.members[r.Group()] = append(s.members[r.Group()], r)
	})
	return s
}

// merge reassigns every room of group from to group into.
// Complexity: O(|from|).
func (s *groupSet) merge(into, from int64) {
	if into == from {
		return
	}
	moved := s.members[from]
	for _, r := range moved {
		r.SetGroup(into)
	}
	s.members[into] = append(s.members[into], moved...)
	delete(s.members, from)
}

// len returns the number of distinct groups.
func (s *groupSet) len() int {
	return len(s.members)
}

// smallest returns the group with the fewest members; ties go to the lowest
// group id so the answer never depends on map order.
func (s *groupSet) smallest() int64 {
	var (
		best int64
		size = -1
	)
	for id, rooms := range s.members {
		n := len(rooms)
		if size < 0 || n < size || (n == size && id < best) {
			best, size = id, n
		}
	}
	return best
}
