package grid

import "github.com/spakin/disjoint"

// Components unions every pair of rooms joined by an open wall pair and
// returns the number of disjoint sets. A fully generated maze has exactly one.
//
// Only east and south neighbours are inspected; by symmetry that covers every
// shared wall once.
// Complexity: O(W×H·α(W×H)) time, O(W×H) memory.
func (g *Grid) Components() int {
	sets := make([]*disjoint.Element, g.Size())
	for i := range sets {
		sets[i] = disjoint.NewElement()
	}
	g.eachPassage(func(a, b *Room) {
		disjoint.Union(sets[g.index(a.column, a.row)], sets[g.index(b.column, b.row)])
	})

	roots := make(map[*disjoint.Element]struct{}, len(sets))
	for _, e := range sets {
		roots[e.Find()] = struct{}{}
	}
	return len(roots)
}

// Passages counts shared walls that are open on both sides. A perfect maze
// (a spanning tree) has exactly cols*rows-1.
func (g *Grid) Passages() int {
	n := 0
	g.eachPassage(func(_, _ *Room) { n++ })
	return n
}

// Symmetric reports whether every shared wall is either open on both sides or
// closed on both sides.
func (g *Grid) Symmetric() bool {
	ok := true
	g.Each(func(a *Room) {
		for _, d := range [2]Direction{East, South} {
			b, in := g.Neighbor(a, d)
			if !in {
				continue
			}
			if a.HasWall(d) != b.HasWall(d.Opposite()) {
				ok = false
			}
		}
	})
	return ok
}

// eachPassage calls fn(a,b) for every east/south neighbour pair whose shared
// wall is open on both sides.
func (g *Grid) eachPassage(fn func(a, b *Room)) {
	g.Each(func(a *Room) {
		for _, d := range [2]Direction{East, South} {
			b, ok := g.Neighbor(a, d)
			if !ok {
				continue
			}
			if !a.HasWall(d) && !b.HasWall(d.Opposite()) {
				fn(a, b)
			}
		}
	})
}
