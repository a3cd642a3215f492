// Package labyrinth generates perfect mazes step by step and solves them
// with A*.
//
// What:
//
//   - grid       rooms, walls, endpoints, ASCII rendering, connectivity audit
//   - progress   goal/count tracker shared by every generator
//   - helper     passage carving, BFS hop costs, finish placement
//   - generator  ten interchangeable carving algorithms behind one interface
//   - astar      A* over any wall-annotated grid, goal-first paths
//
// The Labyrinth type in this package wires them together: a grid, the chosen
// generator, a seeded source and a pathfinder.
//
//	lab, err := labyrinth.New(21, 21, labyrinth.WithMethod(generator.MethodKruskal), labyrinth.WithSeed(7))
//	if err != nil { ... }
//	for !lab.IsGenerated() {
//		_ = lab.Update() // one unit of work per frame
//	}
//	path, err := lab.Solve()
//
// Lifecycle: New initializes the generator; Update advances it; on completion
// the finish moves to the room farthest from the start unless WithFinish fixed
// it. Solve is available once IsGenerated reports true.
//
// Determinism: the same size, method, options and seed always produce the
// same maze and path. No package keeps global random state.
//
// Concurrency: a Labyrinth is not safe for concurrent use. Generation owns the
// grid until it completes; afterwards helper and astar only read walls.
package labyrinth
