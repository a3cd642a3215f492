// Package generator carves perfect mazes into a grid.Grid, one discrete unit
// of work per Update call.
//
// What:
//
//   - Algorithm is the shared stepping contract: Initialize validates the
//     grid's start/finish, resets every room and sets the progress goal;
//     Update(rng) advances by one unit; IsComplete reports the tracker.
//   - Ten interchangeable variants, selected by Method through New:
//
//     recursive-backtracker  explicit-stack depth-first carving
//     hunt-and-kill          random walk, then scan for a visited cell next to unvisited ones
//     prim                   carve every open neighbour, continue from a random frontier cell
//     kruskal                merge the smallest group into a random foreign neighbour
//     eller                  row by row, random horizontal merges and downward drops
//     sidewinder             row by row runs closed by a random northward carve
//     binary-tree            every cell carves north or west
//     aldous-broder          uniform random walk, carve on first entry
//     wilson                 loop-erased random walks into the growing tree
//     growing-tree           active list with newest/oldest/random/mixed selection
//
// Determinism:
//
//   - Randomness is always injected: Update takes a Source ("give me an
//     unbiased integer in [0,n)"). *math/rand.Rand satisfies it; NewSource
//     builds one from a seed. Same seed and same grid ⇒ same maze.
//   - Neighbour scans follow grid.Cardinals and rooms are scanned row-major,
//     so no result depends on map iteration order.
//
// Stepping contract:
//
//   - Update before Initialize returns ErrNotInitialized.
//   - Update after completion is a no-op that pins the tracker at its goal.
//   - Every carve goes through helper.JoinRooms, so wall pairs stay symmetric.
//   - On completion every room has fewer than four walls (except a 1×1 grid)
//     and the grid is a spanning tree: one component, cols*rows-1 passages.
//
// Generate drives any Algorithm to completion and checks a context between
// steps.
package generator
