// Package astar finds the shortest room path between two cells of a walled
// grid with the A* search.
//
// What:
//
//   - Pathfinder reads walls through grid.View and never mutates the grid.
//   - Cardinal moves cost 10 and need the shared wall open in both rooms, so a
//     wall removed on one side only still blocks.
//   - With diagonals enabled, a diagonal move costs 14 and is allowed only when
//     both adjoining cardinal walls of the current room are open (north-east
//     needs North and East open). The target room's walls are not consulted,
//     so a diagonal may enter a room walled off from both rooms beside it.
//   - The heuristic is Manhattan distance × 10, also when diagonals are on.
//     With diagonals it can overestimate, so a diagonal path is short but not
//     guaranteed to be the cheapest. Cardinal-only searches are exact.
//
// Lists:
//
//   - The open list is an insertion-ordered slice scanned linearly. The node
//     with the lowest total cost wins; ties go to the node inserted first.
//   - A rediscovered open node with a higher movement cost is updated and
//     re-parented in place rather than duplicated.
//   - Nodes refer to their parent by an opaque id looked up in the closed list,
//     so a parent is never an owning pointer.
//
// Result:
//
//   - ShortestPath is goal-first, start-last. Consumers must walk it backwards
//     for a start→goal traversal.
//
// States: NotStarted → Searching → Found, or NoPath when the open list runs
// dry (ErrNoPath). Generate runs to completion; Step advances one expansion
// for hosts that want to spread a large search over several frames.
package astar
