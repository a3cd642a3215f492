// Package grid models a rectangular maze as a 2D array of rooms.
//
// What:
//
//   - Room is a single cell with four optional walls (North, East, South, West),
//     a visited flag, a hop-distance cost, a group tag and a unique identity.
//   - Grid owns cols×rows rooms plus mutable start/finish coordinates and all
//     bounds checking.
//   - View is the read-only slice of a Grid that pathfinders consume.
//
// Conventions:
//
//   - Coordinates are (column, row); column grows east, row grows south.
//   - Scans are row-major: row outer, column inner. Every algorithm that
//     breaks ties "by scan order" relies on this.
//   - Out-of-bounds lookups return (nil, false), never panic, so callers can
//     treat off-grid neighbours as walls.
//
// Connectivity audit:
//
//   - Components unions every pair of rooms joined by an open wall pair and
//     counts the resulting disjoint sets. A perfect maze has exactly one
//     component and cols*rows-1 passages.
//
// Errors:
//
//   - ErrEmptyGrid:   columns or rows ≤ 0.
//   - ErrStartUnset:  start requested before SetStart.
//   - ErrFinishUnset: finish requested before SetFinish.
//   - ErrOutOfBounds: a coordinate lies outside the grid.
package grid
