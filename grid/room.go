package grid

import (
	"github.com/google/uuid"
	"github.com/zyedidia/generic/mapset"
)

// Room is a single maze cell. Its (column,row) location is fixed at
// construction; everything else is mutable state owned by whichever
// algorithm currently drives the grid.
type Room struct {
	id      uuid.UUID
	column  int
	row     int
	walls   mapset.Set[Direction]
	visited bool
	cost    int
	group   int64
}

// NewRoom creates a room at (column,row) tagged with group. When closed is
// true the room starts with all four walls.
func NewRoom(column, row int, group int64, closed bool) *Room {
	r := &Room{
		id:     uuid.New(),
		column: column,
		row:    row,
		walls:  mapset.New[Direction](),
		group:  group,
	}
	if closed {
		r.AddAllWalls()
	}
	return r
}

// ID returns the room's identity. It is unrelated to Group and only used for
// equality checks.
func (r *Room) ID() uuid.UUID { return r.id }

// Column returns the room's column.
func (r *Room) Column() int { return r.column }

// Row returns the room's row.
func (r *Room) Row() int { return r.row }

// Location returns (column,row) as a Point.
func (r *Room) Location() Point { return Point{Column: r.column, Row: r.row} }

// HasLocation compares only coordinates and ignores every other field.
func (r *Room) HasLocation(column, row int) bool {
	return r.column == column && r.row == row
}

// AddWall inserts w and reports whether it was absent before.
func (r *Room) AddWall(w Direction) bool {
	if r.walls.Has(w) {
		return false
	}
	r.walls.Put(w)
	return true
}

// RemoveWall deletes w if present.
func (r *Room) RemoveWall(w Direction) {
	r.walls.Remove(w)
}

// HasWall reports whether w is present.
func (r *Room) HasWall(w Direction) bool {
	return r.walls.Has(w)
}

// AddAllWalls closes every side, resetting the room to "unconnected".
func (r *Room) AddAllWalls() {
	for _, d := range Cardinals {
		r.walls.Put(d)
	}
}

// RemoveAllWalls opens every side.
func (r *Room) RemoveAllWalls() {
	for _, d := range Cardinals {
		r.walls.Remove(d)
	}
}

// WallCount returns how many of the four sides are closed.
func (r *Room) WallCount() int {
	return r.walls.Size()
}

// Walls returns the closed sides in Cardinals order.
func (r *Room) Walls() []Direction {
	out := make([]Direction, 0, 4)
	for _, d := range Cardinals {
		if r.walls.Has(d) {
			out = append(out, d)
		}
	}
	return out
}

// SetVisited stores the visited flag.
func (r *Room) SetVisited(v bool) { r.visited = v }

// Visited reports the visited flag.
func (r *Room) Visited() bool { return r.visited }

// SetCost stores the hop distance. Negative values are clamped to 0.
func (r *Room) SetCost(c int) {
	if c < 0 {
		c = 0
	}
	r.cost = c
}

// Cost returns the hop distance from the last cost reference cell.
func (r *Room) Cost() int { return r.cost }

// SetGroup stores the connected-component tag.
func (r *Room) SetGroup(g int64) { r.group = g }

// Group returns the connected-component tag.
func (r *Room) Group() int64 { return r.group }
