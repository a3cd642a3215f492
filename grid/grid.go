package grid

import "fmt"

// Grid is a fixed cols×rows array of rooms plus start/finish coordinates.
// Start and finish are not bounds-checked when set; CheckEndpoints does that
// once an algorithm is about to use them.
type Grid struct {
	columns, rows int
	rooms         [][]*Room // rooms[row][column]
	open          bool

	start, finish       Point
	hasStart, hasFinish bool
}

// Option configures grid construction.
type Option func(*Grid)

// WithOpenRooms builds rooms with no walls instead of all four. Useful for
// pathfinding over hand-built layouts.
func WithOpenRooms() Option {
	return func(g *Grid) {
		g.open = true
	}
}

// WithStart presets the start coordinate.
func WithStart(column, row int) Option {
	return func(g *Grid) {
		g.SetStart(column, row)
	}
}

// WithFinish presets the finish coordinate.
func WithFinish(column, row int) Option {
	return func(g *Grid) {
		g.SetFinish(column, row)
	}
}

// New allocates a columns×rows grid. Every room receives a unique group equal
// to its row-major index. Returns ErrEmptyGrid when either dimension is ≤ 0.
// Complexity: O(W×H) time and memory.
func New(columns, rows int, opts ...Option) (*Grid, error) {
	if columns <= 0 || rows <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrEmptyGrid, columns, rows)
	}
	g := &Grid{columns: columns, rows: rows}
	for _, opt := range opts {
		opt(g)
	}
	g.rooms = make([][]*Room, rows)
	for r := 0; r < rows; r++ {
		g.rooms[r] = make([]*Room, columns)
		for c := 0; c < columns; c++ {
			g.rooms[r][c] = NewRoom(c, r, g.index(c, r), !g.open)
		}
	}
	return g, nil
}

// Columns returns the grid width.
func (g *Grid) Columns() int { return g.columns }

// Rows returns the grid height.
func (g *Grid) Rows() int { return g.rows }

// Size returns columns*rows.
func (g *Grid) Size() int { return g.columns * g.rows }

// InBounds reports whether 0 ≤ column < cols and 0 ≤ row < rows.
func (g *Grid) InBounds(column, row int) bool {
	return column >= 0 && column < g.columns && row >= 0 && row < g.rows
}

// Room returns the room at (column,row), or (nil,false) when off-grid.
func (g *Grid) Room(column, row int) (*Room, bool) {
	if !g.InBounds(column, row) {
		return nil, false
	}
	return g.rooms[row][column], true
}

// RoomAt is Room for a Point.
func (g *Grid) RoomAt(p Point) (*Room, bool) {
	return g.Room(p.Column, p.Row)
}

// Neighbor returns the room adjacent to r in direction d, if on-grid.
func (g *Grid) Neighbor(r *Room, d Direction) (*Room, bool) {
	dc, dr := d.Delta()
	return g.Room(r.column+dc, r.row+dr)
}

// HasWall implements View. Off-grid coordinates always report a wall.
func (g *Grid) HasWall(column, row int, d Direction) bool {
	r, ok := g.Room(column, row)
	if !ok {
		return true
	}
	return r.HasWall(d)
}

// Each calls fn for every room in row-major order.
func (g *Grid) Each(fn func(r *Room)) {
	for _, line := range g.rooms {
		for _, r := range line {
			fn(r)
		}
	}
}

// RowRooms returns the rooms of one row, west to east. The slice is shared
// with the grid; callers must not append to it.
func (g *Grid) RowRooms(row int) []*Room {
	if row < 0 || row >= g.rows {
		return nil
	}
	return g.rooms[row]
}

// Reset closes every wall, clears visited and cost, and restores each room's
// unique group. Generation algorithms call it from Initialize.
func (g *Grid) Reset() {
	g.Each(func(r *Room) {
		r.AddAllWalls()
		r.visited = false
		r.cost = 0
		r.group = g.index(r.column, r.row)
	})
}

// SetStart assigns the start coordinate without validating it.
func (g *Grid) SetStart(column, row int) {
	g.start = Point{Column: column, Row: row}
	g.hasStart = true
}

// Start returns the start coordinate and whether it was ever set.
func (g *Grid) Start() (Point, bool) { return g.start, g.hasStart }

// SetFinish assigns the finish coordinate without validating it.
func (g *Grid) SetFinish(column, row int) {
	g.finish = Point{Column: column, Row: row}
	g.hasFinish = true
}

// Finish returns the finish coordinate and whether it was ever set.
func (g *Grid) Finish() (Point, bool) { return g.finish, g.hasFinish }

// CheckEndpoints validates that start and finish are set and on-grid.
func (g *Grid) CheckEndpoints() error {
	if !g.hasStart {
		return ErrStartUnset
	}
	if !g.hasFinish {
		return ErrFinishUnset
	}
	if !g.InBounds(g.start.Column, g.start.Row) {
		return fmt.Errorf("%w: start %v in %dx%d", ErrOutOfBounds, g.start, g.columns, g.rows)
	}
	if !g.InBounds(g.finish.Column, g.finish.Row) {
		return fmt.Errorf("%w: finish %v in %dx%d", ErrOutOfBounds, g.finish, g.columns, g.rows)
	}
	return nil
}

// StartRoom returns the room at the start coordinate.
func (g *Grid) StartRoom() (*Room, error) {
	if !g.hasStart {
		return nil, ErrStartUnset
	}
	r, ok := g.RoomAt(g.start)
	if !ok {
		return nil, fmt.Errorf("%w: start %v", ErrOutOfBounds, g.start)
	}
	return r, nil
}

// index maps (column,row) to a row-major index used as the initial group.
func (g *Grid) index(column, row int) int64 {
	return int64(row*g.columns + column)
}
