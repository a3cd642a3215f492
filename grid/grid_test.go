package grid_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/labyrinth/grid"
)

//----------------------------------------------------------------------------//
// Construction and bounds
//----------------------------------------------------------------------------//

func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name       string
		cols, rows int
	}{
		{"ZeroColumns", 0, 3},
		{"ZeroRows", 3, 0},
		{"Negative", -1, -1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := grid.New(tc.cols, tc.rows)
			assert.Nil(t, g)
			assert.ErrorIs(t, err, grid.ErrEmptyGrid)
		})
	}
}

func TestInBoundsAndRoom(t *testing.T) {
	g, err := grid.New(3, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, g.Columns())
	assert.Equal(t, 2, g.Rows())
	assert.Equal(t, 6, g.Size())

	for _, xy := range [][2]int{{0, 0}, {2, 1}, {1, 1}} {
		assert.True(t, g.InBounds(xy[0], xy[1]), "InBounds(%d,%d)", xy[0], xy[1])
		r, ok := g.Room(xy[0], xy[1])
		require.True(t, ok)
		assert.True(t, r.HasLocation(xy[0], xy[1]))
	}
	for _, xy := range [][2]int{{-1, 0}, {3, 0}, {1, 2}, {2, -1}} {
		assert.False(t, g.InBounds(xy[0], xy[1]), "InBounds(%d,%d)", xy[0], xy[1])
		r, ok := g.Room(xy[0], xy[1])
		assert.False(t, ok)
		assert.Nil(t, r)
		assert.True(t, g.HasWall(xy[0], xy[1], grid.North), "off-grid reads as a wall")
	}
}

// TestNew_UniqueIdentity verifies ids and initial groups never repeat.
func TestNew_UniqueIdentity(t *testing.T) {
	g, err := grid.New(7, 5)
	require.NoError(t, err)

	ids := make(map[uuid.UUID]struct{})
	groups := make(map[int64]struct{})
	g.Each(func(r *grid.Room) {
		ids[r.ID()] = struct{}{}
		groups[r.Group()] = struct{}{}
		assert.Equal(t, 4, r.WallCount())
	})
	assert.Len(t, ids, 35)
	assert.Len(t, groups, 35)
}

func TestWithOpenRooms(t *testing.T) {
	g, err := grid.New(2, 2, grid.WithOpenRooms())
	require.NoError(t, err)
	g.Each(func(r *grid.Room) {
		assert.Zero(t, r.WallCount())
	})
	assert.Equal(t, 4, g.Passages())
	assert.Equal(t, 1, g.Components())
}

func TestEach_RowMajor(t *testing.T) {
	g, err := grid.New(3, 2)
	require.NoError(t, err)
	var seen []grid.Point
	g.Each(func(r *grid.Room) { seen = append(seen, r.Location()) })
	assert.Equal(t, []grid.Point{
		{Column: 0, Row: 0}, {Column: 1, Row: 0}, {Column: 2, Row: 0},
		{Column: 0, Row: 1}, {Column: 1, Row: 1}, {Column: 2, Row: 1},
	}, seen)
	assert.Len(t, g.RowRooms(1), 3)
	assert.Nil(t, g.RowRooms(2))
}

func TestNeighbor(t *testing.T) {
	g, err := grid.New(2, 2)
	require.NoError(t, err)
	origin, _ := g.Room(0, 0)

	east, ok := g.Neighbor(origin, grid.East)
	require.True(t, ok)
	assert.True(t, east.HasLocation(1, 0))

	_, ok = g.Neighbor(origin, grid.North)
	assert.False(t, ok)
	_, ok = g.Neighbor(origin, grid.West)
	assert.False(t, ok)
}

//----------------------------------------------------------------------------//
// Endpoints
//----------------------------------------------------------------------------//

func TestCheckEndpoints(t *testing.T) {
	g, err := grid.New(4, 4)
	require.NoError(t, err)

	assert.ErrorIs(t, g.CheckEndpoints(), grid.ErrStartUnset)
	_, err = g.StartRoom()
	assert.ErrorIs(t, err, grid.ErrStartUnset)

	g.SetStart(1, 1)
	assert.ErrorIs(t, g.CheckEndpoints(), grid.ErrFinishUnset)

	g.SetFinish(4, 0)
	assert.ErrorIs(t, g.CheckEndpoints(), grid.ErrOutOfBounds)

	g.SetFinish(3, 3)
	assert.NoError(t, g.CheckEndpoints())

	start, ok := g.Start()
	assert.True(t, ok)
	assert.Equal(t, grid.Point{Column: 1, Row: 1}, start)

	r, err := g.StartRoom()
	require.NoError(t, err)
	assert.True(t, r.HasLocation(1, 1))

	g.SetStart(-1, 0)
	assert.ErrorIs(t, g.CheckEndpoints(), grid.ErrOutOfBounds)
}

func TestReset(t *testing.T) {
	g, err := grid.New(3, 3, grid.WithOpenRooms())
	require.NoError(t, err)
	g.Each(func(r *grid.Room) {
		r.SetVisited(true)
		r.SetCost(5)
		r.SetGroup(0)
	})

	g.Reset()
	groups := make(map[int64]struct{})
	g.Each(func(r *grid.Room) {
		assert.Equal(t, 4, r.WallCount())
		assert.False(t, r.Visited())
		assert.Zero(t, r.Cost())
		groups[r.Group()] = struct{}{}
	})
	assert.Len(t, groups, 9)
	assert.Equal(t, 9, g.Components())
}
