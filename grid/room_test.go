package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/labyrinth/grid"
)

// TestRoom_WallSet checks the insert-reporting contract of AddWall and the
// idempotence of RemoveWall.
func TestRoom_WallSet(t *testing.T) {
	r := grid.NewRoom(1, 2, 7, false)
	assert.Zero(t, r.WallCount())

	assert.True(t, r.AddWall(grid.North), "first insert reports change")
	assert.False(t, r.AddWall(grid.North), "second insert reports no change")
	assert.True(t, r.HasWall(grid.North))
	assert.False(t, r.HasWall(grid.South))

	r.RemoveWall(grid.North)
	r.RemoveWall(grid.North) // absent: no-op
	assert.False(t, r.HasWall(grid.North))

	r.AddAllWalls()
	assert.Equal(t, 4, r.WallCount())
	assert.Equal(t, []grid.Direction{grid.North, grid.East, grid.South, grid.West}, r.Walls())

	r.RemoveAllWalls()
	assert.Zero(t, r.WallCount())
	assert.Empty(t, r.Walls())
}

func TestRoom_Accessors(t *testing.T) {
	r := grid.NewRoom(3, 4, 19, true)
	assert.Equal(t, 3, r.Column())
	assert.Equal(t, 4, r.Row())
	assert.Equal(t, grid.Point{Column: 3, Row: 4}, r.Location())
	assert.Equal(t, int64(19), r.Group())
	assert.Equal(t, 4, r.WallCount())

	r.SetVisited(true)
	r.SetCost(12)
	r.SetGroup(2)
	assert.True(t, r.Visited())
	assert.Equal(t, 12, r.Cost())
	assert.Equal(t, int64(2), r.Group())

	r.SetCost(-5)
	assert.Zero(t, r.Cost(), "cost never drops below zero")
}

// TestRoom_HasLocation ignores every field except coordinates.
func TestRoom_HasLocation(t *testing.T) {
	a := grid.NewRoom(2, 2, 1, true)
	b := grid.NewRoom(2, 2, 9, false)
	b.SetVisited(true)

	assert.True(t, a.HasLocation(b.Column(), b.Row()))
	assert.False(t, a.HasLocation(2, 3))
	assert.NotEqual(t, a.ID(), b.ID())
}

func TestDirection_OppositeAndDelta(t *testing.T) {
	cases := []struct {
		d      grid.Direction
		opp    grid.Direction
		dc, dr int
	}{
		{grid.North, grid.South, 0, -1},
		{grid.East, grid.West, 1, 0},
		{grid.South, grid.North, 0, 1},
		{grid.West, grid.East, -1, 0},
	}
	for _, tc := range cases {
		t.Run(tc.d.String(), func(t *testing.T) {
			assert.Equal(t, tc.opp, tc.d.Opposite())
			assert.Equal(t, tc.d, tc.d.Opposite().Opposite())
			dc, dr := tc.d.Delta()
			assert.Equal(t, tc.dc, dc)
			assert.Equal(t, tc.dr, dr)
		})
	}
	assert.Equal(t, grid.Point{Column: 4, Row: 2}, grid.Point{Column: 3, Row: 2}.Step(grid.East))
}
