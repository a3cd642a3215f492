package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/labyrinth/grid"
)

// open removes the shared wall pair between (c,r) and its neighbour in d.
func open(t *testing.T, g *grid.Grid, c, r int, d grid.Direction) {
	t.Helper()
	a, ok := g.Room(c, r)
	require.True(t, ok)
	b, ok := g.Neighbor(a, d)
	require.True(t, ok)
	a.RemoveWall(d)
	b.RemoveWall(d.Opposite())
}

func TestComponents_Corridor(t *testing.T) {
	g, err := grid.New(3, 2)
	require.NoError(t, err)
	assert.Equal(t, 6, g.Components())
	assert.Zero(t, g.Passages())

	// Top row corridor plus one drop in the middle.
	open(t, g, 0, 0, grid.East)
	open(t, g, 1, 0, grid.East)
	open(t, g, 1, 0, grid.South)
	assert.Equal(t, 3, g.Components()) // corridor+drop, (0,1), (2,1)
	assert.Equal(t, 3, g.Passages())

	open(t, g, 0, 1, grid.East)
	open(t, g, 1, 1, grid.East)
	assert.Equal(t, 1, g.Components())
	assert.Equal(t, 5, g.Passages(), "spanning tree of 6 rooms")
}

// TestComponents_HalfOpenWall verifies a wall open on one side only is no passage.
func TestComponents_HalfOpenWall(t *testing.T) {
	g, err := grid.New(2, 1)
	require.NoError(t, err)
	a, _ := g.Room(0, 0)
	a.RemoveWall(grid.East)

	assert.Equal(t, 2, g.Components())
	assert.Zero(t, g.Passages())
	assert.False(t, g.Symmetric())

	b, _ := g.Room(1, 0)
	b.RemoveWall(grid.West)
	assert.True(t, g.Symmetric())
	assert.Equal(t, 1, g.Components())
}
