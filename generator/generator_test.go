package generator_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/labyrinth/generator"
	"github.com/katalvlaran/labyrinth/grid"
)

// zeroSource always answers 0: every "random" choice takes the first option.
type zeroSource struct{}

func (zeroSource) Intn(int) int { return 0 }

// newGrid returns a cols×rows grid with start at (0,0) and finish at the
// opposite corner.
func newGrid(t testing.TB, cols, rows int) *grid.Grid {
	t.Helper()
	g, err := grid.New(cols, rows, grid.WithStart(0, 0), grid.WithFinish(cols-1, rows-1))
	require.NoError(t, err)
	return g
}

// assertPerfect checks the invariants every finished maze shares.
func assertPerfect(t *testing.T, g *grid.Grid) {
	t.Helper()
	n := g.Size()
	assert.True(t, g.Symmetric(), "wall pairs must match")
	assert.Equal(t, 1, g.Components(), "every room reachable")
	assert.Equal(t, n-1, g.Passages(), "spanning tree")
	if n == 1 {
		return
	}
	g.Each(func(r *grid.Room) {
		assert.Less(t, r.WallCount(), 4, "room %v isolated", r.Location())
		assert.True(t, r.Visited(), "room %v not visited", r.Location())
	})
}

//----------------------------------------------------------------------------//
// Shared contract, every method
//----------------------------------------------------------------------------//

// TestMethods_ProducePerfectMazes runs every method over several shapes and seeds.
func TestMethods_ProducePerfectMazes(t *testing.T) {
	shapes := [][2]int{{1, 1}, {1, 6}, {6, 1}, {2, 2}, {5, 5}, {9, 4}, {13, 13}}
	seeds := []int64{1, 7, 42}
	for _, m := range generator.Methods() {
		for _, sh := range shapes {
			for _, seed := range seeds {
				name := fmt.Sprintf("%s/%dx%d/seed%d", m, sh[0], sh[1], seed)
				t.Run(name, func(t *testing.T) {
					g := newGrid(t, sh[0], sh[1])
					alg, err := generator.New(m, g)
					require.NoError(t, err)
					require.NoError(t, generator.Generate(context.Background(), alg, generator.NewSource(seed)))

					assert.True(t, alg.IsComplete())
					assert.Equal(t, m, alg.Method())
					assert.Same(t, g, alg.Grid())
					assertPerfect(t, g)
				})
			}
		}
	}
}

func TestUpdate_BeforeInitialize(t *testing.T) {
	for _, m := range generator.Methods() {
		t.Run(string(m), func(t *testing.T) {
			alg, err := generator.New(m, newGrid(t, 4, 4))
			require.NoError(t, err)
			assert.Nil(t, alg.Progress())
			assert.False(t, alg.IsComplete())
			assert.ErrorIs(t, alg.Update(generator.NewSource(1)), generator.ErrNotInitialized)
		})
	}
}

func TestInitialize_MissingEndpoints(t *testing.T) {
	for _, m := range generator.Methods() {
		t.Run(string(m), func(t *testing.T) {
			g, err := grid.New(3, 3)
			require.NoError(t, err)
			alg, err := generator.New(m, g)
			require.NoError(t, err)

			assert.ErrorIs(t, alg.Initialize(), grid.ErrStartUnset)
			g.SetStart(0, 0)
			assert.ErrorIs(t, alg.Initialize(), grid.ErrFinishUnset)
			g.SetFinish(3, 3)
			assert.ErrorIs(t, alg.Initialize(), grid.ErrOutOfBounds)
			g.SetFinish(2, 2)
			assert.NoError(t, alg.Initialize())
		})
	}
}

func TestUpdate_NilSource(t *testing.T) {
	for _, m := range generator.Methods() {
		t.Run(string(m), func(t *testing.T) {
			alg, err := generator.New(m, newGrid(t, 3, 3))
			require.NoError(t, err)
			require.NoError(t, alg.Initialize())
			assert.ErrorIs(t, alg.Update(nil), generator.ErrNilSource)
		})
	}
}

// TestUpdate_NoOpAfterCompletion verifies extra Updates change nothing.
func TestUpdate_NoOpAfterCompletion(t *testing.T) {
	for _, m := range generator.Methods() {
		t.Run(string(m), func(t *testing.T) {
			g := newGrid(t, 6, 5)
			alg, err := generator.New(m, g)
			require.NoError(t, err)
			rng := generator.NewSource(3)
			require.NoError(t, generator.Generate(context.Background(), alg, rng))

			before := g.Render(nil)
			count := alg.Progress().Count()
			goal := alg.Progress().Goal()
			for i := 0; i < 5; i++ {
				require.NoError(t, alg.Update(rng))
			}
			assert.Equal(t, before, g.Render(nil))
			assert.Equal(t, count, alg.Progress().Count())
			assert.Equal(t, goal, alg.Progress().Goal())
			assert.True(t, alg.IsComplete())
		})
	}
}

// TestGenerate_Deterministic verifies same seed ⇒ same maze.
func TestGenerate_Deterministic(t *testing.T) {
	for _, m := range generator.Methods() {
		t.Run(string(m), func(t *testing.T) {
			render := func() string {
				g := newGrid(t, 10, 8)
				alg, err := generator.New(m, g)
				require.NoError(t, err)
				require.NoError(t, generator.Generate(context.Background(), alg, generator.NewSource(99)))
				return g.Render(nil)
			}
			assert.Equal(t, render(), render())
		})
	}
}

// TestInitialize_Regenerates verifies a second Initialize starts from scratch.
func TestInitialize_Regenerates(t *testing.T) {
	g := newGrid(t, 5, 5)
	alg := generator.NewRecursiveBacktracker(g)
	require.NoError(t, generator.Generate(context.Background(), alg, generator.NewSource(5)))
	first := g.Render(nil)

	require.NoError(t, alg.Initialize())
	assert.Equal(t, 25, g.Components(), "reset closes every wall")
	assert.Equal(t, 1, alg.Progress().Count())

	require.NoError(t, generator.Generate(context.Background(), alg, generator.NewSource(5)))
	assert.Equal(t, first, g.Render(nil))
}

func TestGenerate_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	alg := generator.NewPrim(newGrid(t, 8, 8))
	err := generator.Generate(ctx, alg, generator.NewSource(1))
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, alg.IsComplete())
}

func TestGenerate_NilGrid(t *testing.T) {
	_, err := generator.New(generator.MethodPrim, nil)
	assert.ErrorIs(t, err, generator.ErrNilGrid)

	alg := generator.NewKruskal(nil)
	assert.ErrorIs(t, alg.Initialize(), generator.ErrNilGrid)
}

//----------------------------------------------------------------------------//
// Factory
//----------------------------------------------------------------------------//

func TestParseMethod(t *testing.T) {
	cases := []struct {
		in   string
		want generator.Method
	}{
		{"prim", generator.MethodPrim},
		{"  Kruskal ", generator.MethodKruskal},
		{"DFS", generator.MethodRecursiveBacktracker},
		{"hunt", generator.MethodHuntAndKill},
		{"growing-tree", generator.MethodGrowingTree},
	}
	for _, tc := range cases {
		got, err := generator.ParseMethod(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got)
	}
	_, err := generator.ParseMethod("bogus")
	assert.ErrorIs(t, err, generator.ErrUnknownMethod)

	_, err = generator.New(generator.Method("bogus"), newGrid(t, 2, 2))
	assert.ErrorIs(t, err, generator.ErrUnknownMethod)
}

func TestParseSelection(t *testing.T) {
	for in, want := range map[string]generator.Selection{
		"":       generator.SelectNewest,
		"newest": generator.SelectNewest,
		"Oldest": generator.SelectOldest,
		"random": generator.SelectRandom,
		"mixed":  generator.SelectMixed,
	} {
		got, err := generator.ParseSelection(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
		assert.NotEqual(t, "unknown", got.String())
	}
	_, err := generator.ParseSelection("widest")
	assert.ErrorIs(t, err, generator.ErrUnknownSelection)

	assert.Panics(t, func() { generator.WithSelection(generator.Selection(9)) })
}

func TestNewSource_ZeroSeed(t *testing.T) {
	a, b := generator.NewSource(0), generator.NewSource(1)
	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Intn(1000), b.Intn(1000))
	}
}
