package labyrinth

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/labyrinth/astar"
	"github.com/katalvlaran/labyrinth/generator"
	"github.com/katalvlaran/labyrinth/grid"
	"github.com/katalvlaran/labyrinth/helper"
	"github.com/katalvlaran/labyrinth/progress"
)

// ErrNotGenerated indicates Solve was called before generation completed.
var ErrNotGenerated = errors.New("labyrinth: maze is not generated")

// Default construction parameters.
const (
	DefaultMethod = generator.MethodRecursiveBacktracker
	DefaultSeed   = 1
)

// Option customizes New.
type Option func(*options)

type options struct {
	method    generator.Method
	selection generator.Selection
	source    generator.Source
	seed      int64
	start     *grid.Point
	finish    *grid.Point
	diagonal  bool
}

func defaultOptions() options {
	return options{
		method:    DefaultMethod,
		selection: generator.SelectNewest,
		seed:      DefaultSeed,
	}
}

// WithMethod selects the generation algorithm. Aliases accepted by
// generator.ParseMethod work too. Panics on an unknown method.
func WithMethod(m generator.Method) Option {
	canonical, err := generator.ParseMethod(string(m))
	if err != nil {
		panic(fmt.Sprintf("labyrinth: WithMethod(%q)", string(m)))
	}
	return func(o *options) {
		o.method = canonical
	}
}

// WithSelection sets the growing-tree policy; other methods ignore it.
func WithSelection(s generator.Selection) Option {
	// Validates and panics like generator.WithSelection.
	generator.WithSelection(s)
	return func(o *options) {
		o.selection = s
	}
}

// WithSeed seeds the random source. Seed 0 is treated as 1.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.seed = seed
		o.source = nil
	}
}

// WithSource injects a caller-owned source. Panics on nil.
func WithSource(src generator.Source) Option {
	if src == nil {
		panic("labyrinth: WithSource(nil)")
	}
	return func(o *options) {
		o.source = src
	}
}

// WithStart sets the start room. Default (0,0).
func WithStart(column, row int) Option {
	return func(o *options) {
		o.start = &grid.Point{Column: column, Row: row}
	}
}

// WithFinish pins the finish room. Without it the finish is placed on the
// room farthest from the start once generation completes.
func WithFinish(column, row int) Option {
	return func(o *options) {
		o.finish = &grid.Point{Column: column, Row: row}
	}
}

// WithDiagonal lets Solve take diagonal steps.
func WithDiagonal(on bool) Option {
	return func(o *options) {
		o.diagonal = on
	}
}

// Labyrinth owns one grid, its generator and the last solved path.
type Labyrinth struct {
	grid       *grid.Grid
	alg        generator.Algorithm
	rng        generator.Source
	diagonal   bool
	fixed      bool
	path       []grid.Point
	pathfinder *astar.Pathfinder
}

// New builds a columns×rows labyrinth and initializes its generator.
//
// Returns grid.ErrEmptyGrid for non-positive sizes, grid.ErrOutOfBounds for
// endpoints outside the grid.
func New(columns, rows int, opts ...Option) (*Labyrinth, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	start := grid.Point{}
	if o.start != nil {
		start = *o.start
	}
	finish := grid.Point{Column: columns - 1, Row: rows - 1}
	if o.finish != nil {
		finish = *o.finish
	}

	g, err := grid.New(columns, rows,
		grid.WithStart(start.Column, start.Row),
		grid.WithFinish(finish.Column, finish.Row))
	if err != nil {
		return nil, err
	}
	alg, err := generator.New(o.method, g, generator.WithSelection(o.selection))
	if err != nil {
		return nil, err
	}
	if err = alg.Initialize(); err != nil {
		return nil, err
	}

	rng := o.source
	if rng == nil {
		rng = generator.NewSource(o.seed)
	}
	l := &Labyrinth{
		grid:     g,
		alg:      alg,
		rng:      rng,
		diagonal: o.diagonal,
		fixed:    o.finish != nil,
	}
	if alg.IsComplete() {
		// Cell-counting methods finish a 1×1 grid during Initialize.
		if err = l.settle(); err != nil {
			return nil, err
		}
	}
	return l, nil
}

// Update advances generation by one unit of work. It is a no-op once the maze
// is generated.
func (l *Labyrinth) Update() error {
	if l.alg.IsComplete() {
		return nil
	}
	if err := l.alg.Update(l.rng); err != nil {
		return err
	}
	if l.alg.IsComplete() {
		return l.settle()
	}
	return nil
}

// Generate calls Update until the maze is complete, checking ctx between
// steps.
func (l *Labyrinth) Generate(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	for !l.alg.IsComplete() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if err := l.Update(); err != nil {
			return err
		}
	}
	return nil
}

// Regenerate resets the grid and starts a fresh generation with the same
// method and source. The last path is dropped.
func (l *Labyrinth) Regenerate() error {
	l.path = nil
	l.pathfinder = nil
	if err := l.alg.Initialize(); err != nil {
		return err
	}
	if l.alg.IsComplete() {
		return l.settle()
	}
	return nil
}

// settle annotates hop costs and, unless pinned, moves the finish.
func (l *Labyrinth) settle() error {
	if l.fixed {
		return helper.CalculateCost(l.grid)
	}
	_, err := helper.LocateFinish(l.grid)
	return err
}

// IsGenerated reports whether the generator has completed.
func (l *Labyrinth) IsGenerated() bool { return l.alg.IsComplete() }

// Solve runs A* from start to finish and remembers the path.
// The path is goal-first, start-last.
//
// Returns ErrNotGenerated before completion and astar.ErrNoPath if the finish
// cannot be reached.
func (l *Labyrinth) Solve() ([]grid.Point, error) {
	if !l.IsGenerated() {
		return nil, ErrNotGenerated
	}
	start, finish := l.Start(), l.Finish()
	if l.pathfinder == nil {
		l.pathfinder = astar.New(start, finish, l.grid, astar.WithDiagonal(l.diagonal))
	} else {
		l.pathfinder.SetStartColumn(start.Column)
		l.pathfinder.SetStartRow(start.Row)
		l.pathfinder.SetGoalColumn(finish.Column)
		l.pathfinder.SetGoalRow(finish.Row)
		l.pathfinder.SetDiagonal(l.diagonal)
	}
	if err := l.pathfinder.Generate(); err != nil {
		return nil, fmt.Errorf("labyrinth: solve %v→%v: %w", start, finish, err)
	}
	l.path = l.pathfinder.ShortestPath()
	return l.ShortestPath(), nil
}

// ShortestPath returns a copy of the last solved path, or nil.
func (l *Labyrinth) ShortestPath() []grid.Point {
	if l.path == nil {
		return nil
	}
	out := make([]grid.Point, len(l.path))
	copy(out, l.path)
	return out
}

// SetDiagonal toggles diagonal moves for the next Solve.
func (l *Labyrinth) SetDiagonal(on bool) { l.diagonal = on }

// Start returns the start room coordinate.
func (l *Labyrinth) Start() grid.Point {
	p, _ := l.grid.Start()
	return p
}

// Finish returns the finish room coordinate.
func (l *Labyrinth) Finish() grid.Point {
	p, _ := l.grid.Finish()
	return p
}

// Grid exposes the underlying grid.
func (l *Labyrinth) Grid() *grid.Grid { return l.grid }

// Progress exposes the generator's tracker.
func (l *Labyrinth) Progress() *progress.Tracker { return l.alg.Progress() }

// Method reports the generation algorithm in use.
func (l *Labyrinth) Method() generator.Method { return l.alg.Method() }

// Render draws the maze with the last solved path.
func (l *Labyrinth) Render() string { return l.grid.Render(l.path) }
