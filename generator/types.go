package generator

import (
	"errors"

	"github.com/katalvlaran/labyrinth/grid"
	"github.com/katalvlaran/labyrinth/progress"
)

// Sentinel errors for generation.
var (
	// ErrNotInitialized indicates Update was called before Initialize.
	ErrNotInitialized = errors.New("generator: update called before initialize")
	// ErrNilSource indicates a nil random source.
	ErrNilSource = errors.New("generator: random source is nil")
	// ErrNilGrid indicates an algorithm constructed without a grid.
	ErrNilGrid = errors.New("generator: grid is nil")
	// ErrUnknownMethod indicates a Method with no registered algorithm.
	ErrUnknownMethod = errors.New("generator: unknown method")
	// ErrUnknownSelection indicates an unrecognised growing-tree selection name.
	ErrUnknownSelection = errors.New("generator: unknown selection")
)

// Source yields unbiased integers in [0,n). It panics for n ≤ 0, like
// (*math/rand.Rand).Intn.
type Source interface {
	Intn(n int) int
}

// Algorithm is the cooperative stepping contract shared by every generator.
// Hosts call Initialize once, then Update once per tick until IsComplete.
type Algorithm interface {
	// Initialize validates start/finish, resets the grid and sets the goal.
	Initialize() error
	// Update performs one unit of work. No-op once complete.
	Update(rng Source) error
	// IsComplete reports whether the progress goal is reached.
	IsComplete() bool
	// Progress returns the tracker, or nil before Initialize.
	Progress() *progress.Tracker
	// Grid returns the grid being carved.
	Grid() *grid.Grid
	// Method names the variant.
	Method() Method
}

// Method names a generation algorithm.
type Method string

// Registered methods.
const (
	MethodRecursiveBacktracker Method = "recursive-backtracker"
	MethodHuntAndKill          Method = "hunt-and-kill"
	MethodPrim                 Method = "prim"
	MethodKruskal              Method = "kruskal"
	MethodEller                Method = "eller"
	MethodSidewinder           Method = "sidewinder"
	MethodBinaryTree           Method = "binary-tree"
	MethodAldousBroder         Method = "aldous-broder"
	MethodWilson               Method = "wilson"
	MethodGrowingTree          Method = "growing-tree"
)

// Selection chooses which active cell the growing-tree algorithm extends.
type Selection int

const (
	// SelectNewest always extends the most recently added cell (behaves like
	// the recursive backtracker).
	SelectNewest Selection = iota
	// SelectOldest always extends the earliest added cell.
	SelectOldest
	// SelectRandom extends a uniformly random active cell (Prim-like).
	SelectRandom
	// SelectMixed flips a coin between newest and random.
	SelectMixed
)

func (s Selection) String() string {
	switch s {
	case SelectNewest:
		return "newest"
	case SelectOldest:
		return "oldest"
	case SelectRandom:
		return "random"
	case SelectMixed:
		return "mixed"
	}
	return "unknown"
}

// Option configures algorithm construction in New.
type Option func(*options)

type options struct {
	selection Selection
}

func defaultOptions() options {
	return options{selection: SelectNewest}
}

// WithSelection sets the growing-tree selection policy; other methods ignore
// it. Panics on an undefined Selection value.
func WithSelection(s Selection) Option {
	if s < SelectNewest || s > SelectMixed {
		panic("generator: WithSelection(undefined)")
	}
	return func(o *options) {
		o.selection = s
	}
}
