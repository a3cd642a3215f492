package generator

import (
	"context"
	"fmt"
	"strings"

	"github.com/katalvlaran/labyrinth/grid"
)

// Methods lists every registered method in a stable order.
func Methods() []Method {
	return []Method{
		MethodRecursiveBacktracker,
		MethodHuntAndKill,
		MethodPrim,
		MethodKruskal,
		MethodEller,
		MethodSidewinder,
		MethodBinaryTree,
		MethodAldousBroder,
		MethodWilson,
		MethodGrowingTree,
	}
}

// aliases maps accepted spellings to canonical methods.
var aliases = map[string]Method{
	"dfs":          MethodRecursiveBacktracker,
	"backtracking": MethodRecursiveBacktracker,
	"hunt":         MethodHuntAndKill,
	"ab":           MethodAldousBroder,
}

// ParseMethod resolves a case-insensitive method name or alias.
func ParseMethod(s string) (Method, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for _, m := range Methods() {
		if string(m) == key {
			return m, nil
		}
	}
	if m, ok := aliases[key]; ok {
		return m, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMethod, s)
}

// ParseSelection resolves a growing-tree selection name.
func ParseSelection(s string) (Selection, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "newest":
		return SelectNewest, nil
	case "oldest":
		return SelectOldest, nil
	case "random":
		return SelectRandom, nil
	case "mixed":
		return SelectMixed, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownSelection, s)
}

// New returns the Algorithm registered for m, bound to g. The algorithm is
// not initialized.
func New(m Method, g *grid.Grid, opts ...Option) (Algorithm, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	switch m {
	case MethodRecursiveBacktracker:
		return NewRecursiveBacktracker(g), nil
	case MethodHuntAndKill:
		return NewHuntAndKill(g), nil
	case MethodPrim:
		return NewPrim(g), nil
	case MethodKruskal:
		return NewKruskal(g), nil
	case MethodEller:
		return NewEller(g), nil
	case MethodSidewinder:
		return NewSidewinder(g), nil
	case MethodBinaryTree:
		return NewBinaryTree(g), nil
	case MethodAldousBroder:
		return NewAldousBroder(g), nil
	case MethodWilson:
		return NewWilson(g), nil
	case MethodGrowingTree:
		return NewGrowingTree(g, o.selection), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, string(m))
}

// Generate initializes alg if needed and calls Update until it completes.
// ctx is checked once per step; cancellation returns ctx.Err() and leaves the
// grid partially carved.
func Generate(ctx context.Context, alg Algorithm, rng Source) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if alg.Progress() == nil {
		if err := alg.Initialize(); err != nil {
			return err
		}
	}
	for !alg.IsComplete() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if err := alg.Update(rng); err != nil {
			return err
		}
	}
	return nil
}
