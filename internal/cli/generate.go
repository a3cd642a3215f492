package cli

import (
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/labyrinth"
	"github.com/katalvlaran/labyrinth/config"
)

// errNotPerfect reports a failed --verify audit.
var errNotPerfect = errors.New("cli: maze is not a perfect spanning tree")

func newGenerateCommand(s *settings) *cobra.Command {
	return &cobra.Command{
		Use:   "generate",
		Short: "Generate a maze and print it",
		Long: `Generate one maze and print it as ASCII art. The finish is placed on
the room farthest from the start.

Examples:
  labyrinth generate
  labyrinth generate -c 30 -r 15 -m kruskal --seed 7
  labyrinth generate -m growing-tree --selection mixed --verify`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := s.resolve(cmd)
			if err != nil {
				return err
			}
			lab, err := build(cmd, cfg)
			if err != nil {
				return err
			}
			return report(cmd.OutOrStdout(), cfg, lab)
		},
	}
}

// build creates and fully generates a labyrinth from cfg.
func build(cmd *cobra.Command, cfg config.Config) (*labyrinth.Labyrinth, error) {
	opts, err := cfg.Options()
	if err != nil {
		return nil, err
	}
	lab, err := labyrinth.New(cfg.Columns, cfg.Rows, opts...)
	if err != nil {
		return nil, err
	}
	if err = lab.Generate(cmd.Context()); err != nil {
		return nil, fmt.Errorf("generate: %w", err)
	}
	log.Printf("[APP] [INFO] generated with %s, progress %v", lab.Method(), lab.Progress())

	if cfg.Verify {
		g := lab.Grid()
		if g.Components() != 1 || g.Passages() != g.Size()-1 || !g.Symmetric() {
			return nil, errNotPerfect
		}
	}
	return lab, nil
}

// report prints the maze followed by a one-line summary.
func report(w io.Writer, cfg config.Config, lab *labyrinth.Labyrinth) error {
	if _, err := fmt.Fprint(w, lab.Render()); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "method=%s size=%dx%d seed=%d start=%v finish=%v\n",
		lab.Method(), cfg.Columns, cfg.Rows, cfg.Seed, lab.Start(), lab.Finish())
	return err
}
