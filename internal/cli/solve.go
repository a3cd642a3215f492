package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSolveCommand(s *settings) *cobra.Command {
	return &cobra.Command{
		Use:   "solve",
		Short: "Generate a maze and draw its shortest path",
		Long: `Generate one maze, solve it with A* from the start to the farthest
room and print it with the path marked '*'.

Examples:
  labyrinth solve --start 5,5
  labyrinth solve -m wilson --diagonal`,
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
			path, err := lab.Solve()
			if err != nil {
				return err
			}
			if err = report(cmd.OutOrStdout(), cfg, lab); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "path: %d rooms\n", len(path))
			return err
		},
	}
}
