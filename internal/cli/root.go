// Package cli wires the labyrinth command tree: generate, solve and methods.
package cli

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/labyrinth/config"
	"github.com/katalvlaran/labyrinth/grid"
)

// settings collects the persistent flags shared by every command.
type settings struct {
	configPath string
	envFiles   []string
	columns    int
	rows       int
	method     string
	selection  string
	seed       int64
	start      string
	diagonal   bool
	verify     bool
}

// NewRootCommand returns the labyrinth command with all subcommands attached.
func NewRootCommand() *cobra.Command {
	s := &settings{}
	def := config.Default()

	root := &cobra.Command{
		Use:   "labyrinth",
		Short: "Generate and solve perfect mazes",
		Long: `Generate perfect mazes with one of several carving algorithms and
solve them with A*.

Settings are read from defaults, an optional YAML file (--config), a .env
file, LABYRINTH_* environment variables and finally the flags below.`,
		SilenceUsage: true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&s.configPath, "config", "", "YAML settings file")
	pf.StringSliceVar(&s.envFiles, "env-file", nil, "dotenv files to load (default .env)")
	pf.IntVarP(&s.columns, "columns", "c", def.Columns, "Grid width in rooms")
	pf.IntVarP(&s.rows, "rows", "r", def.Rows, "Grid height in rooms")
	pf.StringVarP(&s.method, "method", "m", def.Method, "Generation method (see 'labyrinth methods')")
	pf.StringVar(&s.selection, "selection", def.Selection, "Growing-tree selection: newest, oldest, random, mixed")
	pf.Int64VarP(&s.seed, "seed", "s", def.Seed, "Random seed")
	pf.StringVar(&s.start, "start", "0,0", "Start room as column,row")
	pf.BoolVar(&s.diagonal, "diagonal", def.Diagonal, "Allow diagonal steps when solving")
	pf.BoolVar(&s.verify, "verify", def.Verify, "Fail unless the maze is one connected spanning tree")

	root.AddCommand(
		newGenerateCommand(s),
		newSolveCommand(s),
		newMethodsCommand(),
	)
	return root
}

// resolve layers changed flags over the loaded configuration and validates it.
func (s *settings) resolve(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(s.configPath, s.envFiles...)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("columns") {
		cfg.Columns = s.columns
	}
	if flags.Changed("rows") {
		cfg.Rows = s.rows
	}
	if flags.Changed("method") {
		cfg.Method = s.method
	}
	if flags.Changed("selection") {
		cfg.Selection = s.selection
	}
	if flags.Changed("seed") {
		cfg.Seed = s.seed
	}
	if flags.Changed("start") {
		if cfg.Start, err = parsePoint(s.start); err != nil {
			return cfg, err
		}
	}
	if flags.Changed("diagonal") {
		cfg.Diagonal = s.diagonal
	}
	if flags.Changed("verify") {
		cfg.Verify = s.verify
	}

	if err = cfg.Validate(); err != nil {
		return cfg, err
	}
	log.Printf("[APP] [INFO] %dx%d maze, method=%s seed=%d start=%v", cfg.Columns, cfg.Rows, cfg.Method, cfg.Seed, cfg.Start)
	return cfg, nil
}

// parsePoint reads "column,row".
func parsePoint(s string) (grid.Point, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return grid.Point{}, fmt.Errorf("invalid point %q (use format like '3,4')", s)
	}
	c, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return grid.Point{}, fmt.Errorf("invalid point column: %w", err)
	}
	r, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return grid.Point{}, fmt.Errorf("invalid point row: %w", err)
	}
	return grid.Point{Column: c, Row: r}, nil
}
