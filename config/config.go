// Package config loads the command-line settings for a labyrinth run.
//
// Sources, later ones win:
//
//  1. Default()
//  2. an optional YAML file
//  3. a .env file (missing is fine) feeding the process environment
//  4. LABYRINTH_* environment variables
//
// Command-line flags are applied on top by the caller, then Validate runs.
package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/labyrinth"
	"github.com/katalvlaran/labyrinth/generator"
	"github.com/katalvlaran/labyrinth/grid"
)

// ErrInvalidConfig wraps every validation and parse failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Environment variable names.
const (
	EnvColumns     = "LABYRINTH_COLUMNS"
	EnvRows        = "LABYRINTH_ROWS"
	EnvMethod      = "LABYRINTH_METHOD"
	EnvSelection   = "LABYRINTH_SELECTION"
	EnvSeed        = "LABYRINTH_SEED"
	EnvDiagonal    = "LABYRINTH_DIAGONAL"
	EnvStartColumn = "LABYRINTH_START_COLUMN"
	EnvStartRow    = "LABYRINTH_START_ROW"
	EnvVerify      = "LABYRINTH_VERIFY"
)

// Config holds one run's settings.
type Config struct {
	Columns   int        `yaml:"columns"`   // Grid width in rooms
	Rows      int        `yaml:"rows"`      // Grid height in rooms
	Method    string     `yaml:"method"`    // Generation method or alias
	Selection string     `yaml:"selection"` // Growing-tree policy
	Seed      int64      `yaml:"seed"`      // Random seed, 0 means 1
	Diagonal  bool       `yaml:"diagonal"`  // Allow diagonal steps when solving
	Start     grid.Point `yaml:"start"`     // Start room
	Verify    bool       `yaml:"verify"`    // Audit connectivity after generation
}

// Default returns the built-in settings: a 21×21 recursive-backtracker maze
// started from the top-left corner.
func Default() Config {
	return Config{
		Columns:   21,
		Rows:      21,
		Method:    string(labyrinth.DefaultMethod),
		Selection: generator.SelectNewest.String(),
		Seed:      labyrinth.DefaultSeed,
	}
}

// Load builds a Config from defaults, the YAML file at path (skipped when
// path is empty), the given .env files (".env" when none) and LABYRINTH_*
// variables. The result is not validated.
func Load(path string, envFiles ...string) (Config, error) {
	cfg := Default()

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err = yaml.Unmarshal(raw, &cfg); err != nil {
			return cfg, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, path, err)
		}
	}

	if err := godotenv.Load(envFiles...); err != nil {
		log.Printf("[APP] [INFO] .env file not found or could not be loaded: %v", err)
	}

	if err := cfg.applyEnv(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// applyEnv overrides fields from set, non-empty LABYRINTH_* variables.
func (c *Config) applyEnv() error {
	var err error
	if v, ok := lookupEnv(EnvColumns); ok {
		if c.Columns, err = parseInt(EnvColumns, v); err != nil {
			return err
		}
	}
	if v, ok := lookupEnv(EnvRows); ok {
		if c.Rows, err = parseInt(EnvRows, v); err != nil {
			return err
		}
	}
	if v, ok := lookupEnv(EnvMethod); ok {
		c.Method = v
	}
	if v, ok := lookupEnv(EnvSelection); ok {
		c.Selection = v
	}
	if v, ok := lookupEnv(EnvSeed); ok {
		if c.Seed, err = strconv.ParseInt(v, 10, 64); err != nil {
			return fmt.Errorf("%w: %s must be an integer: %v", ErrInvalidConfig, EnvSeed, err)
		}
	}
	if v, ok := lookupEnv(EnvDiagonal); ok {
		if c.Diagonal, err = parseBool(EnvDiagonal, v); err != nil {
			return err
		}
	}
	if v, ok := lookupEnv(EnvStartColumn); ok {
		if c.Start.Column, err = parseInt(EnvStartColumn, v); err != nil {
			return err
		}
	}
	if v, ok := lookupEnv(EnvStartRow); ok {
		if c.Start.Row, err = parseInt(EnvStartRow, v); err != nil {
			return err
		}
	}
	if v, ok := lookupEnv(EnvVerify); ok {
		if c.Verify, err = parseBool(EnvVerify, v); err != nil {
			return err
		}
	}
	return nil
}

// Validate checks sizes, names and the start coordinate.
func (c Config) Validate() error {
	if c.Columns <= 0 || c.Rows <= 0 {
		return fmt.Errorf("%w: size %dx%d must be positive", ErrInvalidConfig, c.Columns, c.Rows)
	}
	if _, err := generator.ParseMethod(c.Method); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if _, err := generator.ParseSelection(c.Selection); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if c.Start.Column < 0 || c.Start.Column >= c.Columns || c.Start.Row < 0 || c.Start.Row >= c.Rows {
		return fmt.Errorf("%w: start %v outside %dx%d", ErrInvalidConfig, c.Start, c.Columns, c.Rows)
	}
	return nil
}

// Options validates c and translates it into labyrinth options.
func (c Config) Options() ([]labyrinth.Option, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	m, _ := generator.ParseMethod(c.Method)
	s, _ := generator.ParseSelection(c.Selection)
	return []labyrinth.Option{
		labyrinth.WithMethod(m),
		labyrinth.WithSelection(s),
		labyrinth.WithSeed(c.Seed),
		labyrinth.WithStart(c.Start.Column, c.Start.Row),
		labyrinth.WithDiagonal(c.Diagonal),
	}, nil
}

// lookupEnv returns a trimmed variable that is set and non-empty.
func lookupEnv(key string) (string, bool) {
	v, ok := os.LookupEnv(key)
	v = strings.TrimSpace(v)
	return v, ok && v != ""
}

func parseInt(key, v string) (int, error) {
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer: %v", ErrInvalidConfig, key, err)
	}
	return n, nil
}

func parseBool(key, v string) (bool, error) {
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%w: %s must be a boolean: %v", ErrInvalidConfig, key, err)
	}
	return b, nil
}
