// Package config loads solver scenarios from YAML files for the
// npuzzle command.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/npuzzle/solve"
)

// Sentinel errors for scenario validation.
var (
	// ErrNoStart indicates neither a board nor a shuffle count was given.
	ErrNoStart = errors.New("config: provide a board or a positive shuffle count")
	// ErrBadStrategy indicates an unrecognized strategy name.
	ErrBadStrategy = errors.New("config: unknown strategy")
	// ErrBadHeuristic indicates an unrecognized heuristic name.
	ErrBadHeuristic = errors.New("config: unknown heuristic")
	// ErrBadShuffle indicates a negative shuffle count.
	ErrBadShuffle = errors.New("config: shuffle must be non-negative")
	// ErrBadDimension indicates a dimension below 2.
	ErrBadDimension = errors.New("config: dimension must be at least 2")
)

// Config describes one solver scenario.
//
// Board is the initial grid; when empty and Shuffle > 0, the start is
// scrambled from the goal instead. Strategy is "uniform-cost" or
// "astar"; Heuristic is "manhattan" or "misplaced" (only meaningful
// for astar).
type Config struct {
	Dimension int     `yaml:"dimension"`
	Board     [][]int `yaml:"board"`
	Strategy  string  `yaml:"strategy"`
	Heuristic string  `yaml:"heuristic"`
	Shuffle   int     `yaml:"shuffle"`
	Seed      int64   `yaml:"seed"`
}

// Default returns the scenario used when no file is supplied:
// a 3×3 puzzle scrambled 20 moves, solved by A* with Manhattan.
func Default() *Config {
	return &Config{
		Dimension: 3,
		Strategy:  "astar",
		Heuristic: "manhattan",
		Shuffle:   20,
	}
}

// Load reads a scenario from a YAML file and applies defaults for
// omitted fields.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: failed to read %s: %w", path, err)
	}

	var cfg Config
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}

	// Defaults for omitted fields.
	if cfg.Dimension == 0 {
		cfg.Dimension = 3
	}
	if cfg.Strategy == "" {
		cfg.Strategy = "astar"
	}
	if cfg.Heuristic == "" {
		cfg.Heuristic = "manhattan"
	}

	return &cfg, nil
}

// Validate checks scenario coherence. Board cell validation itself is
// the board package's job; here only the presence of a start and the
// enum names are checked.
func (c *Config) Validate() error {
	if c.Dimension < 2 {
		return ErrBadDimension
	}
	if c.Shuffle < 0 {
		return ErrBadShuffle
	}
	if len(c.Board) == 0 && c.Shuffle == 0 {
		return ErrNoStart
	}
	if _, err := c.StrategyKind(); err != nil {
		return err
	}
	if _, err := c.HeuristicKind(); err != nil {
		return err
	}

	return nil
}

// StrategyKind maps the strategy name onto the solve enum.
func (c *Config) StrategyKind() (solve.Strategy, error) {
	switch c.Strategy {
	case "uniform-cost", "ucs":
		return solve.UniformCost, nil
	case "astar", "a*":
		return solve.AStar, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrBadStrategy, c.Strategy)
	}
}

// HeuristicKind maps the heuristic name onto the solve enum.
func (c *Config) HeuristicKind() (solve.HeuristicKind, error) {
	switch c.Heuristic {
	case "manhattan":
		return solve.ManhattanDistance, nil
	case "misplaced":
		return solve.MisplacedTile, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrBadHeuristic, c.Heuristic)
	}
}
