// Command npuzzle solves a sliding-puzzle scenario and prints the
// search statistics, optionally followed by the full solution path.
//
// Usage:
//
//	npuzzle [-config scenario.yaml] [-strategy astar|uniform-cost]
//	        [-heuristic manhattan|misplaced] [-shuffle n] [-seed n]
//	        [-path]
//
// Flags override the corresponding scenario fields. Without a config
// file the default scenario runs: a 3×3 board scrambled 20 moves,
// solved by A* with the Manhattan heuristic.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"

	"github.com/katalvlaran/npuzzle/board"
	"github.com/katalvlaran/npuzzle/internal/config"
	"github.com/katalvlaran/npuzzle/solve"
)

func main() {
	var (
		configPath = flag.String("config", "", "path to a YAML scenario file")
		strategy   = flag.String("strategy", "", "override strategy: uniform-cost or astar")
		heuristic  = flag.String("heuristic", "", "override heuristic: manhattan or misplaced")
		shuffle    = flag.Int("shuffle", -1, "override scramble length (ignores the scenario board)")
		seed       = flag.Int64("seed", 0, "override scramble seed (0 = wall clock)")
		printPath  = flag.Bool("path", false, "print the solution path root to goal")
	)
	flag.Parse()

	if err := run(*configPath, *strategy, *heuristic, *shuffle, *seed, *printPath); err != nil {
		fmt.Fprintln(os.Stderr, "npuzzle:", err)
		os.Exit(1)
	}
}

func run(configPath, strategy, heuristic string, shuffle int, seed int64, printPath bool) error {
	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	// Flag overrides beat scenario fields.
	if strategy != "" {
		cfg.Strategy = strategy
	}
	if heuristic != "" {
		cfg.Heuristic = heuristic
	}
	if shuffle >= 0 {
		cfg.Shuffle = shuffle
		cfg.Board = nil
	}
	if seed != 0 {
		cfg.Seed = seed
	}

	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := board.SetDimension(cfg.Dimension); err != nil {
		return err
	}

	start, err := startBoard(cfg)
	if err != nil {
		return err
	}

	if !start.Solvable() {
		fmt.Println("Warning: start position has odd parity; the search will exhaust the state space.")
	}

	strat, err := cfg.StrategyKind()
	if err != nil {
		return err
	}
	heur, err := cfg.HeuristicKind()
	if err != nil {
		return err
	}

	fmt.Printf("Solving %dx%d puzzle with %s", cfg.Dimension, cfg.Dimension, strat)
	if strat == solve.AStar {
		fmt.Printf(" (%s)", heur)
	}
	fmt.Println(":")
	fmt.Println(start.String())
	fmt.Println()

	res, err := solve.Solve(start,
		solve.WithStrategy(strat),
		solve.WithHeuristic(heur),
		solve.WithReport(os.Stdout),
	)
	if err != nil {
		return err
	}

	if printPath && res.Solved() {
		fmt.Println()
		res.Goal.WritePath(os.Stdout)
	}

	return nil
}

// startBoard builds the initial position: the scenario board when one
// is given, otherwise a scramble of the goal.
func startBoard(cfg *config.Config) (*board.Board, error) {
	if len(cfg.Board) > 0 {
		return board.New(cfg.Board)
	}

	var rng *rand.Rand
	if cfg.Seed != 0 {
		rng = rand.New(rand.NewSource(cfg.Seed))
	}

	return board.Goal().Shuffle(cfg.Shuffle, rng), nil
}
