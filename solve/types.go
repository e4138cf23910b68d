// Package solve defines strategies, heuristics, configuration options,
// and sentinel errors for the npuzzle search engine.
package solve

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/katalvlaran/npuzzle/board"
)

// Sentinel errors returned by Solve.
var (
	// ErrNilBoard indicates a nil root board was passed to Solve.
	ErrNilBoard = errors.New("solve: root board is nil")

	// ErrUnknownStrategy indicates a Strategy value outside the
	// declared enum.
	ErrUnknownStrategy = errors.New("solve: unknown search strategy")

	// ErrUnknownHeuristic indicates a HeuristicKind value outside the
	// declared enum.
	ErrUnknownHeuristic = errors.New("solve: unknown heuristic")

	// ErrHeuristicRequired indicates AStar was selected without a
	// heuristic.
	ErrHeuristicRequired = errors.New("solve: A* requires a heuristic")
)

// Strategy selects the search algorithm.
type Strategy int

const (
	// UniformCost expands states in order of path cost alone
	// (Dijkstra with unit edge weights).
	UniformCost Strategy = iota
	// AStar expands states in order of path cost plus heuristic.
	AStar
)

// String returns the conventional name of the strategy.
func (s Strategy) String() string {
	switch s {
	case UniformCost:
		return "uniform-cost"
	case AStar:
		return "astar"
	default:
		return fmt.Sprintf("strategy(%d)", int(s))
	}
}

// HeuristicKind selects the cost-to-go estimate used by AStar.
type HeuristicKind int

const (
	// MisplacedTile counts tiles not on their goal position.
	MisplacedTile HeuristicKind = iota
	// ManhattanDistance sums per-tile row+column distances to goal.
	ManhattanDistance
)

// String returns the conventional name of the heuristic.
func (h HeuristicKind) String() string {
	switch h {
	case MisplacedTile:
		return "misplaced"
	case ManhattanDistance:
		return "manhattan"
	default:
		return fmt.Sprintf("heuristic(%d)", int(h))
	}
}

// Options configures a single Solve invocation.
//
//	StrategyKind – which algorithm runs (default UniformCost).
//	Heuristic    – cost-to-go estimate; required for AStar, ignored for UniformCost.
//	Report       – destination for the statistics report; nil (default) disables reporting.
type Options struct {
	StrategyKind Strategy
	Heuristic    HeuristicKind
	Report       io.Writer

	// heuristicSet distinguishes "Manhattan by explicit choice" from
	// the zero value, so AStar without WithHeuristic fails eagerly.
	heuristicSet bool
}

// Option is a functional option for configuring Solve.
type Option func(*Options)

// WithStrategy selects the search algorithm. Validity is checked when
// Solve runs.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		o.StrategyKind = s
	}
}

// WithHeuristic selects the heuristic for AStar. UniformCost orders
// the frontier by path cost alone and ignores this option.
func WithHeuristic(h HeuristicKind) Option {
	return func(o *Options) {
		o.Heuristic = h
		o.heuristicSet = true
	}
}

// WithReport writes the statistics report to w when the search
// finishes. A nil w keeps reporting disabled.
func WithReport(w io.Writer) Option {
	return func(o *Options) {
		o.Report = w
	}
}

// DefaultOptions returns the Options Solve starts from:
// UniformCost strategy, no heuristic selected, reporting disabled.
func DefaultOptions() Options {
	return Options{
		StrategyKind: UniformCost,
		Heuristic:    MisplacedTile,
		Report:       nil,
		heuristicSet: false,
	}
}

// Stats carries the search statistics of one Solve run.
//
// SolutionDepth – moves from root to goal (0 when the root is the
// goal, or when no solution exists).
// NodesExpanded – states popped and expanded; the goal pop itself is
// never counted, because the loop returns before expanding it.
// MaxQueueSize  – peak frontier size observed after any expansion.
// Elapsed       – wall-clock duration of the search loop.
type Stats struct {
	SolutionDepth int
	NodesExpanded int
	MaxQueueSize  int
	Elapsed       time.Duration
}

// Result is the outcome of one Solve run. Goal is nil when the
// frontier emptied without reaching the goal; that is a normal
// terminal outcome, not an error.
type Result struct {
	Goal  *board.Board
	Stats Stats
}

// Solved reports whether the search reached the goal.
func (r *Result) Solved() bool { return r.Goal != nil }
