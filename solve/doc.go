// Package solve implements Uniform Cost Search and A* over the sliding
// puzzle state space defined by package board.
//
// Overview:
//
//   - Both strategies drive a min-heap frontier of (cost, board)
//     entries: pop the cheapest entry, test for goal, otherwise expand
//     its successors and push them with updated costs, until the goal
//     is popped or the frontier empties.
//   - Uniform Cost Search is the Dijkstra specialization for unit edge
//     weights. The popped board joins a visited set, and successor
//     generation filters against that set.
//   - A* orders the frontier by f = g + h. Successors are generated
//     without a visited filter; redundant work is bounded by g-value
//     relaxation (push only strictly improving paths) plus a secondary
//     set of already-pushed (f, board) pairs. Several differently
//     costed entries for one board may coexist in the frontier; the
//     search returns on the first goal pop, so stale entries are never
//     expanded. The asymmetry with Uniform Cost is deliberate and kept
//     because it determines the reported statistics.
//
// Statistics:
//
//   - NodesExpanded counts pops that went on to expand. A pop that
//     satisfies the goal test returns before the counter moves, so a
//     root that is already the goal reports 0 expansions.
//   - MaxQueueSize is the peak frontier length observed after the
//     pushes of any single expansion.
//   - Elapsed wraps the strategy loop only, not option parsing.
//
// Termination:
//
//   - The reachable sliding-tile state space is finite (181 440 boards
//     for the 3×3 puzzle), so an unsolvable start exhausts the
//     frontier and yields a Result with a nil Goal. That outcome is
//     data, not an error.
//
// Errors (sentinel, detected eagerly before any search work):
//
//   - ErrNilBoard          if the root board is nil.
//   - ErrUnknownStrategy   if the Strategy value is out of range.
//   - ErrHeuristicRequired if AStar runs without WithHeuristic.
//   - ErrUnknownHeuristic  if the HeuristicKind value is out of range.
//
// Example usage:
//
//	b, _ := board.New([][]int{{1, 2, 3}, {4, 5, 0}, {7, 8, 6}})
//	res, err := solve.Solve(b,
//	    solve.WithStrategy(solve.AStar),
//	    solve.WithHeuristic(solve.ManhattanDistance),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Stats.SolutionDepth) // 1
//
// Concurrency: a Solve invocation owns all of its mutable state; run
// concurrent searches only on distinct root boards and a fixed goal
// dimension.
package solve
