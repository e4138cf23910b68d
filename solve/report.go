package solve

import (
	"fmt"
	"io"
)

// Report writes the statistics of the run to w:
// the solution depth (or the unsolvable notice), the number of nodes
// expanded, the peak frontier size, and the elapsed wall-clock time
// with two-decimal precision.
func (r *Result) Report(w io.Writer) {
	if r.Goal == nil {
		fmt.Fprintln(w, "Puzzle provided is not solvable.")
	} else {
		fmt.Fprintf(w, "Solution depth was: %d\n", r.Stats.SolutionDepth)
	}
	fmt.Fprintf(w, "Number of nodes expanded: %d\n", r.Stats.NodesExpanded)
	fmt.Fprintf(w, "Max queue size: %d\n", r.Stats.MaxQueueSize)
	fmt.Fprintf(w, "Time taken: %.2f seconds\n", r.Stats.Elapsed.Seconds())
}
