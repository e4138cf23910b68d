package solve

import (
	"container/heap"
	"math"
	"strconv"
	"time"

	"github.com/katalvlaran/npuzzle/board"
)

// Solve runs the configured search strategy from root and returns the
// Result: the goal board (nil when the frontier emptied first) plus
// search statistics. Configuration is validated eagerly; no search
// work starts on an invalid strategy/heuristic combination.
//
// Validation (in order):
//  1. root must be non-nil (ErrNilBoard).
//  2. StrategyKind must be UniformCost or AStar (ErrUnknownStrategy).
//  3. For AStar, a heuristic must have been chosen explicitly
//     (ErrHeuristicRequired) and be in range (ErrUnknownHeuristic).
//
// When Options.Report is non-nil, the statistics report is written
// there after the run, for both the solved and unsolvable outcomes.
func Solve(root *board.Board, opts ...Option) (*Result, error) {
	// 1) Build Options from defaults plus functional overrides.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate the root.
	if root == nil {
		return nil, ErrNilBoard
	}

	// 3) Validate the strategy/heuristic combination.
	switch cfg.StrategyKind {
	case UniformCost:
		// Heuristic, if any, is ignored.
	case AStar:
		if !cfg.heuristicSet {
			return nil, ErrHeuristicRequired
		}
		if cfg.Heuristic != MisplacedTile && cfg.Heuristic != ManhattanDistance {
			return nil, ErrUnknownHeuristic
		}
	default:
		return nil, ErrUnknownStrategy
	}

	// 4) Run the chosen strategy with fresh counters, timing the loop.
	r := &runner{root: root, opts: cfg}
	start := time.Now()

	var goal *board.Board
	if cfg.StrategyKind == UniformCost {
		goal = r.uniformCost()
	} else {
		goal = r.astar()
	}
	r.stats.Elapsed = time.Since(start)

	// 5) Solution depth is the edge count of the parent chain; the
	//    convention PathCost(goal.Parent()) yields 0 for a goal root.
	if goal != nil {
		r.stats.SolutionDepth = board.PathCost(goal.Parent())
	}

	res := &Result{Goal: goal, Stats: r.stats}
	if cfg.Report != nil {
		res.Report(cfg.Report)
	}

	return res, nil
}

// runner holds the mutable state of a single Solve execution.
type runner struct {
	root  *board.Board
	opts  Options
	stats Stats
	pq    entryPQ
}

// uniformCost is Dijkstra specialized to unit edge weights: the
// frontier is keyed by path cost alone, popped boards enter a visited
// set, and successor generation filters against that set.
func (r *runner) uniformCost() *board.Board {
	visited := make(map[string]struct{})
	heap.Init(&r.pq)
	heap.Push(&r.pq, &entry{cost: 0, b: r.root})

	for r.pq.Len() > 0 {
		// Pop the cheapest frontier entry.
		e := heap.Pop(&r.pq).(*entry)

		// Goal pops return before the expansion counter moves.
		if e.b.IsGoal() {
			return e.b
		}

		// Expand: mark visited, generate filtered successors.
		visited[e.b.Key()] = struct{}{}
		children := e.b.Successors(visited)
		r.stats.NodesExpanded++

		for _, ch := range children {
			heap.Push(&r.pq, &entry{cost: e.cost + 1, b: ch})
		}
		if r.pq.Len() > r.stats.MaxQueueSize {
			r.stats.MaxQueueSize = r.pq.Len()
		}
	}

	// Frontier exhausted: no solution from this start.
	return nil
}

// astar orders the frontier by f = g + h. Successors are generated
// without a visited filter; a push happens only when the tentative g
// strictly improves on the best known g for that board, and only when
// the exact (f, board) pair has not been pushed before. Stale entries
// left in the frontier are harmless: the first goal pop ends the run.
func (r *runner) astar() *board.Board {
	// bestG maps board content to the cheapest path cost found so far.
	bestG := map[string]int{r.root.Key(): 0}
	// pushed records every (f, board) pair ever pushed, preventing
	// byte-identical frontier duplicates while still allowing multiple
	// differently-costed entries for one board.
	pushed := make(map[string]struct{})

	heap.Init(&r.pq)
	heap.Push(&r.pq, &entry{cost: 0, b: r.root})

	for r.pq.Len() > 0 {
		e := heap.Pop(&r.pq).(*entry)

		if e.b.IsGoal() {
			return e.b
		}

		// Re-expansion is bounded by relaxation below, not by a
		// visited filter at generation time.
		children := e.b.Successors(nil)
		r.stats.NodesExpanded++

		for _, ch := range children {
			key := ch.Key()
			tentative := bestG[e.b.Key()] + 1
			if _, ok := bestG[key]; !ok {
				bestG[key] = math.MaxInt
			}
			if tentative >= bestG[key] {
				continue
			}

			// Relax: record the improved g, push at f = g + h.
			bestG[key] = tentative
			f := r.heuristic(ch) + tentative

			pairKey := strconv.Itoa(f) + "#" + key
			if _, seen := pushed[pairKey]; seen {
				continue
			}
			pushed[pairKey] = struct{}{}
			heap.Push(&r.pq, &entry{cost: f, b: ch})
		}
		if r.pq.Len() > r.stats.MaxQueueSize {
			r.stats.MaxQueueSize = r.pq.Len()
		}
	}

	return nil
}

// heuristic dispatches the configured estimate; a nil board costs 0.
func (r *runner) heuristic(b *board.Board) int {
	if b == nil {
		return 0
	}
	if r.opts.Heuristic == ManhattanDistance {
		return b.ManhattanDistance()
	}

	return b.MisplacedTiles()
}

// entry pairs a frontier priority with its board. For UniformCost the
// priority is the path cost g; for AStar it is f = g + h.
type entry struct {
	cost int
	b    *board.Board
}

// entryPQ is a min-heap of frontier entries ordered by cost ascending,
// falling back to the board ordering contract on ties (equal-content
// boards order by depth; distinct equal-cost boards keep heap order).
type entryPQ []*entry

// Len returns the number of frontier entries.
func (pq entryPQ) Len() int { return len(pq) }

// Less orders by entry cost, then by the board contract.
func (pq entryPQ) Less(i, j int) bool {
	if pq[i].cost != pq[j].cost {
		return pq[i].cost < pq[j].cost
	}

	return pq[i].b.Less(pq[j].b)
}

// Swap swaps two frontier entries.
func (pq entryPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push appends x; called by heap.Push, x must be *entry.
func (pq *entryPQ) Push(x interface{}) { *pq = append(*pq, x.(*entry)) }

// Pop removes and returns the last element; called by heap.Pop.
func (pq *entryPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
