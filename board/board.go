package board

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// memoCell is a lazily computed integer with an explicit computed flag,
// so zero remains a representable result.
type memoCell struct {
	val  int
	done bool
}

// Board is one snapshot of the puzzle plus search bookkeeping.
// The grid is immutable after construction; bookkeeping fields are set
// once by the creator (root constructor or parent expansion).
type Board struct {
	cells    [][]int
	dim      int
	blankRow int
	blankCol int

	// parent is a non-owning back-reference used only to reconstruct
	// the solution path and to suppress the immediate-undo move.
	parent *Board
	cost   int
	depth  int

	misplaced memoCell
	manhattan memoCell

	key           string
	children      []*Board
	childrenBuilt bool
}

// New constructs a root Board from cells, validating eagerly:
// the grid must be non-empty, square, match the configured goal
// dimension, and hold exactly the permutation 0..d²-1.
// The input is deep-copied to guarantee immutability.
// Complexity: O(d²) time and memory.
func New(cells [][]int) (*Board, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, ErrEmptyBoard
	}
	d := len(cells)
	for _, row := range cells {
		if len(row) != d {
			return nil, ErrNotSquare
		}
	}
	if d != Dimension() {
		return nil, fmt.Errorf("%w: got %d, configured %d", ErrDimensionMismatch, d, Dimension())
	}

	// Verify the permutation property: each value 0..d²-1 exactly once.
	seen := make([]bool, d*d)
	for _, row := range cells {
		for _, v := range row {
			if v < 0 || v >= d*d || seen[v] {
				return nil, fmt.Errorf("%w: value %d", ErrBadPermutation, v)
			}
			seen[v] = true
		}
	}

	b := &Board{cells: copyGrid(cells), dim: d}
	b.blankRow, b.blankCol = locateBlank(b.cells)

	return b, nil
}

// child builds a successor Board around an already-valid grid derived
// from b by a single swap. Bypasses New's validation on purpose: a
// one-swap derivative of a valid permutation stays a valid permutation.
func (b *Board) child(cells [][]int, blankRow, blankCol int) *Board {
	return &Board{
		cells:    cells,
		dim:      b.dim,
		blankRow: blankRow,
		blankCol: blankCol,
		parent:   b,
		cost:     b.cost + 1,
		depth:    b.depth + 1,
	}
}

// Successors returns the Boards reachable by sliding one orthogonal
// neighbor of the blank into the blank, in a fixed scan order:
// iterate blank-row −1..+1 and blank-col −1..+1 in nested row-then-col
// order, keeping only strictly orthogonal offsets. The fixed order
// matters for reproducible tie-breaking among equal-cost frontier
// entries.
//
// A candidate is skipped when its grid equals the parent's grid
// (immediate undo) or, if visited is non-nil, when its key is already
// present in visited.
//
// The result is memoized: repeated calls return the cached slice and
// ignore the visited argument, so callers must not vary the filter
// between calls on one Board.
func (b *Board) Successors(visited map[string]struct{}) []*Board {
	if b.childrenBuilt {
		return b.children
	}
	b.childrenBuilt = true

	for r := b.blankRow - 1; r <= b.blankRow+1; r++ {
		if r < 0 || r >= b.dim {
			continue
		}
		for c := b.blankCol - 1; c <= b.blankCol+1; c++ {
			if c < 0 || c >= b.dim {
				continue
			}
			// Strictly orthogonal: exactly one coordinate changes.
			if (r == b.blankRow) == (c == b.blankCol) {
				continue
			}

			next := copyGrid(b.cells)
			next[b.blankRow][b.blankCol] = next[r][c]
			next[r][c] = Blank

			// Never generate the move that reverses the parent's move.
			if b.parent != nil && gridsEqual(b.parent.cells, next) {
				continue
			}

			ch := b.child(next, r, c)
			if visited != nil {
				if _, seen := visited[ch.Key()]; seen {
					continue
				}
			}
			b.children = append(b.children, ch)
		}
	}

	return b.children
}

// IsGoal reports whether the grid equals the canonical goal for the
// configured dimension.
func (b *Board) IsGoal() bool {
	return gridsEqual(b.cells, goalCells)
}

// MisplacedTiles returns the number of non-blank cells whose value
// differs from the goal grid at the same position. Memoized.
func (b *Board) MisplacedTiles() int {
	if b.misplaced.done {
		return b.misplaced.val
	}

	count := 0
	for r := 0; r < b.dim; r++ {
		for c := 0; c < b.dim; c++ {
			if b.cells[r][c] != Blank && b.cells[r][c] != goalCells[r][c] {
				count++
			}
		}
	}
	b.misplaced = memoCell{val: count, done: true}

	return count
}

// ManhattanDistance returns the sum over non-blank cells of the
// row+column distance to each value's goal position. Tile k belongs at
// row (k-1)/d, col (k-1)%d. Memoized.
func (b *Board) ManhattanDistance() int {
	if b.manhattan.done {
		return b.manhattan.val
	}

	sum := 0
	for r := 0; r < b.dim; r++ {
		for c := 0; c < b.dim; c++ {
			k := b.cells[r][c]
			if k == Blank {
				continue
			}
			gr, gc := (k-1)/b.dim, (k-1)%b.dim
			sum += abs(gr-r) + abs(gc-c)
		}
	}
	b.manhattan = memoCell{val: sum, done: true}

	return sum
}

// Key returns the canonical content key of the grid, suitable for map
// membership: identical grids yield identical keys regardless of how
// the Boards were reached. Memoized.
func (b *Board) Key() string {
	if b.key != "" {
		return b.key
	}

	var sb strings.Builder
	for r, row := range b.cells {
		if r > 0 {
			sb.WriteByte('|')
		}
		for c, v := range row {
			if c > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(strconv.Itoa(v))
		}
	}
	b.key = sb.String()

	return b.key
}

// Equal reports content equality, ignoring parent, cost, and depth.
func (b *Board) Equal(o *Board) bool {
	return o != nil && gridsEqual(b.cells, o.cells)
}

// Less implements the frontier ordering contract: cost ascending;
// when costs are equal and the grids are equal, depth ascending.
// Equal-cost Boards with different grids are mutually not-less, which
// leaves their relative order to the heap (stable given the fixed
// successor scan order).
func (b *Board) Less(o *Board) bool {
	if b.cost == o.cost && gridsEqual(b.cells, o.cells) {
		return b.depth < o.depth
	}

	return b.cost < o.cost
}

// Dimension returns the grid side length.
func (b *Board) Dimension() int { return b.dim }

// Cost returns the number of moves from the root along the path this
// Board was generated through (the g-value).
func (b *Board) Cost() int { return b.cost }

// Depth returns the tree depth, equal to Cost by construction.
func (b *Board) Depth() int { return b.depth }

// Parent returns the predecessor Board, or nil for the root.
func (b *Board) Parent() *Board { return b.parent }

// BlankPosition returns the cached coordinates of the blank cell.
func (b *Board) BlankPosition() (row, col int) { return b.blankRow, b.blankCol }

// Cells returns a deep copy of the grid.
func (b *Board) Cells() [][]int { return copyGrid(b.cells) }

// String renders the grid one row per line, values space-separated,
// the blank as "_".
func (b *Board) String() string {
	var sb strings.Builder
	for r, row := range b.cells {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c, v := range row {
			if c > 0 {
				sb.WriteByte(' ')
			}
			if v == Blank {
				sb.WriteByte('_')
			} else {
				sb.WriteString(strconv.Itoa(v))
			}
		}
	}

	return sb.String()
}

// WritePath prints every board from the root down to b in root-to-goal
// order, one blank line between consecutive boards. Safe on a nil
// receiver (prints nothing), which terminates the recursion.
func (b *Board) WritePath(w io.Writer) {
	if b == nil {
		return
	}
	b.parent.WritePath(w)
	fmt.Fprintln(w, b.String())
	fmt.Fprintln(w)
}

// PathCost recursively counts parent links from b to the root.
// Returns 0 for a nil Board, so PathCost(goal.Parent()) is the number
// of moves on the solution path (0 when the root is the goal).
func PathCost(b *Board) int {
	if b == nil {
		return 0
	}

	return 1 + PathCost(b.parent)
}

// copyGrid deep-copies a grid so no two Boards alias cell storage.
func copyGrid(src [][]int) [][]int {
	dst := make([][]int, len(src))
	for i, row := range src {
		dst[i] = make([]int, len(row))
		copy(dst[i], row)
	}

	return dst
}

// gridsEqual reports cell-wise equality of two same-shaped grids.
func gridsEqual(a, b [][]int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if len(a[i]) != len(b[i]) {
			return false
		}
		for j := range a[i] {
			if a[i][j] != b[i][j] {
				return false
			}
		}
	}

	return true
}

// locateBlank scans for the blank cell. Assumes exactly one blank.
func locateBlank(cells [][]int) (row, col int) {
	for r := range cells {
		for c := range cells[r] {
			if cells[r][c] == Blank {
				return r, c
			}
		}
	}

	return -1, -1
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
