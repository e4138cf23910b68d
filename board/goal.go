package board

// Process-wide goal configuration: one canonical goal grid per run,
// read-only while searches execute. Default is the classic 3×3 layout.
var (
	goalDim   = DefaultDimension
	goalCells = canonicalGoal(DefaultDimension)
)

// SetDimension rebuilds the process-wide goal grid for side length d:
// row-major ascending 1..d²-1 with the blank in the final cell.
// Must be called before constructing any Board of a non-default
// dimension; changing the dimension invalidates Boards built under the
// previous one. Returns ErrBadDimension for d < 2.
func SetDimension(d int) error {
	if d < 2 {
		return ErrBadDimension
	}
	goalDim = d
	goalCells = canonicalGoal(d)

	return nil
}

// Dimension returns the currently configured goal dimension.
func Dimension() int { return goalDim }

// GoalCells returns a deep copy of the canonical goal grid.
func GoalCells() [][]int { return copyGrid(goalCells) }

// Goal returns the canonical goal position as a root Board.
func Goal() *Board {
	b := &Board{cells: copyGrid(goalCells), dim: goalDim}
	b.blankRow, b.blankCol = goalDim-1, goalDim-1

	return b
}

// canonicalGoal builds the grid cell(i,j) = i*d+j+1, except the final
// cell, which holds the blank.
func canonicalGoal(d int) [][]int {
	cells := make([][]int, d)
	for i := 0; i < d; i++ {
		cells[i] = make([]int, d)
		for j := 0; j < d; j++ {
			cells[i][j] = i*d + j + 1
		}
	}
	cells[d-1][d-1] = Blank

	return cells
}
