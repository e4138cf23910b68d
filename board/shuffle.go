package board

import (
	"math/rand"
	"time"
)

// Shuffle returns a new root Board produced by a random walk of steps
// valid moves starting from b. When more than one move is available,
// the walk never immediately undoes its previous move, so short walks
// do not collapse back onto the start. The receiver is not modified
// and the result carries no parent chain. A nil rng is seeded from the
// wall clock.
func (b *Board) Shuffle(steps int, rng *rand.Rand) *Board {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	cells := copyGrid(b.cells)
	row, col := b.blankRow, b.blankCol
	prevRow, prevCol := -1, -1

	offsets := [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	for i := 0; i < steps; i++ {
		moves := make([][2]int, 0, 4)
		for _, d := range offsets {
			nr, nc := row+d[0], col+d[1]
			if nr < 0 || nr >= b.dim || nc < 0 || nc >= b.dim {
				continue
			}
			if nr == prevRow && nc == prevCol {
				continue
			}
			moves = append(moves, [2]int{nr, nc})
		}
		pick := moves[rng.Intn(len(moves))]
		cells[row][col], cells[pick[0]][pick[1]] = cells[pick[0]][pick[1]], cells[row][col]
		prevRow, prevCol = row, col
		row, col = pick[0], pick[1]
	}

	return &Board{cells: cells, dim: b.dim, blankRow: row, blankCol: col}
}

// Solvable reports whether the canonical goal is reachable from b,
// using the inversion-parity argument: count pairs of tiles that
// appear out of order in row-major reading (the blank excluded).
// For odd dimensions the board is solvable iff the count is even; for
// even dimensions the blank's row (counted from the bottom, 1-based)
// joins the parity.
func (b *Board) Solvable() bool {
	flat := make([]int, 0, b.dim*b.dim-1)
	for _, row := range b.cells {
		for _, v := range row {
			if v != Blank {
				flat = append(flat, v)
			}
		}
	}

	inversions := 0
	for i := 0; i < len(flat); i++ {
		for j := i + 1; j < len(flat); j++ {
			if flat[i] > flat[j] {
				inversions++
			}
		}
	}

	if b.dim%2 == 1 {
		return inversions%2 == 0
	}
	rowFromBottom := b.dim - b.blankRow

	return (inversions+rowFromBottom)%2 == 1
}
