package board_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/npuzzle/board"
)

func TestShuffle_ZeroStepsIsIdentity(t *testing.T) {
	g := board.Goal()
	s := g.Shuffle(0, rand.New(rand.NewSource(1)))

	assert.True(t, s.Equal(g))
	assert.NotSame(t, g, s)
}

func TestShuffle_ProducesValidSolvableBoard(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for steps := 1; steps <= 40; steps++ {
		s := board.Goal().Shuffle(steps, rng)

		// Still a valid permutation: New accepts the cells.
		_, err := board.New(s.Cells())
		require.NoError(t, err)

		// Valid moves preserve parity, so the result stays solvable.
		assert.True(t, s.Solvable(), "shuffle of %d steps must stay solvable", steps)

		// Cached blank coordinates must match the grid.
		row, col := s.BlankPosition()
		assert.Equal(t, board.Blank, s.Cells()[row][col])
	}
}

func TestShuffle_SingleStepLeavesGoal(t *testing.T) {
	s := board.Goal().Shuffle(1, rand.New(rand.NewSource(7)))
	assert.False(t, s.IsGoal())
	assert.Equal(t, 1, s.ManhattanDistance())
}

func TestShuffle_DoesNotMutateReceiver(t *testing.T) {
	g := board.Goal()
	_ = g.Shuffle(30, rand.New(rand.NewSource(3)))
	assert.True(t, g.IsGoal())
}

func TestSolvable(t *testing.T) {
	cases := []struct {
		name  string
		cells [][]int
		want  bool
	}{
		{"goal itself", [][]int{{1, 2, 3}, {4, 5, 6}, {7, 8, 0}}, true},
		{"one move out", [][]int{{1, 2, 3}, {4, 5, 0}, {7, 8, 6}}, true},
		{"blank first, tiles ordered", [][]int{{0, 1, 2}, {3, 4, 5}, {6, 7, 8}}, true},
		{"odd parity swap of 7 and 8", [][]int{{1, 2, 3}, {4, 5, 6}, {8, 7, 0}}, false},
	}
	for _, tc := range cases {
		b, err := board.New(tc.cells)
		require.NoError(t, err, tc.name)
		assert.Equal(t, tc.want, b.Solvable(), tc.name)
	}
}
