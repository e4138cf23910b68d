package board_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/npuzzle/board"
)

func TestSetDimension_RejectsDegenerate(t *testing.T) {
	assert.ErrorIs(t, board.SetDimension(0), board.ErrBadDimension)
	assert.ErrorIs(t, board.SetDimension(1), board.ErrBadDimension)
	assert.Equal(t, 3, board.Dimension(), "failed SetDimension must not change the goal")
}

func TestSetDimension_RebuildsCanonicalGoal(t *testing.T) {
	require.NoError(t, board.SetDimension(4))
	defer func() { require.NoError(t, board.SetDimension(board.DefaultDimension)) }()

	assert.Equal(t, 4, board.Dimension())
	assert.Equal(t, [][]int{
		{1, 2, 3, 4},
		{5, 6, 7, 8},
		{9, 10, 11, 12},
		{13, 14, 15, 0},
	}, board.GoalCells())
}

func TestGoal_IsGoalBoard(t *testing.T) {
	g := board.Goal()
	assert.True(t, g.IsGoal())
	assert.Zero(t, g.Cost())
	assert.Nil(t, g.Parent())

	row, col := g.BlankPosition()
	assert.Equal(t, board.Dimension()-1, row)
	assert.Equal(t, board.Dimension()-1, col)
}

func TestGoalCells_ReturnsCopy(t *testing.T) {
	cells := board.GoalCells()
	cells[0][0] = 99
	assert.Equal(t, 1, board.GoalCells()[0][0])
}

func TestSuccessors_InteriorBlankOnLargerBoard(t *testing.T) {
	require.NoError(t, board.SetDimension(4))
	defer func() { require.NoError(t, board.SetDimension(board.DefaultDimension)) }()

	// Blank at the interior cell (1,1) of a 4×4 board.
	b, err := board.New([][]int{
		{1, 2, 3, 4},
		{5, 0, 7, 8},
		{9, 6, 11, 12},
		{13, 10, 14, 15},
	})
	require.NoError(t, err)

	assert.Len(t, b.Successors(nil), 4)
}
