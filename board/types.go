// Package board defines the puzzle snapshot type and sentinel errors
// for the board subpackage of github.com/katalvlaran/npuzzle.
package board

import (
	"errors"
)

// Blank is the cell value that marks the empty position a tile may
// slide into.
const Blank = 0

// DefaultDimension is the side length of the classic 8-puzzle grid.
const DefaultDimension = 3

// Sentinel errors for board construction and goal configuration.
var (
	// ErrEmptyBoard indicates the input grid has no rows or no columns.
	ErrEmptyBoard = errors.New("board: grid must have at least one row and one column")
	// ErrNotSquare indicates rows of differing lengths or a row count
	// that does not match the row length.
	ErrNotSquare = errors.New("board: grid must be square")
	// ErrBadPermutation indicates the cell values are not exactly the
	// permutation 0..d²-1 (one blank, each tile once).
	ErrBadPermutation = errors.New("board: cells must be a permutation of 0..d*d-1")
	// ErrDimensionMismatch indicates the grid side length differs from
	// the configured goal dimension (see SetDimension).
	ErrDimensionMismatch = errors.New("board: grid dimension does not match configured goal dimension")
	// ErrBadDimension indicates a requested goal dimension below 2.
	ErrBadDimension = errors.New("board: dimension must be at least 2")
)
