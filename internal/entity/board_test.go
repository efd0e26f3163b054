package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

func TestBoard_Place(t *testing.T) {
	t.Run("Places a mark on an empty cell", func(t *testing.T) {
		// Given: an empty board
		var board Board

		// When: X is placed in the center
		err := board.Place(1, 1, X)

		// Then: the cell holds X and nothing else changed
		require.NoError(t, err)
		assert.Equal(t, X, board.Cell(1, 1))
		assert.Equal(t, 1, board.Filled())
	})

	t.Run("Rejects an occupied cell without changing it", func(t *testing.T) {
		// Given: a board with X in the corner
		var board Board
		require.NoError(t, board.Place(0, 0, X))

		// When: O tries the same cell
		err := board.Place(0, 0, O)

		// Then: ErrCellOccupied is returned and X is still there
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		assert.Equal(t, X, board.Cell(0, 0))
	})

	for _, position := range []Position{{-1, 0}, {0, -1}, {3, 0}, {0, 3}, {9, 9}} {
		t.Run("Rejects out of bounds", func(t *testing.T) {
			// Given: an empty board
			var board Board
			before := board.Snapshot()

			// When: a mark is placed outside the grid
			err := board.Place(position.Row, position.Col, X)

			// Then: ErrOutOfBounds is returned and the board is untouched
			require.ErrorIs(t, err, apperror.ErrOutOfBounds)
			assert.Equal(t, before, board)
		})
	}
}

func TestBoard_Clear(t *testing.T) {
	// Given: a board with one mark
	var board Board
	require.NoError(t, board.Place(2, 1, O))

	// When: the cell is cleared
	board.Clear(2, 1)

	// Then: the board is empty again
	assert.Equal(t, Board{}, board)
}

func TestBoard_IsFull(t *testing.T) {
	t.Run("Empty board is not full", func(t *testing.T) {
		var board Board
		assert.False(t, board.IsFull())
	})

	t.Run("Board with one free cell is not full", func(t *testing.T) {
		board := Board{
			{X, O, X},
			{O, X, O},
			{O, X, Empty},
		}
		assert.False(t, board.IsFull())
	})

	t.Run("Board without free cells is full", func(t *testing.T) {
		board := Board{
			{X, O, X},
			{O, X, O},
			{O, X, O},
		}
		assert.True(t, board.IsFull())
	})
}

func TestBoard_EmptyCells(t *testing.T) {
	// Given: a board with marks on the diagonal
	board := Board{
		{X, Empty, Empty},
		{Empty, O, Empty},
		{Empty, Empty, X},
	}

	// When: listing free cells
	cells := board.EmptyCells()

	// Then: they come in row-major order
	assert.Equal(t, []Position{{0, 1}, {0, 2}, {1, 0}, {1, 2}, {2, 0}, {2, 1}}, cells)
}

func TestBoard_Snapshot(t *testing.T) {
	// Given: a board and its snapshot
	var board Board
	require.NoError(t, board.Place(0, 0, X))
	snapshot := board.Snapshot()

	// When: the snapshot is mutated
	require.NoError(t, snapshot.Place(1, 1, O))

	// Then: the live board does not see it
	assert.Equal(t, Empty, board.Cell(1, 1))
	assert.Equal(t, X, snapshot.Cell(0, 0))
}

func TestBoard_ReadsFromReturnedCopy(t *testing.T) {
	// Given: a board only reachable as a function result
	current := func() Board {
		var board Board
		require.NoError(t, board.Place(2, 2, O))
		return board
	}

	// Then: the read accessors work on the returned value directly
	assert.Equal(t, O, current().Cell(2, 2))
	assert.Equal(t, 1, current().Filled())
	assert.Len(t, current().EmptyCells(), 8)
	assert.Equal(t, current(), current().Snapshot())
}

func TestMark_Opponent(t *testing.T) {
	assert.Equal(t, O, X.Opponent())
	assert.Equal(t, X, O.Opponent())
	assert.Equal(t, Empty, Empty.Opponent())
}
