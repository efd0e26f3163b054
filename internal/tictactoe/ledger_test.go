package tictactoe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

func TestMoveLedger_UndoLast(t *testing.T) {
	t.Run("Pops most recent first", func(t *testing.T) {
		// Given: three recorded moves
		var ledger MoveLedger
		ledger.Record(entity.Move{Row: 0, Col: 0, Mark: x})
		ledger.Record(entity.Move{Row: 1, Col: 1, Mark: o})
		ledger.Record(entity.Move{Row: 2, Col: 2, Mark: x})

		// When: two are undone
		popped := ledger.UndoLast(2)

		// Then: they come back newest first and one remains
		assert.Equal(t, []entity.Move{
			{Row: 2, Col: 2, Mark: x},
			{Row: 1, Col: 1, Mark: o},
		}, popped)
		assert.Equal(t, 1, ledger.Len())

		last, ok := ledger.Last()
		require.True(t, ok)
		assert.Equal(t, entity.Move{Row: 0, Col: 0, Mark: x}, last)
	})

	t.Run("Empty ledger yields nothing", func(t *testing.T) {
		var ledger MoveLedger

		popped := ledger.UndoLast(2)

		assert.Empty(t, popped)
		assert.Zero(t, ledger.Len())

		_, ok := ledger.Last()
		assert.False(t, ok)
	})

	t.Run("Asking for more than recorded pops what exists", func(t *testing.T) {
		var ledger MoveLedger
		ledger.Record(entity.Move{Row: 0, Col: 0, Mark: x})

		popped := ledger.UndoLast(2)

		assert.Len(t, popped, 1)
		assert.Zero(t, ledger.Len())
	})

	t.Run("Non-positive count is a no-op", func(t *testing.T) {
		var ledger MoveLedger
		ledger.Record(entity.Move{Row: 0, Col: 0, Mark: x})

		assert.Empty(t, ledger.UndoLast(0))
		assert.Empty(t, ledger.UndoLast(-1))
		assert.Equal(t, 1, ledger.Len())
	})
}

func TestMoveLedger_MovesIsACopy(t *testing.T) {
	var ledger MoveLedger
	ledger.Record(entity.Move{Row: 0, Col: 0, Mark: x})

	moves := ledger.Moves()
	moves[0].Row = 2

	last, _ := ledger.Last()
	assert.Equal(t, 0, last.Row)
}

func TestMoveLedger_Replay(t *testing.T) {
	t.Run("Replaying random legal games reproduces the board", func(t *testing.T) {
		random := rand.New(rand.NewSource(7))

		for game := range 200 {
			// Given: a random legal game played on a live board
			var (
				board  entity.Board
				ledger MoveLedger
			)

			for turn := x; !Evaluate(board).IsTerminal(); turn = turn.Opponent() {
				empty := board.EmptyCells()
				cell := empty[random.Intn(len(empty))]

				require.NoError(t, board.Place(cell.Row, cell.Col, turn))
				ledger.Record(entity.Move{Row: cell.Row, Col: cell.Col, Mark: turn})
			}

			// When: the ledger is replayed from an empty board
			replayed, err := ledger.Replay()

			// Then: it matches the live board and the ledger length matches the filled cells
			require.NoError(t, err, "game %d", game)
			assert.Equal(t, board, replayed, "game %d", game)
			assert.Equal(t, board.Filled(), ledger.Len(), "game %d", game)
		}
	})

	t.Run("Conflicting history fails", func(t *testing.T) {
		var ledger MoveLedger
		ledger.Record(entity.Move{Row: 1, Col: 1, Mark: x})
		ledger.Record(entity.Move{Row: 1, Col: 1, Mark: o})

		_, err := ledger.Replay()

		assert.ErrorIs(t, err, apperror.ErrCellOccupied)
	})
}

func TestNextMark(t *testing.T) {
	assert.Equal(t, x, nextMark(0))
	assert.Equal(t, o, nextMark(1))
	assert.Equal(t, x, nextMark(8))
}
