package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// MoveLedger is the ordered history of the moves of a round. It only grows at the end and
// only shrinks from the end.
type MoveLedger struct {
	moves []entity.Move
}

// Record appends a move. The board has already validated it.
func (that *MoveLedger) Record(move entity.Move) {
	that.moves = append(that.moves, move)
}

// UndoLast pops up to n moves and returns them most-recent-first. An empty ledger yields nothing.
func (that *MoveLedger) UndoLast(n int) []entity.Move {
	if n <= 0 || len(that.moves) == 0 {
		return nil
	}

	n = min(n, len(that.moves))

	popped := make([]entity.Move, 0, n)
	for range n {
		last := len(that.moves) - 1
		popped = append(popped, that.moves[last])
		that.moves = that.moves[:last]
	}

	return popped
}

func (that *MoveLedger) Len() int {
	return len(that.moves)
}

// Last returns the most recent move, if any.
func (that *MoveLedger) Last() (entity.Move, bool) {
	if len(that.moves) == 0 {
		return entity.Move{}, false
	}

	return that.moves[len(that.moves)-1], true
}

// Moves returns a copy of the history, oldest first.
func (that *MoveLedger) Moves() []entity.Move {
	return append([]entity.Move(nil), that.moves...)
}

func (that *MoveLedger) Reset() {
	that.moves = nil
}

// Replay rebuilds a board from an empty grid by applying every recorded move in order.
func (that *MoveLedger) Replay() (entity.Board, error) {
	var board entity.Board

	for i, move := range that.moves {
		if err := board.Place(move.Row, move.Col, move.Mark); err != nil {
			return entity.Board{}, fmt.Errorf("failed to replay move %d: %w", i, err)
		}
	}

	return board, nil
}

// nextMark is the mark to move after length moves: X on even, O on odd.
func nextMark(length int) entity.Mark {
	if length%2 == 0 {
		return entity.X
	}
	return entity.O
}
