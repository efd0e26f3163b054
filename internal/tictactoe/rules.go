package tictactoe

import "github.com/rocketscienceinc/tictactoe-engine/internal/entity"

// Evaluate derives the outcome of a board. It is pure and is called at every node of the search.
func Evaluate(board entity.Board) entity.Outcome {
	for _, line := range entity.WinLines {
		a := board[line[0].Row][line[0].Col]
		b := board[line[1].Row][line[1].Col]
		c := board[line[2].Row][line[2].Col]

		if a != entity.Empty && a == b && b == c {
			winning := line

			return entity.Outcome{
				Status: entity.StatusWin,
				Winner: a,
				Line:   &winning,
			}
		}
	}

	// the round continues until every cell is taken
	if !board.IsFull() {
		return entity.Outcome{Status: entity.StatusInProgress}
	}

	return entity.Outcome{Status: entity.StatusDraw}
}

// Winner is a cheaper form of Evaluate for callers that only need the winning mark.
func Winner(board *entity.Board) entity.Mark {
	for _, line := range entity.WinLines {
		a := board[line[0].Row][line[0].Col]
		if a != entity.Empty && a == board[line[1].Row][line[1].Col] && a == board[line[2].Row][line[2].Col] {
			return a
		}
	}

	return entity.Empty
}
