package service

import (
	"math"
	"time"

	"golang.org/x/exp/rand"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

const (
	winScore = 10

	// chance of a random move on medium difficulty
	mediumBlunderRate = 0.5
)

// Random is the source of the easy and medium tiers.
type Random interface {
	Intn(n int) int
	Float64() float64
}

// NewRandom returns a PCG-backed source; the same seed gives the same games.
func NewRandom(seed uint64) Random {
	return rand.New(rand.NewSource(seed))
}

// NewTimeRandom seeds a source from the clock.
func NewTimeRandom() Random {
	return NewRandom(uint64(time.Now().UnixNano()))
}

// Bot is the computer opponent.
type Bot struct {
	difficulty entity.Difficulty
	mark       entity.Mark
	opponent   entity.Mark
	random     Random
}

func NewBot(difficulty entity.Difficulty, mark entity.Mark, random Random) *Bot {
	return &Bot{
		difficulty: difficulty,
		mark:       mark,
		opponent:   mark.Opponent(),
		random:     random,
	}
}

func (that *Bot) Difficulty() entity.Difficulty {
	return that.difficulty
}

func (that *Bot) SetDifficulty(difficulty entity.Difficulty) {
	that.difficulty = difficulty
}

func (that *Bot) Mark() entity.Mark {
	return that.mark
}

// ChooseMove picks a cell according to the difficulty. On a full board it returns (0,0).
func (that *Bot) ChooseMove(board entity.Board) entity.Position {
	switch that.difficulty {
	case entity.EasyDifficulty:
		return that.randomMove(board)
	case entity.MediumDifficulty:
		if that.random.Float64() < mediumBlunderRate {
			return that.randomMove(board)
		}
		return that.BestMove(board)
	default:
		return that.BestMove(board)
	}
}

func (that *Bot) randomMove(board entity.Board) entity.Position {
	available := board.EmptyCells()
	if len(available) == 0 {
		return entity.Position{}
	}

	return available[that.random.Intn(len(available))]
}

// BestMove runs a full minimax search. Ties go to the first cell in row-major order.
// board is the only buffer the search touches: every probe is undone before it returns.
func (that *Bot) BestMove(board entity.Board) entity.Position {
	best := entity.Position{}
	bestScore := math.MinInt

	for row := range entity.BoardSize {
		for col := range entity.BoardSize {
			if board[row][col] != entity.Empty {
				continue
			}

			score := that.probe(&board, row, col, that.mark, 0)
			if score > bestScore {
				bestScore = score
				best = entity.Position{Row: row, Col: col}
			}
		}
	}

	return best
}

// Score returns the minimax value of playing (row, col) now, for tests and analysis.
func (that *Bot) Score(board entity.Board, row, col int) int {
	return that.probe(&board, row, col, that.mark, 0)
}

// probe places mark, scores the position at depth and clears the cell on the way out.
func (that *Bot) probe(board *entity.Board, row, col int, mark entity.Mark, depth int) int {
	board[row][col] = mark
	defer board.Clear(row, col)

	return that.minimax(board, depth, mark == that.opponent)
}

func (that *Bot) minimax(board *entity.Board, depth int, maximizing bool) int {
	switch tictactoe.Winner(board) {
	case that.mark:
		return winScore - depth
	case that.opponent:
		return depth - winScore
	}

	if board.IsFull() {
		return 0
	}

	if maximizing {
		best := math.MinInt
		for row := range entity.BoardSize {
			for col := range entity.BoardSize {
				if board[row][col] == entity.Empty {
					best = max(best, that.probe(board, row, col, that.mark, depth+1))
				}
			}
		}
		return best
	}

	best := math.MaxInt
	for row := range entity.BoardSize {
		for col := range entity.BoardSize {
			if board[row][col] == entity.Empty {
				best = min(best, that.probe(board, row, col, that.opponent, depth+1))
			}
		}
	}
	return best
}
