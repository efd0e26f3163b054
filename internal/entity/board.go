package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

const BoardSize = 3

type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (that Position) InBounds() bool {
	return that.Row >= 0 && that.Row < BoardSize && that.Col >= 0 && that.Col < BoardSize
}

// Board is a 3x3 grid stored row-major. It is a value type: assigning it copies the grid.
type Board [BoardSize][BoardSize]Mark

// Place puts mark on an empty cell. A failed placement leaves the board untouched.
func (that *Board) Place(row, col int, mark Mark) error {
	if !(Position{Row: row, Col: col}).InBounds() {
		return fmt.Errorf("%w: row %d col %d", apperror.ErrOutOfBounds, row, col)
	}

	if that[row][col] != Empty {
		return fmt.Errorf("%w: row %d col %d", apperror.ErrCellOccupied, row, col)
	}

	that[row][col] = mark

	return nil
}

// Clear empties a cell without any validation; only undo paths call it.
func (that *Board) Clear(row, col int) {
	that[row][col] = Empty
}

func (that Board) Cell(row, col int) Mark {
	return that[row][col]
}

func (that *Board) IsFull() bool {
	for row := range that {
		for col := range that[row] {
			if that[row][col] == Empty {
				return false
			}
		}
	}

	return true
}

// EmptyCells lists the free cells in row-major order.
func (that Board) EmptyCells() []Position {
	cells := make([]Position, 0, BoardSize*BoardSize)
	for row := range that {
		for col := range that[row] {
			if that[row][col] == Empty {
				cells = append(cells, Position{Row: row, Col: col})
			}
		}
	}

	return cells
}

// Filled counts the non-empty cells.
func (that Board) Filled() int {
	return BoardSize*BoardSize - len(that.EmptyCells())
}

// Snapshot returns a detached copy of the grid.
func (that Board) Snapshot() Board {
	return that
}
