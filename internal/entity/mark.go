package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

// Mark is the content of a board cell and the symbol of a player.
type Mark string

const (
	Empty Mark = ""
	X     Mark = "X"
	O     Mark = "O"
)

// Opponent returns the other player's mark. Empty has no opponent.
func (that Mark) Opponent() Mark {
	switch that {
	case X:
		return O
	case O:
		return X
	default:
		return Empty
	}
}

func (that Mark) IsPlayer() bool {
	return that == X || that == O
}

// ParseMark accepts "X" or "O".
func ParseMark(value string) (Mark, error) {
	switch mark := Mark(strings.ToUpper(strings.TrimSpace(value))); mark {
	case X, O:
		return mark, nil
	default:
		return Empty, fmt.Errorf("%w: %q", apperror.ErrUnknownMark, value)
	}
}
