package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

type Difficulty string

const (
	EasyDifficulty   Difficulty = "easy"
	MediumDifficulty Difficulty = "medium"
	HardDifficulty   Difficulty = "hard"
)

func ParseDifficulty(value string) (Difficulty, error) {
	switch difficulty := Difficulty(strings.ToLower(strings.TrimSpace(value))); difficulty {
	case EasyDifficulty, MediumDifficulty, HardDifficulty:
		return difficulty, nil
	default:
		return "", fmt.Errorf("%w: %q", apperror.ErrUnknownDifficulty, value)
	}
}

type GameMode string

const (
	TwoPlayerMode GameMode = "two_player"
	VsAIMode      GameMode = "vs_ai"
)

func ParseGameMode(value string) (GameMode, error) {
	switch mode := GameMode(strings.ToLower(strings.TrimSpace(value))); mode {
	case TwoPlayerMode, VsAIMode:
		return mode, nil
	default:
		return "", fmt.Errorf("%w: %q", apperror.ErrUnknownMode, value)
	}
}

const (
	DefaultNameX  = "Player X"
	DefaultNameO  = "Player O"
	DefaultAIName = "AI"
)

// Settings describe how a session is played. The zero value is not valid; use DefaultSettings.
type Settings struct {
	Mode       GameMode   `json:"mode"`
	Difficulty Difficulty `json:"difficulty"`
	PlayerX    string     `json:"player_x"`
	PlayerO    string     `json:"player_o"`
	AIMark     Mark       `json:"ai_mark,omitempty"`
}

func DefaultSettings() Settings {
	return Settings{
		Mode:       TwoPlayerMode,
		Difficulty: MediumDifficulty,
		PlayerX:    DefaultNameX,
		PlayerO:    DefaultNameO,
		AIMark:     O,
	}
}

func (that Settings) IsVsAI() bool {
	return that.Mode == VsAIMode
}

// Name returns the display name of the player holding mark.
func (that Settings) Name(mark Mark) string {
	if mark == X {
		return that.PlayerX
	}

	return that.PlayerO
}
