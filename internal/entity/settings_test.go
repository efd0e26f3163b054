package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

func TestParseDifficulty(t *testing.T) {
	for value, expected := range map[string]Difficulty{
		"easy":   EasyDifficulty,
		"Medium": MediumDifficulty,
		" HARD ": HardDifficulty,
	} {
		difficulty, err := ParseDifficulty(value)
		require.NoError(t, err)
		assert.Equal(t, expected, difficulty)
	}

	_, err := ParseDifficulty("impossible")
	assert.ErrorIs(t, err, apperror.ErrUnknownDifficulty)
}

func TestParseGameMode(t *testing.T) {
	mode, err := ParseGameMode("vs_ai")
	require.NoError(t, err)
	assert.Equal(t, VsAIMode, mode)

	mode, err = ParseGameMode("two_player")
	require.NoError(t, err)
	assert.Equal(t, TwoPlayerMode, mode)

	_, err = ParseGameMode("online")
	assert.ErrorIs(t, err, apperror.ErrUnknownMode)
}

func TestParseMark(t *testing.T) {
	mark, err := ParseMark("O")
	require.NoError(t, err)
	assert.Equal(t, O, mark)

	mark, err = ParseMark(" x ")
	require.NoError(t, err)
	assert.Equal(t, X, mark)

	_, err = ParseMark("")
	assert.ErrorIs(t, err, apperror.ErrUnknownMark)
}

func TestSettings_Name(t *testing.T) {
	settings := DefaultSettings()

	assert.Equal(t, DefaultNameX, settings.Name(X))
	assert.Equal(t, DefaultNameO, settings.Name(O))
	assert.False(t, settings.IsVsAI())
}
