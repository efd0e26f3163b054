package render

import (
	"bytes"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

func newPlainRenderer() *Renderer {
	return New(termenv.NewOutput(&bytes.Buffer{}, termenv.WithProfile(termenv.Ascii)), Dark)
}

func TestRenderer_Board(t *testing.T) {
	// Given: X has won on the top row
	view := entity.SessionView{
		Board: entity.Board{
			{entity.X, entity.X, entity.X},
			{entity.O, entity.O, entity.Empty},
			{entity.Empty, entity.Empty, entity.Empty},
		},
		Outcome: entity.Outcome{
			Status: entity.StatusWin,
			Winner: entity.X,
			Line:   &entity.WinLines[0],
		},
		Settings: entity.DefaultSettings(),
	}

	// When: drawn without colours
	board := newPlainRenderer().Board(view)

	// Then: the grid is labelled from one and empty cells are dots
	expected := "    1   2   3\n" +
		"1   X | X | X\n" +
		"   ---+---+---\n" +
		"2   O | O | ·\n" +
		"   ---+---+---\n" +
		"3   · | · | ·\n"
	assert.Equal(t, expected, board)
}

func TestRenderer_Status(t *testing.T) {
	renderer := newPlainRenderer()
	settings := entity.DefaultSettings()

	tests := []struct {
		name     string
		view     entity.SessionView
		expected string
	}{
		{
			name:     "Turn",
			view:     entity.SessionView{Turn: entity.O, Settings: settings, Outcome: entity.Outcome{Status: entity.StatusInProgress}},
			expected: "Player O's turn (O)",
		},
		{
			name:     "Win",
			view:     entity.SessionView{Settings: settings, Outcome: entity.Outcome{Status: entity.StatusWin, Winner: entity.X}},
			expected: "Player X wins!",
		},
		{
			name:     "Draw",
			view:     entity.SessionView{Settings: settings, Outcome: entity.Outcome{Status: entity.StatusDraw}},
			expected: "It's a draw!",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, renderer.Status(tt.view))
		})
	}
}

func TestRenderer_View(t *testing.T) {
	renderer := newPlainRenderer()

	view := renderer.View(entity.SessionView{
		Turn:     entity.X,
		Settings: entity.DefaultSettings(),
		Outcome:  entity.Outcome{Status: entity.StatusInProgress},
		Score:    entity.Score{XWins: 2, OWins: 1, Draws: 3},
	})

	assert.Contains(t, view, "TIC TAC TOE")
	assert.Contains(t, view, "X: 2    O: 1    Draws: 3")
}

func TestRenderer_ColoursWinningLine(t *testing.T) {
	// Given: a true-colour terminal
	renderer := New(termenv.NewOutput(&bytes.Buffer{}, termenv.WithProfile(termenv.TrueColor)), Dark)

	view := entity.SessionView{
		Board:   entity.Board{{entity.X, entity.X, entity.X}},
		Outcome: entity.Outcome{Status: entity.StatusWin, Winner: entity.X, Line: &entity.WinLines[0]},
	}

	// When: drawn
	board := renderer.Board(view)

	// Then: escape sequences are emitted
	assert.Contains(t, board, "\x1b[")
}

func TestParseTheme(t *testing.T) {
	for _, theme := range []Theme{Dark, Light, Retro} {
		parsed, err := ParseTheme(" " + theme.Name + " ")

		require.NoError(t, err)
		assert.Equal(t, theme, parsed)
	}

	_, err := ParseTheme("neon")
	assert.ErrorIs(t, err, ErrUnknownTheme)

	renderer := newPlainRenderer()
	renderer.SetTheme(Retro)
	assert.Equal(t, Retro, renderer.Theme())
}
