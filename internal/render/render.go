package render

import (
	"fmt"
	"strings"

	"github.com/muesli/termenv"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

const emptySymbol = "·"

// Renderer draws session views for a terminal.
type Renderer struct {
	output *termenv.Output
	theme  Theme
}

func New(output *termenv.Output, theme Theme) *Renderer {
	return &Renderer{
		output: output,
		theme:  theme,
	}
}

func (that *Renderer) SetTheme(theme Theme) {
	that.theme = theme
}

func (that *Renderer) Theme() Theme {
	return that.theme
}

func (that *Renderer) Title() string {
	return that.output.String("TIC TAC TOE").Foreground(that.output.Color(that.theme.Accent)).Bold().String()
}

// Board draws the grid with 1-based row and column labels; the winning line is highlighted.
func (that *Renderer) Board(view entity.SessionView) string {
	winning := make(map[entity.Position]bool)
	if view.Outcome.Line != nil {
		for _, position := range view.Outcome.Line {
			winning[position] = true
		}
	}

	var builder strings.Builder
	builder.WriteString("    1   2   3\n")

	for row := range entity.BoardSize {
		cells := make([]string, 0, entity.BoardSize)
		for col := range entity.BoardSize {
			cells = append(cells, that.cell(view.Board[row][col], winning[entity.Position{Row: row, Col: col}]))
		}

		fmt.Fprintf(&builder, "%d   %s\n", row+1, strings.Join(cells, " | "))
		if row < entity.BoardSize-1 {
			builder.WriteString("   ---+---+---\n")
		}
	}

	return builder.String()
}

// Status is the one-line state of the round.
func (that *Renderer) Status(view entity.SessionView) string {
	var text string

	switch view.Outcome.Status {
	case entity.StatusWin:
		text = fmt.Sprintf("%s wins!", view.Settings.Name(view.Outcome.Winner))
	case entity.StatusDraw:
		text = "It's a draw!"
	default:
		text = fmt.Sprintf("%s's turn (%s)", view.Settings.Name(view.Turn), view.Turn)
	}

	return that.output.String(text).Foreground(that.output.Color(that.theme.Fg)).Bold().String()
}

func (that *Renderer) Score(view entity.SessionView) string {
	return fmt.Sprintf("%s: %d    %s: %d    Draws: %d",
		that.mark(entity.X), view.Score.XWins,
		that.mark(entity.O), view.Score.OWins,
		view.Score.Draws)
}

// View is the full screen: title, board, status and score.
func (that *Renderer) View(view entity.SessionView) string {
	return strings.Join([]string{that.Title(), "", that.Board(view), that.Status(view), that.Score(view)}, "\n")
}

func (that *Renderer) cell(mark entity.Mark, highlight bool) string {
	if mark == entity.Empty {
		return emptySymbol
	}

	style := that.output.String(string(mark)).Foreground(that.output.Color(that.markColor(mark))).Bold()
	if highlight {
		style = style.Background(that.output.Color(that.theme.WinBg))
	}

	return style.String()
}

func (that *Renderer) mark(mark entity.Mark) string {
	return that.output.String(string(mark)).Foreground(that.output.Color(that.markColor(mark))).String()
}

func (that *Renderer) markColor(mark entity.Mark) string {
	if mark == entity.X {
		return that.theme.XColor
	}
	return that.theme.OColor
}
