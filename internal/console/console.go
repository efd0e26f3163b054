package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/render"
	"github.com/rocketscienceinc/tictactoe-engine/internal/service"
)

type gameUseCase interface {
	Connect(ctx context.Context, id string) (entity.SessionView, error)
	MakeTurn(ctx context.Context, id string, row, col int) (entity.SessionView, error)
	Undo(ctx context.Context, id string) (entity.SessionView, error)
	NewRound(ctx context.Context, id string) (entity.SessionView, error)
	ResetAll(ctx context.Context, id string) (entity.SessionView, error)
	SetMode(ctx context.Context, id string, mode entity.GameMode) (entity.SessionView, error)
	SetDifficulty(ctx context.Context, id string, difficulty entity.Difficulty) (entity.SessionView, error)
	SetNames(ctx context.Context, id, playerX, playerO string) (entity.SessionView, error)
	GetStats(ctx context.Context) (*entity.Stats, error)
}

// Console plays one local session over a line-oriented terminal.
type Console struct {
	logger   *slog.Logger
	game     gameUseCase
	renderer *render.Renderer

	in  io.Reader
	out io.Writer

	sessionID string
}

func New(logger *slog.Logger, game gameUseCase, renderer *render.Renderer, in io.Reader, out io.Writer) *Console {
	return &Console{
		logger:   logger.With("component", "console"),
		game:     game,
		renderer: renderer,
		in:       in,
		out:      out,
	}
}

// Run reads commands until quit, end of input or ctx is done.
func (that *Console) Run(ctx context.Context) error {
	view, err := that.game.Connect(ctx, "")
	if err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}

	that.sessionID = view.ID
	that.show(view)
	that.printf("type help for commands\n")

	scanner := bufio.NewScanner(that.in)
	for {
		that.printf("> ")

		if !scanner.Scan() {
			break
		}

		if ctx.Err() != nil {
			return nil
		}

		command, err := ParseCommand(scanner.Text())
		if errors.Is(err, ErrEmptyCommand) {
			continue
		}

		if err != nil {
			that.printf("%v\n", err)
			continue
		}

		if command.Kind == CommandQuit {
			return nil
		}

		if err = that.execute(ctx, command); err != nil {
			that.printf("%v\n", err)
		}
	}

	if err = scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	return nil
}

func (that *Console) execute(ctx context.Context, command Command) error {
	var (
		view entity.SessionView
		err  error
	)

	switch command.Kind {
	case CommandMove:
		view, err = that.game.MakeTurn(ctx, that.sessionID, command.Row, command.Col)
	case CommandUndo:
		view, err = that.game.Undo(ctx, that.sessionID)
	case CommandNewRound:
		view, err = that.game.NewRound(ctx, that.sessionID)
	case CommandResetAll:
		view, err = that.game.ResetAll(ctx, that.sessionID)
	case CommandMode:
		view, err = that.setMode(ctx, command.Args[0])
	case CommandDifficulty:
		view, err = that.setDifficulty(ctx, command.Args[0])
	case CommandNames:
		view, err = that.game.SetNames(ctx, that.sessionID, command.Args[0], command.Args[1])
	case CommandTheme:
		return that.setTheme(ctx, command.Args[0])
	case CommandStats:
		return that.showStats(ctx)
	case CommandHelp:
		that.printf("%s\n", helpText)
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownCommand, command.Kind)
	}

	if view.ID != "" {
		that.show(view)
	}

	return err
}

func (that *Console) setMode(ctx context.Context, value string) (entity.SessionView, error) {
	mode := entity.TwoPlayerMode
	switch value {
	case "ai", "vs_ai":
		mode = entity.VsAIMode
	case "two", "two_player":
	default:
		return entity.SessionView{}, fmt.Errorf("%w: %s", apperror.ErrUnknownMode, value)
	}

	return that.game.SetMode(ctx, that.sessionID, mode)
}

func (that *Console) setDifficulty(ctx context.Context, value string) (entity.SessionView, error) {
	difficulty, err := entity.ParseDifficulty(value)
	if err != nil {
		return entity.SessionView{}, err
	}

	return that.game.SetDifficulty(ctx, that.sessionID, difficulty)
}

func (that *Console) setTheme(ctx context.Context, value string) error {
	theme, err := render.ParseTheme(value)
	if err != nil {
		return err
	}

	that.renderer.SetTheme(theme)

	view, err := that.game.Connect(ctx, that.sessionID)
	if err != nil {
		return fmt.Errorf("failed to refresh session: %w", err)
	}

	that.show(view)

	return nil
}

func (that *Console) showStats(ctx context.Context) error {
	stats, err := that.game.GetStats(ctx)
	if err != nil {
		return fmt.Errorf("failed to load stats: %w", err)
	}

	that.printf("%s\n", service.FormatSummary(stats))

	return nil
}

func (that *Console) show(view entity.SessionView) {
	that.printf("\n%s\n", that.renderer.View(view))
}

func (that *Console) printf(format string, args ...any) {
	if _, err := fmt.Fprintf(that.out, format, args...); err != nil {
		that.logger.Error("failed to write output", "error", err)
	}
}
