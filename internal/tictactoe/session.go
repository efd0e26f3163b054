package tictactoe

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// MoveChooser picks a cell for the computer opponent. It receives a copy of the board.
type MoveChooser interface {
	ChooseMove(board entity.Board) entity.Position
}

// StatsRecorder is notified once per finished round. winner is entity.Empty on a draw.
type StatsRecorder interface {
	RecordGame(ctx context.Context, winner entity.Mark, playerX, playerO string) error
}

// State is the phase of a session.
type State string

const (
	StateAwaitingMove State = "awaiting_move"
	StateRoundOver    State = "round_over"
)

// Session is the state machine of one table: a board, its ledger and the scoreboard.
// It is not safe for concurrent use; the owner serialises calls.
type Session struct {
	logger *slog.Logger

	id       string
	settings entity.Settings
	board    entity.Board
	ledger   MoveLedger
	score    entity.Score

	opponent MoveChooser
	recorder StatsRecorder
}

// NewSession starts a session in AwaitingMove(X). opponent may be nil in two-player mode,
// recorder may be nil when nothing is tracked.
func NewSession(logger *slog.Logger, id string, settings entity.Settings, opponent MoveChooser, recorder StatsRecorder) (*Session, error) {
	if settings.IsVsAI() && opponent == nil {
		return nil, apperror.ErrNoOpponent
	}

	if settings.IsVsAI() && !settings.AIMark.IsPlayer() {
		settings.AIMark = entity.O
	}

	return &Session{
		logger:   logger.With("component", "session", "sessionID", id),
		id:       id,
		settings: settings,
		opponent: opponent,
		recorder: recorder,
	}, nil
}

// Restore rebuilds a session from its persisted record by replaying the moves.
// The stats recorder is not notified for a round that was already over.
func Restore(logger *slog.Logger, record entity.SessionRecord, opponent MoveChooser, recorder StatsRecorder) (*Session, error) {
	session, err := NewSession(logger, record.ID, record.Settings, opponent, recorder)
	if err != nil {
		return nil, err
	}

	for _, move := range record.Moves {
		if session.State() == StateRoundOver {
			return nil, fmt.Errorf("failed to restore session %s: move %+v: %w", record.ID, move, apperror.ErrRoundAlreadyOver)
		}

		if move.Mark != session.Turn() {
			return nil, fmt.Errorf("failed to restore session %s: move %+v: %w", record.ID, move, apperror.ErrNotYourTurn)
		}

		if err = session.place(move.Row, move.Col, move.Mark); err != nil {
			return nil, fmt.Errorf("failed to restore session %s: %w", record.ID, err)
		}
	}

	session.score = record.Score

	return session, nil
}

func (that *Session) ID() string {
	return that.id
}

func (that *Session) Settings() entity.Settings {
	return that.settings
}

// Turn is derived from the ledger length so it can never disagree with the board.
func (that *Session) Turn() entity.Mark {
	return nextMark(that.ledger.Len())
}

func (that *Session) Outcome() entity.Outcome {
	return Evaluate(that.board)
}

func (that *Session) State() State {
	if that.Outcome().IsTerminal() {
		return StateRoundOver
	}

	return StateAwaitingMove
}

func (that *Session) Board() entity.Board {
	return that.board.Snapshot()
}

func (that *Session) Moves() []entity.Move {
	return that.ledger.Moves()
}

func (that *Session) Score() entity.Score {
	return that.score
}

// IsAITurn reports whether the computer opponent is expected to move next.
func (that *Session) IsAITurn() bool {
	return that.settings.IsVsAI() && that.State() == StateAwaitingMove && that.Turn() == that.settings.AIMark
}

// ApplyMove places the mark whose turn it is.
func (that *Session) ApplyMove(ctx context.Context, row, col int) (entity.Outcome, error) {
	return that.ApplyMoveAs(ctx, that.Turn(), row, col)
}

// ApplyMoveAs places mark and rejects it when mark is not the one to move.
func (that *Session) ApplyMoveAs(ctx context.Context, mark entity.Mark, row, col int) (entity.Outcome, error) {
	if that.State() == StateRoundOver {
		return that.Outcome(), apperror.ErrRoundAlreadyOver
	}

	if mark != that.Turn() {
		return that.Outcome(), fmt.Errorf("%w: %s to move", apperror.ErrNotYourTurn, that.Turn())
	}

	if err := that.place(row, col, mark); err != nil {
		return that.Outcome(), fmt.Errorf("invalid move: %w", err)
	}

	outcome := that.Outcome()
	if outcome.IsTerminal() {
		that.finishRound(ctx, outcome)
	}

	return outcome, nil
}

// PlayAI asks the opponent for a move and applies it.
func (that *Session) PlayAI(ctx context.Context) (entity.Position, entity.Outcome, error) {
	if that.opponent == nil || !that.settings.IsVsAI() {
		return entity.Position{}, that.Outcome(), apperror.ErrNoOpponent
	}

	if !that.IsAITurn() {
		if that.State() == StateRoundOver {
			return entity.Position{}, that.Outcome(), apperror.ErrRoundAlreadyOver
		}

		return entity.Position{}, that.Outcome(), apperror.ErrNotYourTurn
	}

	position := that.opponent.ChooseMove(that.board.Snapshot())

	outcome, err := that.ApplyMoveAs(ctx, that.settings.AIMark, position.Row, position.Col)
	if err != nil {
		return position, outcome, fmt.Errorf("opponent failed to make turn: %w", err)
	}

	return position, outcome, nil
}

// Undo takes back the last move, or the last two in vs-AI mode so the human is to move again.
// Popping fewer moves than asked, including none, is not an error.
func (that *Session) Undo() ([]entity.Move, error) {
	if that.State() == StateRoundOver {
		return nil, apperror.ErrRoundAlreadyOver
	}

	count := 1
	if that.settings.IsVsAI() {
		count = 2
	}

	popped := that.ledger.UndoLast(count)
	for _, move := range popped {
		that.board.Clear(move.Row, move.Col)
	}

	return popped, nil
}

// NewRound empties the board and the ledger; the scoreboard is kept.
func (that *Session) NewRound() {
	that.board = entity.Board{}
	that.ledger.Reset()
}

// ResetAll zeroes the scoreboard and starts a new round.
func (that *Session) ResetAll() {
	that.score = entity.Score{}
	that.NewRound()
}

// SetMode switches between two-player and vs-AI play and starts a new round.
func (that *Session) SetMode(mode entity.GameMode, opponent MoveChooser) error {
	if mode == entity.VsAIMode && opponent == nil {
		return apperror.ErrNoOpponent
	}

	that.settings.Mode = mode

	switch mode {
	case entity.VsAIMode:
		if !that.settings.AIMark.IsPlayer() {
			that.settings.AIMark = entity.O
		}
		that.opponent = opponent
		that.setName(that.settings.AIMark, entity.DefaultAIName)
	case entity.TwoPlayerMode:
		that.opponent = nil
		if that.settings.AIMark == entity.X {
			that.setName(entity.X, entity.DefaultNameX)
		} else {
			that.setName(entity.O, entity.DefaultNameO)
		}
	}

	that.NewRound()

	return nil
}

// SetDifficulty only updates the settings; the opponent owner retunes the search.
func (that *Session) SetDifficulty(difficulty entity.Difficulty) {
	that.settings.Difficulty = difficulty
}

func (that *Session) SetNames(playerX, playerO string) {
	if playerX != "" {
		that.settings.PlayerX = playerX
	}

	if playerO != "" {
		that.settings.PlayerO = playerO
	}
}

func (that *Session) View() entity.SessionView {
	view := entity.SessionView{
		ID:        that.id,
		Board:     that.board.Snapshot(),
		Outcome:   that.Outcome(),
		Settings:  that.settings,
		Score:     that.score,
		MoveCount: that.ledger.Len(),
	}

	if !view.Outcome.IsTerminal() {
		view.Turn = that.Turn()
	}

	if last, ok := that.ledger.Last(); ok {
		view.LastMove = &last
	}

	return view
}

// Record is the persisted form of the session.
func (that *Session) Record() entity.SessionRecord {
	return entity.SessionRecord{
		ID:       that.id,
		Settings: that.settings,
		Moves:    that.ledger.Moves(),
		Score:    that.score,
	}
}

func (that *Session) place(row, col int, mark entity.Mark) error {
	if err := that.board.Place(row, col, mark); err != nil {
		return err
	}

	that.ledger.Record(entity.Move{Row: row, Col: col, Mark: mark})

	return nil
}

func (that *Session) setName(mark entity.Mark, name string) {
	if mark == entity.X {
		that.settings.PlayerX = name
		return
	}
	that.settings.PlayerO = name
}

func (that *Session) finishRound(ctx context.Context, outcome entity.Outcome) {
	log := that.logger.With("method", "finishRound")

	that.score.Add(outcome)

	log.Info("round over", "status", outcome.Status, "winner", outcome.Winner)

	if that.recorder == nil {
		return
	}

	if err := that.recorder.RecordGame(ctx, outcome.Winner, that.settings.PlayerX, that.settings.PlayerO); err != nil {
		log.Error("failed to record game", "error", err)
	}
}
