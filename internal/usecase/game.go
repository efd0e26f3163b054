package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/service"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

var ErrInvalidSessionID = errors.New("invalid session id")

type sessionRepo interface {
	CreateOrUpdate(ctx context.Context, record *entity.SessionRecord) error
	GetByID(ctx context.Context, id string) (*entity.SessionRecord, error)
	DeleteByID(ctx context.Context, id string) error
}

type statsService interface {
	RecordGame(ctx context.Context, winner entity.Mark, playerX, playerO string) error
	GetStats(ctx context.Context) (*entity.Stats, error)
}

// table is one live session with its computer opponent. mu serialises every call on it.
type table struct {
	mu      sync.Mutex
	session *tictactoe.Session
	bot     *service.Bot
}

type Options struct {
	Defaults entity.Settings
	// AIDelay is a cosmetic pause before the computer answers a human move.
	AIDelay   time.Duration
	NewRandom func() service.Random
}

// GameUseCase drives sessions on behalf of the presentation layer.
type GameUseCase struct {
	logger *slog.Logger

	sessionRepo sessionRepo
	stats       statsService

	defaults  entity.Settings
	aiDelay   time.Duration
	newRandom func() service.Random

	mu     sync.Mutex
	tables map[string]*table
}

func NewGameUseCase(logger *slog.Logger, sessionRepo sessionRepo, stats statsService, opts Options) *GameUseCase {
	if opts.NewRandom == nil {
		opts.NewRandom = service.NewTimeRandom
	}

	return &GameUseCase{
		logger:      logger.With("component", "game"),
		sessionRepo: sessionRepo,
		stats:       stats,
		defaults:    NormalizeSettings(opts.Defaults),
		aiDelay:     opts.AIDelay,
		newRandom:   opts.NewRandom,
		tables:      make(map[string]*table),
	}
}

// Connect returns the session of id, restoring it from storage or creating it.
// An empty id creates a session with a fresh id. A pending computer move is played.
func (that *GameUseCase) Connect(ctx context.Context, id string) (entity.SessionView, error) {
	if id == "" {
		id = uuid.NewString()
	} else if _, err := uuid.Parse(id); err != nil {
		return entity.SessionView{}, fmt.Errorf("%w: %s", ErrInvalidSessionID, id)
	}

	return that.withTable(ctx, id, func(tbl *table) error {
		return that.playAI(ctx, tbl, false)
	})
}

// NewGame replaces the session of id with a fresh one using settings.
func (that *GameUseCase) NewGame(ctx context.Context, id string, settings entity.Settings) (entity.SessionView, error) {
	if id == "" {
		id = uuid.NewString()
	}

	tbl, err := that.newTable(id, NormalizeSettings(settings), entity.Score{})
	if err != nil {
		return entity.SessionView{}, err
	}

	that.mu.Lock()
	that.tables[id] = tbl
	that.mu.Unlock()

	return that.withTable(ctx, id, func(tbl *table) error {
		return that.playAI(ctx, tbl, false)
	})
}

// MakeTurn applies a human move and, in vs-AI mode, the computer's answer.
// A computer move left pending by an interrupted call is played first.
func (that *GameUseCase) MakeTurn(ctx context.Context, id string, row, col int) (entity.SessionView, error) {
	return that.withTable(ctx, id, func(tbl *table) error {
		if err := that.playAI(ctx, tbl, false); err != nil {
			return err
		}

		if _, err := tbl.session.ApplyMove(ctx, row, col); err != nil {
			return fmt.Errorf("failed to make turn: %w", err)
		}

		return that.playAI(ctx, tbl, true)
	})
}

// Undo takes back moves; when that leaves the computer to move, it plays again.
func (that *GameUseCase) Undo(ctx context.Context, id string) (entity.SessionView, error) {
	return that.withTable(ctx, id, func(tbl *table) error {
		popped, err := tbl.session.Undo()
		if err != nil {
			return fmt.Errorf("failed to undo: %w", err)
		}

		that.logger.Debug("moves undone", "sessionID", id, "count", len(popped))

		return that.playAI(ctx, tbl, false)
	})
}

func (that *GameUseCase) NewRound(ctx context.Context, id string) (entity.SessionView, error) {
	return that.withTable(ctx, id, func(tbl *table) error {
		tbl.session.NewRound()
		return that.playAI(ctx, tbl, false)
	})
}

func (that *GameUseCase) ResetAll(ctx context.Context, id string) (entity.SessionView, error) {
	return that.withTable(ctx, id, func(tbl *table) error {
		tbl.session.ResetAll()
		return that.playAI(ctx, tbl, false)
	})
}

func (that *GameUseCase) SetMode(ctx context.Context, id string, mode entity.GameMode) (entity.SessionView, error) {
	return that.withTable(ctx, id, func(tbl *table) error {
		var opponent tictactoe.MoveChooser
		if mode == entity.VsAIMode {
			opponent = tbl.bot
		}

		if err := tbl.session.SetMode(mode, opponent); err != nil {
			return fmt.Errorf("failed to set mode: %w", err)
		}

		return that.playAI(ctx, tbl, false)
	})
}

// SetDifficulty retunes the opponent without restarting the round.
func (that *GameUseCase) SetDifficulty(ctx context.Context, id string, difficulty entity.Difficulty) (entity.SessionView, error) {
	return that.withTable(ctx, id, func(tbl *table) error {
		tbl.session.SetDifficulty(difficulty)
		tbl.bot.SetDifficulty(difficulty)
		return nil
	})
}

func (that *GameUseCase) SetNames(ctx context.Context, id, playerX, playerO string) (entity.SessionView, error) {
	return that.withTable(ctx, id, func(tbl *table) error {
		tbl.session.SetNames(playerX, playerO)
		return nil
	})
}

func (that *GameUseCase) GetStats(ctx context.Context) (*entity.Stats, error) {
	stats, err := that.stats.GetStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get stats: %w", err)
	}

	return stats, nil
}

// Leave forgets the live session; its record stays in storage until it expires.
func (that *GameUseCase) Leave(id string) {
	that.mu.Lock()
	delete(that.tables, id)
	that.mu.Unlock()
}

// withTable runs fn under the table lock, persists the session and returns its view.
// The view is returned along with fn's error so the caller can re-render after a rejected move.
func (that *GameUseCase) withTable(ctx context.Context, id string, fn func(tbl *table) error) (entity.SessionView, error) {
	log := that.logger.With("method", "withTable", "sessionID", id)

	tbl, err := that.getOrCreateTable(ctx, id)
	if err != nil {
		return entity.SessionView{}, err
	}

	tbl.mu.Lock()
	defer tbl.mu.Unlock()

	fnErr := fn(tbl)

	if err = that.saveTable(ctx, tbl); err != nil {
		log.Error("failed to save session", "error", err)
	}

	return tbl.session.View(), fnErr
}

// playAI lets the computer move when it is its turn. delay is applied only after a human move.
func (that *GameUseCase) playAI(ctx context.Context, tbl *table, delay bool) error {
	if !tbl.session.IsAITurn() {
		return nil
	}

	if delay && that.aiDelay > 0 {
		timer := time.NewTimer(that.aiDelay)
		defer timer.Stop()

		select {
		case <-timer.C:
		case <-ctx.Done():
			return fmt.Errorf("opponent move canceled: %w", ctx.Err())
		}
	}

	position, outcome, err := tbl.session.PlayAI(ctx)
	if err != nil {
		return fmt.Errorf("bot failed to make turn: %w", err)
	}

	that.logger.Debug("opponent moved",
		"sessionID", tbl.session.ID(), "row", position.Row, "col", position.Col, "status", outcome.Status)

	return nil
}

// getOrCreateTable loads a missing table without holding the registry lock; when two
// callers race, the first table registered wins.
func (that *GameUseCase) getOrCreateTable(ctx context.Context, id string) (*table, error) {
	if tbl, ok := that.lookupTable(id); ok {
		return tbl, nil
	}

	loaded, err := that.loadTable(ctx, id)
	if err != nil {
		return nil, err
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	if tbl, ok := that.tables[id]; ok {
		return tbl, nil
	}

	that.tables[id] = loaded

	return loaded, nil
}

func (that *GameUseCase) lookupTable(id string) (*table, bool) {
	that.mu.Lock()
	defer that.mu.Unlock()

	tbl, ok := that.tables[id]

	return tbl, ok
}

func (that *GameUseCase) loadTable(ctx context.Context, id string) (*table, error) {
	if that.sessionRepo == nil {
		return that.newTable(id, that.defaults, entity.Score{})
	}

	record, err := that.sessionRepo.GetByID(ctx, id)
	if errors.Is(err, apperror.ErrSessionNotFound) {
		return that.newTable(id, that.defaults, entity.Score{})
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	record.Settings = NormalizeSettings(record.Settings)
	bot := service.NewBot(record.Settings.Difficulty, record.Settings.AIMark, that.newRandom())

	session, err := tictactoe.Restore(that.logger, *record, opponentFor(record.Settings, bot), that.recorder())
	if err != nil {
		return nil, fmt.Errorf("failed to restore session: %w", err)
	}

	return &table{session: session, bot: bot}, nil
}

func (that *GameUseCase) newTable(id string, settings entity.Settings, score entity.Score) (*table, error) {
	bot := service.NewBot(settings.Difficulty, settings.AIMark, that.newRandom())

	session, err := tictactoe.Restore(that.logger, entity.SessionRecord{ID: id, Settings: settings, Score: score},
		opponentFor(settings, bot), that.recorder())
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return &table{session: session, bot: bot}, nil
}

func (that *GameUseCase) saveTable(ctx context.Context, tbl *table) error {
	if that.sessionRepo == nil {
		return nil
	}

	record := tbl.session.Record()
	if err := that.sessionRepo.CreateOrUpdate(ctx, &record); err != nil {
		return fmt.Errorf("failed to update session: %w", err)
	}

	return nil
}

// recorder keeps a nil service from becoming a non-nil interface.
func (that *GameUseCase) recorder() tictactoe.StatsRecorder {
	if that.stats == nil {
		return nil
	}

	return that.stats
}

func opponentFor(settings entity.Settings, bot *service.Bot) tictactoe.MoveChooser {
	if !settings.IsVsAI() {
		return nil
	}

	return bot
}

// NormalizeSettings fills unset fields from entity.DefaultSettings and names the computer player.
func NormalizeSettings(settings entity.Settings) entity.Settings {
	defaults := entity.DefaultSettings()

	if settings.Mode == "" {
		settings.Mode = defaults.Mode
	}

	if settings.Difficulty == "" {
		settings.Difficulty = defaults.Difficulty
	}

	if !settings.AIMark.IsPlayer() {
		settings.AIMark = defaults.AIMark
	}

	if settings.IsVsAI() && settings.Name(settings.AIMark) == "" {
		if settings.AIMark == entity.X {
			settings.PlayerX = entity.DefaultAIName
		} else {
			settings.PlayerO = entity.DefaultAIName
		}
	}

	if settings.PlayerX == "" {
		settings.PlayerX = defaults.PlayerX
	}

	if settings.PlayerO == "" {
		settings.PlayerO = defaults.PlayerO
	}

	return settings
}
