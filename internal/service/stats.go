package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

const noGamesText = "No games played yet!"

// StatsRepository persists the counters and the capped history.
type StatsRepository interface {
	Record(ctx context.Context, record entity.GameRecord) error
	Get(ctx context.Context) (*entity.Stats, error)
}

// StatsService records finished rounds and reports the aggregate statistics.
type StatsService struct {
	logger *slog.Logger
	repo   StatsRepository

	now func() time.Time
}

func NewStatsService(logger *slog.Logger, repo StatsRepository) *StatsService {
	return &StatsService{
		logger: logger.With("component", "stats"),
		repo:   repo,
		now:    time.Now,
	}
}

// RecordGame stores one finished round. winner is entity.Empty for a draw.
func (that *StatsService) RecordGame(ctx context.Context, winner entity.Mark, playerX, playerO string) error {
	record := entity.NewGameRecord(that.now().UTC(), winner, playerX, playerO)

	if err := that.repo.Record(ctx, record); err != nil {
		return fmt.Errorf("failed to record game: %w", err)
	}

	that.logger.Debug("game recorded", "winner", record.Winner, "playerX", playerX, "playerO", playerO)

	return nil
}

func (that *StatsService) GetStats(ctx context.Context) (*entity.Stats, error) {
	stats, err := that.repo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get stats: %w", err)
	}

	return stats, nil
}

// Summary renders the counters with their share of all games.
func (that *StatsService) Summary(ctx context.Context) (string, error) {
	stats, err := that.GetStats(ctx)
	if err != nil {
		return "", err
	}

	return FormatSummary(stats), nil
}

func FormatSummary(stats *entity.Stats) string {
	total := stats.GamesPlayed
	if total == 0 {
		return noGamesText
	}

	percent := func(count int) float64 {
		return float64(count) / float64(total) * 100
	}

	var builder strings.Builder
	builder.WriteString("Game Statistics\n")
	builder.WriteString(strings.Repeat("━", 19) + "\n")
	fmt.Fprintf(&builder, "Total Games: %d\n", total)
	fmt.Fprintf(&builder, "X Wins: %d (%.1f%%)\n", stats.XWins, percent(stats.XWins))
	fmt.Fprintf(&builder, "O Wins: %d (%.1f%%)\n", stats.OWins, percent(stats.OWins))
	fmt.Fprintf(&builder, "Draws: %d (%.1f%%)", stats.Draws, percent(stats.Draws))

	return builder.String()
}
