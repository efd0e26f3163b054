package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

const (
	statsCountersKey = "stats:counters"
	statsHistoryKey  = "stats:history"

	fieldGamesPlayed = "games_played"
	fieldXWins       = "x_wins"
	fieldOWins       = "o_wins"
	fieldDraws       = "draws"

	DefaultHistoryLimit = 50
)

type StatsRepository struct {
	client *redis.Client
	limit  int
}

// NewStatsRepository keeps at most limit history entries; limit <= 0 means DefaultHistoryLimit.
func NewStatsRepository(client *redis.Client, limit int) *StatsRepository {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}

	return &StatsRepository{
		client: client,
		limit:  limit,
	}
}

// Record bumps the counters and appends the record to the capped history in one transaction.
func (that *StatsRepository) Record(ctx context.Context, record entity.GameRecord) error {
	recordJSON, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("could not marshal game record: %w", err)
	}

	_, err = that.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HIncrBy(ctx, statsCountersKey, fieldGamesPlayed, 1)
		pipe.HIncrBy(ctx, statsCountersKey, counterField(record.Winner), 1)
		pipe.RPush(ctx, statsHistoryKey, recordJSON)
		pipe.LTrim(ctx, statsHistoryKey, int64(-that.limit), -1)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to record game: %w", err)
	}

	return nil
}

func (that *StatsRepository) Get(ctx context.Context) (*entity.Stats, error) {
	counters, err := that.client.HGetAll(ctx, statsCountersKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get counters: %w", err)
	}

	stats := &entity.Stats{History: []entity.GameRecord{}}
	for field, target := range map[string]*int{
		fieldGamesPlayed: &stats.GamesPlayed,
		fieldXWins:       &stats.XWins,
		fieldOWins:       &stats.OWins,
		fieldDraws:       &stats.Draws,
	} {
		value, ok := counters[field]
		if !ok {
			continue
		}

		if *target, err = strconv.Atoi(value); err != nil {
			return nil, fmt.Errorf("invalid counter %s: %w", field, err)
		}
	}

	history, err := that.client.LRange(ctx, statsHistoryKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get history: %w", err)
	}

	for _, raw := range history {
		var record entity.GameRecord
		if err = json.Unmarshal([]byte(raw), &record); err != nil {
			return nil, fmt.Errorf("failed to unmarshal game record: %w", err)
		}

		stats.History = append(stats.History, record)
	}

	return stats, nil
}

func counterField(winner string) string {
	switch winner {
	case string(entity.X):
		return fieldXWins
	case string(entity.O):
		return fieldOWins
	default:
		return fieldDraws
	}
}
