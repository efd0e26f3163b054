package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// FileStatsRepository keeps the statistics in a single JSON document on disk.
type FileStatsRepository struct {
	mu    sync.Mutex
	path  string
	limit int
}

func NewFileStatsRepository(path string, limit int) *FileStatsRepository {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}

	return &FileStatsRepository{
		path:  path,
		limit: limit,
	}
}

func (that *FileStatsRepository) Record(_ context.Context, record entity.GameRecord) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	stats, err := that.load()
	if err != nil {
		return err
	}

	stats.Apply(record, that.limit)

	data, err := json.MarshalIndent(stats, "", "  ")
	if err != nil {
		return fmt.Errorf("could not marshal stats: %w", err)
	}

	if err = os.WriteFile(that.path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write stats file: %w", err)
	}

	return nil
}

func (that *FileStatsRepository) Get(_ context.Context) (*entity.Stats, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.load()
}

// load treats a missing file as empty statistics.
func (that *FileStatsRepository) load() (*entity.Stats, error) {
	stats := &entity.Stats{History: []entity.GameRecord{}}

	data, err := os.ReadFile(that.path)
	if errors.Is(err, os.ErrNotExist) {
		return stats, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to read stats file: %w", err)
	}

	if err = json.Unmarshal(data, stats); err != nil {
		return nil, fmt.Errorf("failed to unmarshal stats: %w", err)
	}

	return stats, nil
}
