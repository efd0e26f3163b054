package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

type statsService interface {
	GetStats(ctx context.Context) (*entity.Stats, error)
}

type Handlers struct {
	logger       *slog.Logger
	statsService statsService
}

func NewHandlers(logger *slog.Logger, statsService statsService) *Handlers {
	return &Handlers{
		logger:       logger.With("component", "rest"),
		statsService: statsService,
	}
}

func (that *Handlers) PingHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("pong")); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
}

// StatsHandler returns the aggregate statistics as JSON.
func (that *Handlers) StatsHandler(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "StatsHandler")

	stats, err := that.statsService.GetStats(r.Context())
	if err != nil {
		log.Error("failed to get stats", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err = json.NewEncoder(w).Encode(stats); err != nil {
		log.Error("failed to encode stats", "error", err)
	}
}
