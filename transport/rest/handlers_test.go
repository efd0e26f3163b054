package rest

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

type mockStatsService struct {
	mock.Mock
}

func (that *mockStatsService) GetStats(ctx context.Context) (*entity.Stats, error) {
	args := that.Called(ctx)

	stats, _ := args.Get(0).(*entity.Stats)
	return stats, args.Error(1)
}

func newTestHandlers(stats statsService) *Handlers {
	return NewHandlers(slog.New(slog.NewTextHandler(io.Discard, nil)), stats)
}

func TestHandlers_Ping(t *testing.T) {
	recorder := httptest.NewRecorder()

	newTestHandlers(&mockStatsService{}).Routes().ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "pong", recorder.Body.String())
}

func TestHandlers_Stats(t *testing.T) {
	t.Run("Returns the statistics as JSON", func(t *testing.T) {
		// Given: a stats service with two games
		stats := &mockStatsService{}
		stats.On("GetStats", mock.Anything).Return(&entity.Stats{
			GamesPlayed: 2,
			XWins:       1,
			Draws:       1,
			History:     []entity.GameRecord{},
		}, nil).Once()

		recorder := httptest.NewRecorder()

		// When: GET /stats
		newTestHandlers(stats).Routes().ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/stats", nil))

		// Then: the counters are encoded
		require.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "application/json", recorder.Header().Get("Content-Type"))

		var body entity.Stats
		require.NoError(t, json.NewDecoder(recorder.Body).Decode(&body))
		assert.Equal(t, 2, body.GamesPlayed)
		assert.Equal(t, 1, body.Draws)
	})

	t.Run("Storage failure is a server error", func(t *testing.T) {
		stats := &mockStatsService{}
		stats.On("GetStats", mock.Anything).Return(nil, errors.New("redis down")).Once()

		recorder := httptest.NewRecorder()

		newTestHandlers(stats).Routes().ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/stats", nil))

		assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	})

	t.Run("Only GET is routed", func(t *testing.T) {
		recorder := httptest.NewRecorder()

		newTestHandlers(&mockStatsService{}).Routes().ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/stats", nil))

		assert.Equal(t, http.StatusMethodNotAllowed, recorder.Code)
	})
}
