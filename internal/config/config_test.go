package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

const sampleConfig = `log-level: debug
http-port: "9191"
socket-port: "8181"

redis:
  host: redis.local
  port: "6380"

game:
  mode: vs_ai
  difficulty: hard
  player-x: Ann
  ai-mark: O
  ai-delay: 250ms
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	t.Run("Reads the file and fills defaults", func(t *testing.T) {
		// Given: a config file without a stats section
		path := writeConfig(t, sampleConfig)

		// When: it is loaded
		conf, err := Load(path)

		// Then: file values win and missing values take their defaults
		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, "redis.local:6380", conf.Redis.GetRedisAddr())
		assert.Equal(t, 250*time.Millisecond, conf.Game.AIDelay)
		assert.Equal(t, "Player O", conf.Game.PlayerO)
		assert.Equal(t, StatsBackendRedis, conf.Stats.Backend)
		assert.Equal(t, 50, conf.Stats.HistoryLimit)
	})

	t.Run("Environment overrides the file", func(t *testing.T) {
		path := writeConfig(t, sampleConfig)
		t.Setenv("GAME_DIFFICULTY", "easy")
		t.Setenv("STATS_BACKEND", StatsBackendFile)

		conf, err := Load(path)

		require.NoError(t, err)
		assert.Equal(t, "easy", conf.Game.Difficulty)
		assert.Equal(t, StatsBackendFile, conf.Stats.Backend)
	})

	t.Run("Missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.yml"))

		assert.Error(t, err)
	})

	t.Run("MustLoad panics on a missing file", func(t *testing.T) {
		assert.Panics(t, func() {
			MustLoad(filepath.Join(t.TempDir(), "absent.yml"))
		})
	})
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("SOCKET_PORT", "7070")

	conf, err := LoadEnv()

	require.NoError(t, err)
	assert.Equal(t, "7070", conf.SocketPort)
	assert.Equal(t, "9090", conf.HTTPPort)
	assert.Equal(t, 500*time.Millisecond, conf.Game.AIDelay)
}

func TestGame_Settings(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		game := Game{Mode: "VS_AI", Difficulty: "hard", PlayerX: "Ann", PlayerO: "AI", AIMark: "x"}

		settings, err := game.Settings()

		require.NoError(t, err)
		assert.Equal(t, entity.Settings{
			Mode:       entity.VsAIMode,
			Difficulty: entity.HardDifficulty,
			PlayerX:    "Ann",
			PlayerO:    "AI",
			AIMark:     entity.X,
		}, settings)
	})

	t.Run("Invalid mode", func(t *testing.T) {
		game := Game{Mode: "online", Difficulty: "hard", AIMark: "O"}

		_, err := game.Settings()

		assert.ErrorIs(t, err, apperror.ErrUnknownMode)
	})

	t.Run("Invalid difficulty", func(t *testing.T) {
		game := Game{Mode: "two_player", Difficulty: "nightmare", AIMark: "O"}

		_, err := game.Settings()

		assert.ErrorIs(t, err, apperror.ErrUnknownDifficulty)
	})

	t.Run("Invalid mark", func(t *testing.T) {
		game := Game{Mode: "two_player", Difficulty: "easy", AIMark: "Z"}

		_, err := game.Settings()

		assert.ErrorIs(t, err, apperror.ErrUnknownMark)
	})
}

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLogLevel("debug"))
	assert.Equal(t, slog.LevelWarn, ParseLogLevel("warn"))
	assert.Equal(t, slog.LevelError, ParseLogLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLogLevel("verbose"))
}
