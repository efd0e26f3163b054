package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

const (
	StatsBackendRedis = "redis"
	StatsBackendFile  = "file"
)

type Config struct {
	LogLevel   string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort   string `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	SocketPort string `yaml:"socket-port" env:"SOCKET_PORT" env-default:"8080"`
	Redis      Redis  `yaml:"redis"`
	Game       Game   `yaml:"game"`
	Stats      Stats  `yaml:"stats"`
}

type Redis struct {
	Host string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
}

type Game struct {
	Mode       string        `yaml:"mode" env:"GAME_MODE" env-default:"two_player"`
	Difficulty string        `yaml:"difficulty" env:"GAME_DIFFICULTY" env-default:"medium"`
	PlayerX    string        `yaml:"player-x" env:"GAME_PLAYER_X" env-default:"Player X"`
	PlayerO    string        `yaml:"player-o" env:"GAME_PLAYER_O" env-default:"Player O"`
	AIMark     string        `yaml:"ai-mark" env:"GAME_AI_MARK" env-default:"O"`
	AIDelay    time.Duration `yaml:"ai-delay" env:"GAME_AI_DELAY" env-default:"500ms"`
}

type Stats struct {
	Backend      string `yaml:"backend" env:"STATS_BACKEND" env-default:"redis"`
	FilePath     string `yaml:"file-path" env:"STATS_FILE_PATH" env-default:"game_stats.json"`
	HistoryLimit int    `yaml:"history-limit" env:"STATS_HISTORY_LIMIT" env-default:"50"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

// Load reads path and applies environment overrides.
func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	return config, nil
}

// LoadEnv builds the configuration from defaults and environment variables only.
func LoadEnv() (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadEnv(config); err != nil {
		return nil, fmt.Errorf("unable to read environment: %w", err)
	}

	return config, nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}

// Settings converts the game section into session settings.
func (that *Game) Settings() (entity.Settings, error) {
	mode, err := entity.ParseGameMode(that.Mode)
	if err != nil {
		return entity.Settings{}, fmt.Errorf("invalid game mode: %w", err)
	}

	difficulty, err := entity.ParseDifficulty(that.Difficulty)
	if err != nil {
		return entity.Settings{}, fmt.Errorf("invalid difficulty: %w", err)
	}

	aiMark, err := entity.ParseMark(that.AIMark)
	if err != nil {
		return entity.Settings{}, fmt.Errorf("invalid ai mark: %w", err)
	}

	return entity.Settings{
		Mode:       mode,
		Difficulty: difficulty,
		PlayerX:    that.PlayerX,
		PlayerO:    that.PlayerO,
		AIMark:     aiMark,
	}, nil
}

// ParseLogLevel maps the log-level setting to a slog level; unknown values mean info.
func ParseLogLevel(value string) slog.Level {
	switch value {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
