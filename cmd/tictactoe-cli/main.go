package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/muesli/termenv"

	"github.com/rocketscienceinc/tictactoe-engine/internal/config"
	"github.com/rocketscienceinc/tictactoe-engine/internal/console"
	"github.com/rocketscienceinc/tictactoe-engine/internal/render"
	"github.com/rocketscienceinc/tictactoe-engine/internal/repository"
	"github.com/rocketscienceinc/tictactoe-engine/internal/service"
	"github.com/rocketscienceinc/tictactoe-engine/internal/usecase"
)

func main() {
	configPath := flag.String("config", "", "path to config.yml; environment only when empty")
	themeName := flag.String("theme", render.Dark.Name, "dark, light or retro")
	flag.Parse()

	if err := run(*configPath, *themeName); err != nil {
		fmt.Fprintf(os.Stderr, "tictactoe: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath, themeName string) error {
	conf, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: config.ParseLogLevel(conf.LogLevel)}))

	theme, err := render.ParseTheme(themeName)
	if err != nil {
		return err
	}

	defaults, err := conf.Game.Settings()
	if err != nil {
		return fmt.Errorf("invalid game config: %w", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// the terminal client always keeps its statistics in the local file
	statsRepo := repository.NewFileStatsRepository(conf.Stats.FilePath, conf.Stats.HistoryLimit)
	statsService := service.NewStatsService(logger, statsRepo)

	gameUseCase := usecase.NewGameUseCase(logger, nil, statsService, usecase.Options{
		Defaults: defaults,
		AIDelay:  conf.Game.AIDelay,
	})

	renderer := render.New(termenv.NewOutput(os.Stdout), theme)

	return console.New(logger, gameUseCase, renderer, os.Stdin, os.Stdout).Run(ctx)
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.LoadEnv()
	}

	return config.Load(path)
}
