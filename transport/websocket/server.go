package websocket

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

const shutdownTimeout = 5 * time.Second

type gameUseCase interface {
	Connect(ctx context.Context, id string) (entity.SessionView, error)
	NewGame(ctx context.Context, id string, settings entity.Settings) (entity.SessionView, error)

	MakeTurn(ctx context.Context, id string, row, col int) (entity.SessionView, error)
	Undo(ctx context.Context, id string) (entity.SessionView, error)
	NewRound(ctx context.Context, id string) (entity.SessionView, error)
	ResetAll(ctx context.Context, id string) (entity.SessionView, error)

	SetMode(ctx context.Context, id string, mode entity.GameMode) (entity.SessionView, error)
	SetDifficulty(ctx context.Context, id string, difficulty entity.Difficulty) (entity.SessionView, error)
	SetNames(ctx context.Context, id, playerX, playerO string) (entity.SessionView, error)

	GetStats(ctx context.Context) (*entity.Stats, error)
	Leave(id string)
}

type handlerFunc func(ctx context.Context, client *client, msg *Message) error

type Server struct {
	logger      *slog.Logger
	gameUseCase gameUseCase
	upgrader    websocket.Upgrader

	handlers map[string]handlerFunc
}

func New(logger *slog.Logger, gameUseCase gameUseCase) *Server {
	server := &Server{
		logger:      logger.With("component", "websocket"),
		gameUseCase: gameUseCase,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(_ *http.Request) bool { return true },
		},
	}

	server.handlers = map[string]handlerFunc{
		ActionConnect:    server.handleConnect,
		ActionNewGame:    server.handleNewGame,
		ActionTurn:       server.handleTurn,
		ActionUndo:       server.handleUndo,
		ActionNewRound:   server.handleNewRound,
		ActionResetAll:   server.handleResetAll,
		ActionMode:       server.handleMode,
		ActionDifficulty: server.handleDifficulty,
		ActionNames:      server.handleNames,
		ActionStats:      server.handleStats,
	}

	return server
}

// Handler exposes the websocket endpoint so it can be mounted or tested with httptest.
func (that *Server) Handler(ctx context.Context) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		that.upgradeToWebSocket(ctx, w, r)
	})

	return mux
}

// Start - starts WebSocket server and stops it when ctx is done.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           that.Handler(ctx),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       30 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			that.logger.Error("failed to shutdown server", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// upgradeToWebSocket - upgrades the connection to WebSocket.
func (that *Server) upgradeToWebSocket(ctx context.Context, writer http.ResponseWriter, req *http.Request) {
	log := that.logger.With("method", "upgradeConnection")

	conn, err := that.upgrader.Upgrade(writer, req, nil)
	if err != nil {
		log.Error("failed to upgrade connection", "error", err)
		return
	}

	defer conn.Close()

	log.Info("WebSocket connection established", "remote", conn.RemoteAddr().String())

	c := &client{conn: conn}
	if err = that.handleMessages(ctx, c); err != nil {
		log.Error("error handling messages", "error", err)
	}

	if c.sessionID != "" {
		that.gameUseCase.Leave(c.sessionID)
	}
}

// handleMessages - processes messages from the client until it disconnects.
func (that *Server) handleMessages(ctx context.Context, c *client) error {
	log := that.logger.With("method", "handleMessages")

	for {
		var message Message
		if err := c.conn.ReadJSON(&message); err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return nil
			}

			return fmt.Errorf("failed to read message: %w", err)
		}

		handler, ok := that.handlers[message.Action]
		if !ok {
			log.Warn("unknown action", "action", message.Action)

			if err := c.sendError(message.Action, fmt.Errorf("%w: %s", ErrUnknownAction, message.Action)); err != nil {
				return err
			}

			continue
		}

		if err := handler(ctx, c, &message); err != nil {
			log.Error("error processing message", "action", message.Action, "error", err)
		}
	}
}
