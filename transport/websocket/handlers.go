package websocket

import (
	"context"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

func (that *Server) handleConnect(ctx context.Context, c *client, msg *Message) error {
	log := that.logger.With("method", "handleConnect")

	var req connectRequest
	if err := decodePayload(msg.Payload, &req); err != nil {
		return c.sendError(msg.Action, err)
	}

	view, err := that.gameUseCase.Connect(ctx, req.SessionID)
	if err != nil {
		log.Error("failed to connect session", "error", err)
		return c.sendError(msg.Action, err)
	}

	c.sessionID = view.ID

	log.Info("successfully connected session", "sessionID", view.ID)

	return c.sendSession(msg.Action, view, nil)
}

func (that *Server) handleNewGame(ctx context.Context, c *client, msg *Message) error {
	if c.sessionID == "" {
		return c.sendError(msg.Action, ErrNotConnected)
	}

	var req newGameRequest
	if err := decodePayload(msg.Payload, &req); err != nil {
		return c.sendError(msg.Action, err)
	}

	settings, err := req.settings()
	if err != nil {
		return c.sendError(msg.Action, err)
	}

	view, err := that.gameUseCase.NewGame(ctx, c.sessionID, settings)

	return c.sendSession(msg.Action, view, err)
}

func (that *Server) handleTurn(ctx context.Context, c *client, msg *Message) error {
	if c.sessionID == "" {
		return c.sendError(msg.Action, ErrNotConnected)
	}

	var req turnRequest
	if err := decodePayload(msg.Payload, &req); err != nil {
		return c.sendError(msg.Action, err)
	}

	if req.Row == nil || req.Col == nil {
		return c.sendError(msg.Action, ErrMissingPosition)
	}

	view, err := that.gameUseCase.MakeTurn(ctx, c.sessionID, *req.Row, *req.Col)

	return c.sendSession(msg.Action, view, err)
}

func (that *Server) handleUndo(ctx context.Context, c *client, msg *Message) error {
	return that.sessionAction(ctx, c, msg, that.gameUseCase.Undo)
}

func (that *Server) handleNewRound(ctx context.Context, c *client, msg *Message) error {
	return that.sessionAction(ctx, c, msg, that.gameUseCase.NewRound)
}

func (that *Server) handleResetAll(ctx context.Context, c *client, msg *Message) error {
	return that.sessionAction(ctx, c, msg, that.gameUseCase.ResetAll)
}

func (that *Server) handleMode(ctx context.Context, c *client, msg *Message) error {
	if c.sessionID == "" {
		return c.sendError(msg.Action, ErrNotConnected)
	}

	var req modeRequest
	if err := decodePayload(msg.Payload, &req); err != nil {
		return c.sendError(msg.Action, err)
	}

	mode, err := entity.ParseGameMode(req.Mode)
	if err != nil {
		return c.sendError(msg.Action, err)
	}

	view, err := that.gameUseCase.SetMode(ctx, c.sessionID, mode)

	return c.sendSession(msg.Action, view, err)
}

func (that *Server) handleDifficulty(ctx context.Context, c *client, msg *Message) error {
	if c.sessionID == "" {
		return c.sendError(msg.Action, ErrNotConnected)
	}

	var req difficultyRequest
	if err := decodePayload(msg.Payload, &req); err != nil {
		return c.sendError(msg.Action, err)
	}

	difficulty, err := entity.ParseDifficulty(req.Difficulty)
	if err != nil {
		return c.sendError(msg.Action, err)
	}

	view, err := that.gameUseCase.SetDifficulty(ctx, c.sessionID, difficulty)

	return c.sendSession(msg.Action, view, err)
}

func (that *Server) handleNames(ctx context.Context, c *client, msg *Message) error {
	if c.sessionID == "" {
		return c.sendError(msg.Action, ErrNotConnected)
	}

	var req namesRequest
	if err := decodePayload(msg.Payload, &req); err != nil {
		return c.sendError(msg.Action, err)
	}

	view, err := that.gameUseCase.SetNames(ctx, c.sessionID, req.PlayerX, req.PlayerO)

	return c.sendSession(msg.Action, view, err)
}

func (that *Server) handleStats(ctx context.Context, c *client, msg *Message) error {
	stats, err := that.gameUseCase.GetStats(ctx)
	if err != nil {
		that.logger.Error("failed to get stats", "error", err)
		return c.sendError(msg.Action, err)
	}

	return c.send(msg.Action, ResponsePayload{Stats: stats})
}

func (that *Server) sessionAction(
	ctx context.Context,
	c *client,
	msg *Message,
	action func(ctx context.Context, id string) (entity.SessionView, error),
) error {
	if c.sessionID == "" {
		return c.sendError(msg.Action, ErrNotConnected)
	}

	view, err := action(ctx, c.sessionID)

	return c.sendSession(msg.Action, view, err)
}

func (that newGameRequest) settings() (entity.Settings, error) {
	settings := entity.Settings{
		PlayerX: that.PlayerX,
		PlayerO: that.PlayerO,
	}

	if that.Mode != "" {
		mode, err := entity.ParseGameMode(that.Mode)
		if err != nil {
			return entity.Settings{}, fmt.Errorf("invalid mode: %w", err)
		}
		settings.Mode = mode
	}

	if that.Difficulty != "" {
		difficulty, err := entity.ParseDifficulty(that.Difficulty)
		if err != nil {
			return entity.Settings{}, fmt.Errorf("invalid difficulty: %w", err)
		}
		settings.Difficulty = difficulty
	}

	if that.AIMark != "" {
		mark, err := entity.ParseMark(that.AIMark)
		if err != nil {
			return entity.Settings{}, fmt.Errorf("invalid ai mark: %w", err)
		}
		settings.AIMark = mark
	}

	return settings, nil
}
