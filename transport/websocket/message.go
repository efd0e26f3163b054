package websocket

import (
	"errors"
	"fmt"
	"math"
	"reflect"

	"github.com/gorilla/websocket"
	"github.com/mitchellh/mapstructure"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

const (
	ActionConnect    = "connect"
	ActionNewGame    = "game:new"
	ActionTurn       = "game:turn"
	ActionUndo       = "game:undo"
	ActionNewRound   = "game:round"
	ActionResetAll   = "game:reset"
	ActionMode       = "game:mode"
	ActionDifficulty = "game:difficulty"
	ActionNames      = "game:names"
	ActionStats      = "stats"
)

var (
	ErrUnknownAction   = errors.New("unknown action")
	ErrNotConnected    = errors.New("connect first")
	ErrMissingPosition = errors.New("row and col are required")
	ErrNotWholeNumber  = errors.New("expected a whole number")
)

// Message is both the request and the response envelope.
type Message struct {
	Action  string         `json:"action"`
	Payload map[string]any `json:"payload,omitempty"`
}

// Response is the envelope sent back for every request.
type Response struct {
	Action  string          `json:"action"`
	Payload ResponsePayload `json:"payload"`
}

type ResponsePayload struct {
	Session *entity.SessionView `json:"session,omitempty"`
	Stats   *entity.Stats       `json:"stats,omitempty"`
	Error   string              `json:"error,omitempty"`
}

type connectRequest struct {
	SessionID string `mapstructure:"session_id"`
}

type newGameRequest struct {
	Mode       string `mapstructure:"mode"`
	Difficulty string `mapstructure:"difficulty"`
	PlayerX    string `mapstructure:"player_x"`
	PlayerO    string `mapstructure:"player_o"`
	AIMark     string `mapstructure:"ai_mark"`
}

type turnRequest struct {
	Row *int `mapstructure:"row"`
	Col *int `mapstructure:"col"`
}

type modeRequest struct {
	Mode string `mapstructure:"mode"`
}

type difficultyRequest struct {
	Difficulty string `mapstructure:"difficulty"`
}

type namesRequest struct {
	PlayerX string `mapstructure:"player_x"`
	PlayerO string `mapstructure:"player_o"`
}

// decodePayload maps the loosely typed payload onto out and rejects unknown keys.
func decodePayload(payload map[string]any, out any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:  mapstructure.DecodeHookFuncType(rejectFractionalHook),
		ErrorUnused: true,
		Result:      out,
	})
	if err != nil {
		return fmt.Errorf("failed to create decoder: %w", err)
	}

	if err = decoder.Decode(payload); err != nil {
		return fmt.Errorf("failed to decode payload: %w", err)
	}

	return nil
}

// rejectFractionalHook stops JSON numbers such as 0.9 from being truncated into int fields.
func rejectFractionalHook(from, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.Float64 {
		return data, nil
	}

	switch to.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
	default:
		return data, nil
	}

	if value, ok := data.(float64); ok && value != math.Trunc(value) {
		return nil, fmt.Errorf("%w: %v", ErrNotWholeNumber, value)
	}

	return data, nil
}

// client is the state of one websocket connection.
type client struct {
	conn      *websocket.Conn
	sessionID string
}

func (that *client) send(action string, payload ResponsePayload) error {
	if err := that.conn.WriteJSON(Response{Action: action, Payload: payload}); err != nil {
		return fmt.Errorf("failed to write response: %w", err)
	}

	return nil
}

func (that *client) sendError(action string, cause error) error {
	return that.send(action, ResponsePayload{Error: cause.Error()})
}

// sendSession sends the view and, when cause is set, the reason the request was rejected.
func (that *client) sendSession(action string, view entity.SessionView, cause error) error {
	payload := ResponsePayload{Session: &view}
	if cause != nil {
		payload.Error = cause.Error()
	}

	return that.send(action, payload)
}
