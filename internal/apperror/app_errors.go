package apperror

import "errors"

var (
	ErrOutOfBounds       = errors.New("cell is out of bounds")
	ErrCellOccupied      = errors.New("cell is already occupied")
	ErrRoundAlreadyOver  = errors.New("round is already over")
	ErrNotYourTurn       = errors.New("it's not your turn")
	ErrNoOpponent        = errors.New("no computer opponent in this session")
	ErrSessionNotFound   = errors.New("session not found")
	ErrUnknownDifficulty = errors.New("unknown difficulty")
	ErrUnknownMode       = errors.New("unknown game mode")
	ErrUnknownMark       = errors.New("unknown mark")
)
