package entity

// SessionView is what the presentation layer renders.
type SessionView struct {
	ID        string   `json:"id,omitempty"`
	Board     Board    `json:"board"`
	Turn      Mark     `json:"turn,omitempty"`
	Outcome   Outcome  `json:"outcome"`
	Settings  Settings `json:"settings"`
	Score     Score    `json:"score"`
	MoveCount int      `json:"move_count"`
	LastMove  *Move    `json:"last_move,omitempty"`
}

// SessionRecord is the persisted form of a session: the board is rebuilt by replaying Moves.
type SessionRecord struct {
	ID       string   `json:"id"`
	Settings Settings `json:"settings"`
	Moves    []Move   `json:"moves"`
	Score    Score    `json:"score"`
}
