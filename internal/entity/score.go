package entity

import "time"

// Score is the scoreboard of a single session; it survives new rounds but not ResetAll.
type Score struct {
	XWins int `json:"x_wins"`
	OWins int `json:"o_wins"`
	Draws int `json:"draws"`
}

func (that *Score) Add(outcome Outcome) {
	switch {
	case outcome.IsWin() && outcome.Winner == X:
		that.XWins++
	case outcome.IsWin() && outcome.Winner == O:
		that.OWins++
	case outcome.IsDraw():
		that.Draws++
	}
}

const DrawWinner = "Draw"

// GameRecord is one finished round in the stats history.
type GameRecord struct {
	Date    time.Time `json:"date"`
	Winner  string    `json:"winner"`
	PlayerX string    `json:"player_x"`
	PlayerO string    `json:"player_o"`
}

func NewGameRecord(date time.Time, winner Mark, playerX, playerO string) GameRecord {
	name := string(winner)
	if !winner.IsPlayer() {
		name = DrawWinner
	}

	return GameRecord{
		Date:    date,
		Winner:  name,
		PlayerX: playerX,
		PlayerO: playerO,
	}
}

// Stats are the aggregate counters plus the capped history, oldest first.
type Stats struct {
	GamesPlayed int          `json:"games_played"`
	XWins       int          `json:"x_wins"`
	OWins       int          `json:"o_wins"`
	Draws       int          `json:"draws"`
	History     []GameRecord `json:"history"`
}

// Apply adds a record to the counters and appends it to History, keeping at most limit entries.
func (that *Stats) Apply(record GameRecord, limit int) {
	that.GamesPlayed++

	switch record.Winner {
	case string(X):
		that.XWins++
	case string(O):
		that.OWins++
	default:
		that.Draws++
	}

	that.History = append(that.History, record)
	if limit > 0 && len(that.History) > limit {
		that.History = append([]GameRecord(nil), that.History[len(that.History)-limit:]...)
	}
}
