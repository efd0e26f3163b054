package entity

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScore_Add(t *testing.T) {
	// Given: an empty scoreboard
	var score Score

	// When: two X wins, one O win and a draw are added, plus a round still in progress
	score.Add(Outcome{Status: StatusWin, Winner: X})
	score.Add(Outcome{Status: StatusWin, Winner: X})
	score.Add(Outcome{Status: StatusWin, Winner: O})
	score.Add(Outcome{Status: StatusDraw})
	score.Add(Outcome{Status: StatusInProgress})

	// Then: only finished rounds are counted
	assert.Equal(t, Score{XWins: 2, OWins: 1, Draws: 1}, score)
}

func TestNewGameRecord(t *testing.T) {
	date := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, "X", NewGameRecord(date, X, "Ann", "Bob").Winner)
	assert.Equal(t, DrawWinner, NewGameRecord(date, Empty, "Ann", "Bob").Winner)
}

func TestStats_Apply(t *testing.T) {
	t.Run("Counts winners and draws", func(t *testing.T) {
		// Given: empty stats
		var stats Stats
		date := time.Now()

		// When: three rounds are applied
		stats.Apply(NewGameRecord(date, X, "a", "b"), 50)
		stats.Apply(NewGameRecord(date, O, "a", "b"), 50)
		stats.Apply(NewGameRecord(date, Empty, "a", "b"), 50)

		// Then: the counters match and history keeps order
		assert.Equal(t, 3, stats.GamesPlayed)
		assert.Equal(t, 1, stats.XWins)
		assert.Equal(t, 1, stats.OWins)
		assert.Equal(t, 1, stats.Draws)
		require.Len(t, stats.History, 3)
		assert.Equal(t, DrawWinner, stats.History[2].Winner)
	})

	t.Run("Keeps only the most recent entries", func(t *testing.T) {
		// Given: empty stats
		var stats Stats

		// When: 60 rounds are applied with a limit of 50
		for i := range 60 {
			stats.Apply(NewGameRecord(time.Now(), X, fmt.Sprintf("p%d", i), "o"), 50)
		}

		// Then: the counters see every round, history only the last 50
		assert.Equal(t, 60, stats.GamesPlayed)
		require.Len(t, stats.History, 50)
		assert.Equal(t, "p10", stats.History[0].PlayerX)
		assert.Equal(t, "p59", stats.History[49].PlayerX)
	})
}
