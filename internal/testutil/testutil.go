package testutil

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vytor/matchtracker/internal/db"
	"github.com/vytor/matchtracker/internal/models"
)

// NewTestDB creates an in-memory SQLite database with all migrations applied.
// The pool is capped at one connection so the in-memory database survives.
func NewTestDB(t *testing.T) *sql.DB {
	database, err := db.Open(":memory:")
	require.NoError(t, err)
	return database.DB
}

// MustClose closes a resource and fails the test on error.
func MustClose(t *testing.T, closer interface{ Close() error }) {
	require.NoError(t, closer.Close())
}

// InsertMatch writes a record directly, bypassing repository validation.
func InsertMatch(t *testing.T, db *sql.DB, player, opponent, result, day string) int64 {
	res, err := db.ExecContext(context.Background(),
		`INSERT INTO matches (player_class, opponent_class, result, match_date) VALUES (?, ?, ?, ?)`,
		player, opponent, result, day)
	require.NoError(t, err)
	id, err := res.LastInsertId()
	require.NoError(t, err)
	return id
}

// Match builds a record for tests.
func Match(player, opponent models.Faction, result models.Result, day models.Day) models.MatchRecord {
	return models.MatchRecord{
		PlayerFaction:   player,
		OpponentFaction: opponent,
		Result:          result,
		Day:             day,
	}
}
