package models

import "github.com/vytor/matchtracker/internal/errors"

// MatchRecord is one recorded match outcome. Records are never updated in place.
type MatchRecord struct {
	ID              int64   `json:"id"`
	PlayerFaction   Faction `json:"player"`
	OpponentFaction Faction `json:"opponent"`
	Result          Result  `json:"result"`
	Day             Day     `json:"day"`
}

// Validate checks that every field can be stored. ID is not checked; the store
// assigns it.
func (m MatchRecord) Validate() error {
	if !m.PlayerFaction.Valid() {
		return errors.NewInvalidFactionError(string(m.PlayerFaction))
	}
	if !m.OpponentFaction.Valid() {
		return errors.NewInvalidFactionError(string(m.OpponentFaction))
	}
	if !m.Result.Valid() {
		return errors.NewValidationError("result", "must be win or loss")
	}
	if !m.Day.Valid() {
		return errors.NewInvalidDayError(string(m.Day))
	}
	return nil
}
