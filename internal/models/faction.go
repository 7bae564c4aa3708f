package models

import "github.com/vytor/matchtracker/internal/errors"

// Faction identifies one of the seven playable classes.
type Faction string

const (
	Forestcraft Faction = "Forestcraft"
	Swordcraft  Faction = "Swordcraft"
	Runecraft   Faction = "Runecraft"
	Dragoncraft Faction = "Dragoncraft"
	Abysscraft  Faction = "Abysscraft"
	Havencraft  Faction = "Havencraft"
	Portalcraft Faction = "Portalcraft"
)

// Factions lists the closed faction set in display order.
var Factions = []Faction{
	Forestcraft,
	Swordcraft,
	Runecraft,
	Dragoncraft,
	Abysscraft,
	Havencraft,
	Portalcraft,
}

// Valid reports whether f belongs to the closed set.
func (f Faction) Valid() bool {
	for _, known := range Factions {
		if f == known {
			return true
		}
	}
	return false
}

func (f Faction) String() string { return string(f) }

// ParseFaction accepts only the internal identifiers. The "all" sentinel is
// rejected like any other unknown value.
func ParseFaction(s string) (Faction, error) {
	f := Faction(s)
	if !f.Valid() {
		return "", errors.NewInvalidFactionError(s)
	}
	return f, nil
}

// Result is the outcome of a match from the player's side.
type Result string

const (
	Win  Result = "win"
	Loss Result = "loss"
)

// Valid reports whether r is win or loss.
func (r Result) Valid() bool {
	return r == Win || r == Loss
}

func (r Result) String() string { return string(r) }

// ParseResult accepts "win" or "loss".
func ParseResult(s string) (Result, error) {
	r := Result(s)
	if !r.Valid() {
		return "", errors.NewValidationError("result", "must be win or loss")
	}
	return r, nil
}
