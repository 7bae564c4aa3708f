// Package stats reduces match records into win/loss summaries.
//
// Every function here is pure: no I/O, the same input always gives the same output.
package stats

import (
	"github.com/shopspring/decimal"
	"github.com/vytor/matchtracker/internal/models"
)

// WinRate returns wins/(wins+losses) as a percentage with one decimal, or 0
// when there are no matches. The percentage is computed in float64 and rounded
// from its exact binary value, ties to even, so 1 of 16 reads 6.2 the same way
// "%.1f" prints it.
func WinRate(wins, losses int) float64 {
	total := wins + losses
	if total <= 0 {
		return 0
	}
	pct := float64(wins) / float64(total) * 100
	rate, _ := decimal.NewFromFloatWithExponent(pct, -exactDigits).
		RoundBank(1).
		Float64()
	return rate
}

// exactDigits covers every fractional digit of a float64 percentage of at
// least 1e-6, so the conversion above does not round.
const exactDigits = 80

// Tally counts wins and losses in records.
func Tally(records []models.MatchRecord) (wins, losses int) {
	for _, r := range records {
		switch r.Result {
		case models.Win:
			wins++
		case models.Loss:
			losses++
		}
	}
	return wins, losses
}

// Summarize builds the summary for records already filtered by player faction
// and day. Rows are keyed by opponent faction and cover every faction in display
// order; the overall figures are tallied over all records directly.
func Summarize(records []models.MatchRecord, player models.FactionFilter, day models.DayFilter) models.StatSummary {
	byOpponent := make(map[models.Faction][]models.MatchRecord, len(models.Factions))
	for _, r := range records {
		byOpponent[r.OpponentFaction] = append(byOpponent[r.OpponentFaction], r)
	}

	rows := make([]models.FactionStat, 0, len(models.Factions))
	for _, f := range models.Factions {
		wins, losses := Tally(byOpponent[f])
		rows = append(rows, models.FactionStat{
			Faction: f,
			Wins:    wins,
			Losses:  losses,
			WinRate: WinRate(wins, losses),
		})
	}

	wins, losses := Tally(records)
	return models.StatSummary{
		Player:      player.String(),
		Day:         day.String(),
		Factions:    rows,
		WinsTotal:   wins,
		LossesTotal: losses,
		WinRate:     WinRate(wins, losses),
	}
}
