package models

// FactionStat is the record against one opponent faction.
type FactionStat struct {
	Faction Faction `json:"faction"`
	Wins    int     `json:"wins"`
	Losses  int     `json:"losses"`
	WinRate float64 `json:"win_rate"`
}

// Total returns wins plus losses.
func (s FactionStat) Total() int { return s.Wins + s.Losses }

// StatSummary is the aggregate for one (player faction, day) filter. It is
// recomputed on every request and never stored.
type StatSummary struct {
	Player      string        `json:"player"`
	Day         string        `json:"day"`
	Factions    []FactionStat `json:"factions"`
	WinsTotal   int           `json:"wins_total"`
	LossesTotal int           `json:"losses_total"`
	WinRate     float64       `json:"win_rate"`
}

// Total returns the number of matches behind the overall figures.
func (s StatSummary) Total() int { return s.WinsTotal + s.LossesTotal }

// ForFaction returns the row for opponent faction f. Missing rows are zero.
func (s StatSummary) ForFaction(f Faction) FactionStat {
	for _, row := range s.Factions {
		if row.Faction == f {
			return row
		}
	}
	return FactionStat{Faction: f}
}
