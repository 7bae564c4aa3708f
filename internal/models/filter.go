package models

// Sentinel spellings accepted by the filter parsers. They are never stored.
const (
	AllFactionsKey = "all"
	OverallKey     = "overall"
)

// FactionFilter is either every faction or one concrete faction.
// The zero value selects every faction. A concrete filter stays concrete even
// when its faction is empty or unknown, so the store rejects it.
type FactionFilter struct {
	faction  Faction
	concrete bool
}

// AllFactions matches records of any faction.
func AllFactions() FactionFilter { return FactionFilter{} }

// OnlyFaction matches records of f.
func OnlyFaction(f Faction) FactionFilter { return FactionFilter{faction: f, concrete: true} }

// Faction returns the concrete faction, or false for the "all" variant.
func (f FactionFilter) Faction() (Faction, bool) {
	return f.faction, f.concrete
}

// IsAll reports whether f is the "all" variant.
func (f FactionFilter) IsAll() bool { return !f.concrete }

func (f FactionFilter) String() string {
	if f.IsAll() {
		return AllFactionsKey
	}
	return string(f.faction)
}

// ParseFactionFilter maps "" and "all" to AllFactions and anything else through
// ParseFaction.
func ParseFactionFilter(s string) (FactionFilter, error) {
	if s == "" || s == AllFactionsKey {
		return AllFactions(), nil
	}
	f, err := ParseFaction(s)
	if err != nil {
		return FactionFilter{}, err
	}
	return OnlyFaction(f), nil
}

// DayFilter is either the overall view or one concrete day.
// The zero value is the overall view.
type DayFilter struct {
	day      Day
	concrete bool
}

// Overall matches records of every day.
func Overall() DayFilter { return DayFilter{} }

// OnDay matches records of d.
func OnDay(d Day) DayFilter { return DayFilter{day: d, concrete: true} }

// Day returns the concrete day, or false for the overall variant.
func (f DayFilter) Day() (Day, bool) {
	return f.day, f.concrete
}

// IsOverall reports whether f is the overall variant.
func (f DayFilter) IsOverall() bool { return !f.concrete }

func (f DayFilter) String() string {
	if f.IsOverall() {
		return OverallKey
	}
	return string(f.day)
}

// ParseDayFilter maps "" and "overall" to Overall and anything else through
// ParseDay.
func ParseDayFilter(s string) (DayFilter, error) {
	if s == "" || s == OverallKey {
		return Overall(), nil
	}
	d, err := ParseDay(s)
	if err != nil {
		return DayFilter{}, err
	}
	return OnDay(d), nil
}

// MatchFilter constrains a record query. Zero fields match everything.
type MatchFilter struct {
	Player   FactionFilter
	Opponent FactionFilter
	Day      DayFilter
}
