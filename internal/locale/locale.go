// Package locale holds the display labels for factions and UI strings.
// Stored records only ever carry faction identifiers; translating between
// identifiers and labels happens here, at the presentation edge.
package locale

import (
	"fmt"
	"strings"

	"github.com/vytor/matchtracker/internal/errors"
	"github.com/vytor/matchtracker/internal/models"
	"golang.org/x/text/language"
)

// Label keys shared by every catalog.
const (
	KeyTitle             = "title"
	KeyYourClass         = "your_class"
	KeyDate              = "date"
	KeyClear             = "clear"
	KeyConfirmClear      = "confirm_clear"
	KeyOverall           = "overall"
	KeyAll               = "all"
	KeyWin               = "win"
	KeyLoss              = "loss"
	KeySelectClassPrompt = "select_class_prompt"
	KeyShowHistory       = "toggle_history_show"
	KeyHideHistory       = "toggle_history_hide"
	KeyOverallWinRate    = "overall_winrate"
	KeyLanguage          = "language"
)

// Catalog is the label set of one display language.
type Catalog struct {
	Tag      language.Tag
	Name     string
	labels   map[string]string
	factions map[models.Faction]string
	byName   map[string]models.Faction
}

func newCatalog(tag language.Tag, name string, labels map[string]string, factions map[models.Faction]string) *Catalog {
	c := &Catalog{
		Tag:      tag,
		Name:     name,
		labels:   labels,
		factions: factions,
		byName:   make(map[string]models.Faction, len(factions)),
	}
	for f, label := range factions {
		c.byName[label] = f
	}
	return c
}

var (
	English = newCatalog(language.English, "English", map[string]string{
		KeyTitle:             "Shadowverse: WB Match Tracker",
		KeyYourClass:         "Class",
		KeyDate:              "Date",
		KeyClear:             "Clear History",
		KeyConfirmClear:      "Are you sure you want to clear the match history for this day?",
		KeyOverall:           "Overall",
		KeyAll:               "All",
		KeyWin:               "Win",
		KeyLoss:              "Loss",
		KeySelectClassPrompt: "Please select a player class (not 'All') to enter results.",
		KeyShowHistory:       "Show History",
		KeyHideHistory:       "Hide History",
		KeyOverallWinRate:    "Overall Winrate:",
		KeyLanguage:          "Language",
	}, map[models.Faction]string{
		models.Forestcraft: "Forestcraft",
		models.Swordcraft:  "Swordcraft",
		models.Runecraft:   "Runecraft",
		models.Dragoncraft: "Dragoncraft",
		models.Abysscraft:  "Abysscraft",
		models.Havencraft:  "Havencraft",
		models.Portalcraft: "Portalcraft",
	})

	Japanese = newCatalog(language.Japanese, "日本語", map[string]string{
		KeyTitle:             "シャドウバWB WIN トラッカー",
		KeyYourClass:         "クラス",
		KeyDate:              "日付",
		KeyClear:             "クリア",
		KeyConfirmClear:      "試合履歴を消去しますか？",
		KeyOverall:           "全体",
		KeyAll:               "すべて",
		KeyWin:               "勝ち",
		KeyLoss:              "負け",
		KeySelectClassPrompt: "結果を入力するには、プレイヤークラス（「すべて」以外）を選択してください。",
		KeyShowHistory:       "試合履歴",
		KeyHideHistory:       "試合履歴",
		KeyOverallWinRate:    "勝率：",
		KeyLanguage:          "言語",
	}, map[models.Faction]string{
		models.Forestcraft: "エルフ",
		models.Swordcraft:  "ロイヤル",
		models.Runecraft:   "ウィッチ",
		models.Dragoncraft: "ドラゴン",
		models.Abysscraft:  "ナイトメア",
		models.Havencraft:  "ビショップ",
		models.Portalcraft: "ネメシス",
	})
)

var (
	catalogs = []*Catalog{English, Japanese}
	matcher  = language.NewMatcher([]language.Tag{language.English, language.Japanese})
)

// Catalogs lists the available catalogs, English first.
func Catalogs() []*Catalog {
	return append([]*Catalog(nil), catalogs...)
}

// Lookup returns the catalog for an exact base language code such as "en" or "ja".
func Lookup(code string) (*Catalog, bool) {
	tag, err := language.Parse(code)
	if err != nil {
		return nil, false
	}
	base, _ := tag.Base()
	for _, c := range catalogs {
		if b, _ := c.Tag.Base(); b == base {
			return c, true
		}
	}
	return nil, false
}

// Match picks the catalog for an explicit language code, then for an
// Accept-Language header, and falls back to def.
func Match(code, acceptLanguage string, def *Catalog) *Catalog {
	if code != "" {
		if c, ok := Lookup(code); ok {
			return c
		}
	}
	if acceptLanguage == "" {
		return def
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return def
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return def
	}
	return catalogs[idx]
}

// Code returns the base language code of the catalog.
func (c *Catalog) Code() string {
	base, _ := c.Tag.Base()
	return base.String()
}

// Label returns the UI string for key, or the key itself when missing.
func (c *Catalog) Label(key string) string {
	if s, ok := c.labels[key]; ok {
		return s
	}
	return key
}

// Labels returns a copy of every UI string in the catalog.
func (c *Catalog) Labels() map[string]string {
	out := make(map[string]string, len(c.labels))
	for k, v := range c.labels {
		out[k] = v
	}
	return out
}

// FactionName returns the display label of f. Unknown values are shown as-is.
func (c *Catalog) FactionName(f models.Faction) string {
	if s, ok := c.factions[f]; ok {
		return s
	}
	return string(f)
}

// FactionByName resolves a display label or a faction identifier.
func (c *Catalog) FactionByName(name string) (models.Faction, error) {
	if f, ok := c.byName[name]; ok {
		return f, nil
	}
	return models.ParseFaction(name)
}

// ResultName returns the display label of r.
func (c *Catalog) ResultName(r models.Result) string {
	switch r {
	case models.Win:
		return c.Label(KeyWin)
	case models.Loss:
		return c.Label(KeyLoss)
	}
	return string(r)
}

// ParseResult resolves a display label or a result identifier.
func (c *Catalog) ParseResult(s string) (models.Result, error) {
	switch s {
	case c.Label(KeyWin):
		return models.Win, nil
	case c.Label(KeyLoss):
		return models.Loss, nil
	}
	return models.ParseResult(strings.ToLower(s))
}

// ParseFactionFilter accepts "", the "all" sentinel, an "All" label, a faction
// label or a faction identifier. Labels of c win; labels of the other catalogs
// are accepted too, so a link built in one language still resolves after the
// display language changes. Anything else is an error.
func (c *Catalog) ParseFactionFilter(s string) (models.FactionFilter, error) {
	for _, cat := range c.withOthers() {
		if s == cat.Label(KeyAll) {
			return models.AllFactions(), nil
		}
		if f, ok := cat.byName[s]; ok {
			return models.OnlyFaction(f), nil
		}
	}
	return models.ParseFactionFilter(s)
}

// ParseDayFilter accepts "", the "overall" sentinel, the "Overall" label of any
// catalog or a YYYY-MM-DD day.
func (c *Catalog) ParseDayFilter(s string) (models.DayFilter, error) {
	for _, cat := range c.withOthers() {
		if s == cat.Label(KeyOverall) {
			return models.Overall(), nil
		}
	}
	return models.ParseDayFilter(s)
}

// withOthers returns c followed by every other catalog.
func (c *Catalog) withOthers() []*Catalog {
	out := make([]*Catalog, 0, len(catalogs)+1)
	out = append(out, c)
	for _, cat := range catalogs {
		if cat != c {
			out = append(out, cat)
		}
	}
	return out
}

// FactionFilterName returns the display label of a faction filter.
func (c *Catalog) FactionFilterName(f models.FactionFilter) string {
	if faction, ok := f.Faction(); ok {
		return c.FactionName(faction)
	}
	return c.Label(KeyAll)
}

// DayFilterName returns the display label of a day filter.
func (c *Catalog) DayFilterName(d models.DayFilter) string {
	if day, ok := d.Day(); ok {
		return day.String()
	}
	return c.Label(KeyOverall)
}

// HistoryLine renders one record the way the history view lists it:
//
//	2024-01-01 | You (Forestcraft) vs Swordcraft | Win
func (c *Catalog) HistoryLine(rec models.MatchRecord) string {
	return fmt.Sprintf("%s | You (%s) vs %s | %s",
		rec.Day, c.FactionName(rec.PlayerFaction), c.FactionName(rec.OpponentFaction), c.ResultName(rec.Result))
}

// ParseLanguage validates a configured language code.
func ParseLanguage(code string) (*Catalog, error) {
	c, ok := Lookup(code)
	if !ok {
		return nil, errors.NewValidationError("language", fmt.Sprintf("unsupported language %q", code))
	}
	return c, nil
}
