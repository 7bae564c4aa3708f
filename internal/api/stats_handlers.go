package api

import (
	"net/http"

	"github.com/vytor/matchtracker/internal/locale"
	"github.com/vytor/matchtracker/internal/logger"
	"github.com/vytor/matchtracker/internal/models"
)

// statsResponse is a StatSummary plus the labels the selected catalog uses
// for it.
type statsResponse struct {
	*models.StatSummary
	PlayerLabel   string                    `json:"player_label"`
	DayLabel      string                    `json:"day_label"`
	WinRateLabel  string                    `json:"win_rate_label"`
	FactionLabels map[models.Faction]string `json:"faction_labels"`
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	c := s.catalog(r)

	player, day, err := parseFilters(c, r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	summary, err := s.StatsService.Summarize(r.Context(), player, day)
	if err != nil {
		handleError(w, r, err)
		return
	}
	log.Debug().
		Str("player", player.String()).
		Str("day", day.String()).
		Int("total", summary.Total()).
		Msg("stats served")

	labels := make(map[models.Faction]string, len(models.Factions))
	for _, f := range models.Factions {
		labels[f] = c.FactionName(f)
	}

	writeJSON(w, r, http.StatusOK, statsResponse{
		StatSummary:   summary,
		PlayerLabel:   c.FactionFilterName(player),
		DayLabel:      c.DayFilterName(day),
		WinRateLabel:  c.Label(locale.KeyOverallWinRate),
		FactionLabels: labels,
	})
}
