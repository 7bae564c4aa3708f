package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/vytor/matchtracker/internal/locale"
	"github.com/vytor/matchtracker/internal/logger"
	"github.com/vytor/matchtracker/internal/models"
)

// catalog picks the display language from ?lang=, then Accept-Language, then
// the configured default.
func (s *Server) catalog(r *http.Request) *locale.Catalog {
	def := s.Catalog
	if def == nil {
		def = locale.English
	}
	return locale.Match(r.URL.Query().Get("lang"), r.Header.Get("Accept-Language"), def)
}

func (s *Server) today() models.Day {
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	loc := s.Location
	if loc == nil {
		loc = time.Local
	}
	return models.DayOf(now().In(loc))
}

// parseFilters reads the player and day query parameters. Both accept the
// identifier, the sentinel or the catalog label; empty means all/overall.
func parseFilters(c *locale.Catalog, r *http.Request) (models.FactionFilter, models.DayFilter, error) {
	q := r.URL.Query()

	player, err := c.ParseFactionFilter(q.Get("player"))
	if err != nil {
		return models.FactionFilter{}, models.DayFilter{}, err
	}
	day, err := c.ParseDayFilter(q.Get("day"))
	if err != nil {
		return models.FactionFilter{}, models.DayFilter{}, err
	}
	return player, day, nil
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log := logger.FromContext(r.Context())
		log.Error().Err(err).Msg("failed to encode response")
	}
}
