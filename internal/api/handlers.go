package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/vytor/matchtracker/internal/errors"
	"github.com/vytor/matchtracker/internal/locale"
	"github.com/vytor/matchtracker/internal/logger"
	"github.com/vytor/matchtracker/internal/models"
	"github.com/vytor/matchtracker/internal/services"
)

// Pinger reports whether the match store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Server struct {
	MatchService services.MatchService
	StatsService services.StatsService
	DB           Pinger
	Catalog      *locale.Catalog
	Location     *time.Location
	CORSOrigins  []string
	Now          func() time.Time
}

// option is one entry of a selector: the value sent back to the API and the
// label shown to the user.
type option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type createMatchRequest struct {
	Player   string `json:"player"`
	Opponent string `json:"opponent"`
	Result   string `json:"result"`
	Day      string `json:"day"`
}

func (s *Server) handleFactions(w http.ResponseWriter, r *http.Request) {
	c := s.catalog(r)

	factions := make([]option, 0, len(models.Factions))
	for _, f := range models.Factions {
		factions = append(factions, option{Value: f.String(), Label: c.FactionName(f)})
	}

	writeJSON(w, r, http.StatusOK, map[string]any{
		"language": c.Code(),
		"all":      option{Value: models.AllFactionsKey, Label: c.Label(locale.KeyAll)},
		"factions": factions,
	})
}

func (s *Server) handleLabels(w http.ResponseWriter, r *http.Request) {
	c := s.catalog(r)

	languages := make([]option, 0, len(locale.Catalogs()))
	for _, lc := range locale.Catalogs() {
		languages = append(languages, option{Value: lc.Code(), Label: lc.Name})
	}

	writeJSON(w, r, http.StatusOK, map[string]any{
		"language":  c.Code(),
		"languages": languages,
		"labels":    c.Labels(),
	})
}

func (s *Server) handleDays(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	c := s.catalog(r)
	today := s.today()

	days, err := s.MatchService.SelectableDays(r.Context(), today)
	if err != nil {
		handleError(w, r, err)
		return
	}
	log.Debug().Int("count", len(days)).Msg("listing selectable days")

	out := make([]option, 0, len(days)+1)
	out = append(out, option{Value: models.OverallKey, Label: c.Label(locale.KeyOverall)})
	for _, d := range days {
		out = append(out, option{Value: d.String(), Label: d.String()})
	}

	writeJSON(w, r, http.StatusOK, map[string]any{
		"today": today,
		"days":  out,
	})
}

func (s *Server) handleListMatches(w http.ResponseWriter, r *http.Request) {
	c := s.catalog(r)
	player, day, err := parseFilters(c, r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	records, err := s.MatchService.ListMatches(r.Context(), player, day)
	if err != nil {
		handleError(w, r, err)
		return
	}
	if records == nil {
		records = []models.MatchRecord{}
	}

	writeJSON(w, r, http.StatusOK, map[string]any{
		"player":  player.String(),
		"day":     day.String(),
		"matches": records,
	})
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	c := s.catalog(r)
	player, day, err := parseFilters(c, r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	records, err := s.MatchService.ListMatches(r.Context(), player, day)
	if err != nil {
		handleError(w, r, err)
		return
	}

	var b strings.Builder
	for _, rec := range records {
		b.WriteString(c.HistoryLine(rec))
		b.WriteByte('\n')
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(b.String())); err != nil {
		log.Warn().Err(err).Msg("failed to write history")
	}
}

func (s *Server) handleCreateMatch(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	c := s.catalog(r)

	var req createMatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn().Err(err).Msg("invalid match payload")
		handleError(w, r, errors.NewBadRequestError("invalid JSON body"))
		return
	}

	player, err := c.FactionByName(strings.TrimSpace(req.Player))
	if err != nil {
		handleError(w, r, err)
		return
	}
	opponent, err := c.FactionByName(strings.TrimSpace(req.Opponent))
	if err != nil {
		handleError(w, r, err)
		return
	}
	result, err := c.ParseResult(strings.TrimSpace(req.Result))
	if err != nil {
		handleError(w, r, err)
		return
	}

	day := s.today()
	if d := strings.TrimSpace(req.Day); d != "" {
		if day, err = models.ParseDay(d); err != nil {
			handleError(w, r, err)
			return
		}
	}

	rec, err := s.MatchService.RecordMatch(r.Context(), player, opponent, result, day)
	if err != nil {
		handleError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, rec)
}

func (s *Server) handleDeleteDay(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	c := s.catalog(r)

	day, err := models.ParseDay(chi.URLParam(r, "day"))
	if err != nil {
		handleError(w, r, err)
		return
	}

	if r.URL.Query().Get("confirm") != "true" {
		log.Warn().Str("day", day.String()).Msg("day deletion not confirmed")
		handleError(w, r, errors.NewBadRequestError(c.Label(locale.KeyConfirmClear)))
		return
	}

	removed, err := s.MatchService.DeleteDay(r.Context(), day)
	if err != nil {
		handleError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, map[string]any{
		"day":     day,
		"removed": removed,
	})
}
