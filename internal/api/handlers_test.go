package api_test

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/vytor/matchtracker/internal/api"
	"github.com/vytor/matchtracker/internal/errors"
	"github.com/vytor/matchtracker/internal/locale"
	"github.com/vytor/matchtracker/internal/models"
	"github.com/vytor/matchtracker/internal/repository/sqlite"
	"github.com/vytor/matchtracker/internal/services"
	"github.com/vytor/matchtracker/internal/testutil"
	"github.com/vytor/matchtracker/internal/testutil/mocks"
)

type stubPinger struct{ err error }

func (p stubPinger) Ping(context.Context) error { return p.err }

var fixedNow = func() time.Time { return time.Date(2024, 3, 1, 21, 30, 0, 0, time.UTC) }

func newTestServer() (*api.Server, *mocks.MockMatchService, *mocks.MockStatsService) {
	matches := new(mocks.MockMatchService)
	stats := new(mocks.MockStatsService)
	return &api.Server{
		MatchService: matches,
		StatsService: stats,
		DB:           stubPinger{},
		Catalog:      locale.English,
		Location:     time.UTC,
		Now:          fixedNow,
	}, matches, stats
}

func do(t *testing.T, h http.Handler, method, target, body string, headers ...string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Error.Code
}

func TestHealth(t *testing.T) {
	srv, _, _ := newTestServer()

	rec := do(t, srv.Routes(), http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestReady(t *testing.T) {
	srv, _, _ := newTestServer()
	rec := do(t, srv.Routes(), http.MethodGet, "/readyz", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	srv.DB = stubPinger{err: errors.NewStoreUnavailableError(stderrors.New("closed"))}
	rec = do(t, srv.Routes(), http.MethodGet, "/readyz", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestRequestIDPropagated(t *testing.T) {
	srv, _, _ := newTestServer()
	rec := do(t, srv.Routes(), http.MethodGet, "/healthz", "", "X-Request-ID", "abc-123")
	assert.Equal(t, "abc-123", rec.Header().Get("X-Request-ID"))
}

func TestFactions_Localized(t *testing.T) {
	srv, _, _ := newTestServer()

	rec := do(t, srv.Routes(), http.MethodGet, "/api/factions?lang=ja", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Language string `json:"language"`
		All      struct{ Value, Label string }
		Factions []struct {
			Value string `json:"value"`
			Label string `json:"label"`
		} `json:"factions"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ja", body.Language)
	assert.Equal(t, "all", body.All.Value)
	assert.Equal(t, "すべて", body.All.Label)
	require.Len(t, body.Factions, len(models.Factions))
	assert.Equal(t, "Forestcraft", body.Factions[0].Value)
	assert.Equal(t, "エルフ", body.Factions[0].Label)
	assert.Equal(t, "Portalcraft", body.Factions[6].Value)
}

func TestLabels_AcceptLanguage(t *testing.T) {
	srv, _, _ := newTestServer()

	rec := do(t, srv.Routes(), http.MethodGet, "/api/labels", "", "Accept-Language", "ja-JP,ja;q=0.9")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Language string            `json:"language"`
		Labels   map[string]string `json:"labels"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ja", body.Language)
	assert.Equal(t, "シャドウバWB WIN トラッカー", body.Labels["title"])
}

func TestDays(t *testing.T) {
	srv, matches, _ := newTestServer()
	matches.On("SelectableDays", mock.Anything, models.Day("2024-03-01")).
		Return([]models.Day{"2024-03-01", "2024-02-28"}, nil)

	rec := do(t, srv.Routes(), http.MethodGet, "/api/days", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Today string `json:"today"`
		Days  []struct {
			Value string `json:"value"`
			Label string `json:"label"`
		} `json:"days"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "2024-03-01", body.Today)
	require.Len(t, body.Days, 3)
	assert.Equal(t, "overall", body.Days[0].Value)
	assert.Equal(t, "Overall", body.Days[0].Label)
	assert.Equal(t, "2024-03-01", body.Days[1].Value)
	matches.AssertExpectations(t)
}

func TestDays_TodayUsesConfiguredLocation(t *testing.T) {
	srv, matches, _ := newTestServer()
	tokyo := time.FixedZone("JST", 9*60*60)
	srv.Location = tokyo
	matches.On("SelectableDays", mock.Anything, models.Day("2024-03-02")).Return([]models.Day{"2024-03-02"}, nil)

	rec := do(t, srv.Routes(), http.MethodGet, "/api/days", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	matches.AssertExpectations(t)
}

func TestListMatches_LabelFilters(t *testing.T) {
	srv, matches, _ := newTestServer()
	records := []models.MatchRecord{{ID: 7, PlayerFaction: models.Havencraft, OpponentFaction: models.Abysscraft, Result: models.Win, Day: "2024-01-01"}}
	matches.On("ListMatches", mock.Anything, models.OnlyFaction(models.Havencraft), models.Overall()).Return(records, nil)

	rec := do(t, srv.Routes(), http.MethodGet, "/api/matches?lang=ja&player=%E3%83%93%E3%82%B7%E3%83%A7%E3%83%83%E3%83%97&day=%E5%85%A8%E4%BD%93", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Player  string               `json:"player"`
		Day     string               `json:"day"`
		Matches []models.MatchRecord `json:"matches"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Havencraft", body.Player)
	assert.Equal(t, "overall", body.Day)
	assert.Equal(t, records, body.Matches)
}

func TestListMatches_LabelsFromAnotherLanguage(t *testing.T) {
	srv, matches, _ := newTestServer()
	matches.On("ListMatches", mock.Anything, models.OnlyFaction(models.Forestcraft), models.Overall()).Return(nil, nil)

	rec := do(t, srv.Routes(), http.MethodGet, "/api/matches?lang=en&player=%E3%82%A8%E3%83%AB%E3%83%95&day=Overall", "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, srv.Routes(), http.MethodGet, "/api/matches?lang=ja&player=Forestcraft&day=Overall", "")
	require.Equal(t, http.StatusOK, rec.Code)
	matches.AssertNumberOfCalls(t, "ListMatches", 2)
}

func TestListMatches_EmptyIsArray(t *testing.T) {
	srv, matches, _ := newTestServer()
	matches.On("ListMatches", mock.Anything, models.AllFactions(), models.OnDay("2024-01-01")).Return(nil, nil)

	rec := do(t, srv.Routes(), http.MethodGet, "/api/matches?player=all&day=2024-01-01", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"matches":[]`)
}

func TestListMatches_InvalidFilters(t *testing.T) {
	srv, _, _ := newTestServer()

	rec := do(t, srv.Routes(), http.MethodGet, "/api/matches?player=Neutralcraft", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, errors.ErrCodeInvalidFaction, errorCode(t, rec))

	rec = do(t, srv.Routes(), http.MethodGet, "/api/matches?day=03-01-2024", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, errors.ErrCodeInvalidDay, errorCode(t, rec))
}

func TestHistory(t *testing.T) {
	srv, matches, _ := newTestServer()
	records := []models.MatchRecord{
		{ID: 1, PlayerFaction: models.Forestcraft, OpponentFaction: models.Swordcraft, Result: models.Win, Day: "2024-01-01"},
		{ID: 2, PlayerFaction: models.Forestcraft, OpponentFaction: models.Runecraft, Result: models.Loss, Day: "2024-01-01"},
	}
	matches.On("ListMatches", mock.Anything, models.OnlyFaction(models.Forestcraft), models.OnDay("2024-01-01")).Return(records, nil)

	rec := do(t, srv.Routes(), http.MethodGet, "/api/history?player=Forestcraft&day=2024-01-01", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/plain; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t,
		"2024-01-01 | You (Forestcraft) vs Swordcraft | Win\n2024-01-01 | You (Forestcraft) vs Runecraft | Loss\n",
		rec.Body.String())
}

func TestCreateMatch(t *testing.T) {
	srv, matches, _ := newTestServer()
	created := &models.MatchRecord{ID: 9, PlayerFaction: models.Forestcraft, OpponentFaction: models.Swordcraft, Result: models.Win, Day: "2024-01-01"}
	matches.On("RecordMatch", mock.Anything, models.Forestcraft, models.Swordcraft, models.Win, models.Day("2024-01-01")).Return(created, nil)

	rec := do(t, srv.Routes(), http.MethodPost, "/api/matches",
		`{"player":"Forestcraft","opponent":"Swordcraft","result":"win","day":"2024-01-01"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var got models.MatchRecord
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, *created, got)
	matches.AssertExpectations(t)
}

func TestCreateMatch_DefaultsToToday(t *testing.T) {
	srv, matches, _ := newTestServer()
	matches.On("RecordMatch", mock.Anything, models.Dragoncraft, models.Havencraft, models.Loss, models.Day("2024-03-01")).
		Return(&models.MatchRecord{ID: 1}, nil)

	rec := do(t, srv.Routes(), http.MethodPost, "/api/matches?lang=ja",
		`{"player":"ドラゴン","opponent":"ビショップ","result":"負け"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)
	matches.AssertExpectations(t)
}

func TestCreateMatch_RejectsSentinels(t *testing.T) {
	tests := []struct {
		name string
		body string
		code string
	}{
		{"all as player", `{"player":"all","opponent":"Swordcraft","result":"win","day":"2024-01-01"}`, errors.ErrCodeInvalidFaction},
		{"All label as player", `{"player":"All","opponent":"Swordcraft","result":"win","day":"2024-01-01"}`, errors.ErrCodeInvalidFaction},
		{"all as opponent", `{"player":"Forestcraft","opponent":"all","result":"win","day":"2024-01-01"}`, errors.ErrCodeInvalidFaction},
		{"overall as day", `{"player":"Forestcraft","opponent":"Swordcraft","result":"win","day":"overall"}`, errors.ErrCodeInvalidDay},
		{"unknown result", `{"player":"Forestcraft","opponent":"Swordcraft","result":"draw","day":"2024-01-01"}`, errors.ErrCodeValidation},
		{"broken json", `{"player":`, errors.ErrCodeBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, matches, _ := newTestServer()

			rec := do(t, srv.Routes(), http.MethodPost, "/api/matches", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tt.code, errorCode(t, rec))
			matches.AssertNotCalled(t, "RecordMatch", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestCreateMatch_StoreUnavailable(t *testing.T) {
	srv, matches, _ := newTestServer()
	matches.On("RecordMatch", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.NewStoreUnavailableError(stderrors.New("disk full")))

	rec := do(t, srv.Routes(), http.MethodPost, "/api/matches",
		`{"player":"Forestcraft","opponent":"Swordcraft","result":"win","day":"2024-01-01"}`)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, errors.ErrCodeStoreUnavailable, errorCode(t, rec))
}

func TestDeleteDay_RequiresConfirmation(t *testing.T) {
	srv, matches, _ := newTestServer()

	rec := do(t, srv.Routes(), http.MethodDelete, "/api/days/2024-01-01", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, errors.ErrCodeBadRequest, errorCode(t, rec))
	matches.AssertNotCalled(t, "DeleteDay", mock.Anything, mock.Anything)
}

func TestDeleteDay(t *testing.T) {
	srv, matches, _ := newTestServer()
	matches.On("DeleteDay", mock.Anything, models.Day("2024-01-01")).Return(int64(4), nil)

	rec := do(t, srv.Routes(), http.MethodDelete, "/api/days/2024-01-01?confirm=true", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Day     string `json:"day"`
		Removed int64  `json:"removed"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "2024-01-01", body.Day)
	assert.Equal(t, int64(4), body.Removed)
}

func TestDeleteDay_RejectsOverall(t *testing.T) {
	srv, matches, _ := newTestServer()

	rec := do(t, srv.Routes(), http.MethodDelete, "/api/days/overall?confirm=true", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, errors.ErrCodeInvalidDay, errorCode(t, rec))
	matches.AssertNotCalled(t, "DeleteDay", mock.Anything, mock.Anything)
}

func TestStats(t *testing.T) {
	srv, _, stats := newTestServer()
	summary := &models.StatSummary{
		Player:      "Forestcraft",
		Day:         "2024-01-01",
		Factions:    []models.FactionStat{{Faction: models.Swordcraft, Wins: 1, Losses: 1, WinRate: 50}},
		WinsTotal:   1,
		LossesTotal: 1,
		WinRate:     50,
	}
	stats.On("Summarize", mock.Anything, models.OnlyFaction(models.Forestcraft), models.OnDay("2024-01-01")).Return(summary, nil)

	rec := do(t, srv.Routes(), http.MethodGet, "/api/stats?player=Forestcraft&day=2024-01-01&lang=ja", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Player        string            `json:"player"`
		PlayerLabel   string            `json:"player_label"`
		DayLabel      string            `json:"day_label"`
		WinsTotal     int               `json:"wins_total"`
		WinRate       float64           `json:"win_rate"`
		FactionLabels map[string]string `json:"faction_labels"`
		Factions      []models.FactionStat
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Forestcraft", body.Player)
	assert.Equal(t, "エルフ", body.PlayerLabel)
	assert.Equal(t, "2024-01-01", body.DayLabel)
	assert.Equal(t, 1, body.WinsTotal)
	assert.Equal(t, 50.0, body.WinRate)
	assert.Equal(t, "ロイヤル", body.FactionLabels["Swordcraft"])
	assert.Equal(t, summary.Factions, body.Factions)
}

func TestStats_StoreUnavailable(t *testing.T) {
	srv, _, stats := newTestServer()
	stats.On("Summarize", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.NewStoreUnavailableError(stderrors.New("locked")))

	rec := do(t, srv.Routes(), http.MethodGet, "/api/stats", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, errors.ErrCodeStoreUnavailable, errorCode(t, rec))
}

func TestCORS(t *testing.T) {
	srv, _, _ := newTestServer()
	srv.CORSOrigins = []string{"http://localhost:5173"}

	rec := do(t, srv.Routes(), http.MethodGet, "/healthz", "", "Origin", "http://localhost:5173")
	assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))

	rec = do(t, srv.Routes(), http.MethodGet, "/healthz", "", "Origin", "http://evil.example")
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestEndToEnd_RecordThenSummarize(t *testing.T) {
	db := testutil.NewTestDB(t)
	defer testutil.MustClose(t, db)

	repo := sqlite.NewMatchRepository(db)
	srv := &api.Server{
		MatchService: services.NewMatchService(repo),
		StatsService: services.NewStatsService(repo),
		Catalog:      locale.English,
		Location:     time.UTC,
		Now:          fixedNow,
	}
	h := srv.Routes()

	for _, body := range []string{
		`{"player":"Forestcraft","opponent":"Swordcraft","result":"win","day":"2024-01-01"}`,
		`{"player":"Forestcraft","opponent":"Swordcraft","result":"loss","day":"2024-01-01"}`,
		`{"player":"Runecraft","opponent":"Swordcraft","result":"win","day":"2024-01-01"}`,
	} {
		rec := do(t, h, http.MethodPost, "/api/matches", body)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	}

	rec := do(t, h, http.MethodGet, "/api/stats?player=all&day=2024-01-01", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var summary models.StatSummary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summary))
	assert.Equal(t, 2, summary.WinsTotal)
	assert.Equal(t, 1, summary.LossesTotal)
	assert.Equal(t, 66.7, summary.WinRate)
	assert.Equal(t, models.FactionStat{Faction: models.Swordcraft, Wins: 2, Losses: 1, WinRate: 66.7}, summary.ForFaction(models.Swordcraft))

	rec = do(t, h, http.MethodDelete, "/api/days/2024-01-01?confirm=true", "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, h, http.MethodGet, "/api/stats", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summary))
	assert.Zero(t, summary.Total())
}
