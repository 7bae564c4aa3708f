package services

import (
	"context"

	"github.com/vytor/matchtracker/internal/logger"
	"github.com/vytor/matchtracker/internal/models"
	"github.com/vytor/matchtracker/internal/repository"
	"github.com/vytor/matchtracker/internal/stats"
)

// StatsService computes win/loss summaries on demand
type StatsService interface {
	Summarize(ctx context.Context, player models.FactionFilter, day models.DayFilter) (*models.StatSummary, error)
}

type statsService struct {
	matchRepo repository.MatchRepository
}

// NewStatsService creates a new StatsService. It only reads from the repository.
func NewStatsService(matchRepo repository.MatchRepository) StatsService {
	return &statsService{matchRepo: matchRepo}
}

// Summarize reads the records matching player and day once and reduces them.
// Each per-faction row equals the tally of the same query further constrained
// to that opponent faction.
func (s *statsService) Summarize(ctx context.Context, player models.FactionFilter, day models.DayFilter) (*models.StatSummary, error) {
	log := logger.FromContext(ctx)
	log.Debug().Str("player", player.String()).Str("day", day.String()).Msg("summarizing matches")

	records, err := s.matchRepo.Query(ctx, models.MatchFilter{Player: player, Day: day})
	if err != nil {
		log.Error().Err(err).Msg("failed to query matches for summary")
		return nil, storeError(err)
	}

	summary := stats.Summarize(records, player, day)
	log.Debug().
		Int("wins", summary.WinsTotal).
		Int("losses", summary.LossesTotal).
		Float64("win_rate", summary.WinRate).
		Msg("summary computed")
	return &summary, nil
}
