package services

import (
	"context"

	"github.com/vytor/matchtracker/internal/logger"
	"github.com/vytor/matchtracker/internal/models"
	"github.com/vytor/matchtracker/internal/repository"
)

// MatchService handles recording, listing and clearing matches
type MatchService interface {
	RecordMatch(ctx context.Context, player, opponent models.Faction, result models.Result, day models.Day) (*models.MatchRecord, error)
	DeleteDay(ctx context.Context, day models.Day) (int64, error)
	ListMatches(ctx context.Context, player models.FactionFilter, day models.DayFilter) ([]models.MatchRecord, error)
	DistinctDays(ctx context.Context) ([]models.Day, error)
	SelectableDays(ctx context.Context, today models.Day) ([]models.Day, error)
}

type matchService struct {
	matchRepo repository.MatchRepository
}

// NewMatchService creates a new MatchService
func NewMatchService(matchRepo repository.MatchRepository) MatchService {
	return &matchService{matchRepo: matchRepo}
}

func (s *matchService) RecordMatch(ctx context.Context, player, opponent models.Faction, result models.Result, day models.Day) (*models.MatchRecord, error) {
	log := logger.FromContext(ctx)

	rec := models.MatchRecord{
		PlayerFaction:   player,
		OpponentFaction: opponent,
		Result:          result,
		Day:             day,
	}
	id, err := s.matchRepo.Insert(ctx, rec)
	if err != nil {
		log.Error().Err(err).Msg("failed to record match")
		return nil, storeError(err)
	}
	rec.ID = id

	log.Info().
		Int64("id", id).
		Str("player", player.String()).
		Str("opponent", opponent.String()).
		Str("result", result.String()).
		Str("day", day.String()).
		Msg("match recorded")
	return &rec, nil
}

// DeleteDay removes every record of day. Callers must have the user's
// confirmation before calling it; there is no undo.
func (s *matchService) DeleteDay(ctx context.Context, day models.Day) (int64, error) {
	log := logger.FromContext(ctx)

	removed, err := s.matchRepo.DeleteDay(ctx, day)
	if err != nil {
		log.Error().Err(err).Str("day", day.String()).Msg("failed to delete day")
		return 0, storeError(err)
	}

	log.Info().Str("day", day.String()).Int64("removed", removed).Msg("day cleared")
	return removed, nil
}

func (s *matchService) ListMatches(ctx context.Context, player models.FactionFilter, day models.DayFilter) ([]models.MatchRecord, error) {
	log := logger.FromContext(ctx)
	log.Debug().Str("player", player.String()).Str("day", day.String()).Msg("listing matches")

	records, err := s.matchRepo.Query(ctx, models.MatchFilter{Player: player, Day: day})
	if err != nil {
		log.Error().Err(err).Msg("failed to list matches")
		return nil, storeError(err)
	}
	return records, nil
}

func (s *matchService) DistinctDays(ctx context.Context) ([]models.Day, error) {
	log := logger.FromContext(ctx)

	days, err := s.matchRepo.DistinctDays(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to list days")
		return nil, storeError(err)
	}
	return days, nil
}

// SelectableDays returns the recorded days newest first, with today in front
// when nothing has been recorded for it yet.
func (s *matchService) SelectableDays(ctx context.Context, today models.Day) ([]models.Day, error) {
	days, err := s.DistinctDays(ctx)
	if err != nil {
		return nil, err
	}
	for _, d := range days {
		if d == today {
			return days, nil
		}
	}
	return append([]models.Day{today}, days...), nil
}
