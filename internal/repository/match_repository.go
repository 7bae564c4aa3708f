package repository

import (
	"context"

	"github.com/vytor/matchtracker/internal/models"
)

// MatchRepository owns the persisted match records.
type MatchRepository interface {
	Insert(ctx context.Context, rec models.MatchRecord) (int64, error)
	DeleteDay(ctx context.Context, day models.Day) (int64, error)
	Query(ctx context.Context, filter models.MatchFilter) ([]models.MatchRecord, error)
	Count(ctx context.Context, filter models.MatchFilter) (int, error)
	DistinctDays(ctx context.Context) ([]models.Day, error)
}
