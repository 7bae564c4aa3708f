package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/vytor/matchtracker/internal/models"
)

// MockStatsService is a mock implementation of services.StatsService
type MockStatsService struct {
	mock.Mock
}

func (m *MockStatsService) Summarize(ctx context.Context, player models.FactionFilter, day models.DayFilter) (*models.StatSummary, error) {
	args := m.Called(ctx, player, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.StatSummary), args.Error(1)
}
