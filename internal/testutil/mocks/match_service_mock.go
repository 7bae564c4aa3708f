package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/vytor/matchtracker/internal/models"
)

// MockMatchService is a mock implementation of services.MatchService
type MockMatchService struct {
	mock.Mock
}

func (m *MockMatchService) RecordMatch(ctx context.Context, player, opponent models.Faction, result models.Result, day models.Day) (*models.MatchRecord, error) {
	args := m.Called(ctx, player, opponent, result, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MatchRecord), args.Error(1)
}

func (m *MockMatchService) DeleteDay(ctx context.Context, day models.Day) (int64, error) {
	args := m.Called(ctx, day)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockMatchService) ListMatches(ctx context.Context, player models.FactionFilter, day models.DayFilter) ([]models.MatchRecord, error) {
	args := m.Called(ctx, player, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.MatchRecord), args.Error(1)
}

func (m *MockMatchService) DistinctDays(ctx context.Context) ([]models.Day, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Day), args.Error(1)
}

func (m *MockMatchService) SelectableDays(ctx context.Context, today models.Day) ([]models.Day, error) {
	args := m.Called(ctx, today)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Day), args.Error(1)
}
