package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/vytor/matchtracker/internal/models"
)

// MockMatchRepository is a mock implementation of repository.MatchRepository
type MockMatchRepository struct {
	mock.Mock
}

func (m *MockMatchRepository) Insert(ctx context.Context, rec models.MatchRecord) (int64, error) {
	args := m.Called(ctx, rec)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockMatchRepository) DeleteDay(ctx context.Context, day models.Day) (int64, error) {
	args := m.Called(ctx, day)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockMatchRepository) Query(ctx context.Context, filter models.MatchFilter) ([]models.MatchRecord, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.MatchRecord), args.Error(1)
}

func (m *MockMatchRepository) Count(ctx context.Context, filter models.MatchFilter) (int, error) {
	args := m.Called(ctx, filter)
	return args.Int(0), args.Error(1)
}

func (m *MockMatchRepository) DistinctDays(ctx context.Context) ([]models.Day, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Day), args.Error(1)
}
