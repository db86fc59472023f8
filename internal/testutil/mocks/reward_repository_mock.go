package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/vytor/studybuddy/internal/models"
)

// MockRewardRepository is a mock implementation of repository.RewardRepository
type MockRewardRepository struct {
	mock.Mock
}

func (m *MockRewardRepository) Insert(ctx context.Context, ev models.RewardEvent) error {
	args := m.Called(ctx, ev)
	return args.Error(0)
}

func (m *MockRewardRepository) List(ctx context.Context, storeName string, limit, offset int) ([]models.RewardEvent, error) {
	args := m.Called(ctx, storeName, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.RewardEvent), args.Error(1)
}
