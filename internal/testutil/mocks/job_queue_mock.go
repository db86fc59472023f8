package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/vytor/studybuddy/internal/game"
	"github.com/vytor/studybuddy/internal/models"
)

// MockJobQueue is a mock implementation of jobs.JobQueue
type MockJobQueue struct {
	mock.Mock
}

func (m *MockJobQueue) EnqueueSessionRecord(storeName string, sum game.SessionSummary) error {
	args := m.Called(storeName, sum)
	return args.Error(0)
}

func (m *MockJobQueue) EnqueueReward(ev models.RewardEvent) error {
	args := m.Called(ev)
	return args.Error(0)
}
