package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/vytor/studybuddy/internal/coach"
)

// MockCompleter is a mock implementation of coach.Completer
type MockCompleter struct {
	mock.Mock
}

func (m *MockCompleter) Complete(ctx context.Context, req coach.CompletionRequest) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}
