package testutil

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockWordSource is a mock for repository.WordSource
type MockWordSource struct {
	mock.Mock
}

func (m *MockWordSource) RandomWord(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}
