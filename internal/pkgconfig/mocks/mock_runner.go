package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockRunner is a mock implementation of the pkgconfig.Runner interface for testing
type MockRunner struct {
	mock.Mock
}

// NewMockRunner creates a new mock runner
func NewMockRunner() *MockRunner {
	return &MockRunner{}
}

// Run implements Runner.Run
func (m *MockRunner) Run(ctx context.Context, name string, args []string) (int, error) {
	a := m.Called(ctx, name, args)
	return a.Int(0), a.Error(1)
}
