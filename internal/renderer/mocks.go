package renderer

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockRenderer implements Renderer for testing
type MockRenderer struct {
	mock.Mock
}

var _ Renderer = (*MockRenderer)(nil)

func (m *MockRenderer) Render(ctx context.Context, job Job) (Result, error) {
	args := m.Called(ctx, job)
	return args.Get(0).(Result), args.Error(1)
}
