package runner

import (
	"context"

	"github.com/shaharia-lab/render3d/internal/history"
	"github.com/stretchr/testify/mock"
)

// MockPrompter implements Prompter for testing
type MockPrompter struct {
	mock.Mock
}

func (m *MockPrompter) Confirm(message string, defaultValue bool) (bool, error) {
	args := m.Called(message, defaultValue)
	return args.Bool(0), args.Error(1)
}

// MockRecorder implements history.Recorder for testing
type MockRecorder struct {
	mock.Mock
}

var _ history.Recorder = (*MockRecorder)(nil)

func (m *MockRecorder) Record(ctx context.Context, e history.Entry) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}
