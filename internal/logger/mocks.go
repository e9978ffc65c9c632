package logger

import "github.com/stretchr/testify/mock"

// MockLogger records structured calls so tests can assert on them.
// WithFields and Sync are accepted without expectations.
type MockLogger struct {
	mock.Mock
}

var _ Logger = (*MockLogger)(nil)

// Debug mocks the Debug method
func (m *MockLogger) Debug(msg string, fields map[string]interface{}) {
	m.Called(msg, fields)
}

// Info mocks the Info method
func (m *MockLogger) Info(msg string, fields map[string]interface{}) {
	m.Called(msg, fields)
}

// Warn mocks the Warn method
func (m *MockLogger) Warn(msg string, fields map[string]interface{}) {
	m.Called(msg, fields)
}

// Error mocks the Error method
func (m *MockLogger) Error(msg string, fields map[string]interface{}) {
	m.Called(msg, fields)
}

// WithFields returns the same mock so expectations keep applying.
func (m *MockLogger) WithFields(map[string]interface{}) Logger { return m }

// Sync does nothing.
func (m *MockLogger) Sync() error { return nil }
