package logger

// NoOpLogger discards every entry.
type NoOpLogger struct{}

// Discard is the shared NoOpLogger, used by tests and when logging is disabled.
var Discard Logger = NoOpLogger{}

var _ Logger = NoOpLogger{}

func (NoOpLogger) Debug(string, map[string]interface{}) {}
func (NoOpLogger) Info(string, map[string]interface{})  {}
func (NoOpLogger) Warn(string, map[string]interface{})  {}
func (NoOpLogger) Error(string, map[string]interface{}) {}

// WithFields returns the receiver unchanged.
func (l NoOpLogger) WithFields(map[string]interface{}) Logger { return l }

// Sync always succeeds.
func (NoOpLogger) Sync() error { return nil }
