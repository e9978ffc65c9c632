package logger

// LogLevel represents logging levels as strings
type LogLevel string

const (
	// DebugLevel logs are typically voluminous, and are usually disabled in production
	DebugLevel LogLevel = "debug"

	// InfoLevel is the default logging priority
	InfoLevel LogLevel = "info"

	// WarnLevel logs are more important than Info, but don't need individual human review
	WarnLevel LogLevel = "warn"

	// ErrorLevel logs are high-priority
	ErrorLevel LogLevel = "error"
)

const (
	// DefaultLogLevel is used when no level is configured
	DefaultLogLevel = InfoLevel

	// DefaultMaxSizeMB is the size in megabytes a log file may reach before rotation
	DefaultMaxSizeMB = 20

	// DefaultMaxBackups is the number of rotated files kept
	DefaultMaxBackups = 3

	// DefaultMaxAgeDays is how long rotated files are kept
	DefaultMaxAgeDays = 15

	// ErrorKey is the field name used for errors attached to log entries
	ErrorKey = "error"
)

// ParseLevel converts a configured level name into a LogLevel. Unknown names
// fall back to DefaultLogLevel and ok is false.
func ParseLevel(s string) (level LogLevel, ok bool) {
	switch LogLevel(s) {
	case DebugLevel, InfoLevel, WarnLevel, ErrorLevel:
		return LogLevel(s), true
	case "":
		return DefaultLogLevel, true
	default:
		return DefaultLogLevel, false
	}
}

// Logger defines the logging methods required by the application.
// Uses generic types to avoid coupling to a specific library implementation.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})

	WithFields(fields map[string]interface{}) Logger

	Sync() error
}
