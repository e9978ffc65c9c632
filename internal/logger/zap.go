package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config holds the logger configuration options
type Config struct {
	LogLevel LogLevel

	// FilePath receives every entry at or above LogLevel as JSON
	FilePath string

	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int

	// UseConsole mirrors entries to ConsoleWriter (stderr when nil)
	UseConsole    bool
	ConsoleWriter io.Writer
	Development   bool
}

// ZapLogger provides a concrete implementation of the Logger using zap.
type ZapLogger struct {
	zap *zap.Logger
	cfg Config
}

// Compile-time check to ensure ZapLogger implements the Logger.
var _ Logger = (*ZapLogger)(nil)

// NewZapLogger creates a new Zap logger satisfying the Logger.
func NewZapLogger(config Config) (Logger, error) {
	config = withDefaults(config)

	zapLogger, err := buildZapLogger(config)
	if err != nil {
		return nil, fmt.Errorf("failed to build zap logger: %w", err)
	}

	return &ZapLogger{
		zap: zapLogger,
		cfg: config,
	}, nil
}

func withDefaults(config Config) Config {
	if config.MaxAgeDays <= 0 {
		config.MaxAgeDays = DefaultMaxAgeDays
	}
	if config.MaxSizeMB <= 0 {
		config.MaxSizeMB = DefaultMaxSizeMB
	}
	if config.MaxBackups <= 0 {
		config.MaxBackups = DefaultMaxBackups
	}
	if config.LogLevel == "" {
		config.LogLevel = DefaultLogLevel
	}
	if config.ConsoleWriter == nil {
		config.ConsoleWriter = os.Stderr
	}
	return config
}

// buildZapLogger sets up the underlying zap logger instance.
func buildZapLogger(config Config) (*zap.Logger, error) {
	minLogLevel := parseLogLevel(config.LogLevel)

	var encoderConfig zapcore.EncoderConfig
	if config.Development {
		encoderConfig = zap.NewDevelopmentEncoderConfig()
	} else {
		encoderConfig = zap.NewProductionEncoderConfig()
	}

	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.MessageKey = "message"
	encoderConfig.EncodeLevel = zapcore.LowercaseLevelEncoder
	encoderConfig.EncodeDuration = zapcore.SecondsDurationEncoder
	encoderConfig.EncodeCaller = zapcore.ShortCallerEncoder

	var cores []zapcore.Core

	if config.FilePath != "" {
		if err := os.MkdirAll(filepath.Dir(config.FilePath), 0750); err != nil {
			return nil, fmt.Errorf("failed to create log directory %s: %w", filepath.Dir(config.FilePath), err)
		}

		writer := zapcore.AddSync(&lumberjack.Logger{
			Filename:   config.FilePath,
			MaxSize:    config.MaxSizeMB,
			MaxBackups: config.MaxBackups,
			MaxAge:     config.MaxAgeDays,
			Compress:   true,
		})
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), writer, minLogLevel))
	}

	if config.UseConsole {
		cores = append(cores, zapcore.NewCore(
			zapcore.NewConsoleEncoder(encoderConfig),
			zapcore.AddSync(config.ConsoleWriter),
			minLogLevel,
		))
	}

	if len(cores) == 0 {
		return zap.NewNop(), nil
	}

	zapOpts := []zap.Option{
		zap.AddCaller(),
		zap.AddCallerSkip(1),
		zap.AddStacktrace(zapcore.ErrorLevel),
	}
	if config.Development {
		zapOpts = append(zapOpts, zap.Development())
	}

	return zap.New(zapcore.NewTee(cores...), zapOpts...), nil
}

func mapToZapFields(fields map[string]interface{}) []zap.Field {
	if fields == nil {
		return nil
	}
	zapFields := make([]zap.Field, 0, len(fields))
	for k, v := range fields {
		if err, ok := v.(error); ok {
			zapFields = append(zapFields, zap.NamedError(k, err))
			continue
		}
		zapFields = append(zapFields, zap.Any(k, v))
	}
	return zapFields
}

// Debug logs a message at debug level
func (l *ZapLogger) Debug(msg string, fields map[string]interface{}) {
	l.zap.Debug(msg, mapToZapFields(fields)...)
}

// Info logs a message at info level
func (l *ZapLogger) Info(msg string, fields map[string]interface{}) {
	l.zap.Info(msg, mapToZapFields(fields)...)
}

// Warn logs a message at warn level
func (l *ZapLogger) Warn(msg string, fields map[string]interface{}) {
	l.zap.Warn(msg, mapToZapFields(fields)...)
}

// Error logs a message at error level
func (l *ZapLogger) Error(msg string, fields map[string]interface{}) {
	l.zap.Error(msg, mapToZapFields(fields)...)
}

// WithFields creates a new logger instance with additional fields
func (l *ZapLogger) WithFields(fields map[string]interface{}) Logger {
	if len(fields) == 0 {
		return l
	}
	return &ZapLogger{
		zap: l.zap.With(mapToZapFields(fields)...),
		cfg: l.cfg,
	}
}

// Sync flushes buffered entries
func (l *ZapLogger) Sync() error {
	return l.zap.Sync()
}

func parseLogLevel(level LogLevel) zapcore.Level {
	switch level {
	case DebugLevel:
		return zapcore.DebugLevel
	case WarnLevel:
		return zapcore.WarnLevel
	case ErrorLevel:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
