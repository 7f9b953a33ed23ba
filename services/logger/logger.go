package logger

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Level is the minimum severity a Logger emits.
type Level int

const (
	DebugLevel Level = iota
	InfoLevel
	ErrorLevel
)

// ParseLevel maps LOG_LEVEL values to a Level, defaulting to InfoLevel.
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return DebugLevel
	case "error":
		return ErrorLevel
	default:
		return InfoLevel
	}
}

// Logger is the printf-style logger used by services.
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
	Debug(format string, v ...interface{})
}

// DefaultLogger implements Logger on top of a zap SugaredLogger.
type DefaultLogger struct {
	sugar *zap.SugaredLogger
}

// NewDefaultLogger builds a JSON logger writing to stderr.
func NewDefaultLogger(level Level) *DefaultLogger {
	return New(level, "json")
}

// New builds a logger with the given encoding ("json" or "console").
func New(level Level, format string) *DefaultLogger {
	cfg := zap.NewProductionConfig()
	if format == "console" {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(zapLevel(level))
	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	z, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		z = zap.NewExample()
	}
	return &DefaultLogger{sugar: z.Sugar()}
}

// FromZap adapts an existing zap logger.
func FromZap(z *zap.Logger) *DefaultLogger {
	return &DefaultLogger{sugar: z.WithOptions(zap.AddCallerSkip(1)).Sugar()}
}

// NewNop returns a logger that discards everything.
func NewNop() *DefaultLogger {
	return &DefaultLogger{sugar: zap.NewNop().Sugar()}
}

func (l *DefaultLogger) Info(format string, v ...interface{}) {
	l.sugar.Infof(format, v...)
}

func (l *DefaultLogger) Error(format string, v ...interface{}) {
	l.sugar.Errorf(format, v...)
}

func (l *DefaultLogger) Debug(format string, v ...interface{}) {
	l.sugar.Debugf(format, v...)
}

// Sync flushes buffered entries.
func (l *DefaultLogger) Sync() error {
	return l.sugar.Sync()
}

func zapLevel(level Level) zapcore.Level {
	switch level {
	case DebugLevel:
		return zapcore.DebugLevel
	case ErrorLevel:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
