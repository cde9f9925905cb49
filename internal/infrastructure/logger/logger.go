package logger

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	usecasecontract "github.com/mikiasgoitom/Catalog/internal/usecase/contract"
)

// ZapLogger adapts a zap SugaredLogger to IAppLogger.
type ZapLogger struct {
	base  *zap.Logger
	sugar *zap.SugaredLogger
}

var _ usecasecontract.IAppLogger = (*ZapLogger)(nil)

// New builds a zap logger. format is "json" or "console"; level is any zap
// level name, defaulting to info.
func New(level, format string) (*ZapLogger, error) {
	var cfg zap.Config
	if strings.EqualFold(format, "console") {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}
	lvl, err := zapcore.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		lvl = zapcore.InfoLevel
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	base, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return nil, err
	}
	return &ZapLogger{base: base, sugar: base.Sugar()}, nil
}

// NewFromZap wraps an existing logger, e.g. zaptest or zap.NewNop in tests.
func NewFromZap(base *zap.Logger) *ZapLogger {
	return &ZapLogger{base: base, sugar: base.Sugar()}
}

// NewNop returns a logger that discards everything.
func NewNop() *ZapLogger {
	return NewFromZap(zap.NewNop())
}

// Zap exposes the structured logger for adapters that log with fields.
func (l *ZapLogger) Zap() *zap.Logger {
	return l.base
}

func (l *ZapLogger) Sync() error {
	return l.base.Sync()
}

// Debugf logs a debug message.
func (l *ZapLogger) Debugf(format string, args ...interface{}) {
	l.sugar.Debugf(format, args...)
}

// Infof logs an info message.
func (l *ZapLogger) Infof(format string, args ...interface{}) {
	l.sugar.Infof(format, args...)
}

// Warnf logs a warning message.
func (l *ZapLogger) Warnf(format string, args ...interface{}) {
	l.sugar.Warnf(format, args...)
}

// Warningf logs a warning message.
func (l *ZapLogger) Warningf(format string, args ...interface{}) {
	l.sugar.Warnf(format, args...)
}

// Errorf logs an error message.
func (l *ZapLogger) Errorf(format string, args ...interface{}) {
	l.sugar.Errorf(format, args...)
}

// Fatalf logs a fatal message and exits.
func (l *ZapLogger) Fatalf(format string, args ...interface{}) {
	l.sugar.Fatalf(format, args...)
}
