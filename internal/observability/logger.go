package observability

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/statuskit/status-api/internal/config"
)

// Logger wraps zap with an atomic level so the level can be changed at
// runtime by the config hot reload.
type Logger struct {
	*zap.Logger
	level zap.AtomicLevel
}

// NewLogger builds a logger from logging configuration
func NewLogger(cfg config.LoggingConfig) (*Logger, error) {
	var zapConfig zap.Config

	if cfg.Development {
		zapConfig = zap.NewDevelopmentConfig()
	} else {
		zapConfig = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}
	atomicLevel := zap.NewAtomicLevelAt(level)
	zapConfig.Level = atomicLevel

	if cfg.Format == "console" {
		zapConfig.Encoding = "console"
	} else {
		zapConfig.Encoding = "json"
	}

	logger, err := zapConfig.Build()
	if err != nil {
		return nil, err
	}

	return &Logger{Logger: logger, level: atomicLevel}, nil
}

// SetLevel adjusts the logging level at runtime. Unknown levels are ignored.
func (l *Logger) SetLevel(level string) {
	parsed, err := zapcore.ParseLevel(level)
	if err != nil {
		l.Warn("Ignoring unknown log level", zap.String("level", level))
		return
	}
	l.level.SetLevel(parsed)
}

// Level returns the current logging level
func (l *Logger) Level() zapcore.Level {
	return l.level.Level()
}

// Sync flushes buffered log entries
func (l *Logger) Sync() error {
	return l.Logger.Sync()
}
