package observability

import (
	"testing"

	"go.uber.org/zap/zapcore"

	"github.com/statuskit/status-api/internal/config"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name      string
		cfg       config.LoggingConfig
		wantLevel zapcore.Level
	}{
		{
			name:      "production json",
			cfg:       config.LoggingConfig{Level: "info", Format: "json"},
			wantLevel: zapcore.InfoLevel,
		},
		{
			name:      "console debug",
			cfg:       config.LoggingConfig{Level: "debug", Format: "console"},
			wantLevel: zapcore.DebugLevel,
		},
		{
			name:      "unknown level falls back to info",
			cfg:       config.LoggingConfig{Level: "chatty", Format: "json"},
			wantLevel: zapcore.InfoLevel,
		},
		{
			name:      "development config",
			cfg:       config.LoggingConfig{Level: "warn", Format: "console", Development: true},
			wantLevel: zapcore.WarnLevel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := NewLogger(tt.cfg)
			if err != nil {
				t.Fatalf("NewLogger() error = %v", err)
			}
			if got := logger.Level(); got != tt.wantLevel {
				t.Errorf("Level() = %v, want %v", got, tt.wantLevel)
			}
		})
	}
}

func TestLoggerSetLevel(t *testing.T) {
	logger, err := NewLogger(config.DefaultLoggingConfig())
	if err != nil {
		t.Fatalf("NewLogger() error = %v", err)
	}

	logger.SetLevel("debug")
	if got := logger.Level(); got != zapcore.DebugLevel {
		t.Errorf("Level() after SetLevel(debug) = %v, want debug", got)
	}

	// Unknown levels must not change the current level
	logger.SetLevel("nonsense")
	if got := logger.Level(); got != zapcore.DebugLevel {
		t.Errorf("Level() after SetLevel(nonsense) = %v, want debug", got)
	}
}
