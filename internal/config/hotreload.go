package config

import (
	"errors"
	"time"
)

// HotReloadConfig controls watching the configuration file for changes.
// Only the dynamic subset of the configuration (log level, service identity)
// is applied without a restart.
type HotReloadConfig struct {
	Enabled  bool          `json:"enabled" yaml:"enabled"`
	Debounce time.Duration `json:"debounce" yaml:"debounce"`
}

// DefaultHotReloadConfig returns default hot reload configuration
func DefaultHotReloadConfig() HotReloadConfig {
	return HotReloadConfig{
		Enabled:  true,
		Debounce: 500 * time.Millisecond,
	}
}

// Validate validates the hot reload configuration
func (h *HotReloadConfig) Validate() error {
	if h.Enabled && h.Debounce <= 0 {
		return errors.New("debounce must be positive when hot reload is enabled")
	}
	return nil
}
