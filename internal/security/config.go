package security

import (
	"errors"
	"time"
)

// RateLimitConfig controls per-client request throttling on the main
// listener. Disabled by default; the probe endpoints are never throttled.
type RateLimitConfig struct {
	Enabled           bool          `json:"enabled" yaml:"enabled"`
	RequestsPerSecond float64       `json:"requests_per_second" yaml:"requests_per_second"`
	Burst             int           `json:"burst" yaml:"burst"`
	CleanupInterval   time.Duration `json:"cleanup_interval" yaml:"cleanup_interval"`
	MaxCacheSize      int           `json:"max_cache_size" yaml:"max_cache_size"`
}

// DefaultRateLimitConfig returns default rate limit configuration
func DefaultRateLimitConfig() RateLimitConfig {
	return RateLimitConfig{
		Enabled:           false,
		RequestsPerSecond: 100,
		Burst:             200,
		CleanupInterval:   5 * time.Minute,
		MaxCacheSize:      10000,
	}
}

// Validate validates the rate limit configuration
func (c *RateLimitConfig) Validate() error {
	if !c.Enabled {
		return nil
	}

	var errs []error
	if c.RequestsPerSecond <= 0 {
		errs = append(errs, errors.New("requests_per_second must be positive"))
	}
	if c.Burst <= 0 {
		errs = append(errs, errors.New("burst must be positive"))
	}
	if c.CleanupInterval < 0 {
		errs = append(errs, errors.New("cleanup_interval cannot be negative"))
	}
	if c.MaxCacheSize < 0 {
		errs = append(errs, errors.New("max_cache_size cannot be negative"))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}
