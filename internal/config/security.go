package config

import (
	"errors"
	"fmt"

	"github.com/statuskit/status-api/internal/security"
)

// SecurityConfig contains security-related configuration
type SecurityConfig struct {
	CORS      CORSConfig               `json:"cors" yaml:"cors"`
	Headers   SecurityHeadersConfig    `json:"headers" yaml:"headers"`
	RateLimit security.RateLimitConfig `json:"rate_limit" yaml:"rate_limit"`
}

// CORSConfig contains CORS configuration
type CORSConfig struct {
	Enabled          bool     `json:"enabled" yaml:"enabled"`
	AllowedOrigins   []string `json:"allowed_origins" yaml:"allowed_origins"`
	AllowedMethods   []string `json:"allowed_methods" yaml:"allowed_methods"`
	AllowedHeaders   []string `json:"allowed_headers" yaml:"allowed_headers"`
	AllowCredentials bool     `json:"allow_credentials" yaml:"allow_credentials"`
	MaxAge           int      `json:"max_age" yaml:"max_age"`
}

// SecurityHeadersConfig contains security response header configuration
type SecurityHeadersConfig struct {
	Enabled               bool   `json:"enabled" yaml:"enabled"`
	HSTSMaxAge            int    `json:"hsts_max_age" yaml:"hsts_max_age"`
	ContentSecurityPolicy string `json:"content_security_policy" yaml:"content_security_policy"`
}

// DefaultSecurityConfig returns default security configuration
func DefaultSecurityConfig() SecurityConfig {
	return SecurityConfig{
		CORS:      DefaultCORSConfig(),
		Headers:   DefaultSecurityHeadersConfig(),
		RateLimit: security.DefaultRateLimitConfig(),
	}
}

// DefaultCORSConfig returns default CORS configuration
func DefaultCORSConfig() CORSConfig {
	return CORSConfig{
		Enabled:          true,
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "HEAD", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Accept", "X-Correlation-ID"},
		AllowCredentials: false,
		MaxAge:           86400,
	}
}

// DefaultSecurityHeadersConfig returns default security header configuration
func DefaultSecurityHeadersConfig() SecurityHeadersConfig {
	return SecurityHeadersConfig{
		Enabled:    false,
		HSTSMaxAge: 31536000,
	}
}

// Validate validates the security configuration
func (s *SecurityConfig) Validate() error {
	var errs []error

	if s.CORS.Enabled {
		if len(s.CORS.AllowedOrigins) == 0 {
			errs = append(errs, errors.New("cors: allowed_origins cannot be empty when CORS is enabled"))
		}
		if s.CORS.MaxAge < 0 {
			errs = append(errs, errors.New("cors: max_age cannot be negative"))
		}
	}

	if s.Headers.Enabled && s.Headers.HSTSMaxAge <= 0 {
		errs = append(errs, errors.New("headers: hsts_max_age must be positive"))
	}

	if err := s.RateLimit.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("rate_limit: %w", err))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}
