package config

import (
	"testing"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid, got: %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:   "valid default",
			mutate: func(c *Config) {},
		},
		{
			name:    "empty host",
			mutate:  func(c *Config) { c.Server.Host = "" },
			wantErr: true,
		},
		{
			name:    "invalid port",
			mutate:  func(c *Config) { c.Server.Port = "abc" },
			wantErr: true,
		},
		{
			name:    "port out of range",
			mutate:  func(c *Config) { c.Server.Port = "70000" },
			wantErr: true,
		},
		{
			name:    "privileged port",
			mutate:  func(c *Config) { c.Server.Port = "22" },
			wantErr: true,
		},
		{
			name:    "same port and metrics port",
			mutate:  func(c *Config) { c.Server.MetricsPort = c.Server.Port },
			wantErr: true,
		},
		{
			name:    "negative read timeout",
			mutate:  func(c *Config) { c.Server.ReadTimeout = -1 },
			wantErr: true,
		},
		{
			name:    "empty service name",
			mutate:  func(c *Config) { c.Service.Name = "" },
			wantErr: true,
		},
		{
			name:    "empty service version",
			mutate:  func(c *Config) { c.Service.Version = "" },
			wantErr: true,
		},
		{
			name:    "invalid log level",
			mutate:  func(c *Config) { c.Observability.Logging.Level = "verbose" },
			wantErr: true,
		},
		{
			name:    "invalid log format",
			mutate:  func(c *Config) { c.Observability.Logging.Format = "xml" },
			wantErr: true,
		},
		{
			name:    "tls enabled without cert",
			mutate:  func(c *Config) { c.TLS.Enabled = true },
			wantErr: true,
		},
		{
			name: "rate limit enabled with bad rps",
			mutate: func(c *Config) {
				c.Security.RateLimit.Enabled = true
				c.Security.RateLimit.RequestsPerSecond = 0
			},
			wantErr: true,
		},
		{
			name: "hot reload with zero debounce",
			mutate: func(c *Config) {
				c.HotReload.Enabled = true
				c.HotReload.Debounce = 0
			},
			wantErr: true,
		},
		{
			name:    "cors enabled without origins",
			mutate:  func(c *Config) { c.Security.CORS.AllowedOrigins = nil },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
