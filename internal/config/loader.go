package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/statuskit/status-api/internal/constants"
)

// LoadConfig loads configuration with precedence:
// 1. Explicit CLI flags (highest priority)
// 2. Environment variables
// 3. Configuration file values
// 4. Default configuration values (lowest priority)
func LoadConfig(configFile string, cliFlags *CLIFlags) (*Config, error) {
	config := DefaultConfig()

	// The file is decoded over the defaults, so omitted fields keep their
	// default values.
	if configFile != "" {
		if err := loadFromFile(configFile, config); err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	}

	loadFromEnv(config)

	if cliFlags != nil {
		overrideWithCLI(config, cliFlags)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// CLIFlags contains CLI flag values that can override configuration.
// Pointers are nil when the corresponding flag was not defined.
type CLIFlags struct {
	Host              *string
	Port              *string
	MetricsPort       *string
	ServiceName       *string
	ServiceVersion    *string
	Environment       *string
	ReadTimeout       *time.Duration
	WriteTimeout      *time.Duration
	IdleTimeout       *time.Duration
	MaxRequestSize    *int64
	ShutdownTimeout   *time.Duration
	LogLevel          *string
	LogFormat         *string
	RateLimitEnabled  *bool
	RateLimitRPS      *float64
	RateLimitBurst    *int
	HotReload         *bool
	HotReloadDebounce *time.Duration
	TLSEnabled        *bool
	TLSCertFile       *string
	TLSKeyFile        *string
}

// loadFromFile decodes a YAML or JSON file into the given configuration
func loadFromFile(filePath string, config *Config) error {
	if !filepath.IsAbs(filePath) {
		absPath, err := filepath.Abs(filePath)
		if err != nil {
			return fmt.Errorf("failed to get absolute path for %s: %w", filePath, err)
		}
		filePath = absPath
	}

	if err := validateFilePath(filePath); err != nil {
		return fmt.Errorf("invalid config file path %s: %w", filePath, err)
	}

	data, err := os.ReadFile(filePath) // #nosec G304 - file path validated by validateFilePath()
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", filePath, err)
	}

	ext := filepath.Ext(filePath)
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, config)
	case ".json":
		err = json.Unmarshal(data, config)
	default:
		return fmt.Errorf("unsupported config file format: %s", ext)
	}

	if err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", filePath, err)
	}

	return nil
}

// loadFromEnv loads configuration from environment variables
func loadFromEnv(config *Config) {
	if val := os.Getenv(constants.EnvHost); val != "" {
		config.Server.Host = val
	}
	if val := os.Getenv(constants.EnvPort); val != "" {
		config.Server.Port = val
	}
	if val := os.Getenv(constants.EnvMetricsPort); val != "" {
		config.Server.MetricsPort = val
	}
	if val := os.Getenv(constants.EnvReadTimeout); val != "" {
		if duration, err := time.ParseDuration(val); err == nil {
			config.Server.ReadTimeout = duration
		}
	}
	if val := os.Getenv(constants.EnvWriteTimeout); val != "" {
		if duration, err := time.ParseDuration(val); err == nil {
			config.Server.WriteTimeout = duration
		}
	}
	if val := os.Getenv(constants.EnvIdleTimeout); val != "" {
		if duration, err := time.ParseDuration(val); err == nil {
			config.Server.IdleTimeout = duration
		}
	}
	if val := os.Getenv(constants.EnvMaxRequestSize); val != "" {
		if size, err := strconv.ParseInt(val, 10, 64); err == nil {
			config.Server.MaxRequestSize = size
		}
	}
	if val := os.Getenv(constants.EnvShutdownTimeout); val != "" {
		if duration, err := time.ParseDuration(val); err == nil {
			config.Server.ShutdownTimeout = duration
		}
	}
	if val := os.Getenv(constants.EnvServiceName); val != "" {
		config.Service.Name = val
	}
	if val := os.Getenv(constants.EnvServiceVersion); val != "" {
		config.Service.Version = val
	}
	if val := os.Getenv(constants.EnvEnvironment); val != "" {
		config.Service.Environment = val
	}
	if val := os.Getenv(constants.EnvLogLevel); val != "" {
		config.Observability.Logging.Level = val
	}
	if val := os.Getenv(constants.EnvLogFormat); val != "" {
		config.Observability.Logging.Format = val
	}
	if val := os.Getenv(constants.EnvHotReload); val != "" {
		if enabled, err := strconv.ParseBool(val); err == nil {
			config.HotReload.Enabled = enabled
		}
	}
	if val := os.Getenv(constants.EnvHotReloadDebounce); val != "" {
		if duration, err := time.ParseDuration(val); err == nil {
			config.HotReload.Debounce = duration
		}
	}
	if val := os.Getenv(constants.EnvTLSEnabled); val != "" {
		if enabled, err := strconv.ParseBool(val); err == nil {
			config.TLS.Enabled = enabled
		}
	}
	if val := os.Getenv(constants.EnvTLSCertFile); val != "" {
		config.TLS.CertFile = val
	}
	if val := os.Getenv(constants.EnvTLSKeyFile); val != "" {
		config.TLS.KeyFile = val
	}
}

// flagChanged reports whether a CLI flag value should override the
// configuration. A flag that is not registered (unit tests build CLIFlags
// directly) counts as explicitly set.
func flagChanged(name string) bool {
	f := pflag.Lookup(name)
	return f == nil || f.Changed
}

// overrideWithCLI overrides configuration with explicitly set CLI flags
func overrideWithCLI(config *Config, flags *CLIFlags) {
	if flags.Host != nil && flagChanged("host") {
		config.Server.Host = *flags.Host
	}
	if flags.Port != nil && flagChanged("port") {
		config.Server.Port = *flags.Port
	}
	if flags.MetricsPort != nil && flagChanged("metrics-port") {
		config.Server.MetricsPort = *flags.MetricsPort
	}
	if flags.ReadTimeout != nil && flagChanged("read-timeout") {
		config.Server.ReadTimeout = *flags.ReadTimeout
	}
	if flags.WriteTimeout != nil && flagChanged("write-timeout") {
		config.Server.WriteTimeout = *flags.WriteTimeout
	}
	if flags.IdleTimeout != nil && flagChanged("idle-timeout") {
		config.Server.IdleTimeout = *flags.IdleTimeout
	}
	if flags.MaxRequestSize != nil && flagChanged("max-request-size") {
		config.Server.MaxRequestSize = *flags.MaxRequestSize
	}
	if flags.ShutdownTimeout != nil && flagChanged("shutdown-timeout") {
		config.Server.ShutdownTimeout = *flags.ShutdownTimeout
	}

	if flags.ServiceName != nil && flagChanged("service-name") {
		config.Service.Name = *flags.ServiceName
	}
	if flags.ServiceVersion != nil && flagChanged("service-version") {
		config.Service.Version = *flags.ServiceVersion
	}
	if flags.Environment != nil && flagChanged("environment") {
		config.Service.Environment = *flags.Environment
	}

	if flags.LogLevel != nil && flagChanged("log-level") {
		config.Observability.Logging.Level = *flags.LogLevel
	}
	if flags.LogFormat != nil && flagChanged("log-format") {
		config.Observability.Logging.Format = *flags.LogFormat
	}

	if flags.RateLimitEnabled != nil && flagChanged("rate-limit-enabled") {
		config.Security.RateLimit.Enabled = *flags.RateLimitEnabled
	}
	if flags.RateLimitRPS != nil && flagChanged("rate-limit-rps") {
		config.Security.RateLimit.RequestsPerSecond = *flags.RateLimitRPS
	}
	if flags.RateLimitBurst != nil && flagChanged("rate-limit-burst") {
		config.Security.RateLimit.Burst = *flags.RateLimitBurst
	}

	if flags.HotReload != nil && flagChanged("hot-reload") {
		config.HotReload.Enabled = *flags.HotReload
	}
	if flags.HotReloadDebounce != nil && flagChanged("hot-reload-debounce") {
		config.HotReload.Debounce = *flags.HotReloadDebounce
	}

	if flags.TLSEnabled != nil && flagChanged("tls-enabled") {
		config.TLS.Enabled = *flags.TLSEnabled
	}
	if flags.TLSCertFile != nil && flagChanged("tls-cert-file") {
		config.TLS.CertFile = *flags.TLSCertFile
	}
	if flags.TLSKeyFile != nil && flagChanged("tls-key-file") {
		config.TLS.KeyFile = *flags.TLSKeyFile
	}
}

// validateFilePath checks if the file path is safe to read
func validateFilePath(filePath string) error {
	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return fmt.Errorf("failed to get absolute path: %w", err)
	}

	cleanPath := filepath.Clean(absPath)

	if strings.Contains(cleanPath, "..") {
		return fmt.Errorf("path contains directory traversal attempts")
	}

	return nil
}
