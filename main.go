package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/spf13/pflag"

	"github.com/statuskit/status-api/internal/config"
	"github.com/statuskit/status-api/internal/constants"
	"github.com/statuskit/status-api/internal/hotreload"
	"github.com/statuskit/status-api/internal/server"
)

func main() {
	configFile := pflag.String("config", "", "Path to configuration file (YAML or JSON)")

	// Server configuration
	host := pflag.String("host", "0.0.0.0", "Host to bind the server on")
	port := pflag.String("port", "8080", "Port to run the server on")
	metricsPort := pflag.String("metrics-port", "9090", "Port to run the metrics server on")
	readTimeout := pflag.Duration("read-timeout", constants.ServerReadTimeout, "HTTP server read timeout")
	writeTimeout := pflag.Duration("write-timeout", constants.ServerWriteTimeout, "HTTP server write timeout")
	idleTimeout := pflag.Duration("idle-timeout", constants.ServerIdleTimeout, "HTTP server idle timeout")
	maxRequestSize := pflag.Int64("max-request-size", constants.ServerMaxRequestSize, "Maximum request size in bytes")
	shutdownTimeout := pflag.Duration("shutdown-timeout", constants.ServerShutdownTimeout, "Graceful shutdown timeout")

	// Service identity
	serviceName := pflag.String("service-name", "api-python", "Service identity reported on the root route")
	serviceVersion := pflag.String("service-version", "1.0.0", "Service version reported on the health endpoint")
	environment := pflag.String("environment", "production", "Deployment environment name")

	// Observability
	logLevel := pflag.String("log-level", "info", "Log level: debug, info, warn, error")
	logFormat := pflag.String("log-format", "json", "Log format: json, console")

	// Rate limiting
	rateLimitEnabled := pflag.Bool("rate-limit-enabled", false, "Enable rate limiting")
	rateLimitRPS := pflag.Float64("rate-limit-rps", 100, "Rate limit requests per second per client")
	rateLimitBurst := pflag.Int("rate-limit-burst", 200, "Rate limit burst size per client")

	// Hot reload
	hotReload := pflag.Bool("hot-reload", true, "Watch the config file and apply dynamic settings on change")
	hotReloadDebounce := pflag.Duration("hot-reload-debounce", 500*time.Millisecond, "Debounce time for hot reload events")

	// TLS
	tlsEnabled := pflag.Bool("tls-enabled", false, "Serve the main listener over TLS")
	tlsCertFile := pflag.String("tls-cert-file", "", "Path to TLS certificate file")
	tlsKeyFile := pflag.String("tls-key-file", "", "Path to TLS key file")

	pflag.Parse()

	cliFlags := &config.CLIFlags{
		Host:              host,
		Port:              port,
		MetricsPort:       metricsPort,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
		MaxRequestSize:    maxRequestSize,
		ShutdownTimeout:   shutdownTimeout,
		ServiceName:       serviceName,
		ServiceVersion:    serviceVersion,
		Environment:       environment,
		LogLevel:          logLevel,
		LogFormat:         logFormat,
		RateLimitEnabled:  rateLimitEnabled,
		RateLimitRPS:      rateLimitRPS,
		RateLimitBurst:    rateLimitBurst,
		HotReload:         hotReload,
		HotReloadDebounce: hotReloadDebounce,
		TLSEnabled:        tlsEnabled,
		TLSCertFile:       tlsCertFile,
		TLSKeyFile:        tlsKeyFile,
	}

	cfg, err := config.LoadConfig(*configFile, cliFlags)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	srv, err := server.New(cfg, *configFile, cliFlags)
	if err != nil {
		log.Fatalf("Failed to create server: %v", err)
	}

	// Config hot reload only makes sense when running from a file
	var hotReloadManager *hotreload.Manager
	if *configFile != "" && cfg.HotReload.Enabled {
		hotReloadManager, err = hotreload.NewManager(srv.Logger())
		if err != nil {
			log.Fatalf("Failed to create hot reload manager: %v", err)
		}

		hotReloadManager.SetDebounceTime(cfg.HotReload.Debounce)

		if err := hotReloadManager.AddWatch(*configFile); err != nil {
			log.Fatalf("Failed to watch config file: %v", err)
		}
		if err := hotReloadManager.RegisterReloadable(srv); err != nil {
			log.Fatalf("Failed to register server for hot reload: %v", err)
		}
		if err := hotReloadManager.Start(); err != nil {
			log.Fatalf("Failed to start hot reload: %v", err)
		}
	}

	if err := srv.Start(); err != nil {
		log.Fatalf("Server error: %v", err)
	}

	if hotReloadManager != nil {
		if err := hotReloadManager.Shutdown(context.Background()); err != nil {
			log.Printf("Failed to shutdown hot reload manager: %v", err)
		}
	}

	os.Exit(0)
}
