package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"

	"github.com/statuskit/status-api/internal/apidoc"
	"github.com/statuskit/status-api/internal/config"
	"github.com/statuskit/status-api/internal/constants"
	"github.com/statuskit/status-api/internal/observability"
	"github.com/statuskit/status-api/internal/security"
)

// Server serves the status API: the root route with the fixed service
// status payload, the health and readiness probes, the embedded OpenAPI
// document, and Prometheus metrics on a dedicated listener.
type Server struct {
	configFile string
	config     *config.Config
	cliFlags   *config.CLIFlags
	doc        *apidoc.Document
	server     *http.Server
	payloads   *cache.Cache

	rateLimiter *security.RateLimiter

	logger    *observability.Logger
	metrics   *observability.Metrics
	tracer    *observability.Tracer
	startTime time.Time

	// mu guards the dynamic subset of config (service identity, payloads)
	// which the hot reload may swap at runtime.
	mu sync.RWMutex
}

// New creates a server from configuration. configFile is the path the
// configuration was loaded from; empty when running on flags and env only.
// cliFlags are the startup flag values, retained so a reload re-applies the
// full precedence chain instead of reverting explicit overrides to the file.
func New(cfg *config.Config, configFile string, cliFlags *config.CLIFlags) (*Server, error) {
	doc, err := apidoc.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load API description: %w", err)
	}

	logger, err := observability.NewLogger(cfg.Observability.Logging)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	metrics := observability.NewMetrics()
	if err := metrics.Register(); err != nil {
		return nil, fmt.Errorf("failed to register metrics: %w", err)
	}

	tracer, err := observability.NewTracer(cfg.Observability.Tracing, cfg.Service)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize tracer: %w", err)
	}

	return &Server{
		configFile:  configFile,
		config:      cfg,
		cliFlags:    cliFlags,
		doc:         doc,
		payloads:    cache.New(cache.NoExpiration, 0),
		rateLimiter: security.NewRateLimiter(&cfg.Security.RateLimit),
		logger:      logger,
		metrics:     metrics,
		tracer:      tracer,
		startTime:   time.Now(),
	}, nil
}

// Logger exposes the server's logger for components wired up in main
func (s *Server) Logger() *zap.Logger {
	return s.logger.Logger
}

// routes builds the route table for the main listener. "/{$}" matches
// exactly the root; the bare "/" pattern catches everything else so unknown
// paths get a JSON 404.
func (s *Server) routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/{$}", s.statusHandler)
	mux.HandleFunc("/", s.notFoundHandler)
	mux.HandleFunc(constants.PathHealth, s.healthHandler)
	mux.HandleFunc(constants.PathReady, s.readinessHandler)
	mux.HandleFunc(constants.PathOpenAPI, s.openapiHandler)
	return mux
}

// Start runs the server until SIGINT or SIGTERM, then shuts down gracefully.
// The static configuration (listeners, timeouts, TLS) is snapshotted here;
// a reload swaps the config pointer concurrently but only the dynamic subset
// takes effect without a restart.
func (s *Server) Start() error {
	cfg := s.currentConfig()
	handler := s.applyMiddleware(s.routes())

	s.server = &http.Server{
		Addr:           fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
		Handler:        handler,
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		IdleTimeout:    cfg.Server.IdleTimeout,
		MaxHeaderBytes: 1 << 20,
	}

	s.logger.Info("Starting server",
		zap.String("host", cfg.Server.Host),
		zap.String("port", cfg.Server.Port),
		zap.String("service", cfg.Service.Name),
		zap.Bool("tls", cfg.TLS.Enabled),
	)

	s.metrics.SetHealthStatus(true)

	var metricsServer *http.Server
	if cfg.Observability.Metrics.Enabled {
		metricsMux := http.NewServeMux()
		metricsMux.Handle(cfg.Observability.Metrics.Path, s.metrics.Handler())
		metricsServer = &http.Server{
			Addr:              fmt.Sprintf(":%s", cfg.Server.MetricsPort),
			Handler:           metricsMux,
			ReadHeaderTimeout: 5 * time.Second,
		}
		s.logger.Info("Starting metrics server",
			zap.String("port", cfg.Server.MetricsPort),
		)
		go func() {
			if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				s.logger.Error("Metrics server failed", zap.Error(err))
			}
		}()
	}

	go func() {
		var err error
		if cfg.TLS.Enabled {
			err = s.server.ListenAndServeTLS(cfg.TLS.CertFile, cfg.TLS.KeyFile)
		} else {
			err = s.server.ListenAndServe()
		}
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	s.logger.Info("Shutting down server...")
	s.metrics.SetHealthStatus(false)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	var wg sync.WaitGroup
	errChan := make(chan error, 2)

	if metricsServer != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := metricsServer.Shutdown(ctx); err != nil {
				s.logger.Error("Failed to shutdown metrics server", zap.Error(err))
				errChan <- fmt.Errorf("metrics server shutdown: %w", err)
			}
		}()
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := s.server.Shutdown(ctx); err != nil {
			s.logger.Error("Failed to shutdown main server", zap.Error(err))
			errChan <- fmt.Errorf("main server shutdown: %w", err)
		}
	}()

	wg.Wait()
	close(errChan)

	if err := s.tracer.Shutdown(ctx); err != nil {
		s.logger.Error("Failed to shutdown tracer", zap.Error(err))
	}

	for err := range errChan {
		if err != nil {
			return err
		}
	}
	return nil
}

// Name identifies the server to the hot reload coordinator
func (s *Server) Name() string {
	return "server"
}

// Reload re-reads the configuration file and applies the dynamic subset:
// log level and service identity. Changes to listeners, timeouts or TLS
// require a restart and are only reported.
func (s *Server) Reload(ctx context.Context) error {
	if s.configFile == "" {
		return nil
	}

	// Re-run the full precedence chain so explicit CLI overrides survive
	// the reload instead of reverting to the file values.
	cfg, err := config.LoadConfig(s.configFile, s.cliFlags)
	if err != nil {
		return fmt.Errorf("failed to reload config: %w", err)
	}

	s.mu.Lock()
	old := s.config
	s.config = cfg
	s.mu.Unlock()

	s.logger.SetLevel(cfg.Observability.Logging.Level)

	if cfg.Service.Name != old.Service.Name {
		// Invalidate cached payloads so the next response carries the
		// new identity.
		s.payloads.Flush()
		s.logger.Info("Service identity changed",
			zap.String("old", old.Service.Name),
			zap.String("new", cfg.Service.Name),
		)
	}

	if cfg.Server != old.Server || cfg.TLS != old.TLS {
		s.logger.Warn("Server or TLS configuration changed; restart required to apply")
	}

	return nil
}

// currentConfig returns the live configuration. Reload swaps the pointer
// under mu, so concurrent readers must come through here.
func (s *Server) currentConfig() *config.Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.config
}

// serviceIdentity returns the current service identity fields
func (s *Server) serviceIdentity() config.ServiceConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.config.Service
}
