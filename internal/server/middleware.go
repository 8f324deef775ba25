package server

import (
	"net/http"

	"github.com/statuskit/status-api/internal/server/middleware"
)

// applyMiddleware applies the complete middleware chain to the handler.
// Wrapping happens innermost-first, so logging ends up outermost.
func (s *Server) applyMiddleware(handler http.Handler) http.Handler {
	cfg := s.currentConfig()

	if cfg.Security.RateLimit.Enabled {
		handler = s.rateLimiter.Middleware(handler)
	}

	if cfg.Security.CORS.Enabled {
		corsMiddleware := middleware.NewCORSMiddleware(
			cfg.Security.CORS.AllowedOrigins,
			cfg.Security.CORS.AllowedMethods,
			cfg.Security.CORS.AllowedHeaders,
			cfg.Security.CORS.AllowCredentials,
			cfg.Security.CORS.MaxAge,
		)
		handler = corsMiddleware.Handler(handler)
	}

	if cfg.Security.Headers.Enabled {
		securityHeaders := &middleware.SecurityHeaders{
			HSTSMaxAge:            cfg.Security.Headers.HSTSMaxAge,
			ContentSecurityPolicy: cfg.Security.Headers.ContentSecurityPolicy,
		}
		handler = securityHeaders.Handler(handler)
	}

	handler = middleware.RequestSizeLimitMiddleware(cfg.Server.MaxRequestSize)(handler)
	handler = middleware.CorrelationID(handler)
	handler = middleware.LoggingMiddleware(s.logger.Logger)(handler)

	return handler
}
