package constants

import "time"

// Environment variable constants
const (
	EnvHost              = "STATUS_API_HOST"
	EnvPort              = "STATUS_API_PORT"
	EnvMetricsPort       = "STATUS_API_METRICS_PORT"
	EnvReadTimeout       = "STATUS_API_READ_TIMEOUT"
	EnvWriteTimeout      = "STATUS_API_WRITE_TIMEOUT"
	EnvIdleTimeout       = "STATUS_API_IDLE_TIMEOUT"
	EnvMaxRequestSize    = "STATUS_API_MAX_REQUEST_SIZE"
	EnvShutdownTimeout   = "STATUS_API_SHUTDOWN_TIMEOUT"
	EnvServiceName       = "STATUS_API_SERVICE_NAME"
	EnvServiceVersion    = "STATUS_API_SERVICE_VERSION"
	EnvEnvironment       = "STATUS_API_ENVIRONMENT"
	EnvLogLevel          = "STATUS_API_LOG_LEVEL"
	EnvLogFormat         = "STATUS_API_LOG_FORMAT"
	EnvHotReload         = "STATUS_API_HOT_RELOAD"
	EnvHotReloadDebounce = "STATUS_API_HOT_RELOAD_DEBOUNCE"
	EnvTLSEnabled        = "STATUS_API_TLS_ENABLED"
	EnvTLSCertFile       = "STATUS_API_TLS_CERT_FILE"
	EnvTLSKeyFile        = "STATUS_API_TLS_KEY_FILE"
)

// HTTP method constants
const (
	MethodGET     = "GET"
	MethodHEAD    = "HEAD"
	MethodOPTIONS = "OPTIONS"
)

// HTTP header constants
const (
	HeaderContentType   = "Content-Type"
	HeaderOrigin        = "Origin"
	HeaderXForwardedFor = "X-Forwarded-For"
	HeaderXRealIP       = "X-Real-IP"
	HeaderCorrelationID = "X-Correlation-ID"
	HeaderAllow         = "Allow"
)

// Content type constants
const (
	ContentTypeJSON = "application/json"
)

// CORS headers
const (
	HeaderAccessControlAllowOrigin      = "Access-Control-Allow-Origin"
	HeaderAccessControlAllowMethods     = "Access-Control-Allow-Methods"
	HeaderAccessControlAllowHeaders     = "Access-Control-Allow-Headers"
	HeaderAccessControlAllowCredentials = "Access-Control-Allow-Credentials"
	HeaderAccessControlMaxAge           = "Access-Control-Max-Age"
)

// Rate limiting headers
const (
	HeaderXRateLimitLimit     = "X-RateLimit-Limit"
	HeaderXRateLimitRemaining = "X-RateLimit-Remaining"
	HeaderRetryAfter          = "Retry-After"
)

// Well-known paths on the main listener
const (
	PathStatus  = "/"
	PathHealth  = "/health"
	PathReady   = "/ready"
	PathMetrics = "/metrics"
	PathOpenAPI = "/openapi.json"
)

// Service status values
const (
	StatusOK      = "ok"
	StatusHealthy = "healthy"
)

// Server timeout constants (fallbacks when configuration is absent)
const (
	ServerReadTimeout     = 15 * time.Second
	ServerWriteTimeout    = 15 * time.Second
	ServerIdleTimeout     = 60 * time.Second
	ServerMaxRequestSize  = 1 << 20 // the API consumes no request bodies; limit is protective
	ServerShutdownTimeout = 30 * time.Second
)
