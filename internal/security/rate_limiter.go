package security

import (
	"encoding/json"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"github.com/statuskit/status-api/internal/constants"
)

// RateLimiter throttles requests per client identity. Each identity gets its
// own token bucket; buckets expire from the cache after the cleanup interval
// of inactivity.
type RateLimiter struct {
	limiters *cache.Cache
	config   *RateLimitConfig
}

// NewRateLimiter creates a new rate limiter from configuration
func NewRateLimiter(config *RateLimitConfig) *RateLimiter {
	cleanup := config.CleanupInterval
	if cleanup == 0 {
		cleanup = 5 * time.Minute
	}

	maxCacheSize := config.MaxCacheSize
	if maxCacheSize == 0 {
		maxCacheSize = 10000
	}

	rl := &RateLimiter{
		limiters: cache.New(cleanup, cleanup*2),
		config:   config,
	}

	if config.Enabled {
		go rl.periodicCleanup(cleanup, maxCacheSize)
	}

	return rl
}

// periodicCleanup bounds the limiter cache so an address-spoofing flood
// cannot exhaust memory.
func (rl *RateLimiter) periodicCleanup(interval time.Duration, maxSize int) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		if rl.limiters.ItemCount() <= maxSize {
			continue
		}
		// go-cache exposes no access timestamps, so eviction is wholesale.
		rl.limiters.Flush()
	}
}

// Allow reports whether the identified client may proceed
func (rl *RateLimiter) Allow(identifier string) bool {
	if !rl.config.Enabled {
		return true
	}
	return rl.limiterFor(identifier).Allow()
}

func (rl *RateLimiter) limiterFor(identifier string) *rate.Limiter {
	if item, found := rl.limiters.Get(identifier); found {
		return item.(*rate.Limiter)
	}
	limiter := rate.NewLimiter(rate.Limit(rl.config.RequestsPerSecond), rl.config.Burst)
	rl.limiters.Set(identifier, limiter, cache.DefaultExpiration)
	return limiter
}

// Middleware enforces the rate limit on every request except the probe and
// metrics endpoints.
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !rl.config.Enabled || shouldSkipRateLimit(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		identifier := "ip:" + ClientIP(r)
		if !rl.Allow(identifier) {
			retryAfter := int(float64(rl.config.Burst)/rl.config.RequestsPerSecond) + 1

			w.Header().Set(constants.HeaderContentType, constants.ContentTypeJSON)
			w.Header().Set(constants.HeaderXRateLimitLimit, strconv.Itoa(rl.config.Burst))
			w.Header().Set(constants.HeaderXRateLimitRemaining, "0")
			w.Header().Set(constants.HeaderRetryAfter, strconv.Itoa(retryAfter))
			w.WriteHeader(http.StatusTooManyRequests)

			_ = json.NewEncoder(w).Encode(map[string]any{
				"error":       "RATE_LIMIT_EXCEEDED",
				"message":     "Rate limit exceeded",
				"retry_after": retryAfter,
			})
			return
		}

		next.ServeHTTP(w, r)
	})
}

// ClientIP extracts the client address, preferring proxy headers
func ClientIP(r *http.Request) string {
	if xff := r.Header.Get(constants.HeaderXForwardedFor); xff != "" {
		ips := strings.Split(xff, ",")
		if len(ips) > 0 {
			return strings.TrimSpace(ips[0])
		}
	}

	if xri := r.Header.Get(constants.HeaderXRealIP); xri != "" {
		return strings.TrimSpace(xri)
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func shouldSkipRateLimit(path string) bool {
	switch path {
	case constants.PathHealth, constants.PathReady, constants.PathMetrics:
		return true
	}
	return false
}
