package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

const (
	limiterSweepInterval = 5 * time.Minute
	limiterIdleTTL       = time.Hour
)

// rateLimiterStore holds one token bucket per client IP.
type rateLimiterStore struct {
	mu        sync.Mutex
	limiters  map[string]*rateLimiterEntry
	rps       float64
	burst     int
	lastSweep time.Time
	now       func() time.Time
}

type rateLimiterEntry struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

func newRateLimiterStore(rps float64, burst int) *rateLimiterStore {
	return &rateLimiterStore{
		limiters:  make(map[string]*rateLimiterEntry),
		rps:       rps,
		burst:     burst,
		lastSweep: time.Now(),
		now:       time.Now,
	}
}

// RateLimitMiddleware enforces per-IP rate limiting on the metrics server.
//
// Stale limiters are swept while handling requests, so the middleware starts no goroutines.
// Rejected requests get 429 Too Many Requests with a Retry-After header.
func RateLimitMiddleware(rps float64, burst int, logger *slog.Logger) gin.HandlerFunc {
	store := newRateLimiterStore(rps, burst)

	return func(c *gin.Context) {
		clientIP := c.ClientIP()
		limiter := store.getLimiter(clientIP)

		if !limiter.Allow() {
			reservation := limiter.Reserve()
			retryAfter := int(reservation.Delay().Seconds())
			reservation.Cancel()
			if retryAfter < 1 {
				retryAfter = 1
			}

			logger.Debug("rate limit exceeded",
				slog.String("client_ip", clientIP),
				slog.Int("retry_after", retryAfter))

			c.Header("Retry-After", fmt.Sprintf("%d", retryAfter))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":   "rate_limit_exceeded",
				"message": "Too many requests. Please retry after the specified delay.",
			})
			return
		}

		c.Next()
	}
}

// getLimiter retrieves or creates the limiter for ip.
func (s *rateLimiterStore) getLimiter(ip string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if now.Sub(s.lastSweep) >= limiterSweepInterval {
		s.sweep(now)
	}

	if entry, ok := s.limiters[ip]; ok {
		entry.lastAccess = now
		return entry.limiter
	}

	entry := &rateLimiterEntry{
		limiter:    rate.NewLimiter(rate.Limit(s.rps), s.burst),
		lastAccess: now,
	}
	s.limiters[ip] = entry
	return entry.limiter
}

// sweep drops limiters idle for longer than limiterIdleTTL. Callers hold s.mu.
func (s *rateLimiterStore) sweep(now time.Time) {
	threshold := now.Add(-limiterIdleTTL)
	for ip, entry := range s.limiters {
		if entry.lastAccess.Before(threshold) {
			delete(s.limiters, ip)
		}
	}
	s.lastSweep = now
}

// size reports how many clients are tracked.
func (s *rateLimiterStore) size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.limiters)
}
