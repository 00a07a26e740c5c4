package middleware

import (
	"context"
	"strings"
	"sync"
	"time"

	apperrors "finance-dashboard/internal/errors"
	"finance-dashboard/internal/handlers"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

const visitorIdleTimeout = 3 * time.Minute

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter keeps one token bucket per client IP.
type RateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	rps      rate.Limit
	burst    int
	now      func() time.Time
}

func NewRateLimiter(requestsPerSecond, burst int) *RateLimiter {
	if requestsPerSecond <= 0 {
		requestsPerSecond = 5
	}
	if burst <= 0 {
		burst = 2 * requestsPerSecond
	}
	return &RateLimiter{
		visitors: make(map[string]*visitor),
		rps:      rate.Limit(requestsPerSecond),
		burst:    burst,
		now:      time.Now,
	}
}

func (rl *RateLimiter) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !rl.limiter(getIP(c)).Allow() {
				return handlers.SendError(c, apperrors.SystemRateLimitExceeded)
			}
			return next(c)
		}
	}
}

func (rl *RateLimiter) limiter(ip string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	v, exists := rl.visitors[ip]
	if !exists {
		v = &visitor{limiter: rate.NewLimiter(rl.rps, rl.burst)}
		rl.visitors[ip] = v
	}
	v.lastSeen = rl.now()
	return v.limiter
}

// Cleanup forgets visitors idle for longer than visitorIdleTimeout.
func (rl *RateLimiter) Cleanup() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	removed := 0
	for ip, v := range rl.visitors {
		if rl.now().Sub(v.lastSeen) > visitorIdleTimeout {
			delete(rl.visitors, ip)
			removed++
		}
	}
	return removed
}

// Run calls Cleanup every minute until ctx is done.
func (rl *RateLimiter) Run(ctx context.Context) error {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			rl.Cleanup()
		}
	}
}

func getIP(c echo.Context) string {
	if xff := c.Request().Header.Get("X-Forwarded-For"); xff != "" {
		return strings.TrimSpace(strings.Split(xff, ",")[0])
	}

	if xri := c.Request().Header.Get("X-Real-IP"); xri != "" {
		return xri
	}

	return c.RealIP()
}
