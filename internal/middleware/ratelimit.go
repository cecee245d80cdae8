package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	pkgErrors "wardrobe-assistant/pkg/errors"
	"wardrobe-assistant/pkg/response"
)

// AIRateLimit throttles the AI endpoints per caller. Local validation and
// plain CRUD are never throttled; only provider-backed routes sit behind it.
func (m Middleware) AIRateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		sc := GetScope(c)

		if err := m.aiRateLimit.Allow(sc.UserID); err != nil {
			m.l.Warnf(c.Request.Context(), "middleware.AIRateLimit: user %s throttled", sc.UserID)
			response.Error(c, pkgErrors.NewHTTPError(429, "too many AI requests, slow down"))
			c.Abort()
			return
		}

		c.Next()
	}
}

// rateLimiter keeps a per-key token bucket with idle-entry expiry.
type rateLimiter struct {
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func newRateLimiter(requestsPerMin int) *rateLimiter {
	if requestsPerMin <= 0 {
		requestsPerMin = 10
	}
	burst := requestsPerMin / 5
	if burst < 1 {
		burst = 1
	}
	return &rateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](1000, nil, 5*time.Minute),
		rate:     rate.Limit(float64(requestsPerMin) / 60.0),
		burst:    burst,
	}
}

func (rl *rateLimiter) Allow(key string) error {
	limiter, ok := rl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters.Add(key, limiter)
	}

	if !limiter.Allow() {
		return pkgErrors.NewHTTPError(429, "rate limit exceeded")
	}
	return nil
}
