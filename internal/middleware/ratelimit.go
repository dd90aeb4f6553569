package middleware

import (
	"sync"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/fixera/marketplace-api/internal/config"
	"github.com/fixera/marketplace-api/internal/httperr"
)

type rateLimiter struct {
	limiters sync.Map
	rps      float64
	burst    int
}

func newRateLimiter(cfg *config.Config) *rateLimiter {
	burst := cfg.RateLimitBurst
	if burst <= 0 {
		burst = 5
	}
	return &rateLimiter{
		rps:   cfg.RateLimitRPS,
		burst: burst,
	}
}

func (l *rateLimiter) getLimiter(key string) *rate.Limiter {
	if v, ok := l.limiters.Load(key); ok {
		if lim, ok := v.(*rate.Limiter); ok {
			return lim
		}
	}

	lim := rate.NewLimiter(rate.Limit(l.rps), l.burst)
	actual, loaded := l.limiters.LoadOrStore(key, lim)
	if loaded {
		if actualLim, ok := actual.(*rate.Limiter); ok {
			return actualLim
		}
	}
	return lim
}

// RateLimitMiddleware throttles per principal, falling back to the
// client IP for unauthenticated routes.
func RateLimitMiddleware(cfg *config.Config) gin.HandlerFunc {
	limiter := newRateLimiter(cfg)

	return func(c *gin.Context) {
		key := c.ClientIP()
		if p, ok := c.Get(ContextPrincipal); ok {
			if principal, ok := p.(string); ok && principal != "" {
				key = principal
			}
		}

		if !limiter.getLimiter(key).Allow() {
			httperr.TooManyRequests(c, "rate_limited", "Too many requests.")
			c.Abort()
			return
		}

		c.Next()
	}
}
