package middleware

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"meetmate/pkg/response"
)

// RateLimit enforces a per-client request rate keyed by client IP. Limiter
// state is kept in a TTL'd LRU so idle clients are cleaned up automatically.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.ClientIP()

		limiter, ok := m.limiters.Get(key)
		if !ok {
			limiter = rate.NewLimiter(m.rate, m.burst)
			m.limiters.Add(key, limiter)
		}

		if !limiter.Allow() {
			m.l.Warnf(c.Request.Context(), "rate limit exceeded for %s", key)
			response.TooManyRequests(c)
			c.Abort()
			return
		}

		c.Next()
	}
}
