package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"smarteventadder/pkg/response"
)

// RateLimit bounds the per-client request rate of routes that call the
// generative model, keyed by client IP.
// Over-budget requests get 429 immediately instead of queueing behind the
// model's latency.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !m.limiterFor(c.ClientIP()).Allow() {
			m.l.Warnf(c.Request.Context(), "rate limit exceeded for %s %s", c.Request.Method, c.Request.URL.Path)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, response.Resp{
				ErrorCode: http.StatusTooManyRequests,
				Message:   "too many requests, slow down",
			})
			return
		}
		c.Next()
	}
}
