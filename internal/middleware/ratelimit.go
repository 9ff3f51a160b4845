package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"kentkonut/internal/api/response"
	"kentkonut/internal/constants"
	"kentkonut/pkg/logger"
	"kentkonut/pkg/ratelimit"
)

// RateLimit allows limit requests per client IP and window under scope.
// A limiter error lets the request through.
func RateLimit(limiter ratelimit.Limiter, scope string, limit int, window time.Duration, log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limit <= 0 {
			c.Next()
			return
		}
		d, err := limiter.Allow(c.Request.Context(), ratelimit.Key(scope, c.ClientIP()), limit, window)
		if err != nil {
			log.Warn("rate limiter unavailable", "scope", scope, "error", err)
			c.Next()
			return
		}
		if !d.Allowed {
			log.Warn("rate limit exceeded", "scope", scope, "client_ip", c.ClientIP())
			c.Header("Retry-After", strconv.Itoa(d.RetryAfterSeconds()))
			response.Fail(c, http.StatusTooManyRequests, constants.MsgTooManyRequest)
			return
		}
		c.Header("X-RateLimit-Remaining", strconv.Itoa(d.Remaining))
		c.Next()
	}
}
