package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/infrastructure/ratelimit"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

// RateLimit enforces a per-IP request budget. Intended for the auth
// endpoints, where credential guessing is the concern. Limiter errors fail
// open so a dead redis does not take logins down with it.
func RateLimit(limiter ratelimit.RateLimiter, requests int, window time.Duration, log logger.Interface) gin.HandlerFunc {
	config := ratelimit.RateLimitConfig{Requests: requests, Window: window}

	return func(c *gin.Context) {
		allowed, err := limiter.Allow(c.ClientIP(), config)
		if err != nil {
			log.Warnw("rate limiter unavailable, allowing request", "error", err)
			c.Next()
			return
		}

		if !allowed {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "rate limit exceeded, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
