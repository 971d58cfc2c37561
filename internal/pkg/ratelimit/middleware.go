package ratelimit

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/KKaanaakk/pet-reminder/internal/pkg/response"
)

// Middleware creates a rate limiting middleware for Gin, keyed by client IP
func Middleware(limiter *RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.ClientIP()

		if !limiter.Allow(key) {
			resetTime := limiter.GetResetTime(key)
			retryAfter := time.Until(resetTime)
			if retryAfter < 0 {
				retryAfter = 0
			}

			c.Header("X-RateLimit-Limit", strconv.Itoa(limiter.limit))
			c.Header("X-RateLimit-Remaining", "0")
			c.Header("X-RateLimit-Reset", resetTime.Format(time.RFC3339))
			c.Header("Retry-After", strconv.Itoa(int(retryAfter.Seconds())+1))

			c.JSON(http.StatusTooManyRequests, response.APIResponse{
				Success:    false,
				StatusCode: http.StatusTooManyRequests,
				Message:    "Rate limit exceeded. Try again later.",
				Code:       "RATE_LIMITED",
				Data: gin.H{
					"retry_after": retryAfter.Round(time.Second).String(),
					"reset_time":  resetTime.Format(time.RFC3339),
				},
			})
			c.Abort()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(limiter.limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(limiter.GetRemaining(key)))
		c.Header("X-RateLimit-Reset", limiter.GetResetTime(key).Format(time.RFC3339))

		c.Next()
	}
}
