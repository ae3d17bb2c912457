package middleware

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// NewMemoryLimiter builds an in-process limiter from a formatted rate such as "60-M".
func NewMemoryLimiter(formattedRate string) (*limiter.Limiter, error) {
	rate, err := limiter.NewRateFromFormatted(formattedRate)
	if err != nil {
		return nil, err
	}
	return limiter.New(memory.NewStore(), rate), nil
}

// RateLimit creates a Gin middleware for rate limiting requests by client IP.
func RateLimit(limiterInstance *limiter.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		logger := GetLoggerFromCtx(c.Request.Context())

		context, err := limiterInstance.Get(c.Request.Context(), ip)
		if err != nil {
			logger.Error("Failed to get rate limit context", slog.String("ip", ip), slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error during rate limit check"})
			return
		}

		if context.Reached {
			logger.Warn("Rate limit exceeded", slog.String("ip", ip), slog.Int64("limit", context.Limit), slog.Int64("remaining_requests", context.Remaining))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests. Please try again later."})
			return
		}

		c.Next()
	}
}
