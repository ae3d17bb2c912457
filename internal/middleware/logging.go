package middleware

import (
	"context"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// loggerKey is the key used to store the logger in the Gin and request contexts.
// Using a custom type prevents collisions.
type contextKey string

const loggerKey = contextKey("logger")

// WithLogger returns a copy of ctx carrying logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// GetLoggerFromCtx retrieves the logger stored by WithLogger.
// It returns slog.Default() if none is found.
func GetLoggerFromCtx(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return slog.Default()
	}
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok && logger != nil {
		return logger
	}
	return slog.Default()
}

// StructuredLoggingMiddleware creates a Gin middleware handler that injects
// a request-scoped logger into the context.
func StructuredLoggingMiddleware(baseLogger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := uuid.NewString()

		// Create a logger enriched with request-specific fields
		requestLogger := baseLogger.With(
			slog.String("request_id", requestID),
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
		)

		c.Header("X-Request-ID", requestID)

		c.Set(string(loggerKey), requestLogger)
		c.Request = c.Request.WithContext(WithLogger(c.Request.Context(), requestLogger))

		c.Next()

		requestLogger.Info("Request completed",
			slog.Int("status", c.Writer.Status()),
			slog.Duration("latency", time.Since(start)),
		)
	}
}

// GetLoggerFromContext retrieves the request-scoped logger from the Gin context.
func GetLoggerFromContext(c *gin.Context) *slog.Logger {
	logger, exists := c.Get(string(loggerKey))
	if !exists {
		return GetLoggerFromCtx(c.Request.Context())
	}

	slogLogger, ok := logger.(*slog.Logger)
	if !ok {
		slog.Error("Logger in context is not of type *slog.Logger")
		return slog.Default()
	}

	return slogLogger
}
