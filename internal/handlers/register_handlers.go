package handlers

import (
	"fmt"
	"net/http"

	portssvc "github.com/SscSPs/bookkeeper/internal/core/ports/services"
	"github.com/SscSPs/bookkeeper/internal/dto"
	"github.com/SscSPs/bookkeeper/internal/middleware"
	"github.com/SscSPs/bookkeeper/internal/platform/config"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) error {
	if err := dto.RegisterValidators(); err != nil {
		return fmt.Errorf("failed to register request validators: %w", err)
	}

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	return setupAPIV1Routes(r, cfg, services)
}

// setupAPIV1Routes configures the /api/v1 group with CORS and rate limiting.
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) error {
	lim, err := middleware.NewMemoryLimiter(cfg.RateLimit)
	if err != nil {
		return fmt.Errorf("invalid RATE_LIMIT %q: %w", cfg.RateLimit, err)
	}

	v1 := r.Group("/api/v1", middleware.CORS(cfg.CORSAllowedOrigins), middleware.RateLimit(lim))

	registerTransactionRoutes(v1, services.Bookkeeping)
	registerLedgerRoutes(v1, services.Bookkeeping)
	return nil
}
