package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/bookkeeper/internal/apperrors"
	"github.com/gin-gonic/gin"
)

// respondWithError maps service errors onto HTTP status codes.
// Storage is checked first since a storage error may wrap a decode failure
// that itself wraps ErrValidation.
func respondWithError(c *gin.Context, logger *slog.Logger, err error, failureMsg string) {
	switch {
	case errors.Is(err, apperrors.ErrStorage):
		logger.Error(failureMsg, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": failureMsg})
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrDuplicate):
		logger.Warn("Duplicate resource", slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		logger.Error(failureMsg, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": failureMsg})
	}
}
