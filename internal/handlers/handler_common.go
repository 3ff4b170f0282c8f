package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/pennywiseapp/pennywise_backend/internal/apperrors"
	"github.com/gin-gonic/gin"
)

// ErrorResponse is the error envelope returned by every handler.
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondRecordError maps the common record-access failures onto HTTP codes.
// Validation errors are handled at each call site because their messages are
// user-facing.
func respondRecordError(c *gin.Context, logger *slog.Logger, err error, kind string) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Record not found", slog.String("kind", kind))
		c.JSON(http.StatusNotFound, ErrorResponse{Error: kind + " not found"})
	case errors.Is(err, apperrors.ErrForbidden):
		logger.Warn("Record access forbidden", slog.String("kind", kind))
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "Forbidden"})
	default:
		logger.Error("Record operation failed", slog.String("kind", kind), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to process " + kind})
	}
}
