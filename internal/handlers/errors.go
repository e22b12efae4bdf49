package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/pasale_ledger/internal/apperrors"
	"github.com/SscSPs/pasale_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// respondWithError maps service errors to HTTP statuses. Unexpected errors are
// logged and hidden behind fallbackMsg. The body carries the request id so a
// report can be matched to the log line.
func respondWithError(c *gin.Context, logger *slog.Logger, err error, fallbackMsg string) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Resource not found", slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, errorBody(c, err.Error()))
	case errors.Is(err, apperrors.ErrValidation), errors.Is(err, apperrors.ErrUnsupportedFormat):
		logger.Warn("Invalid request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, errorBody(c, err.Error()))
	case errors.Is(err, apperrors.ErrDuplicate):
		logger.Warn("Duplicate resource", slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, errorBody(c, err.Error()))
	default:
		logger.Error(fallbackMsg, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, errorBody(c, fallbackMsg))
	}
}

func errorBody(c *gin.Context, msg string) gin.H {
	body := gin.H{"error": msg}
	if id, ok := middleware.GetRequestIDFromContext(c); ok && id != "" {
		body["requestId"] = id
	}
	return body
}
