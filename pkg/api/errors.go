package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/loreweave/loreweave/pkg/services"
)

// mapServiceError maps service-layer errors to an HTTP status and a
// client-safe message.
func mapServiceError(err error) (int, string) {
	var validErr *services.ValidationError
	if errors.As(err, &validErr) {
		return http.StatusBadRequest, validErr.Error()
	}
	if errors.Is(err, services.ErrNotFound) {
		return http.StatusNotFound, "resource not found"
	}
	if errors.Is(err, services.ErrInvalidState) {
		return http.StatusConflict, "job state does not allow this operation"
	}
	if errors.Is(err, services.ErrAlreadyExists) {
		return http.StatusConflict, "resource already exists"
	}

	// Unexpected error
	slog.Error("Unexpected service error", "error", err)
	return http.StatusInternalServerError, "internal server error"
}

// serviceError writes the mapped error response and aborts the handler chain.
func serviceError(c *gin.Context, err error) {
	status, msg := mapServiceError(err)
	c.AbortWithStatusJSON(status, gin.H{"error": msg})
}

// badRequest writes a 400 with the given message.
func badRequest(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": msg})
}
