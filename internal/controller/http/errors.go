package http

import (
	"errors"
	"net/http"

	"stylefeed/internal/usecase"

	"github.com/gin-gonic/gin"
)

// respondError translates usecase sentinels into HTTP statuses. Anything
// unrecognized is a plain 500 with a generic message so storage details never
// leak to clients.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, usecase.ErrUnauthenticated):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, usecase.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, usecase.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, usecase.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, usecase.ErrMisconfigured):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Service unavailable"})
	case errors.Is(err, usecase.ErrUpstream):
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
