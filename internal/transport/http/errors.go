package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/iamasit07/reversi/backend/internal/domain"
)

// statusFor maps domain errors onto HTTP status codes
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrIllegalMove),
		errors.Is(err, domain.ErrInvalidCoordinate),
		errors.Is(err, domain.ErrInvalidMode):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidStateTransition),
		errors.Is(err, domain.ErrNotHumanTurn),
		errors.Is(err, domain.ErrGameNotFinished):
		return http.StatusConflict
	case errors.Is(err, domain.ErrGameNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, err error) {
	status := statusFor(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		message = "Internal server error"
	}
	c.JSON(status, gin.H{"error": message})
}
