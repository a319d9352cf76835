package api

import (
	"errors"
	"net/http"

	"github.com/duchauuuuu/flight-backend/internal/domain"
)

// statusFromError maps domain failures onto HTTP statuses. Anything
// unrecognized is a plain server error.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidTransition):
		return http.StatusConflict
	case errors.Is(err, domain.ErrInsufficientSeats):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrInvalidDate):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
