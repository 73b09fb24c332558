package api

import (
	"errors"
	"net/http"

	"github.com/Domenick1991/flightbooking/internal/domain"
)

// statusFromError maps the booking failure taxonomy onto HTTP statuses.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, domain.ErrFlightNotFound),
		errors.Is(err, domain.ErrPassengerNotFound),
		errors.Is(err, domain.ErrTicketNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrSeatUnavailable),
		errors.Is(err, domain.ErrSeatLocked),
		errors.Is(err, domain.ErrSeatConflict):
		return http.StatusConflict
	case errors.Is(err, domain.ErrInvalidPaymentMethod):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrPaymentFailed):
		return http.StatusPaymentRequired
	default:
		return http.StatusInternalServerError
	}
}
