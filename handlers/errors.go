package handlers

import (
	"errors"
	"net/http"

	"gamelounge/services/booking"
)

// bookingErrorStatus maps booking service errors onto HTTP statuses.
func bookingErrorStatus(err error) int {
	var ve booking.ValidationError
	switch {
	case errors.As(err, &ve),
		errors.Is(err, booking.ErrInvalidTime),
		errors.Is(err, booking.ErrSlotUnavailable),
		errors.Is(err, booking.ErrUnknownSetupType),
		errors.Is(err, booking.ErrBookingCancelled):
		return http.StatusBadRequest
	case errors.Is(err, booking.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, booking.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
