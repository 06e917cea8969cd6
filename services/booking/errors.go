package booking

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when the referenced booking does not exist.
	ErrNotFound = errors.New("booking not found")
	// ErrForbidden is returned when the caller is neither an admin nor the
	// owner of the booking, or when a public lookup presents the wrong email.
	ErrForbidden = errors.New("unauthorized access")
	// ErrSlotUnavailable is returned when the requested slot has no remaining
	// capacity for the requested setup.
	ErrSlotUnavailable = errors.New("selected time slot is not available")
	// ErrInvalidTime is returned when a reschedule target is outside the
	// operating hours or malformed.
	ErrInvalidTime = errors.New("invalid time slot, hours must be between 10:00 and 23:00")
	// ErrUnknownSetupType is returned when the setup category has no entry in
	// the rate table.
	ErrUnknownSetupType = errors.New("unknown setup type")
	// ErrBookingCancelled is returned when an operation would transition a
	// booking out of the cancelled state.
	ErrBookingCancelled = errors.New("booking is cancelled")
)

// ValidationError reports a missing or malformed request field.
type ValidationError struct {
	Field string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("missing required field: %s", e.Field)
}
