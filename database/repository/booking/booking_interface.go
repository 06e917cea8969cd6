package bookingRepo

import (
	"context"

	"gamelounge/models"

	"go.mongodb.org/mongo-driver/bson"
)

// BookingRepository defines methods for booking data access.
type BookingRepository interface {
	// Create inserts a new booking record.
	Create(ctx context.Context, booking *models.Booking) error
	// GetByID retrieves a booking by its unique ID. Returns nil when absent.
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	// UpdateFields applies a partial update to a booking and returns the
	// updated record.
	UpdateFields(ctx context.Context, id string, fields bson.M) (*models.Booking, error)
	// Delete permanently removes a booking record.
	Delete(ctx context.Context, id string) error
	// ListAll retrieves all bookings, optionally filtered by date.
	ListAll(ctx context.Context, date string) ([]models.Booking, error)
	// ListByUser retrieves all bookings owned by a user.
	ListByUser(ctx context.Context, userID string) ([]models.Booking, error)
	// ListActiveByDate retrieves the non-cancelled bookings for a date.
	ListActiveByDate(ctx context.Context, date string) ([]models.Booking, error)
}
