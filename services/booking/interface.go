package booking

import (
	"context"

	"gamelounge/models"
)

// Actor identifies who is performing a lifecycle operation. Admins may act on
// any booking; regular users only on their own.
type Actor struct {
	UserID string
	Admin  bool
}

// CreateInput carries the fields required to create a booking.
type CreateInput struct {
	Setup    string `json:"setup"`
	Players  int    `json:"players"`
	Date     string `json:"date"`
	Time     string `json:"time"`
	Duration int    `json:"duration"`
}

// SlotLocker serializes booking writes per (date, time, setup group).
type SlotLocker interface {
	// Acquire takes the lock and returns an unlock token.
	Acquire(ctx context.Context, date, slot, group string) (string, error)
	// Release frees the lock if token still owns it.
	Release(ctx context.Context, date, slot, group, token string) error
}

// BookingService is the booking lifecycle manager plus the availability
// resolver and pricing calculator it depends on.
type BookingService interface {
	// AvailableSlots computes the bookable slots for a date. Pure read.
	AvailableSlots(ctx context.Context, date string) ([]string, error)
	// Quote computes a price for the given setup category, duration and
	// player count.
	Quote(ctx context.Context, setupType string, durationHours, players int) (int, error)

	// Create validates availability, prices the session and persists a new
	// confirmed booking on behalf of actor.
	Create(ctx context.Context, actor Actor, input CreateInput) (*models.Booking, error)
	// Reschedule moves a booking to a new date and slot.
	Reschedule(ctx context.Context, actor Actor, id, newDate, newTime string) (*models.Booking, error)
	// Cancel marks a booking cancelled.
	Cancel(ctx context.Context, actor Actor, id string) (*models.Booking, error)
	// Delete permanently removes a booking.
	Delete(ctx context.Context, actor Actor, id string) error
	// LookupByIDAndEmail is the public, unauthenticated lookup.
	LookupByIDAndEmail(ctx context.Context, id, email string) (*models.Booking, error)
	// ListAll returns every booking, optionally filtered by date.
	ListAll(ctx context.Context, date string) ([]models.Booking, error)
	// ListByUser returns the bookings owned by a user.
	ListByUser(ctx context.Context, userID string) ([]models.Booking, error)
}
