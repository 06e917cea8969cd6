package models

import "time"

// Booking statuses.
const (
	StatusConfirmed   = "confirmed"
	StatusCancelled   = "cancelled"
	StatusRescheduled = "rescheduled"
)

// Booking represents a confirmed reservation of one setup for one time slot.
// Customer name/email/phone are denormalized from the user record at creation.
type Booking struct {
	ID       string `bson:"id" json:"id"`           // Unique booking identifier (UUID)
	UserID   string `bson:"user_id" json:"user_id"` // User who made the booking
	Name     string `bson:"name" json:"name"`
	Email    string `bson:"email" json:"email"`
	Phone    string `bson:"phone" json:"phone"`
	Setup    string `bson:"setup" json:"setup"`       // Setup category, e.g. "individual", "racing"
	Players  int    `bson:"players" json:"players"`   // Number of players
	Date     string `bson:"date" json:"date"`         // Booking date in "YYYY-MM-DD" format
	Time     string `bson:"time" json:"time"`         // Canonical slot label, e.g. "14:00"
	Duration int    `bson:"duration" json:"duration"` // Duration in hours
	Price    int    `bson:"price" json:"price"`       // Computed total price
	Status   string `bson:"status" json:"status"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}
