package userRepo

import (
	"context"

	"gamelounge/models"
)

// UserRepository defines methods for user data access.
type UserRepository interface {
	// Create inserts a new user record.
	Create(ctx context.Context, user *models.User) error
	// GetByID retrieves a user by its unique ID. Returns nil when absent.
	GetByID(ctx context.Context, id string) (*models.User, error)
	// GetByEmail retrieves a user by its email address. Returns nil when absent.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}
