package booking

import (
	"context"
	"fmt"
	"time"

	bookingRepo "gamelounge/database/repository/booking"
	settingsRepo "gamelounge/database/repository/settings"
	userRepo "gamelounge/database/repository/user"
	"gamelounge/models"
	"gamelounge/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// DefaultBookingService implements BookingService against the Mongo
// repositories. The redis slot lock serializes the availability-check-then-
// write window per (date, time, setup group) so two concurrent requests for
// the last unit of a slot cannot both pass the check.
type DefaultBookingService struct {
	Repo     bookingRepo.BookingRepository
	Users    userRepo.UserRepository
	Settings settingsRepo.SettingsRepository
	Lock     SlotLocker
}

func (s *DefaultBookingService) validateCreate(input CreateInput) error {
	switch {
	case input.Setup == "":
		return ValidationError{Field: "setup"}
	case input.Players <= 0:
		return ValidationError{Field: "players"}
	case input.Date == "":
		return ValidationError{Field: "date"}
	case input.Time == "":
		return ValidationError{Field: "time"}
	case input.Duration <= 0:
		return ValidationError{Field: "duration"}
	}
	return nil
}

// Create validates availability, prices the session and persists a confirmed
// booking denormalizing the actor's contact details.
func (s *DefaultBookingService) Create(ctx context.Context, actor Actor, input CreateInput) (*models.Booking, error) {
	if err := s.validateCreate(input); err != nil {
		return nil, err
	}

	usr, err := s.Users.GetByID(ctx, actor.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user profile: %w", err)
	}
	if usr == nil {
		return nil, fmt.Errorf("user %s not found", actor.UserID)
	}

	price, err := s.Quote(ctx, input.Setup, input.Duration, input.Players)
	if err != nil {
		return nil, err
	}

	group := GroupForCategory(input.Setup)
	token, err := s.Lock.Acquire(ctx, input.Date, input.Time, string(group))
	if err != nil {
		return nil, fmt.Errorf("failed to lock slot: %w", err)
	}
	defer func() {
		if err := s.Lock.Release(ctx, input.Date, input.Time, string(group), token); err != nil {
			utils.GetLogger().Warn("failed to release slot lock", zap.Error(err))
		}
	}()

	// Re-check inside the lock: the winner of a concurrent race books the
	// last unit, the loser sees it and fails here.
	tally, inventory, err := s.loadTallies(ctx, input.Date)
	if err != nil {
		return nil, err
	}
	if !slotFreeForGroup(tally, inventory, input.Time, group) {
		return nil, ErrSlotUnavailable
	}

	now := time.Now()
	record := &models.Booking{
		ID:        uuid.New().String(),
		UserID:    usr.ID,
		Name:      usr.Name,
		Email:     usr.Email,
		Phone:     usr.Phone,
		Setup:     input.Setup,
		Players:   input.Players,
		Date:      input.Date,
		Time:      input.Time,
		Duration:  input.Duration,
		Price:     price,
		Status:    models.StatusConfirmed,
		CreatedAt: now,
	}
	if err := s.Repo.Create(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

// authorize loads a booking and checks the actor may act on it.
func (s *DefaultBookingService) authorize(ctx context.Context, actor Actor, id string) (*models.Booking, error) {
	record, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, ErrNotFound
	}
	if !actor.Admin && record.UserID != actor.UserID {
		return nil, ErrForbidden
	}
	return record, nil
}

// Reschedule moves a booking to a new date and slot, re-validating
// availability under the slot lock.
func (s *DefaultBookingService) Reschedule(ctx context.Context, actor Actor, id, newDate, newTime string) (*models.Booking, error) {
	record, err := s.authorize(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if record.Status == models.StatusCancelled {
		return nil, ErrBookingCancelled
	}

	hour, err := models.SlotHour(newTime)
	if err != nil || hour < models.OpeningHour || hour > models.ClosingHour {
		return nil, ErrInvalidTime
	}

	group := GroupForCategory(record.Setup)
	token, err := s.Lock.Acquire(ctx, newDate, newTime, string(group))
	if err != nil {
		return nil, fmt.Errorf("failed to lock slot: %w", err)
	}
	defer func() {
		if err := s.Lock.Release(ctx, newDate, newTime, string(group), token); err != nil {
			utils.GetLogger().Warn("failed to release slot lock", zap.Error(err))
		}
	}()

	tally, inventory, err := s.loadTallies(ctx, newDate)
	if err != nil {
		return nil, err
	}
	if !slotFreeForGroup(tally, inventory, newTime, group) {
		return nil, ErrSlotUnavailable
	}

	updated, err := s.Repo.UpdateFields(ctx, id, bson.M{
		"date":       newDate,
		"time":       newTime,
		"status":     models.StatusRescheduled,
		"updated_at": time.Now(),
	})
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrNotFound
	}
	return updated, nil
}

// Cancel marks a booking cancelled. Re-cancelling an already cancelled
// booking rewrites the same status.
func (s *DefaultBookingService) Cancel(ctx context.Context, actor Actor, id string) (*models.Booking, error) {
	if _, err := s.authorize(ctx, actor, id); err != nil {
		return nil, err
	}

	updated, err := s.Repo.UpdateFields(ctx, id, bson.M{
		"status":     models.StatusCancelled,
		"updated_at": time.Now(),
	})
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrNotFound
	}
	return updated, nil
}

// Delete permanently removes a booking record.
func (s *DefaultBookingService) Delete(ctx context.Context, actor Actor, id string) error {
	if _, err := s.authorize(ctx, actor, id); err != nil {
		return err
	}
	return s.Repo.Delete(ctx, id)
}

// LookupByIDAndEmail is the public lookup: the stored email must match
// exactly. A wrong email on an existing id yields ErrForbidden, not
// ErrNotFound.
func (s *DefaultBookingService) LookupByIDAndEmail(ctx context.Context, id, email string) (*models.Booking, error) {
	record, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, ErrNotFound
	}
	if record.Email != email {
		return nil, ErrForbidden
	}
	return record, nil
}

// ListAll returns every booking, optionally filtered by date.
func (s *DefaultBookingService) ListAll(ctx context.Context, date string) ([]models.Booking, error) {
	return s.Repo.ListAll(ctx, date)
}

// ListByUser returns the bookings owned by a user.
func (s *DefaultBookingService) ListByUser(ctx context.Context, userID string) ([]models.Booking, error) {
	return s.Repo.ListByUser(ctx, userID)
}
