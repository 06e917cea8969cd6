package booking

import (
	"context"

	"gamelounge/models"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
)

// Mock repositories.

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) Create(ctx context.Context, b *models.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBookingRepository) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *MockBookingRepository) UpdateFields(ctx context.Context, id string, fields bson.M) (*models.Booking, error) {
	args := m.Called(ctx, id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *MockBookingRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBookingRepository) ListAll(ctx context.Context, date string) ([]models.Booking, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Booking), args.Error(1)
}

func (m *MockBookingRepository) ListByUser(ctx context.Context, userID string) ([]models.Booking, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Booking), args.Error(1)
}

func (m *MockBookingRepository) ListActiveByDate(ctx context.Context, date string) ([]models.Booking, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Booking), args.Error(1)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, u *models.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

type MockSettingsRepository struct {
	mock.Mock
}

func (m *MockSettingsRepository) GetPricingTable(ctx context.Context) (*models.PricingTable, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PricingTable), args.Error(1)
}

func (m *MockSettingsRepository) EnsurePricingTable(ctx context.Context) (*models.PricingTable, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PricingTable), args.Error(1)
}

func (m *MockSettingsRepository) UpdatePricingRates(ctx context.Context, rates map[string]int) (*models.PricingTable, error) {
	args := m.Called(ctx, rates)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PricingTable), args.Error(1)
}

func (m *MockSettingsRepository) GetSetupInventory(ctx context.Context) (*models.SetupInventory, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SetupInventory), args.Error(1)
}

func (m *MockSettingsRepository) EnsureSetupInventory(ctx context.Context) (*models.SetupInventory, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SetupInventory), args.Error(1)
}

func (m *MockSettingsRepository) UpdateSetupFlags(ctx context.Context, flags map[string]bool) (*models.SetupInventory, error) {
	args := m.Called(ctx, flags)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SetupInventory), args.Error(1)
}

func (m *MockSettingsRepository) GetAdminCredentials(ctx context.Context) (*models.AdminCredentials, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AdminCredentials), args.Error(1)
}

func (m *MockSettingsRepository) SetAdminCredentials(ctx context.Context, creds *models.AdminCredentials) error {
	args := m.Called(ctx, creds)
	return args.Error(0)
}

func defaultPricing() *models.PricingTable {
	table := models.DefaultPricingTable()
	return &table
}

func defaultInventory() *models.SetupInventory {
	inv := models.DefaultSetupInventory()
	return &inv
}

// stubLock satisfies SlotLocker without a Redis backend.
type stubLock struct{}

func (stubLock) Acquire(ctx context.Context, date, slot, group string) (string, error) {
	return "token", nil
}

func (stubLock) Release(ctx context.Context, date, slot, group, token string) error {
	return nil
}
