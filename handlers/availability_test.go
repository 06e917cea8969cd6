package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"gamelounge/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

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

func TestGetAvailabilityHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := new(MockBookingService)
	settings := new(MockSettingsRepository)
	h := NewAvailabilityHandler(svc, settings, zap.NewNop())
	router := gin.New()
	router.GET("/api/availability", h.GetAvailability)

	svc.On("AvailableSlots", mock.Anything, "2026-09-05").Return([]string{"10:00", "11:00"}, nil)
	inv := models.DefaultSetupInventory()
	settings.On("GetSetupInventory", mock.Anything).Return(&inv, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/availability?date=2026-09-05", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Date              string          `json:"date"`
		AvailableSlots    []string        `json:"available_slots"`
		SetupAvailability map[string]bool `json:"setup_availability"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "2026-09-05", resp.Date)
	assert.Equal(t, []string{"10:00", "11:00"}, resp.AvailableSlots)
	assert.True(t, resp.SetupAvailability[models.SetupPS5One])
	assert.Len(t, resp.SetupAvailability, 4)
}

func TestGetAvailabilityRequiresDate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewAvailabilityHandler(new(MockBookingService), new(MockSettingsRepository), zap.NewNop())
	router := gin.New()
	router.GET("/api/availability", h.GetAvailability)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/availability", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Date parameter is required")
}
