package booking

import (
	"context"
	"testing"

	"gamelounge/models"

	"github.com/stretchr/testify/assert"
)

func newPricingService(table *models.PricingTable) (*DefaultBookingService, *MockSettingsRepository) {
	settings := new(MockSettingsRepository)
	settings.On("GetPricingTable", context.Background()).Return(table, nil)
	return &DefaultBookingService{Settings: settings, Lock: stubLock{}}, settings
}

func TestQuoteIndividualBillsPerPlayer(t *testing.T) {
	svc, _ := newPricingService(defaultPricing())

	price, err := svc.Quote(context.Background(), models.CategoryIndividual, 2, 3)
	assert.NoError(t, err)
	assert.Equal(t, 720, price) // 120 * 3 players * 2 hours
}

func TestQuoteFlatCategoriesIgnorePlayers(t *testing.T) {
	svc, _ := newPricingService(defaultPricing())

	price, err := svc.Quote(context.Background(), models.CategorySquad, 2, 5)
	assert.NoError(t, err)
	assert.Equal(t, 800, price)

	price, err = svc.Quote(context.Background(), models.CategoryRacing, 3, 1)
	assert.NoError(t, err)
	assert.Equal(t, 450, price)
}

func TestQuoteUnknownSetupType(t *testing.T) {
	svc, _ := newPricingService(defaultPricing())

	_, err := svc.Quote(context.Background(), "vr_arena", 1, 1)
	assert.ErrorIs(t, err, ErrUnknownSetupType)
}

func TestQuoteFallsBackToDefaultsWhenUnseeded(t *testing.T) {
	svc, _ := newPricingService(nil)

	price, err := svc.Quote(context.Background(), models.CategoryPool, 1, 2)
	assert.NoError(t, err)
	assert.Equal(t, 400, price)
}

func TestQuoteUsesStoredRates(t *testing.T) {
	svc, _ := newPricingService(&models.PricingTable{
		Rates:   map[string]int{models.CategorySquad: 500},
		Version: 3,
	})

	price, err := svc.Quote(context.Background(), models.CategorySquad, 2, 4)
	assert.NoError(t, err)
	assert.Equal(t, 1000, price)

	// Stored table replaces the defaults entirely.
	_, err = svc.Quote(context.Background(), models.CategoryPool, 1, 1)
	assert.ErrorIs(t, err, ErrUnknownSetupType)
}
