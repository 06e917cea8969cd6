package booking

import (
	"context"

	"gamelounge/models"
)

// Quote computes the price for a session. Rates are re-fetched from the store
// on every call so admin rate changes apply immediately. The individual
// category is billed per player per hour; every other category per hour only.
func (s *DefaultBookingService) Quote(ctx context.Context, setupType string, durationHours, players int) (int, error) {
	table, err := s.Settings.GetPricingTable(ctx)
	if err != nil {
		return 0, err
	}
	rates := models.DefaultPricingTable().Rates
	if table != nil {
		rates = table.Rates
	}

	rate, ok := rates[setupType]
	if !ok {
		return 0, ErrUnknownSetupType
	}

	if setupType == models.CategoryIndividual {
		return rate * players * durationHours, nil
	}
	return rate * durationHours, nil
}
