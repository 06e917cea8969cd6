package settingsRepo

import (
	"context"

	"gamelounge/models"
)

// SettingsRepository manages the singleton configuration records: the pricing
// table, the setup inventory and the stored admin credentials. Callers always
// read through the store so admin writes are immediately visible.
type SettingsRepository interface {
	// GetPricingTable retrieves the pricing record. Returns nil when absent.
	GetPricingTable(ctx context.Context) (*models.PricingTable, error)
	// EnsurePricingTable seeds the default rates when no record exists and
	// returns the current record.
	EnsurePricingTable(ctx context.Context) (*models.PricingTable, error)
	// UpdatePricingRates merges partial rate changes into the record and bumps
	// its version.
	UpdatePricingRates(ctx context.Context, rates map[string]int) (*models.PricingTable, error)

	// GetSetupInventory retrieves the setup record. Returns nil when absent.
	GetSetupInventory(ctx context.Context) (*models.SetupInventory, error)
	// EnsureSetupInventory seeds the all-enabled default when no record exists
	// and returns the current record.
	EnsureSetupInventory(ctx context.Context) (*models.SetupInventory, error)
	// UpdateSetupFlags merges partial enabled-flag changes into the record and
	// bumps its version.
	UpdateSetupFlags(ctx context.Context, flags map[string]bool) (*models.SetupInventory, error)

	// GetAdminCredentials retrieves the stored admin credentials. Returns nil
	// when the init endpoint has never been called.
	GetAdminCredentials(ctx context.Context) (*models.AdminCredentials, error)
	// SetAdminCredentials stores (or replaces) the admin credentials.
	SetAdminCredentials(ctx context.Context, creds *models.AdminCredentials) error
}
