package models

import "time"

// Setup categories priced by the rate table.
const (
	CategorySquad       = "squad"
	CategoryIndividual  = "individual"
	CategoryPS5Specific = "ps5_specific"
	CategoryRacing      = "racing"
	CategoryPool        = "pool"
)

// PricingTable is the singleton record of base rates per setup category.
// Versioned like SetupInventory; every quote re-fetches it so admin rate
// changes take effect immediately.
type PricingTable struct {
	Rates     map[string]int `bson:"rates" json:"rates"`
	Version   int64          `bson:"version" json:"version"`
	UpdatedAt time.Time      `bson:"updated_at" json:"updated_at"`
}

// DefaultPricingTable returns the seed rates used when no record exists yet.
func DefaultPricingTable() PricingTable {
	return PricingTable{
		Rates: map[string]int{
			CategorySquad:       400,
			CategoryIndividual:  120,
			CategoryPS5Specific: 400,
			CategoryRacing:      150,
			CategoryPool:        400,
		},
	}
}
