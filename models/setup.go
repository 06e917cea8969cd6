package models

import "time"

// Physical setup identifiers.
const (
	SetupPS5One          = "ps5_setup_1"
	SetupPS5Two          = "ps5_setup_2"
	SetupRacingSimulator = "racing_simulator"
	SetupPoolTable       = "pool_table"
)

// SetupIDs lists every physical setup in the venue.
func SetupIDs() []string {
	return []string{SetupPS5One, SetupPS5Two, SetupRacingSimulator, SetupPoolTable}
}

// SetupInventory is the singleton record mapping each physical setup to its
// enabled flag. Version increases on every admin write so stale reads are
// detectable; reads always go back to the store.
type SetupInventory struct {
	Setups    map[string]bool `bson:"setups" json:"setups"`
	Version   int64           `bson:"version" json:"version"`
	UpdatedAt time.Time       `bson:"updated_at" json:"updated_at"`
}

// DefaultSetupInventory is the state assumed when no record has been written:
// all four setups enabled.
func DefaultSetupInventory() SetupInventory {
	setups := make(map[string]bool, 4)
	for _, id := range SetupIDs() {
		setups[id] = true
	}
	return SetupInventory{Setups: setups}
}

// EnabledCount returns how many setups are currently enabled.
func (inv SetupInventory) EnabledCount() int {
	n := 0
	for _, enabled := range inv.Setups {
		if enabled {
			n++
		}
	}
	return n
}
