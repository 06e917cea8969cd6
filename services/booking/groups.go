package booking

import (
	"strings"

	"gamelounge/models"
)

// SetupGroup identifies a pool of interchangeable physical setups. Capacity is
// accounted per group: the two PS5 stations back every console category, while
// the racing simulator and the pool table each back exactly one.
type SetupGroup string

const (
	GroupPS5    SetupGroup = "ps5"
	GroupRacing SetupGroup = "racing"
	GroupPool   SetupGroup = "pool"
)

// GroupForCategory maps a booking's setup category to the physical group that
// serves it. Squad and individual sessions run on the PS5 stations, as does
// anything ps5-prefixed.
func GroupForCategory(setup string) SetupGroup {
	switch {
	case strings.HasPrefix(setup, "ps5"):
		return GroupPS5
	case setup == models.CategoryRacing, setup == models.SetupRacingSimulator:
		return GroupRacing
	case setup == models.CategoryPool, setup == models.SetupPoolTable:
		return GroupPool
	default:
		return GroupPS5
	}
}

// groupCapacities derives per-group capacity from the enabled setups: each
// enabled ps5-prefixed setup adds one PS5 unit, the racing simulator and the
// pool table contribute one unit each when enabled.
func groupCapacities(inv models.SetupInventory) map[SetupGroup]int {
	caps := map[SetupGroup]int{GroupPS5: 0, GroupRacing: 0, GroupPool: 0}
	for id, enabled := range inv.Setups {
		if !enabled {
			continue
		}
		switch {
		case strings.HasPrefix(id, "ps5"):
			caps[GroupPS5]++
		case id == models.SetupRacingSimulator:
			caps[GroupRacing]++
		case id == models.SetupPoolTable:
			caps[GroupPool]++
		}
	}
	return caps
}
