package booking

import (
	"context"

	"gamelounge/models"
)

// slotTally holds the per-slot booking counts for one date.
type slotTally struct {
	total  map[string]int
	groups map[string]map[SetupGroup]int
}

func (t slotTally) groupCount(slot string, group SetupGroup) int {
	if t.groups[slot] == nil {
		return 0
	}
	return t.groups[slot][group]
}

// loadTallies fetches the non-cancelled bookings for a date together with the
// current setup inventory and folds them into per-slot counts.
func (s *DefaultBookingService) loadTallies(ctx context.Context, date string) (slotTally, models.SetupInventory, error) {
	tally := slotTally{
		total:  make(map[string]int),
		groups: make(map[string]map[SetupGroup]int),
	}

	bookings, err := s.Repo.ListActiveByDate(ctx, date)
	if err != nil {
		return tally, models.SetupInventory{}, err
	}

	inv, err := s.Settings.GetSetupInventory(ctx)
	if err != nil {
		return tally, models.SetupInventory{}, err
	}
	inventory := models.DefaultSetupInventory()
	if inv != nil {
		inventory = *inv
	}

	for _, b := range bookings {
		// The repository already filters cancelled bookings; guard here too
		// so a cancelled record never occupies capacity.
		if b.Status == models.StatusCancelled {
			continue
		}
		if !models.IsCanonicalSlot(b.Time) {
			continue
		}
		tally.total[b.Time]++
		if tally.groups[b.Time] == nil {
			tally.groups[b.Time] = make(map[SetupGroup]int)
		}
		tally.groups[b.Time][GroupForCategory(b.Setup)]++
	}

	return tally, inventory, nil
}

// AvailableSlots computes which canonical slots are still bookable on the
// given date. A slot qualifies when the total non-cancelled booking count is
// below the number of enabled setups and at least one setup group still has
// spare capacity. The result is ordered ascending by hour; the call is a pure
// read.
func (s *DefaultBookingService) AvailableSlots(ctx context.Context, date string) ([]string, error) {
	tally, inventory, err := s.loadTallies(ctx, date)
	if err != nil {
		return nil, err
	}

	caps := groupCapacities(inventory)
	totalSetups := inventory.EnabledCount()

	available := make([]string, 0, models.ClosingHour-models.OpeningHour+1)
	for _, slot := range models.CanonicalSlots() {
		if tally.total[slot] >= totalSetups {
			continue
		}
		if !anyGroupFree(tally, slot, caps) {
			continue
		}
		available = append(available, slot)
	}
	return available, nil
}

func anyGroupFree(tally slotTally, slot string, caps map[SetupGroup]int) bool {
	for group, capacity := range caps {
		if capacity > 0 && tally.groupCount(slot, group) < capacity {
			return true
		}
	}
	return false
}

// slotFreeForGroup reports whether the given slot still has capacity in the
// specific group a new booking would occupy.
func slotFreeForGroup(tally slotTally, inventory models.SetupInventory, slot string, group SetupGroup) bool {
	if !models.IsCanonicalSlot(slot) {
		return false
	}
	if tally.total[slot] >= inventory.EnabledCount() {
		return false
	}
	capacity := groupCapacities(inventory)[group]
	return capacity > 0 && tally.groupCount(slot, group) < capacity
}
