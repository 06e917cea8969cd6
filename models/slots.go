package models

import (
	"fmt"
	"strconv"
	"strings"
)

// Operating hours: first and last bookable hour of the day.
const (
	OpeningHour = 10
	ClosingHour = 23
)

// CanonicalSlots returns the ordered hourly slot labels for one operating day,
// "10:00" through "23:00". The catalog is identical for every date.
func CanonicalSlots() []string {
	slots := make([]string, 0, ClosingHour-OpeningHour+1)
	for hour := OpeningHour; hour <= ClosingHour; hour++ {
		slots = append(slots, fmt.Sprintf("%02d:00", hour))
	}
	return slots
}

// SlotHour parses the hour component of a slot label such as "14:00".
func SlotHour(label string) (int, error) {
	hourPart, _, found := strings.Cut(label, ":")
	if !found {
		return 0, fmt.Errorf("invalid time format: %q", label)
	}
	hour, err := strconv.Atoi(hourPart)
	if err != nil {
		return 0, fmt.Errorf("invalid time format: %q", label)
	}
	return hour, nil
}

// IsCanonicalSlot reports whether label is one of the operating-day slots.
func IsCanonicalSlot(label string) bool {
	hour, err := SlotHour(label)
	if err != nil {
		return false
	}
	return hour >= OpeningHour && hour <= ClosingHour && label == fmt.Sprintf("%02d:00", hour)
}
