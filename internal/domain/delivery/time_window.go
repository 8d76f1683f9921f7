package delivery

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/storefront/backend/internal/domain/shared"
)

// Delivery slots are hourly windows between these bounds. The last window
// starts one hour before closing.
const (
	slotOpeningHour = 9
	slotClosingHour = 21
)

// TimeWindow is an enumerated one-hour delivery slot, e.g. "09:00 - 10:00".
// Only windows returned by AvailableWindows are valid.
type TimeWindow string

// String returns the canonical window representation
func (w TimeWindow) String() string {
	return string(w)
}

// IsValid reports whether the window is one of the enumerated slots
func (w TimeWindow) IsValid() bool {
	for _, candidate := range AvailableWindows() {
		if candidate == w {
			return true
		}
	}
	return false
}

// StartHour returns the hour the window opens
func (w TimeWindow) StartHour() int {
	hour, _ := strconv.Atoi(string(w)[:2])
	return hour
}

// AvailableWindows returns every offered delivery window in order
func AvailableWindows() []TimeWindow {
	windows := make([]TimeWindow, 0, slotClosingHour-slotOpeningHour)
	for hour := slotOpeningHour; hour < slotClosingHour; hour++ {
		windows = append(windows, TimeWindow(fmt.Sprintf("%02d:00 - %02d:00", hour, hour+1)))
	}
	return windows
}

// ParseTimeWindow normalizes a window string ("9:00-10:00", "09:00 - 10:00")
// and validates it against the enumerated slot set
func ParseTimeWindow(s string) (TimeWindow, error) {
	parts := strings.SplitN(s, "-", 2)
	if len(parts) != 2 {
		return "", shared.NewDomainError("INVALID_TIME_WINDOW", fmt.Sprintf("Time window %q is not a valid slot", s))
	}

	start, okStart := parseSlotEdge(parts[0])
	end, okEnd := parseSlotEdge(parts[1])
	if !okStart || !okEnd || end != start+1 {
		return "", shared.NewDomainError("INVALID_TIME_WINDOW", fmt.Sprintf("Time window %q is not a valid slot", s))
	}

	window := TimeWindow(fmt.Sprintf("%02d:00 - %02d:00", start, end))
	if !window.IsValid() {
		return "", shared.NewDomainError("INVALID_TIME_WINDOW", fmt.Sprintf("Time window %q is outside delivery hours", s))
	}
	return window, nil
}

// parseSlotEdge parses one side of a window ("09:00") into its hour.
// Only whole hours are accepted.
func parseSlotEdge(s string) (int, bool) {
	s = strings.TrimSpace(s)
	fields := strings.SplitN(s, ":", 2)
	if len(fields) != 2 || fields[1] != "00" {
		return 0, false
	}
	hour, err := strconv.Atoi(fields[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, false
	}
	return hour, true
}

// ValidateDeliveryDate rejects dates before today. Comparison is by calendar
// day in the date's location, so a slot later today remains valid.
func ValidateDeliveryDate(date time.Time, now time.Time) error {
	if date.IsZero() {
		return shared.NewDomainError("INVALID_TIME_WINDOW", "Delivery date is required")
	}
	y, m, d := date.Date()
	dateDay := time.Date(y, m, d, 0, 0, 0, 0, date.Location())
	y, m, d = now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, date.Location())
	if dateDay.Before(today) {
		return shared.NewDomainError("INVALID_TIME_WINDOW", "Delivery date cannot be in the past")
	}
	return nil
}
