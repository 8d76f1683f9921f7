package tracking

import "sort"

// NoProgress is the sentinel returned by ProgressPercent when the timeline is
// delayed or empty. A delayed order is rendered as an alert, not a bar.
const NoProgress = -1

// progressByStatus is the fixed status → percentage mapping
var progressByStatus = map[Status]int{
	StatusOrderPlaced:    0,
	StatusProcessing:     20,
	StatusShipped:        40,
	StatusOutForDelivery: 80,
	StatusDelivered:      100,
	StatusDelayed:        NoProgress,
}

// Timeline is a pure projection over an order's delivery events. The current
// status is defined by the latest timestamp, never by append order.
type Timeline struct {
	events []DeliveryEvent
}

// NewTimeline builds a timeline from events in any order
func NewTimeline(events []DeliveryEvent) *Timeline {
	sorted := make([]DeliveryEvent, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].OccurredAt.Before(sorted[j].OccurredAt)
	})
	return &Timeline{events: sorted}
}

// Events returns the milestones ordered by timestamp ascending
func (t *Timeline) Events() []DeliveryEvent {
	return t.events
}

// CurrentStatus returns the status of the event with the latest timestamp.
// The second return is false for an empty timeline.
func (t *Timeline) CurrentStatus() (Status, bool) {
	if len(t.events) == 0 {
		return "", false
	}
	return t.events[len(t.events)-1].Status, true
}

// ProgressPercent maps the current status to its fixed percentage.
// Returns NoProgress for delayed or empty timelines.
func (t *Timeline) ProgressPercent() int {
	status, ok := t.CurrentStatus()
	if !ok {
		return NoProgress
	}
	return progressByStatus[status]
}

// IsDelayed reports whether the latest milestone is a delay
func (t *Timeline) IsDelayed() bool {
	status, ok := t.CurrentStatus()
	return ok && status == StatusDelayed
}
