package reminder

import (
	"fmt"
	"time"
)

// Offset is one of the fixed lead times a reminder can be set ahead of an
// assignment's due date.
type Offset string

const (
	OffsetOneHour    Offset = "1h"
	OffsetThreeHours Offset = "3h"
	OffsetOneDay     Offset = "1d"
	OffsetTwoDays    Offset = "2d"
	OffsetOneWeek    Offset = "1w"
)

var offsetDurations = map[Offset]time.Duration{
	OffsetOneHour:    time.Hour,
	OffsetThreeHours: 3 * time.Hour,
	OffsetOneDay:     24 * time.Hour,
	OffsetTwoDays:    48 * time.Hour,
	OffsetOneWeek:    7 * 24 * time.Hour,
}

var offsetLabels = map[Offset]string{
	OffsetOneHour:    "1 hour before",
	OffsetThreeHours: "3 hours before",
	OffsetOneDay:     "1 day before",
	OffsetTwoDays:    "2 days before",
	OffsetOneWeek:    "1 week before",
}

// Offsets returns the fixed option set in display order.
func Offsets() []Offset {
	return []Offset{OffsetOneHour, OffsetThreeHours, OffsetOneDay, OffsetTwoDays, OffsetOneWeek}
}

// Valid reports whether o is one of the fixed options.
func (o Offset) Valid() bool {
	_, ok := offsetDurations[o]
	return ok
}

// Duration returns the lead time for a valid offset.
func (o Offset) Duration() time.Duration {
	return offsetDurations[o]
}

// Label returns the human-readable form of a valid offset.
func (o Offset) Label() string {
	return offsetLabels[o]
}

// ComputeFireTime maps an offset and a due date to the absolute time the
// reminder should fire: the due date minus the offset's duration.
func ComputeFireTime(o Offset, dueDate time.Time) (time.Time, error) {
	d, ok := offsetDurations[o]
	if !ok {
		return time.Time{}, fmt.Errorf("unknown reminder offset %q", o)
	}
	return dueDate.Add(-d), nil
}

// OptionStatus describes one offset choice for a given due date, with the
// fire time it would produce and whether that time has already passed.
type OptionStatus struct {
	Value    Offset    `json:"value"`
	Label    string    `json:"label"`
	RemindAt time.Time `json:"remindAt"`
	Passed   bool      `json:"passed"`
}

// OptionStatuses evaluates every offset against the due date so passed
// choices can be disabled before submission. CreateReminder revalidates
// independently; this listing is advisory.
func OptionStatuses(dueDate, now time.Time) []OptionStatus {
	statuses := make([]OptionStatus, 0, len(offsetDurations))
	for _, o := range Offsets() {
		remindAt := dueDate.Add(-o.Duration())
		statuses = append(statuses, OptionStatus{
			Value:    o,
			Label:    o.Label(),
			RemindAt: remindAt,
			Passed:   !remindAt.After(now),
		})
	}
	return statuses
}
