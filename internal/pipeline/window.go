package pipeline

import (
	"time"

	"comedy-houston/internal/models"
)

// FilterWindow keeps events dated within [today, today+days] inclusive.
// Today is the local calendar date of now, not the wall-clock instant,
// so the cutoff stays stable across a single day. Events without a date
// are unschedulable and are dropped here.
func FilterWindow(events []models.Event, days int, now time.Time) []models.Event {
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	end := start.AddDate(0, 0, days)

	startStr := start.Format("2006-01-02")
	endStr := end.Format("2006-01-02")

	var kept []models.Event
	for _, ev := range events {
		if ev.Date == nil {
			continue
		}
		if *ev.Date >= startStr && *ev.Date <= endStr {
			kept = append(kept, ev)
		}
	}
	return kept
}
