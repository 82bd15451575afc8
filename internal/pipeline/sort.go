package pipeline

import (
	"sort"

	"comedy-houston/internal/models"
)

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// SortCanonical orders the feed by date, then by the formatted time
// string, both lexicographic. The time key compares "10:30 AM" before
// "9:00 AM"; that matches the persisted feed consumers expect and is
// kept deliberately.
func SortCanonical(events []models.Event) {
	sort.SliceStable(events, func(i, j int) bool {
		di, dj := strOrEmpty(events[i].Date), strOrEmpty(events[j].Date)
		if di != dj {
			return di < dj
		}
		return strOrEmpty(events[i].Time) < strOrEmpty(events[j].Time)
	})
}
