package providers

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

var dayNames = [7]string{
	"Sunday", "Monday", "Tuesday", "Wednesday",
	"Thursday", "Friday", "Saturday",
}

// FormatTime converts a 24-hour "HH:MM" or "HH:MM:SS" string into the
// display form "H:MM AM/PM". Hour 0 renders as 12 AM. Unparseable or
// empty input yields nil, never an empty string.
func FormatTime(raw string) *string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ":")
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return nil
	}
	m := "00"
	if len(parts) > 1 && parts[1] != "" {
		m = parts[1]
	}
	ampm := "AM"
	if h >= 12 {
		ampm = "PM"
	}
	if h == 0 {
		h = 12
	} else if h > 12 {
		h -= 12
	}
	s := fmt.Sprintf("%d:%s %s", h, m, ampm)
	return &s
}

// DayOfWeek returns the full weekday name for an ISO date. The date is
// anchored at noon so DST transitions cannot roll it across midnight.
func DayOfWeek(date string) *string {
	t, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		return nil
	}
	noon := time.Date(t.Year(), t.Month(), t.Day(), 12, 0, 0, 0, time.Local)
	name := dayNames[int(noon.Weekday())]
	return &name
}
