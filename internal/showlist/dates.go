package showlist

import "time"

func dateStr(t time.Time) string {
	return t.Format("2006-01-02")
}

func addDays(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, n)
}

// weekendDates returns the Friday/Saturday/Sunday dates of the weekend,
// relative to now. The arithmetic is deliberately literal: on Sunday the
// weekend is yesterday's Saturday, today, and the NEXT Friday (dow 0
// takes the 5-dow branch); on Saturday it is yesterday's Friday, today
// and tomorrow. Consumers depend on these exact assignments.
func weekendDates(now time.Time) (fri, sat, sun string) {
	dow := int(now.Weekday()) // 0 = Sunday

	switch dow {
	case 0:
		sat = dateStr(addDays(now, -1))
		sun = dateStr(now)
	case 6:
		sat = dateStr(now)
		sun = dateStr(addDays(now, 1))
	default:
		daysToSat := 6 - dow
		sat = dateStr(addDays(now, daysToSat))
		sun = dateStr(addDays(now, daysToSat+1))
	}

	if dow <= 5 {
		fri = dateStr(addDays(now, 5-dow))
	} else {
		fri = dateStr(addDays(now, -1))
	}
	return fri, sat, sun
}

// endOfWeek is the upcoming Sunday (today + (7 - weekday)).
func endOfWeek(now time.Time) string {
	return dateStr(addDays(now, 7-int(now.Weekday())))
}

// endOfMonth is the last calendar day of the current month.
func endOfMonth(now time.Time) string {
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	return dateStr(first.AddDate(0, 1, -1))
}
