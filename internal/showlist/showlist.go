package showlist

import (
	"sort"
	"strings"
	"time"

	"comedy-houston/internal/models"
)

func strVal(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// Visible applies the configured filters and sort to the canonical feed
// and returns the ordered visible subset. It is pure: identical events,
// options and now always produce the identical list, whether the caller
// is the JSON API or the server-side renderer.
func Visible(events []models.Event, opts Options, now time.Time) []models.Event {
	opts = opts.Normalize()

	today := dateStr(now)
	tomorrow := dateStr(addDays(now, 1))
	friDate, satDate, sunDate := weekendDates(now)
	weekEnd := endOfWeek(now)
	monthEnd := endOfMonth(now)
	maxDate := dateStr(addDays(now, opts.HorizonDays))

	var visible []models.Event
	for _, e := range events {
		if e.Date == nil {
			continue
		}
		date := *e.Date
		if date < today {
			continue
		}
		if e.Status == models.StatusCancelled {
			continue
		}

		switch opts.TimeBucket {
		case BucketToday:
			if date != today {
				continue
			}
		case BucketTomorrow:
			if date != tomorrow {
				continue
			}
		case BucketWeekend:
			if date != friDate && date != satDate && date != sunDate {
				continue
			}
		case BucketWeek:
			if date > weekEnd {
				continue
			}
		case BucketMonth:
			if date > monthEnd {
				continue
			}
		}

		if opts.Venue != AllSentinel && e.Venue != opts.Venue {
			continue
		}
		if opts.Source != AllSentinel && e.Source != opts.Source {
			continue
		}

		// Free shows (nil or zero price_min) always pass the ceiling.
		if opts.MaxPrice != nil && e.PriceMin != nil && *e.PriceMin != 0 && *e.PriceMin > *opts.MaxPrice {
			continue
		}

		if !opts.ShowOpenMic && strings.Contains(strings.ToLower(e.Name), "open mic") {
			continue
		}

		if date > maxDate {
			continue
		}

		visible = append(visible, e)
	}

	sortEvents(visible, opts.Sort)
	return visible
}

func sortEvents(events []models.Event, order string) {
	switch order {
	case SortPriceLow:
		sort.SliceStable(events, func(i, j int) bool {
			return priceOr(events[i].PriceMin, 9999) < priceOr(events[j].PriceMin, 9999)
		})
	case SortPriceHigh:
		sort.SliceStable(events, func(i, j int) bool {
			return priceOr(events[i].PriceMax, 0) > priceOr(events[j].PriceMax, 0)
		})
	case SortName:
		sort.SliceStable(events, func(i, j int) bool {
			return events[i].Name < events[j].Name
		})
	default:
		// Date order; the secondary key compares the formatted
		// 12-hour strings lexicographically, same as the feed sort.
		sort.SliceStable(events, func(i, j int) bool {
			di, dj := strVal(events[i].Date), strVal(events[j].Date)
			if di != dj {
				return di < dj
			}
			return strVal(events[i].Time) < strVal(events[j].Time)
		})
	}
}

func priceOr(p *float64, fallback float64) float64 {
	if p == nil {
		return fallback
	}
	return *p
}

// Venues returns the distinct venue names in the feed, sorted, for
// populating the venue filter dropdown.
func Venues(events []models.Event) []string {
	set := make(map[string]bool)
	for _, e := range events {
		if e.Venue != "" {
			set[e.Venue] = true
		}
	}
	venues := make([]string, 0, len(set))
	for v := range set {
		venues = append(venues, v)
	}
	sort.Strings(venues)
	return venues
}
