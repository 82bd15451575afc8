package render

import (
	"fmt"
	"strings"
	"time"

	"comedy-houston/internal/models"
	"comedy-houston/internal/showlist"
)

// DisplayOptions are the cosmetic toggles for the rendered listing.
// None of them affect which events are shown or their order.
type DisplayOptions struct {
	ShowHero     bool
	ShowControls bool
	ShowFooter   bool
	ShowBadges   bool
	HeroTitle    string
	Theme        string
}

func DefaultDisplayOptions() DisplayOptions {
	return DisplayOptions{
		ShowHero:     true,
		ShowControls: true,
		ShowFooter:   true,
		ShowBadges:   true,
		HeroTitle:    "Every Comedy Show in Houston",
		Theme:        "dark",
	}
}

var (
	monthsShort = [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}
	daysFull    = [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}
)

// DateLabel produces the group header for a date: "Tonight", "Tomorrow",
// "This Friday — Mar 6", "Next Saturday — Mar 14", or the bare weekday
// past two weeks out.
func DateLabel(date string, now time.Time) string {
	today := now.Format("2006-01-02")
	tomorrow := now.AddDate(0, 0, 1).Format("2006-01-02")

	if date == today {
		return "Tonight"
	}
	if date == tomorrow {
		return "Tomorrow"
	}

	d, err := time.ParseInLocation("2006-01-02", date, now.Location())
	if err != nil {
		return date
	}
	todayDate, _ := time.ParseInLocation("2006-01-02", today, now.Location())
	diff := int(d.Sub(todayDate).Hours() / 24)

	prefix := ""
	if diff >= 2 && diff <= 6 {
		prefix = "This "
	} else if diff >= 7 && diff <= 13 {
		prefix = "Next "
	}

	return fmt.Sprintf("%s%s — %s %d", prefix, daysFull[int(d.Weekday())], monthsShort[int(d.Month())-1], d.Day())
}

// Cards renders the date-grouped event sections, matching the markup the
// interactive renderer produces so the page looks identical before and
// after client-side refreshes.
func Cards(events []models.Event, opts DisplayOptions, now time.Time) string {
	if len(events) == 0 {
		return `<div class="empty-state"><h2>No shows found</h2><p>Try changing your filters or check back later.</p></div>`
	}

	var groupKeys []string
	groups := make(map[string][]models.Event)
	for _, e := range events {
		key := "Unknown Date"
		if e.Date != nil {
			key = *e.Date
		}
		if _, ok := groups[key]; !ok {
			groupKeys = append(groupKeys, key)
		}
		groups[key] = append(groups[key], e)
	}

	var b strings.Builder
	for _, date := range groupKeys {
		evts := groups[date]
		plural := "s"
		if len(evts) == 1 {
			plural = ""
		}
		b.WriteString(`<section class="date-group"><div class="date-header">`)
		b.WriteString(`<span class="date-header-text">` + escapeHTML(DateLabel(date, now)) + `</span>`)
		b.WriteString(`<span class="date-header-line"></span>`)
		b.WriteString(fmt.Sprintf(`<span class="date-header-count">%d show%s</span>`, len(evts), plural))
		b.WriteString(`</div><div class="events-grid">`)
		for _, e := range evts {
			b.WriteString(card(e, opts))
		}
		b.WriteString(`</div></section>`)
	}
	return b.String()
}

func card(e models.Event, opts DisplayOptions) string {
	var b strings.Builder

	imageHTML := `<div class="card-image-placeholder">` +
		`<span class="venue-icon">&#127908;</span>` +
		`<span class="venue-label">` + escapeHTML(e.Venue) + `</span></div>`
	if e.ImageURL != nil && *e.ImageURL != "" {
		imageHTML = `<img src="` + escapeAttr(*e.ImageURL) + `" alt="` + escapeAttr(e.Name) + `" loading="lazy">`
	}

	statusLabel := strings.ReplaceAll(e.Status, "_", " ")

	ticketHTML := `<span class="card-cta" style="opacity:0.5;cursor:default;">Coming Soon</span>`
	if e.TicketURL != nil && *e.TicketURL != "" {
		ticketHTML = `<a class="card-cta" href="/go/` + escapeAttr(e.ID) + `" target="_blank" rel="noopener">` +
			`Get Tickets <span class="arrow">&rarr;</span></a>`
	}

	b.WriteString(`<article class="event-card">`)
	b.WriteString(`<div class="card-image">` + imageHTML)
	if opts.ShowBadges {
		b.WriteString(`<span class="card-source-badge ` + escapeAttr(e.Source) + `">` + escapeHTML(e.Source) + `</span>`)
		b.WriteString(`<span class="card-status-badge ` + escapeAttr(e.Status) + `">` + escapeHTML(statusLabel) + `</span>`)
	}
	b.WriteString(`</div>`)
	b.WriteString(`<div class="card-body">`)
	b.WriteString(`<div class="card-date-time">`)
	b.WriteString(`<span>` + escapeHTML(strOrEmpty(e.DayOfWeek)) + `</span>`)
	b.WriteString(`<span class="separator"></span>`)
	timeText := "TBA"
	if e.Time != nil && *e.Time != "" {
		timeText = *e.Time
	}
	b.WriteString(`<span>` + escapeHTML(timeText) + `</span>`)
	if e.AgeRestriction != nil && *e.AgeRestriction != "" {
		b.WriteString(`<span class="separator"></span><span>` + escapeHTML(*e.AgeRestriction) + `</span>`)
	}
	b.WriteString(`</div>`)
	b.WriteString(`<h3 class="card-name">` + escapeHTML(e.Name) + `</h3>`)
	b.WriteString(`<div class="card-venue">` + escapeHTML(e.Venue) + `</div>`)
	b.WriteString(`<div class="card-footer">`)
	b.WriteString(`<div class="card-price">` + escapeHTML(showlist.PriceLabel(e)) + `</div>`)
	b.WriteString(ticketHTML)
	b.WriteString(`</div></div></article>`)

	return b.String()
}

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func escapeHTML(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	s = strings.ReplaceAll(s, `"`, "&quot;")
	return s
}

func escapeAttr(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, `"`, "&quot;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	return s
}
