package render_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"comedy-houston/internal/models"
	"comedy-houston/internal/render"
)

// 2026-03-04 is a Wednesday.
var wednesday = time.Date(2026, 3, 4, 18, 0, 0, 0, time.Local)

func TestDateLabel(t *testing.T) {
	cases := []struct {
		date string
		want string
	}{
		{"2026-03-04", "Tonight"},
		{"2026-03-05", "Tomorrow"},
		{"2026-03-06", "This Friday — Mar 6"},
		{"2026-03-10", "This Tuesday — Mar 10"},
		{"2026-03-11", "Next Wednesday — Mar 11"},
		{"2026-03-17", "Next Tuesday — Mar 17"},
		{"2026-03-28", "Saturday — Mar 28"},
		{"garbage", "garbage"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, render.DateLabel(tc.date, wednesday), tc.date)
	}
}

func TestCardsEmptyState(t *testing.T) {
	html := render.Cards(nil, render.DefaultDisplayOptions(), wednesday)
	assert.Contains(t, html, "No shows found")
}

func TestCardsGroupsByDate(t *testing.T) {
	events := []models.Event{
		{ID: "a", Name: "First Show", Venue: "Houston Improv", Date: models.StrPtr("2026-03-04")},
		{ID: "b", Name: "Second Show", Venue: "Houston Improv", Date: models.StrPtr("2026-03-04")},
		{ID: "c", Name: "Friday Show", Venue: "The Riot Comedy Club", Date: models.StrPtr("2026-03-06")},
	}

	html := render.Cards(events, render.DefaultDisplayOptions(), wednesday)

	assert.Contains(t, html, "Tonight")
	assert.Contains(t, html, "2 shows")
	assert.Contains(t, html, "This Friday — Mar 6")
	assert.Contains(t, html, "1 show<")
	assert.Contains(t, html, "First Show")
	assert.Contains(t, html, "Friday Show")
}

func TestCardTicketLinkGoesThroughRedirect(t *testing.T) {
	withURL := models.Event{
		ID:        "abc123",
		Name:      "Live Laugh Show",
		Venue:     "Houston Improv",
		Date:      models.StrPtr("2026-03-04"),
		TicketURL: models.StrPtr("https://www.ticketmaster.com/event/abc"),
	}
	withoutURL := models.Event{
		ID:    "def456",
		Name:  "Mystery Show",
		Venue: "Houston Improv",
		Date:  models.StrPtr("2026-03-04"),
	}

	html := render.Cards([]models.Event{withURL, withoutURL}, render.DefaultDisplayOptions(), wednesday)

	// The CTA points at the click-tracking redirect, never the raw URL.
	assert.Contains(t, html, `href="/go/abc123"`)
	assert.NotContains(t, html, "ticketmaster.com/event/abc")
	assert.Contains(t, html, "Coming Soon")
}

func TestCardEscapesUserVisibleText(t *testing.T) {
	ev := models.Event{
		ID:    "x",
		Name:  `Dave's "Big" <Show>`,
		Venue: "Houston Improv",
		Date:  models.StrPtr("2026-03-04"),
	}

	html := render.Cards([]models.Event{ev}, render.DefaultDisplayOptions(), wednesday)

	assert.Contains(t, html, "Dave's &quot;Big&quot; &lt;Show&gt;")
	assert.NotContains(t, html, "<Show>")
}

func TestCardsBadgesToggle(t *testing.T) {
	ev := models.Event{
		ID:     "x",
		Name:   "Show",
		Venue:  "Houston Improv",
		Date:   models.StrPtr("2026-03-04"),
		Source: models.SourceTicketmaster,
		Status: models.StatusOnSale,
	}

	opts := render.DefaultDisplayOptions()
	assert.Contains(t, render.Cards([]models.Event{ev}, opts, wednesday), "card-source-badge")

	opts.ShowBadges = false
	assert.NotContains(t, render.Cards([]models.Event{ev}, opts, wednesday), "card-source-badge")
}
