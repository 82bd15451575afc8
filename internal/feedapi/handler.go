package feedapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"comedy-houston/internal/clicks"
	"comedy-houston/internal/feed"
	"comedy-houston/internal/logger"
	"comedy-houston/internal/models"
	"comedy-houston/internal/render"
	"comedy-houston/internal/showlist"
)

type FeedSource interface {
	Raw() ([]byte, error)
	Load() (models.Feed, error)
}

type ClickTracker interface {
	Track(ev models.Event, referer string) (string, error)
	Stats() ([]clicks.ClickCount, error)
}

type Handler struct {
	Feed        FeedSource
	Cache       *feed.Cache
	Clicks      ClickTracker
	Logger      *logger.Logger
	HorizonDays int
	Now         func() time.Time
}

func NewHandler(src FeedSource, cache *feed.Cache, tracker ClickTracker, log *logger.Logger, horizonDays int) *Handler {
	return &Handler{
		Feed:        src,
		Cache:       cache,
		Clicks:      tracker,
		Logger:      log,
		HorizonDays: horizonDays,
		Now:         time.Now,
	}
}

// ServeFeed serves the persisted feed file verbatim, through the cache
// when one is configured.
func (h *Handler) ServeFeed(w http.ResponseWriter, r *http.Request) {
	data, ok := h.Cache.Get()
	if !ok {
		var err error
		data, err = h.Feed.Raw()
		if err != nil {
			h.Logger.Error("API", fmt.Sprintf("Feed read failed: %v", err))
			writeJSON(w, http.StatusServiceUnavailable, errorResponse("feed unavailable", err.Error()))
			return
		}
		h.Cache.Set(data)
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// ListEvents serves the filtered/sorted view of the feed as JSON. It and
// the SSR page call the same showlist.Visible, so both reach identical
// ordering for identical inputs and "now".
func (h *Handler) ListEvents(w http.ResponseWriter, r *http.Request) {
	f, err := h.Feed.Load()
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("Feed load failed: %v", err))
		writeJSON(w, http.StatusServiceUnavailable, errorResponse("feed unavailable", err.Error()))
		return
	}

	opts := h.optionsFromQuery(r)
	visible := showlist.Visible(f.Events, opts, h.Now())

	writeJSON(w, http.StatusOK, successResponse("events", EventList{
		LastUpdated: f.LastUpdated,
		Count:       len(visible),
		Venues:      showlist.Venues(f.Events),
		Events:      visible,
	}))
}

// ShowsPage server-renders the listing: hero, JSON-LD structured data
// and the date-grouped cards. Crawlers and no-JS viewers get the same
// list the interactive view would show.
func (h *Handler) ShowsPage(w http.ResponseWriter, r *http.Request) {
	f, err := h.Feed.Load()
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("Feed load failed: %v", err))
		http.Error(w, "feed unavailable", http.StatusServiceUnavailable)
		return
	}

	now := h.Now()
	opts := h.optionsFromQuery(r)
	visible := showlist.Visible(f.Events, opts, now)
	display := displayFromQuery(r)

	var b strings.Builder
	b.WriteString(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
	b.WriteString(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
	b.WriteString(`<title>Comedy Houston — Live Comedy Shows</title>`)
	b.WriteString(`<link rel="stylesheet" href="/static/comedy-houston.css">`)
	b.WriteString(`</head><body class="theme-` + display.Theme + `"><div id="ch-app">`)

	if display.ShowHero {
		plural := "s"
		if len(visible) == 1 {
			plural = ""
		}
		b.WriteString(`<div class="ch-hero"><h1 class="ch-hero-title">` + display.HeroTitle + `</h1>`)
		b.WriteString(`<p class="ch-hero-subtitle">Houston Improv, The Riot, Secret Group, Punch Line &amp; more — updated daily</p>`)
		b.WriteString(fmt.Sprintf(`<div class="ch-hero-meta"><span class="event-count">%d show%s</span>`, len(visible), plural))
		b.WriteString(`<span id="chUpdatedAt">Updated ` + f.LastUpdated + `</span></div></div>`)
	}

	if display.ShowControls {
		b.WriteString(render.Controls(showlist.Venues(f.Events), opts))
	}

	b.WriteString(render.JSONLD(visible))
	b.WriteString(`<main class="ch-main" id="chMain">`)
	b.WriteString(render.Cards(visible, display, now))
	b.WriteString(`</main>`)

	if display.ShowFooter {
		b.WriteString(`<div class="ch-footer">Updated automatically twice daily &middot; Data from `)
		b.WriteString(`<a href="https://www.ticketmaster.com" target="_blank" rel="noopener">Ticketmaster</a> &amp; `)
		b.WriteString(`<a href="https://www.eventbrite.com" target="_blank" rel="noopener">Eventbrite</a></div>`)
	}

	b.WriteString(`</div></body></html>`)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(b.String()))
}

// RedirectTicket records the click and 302s to the provider ticket page.
func (h *Handler) RedirectTicket(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	f, err := h.Feed.Load()
	if err != nil {
		http.Error(w, "feed unavailable", http.StatusServiceUnavailable)
		return
	}

	var target *models.Event
	for i := range f.Events {
		if f.Events[i].ID == id {
			target = &f.Events[i]
			break
		}
	}
	if target == nil {
		http.NotFound(w, r)
		return
	}

	dest, err := h.Clicks.Track(*target, r.Referer())
	if err != nil {
		if err == clicks.ErrNoTicketURL {
			http.Error(w, "no ticket link for this event", http.StatusGone)
			return
		}
		// A broken click log must not block the redirect.
		h.Logger.Error("CLICKS", fmt.Sprintf("Failed to record click for %s: %v", id, err))
		if target.TicketURL != nil {
			http.Redirect(w, r, *target.TicketURL, http.StatusFound)
			return
		}
		http.Error(w, "no ticket link for this event", http.StatusGone)
		return
	}

	http.Redirect(w, r, dest, http.StatusFound)
}

// ClickStats serves per-event click totals.
func (h *Handler) ClickStats(w http.ResponseWriter, r *http.Request) {
	counts, err := h.Clicks.Stats()
	if err != nil {
		h.Logger.Error("CLICKS", fmt.Sprintf("Stats query failed: %v", err))
		writeJSON(w, http.StatusInternalServerError, errorResponse("stats unavailable", err.Error()))
		return
	}
	writeJSON(w, http.StatusOK, successResponse("click stats", counts))
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, successResponse("ok", nil))
}

func (h *Handler) optionsFromQuery(r *http.Request) showlist.Options {
	q := r.URL.Query()

	opts := showlist.DefaultOptions()
	opts.HorizonDays = h.HorizonDays
	if v := q.Get("filter"); v != "" {
		opts.TimeBucket = v
	}
	if v := q.Get("venue"); v != "" {
		opts.Venue = v
	}
	if v := q.Get("source"); v != "" {
		opts.Source = v
	}
	if v := q.Get("max_price"); v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			opts.MaxPrice = &parsed
		}
	}
	if v := q.Get("open_mic"); v != "" {
		if parsed, err := strconv.ParseBool(v); err == nil {
			opts.ShowOpenMic = parsed
		}
	}
	if v := q.Get("sort"); v != "" {
		opts.Sort = v
	}
	return opts.Normalize()
}

func displayFromQuery(r *http.Request) render.DisplayOptions {
	q := r.URL.Query()

	display := render.DefaultDisplayOptions()
	if v := q.Get("hero"); v != "" {
		if parsed, err := strconv.ParseBool(v); err == nil {
			display.ShowHero = parsed
		}
	}
	if v := q.Get("controls"); v != "" {
		if parsed, err := strconv.ParseBool(v); err == nil {
			display.ShowControls = parsed
		}
	}
	if v := q.Get("footer"); v != "" {
		if parsed, err := strconv.ParseBool(v); err == nil {
			display.ShowFooter = parsed
		}
	}
	if v := q.Get("badges"); v != "" {
		if parsed, err := strconv.ParseBool(v); err == nil {
			display.ShowBadges = parsed
		}
	}
	if v := q.Get("theme"); v == "light" || v == "dark" {
		display.Theme = v
	}
	return display
}
