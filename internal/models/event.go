package models

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"
)

// Event sources.
const (
	SourceTicketmaster = "ticketmaster"
	SourceEventbrite   = "eventbrite"
)

// Event statuses. Eventbrite statuses other than "live" pass through raw,
// so Status stays a plain string instead of a closed enum.
const (
	StatusOnSale      = "on_sale"
	StatusOffSale     = "off_sale"
	StatusCancelled   = "cancelled"
	StatusPostponed   = "postponed"
	StatusRescheduled = "rescheduled"
	StatusUnknown     = "unknown"
)

// Event is the canonical normalized record shared by both providers.
// Optional fields are pointers so absent values serialize as JSON null.
type Event struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Venue          string   `json:"venue"`
	City           *string  `json:"city"`
	State          *string  `json:"state"`
	Latitude       *float64 `json:"latitude"`
	Longitude      *float64 `json:"longitude"`
	Date           *string  `json:"date"`
	Time           *string  `json:"time"`
	DayOfWeek      *string  `json:"day_of_week"`
	PriceMin       *float64 `json:"price_min"`
	PriceMax       *float64 `json:"price_max"`
	Currency       string   `json:"currency"`
	TicketURL      *string  `json:"ticket_url"`
	ImageURL       *string  `json:"image_url"`
	Source         string   `json:"source"`
	AgeRestriction *string  `json:"age_restriction"`
	Status         string   `json:"status"`
	Description    *string  `json:"description"`
	LastUpdated    string   `json:"last_updated"`
}

// Feed is the unit of persistence, rebuilt in full on every fetcher run.
type Feed struct {
	LastUpdated string  `json:"last_updated"`
	TotalEvents int     `json:"total_events"`
	Events      []Event `json:"events"`
}

// MakeID derives the dedup key from the normalized name/date/venue triple.
// Two raw events with the same triple share an id, which is what lets the
// deduplicator find cross-provider duplicates. The digest is truncated to
// 16 hex chars; this is a join key, not a security boundary.
func MakeID(name, date, venue string) string {
	raw := strings.ToLower(strings.TrimSpace(name)) + "|" + date + "|" + strings.ToLower(strings.TrimSpace(venue))
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])[:16]
}

// CompletenessScore counts the populated nice-to-have fields. Used only as
// the dedup tie-breaker; higher wins, ties keep the earlier-seen record.
func (e Event) CompletenessScore() int {
	s := 0
	if e.ImageURL != nil && *e.ImageURL != "" {
		s++
	}
	if e.PriceMin != nil {
		s++
	}
	if e.Description != nil && *e.Description != "" {
		s++
	}
	if e.TicketURL != nil && *e.TicketURL != "" {
		s++
	}
	if e.Time != nil && *e.Time != "" {
		s++
	}
	return s
}

// NewFeed stamps the feed envelope around an already-sorted event list.
func NewFeed(events []Event, now time.Time) Feed {
	return Feed{
		LastUpdated: now.UTC().Format(time.RFC3339),
		TotalEvents: len(events),
		Events:      events,
	}
}

func StrPtr(s string) *string     { return &s }
func FloatPtr(f float64) *float64 { return &f }
