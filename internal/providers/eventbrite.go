package providers

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"comedy-houston/internal/config"
	"comedy-houston/internal/logger"
	"comedy-houston/internal/models"
)

// EventbriteClient pulls live listings for a fixed set of organizers,
// paginating until the API reports no more pages or the safety cap hits.
type EventbriteClient struct {
	cfg        config.EventbriteConfig
	httpClient *http.Client
	logger     *logger.Logger
	now        func() time.Time
}

func NewEventbriteClient(cfg config.EventbriteConfig, log *logger.Logger) *EventbriteClient {
	return &EventbriteClient{
		cfg:        cfg,
		httpClient: NewHTTPClient(30 * time.Second),
		logger:     log,
		now:        time.Now,
	}
}

func (c *EventbriteClient) Name() string { return models.SourceEventbrite }

// Eventbrite response shapes (the subset we read).
type ebResponse struct {
	Events     []ebEvent `json:"events"`
	Pagination *struct {
		HasMoreItems bool `json:"has_more_items"`
	} `json:"pagination"`
}

type ebEvent struct {
	Name *struct {
		Text string `json:"text"`
	} `json:"name"`
	Description *struct {
		Text string `json:"text"`
	} `json:"description"`
	Summary string `json:"summary"`
	URL     string `json:"url"`
	Status  string `json:"status"`
	IsFree  bool   `json:"is_free"`
	Start   *struct {
		Local string `json:"local"`
	} `json:"start"`
	Venue *struct {
		Name    string `json:"name"`
		Address *struct {
			City   string `json:"city"`
			Region string `json:"region"`
		} `json:"address"`
		Latitude  string `json:"latitude"`
		Longitude string `json:"longitude"`
	} `json:"venue"`
	Logo *struct {
		URL      string `json:"url"`
		Original *struct {
			URL string `json:"url"`
		} `json:"original"`
	} `json:"logo"`
	TicketAvailability *struct {
		MinimumTicketPrice *ebPrice `json:"minimum_ticket_price"`
		MaximumTicketPrice *ebPrice `json:"maximum_ticket_price"`
	} `json:"ticket_availability"`
}

type ebPrice struct {
	MajorValue string `json:"major_value"`
	Currency   string `json:"currency"`
}

func (c *EventbriteClient) Fetch(ctx context.Context) ([]models.Event, error) {
	if c.cfg.Token == "" {
		c.logger.Warn("EVENTBRITE", "No token - skipping")
		return nil, nil
	}

	headers := map[string]string{"Authorization": "Bearer " + c.cfg.Token}
	var events []models.Event

	for _, org := range c.cfg.Organizers {
		fetched, err := c.fetchOrganizer(ctx, org, headers)
		if err != nil {
			c.logger.Error("EVENTBRITE", fmt.Sprintf("Failed for %s: %v", org.Name, err))
			continue
		}
		events = append(events, fetched...)
		c.logger.LogProvider("eventbrite", fmt.Sprintf("Fetched events from %s (%s)", org.Name, org.ID))
	}

	c.logger.LogProvider("eventbrite", fmt.Sprintf("Total: %d events", len(events)))
	return events, nil
}

func (c *EventbriteClient) fetchOrganizer(ctx context.Context, org config.OrganizerRef, headers map[string]string) ([]models.Event, error) {
	var events []models.Event

	for page := 1; page <= c.cfg.MaxPages; page++ {
		params := url.Values{}
		params.Set("status", "live")
		params.Set("order_by", "start_asc")
		params.Set("expand", "venue,ticket_availability")
		params.Set("page", strconv.Itoa(page))

		reqURL := fmt.Sprintf("%s/organizers/%s/events/?%s", c.cfg.BaseURL, org.ID, params.Encode())

		var resp ebResponse
		if err := fetchJSON(ctx, c.httpClient, reqURL, headers, &resp); err != nil {
			return nil, err
		}

		for _, raw := range resp.Events {
			events = append(events, c.normalize(raw, org.Name))
		}

		if resp.Pagination == nil || !resp.Pagination.HasMoreItems {
			break
		}
	}

	return events, nil
}

// normalize maps one raw organizer listing onto the canonical schema.
// The organizer display name stands in for a missing venue.
func (c *EventbriteClient) normalize(raw ebEvent, orgFallbackName string) models.Event {
	venueName := orgFallbackName
	var city, state *string
	var latitude, longitude *float64
	if raw.Venue != nil {
		if raw.Venue.Name != "" {
			venueName = raw.Venue.Name
		}
		if raw.Venue.Address != nil {
			if raw.Venue.Address.City != "" {
				city = models.StrPtr(raw.Venue.Address.City)
			}
			if raw.Venue.Address.Region != "" {
				state = models.StrPtr(raw.Venue.Address.Region)
			}
		}
		if v, err := strconv.ParseFloat(raw.Venue.Latitude, 64); err == nil {
			latitude = models.FloatPtr(v)
		}
		if v, err := strconv.ParseFloat(raw.Venue.Longitude, 64); err == nil {
			longitude = models.FloatPtr(v)
		}
	}

	// The provider's local value is trusted as the venue's local date;
	// no timezone conversion happens here.
	var date, timeFormatted, dayOfWeek *string
	if raw.Start != nil && len(raw.Start.Local) >= 16 {
		d := raw.Start.Local[0:10]
		date = models.StrPtr(d)
		timeFormatted = FormatTime(raw.Start.Local[11:16])
		dayOfWeek = DayOfWeek(d)
	}

	var priceMin, priceMax *float64
	currency := "USD"
	if raw.TicketAvailability != nil {
		if p := raw.TicketAvailability.MinimumTicketPrice; p != nil {
			if v, err := strconv.ParseFloat(p.MajorValue, 64); err == nil {
				priceMin = models.FloatPtr(v)
			}
			if p.Currency != "" {
				currency = p.Currency
			}
		}
		if p := raw.TicketAvailability.MaximumTicketPrice; p != nil {
			if v, err := strconv.ParseFloat(p.MajorValue, 64); err == nil {
				priceMax = models.FloatPtr(v)
			}
		}
	}

	var image *string
	if raw.Logo != nil {
		if raw.Logo.Original != nil && raw.Logo.Original.URL != "" {
			image = models.StrPtr(raw.Logo.Original.URL)
		} else if raw.Logo.URL != "" {
			image = models.StrPtr(raw.Logo.URL)
		}
	}

	var ticketURL *string
	if raw.URL != "" {
		ticketURL = models.StrPtr(raw.URL)
	}

	var description *string
	if raw.Summary != "" {
		description = models.StrPtr(raw.Summary)
	} else if raw.Description != nil && raw.Description.Text != "" {
		description = models.StrPtr(raw.Description.Text)
	}

	idName := "Untitled"
	name := "Untitled Event"
	if raw.Name != nil && raw.Name.Text != "" {
		idName = raw.Name.Text
		name = raw.Name.Text
	}

	status := models.StatusUnknown
	if raw.Status == "live" {
		status = models.StatusOnSale
	} else if raw.Status != "" {
		status = raw.Status
	}

	dateStr := ""
	if date != nil {
		dateStr = *date
	}

	return models.Event{
		ID:             models.MakeID(idName, dateStr, venueName),
		Name:           name,
		Venue:          venueName,
		City:           city,
		State:          state,
		Latitude:       latitude,
		Longitude:      longitude,
		Date:           date,
		Time:           timeFormatted,
		DayOfWeek:      dayOfWeek,
		PriceMin:       priceMin,
		PriceMax:       priceMax,
		Currency:       currency,
		TicketURL:      ticketURL,
		ImageURL:       image,
		Source:         models.SourceEventbrite,
		AgeRestriction: nil,
		Status:         status,
		Description:    description,
		LastUpdated:    c.now().UTC().Format(time.RFC3339),
	}
}
