package providers

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"time"

	"comedy-houston/internal/config"
	"comedy-houston/internal/logger"
	"comedy-houston/internal/models"
)

// TicketmasterClient pulls comedy events from the Discovery API: one
// DMA-wide classification search plus per-venue searches for rooms the
// DMA sweep tends to miss.
type TicketmasterClient struct {
	cfg        config.TicketmasterConfig
	httpClient *http.Client
	logger     *logger.Logger
	now        func() time.Time
}

func NewTicketmasterClient(cfg config.TicketmasterConfig, log *logger.Logger) *TicketmasterClient {
	return &TicketmasterClient{
		cfg:        cfg,
		httpClient: NewHTTPClient(30 * time.Second),
		logger:     log,
		now:        time.Now,
	}
}

func (c *TicketmasterClient) Name() string { return models.SourceTicketmaster }

// Ticketmaster Discovery response shapes (the subset we read).
type tmResponse struct {
	Embedded *struct {
		Events []tmEvent `json:"events"`
	} `json:"_embedded"`
}

type tmEvent struct {
	Name        string         `json:"name"`
	URL         string         `json:"url"`
	Info        string         `json:"info"`
	PleaseNote  string         `json:"pleaseNote"`
	Images      []tmImage      `json:"images"`
	PriceRanges []tmPriceRange `json:"priceRanges"`
	Dates       struct {
		Start struct {
			LocalDate string `json:"localDate"`
			LocalTime string `json:"localTime"`
		} `json:"start"`
		Status struct {
			Code string `json:"code"`
		} `json:"status"`
	} `json:"dates"`
	AgeRestrictions *struct {
		LegalAgeEnforced bool `json:"legalAgeEnforced"`
	} `json:"ageRestrictions"`
	Embedded *struct {
		Venues []tmVenue `json:"venues"`
	} `json:"_embedded"`
}

type tmVenue struct {
	Name string `json:"name"`
	City struct {
		Name string `json:"name"`
	} `json:"city"`
	State struct {
		Name      string `json:"name"`
		StateCode string `json:"stateCode"`
	} `json:"state"`
	Location struct {
		Latitude  string `json:"latitude"`
		Longitude string `json:"longitude"`
	} `json:"location"`
}

type tmImage struct {
	Ratio string `json:"ratio"`
	Width int    `json:"width"`
	URL   string `json:"url"`
}

type tmPriceRange struct {
	Min      *float64 `json:"min"`
	Max      *float64 `json:"max"`
	Currency string   `json:"currency"`
}

func (c *TicketmasterClient) Fetch(ctx context.Context) ([]models.Event, error) {
	if c.cfg.APIKey == "" {
		c.logger.Warn("TICKETMASTER", "No API key - skipping")
		return nil, nil
	}

	var events []models.Event
	seen := make(map[string]bool)

	// Broad comedy search across the whole DMA.
	params := url.Values{}
	params.Set("apikey", c.cfg.APIKey)
	params.Set("classificationName", "comedy")
	params.Set("dmaId", c.cfg.DMAID)
	params.Set("size", strconv.Itoa(c.cfg.PageSize))
	params.Set("sort", "date,asc")

	var resp tmResponse
	if err := fetchJSON(ctx, c.httpClient, c.cfg.BaseURL+"?"+params.Encode(), nil, &resp); err != nil {
		c.logger.Error("TICKETMASTER", fmt.Sprintf("DMA search failed: %v", err))
	} else if resp.Embedded != nil {
		for _, raw := range resp.Embedded.Events {
			ev := c.normalize(raw)
			if !seen[ev.ID] {
				seen[ev.ID] = true
				events = append(events, ev)
			}
		}
		c.logger.LogProvider("ticketmaster", fmt.Sprintf("Found %d events from DMA search", len(events)))
	}

	// Venue-specific searches.
	for _, venue := range c.cfg.VenueIDs {
		vp := url.Values{}
		vp.Set("apikey", c.cfg.APIKey)
		vp.Set("venueId", venue.ID)
		vp.Set("size", strconv.Itoa(c.cfg.PageSize))
		vp.Set("sort", "date,asc")

		var vresp tmResponse
		if err := fetchJSON(ctx, c.httpClient, c.cfg.BaseURL+"?"+vp.Encode(), nil, &vresp); err != nil {
			c.logger.Error("TICKETMASTER", fmt.Sprintf("%s search failed: %v", venue.Name, err))
			continue
		}
		if vresp.Embedded == nil {
			continue
		}
		added := 0
		for _, raw := range vresp.Embedded.Events {
			ev := c.normalize(raw)
			if !seen[ev.ID] {
				seen[ev.ID] = true
				events = append(events, ev)
				added++
			}
		}
		c.logger.LogProvider("ticketmaster", fmt.Sprintf("+%d events from %s", added, venue.Name))
	}

	return events, nil
}

// normalize maps one raw Discovery event onto the canonical schema.
// Missing optional fields degrade to nil; it never fails.
func (c *TicketmasterClient) normalize(raw tmEvent) models.Event {
	var venueData tmVenue
	if raw.Embedded != nil && len(raw.Embedded.Venues) > 0 {
		venueData = raw.Embedded.Venues[0]
	}

	venue := venueData.Name
	if venue == "" {
		venue = "Unknown Venue"
	}

	var city, state *string
	if venueData.City.Name != "" {
		city = models.StrPtr(venueData.City.Name)
	}
	if venueData.State.StateCode != "" {
		state = models.StrPtr(venueData.State.StateCode)
	} else if venueData.State.Name != "" {
		state = models.StrPtr(venueData.State.Name)
	}

	var latitude, longitude *float64
	if v, err := strconv.ParseFloat(venueData.Location.Latitude, 64); err == nil {
		latitude = models.FloatPtr(v)
	}
	if v, err := strconv.ParseFloat(venueData.Location.Longitude, 64); err == nil {
		longitude = models.FloatPtr(v)
	}

	var date, dayOfWeek *string
	if raw.Dates.Start.LocalDate != "" {
		date = models.StrPtr(raw.Dates.Start.LocalDate)
		dayOfWeek = DayOfWeek(raw.Dates.Start.LocalDate)
	}

	var priceMin, priceMax *float64
	currency := "USD"
	if len(raw.PriceRanges) > 0 {
		priceMin = raw.PriceRanges[0].Min
		priceMax = raw.PriceRanges[0].Max
		if raw.PriceRanges[0].Currency != "" {
			currency = raw.PriceRanges[0].Currency
		}
	}

	var ageRestriction *string
	if raw.AgeRestrictions != nil && raw.AgeRestrictions.LegalAgeEnforced {
		ageRestriction = models.StrPtr("18+")
	}

	var ticketURL *string
	if raw.URL != "" {
		ticketURL = models.StrPtr(raw.URL)
	}

	var description *string
	if raw.Info != "" {
		description = models.StrPtr(raw.Info)
	} else if raw.PleaseNote != "" {
		description = models.StrPtr(raw.PleaseNote)
	}

	name := raw.Name
	if name == "" {
		name = "Untitled Event"
	}

	dateStr := ""
	if date != nil {
		dateStr = *date
	}

	return models.Event{
		ID:             models.MakeID(raw.Name, dateStr, venue),
		Name:           name,
		Venue:          venue,
		City:           city,
		State:          state,
		Latitude:       latitude,
		Longitude:      longitude,
		Date:           date,
		Time:           FormatTime(raw.Dates.Start.LocalTime),
		DayOfWeek:      dayOfWeek,
		PriceMin:       priceMin,
		PriceMax:       priceMax,
		Currency:       currency,
		TicketURL:      ticketURL,
		ImageURL:       pickBestImage(raw.Images),
		Source:         models.SourceTicketmaster,
		AgeRestriction: ageRestriction,
		Status:         mapTMStatus(raw.Dates.Status.Code),
		Description:    description,
		LastUpdated:    c.now().UTC().Format(time.RFC3339),
	}
}

var tmStatusMap = map[string]string{
	"onsale":      models.StatusOnSale,
	"offsale":     models.StatusOffSale,
	"cancelled":   models.StatusCancelled,
	"postponed":   models.StatusPostponed,
	"rescheduled": models.StatusRescheduled,
}

func mapTMStatus(code string) string {
	if mapped, ok := tmStatusMap[code]; ok {
		return mapped
	}
	return models.StatusUnknown
}

// pickBestImage prefers 16:9 variants and takes the widest of the pool;
// when nothing is tagged 16:9 the whole pool competes.
func pickBestImage(images []tmImage) *string {
	if len(images) == 0 {
		return nil
	}
	var pool []tmImage
	for _, img := range images {
		if img.Ratio == "16_9" {
			pool = append(pool, img)
		}
	}
	if len(pool) == 0 {
		pool = append(pool, images...)
	}
	sort.SliceStable(pool, func(i, j int) bool { return pool[i].Width > pool[j].Width })
	if pool[0].URL == "" {
		return nil
	}
	return models.StrPtr(pool[0].URL)
}
