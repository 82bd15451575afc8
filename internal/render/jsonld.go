package render

import (
	"encoding/json"

	"comedy-houston/internal/models"
)

type ldPlace struct {
	Type    string     `json:"@type"`
	Name    string     `json:"name"`
	Address *ldAddress `json:"address,omitempty"`
}

type ldAddress struct {
	Type     string `json:"@type"`
	Locality string `json:"addressLocality,omitempty"`
	Region   string `json:"addressRegion,omitempty"`
}

type ldOffer struct {
	Type          string   `json:"@type"`
	Price         float64  `json:"price"`
	PriceCurrency string   `json:"priceCurrency"`
	URL           string   `json:"url,omitempty"`
	Availability  string   `json:"availability,omitempty"`
	HighPrice     *float64 `json:"highPrice,omitempty"`
}

type ldEvent struct {
	Context     string   `json:"@context"`
	Type        string   `json:"@type"`
	Name        string   `json:"name"`
	StartDate   string   `json:"startDate"`
	EventStatus string   `json:"eventStatus"`
	Location    ldPlace  `json:"location"`
	Image       string   `json:"image,omitempty"`
	URL         string   `json:"url,omitempty"`
	Description string   `json:"description,omitempty"`
	Offers      *ldOffer `json:"offers,omitempty"`
}

var ldStatusMap = map[string]string{
	models.StatusCancelled:   "https://schema.org/EventCancelled",
	models.StatusPostponed:   "https://schema.org/EventPostponed",
	models.StatusRescheduled: "https://schema.org/EventRescheduled",
}

// JSONLD emits the schema.org structured-data block for the rendered
// events so crawlers can surface rich results. Events without a date
// are skipped; they are not schedulable.
func JSONLD(events []models.Event) string {
	var items []ldEvent
	for _, e := range events {
		if e.Date == nil {
			continue
		}

		status := "https://schema.org/EventScheduled"
		if mapped, ok := ldStatusMap[e.Status]; ok {
			status = mapped
		}

		item := ldEvent{
			Context:     "https://schema.org",
			Type:        "ComedyEvent",
			Name:        e.Name,
			StartDate:   *e.Date,
			EventStatus: status,
			Location: ldPlace{
				Type: "Place",
				Name: e.Venue,
			},
		}
		if e.City != nil || e.State != nil {
			item.Location.Address = &ldAddress{
				Type:     "PostalAddress",
				Locality: strOrEmpty(e.City),
				Region:   strOrEmpty(e.State),
			}
		}
		if e.ImageURL != nil {
			item.Image = *e.ImageURL
		}
		if e.TicketURL != nil {
			item.URL = *e.TicketURL
		}
		if e.Description != nil {
			item.Description = *e.Description
		}
		if e.PriceMin != nil {
			offer := &ldOffer{
				Type:          "Offer",
				Price:         *e.PriceMin,
				PriceCurrency: e.Currency,
				URL:           strOrEmpty(e.TicketURL),
			}
			if e.Status == models.StatusOnSale {
				offer.Availability = "https://schema.org/InStock"
			}
			if e.PriceMax != nil && *e.PriceMax != *e.PriceMin {
				offer.HighPrice = e.PriceMax
			}
			item.Offers = offer
		}
		items = append(items, item)
	}

	if len(items) == 0 {
		return ""
	}
	data, err := json.Marshal(items)
	if err != nil {
		return ""
	}
	return `<script type="application/ld+json">` + string(data) + `</script>`
}
