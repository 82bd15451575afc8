package clicks

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"comedy-houston/internal/models"
)

type ClickDBLayer interface {
	RecordClick(click Click) error
	CountsByEvent() ([]ClickCount, error)
}

// ClickService records affiliate redirects and serves their aggregates.
type ClickService struct {
	DB ClickDBLayer
}

func NewClickService(db ClickDBLayer) *ClickService {
	return &ClickService{DB: db}
}

var ErrNoTicketURL = fmt.Errorf("event has no ticket URL")

// Track records one redirect for the event and returns the destination.
func (s *ClickService) Track(ev models.Event, referer string) (string, error) {
	if ev.TicketURL == nil || *ev.TicketURL == "" {
		return "", ErrNoTicketURL
	}

	click := Click{
		ID:        uuid.New().String(),
		EventID:   ev.ID,
		EventName: ev.Name,
		Venue:     ev.Venue,
		Source:    ev.Source,
		TicketURL: *ev.TicketURL,
		Referer:   referer,
		ClickedAt: time.Now(),
	}

	if err := s.DB.RecordClick(click); err != nil {
		return "", fmt.Errorf("failed to record click for %s: %w", ev.ID, err)
	}

	return *ev.TicketURL, nil
}

// Stats returns per-event click totals, most clicked first.
func (s *ClickService) Stats() ([]ClickCount, error) {
	counts, err := s.DB.CountsByEvent()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch click counts: %w", err)
	}
	return counts, nil
}
