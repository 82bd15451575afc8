package providers

import (
	"context"

	"comedy-houston/internal/models"
)

// Provider fetches raw listings from one upstream API and returns them
// already normalized into the canonical Event schema. A provider failure
// must never abort the other provider's fetch; the pipeline treats an
// error as "zero events from that source".
type Provider interface {
	Name() string
	Fetch(ctx context.Context) ([]models.Event, error)
}
