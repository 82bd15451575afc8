package pipeline

import (
	"context"
	"fmt"
	"sync"
	"time"

	"comedy-houston/internal/config"
	"comedy-houston/internal/logger"
	"comedy-houston/internal/models"
	"comedy-houston/internal/providers"
)

// Runner drives one full fetch run: both providers concurrently, then
// region filter, window filter, dedup and the canonical sort.
type Runner struct {
	Providers []providers.Provider
	Region    config.RegionConfig
	Logger    *logger.Logger
	Now       func() time.Time
}

func NewRunner(provs []providers.Provider, region config.RegionConfig, log *logger.Logger) *Runner {
	return &Runner{
		Providers: provs,
		Region:    region,
		Logger:    log,
		Now:       time.Now,
	}
}

// Run produces the full feed. A provider failure is logged and degrades
// to zero events from that source; it never aborts the run. The merged
// list keeps provider order (slot per provider, merged after the join),
// so there is no shared mutable state between the two fetches.
func (r *Runner) Run(ctx context.Context) models.Feed {
	results := make([][]models.Event, len(r.Providers))

	var wg sync.WaitGroup
	for i, p := range r.Providers {
		wg.Add(1)
		go func(i int, p providers.Provider) {
			defer wg.Done()
			events, err := p.Fetch(ctx)
			if err != nil {
				r.Logger.Error("PIPELINE", fmt.Sprintf("%s fetch failed: %v", p.Name(), err))
				return
			}
			results[i] = events
		}(i, p)
	}
	wg.Wait()

	var merged []models.Event
	for i, p := range r.Providers {
		r.Logger.LogPipeline(p.Name(), len(results[i]))
		merged = append(merged, results[i]...)
	}

	now := r.Now()

	regional := FilterRegion(merged, r.Region)
	r.Logger.LogPipeline(fmt.Sprintf("within %.0f mi", r.Region.RadiusMiles), len(regional))

	windowed := FilterWindow(regional, r.Region.WindowDays, now)
	r.Logger.LogPipeline(fmt.Sprintf("next %d days", r.Region.WindowDays), len(windowed))

	deduped := Deduplicate(windowed)
	r.Logger.LogPipeline("after dedup", len(deduped))

	SortCanonical(deduped)

	return models.NewFeed(deduped, now)
}
