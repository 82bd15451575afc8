package pipeline_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"comedy-houston/internal/logger"
	"comedy-houston/internal/models"
	"comedy-houston/internal/pipeline"
	"comedy-houston/internal/providers"
)

type fakeProvider struct {
	name   string
	events []models.Event
	err    error
}

func (f *fakeProvider) Name() string { return f.name }

func (f *fakeProvider) Fetch(ctx context.Context) ([]models.Event, error) {
	return f.events, f.err
}

func houstonEvent(name, date, venue, source string, score int) models.Event {
	ev := scored(models.MakeID(name, date, venue), source, score)
	ev.Name = name
	ev.Venue = venue
	ev.Date = models.StrPtr(date)
	ev.Latitude = models.FloatPtr(29.7355)
	ev.Longitude = models.FloatPtr(-95.4594)
	return ev
}

func TestRunnerMergesFiltersAndDedups(t *testing.T) {
	// Eventbrite first so the richer Ticketmaster duplicate has to
	// replace an already-stored record.
	sparse := houstonEvent("Live Laugh Show", "2026-03-01", "Houston Improv", models.SourceEventbrite, 1)
	rich := houstonEvent("Live Laugh Show", "2026-03-01", "Houston Improv", models.SourceTicketmaster, 5)

	later := houstonEvent("Another Show", "2026-03-15", "The Riot Comedy Club", models.SourceTicketmaster, 2)

	outOfTown := houstonEvent("Dallas Show", "2026-03-02", "Dallas Comedy House", models.SourceTicketmaster, 2)
	outOfTown.Latitude = models.FloatPtr(32.7767)
	outOfTown.Longitude = models.FloatPtr(-96.7970)

	tooFarOut := houstonEvent("Next Year Show", "2026-09-01", "Houston Improv", models.SourceTicketmaster, 2)

	runner := pipeline.NewRunner([]providers.Provider{
		&fakeProvider{name: models.SourceEventbrite, events: []models.Event{sparse}},
		&fakeProvider{name: models.SourceTicketmaster, events: []models.Event{later, rich, outOfTown, tooFarOut}},
	}, houstonRegion, &logger.Logger{})
	runner.Now = func() time.Time {
		return time.Date(2026, 2, 25, 10, 0, 0, 0, time.Local)
	}

	feed := runner.Run(context.Background())

	assert.Equal(t, 2, feed.TotalEvents)
	if !assert.Len(t, feed.Events, 2) {
		return
	}

	// Canonical order, and the richer record won the dedup.
	assert.Equal(t, "Live Laugh Show", feed.Events[0].Name)
	assert.Equal(t, models.SourceTicketmaster, feed.Events[0].Source)
	assert.Equal(t, "Another Show", feed.Events[1].Name)

	assert.NotEmpty(t, feed.LastUpdated)
}

func TestRunnerProviderFailureDegrades(t *testing.T) {
	ok := houstonEvent("Surviving Show", "2026-03-01", "Houston Improv", models.SourceTicketmaster, 3)

	runner := pipeline.NewRunner([]providers.Provider{
		&fakeProvider{name: models.SourceTicketmaster, events: []models.Event{ok}},
		&fakeProvider{name: models.SourceEventbrite, err: errors.New("upstream down")},
	}, houstonRegion, &logger.Logger{})
	runner.Now = func() time.Time {
		return time.Date(2026, 2, 25, 10, 0, 0, 0, time.Local)
	}

	feed := runner.Run(context.Background())

	if assert.Len(t, feed.Events, 1) {
		assert.Equal(t, "Surviving Show", feed.Events[0].Name)
	}
}

func TestRunnerEmptyRun(t *testing.T) {
	runner := pipeline.NewRunner([]providers.Provider{
		&fakeProvider{name: models.SourceTicketmaster},
		&fakeProvider{name: models.SourceEventbrite},
	}, houstonRegion, &logger.Logger{})

	feed := runner.Run(context.Background())

	assert.Zero(t, feed.TotalEvents)
	assert.Empty(t, feed.Events)
}
