package pipeline_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"comedy-houston/internal/config"
	"comedy-houston/internal/models"
	"comedy-houston/internal/pipeline"
)

var houstonRegion = config.RegionConfig{
	CenterLat:   29.7604,
	CenterLon:   -95.3698,
	RadiusMiles: 100,
	WindowDays:  90,
}

func TestHaversineMiles(t *testing.T) {
	assert.Zero(t, pipeline.HaversineMiles(29.7604, -95.3698, 29.7604, -95.3698))

	// Houston to Dallas is roughly 225 miles great-circle.
	d := pipeline.HaversineMiles(29.7604, -95.3698, 32.7767, -96.7970)
	assert.InDelta(t, 225, d, 10)

	// Symmetric.
	assert.InDelta(t, d, pipeline.HaversineMiles(32.7767, -96.7970, 29.7604, -95.3698), 1e-9)
}

func TestInRegionRadiusBoundaryInclusive(t *testing.T) {
	// Galveston, ~45 mi out.
	ev := models.Event{
		Latitude:  models.FloatPtr(29.3013),
		Longitude: models.FloatPtr(-94.7977),
	}
	dist := pipeline.HaversineMiles(houstonRegion.CenterLat, houstonRegion.CenterLon, *ev.Latitude, *ev.Longitude)

	region := houstonRegion
	region.RadiusMiles = dist
	assert.True(t, pipeline.InRegion(ev, region), "event exactly at the radius is in")

	region.RadiusMiles = dist - 0.001
	assert.False(t, pipeline.InRegion(ev, region))
}

func TestInRegionTextFallback(t *testing.T) {
	inTown := models.Event{City: models.StrPtr("Houston"), State: models.StrPtr("TX")}
	assert.True(t, pipeline.InRegion(inTown, houstonRegion))

	spelledOut := models.Event{City: models.StrPtr("North Houston"), State: models.StrPtr("Texas")}
	assert.True(t, pipeline.InRegion(spelledOut, houstonRegion))

	wrongCity := models.Event{City: models.StrPtr("Austin"), State: models.StrPtr("TX")}
	assert.False(t, pipeline.InRegion(wrongCity, houstonRegion))

	wrongState := models.Event{City: models.StrPtr("Houston"), State: models.StrPtr("MO")}
	assert.False(t, pipeline.InRegion(wrongState, houstonRegion))

	noLocation := models.Event{}
	assert.False(t, pipeline.InRegion(noLocation, houstonRegion))
}

func TestInRegionCoordinatesBeatText(t *testing.T) {
	// Coordinates in New York; the Houston text must not rescue it.
	ev := models.Event{
		City:      models.StrPtr("Houston"),
		State:     models.StrPtr("TX"),
		Latitude:  models.FloatPtr(40.7128),
		Longitude: models.FloatPtr(-74.0060),
	}
	assert.False(t, pipeline.InRegion(ev, houstonRegion))
}

func TestFilterRegion(t *testing.T) {
	events := []models.Event{
		{ID: "near", Latitude: models.FloatPtr(29.7355), Longitude: models.FloatPtr(-95.4594)},
		{ID: "far", Latitude: models.FloatPtr(40.7128), Longitude: models.FloatPtr(-74.0060)},
		{ID: "text", City: models.StrPtr("Houston"), State: models.StrPtr("TX")},
	}

	kept := pipeline.FilterRegion(events, houstonRegion)

	if assert.Len(t, kept, 2) {
		assert.Equal(t, "near", kept[0].ID)
		assert.Equal(t, "text", kept[1].ID)
	}
}
