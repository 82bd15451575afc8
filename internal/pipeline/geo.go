package pipeline

import (
	"math"
	"strings"

	"comedy-houston/internal/config"
	"comedy-houston/internal/models"
)

const earthRadiusMiles = 3958.8

// HaversineMiles returns the great-circle distance between two points.
func HaversineMiles(lat1, lon1, lat2, lon2 float64) float64 {
	toRad := func(d float64) float64 { return d * math.Pi / 180 }
	dLat := toRad(lat2 - lat1)
	dLon := toRad(lon2 - lon1)
	a := math.Pow(math.Sin(dLat/2), 2) +
		math.Cos(toRad(lat1))*math.Cos(toRad(lat2))*math.Pow(math.Sin(dLon/2), 2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusMiles * c
}

// InRegion reports whether an event belongs to the metro area. With
// coordinates it is a radius check (inclusive at the boundary); without
// them it falls back to a city/state text match.
func InRegion(ev models.Event, region config.RegionConfig) bool {
	if ev.Latitude != nil && ev.Longitude != nil {
		distance := HaversineMiles(region.CenterLat, region.CenterLon, *ev.Latitude, *ev.Longitude)
		return distance <= region.RadiusMiles
	}

	city := ""
	if ev.City != nil {
		city = strings.ToLower(*ev.City)
	}
	state := ""
	if ev.State != nil {
		state = strings.ToLower(*ev.State)
	}
	return strings.Contains(city, "houston") && (state == "tx" || strings.Contains(state, "texas"))
}

// FilterRegion keeps events inside the metro area.
func FilterRegion(events []models.Event, region config.RegionConfig) []models.Event {
	var kept []models.Event
	for _, ev := range events {
		if InRegion(ev, region) {
			kept = append(kept, ev)
		}
	}
	return kept
}
