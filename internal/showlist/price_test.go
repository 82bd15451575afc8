package showlist_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"comedy-houston/internal/models"
	"comedy-houston/internal/showlist"
)

func TestPriceLabel(t *testing.T) {
	cases := []struct {
		name     string
		min, max *float64
		currency string
		want     string
	}{
		{"nothing known", nil, nil, "USD", "Price TBA"},
		{"free", models.FloatPtr(0), nil, "USD", "Free"},
		{"free with zero max", models.FloatPtr(0), models.FloatPtr(0), "USD", "Free"},
		{"range", models.FloatPtr(15), models.FloatPtr(45), "USD", "From $15–$45"},
		{"min equals max", models.FloatPtr(15), models.FloatPtr(15), "USD", "From $15"},
		{"min only", models.FloatPtr(25), nil, "USD", "From $25"},
		{"max only", nil, models.FloatPtr(40), "USD", "Up to $40"},
		{"zero min with real max", models.FloatPtr(0), models.FloatPtr(30), "USD", "From $0–$30"},
		{"non-USD", models.FloatPtr(20), nil, "CAD", "From 20 CAD"},
	}

	for _, tc := range cases {
		ev := models.Event{PriceMin: tc.min, PriceMax: tc.max, Currency: tc.currency}
		assert.Equal(t, tc.want, showlist.PriceLabel(ev), tc.name)
	}
}
