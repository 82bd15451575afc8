package providers_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"comedy-houston/internal/providers"
)

func TestFormatTime(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"19:30:00", "7:30 PM"},
		{"20:00", "8:00 PM"},
		{"12:00", "12:00 PM"},
		{"00:15", "12:15 AM"},
		{"09:05", "9:05 AM"},
		{"7", "7:00 AM"},
		{"23:59:59", "11:59 PM"},
	}
	for _, tc := range cases {
		got := providers.FormatTime(tc.raw)
		if assert.NotNil(t, got, tc.raw) {
			assert.Equal(t, tc.want, *got, tc.raw)
		}
	}
}

func TestFormatTimeInvalid(t *testing.T) {
	assert.Nil(t, providers.FormatTime(""))
	assert.Nil(t, providers.FormatTime("abc"))
	assert.Nil(t, providers.FormatTime("25:00"))
	assert.Nil(t, providers.FormatTime("-1:00"))
}

func TestDayOfWeek(t *testing.T) {
	got := providers.DayOfWeek("2026-03-01")
	if assert.NotNil(t, got) {
		assert.Equal(t, "Sunday", *got)
	}

	got = providers.DayOfWeek("2026-03-06")
	if assert.NotNil(t, got) {
		assert.Equal(t, "Friday", *got)
	}

	assert.Nil(t, providers.DayOfWeek("not-a-date"))
	assert.Nil(t, providers.DayOfWeek(""))
}
