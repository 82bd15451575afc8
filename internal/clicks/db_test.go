package clicks_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"comedy-houston/internal/clicks"
)

// setupTestDB opens an in-memory sqlite click log, so the real bun
// queries run without touching disk.
func setupTestDB(t *testing.T) *clicks.DB {
	db, err := clicks.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func click(id, eventID, eventName string) clicks.Click {
	return clicks.Click{
		ID:        id,
		EventID:   eventID,
		EventName: eventName,
		Venue:     "Houston Improv",
		Source:    "ticketmaster",
		TicketURL: "https://www.ticketmaster.com/event/" + eventID,
		Referer:   "https://www.google.com",
		ClickedAt: time.Date(2026, 3, 4, 18, 0, 0, 0, time.UTC),
	}
}

func TestRecordClickAndCountsByEvent(t *testing.T) {
	db := setupTestDB(t)

	// Two clicks on one event, one on another
	require.NoError(t, db.RecordClick(click("c1", "abc123", "Live Laugh Show")))
	require.NoError(t, db.RecordClick(click("c2", "abc123", "Live Laugh Show")))
	require.NoError(t, db.RecordClick(click("c3", "def456", "Open Mic Night")))

	counts, err := db.CountsByEvent()
	require.NoError(t, err)
	require.Len(t, counts, 2)

	// Ordered by clicks descending, names aggregated per event
	assert.Equal(t, "abc123", counts[0].EventID)
	assert.Equal(t, "Live Laugh Show", counts[0].EventName)
	assert.Equal(t, 2, counts[0].Clicks)

	assert.Equal(t, "def456", counts[1].EventID)
	assert.Equal(t, "Open Mic Night", counts[1].EventName)
	assert.Equal(t, 1, counts[1].Clicks)
}

func TestCountsByEventEmpty(t *testing.T) {
	db := setupTestDB(t)

	counts, err := db.CountsByEvent()
	require.NoError(t, err)
	assert.Empty(t, counts)
}

func TestRecordClickDuplicateID(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, db.RecordClick(click("c1", "abc123", "Live Laugh Show")))

	// Same primary key again must fail rather than silently overwrite.
	err := db.RecordClick(click("c1", "abc123", "Live Laugh Show"))
	assert.Error(t, err)
}
