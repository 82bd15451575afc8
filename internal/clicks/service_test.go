package clicks_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"comedy-houston/internal/clicks"
	"comedy-houston/internal/models"
)

// Mock implementations
type MockClickDBLayer struct {
	mock.Mock
}

func (m *MockClickDBLayer) RecordClick(click clicks.Click) error {
	args := m.Called(click)
	return args.Error(0)
}

func (m *MockClickDBLayer) CountsByEvent() ([]clicks.ClickCount, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]clicks.ClickCount), args.Error(1)
}

func testEvent() models.Event {
	return models.Event{
		ID:        "abc123",
		Name:      "Live Laugh Show",
		Venue:     "Houston Improv",
		Source:    models.SourceTicketmaster,
		TicketURL: models.StrPtr("https://www.ticketmaster.com/event/abc"),
	}
}

func TestTrackRecordsClick(t *testing.T) {
	mockDB := new(MockClickDBLayer)
	svc := clicks.NewClickService(mockDB)

	ev := testEvent()
	mockDB.On("RecordClick", mock.MatchedBy(func(c clicks.Click) bool {
		return c.EventID == ev.ID &&
			c.EventName == ev.Name &&
			c.TicketURL == *ev.TicketURL &&
			c.Referer == "https://www.google.com" &&
			c.ID != "" &&
			!c.ClickedAt.IsZero()
	})).Return(nil)

	dest, err := svc.Track(ev, "https://www.google.com")

	assert.NoError(t, err)
	assert.Equal(t, *ev.TicketURL, dest)
	mockDB.AssertExpectations(t)
}

func TestTrackWithoutTicketURL(t *testing.T) {
	mockDB := new(MockClickDBLayer)
	svc := clicks.NewClickService(mockDB)

	ev := testEvent()
	ev.TicketURL = nil

	dest, err := svc.Track(ev, "")

	assert.ErrorIs(t, err, clicks.ErrNoTicketURL)
	assert.Empty(t, dest)

	ev.TicketURL = models.StrPtr("")
	_, err = svc.Track(ev, "")
	assert.ErrorIs(t, err, clicks.ErrNoTicketURL)

	// The click log is never touched for unroutable events.
	mockDB.AssertNotCalled(t, "RecordClick", mock.Anything)
}

func TestTrackDBError(t *testing.T) {
	mockDB := new(MockClickDBLayer)
	svc := clicks.NewClickService(mockDB)

	mockDB.On("RecordClick", mock.Anything).Return(errors.New("disk full"))

	dest, err := svc.Track(testEvent(), "")

	assert.Error(t, err)
	assert.Empty(t, dest)
	mockDB.AssertExpectations(t)
}

func TestStats(t *testing.T) {
	mockDB := new(MockClickDBLayer)
	svc := clicks.NewClickService(mockDB)

	counts := []clicks.ClickCount{
		{EventID: "abc123", EventName: "Live Laugh Show", Clicks: 7},
		{EventID: "def456", EventName: "Open Mic Night", Clicks: 2},
	}
	mockDB.On("CountsByEvent").Return(counts, nil)

	got, err := svc.Stats()

	assert.NoError(t, err)
	assert.Equal(t, counts, got)
	mockDB.AssertExpectations(t)
}

func TestStatsError(t *testing.T) {
	mockDB := new(MockClickDBLayer)
	svc := clicks.NewClickService(mockDB)

	mockDB.On("CountsByEvent").Return(nil, errors.New("query failed"))

	got, err := svc.Stats()

	assert.Error(t, err)
	assert.Nil(t, got)
}
