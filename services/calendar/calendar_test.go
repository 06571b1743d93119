package calendar

import (
	"net/url"
	"strings"
	"testing"
	"time"

	"barberpro/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testShop = models.ShopInfo{
	Name:    "BarberPro",
	Phone:   "(208) 123-4567",
	Address: "123 Main Street, Downtown",
	Email:   "appointments@barberpro.com",
	Domain:  "barberpro.com",
}

func TestParseTimeSlot(t *testing.T) {
	tests := []struct {
		slot       string
		hour       int
		minute     int
		wantErr    bool
	}{
		{"9:00 AM", 9, 0, false},
		{"12:00 AM", 0, 0, false},
		{"12:30 PM", 12, 30, false},
		{"1:00 PM", 13, 0, false},
		{"3:30 PM", 15, 30, false},
		{"7:30 PM", 19, 30, false},
		{"  10:15 am ", 10, 15, false},
		{"13:00 PM", 0, 0, true},
		{"9:60 AM", 0, 0, true},
		{"9 AM", 0, 0, true},
		{"9:00", 0, 0, true},
		{"9:00 XM", 0, 0, true},
		{"", 0, 0, true},
	}
	for _, tt := range tests {
		hour, minute, err := ParseTimeSlot(tt.slot)
		if tt.wantErr {
			assert.Error(t, err, "slot %q", tt.slot)
			continue
		}
		require.NoError(t, err, "slot %q", tt.slot)
		assert.Equal(t, tt.hour, hour, "slot %q hour", tt.slot)
		assert.Equal(t, tt.minute, minute, "slot %q minute", tt.slot)
	}
}

func TestParseDuration(t *testing.T) {
	tests := []struct {
		spec string
		want int
	}{
		{"45 min", 45},
		{"20 min", 20},
		{"60 min", 60},
		{"2 hours", 120},
		{"1 hour", 60},
		{"1 hr", 60},
		{"90min", 90},
		{"a while", 60}, // unrecognized falls back to one hour
		{"", 60},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseDuration(tt.spec), "spec %q", tt.spec)
	}
}

func TestCombineDateTime(t *testing.T) {
	date := time.Date(2025, 6, 10, 0, 0, 0, 0, time.Local)

	got, err := CombineDateTime(date, "3:30 PM")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 6, 10, 15, 30, 0, 0, time.Local), got)

	_, err = CombineDateTime(date, "25:00 PM")
	assert.Error(t, err)
}

func buildTestEvent(t *testing.T) models.CalendarEvent {
	t.Helper()
	b := NewBuilder(testShop)
	svc := models.Service{ID: "classic-cut", Name: "Classic Cut", Duration: "45 min", Price: 45}
	barber := models.Barber{ID: "marcus", Name: "Marc Johnson", Specialty: "Master Barber"}
	draft := models.BookingDraft{
		Service:   "classic-cut",
		Barber:    "marcus",
		Date:      "2025-06-10",
		Time:      "10:00 AM",
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@example.com",
		Phone:     "555-123-4567",
		Notes:     "fade on the sides",
	}
	event, err := b.BuildEvent(svc, barber, draft)
	require.NoError(t, err)
	return event
}

func TestBuildEvent(t *testing.T) {
	event := buildTestEvent(t)

	assert.Equal(t, "Classic Cut - BarberPro", event.Title)
	assert.Equal(t, "BarberPro, 123 Main Street, Downtown", event.Location)
	assert.Equal(t, []string{"jane@example.com"}, event.Attendees)
	assert.Equal(t, time.Date(2025, 6, 10, 10, 0, 0, 0, time.Local), event.Start)
	assert.Equal(t, 45*time.Minute, event.End.Sub(event.Start))

	assert.Contains(t, event.Description, "Service: Classic Cut")
	assert.Contains(t, event.Description, "Barber: Marc Johnson")
	assert.Contains(t, event.Description, "Client: Jane Doe")
	assert.Contains(t, event.Description, "Notes: fade on the sides")
	assert.Contains(t, event.Description, "Please arrive 10 minutes early for your appointment.")
	assert.Contains(t, event.Description, "please call (208) 123-4567 at least 24 hours in advance")
}

func TestBuildEventOmitsEmptyNotes(t *testing.T) {
	b := NewBuilder(testShop)
	svc := models.Service{Name: "Buzz Cut", Duration: "20 min", Price: 25}
	barber := models.Barber{Name: "Alex Rodriz"}
	event, err := b.BuildEvent(svc, barber, models.BookingDraft{Date: "2025-06-10", Time: "9:00 AM"})
	require.NoError(t, err)
	assert.NotContains(t, event.Description, "Notes:")
}

func TestBuildEventRejectsBadDate(t *testing.T) {
	b := NewBuilder(testShop)
	_, err := b.BuildEvent(models.Service{}, models.Barber{}, models.BookingDraft{Date: "06/10/2025", Time: "9:00 AM"})
	assert.Error(t, err)
}

func TestGoogleCalendarURL(t *testing.T) {
	b := NewBuilder(testShop)
	event := buildTestEvent(t)

	link := b.GoogleCalendarURL(event)
	parsed, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, "calendar.google.com", parsed.Host)

	q := parsed.Query()
	assert.Equal(t, "TEMPLATE", q.Get("action"))
	assert.Equal(t, "Classic Cut - BarberPro", q.Get("text"))
	assert.Equal(t, "website:barberpro.com", q.Get("sprop"))

	wantDates := formatUTCBasic(event.Start) + "/" + formatUTCBasic(event.End)
	assert.Equal(t, wantDates, q.Get("dates"))
}

func TestOutlookCalendarURL(t *testing.T) {
	b := NewBuilder(testShop)
	event := buildTestEvent(t)

	link := b.OutlookCalendarURL(event)
	parsed, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, "outlook.live.com", parsed.Host)

	q := parsed.Query()
	assert.Equal(t, "Classic Cut - BarberPro", q.Get("subject"))
	assert.Equal(t, event.Start.UTC().Format(time.RFC3339), q.Get("startdt"))
	assert.Equal(t, event.End.UTC().Format(time.RFC3339), q.Get("enddt"))
	assert.Equal(t, "false", q.Get("allday"))
}

func TestICSFile(t *testing.T) {
	b := NewBuilder(testShop)
	event := buildTestEvent(t)

	ics := b.ICSFile(event)
	lines := strings.Split(ics, "\r\n")
	assert.Equal(t, "BEGIN:VCALENDAR", lines[0])
	assert.Equal(t, "END:VCALENDAR", lines[len(lines)-1])

	assert.Contains(t, ics, "PRODID:-//BarberPro//Appointment//EN")
	assert.Contains(t, ics, "DTSTART:"+formatUTCBasic(event.Start))
	assert.Contains(t, ics, "DTEND:"+formatUTCBasic(event.End))
	assert.Contains(t, ics, "SUMMARY:Classic Cut - BarberPro")
	assert.Contains(t, ics, "TRIGGER:-PT15M")
	assert.Contains(t, ics, "@barberpro.com")
	// Newlines in the description must be escaped, not literal.
	assert.Contains(t, ics, `\n`)
	assert.NotContains(t, ics, "DESCRIPTION:Service: Classic Cut\nBarber")
}

func TestFormatUTCBasic(t *testing.T) {
	instant := time.Date(2025, 6, 10, 15, 0, 0, 0, time.UTC)
	assert.Equal(t, "20250610T150000Z", formatUTCBasic(instant))
}
