package reminder

import (
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

func testReminderData() models.ReminderData {
	return models.ReminderData{
		AppointmentID:   "BP-1718000000000-abc123def",
		CustomerName:    "Jane Doe",
		CustomerEmail:   "jane@example.com",
		CustomerPhone:   "555-123-4567",
		ServiceName:     "Classic Cut",
		BarberName:      "Marc Johnson",
		AppointmentDate: time.Date(2025, 6, 10, 0, 0, 0, 0, time.Local),
		AppointmentTime: "10:00 AM",
		Duration:        "45 min",
		Price:           45,
	}
}

func TestRenderConfirmation(t *testing.T) {
	e := NewTemplateEngine(testShop)

	tmpl, err := e.Render(testReminderData(), models.ReminderConfirmation)
	require.NoError(t, err)

	assert.Equal(t, "Appointment Confirmed - BarberPro", tmpl.Subject)

	assert.Contains(t, tmpl.EmailBody, "Dear Jane Doe,")
	assert.Contains(t, tmpl.EmailBody, "<strong>Service:</strong> Classic Cut")
	assert.Contains(t, tmpl.EmailBody, "<strong>Barber:</strong> Marc Johnson")
	assert.Contains(t, tmpl.EmailBody, "Tuesday, June 10, 2025 at 10:00 AM")
	assert.Contains(t, tmpl.EmailBody, "<strong>Price:</strong> $45")
	assert.Contains(t, tmpl.EmailBody, "123 Main Street, Downtown")
	assert.NotContains(t, tmpl.EmailBody, "Special Requests")

	assert.Contains(t, tmpl.SMSBody, "BarberPro: Appointment confirmed!")
	assert.Contains(t, tmpl.SMSBody, "Classic Cut with Marc Johnson")
	assert.Contains(t, tmpl.SMSBody, "Call (208) 123-4567")
}

func TestRenderConfirmationWithNotes(t *testing.T) {
	e := NewTemplateEngine(testShop)
	data := testReminderData()
	data.Notes = "fade on the sides"

	tmpl, err := e.Render(data, models.ReminderConfirmation)
	require.NoError(t, err)
	assert.Contains(t, tmpl.EmailBody, "<strong>Special Requests:</strong> fade on the sides")
}

func TestRender24Hour(t *testing.T) {
	e := NewTemplateEngine(testShop)

	tmpl, err := e.Render(testReminderData(), models.Reminder24Hour)
	require.NoError(t, err)

	assert.Equal(t, "Reminder: Your appointment tomorrow at BarberPro", tmpl.Subject)
	assert.Contains(t, tmpl.EmailBody, "appointment with us tomorrow")
	assert.Contains(t, tmpl.EmailBody, "Tuesday, June 10, 2025 at 10:00 AM")
	assert.Contains(t, tmpl.SMSBody, "You have an appointment tomorrow")
	assert.Contains(t, tmpl.SMSBody, "Classic Cut with Marc Johnson at 10:00 AM")
}

func TestRender1Hour(t *testing.T) {
	e := NewTemplateEngine(testShop)

	tmpl, err := e.Render(testReminderData(), models.Reminder1Hour)
	require.NoError(t, err)

	assert.Equal(t, "Your appointment is in 1 hour - BarberPro", tmpl.Subject)
	assert.Contains(t, tmpl.EmailBody, "Your Appointment is in 1 Hour!")
	assert.Contains(t, tmpl.EmailBody, "<strong>Time:</strong> 10:00 AM (in 1 hour)")
	assert.Contains(t, tmpl.SMSBody, "Your appointment is in 1 HOUR!")
	assert.Contains(t, tmpl.SMSBody, "Please head our way now")
}

func TestRenderInvalidKind(t *testing.T) {
	e := NewTemplateEngine(testShop)

	_, err := e.Render(testReminderData(), models.ReminderKind("2week"))
	assert.ErrorIs(t, err, ErrInvalidReminderKind)
}
