package reminder

import (
	"errors"
	"fmt"
	"time"

	"barberpro/models"
)

// ErrInvalidReminderKind indicates a caller bug: the kind is outside the
// three recognized values. It must never surface to a customer.
var ErrInvalidReminderKind = errors.New("invalid reminder kind")

// TemplateEngine renders channel-specific reminder messages.
type TemplateEngine struct {
	Shop models.ShopInfo
}

// NewTemplateEngine returns a TemplateEngine for the given shop.
func NewTemplateEngine(shop models.ShopInfo) *TemplateEngine {
	return &TemplateEngine{Shop: shop}
}

// formatLongDate renders the long-form date used in every template,
// e.g. "Tuesday, June 10, 2025".
func formatLongDate(t time.Time) string {
	return t.Format("Monday, January 2, 2006")
}

// Render maps booking data and a reminder kind to a subject plus email and
// SMS bodies.
func (e *TemplateEngine) Render(data models.ReminderData, kind models.ReminderKind) (models.ReminderTemplate, error) {
	dateTime := fmt.Sprintf("%s at %s", formatLongDate(data.AppointmentDate), data.AppointmentTime)

	switch kind {
	case models.ReminderConfirmation:
		return models.ReminderTemplate{
			Subject:   fmt.Sprintf("Appointment Confirmed - %s", e.Shop.Name),
			EmailBody: e.confirmationEmail(data, dateTime),
			SMSBody:   e.confirmationSMS(data, dateTime),
		}, nil
	case models.Reminder24Hour:
		return models.ReminderTemplate{
			Subject:   fmt.Sprintf("Reminder: Your appointment tomorrow at %s", e.Shop.Name),
			EmailBody: e.twentyFourHourEmail(data, dateTime),
			SMSBody:   e.twentyFourHourSMS(data),
		}, nil
	case models.Reminder1Hour:
		return models.ReminderTemplate{
			Subject:   fmt.Sprintf("Your appointment is in 1 hour - %s", e.Shop.Name),
			EmailBody: e.oneHourEmail(data),
			SMSBody:   e.oneHourSMS(data),
		}, nil
	}
	return models.ReminderTemplate{}, fmt.Errorf("%w: %q", ErrInvalidReminderKind, kind)
}

func (e *TemplateEngine) confirmationEmail(data models.ReminderData, dateTime string) string {
	notesBlock := ""
	if data.Notes != "" {
		notesBlock = fmt.Sprintf("<p><strong>Special Requests:</strong> %s</p>", data.Notes)
	}

	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .header { background-color: #D2B48C; color: #000; padding: 20px; text-align: center; }
        .content { padding: 20px; }
        .appointment-details { background-color: #f9f9f9; padding: 15px; border-radius: 5px; margin: 20px 0; }
        .footer { background-color: #f4f4f4; padding: 15px; text-align: center; font-size: 12px; }
    </style>
</head>
<body>
    <div class="header">
        <h1>%s</h1>
        <h2>Appointment Confirmed!</h2>
    </div>

    <div class="content">
        <p>Dear %s,</p>

        <p>Thank you for booking with %s! Your appointment has been confirmed.</p>

        <div class="appointment-details">
            <h3>Appointment Details:</h3>
            <p><strong>Service:</strong> %s</p>
            <p><strong>Barber:</strong> %s</p>
            <p><strong>Date &amp; Time:</strong> %s</p>
            <p><strong>Duration:</strong> %s</p>
            <p><strong>Price:</strong> $%d</p>
            %s
        </div>

        <h3>Important Information:</h3>
        <ul>
            <li>Please arrive 10 minutes early for your appointment</li>
            <li>Bring a valid ID for verification</li>
            <li>Payment can be made by cash, card, or mobile payment</li>
            <li>24-hour cancellation notice required</li>
        </ul>

        <h3>Location:</h3>
        <p>%s</p>

        <p>We'll send you reminder notifications 24 hours and 1 hour before your appointment.</p>

        <p>If you need to reschedule or cancel, please call us at %s.</p>

        <p>We look forward to seeing you!</p>

        <p>Best regards,<br>The %s Team</p>
    </div>

    <div class="footer">
        <p>%s | %s | %s</p>
        <p>Email: %s</p>
    </div>
</body>
</html>`,
		e.Shop.Name, data.CustomerName, e.Shop.Name,
		data.ServiceName, data.BarberName, dateTime, data.Duration, data.Price, notesBlock,
		e.Shop.Address, e.Shop.Phone, e.Shop.Name,
		e.Shop.Name, e.Shop.Address, e.Shop.Phone, e.Shop.Email)
}

func (e *TemplateEngine) confirmationSMS(data models.ReminderData, dateTime string) string {
	return fmt.Sprintf("%s: Appointment confirmed! %s with %s on %s. Please arrive 10 min early. Location: %s. Questions? Call %s",
		e.Shop.Name, data.ServiceName, data.BarberName, dateTime, e.Shop.Address, e.Shop.Phone)
}

func (e *TemplateEngine) twentyFourHourEmail(data models.ReminderData, dateTime string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .header { background-color: #D2B48C; color: #000; padding: 20px; text-align: center; }
        .content { padding: 20px; }
        .appointment-details { background-color: #f9f9f9; padding: 15px; border-radius: 5px; margin: 20px 0; }
        .footer { background-color: #f4f4f4; padding: 15px; text-align: center; font-size: 12px; }
    </style>
</head>
<body>
    <div class="header">
        <h1>%s</h1>
        <h2>Appointment Reminder</h2>
    </div>

    <div class="content">
        <p>Dear %s,</p>

        <p>This is a friendly reminder that you have an appointment with us tomorrow!</p>

        <div class="appointment-details">
            <h3>Tomorrow's Appointment:</h3>
            <p><strong>Service:</strong> %s</p>
            <p><strong>Barber:</strong> %s</p>
            <p><strong>Date &amp; Time:</strong> %s</p>
            <p><strong>Duration:</strong> %s</p>
        </div>

        <h3>Reminders:</h3>
        <ul>
            <li>Arrive 10 minutes early</li>
            <li>Bring a valid ID</li>
            <li>We're located at %s</li>
        </ul>

        <p>Need to reschedule? Call us at %s (24-hour notice required).</p>

        <p>We're excited to see you tomorrow!</p>

        <p>Best regards,<br>The %s Team</p>
    </div>

    <div class="footer">
        <p>%s | %s | %s</p>
    </div>
</body>
</html>`,
		e.Shop.Name, data.CustomerName,
		data.ServiceName, data.BarberName, dateTime, data.Duration,
		e.Shop.Address, e.Shop.Phone, e.Shop.Name,
		e.Shop.Name, e.Shop.Address, e.Shop.Phone)
}

func (e *TemplateEngine) twentyFourHourSMS(data models.ReminderData) string {
	return fmt.Sprintf("%s: Reminder! You have an appointment tomorrow - %s with %s at %s. Please arrive 10 min early. Need to reschedule? Call %s",
		e.Shop.Name, data.ServiceName, data.BarberName, data.AppointmentTime, e.Shop.Phone)
}

func (e *TemplateEngine) oneHourEmail(data models.ReminderData) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .header { background-color: #D2B48C; color: #000; padding: 20px; text-align: center; }
        .content { padding: 20px; }
        .urgent { background-color: #fff3cd; border: 1px solid #ffeaa7; padding: 15px; border-radius: 5px; margin: 20px 0; }
        .footer { background-color: #f4f4f4; padding: 15px; text-align: center; font-size: 12px; }
    </style>
</head>
<body>
    <div class="header">
        <h1>%s</h1>
        <h2>Your Appointment is in 1 Hour!</h2>
    </div>

    <div class="content">
        <p>Dear %s,</p>

        <div class="urgent">
            <h3>Your appointment is starting soon!</h3>
            <p><strong>Service:</strong> %s with %s</p>
            <p><strong>Time:</strong> %s (in 1 hour)</p>
            <p><strong>Location:</strong> %s</p>
        </div>

        <p><strong>Please start heading our way!</strong> Remember to arrive 10 minutes early.</p>

        <p>If you're running late or need to cancel, please call us immediately at %s.</p>

        <p>See you soon!</p>

        <p>The %s Team</p>
    </div>

    <div class="footer">
        <p>%s | %s</p>
    </div>
</body>
</html>`,
		e.Shop.Name, data.CustomerName,
		data.ServiceName, data.BarberName, data.AppointmentTime, e.Shop.Address,
		e.Shop.Phone, e.Shop.Name,
		e.Shop.Name, e.Shop.Phone)
}

func (e *TemplateEngine) oneHourSMS(data models.ReminderData) string {
	return fmt.Sprintf("%s: Your appointment is in 1 HOUR! %s with %s at %s. Please head our way now. %s. Running late? Call %s",
		e.Shop.Name, data.ServiceName, data.BarberName, data.AppointmentTime, e.Shop.Address, e.Shop.Phone)
}
