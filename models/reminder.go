package models

import "time"

// ReminderKind identifies one of the three reminders sent per appointment.
type ReminderKind string

const (
	ReminderConfirmation ReminderKind = "confirmation"
	Reminder24Hour       ReminderKind = "24hour"
	Reminder1Hour        ReminderKind = "1hour"
)

// ReminderPreferences holds the customer's notification switches: one global
// toggle per channel plus a per-kind toggle per channel. A (channel, kind)
// pair is effective only when both its toggles are on.
type ReminderPreferences struct {
	EmailReminders bool `json:"emailReminders"`
	SMSReminders   bool `json:"smsReminders"`

	ConfirmationEmail   bool `json:"confirmationEmail"`
	ConfirmationSMS     bool `json:"confirmationSMS"`
	TwentyFourHourEmail bool `json:"twentyFourHourEmail"`
	TwentyFourHourSMS   bool `json:"twentyFourHourSMS"`
	OneHourEmail        bool `json:"oneHourEmail"`
	OneHourSMS          bool `json:"oneHourSMS"`
}

// DefaultReminderPreferences mirrors the defaults offered in the booking
// widget: everything on except the 1-hour SMS.
func DefaultReminderPreferences() ReminderPreferences {
	return ReminderPreferences{
		EmailReminders:      true,
		SMSReminders:        true,
		ConfirmationEmail:   true,
		ConfirmationSMS:     true,
		TwentyFourHourEmail: true,
		TwentyFourHourSMS:   true,
		OneHourEmail:        true,
		OneHourSMS:          false,
	}
}

// AnyChannelEnabled reports whether at least one global channel toggle is on.
func (p ReminderPreferences) AnyChannelEnabled() bool {
	return p.EmailReminders || p.SMSReminders
}

// EmailEnabled returns the effective email toggle for the given kind.
func (p ReminderPreferences) EmailEnabled(kind ReminderKind) bool {
	if !p.EmailReminders {
		return false
	}
	switch kind {
	case ReminderConfirmation:
		return p.ConfirmationEmail
	case Reminder24Hour:
		return p.TwentyFourHourEmail
	case Reminder1Hour:
		return p.OneHourEmail
	}
	return false
}

// SMSEnabled returns the effective SMS toggle for the given kind.
func (p ReminderPreferences) SMSEnabled(kind ReminderKind) bool {
	if !p.SMSReminders {
		return false
	}
	switch kind {
	case ReminderConfirmation:
		return p.ConfirmationSMS
	case Reminder24Hour:
		return p.TwentyFourHourSMS
	case Reminder1Hour:
		return p.OneHourSMS
	}
	return false
}

// ReminderData carries everything the template engine interpolates into a
// reminder message.
type ReminderData struct {
	AppointmentID   string    `json:"appointmentId"`
	CustomerName    string    `json:"customerName"`
	CustomerEmail   string    `json:"customerEmail"`
	CustomerPhone   string    `json:"customerPhone"`
	ServiceName     string    `json:"serviceName"`
	BarberName      string    `json:"barberName"`
	AppointmentDate time.Time `json:"appointmentDate"`
	AppointmentTime string    `json:"appointmentTime"`
	Duration        string    `json:"duration"`
	Price           int       `json:"price"`
	Notes           string    `json:"notes,omitempty"`
}

// ReminderTemplate is the rendered output for one reminder kind.
type ReminderTemplate struct {
	Subject   string `json:"subject"`
	EmailBody string `json:"emailBody"`
	SMSBody   string `json:"smsBody"`
}

// ReminderPayload is the unit of work handed to the deferred job queue. The
// channel flags are the effective toggles frozen at scheduling time.
type ReminderPayload struct {
	Kind  ReminderKind `json:"kind"`
	Data  ReminderData `json:"data"`
	Email bool         `json:"email"`
	SMS   bool         `json:"sms"`
}
