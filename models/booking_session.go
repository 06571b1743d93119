package models

// Wizard steps. Step 4 is terminal and only left through a full reset.
const (
	StepServiceBarber = 1
	StepDateTime      = 2
	StepDetails       = 3
	StepConfirmed     = 4
)

// BookingDraft is the in-progress, unsaved booking form state. It is owned
// exclusively by one wizard session and discarded on reset.
type BookingDraft struct {
	Service   string `json:"service"`
	Barber    string `json:"barber"`
	Date      string `json:"date"` // calendar date, 2006-01-02
	Time      string `json:"time"` // slot label, e.g. "2:30 PM"
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Notes     string `json:"notes"`
}

// WizardSession holds the progress of one booking wizard run. It is stored as
// JSON in Redis between requests, keyed by SessionID.
type WizardSession struct {
	SessionID     string              `json:"sessionId"`
	Step          int                 `json:"step"`
	Draft         BookingDraft        `json:"draft"`
	FieldErrors   map[string]string   `json:"fieldErrors"`
	Preferences   ReminderPreferences `json:"preferences"`
	AppointmentID string              `json:"appointmentId,omitempty"`
}
