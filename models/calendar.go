package models

import "time"

// CalendarEvent is the normalized event derived from a completed booking.
// It is immutable once built; rebuild it if the booking changes.
type CalendarEvent struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	Location    string    `json:"location"`
	Attendees   []string  `json:"attendees,omitempty"`
}
