package booking

import (
	"regexp"
	"strings"

	"barberpro/models"
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	// Optional country code, optional parenthesized area code, separators of
	// space/dot/dash, e.g. "+1 (123) 456-7890" or "1234567890".
	phonePattern = regexp.MustCompile(`^(\+\d{1,3}\s?)?(\(\d{3}\)|\d{3})[-.\s]?\d{3}[-.\s]?\d{4}$`)
)

// ValidEmail reports whether s looks like local@domain.tld.
func ValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// ValidPhone reports whether s is an acceptable phone number.
func ValidPhone(s string) bool {
	return phonePattern.MatchString(s)
}

// ValidateStep checks the draft fields required by the given wizard step and
// returns a field -> message map. An empty map means the step is valid.
// Pure: no side effects, deterministic given its inputs.
func ValidateStep(step int, draft models.BookingDraft) map[string]string {
	errs := make(map[string]string)

	switch step {
	case models.StepServiceBarber:
		if draft.Service == "" {
			errs["service"] = "Please select a service"
		}
		if draft.Barber == "" {
			errs["barber"] = "Please select a barber"
		}
	case models.StepDateTime:
		if draft.Date == "" {
			errs["date"] = "Please select a date"
		}
		if draft.Time == "" {
			errs["time"] = "Please select a time"
		}
	case models.StepDetails:
		if strings.TrimSpace(draft.FirstName) == "" {
			errs["firstName"] = "First name is required"
		}
		if strings.TrimSpace(draft.LastName) == "" {
			errs["lastName"] = "Last name is required"
		}
		if strings.TrimSpace(draft.Email) == "" {
			errs["email"] = "Email is required"
		} else if !ValidEmail(strings.TrimSpace(draft.Email)) {
			errs["email"] = "Please enter a valid email"
		}
		if strings.TrimSpace(draft.Phone) == "" {
			errs["phone"] = "Phone number is required"
		} else if !ValidPhone(strings.TrimSpace(draft.Phone)) {
			errs["phone"] = "Please enter a valid phone number"
		}
	}

	return errs
}
