package booking

import (
	"errors"
	"fmt"
)

// ErrSessionNotFound is returned when a wizard session is missing or expired.
var ErrSessionNotFound = errors.New("booking session not found or expired")

// SubmissionError reports a failed submit attempt (persistence or reminder
// scheduling). It is recoverable: the wizard stays on the details step and
// the customer may retry.
type SubmissionError struct {
	Code    string
	Message string
}

func (e *SubmissionError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewSubmissionError(msg string) error {
	return &SubmissionError{
		Code:    "submissionError",
		Message: msg,
	}
}

// IsSubmissionError reports whether err is a SubmissionError.
func IsSubmissionError(err error) bool {
	var se *SubmissionError
	return errors.As(err, &se)
}
