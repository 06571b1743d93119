package booking

import (
	"context"
	"fmt"
	"time"

	"barberpro/models"
	"barberpro/services/calendar"
	"barberpro/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// StartSession creates a new wizard session with an empty draft and default
// reminder preferences, and stores it for later requests.
func (s *DefaultWizardService) StartSession(ctx context.Context) (*models.WizardSession, error) {
	session := &models.WizardSession{
		SessionID:   uuid.New().String(),
		Step:        models.StepServiceBarber,
		FieldErrors: map[string]string{},
		Preferences: models.DefaultReminderPreferences(),
	}
	if err := s.Sessions.Set(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to store booking session: %w", err)
	}
	return session, nil
}

// GetSession retrieves an existing wizard session.
func (s *DefaultWizardService) GetSession(ctx context.Context, sessionID string) (*models.WizardSession, error) {
	return s.Sessions.Get(ctx, sessionID)
}

// UpdateDraft applies field updates to the draft. The confirmed step is
// terminal: its draft can no longer change.
func (s *DefaultWizardService) UpdateDraft(ctx context.Context, sessionID string, updates map[string]string) (*models.WizardSession, error) {
	session, err := s.Sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Step == models.StepConfirmed {
		return session, nil
	}

	for field, value := range updates {
		switch field {
		case "service":
			session.Draft.Service = value
		case "barber":
			session.Draft.Barber = value
		case "date":
			session.Draft.Date = value
		case "time":
			session.Draft.Time = value
		case "firstName":
			session.Draft.FirstName = value
		case "lastName":
			session.Draft.LastName = value
		case "email":
			session.Draft.Email = value
		case "phone":
			session.Draft.Phone = value
		case "notes":
			session.Draft.Notes = value
		default:
			return nil, fmt.Errorf("unknown draft field %q", field)
		}
	}

	if err := s.Sessions.Set(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to update booking session: %w", err)
	}
	return session, nil
}

// SetPreferences replaces the session's reminder preferences.
func (s *DefaultWizardService) SetPreferences(ctx context.Context, sessionID string, prefs models.ReminderPreferences) (*models.WizardSession, error) {
	session, err := s.Sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Step == models.StepConfirmed {
		return session, nil
	}

	session.Preferences = prefs
	if err := s.Sessions.Set(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to update booking session: %w", err)
	}
	return session, nil
}

// Advance validates the active step. On failure the session keeps its step
// and carries a message per offending field; on success errors are cleared
// and the wizard moves forward. Advancing from the details step runs the
// submit sequence first.
func (s *DefaultWizardService) Advance(ctx context.Context, sessionID string) (*models.WizardSession, error) {
	session, err := s.Sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Step == models.StepConfirmed {
		return session, nil
	}

	errs := s.validateStep(session.Step, session.Draft)
	if len(errs) > 0 {
		session.FieldErrors = errs
		if err := s.Sessions.Set(ctx, session); err != nil {
			return nil, fmt.Errorf("failed to update booking session: %w", err)
		}
		return session, nil
	}
	session.FieldErrors = map[string]string{}

	if session.Step == models.StepDetails {
		if err := s.submit(ctx, session); err != nil {
			// The session keeps the step and any identifier generated so
			// far so a retry reuses it instead of minting a duplicate.
			if storeErr := s.Sessions.Set(ctx, session); storeErr != nil {
				return nil, fmt.Errorf("failed to update booking session: %w", storeErr)
			}
			return session, err
		}
	}

	session.Step++
	if err := s.Sessions.Set(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to update booking session: %w", err)
	}
	return session, nil
}

// validateStep layers catalog checks on top of the pure field validation:
// a selection referencing an unknown catalog entry is as invalid as no
// selection at all.
func (s *DefaultWizardService) validateStep(step int, draft models.BookingDraft) map[string]string {
	errs := ValidateStep(step, draft)

	switch step {
	case models.StepServiceBarber:
		if draft.Service != "" {
			if _, ok := s.Catalog.ServiceByID(draft.Service); !ok {
				errs["service"] = "Please select a service"
			}
		}
		if draft.Barber != "" {
			if _, ok := s.Catalog.BarberByID(draft.Barber); !ok {
				errs["barber"] = "Please select a barber"
			}
		}
	case models.StepDateTime:
		if draft.Date != "" {
			if _, err := time.ParseInLocation(calendar.DraftDateLayout, draft.Date, time.Local); err != nil {
				errs["date"] = "Please select a date"
			}
		}
		if draft.Time != "" {
			if _, _, err := calendar.ParseTimeSlot(draft.Time); err != nil {
				errs["time"] = "Please select a time"
			}
		}
	}

	return errs
}

// submit persists the appointment and schedules reminders. Failure of
// either leaves the wizard on the details step with a retry-eligible error.
func (s *DefaultWizardService) submit(ctx context.Context, session *models.WizardSession) error {
	draft := session.Draft
	svc, ok := s.Catalog.ServiceByID(draft.Service)
	if !ok {
		return NewSubmissionError("selected service is no longer available")
	}
	barber, ok := s.Catalog.BarberByID(draft.Barber)
	if !ok {
		return NewSubmissionError("selected barber is no longer available")
	}
	date, err := time.ParseInLocation(calendar.DraftDateLayout, draft.Date, time.Local)
	if err != nil {
		return NewSubmissionError("booking date could not be read")
	}

	// Identifier generation is idempotent per session: a retry after a
	// partial failure reuses the same ID and the store upserts by it.
	if session.AppointmentID == "" {
		session.AppointmentID = utils.GenerateAppointmentID()
	}

	appt := models.Appointment{
		ID:      session.AppointmentID,
		Service: draft.Service,
		Date:    draft.Date,
		Time:    draft.Time,
		Name:    fmt.Sprintf("%s %s", draft.FirstName, draft.LastName),
		Email:   draft.Email,
		Phone:   draft.Phone,
		Notes:   draft.Notes,
	}
	saved, err := s.Repo.Save(ctx, appt)
	if err != nil {
		utils.GetLogger().Error("Failed to persist appointment",
			zap.String("appointmentId", session.AppointmentID),
			zap.Error(err),
		)
		return NewSubmissionError("failed to book appointment")
	}

	if session.Preferences.AnyChannelEnabled() {
		data := models.ReminderData{
			AppointmentID:   saved.ID,
			CustomerName:    saved.Name,
			CustomerEmail:   saved.Email,
			CustomerPhone:   saved.Phone,
			ServiceName:     svc.Name,
			BarberName:      barber.Name,
			AppointmentDate: date,
			AppointmentTime: draft.Time,
			Duration:        svc.Duration,
			Price:           svc.Price,
			Notes:           draft.Notes,
		}
		if err := s.Reminders.ScheduleAll(ctx, data, session.Preferences); err != nil {
			utils.GetLogger().Error("Failed to schedule reminders",
				zap.String("appointmentId", saved.ID),
				zap.Error(err),
			)
			return NewSubmissionError("failed to schedule reminders")
		}
	}

	utils.GetLogger().Info("Booking confirmed",
		zap.String("appointmentId", saved.ID),
		zap.String("service", svc.Name),
		zap.String("barber", barber.Name),
	)
	return nil
}

// Back moves to the previous step without clearing entered data. It is a
// no-op on the first step, and the confirmed step is only left via Reset.
func (s *DefaultWizardService) Back(ctx context.Context, sessionID string) (*models.WizardSession, error) {
	session, err := s.Sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Step <= models.StepServiceBarber || session.Step == models.StepConfirmed {
		return session, nil
	}

	session.Step--
	session.FieldErrors = map[string]string{}
	if err := s.Sessions.Set(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to update booking session: %w", err)
	}
	return session, nil
}

// Reset returns the session to the first step with a fresh draft, cleared
// errors, default preferences and no appointment identifier.
func (s *DefaultWizardService) Reset(ctx context.Context, sessionID string) (*models.WizardSession, error) {
	session, err := s.Sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	session.Step = models.StepServiceBarber
	session.Draft = models.BookingDraft{}
	session.FieldErrors = map[string]string{}
	session.Preferences = models.DefaultReminderPreferences()
	session.AppointmentID = ""
	if err := s.Sessions.Set(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to update booking session: %w", err)
	}
	return session, nil
}
