package reminder

import (
	"context"
	"fmt"
	"time"

	"barberpro/models"
	"barberpro/services/calendar"
	"barberpro/services/notification"
	"barberpro/utils"

	"go.uber.org/zap"
)

// JobEnqueuer registers a deferred reminder job to fire at a future instant.
// The production implementation is the asynq-backed enqueuer in
// services/tasks; tests substitute their own.
type JobEnqueuer interface {
	Enqueue(ctx context.Context, payload models.ReminderPayload, fireAt time.Time) error
}

// ReminderService schedules and dispatches appointment reminders.
type ReminderService interface {
	// ScheduleAll sends the confirmation immediately and registers the
	// 24-hour and 1-hour jobs whose fire instants are still in the future.
	ScheduleAll(ctx context.Context, data models.ReminderData, prefs models.ReminderPreferences) error
	// Dispatch renders and delivers one reminder to its enabled channels.
	Dispatch(ctx context.Context, payload models.ReminderPayload) error
}

// DefaultReminderService implements ReminderService.
type DefaultReminderService struct {
	Templates *TemplateEngine
	Enqueuer  JobEnqueuer
	Notifier  notification.Notifier
	Now       func() time.Time // defaults to time.Now, overridable in tests
}

func (s *DefaultReminderService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func payloadFor(kind models.ReminderKind, data models.ReminderData, prefs models.ReminderPreferences) models.ReminderPayload {
	return models.ReminderPayload{
		Kind:  kind,
		Data:  data,
		Email: prefs.EmailEnabled(kind),
		SMS:   prefs.SMSEnabled(kind),
	}
}

// ScheduleAll computes the appointment instant from the booking's date and
// slot label, fires the confirmation synchronously, and enqueues the
// deferred reminders. An enqueue failure is a scheduling failure and
// propagates; delivery failures do not.
func (s *DefaultReminderService) ScheduleAll(ctx context.Context, data models.ReminderData, prefs models.ReminderPreferences) error {
	appointmentAt, err := calendar.CombineDateTime(data.AppointmentDate, data.AppointmentTime)
	if err != nil {
		return fmt.Errorf("failed to resolve appointment instant: %w", err)
	}

	if err := s.Dispatch(ctx, payloadFor(models.ReminderConfirmation, data, prefs)); err != nil {
		return err
	}

	now := s.now()

	if t24 := appointmentAt.Add(-24 * time.Hour); t24.After(now) {
		if err := s.Enqueuer.Enqueue(ctx, payloadFor(models.Reminder24Hour, data, prefs), t24); err != nil {
			return fmt.Errorf("failed to schedule 24-hour reminder: %w", err)
		}
	}

	if t1 := appointmentAt.Add(-time.Hour); t1.After(now) {
		if err := s.Enqueuer.Enqueue(ctx, payloadFor(models.Reminder1Hour, data, prefs), t1); err != nil {
			return fmt.Errorf("failed to schedule 1-hour reminder: %w", err)
		}
	}

	return nil
}

// Dispatch delivers one reminder. A failure on one channel is logged and
// never blocks the other channel; a disabled channel is skipped outright.
// The only returned error is a render failure, which indicates a caller bug.
func (s *DefaultReminderService) Dispatch(ctx context.Context, payload models.ReminderPayload) error {
	tmpl, err := s.Templates.Render(payload.Data, payload.Kind)
	if err != nil {
		return err
	}

	logger := utils.GetLogger()

	if payload.Email {
		if err := s.Notifier.SendEmail(ctx, payload.Data.CustomerEmail, tmpl.Subject, tmpl.EmailBody); err != nil {
			logger.Warn("Email delivery failed",
				zap.String("appointmentId", payload.Data.AppointmentID),
				zap.String("kind", string(payload.Kind)),
				zap.Error(err),
			)
		}
	}

	if payload.SMS {
		if err := s.Notifier.SendSMS(ctx, payload.Data.CustomerPhone, tmpl.SMSBody); err != nil {
			logger.Warn("SMS delivery failed",
				zap.String("appointmentId", payload.Data.AppointmentID),
				zap.String("kind", string(payload.Kind)),
				zap.Error(err),
			)
		}
	}

	return nil
}
