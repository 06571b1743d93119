package booking

import (
	"context"

	appointmentRepo "barberpro/database/repository/appointment"
	"barberpro/models"
	"barberpro/services/reminder"
)

// WizardService defines the interface for driving a stateful booking wizard
// session through its four steps.
type WizardService interface {
	StartSession(ctx context.Context) (*models.WizardSession, error)
	GetSession(ctx context.Context, sessionID string) (*models.WizardSession, error)
	// UpdateDraft applies field updates to the draft. Updates are never
	// validated eagerly; validation happens on Advance.
	UpdateDraft(ctx context.Context, sessionID string, updates map[string]string) (*models.WizardSession, error)
	SetPreferences(ctx context.Context, sessionID string, prefs models.ReminderPreferences) (*models.WizardSession, error)
	// Advance validates the active step and moves forward on success. From
	// the details step it additionally runs the submit sequence and only
	// reaches the confirmed step once that succeeds.
	Advance(ctx context.Context, sessionID string) (*models.WizardSession, error)
	Back(ctx context.Context, sessionID string) (*models.WizardSession, error)
	Reset(ctx context.Context, sessionID string) (*models.WizardSession, error)
}

// DefaultWizardService implements WizardService.
type DefaultWizardService struct {
	Sessions  SessionStore
	Repo      appointmentRepo.AppointmentRepository
	Reminders reminder.ReminderService
	Catalog   models.Catalog
}
