package booking

import (
	"context"
	"errors"
	"testing"

	appointmentRepo "barberpro/database/repository/appointment"
	"barberpro/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReminderService struct {
	scheduled []models.ReminderData
	prefs     []models.ReminderPreferences
	err       error
}

func (f *fakeReminderService) ScheduleAll(_ context.Context, data models.ReminderData, prefs models.ReminderPreferences) error {
	if f.err != nil {
		return f.err
	}
	f.scheduled = append(f.scheduled, data)
	f.prefs = append(f.prefs, prefs)
	return nil
}

func (f *fakeReminderService) Dispatch(context.Context, models.ReminderPayload) error {
	return nil
}

type failingRepo struct{}

func (failingRepo) Save(context.Context, models.Appointment) (*models.Appointment, error) {
	return nil, errors.New("store unavailable")
}
func (failingRepo) GetAll(context.Context) ([]models.Appointment, error) { return nil, nil }
func (failingRepo) ListByStatus(context.Context, models.AppointmentStatus) ([]models.Appointment, error) {
	return nil, nil
}
func (failingRepo) UpdateStatus(context.Context, string, models.AppointmentStatus) error { return nil }

func newTestWizard(t *testing.T) (*DefaultWizardService, *fakeReminderService, appointmentRepo.AppointmentRepository) {
	t.Helper()
	reminders := &fakeReminderService{}
	repo := appointmentRepo.NewMemoryAppointmentRepo()
	svc := &DefaultWizardService{
		Sessions:  NewMemorySessionStore(),
		Repo:      repo,
		Reminders: reminders,
		Catalog:   models.DefaultCatalog(),
	}
	return svc, reminders, repo
}

func fillValidDraft(t *testing.T, svc *DefaultWizardService, sessionID string) {
	t.Helper()
	_, err := svc.UpdateDraft(context.Background(), sessionID, map[string]string{
		"service":   "classic-cut",
		"barber":    "marcus",
		"date":      "2025-06-10",
		"time":      "10:00 AM",
		"firstName": "Jane",
		"lastName":  "Doe",
		"email":     "jane@example.com",
		"phone":     "555-123-4567",
	})
	require.NoError(t, err)
}

func TestStartSessionDefaults(t *testing.T) {
	svc, _, _ := newTestWizard(t)

	session, err := svc.StartSession(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, session.SessionID)
	assert.Equal(t, models.StepServiceBarber, session.Step)
	assert.Empty(t, session.FieldErrors)
	assert.Equal(t, models.DefaultReminderPreferences(), session.Preferences)
	assert.Empty(t, session.AppointmentID)

	stored, err := svc.GetSession(context.Background(), session.SessionID)
	require.NoError(t, err)
	assert.Equal(t, session.SessionID, stored.SessionID)
}

func TestGetSessionUnknownID(t *testing.T) {
	svc, _, _ := newTestWizard(t)

	_, err := svc.GetSession(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestAdvanceRejectsEmptyStep(t *testing.T) {
	svc, _, _ := newTestWizard(t)
	ctx := context.Background()

	session, err := svc.StartSession(ctx)
	require.NoError(t, err)

	session, err = svc.Advance(ctx, session.SessionID)
	require.NoError(t, err)
	assert.Equal(t, models.StepServiceBarber, session.Step)
	assert.Equal(t, "Please select a service", session.FieldErrors["service"])
	assert.Equal(t, "Please select a barber", session.FieldErrors["barber"])
}

func TestAdvanceRejectsUnknownCatalogSelection(t *testing.T) {
	svc, _, _ := newTestWizard(t)
	ctx := context.Background()

	session, err := svc.StartSession(ctx)
	require.NoError(t, err)
	_, err = svc.UpdateDraft(ctx, session.SessionID, map[string]string{
		"service": "mullet-special",
		"barber":  "marcus",
	})
	require.NoError(t, err)

	session, err = svc.Advance(ctx, session.SessionID)
	require.NoError(t, err)
	assert.Equal(t, models.StepServiceBarber, session.Step)
	assert.Equal(t, "Please select a service", session.FieldErrors["service"])
	assert.NotContains(t, session.FieldErrors, "barber")
}

func TestAdvanceClearsStaleErrors(t *testing.T) {
	svc, _, _ := newTestWizard(t)
	ctx := context.Background()

	session, err := svc.StartSession(ctx)
	require.NoError(t, err)

	session, err = svc.Advance(ctx, session.SessionID)
	require.NoError(t, err)
	require.NotEmpty(t, session.FieldErrors)

	_, err = svc.UpdateDraft(ctx, session.SessionID, map[string]string{
		"service": "classic-cut",
		"barber":  "marcus",
	})
	require.NoError(t, err)

	session, err = svc.Advance(ctx, session.SessionID)
	require.NoError(t, err)
	assert.Equal(t, models.StepDateTime, session.Step)
	assert.Empty(t, session.FieldErrors)
}

func TestUpdateDraftUnknownField(t *testing.T) {
	svc, _, _ := newTestWizard(t)
	ctx := context.Background()

	session, err := svc.StartSession(ctx)
	require.NoError(t, err)

	_, err = svc.UpdateDraft(ctx, session.SessionID, map[string]string{"haircutColor": "blue"})
	assert.Error(t, err)
}

func TestFullWizardFlow(t *testing.T) {
	svc, reminders, repo := newTestWizard(t)
	ctx := context.Background()

	session, err := svc.StartSession(ctx)
	require.NoError(t, err)
	fillValidDraft(t, svc, session.SessionID)

	for _, wantStep := range []int{models.StepDateTime, models.StepDetails, models.StepConfirmed} {
		session, err = svc.Advance(ctx, session.SessionID)
		require.NoError(t, err)
		require.Equal(t, wantStep, session.Step)
		require.Empty(t, session.FieldErrors)
	}

	require.NotEmpty(t, session.AppointmentID)

	// The appointment landed in the store as pending.
	appointments, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, appointments, 1)
	appt := appointments[0]
	assert.Equal(t, session.AppointmentID, appt.ID)
	assert.Equal(t, "classic-cut", appt.Service)
	assert.Equal(t, "Jane Doe", appt.Name)
	assert.Equal(t, models.StatusPending, appt.Status)
	assert.False(t, appt.CreatedAt.IsZero())

	// Reminders were scheduled once with resolved catalog data.
	require.Len(t, reminders.scheduled, 1)
	data := reminders.scheduled[0]
	assert.Equal(t, session.AppointmentID, data.AppointmentID)
	assert.Equal(t, "Classic Cut", data.ServiceName)
	assert.Equal(t, "Marc Johnson", data.BarberName)
	assert.Equal(t, "10:00 AM", data.AppointmentTime)
	assert.Equal(t, "45 min", data.Duration)
	assert.Equal(t, 45, data.Price)
}

func TestConfirmedStepIsTerminal(t *testing.T) {
	svc, _, _ := newTestWizard(t)
	ctx := context.Background()

	session, err := svc.StartSession(ctx)
	require.NoError(t, err)
	fillValidDraft(t, svc, session.SessionID)
	for i := 0; i < 3; i++ {
		session, err = svc.Advance(ctx, session.SessionID)
		require.NoError(t, err)
	}
	require.Equal(t, models.StepConfirmed, session.Step)
	apptID := session.AppointmentID

	// Advance, Back and draft edits are all no-ops now.
	session, err = svc.Advance(ctx, session.SessionID)
	require.NoError(t, err)
	assert.Equal(t, models.StepConfirmed, session.Step)

	session, err = svc.Back(ctx, session.SessionID)
	require.NoError(t, err)
	assert.Equal(t, models.StepConfirmed, session.Step)

	session, err = svc.UpdateDraft(ctx, session.SessionID, map[string]string{"firstName": "Mallory"})
	require.NoError(t, err)
	assert.Equal(t, "Jane", session.Draft.FirstName)
	assert.Equal(t, apptID, session.AppointmentID)
}

func TestBackKeepsDraftAndStopsAtFirstStep(t *testing.T) {
	svc, _, _ := newTestWizard(t)
	ctx := context.Background()

	session, err := svc.StartSession(ctx)
	require.NoError(t, err)
	_, err = svc.UpdateDraft(ctx, session.SessionID, map[string]string{
		"service": "classic-cut",
		"barber":  "marcus",
	})
	require.NoError(t, err)
	session, err = svc.Advance(ctx, session.SessionID)
	require.NoError(t, err)
	require.Equal(t, models.StepDateTime, session.Step)

	session, err = svc.Back(ctx, session.SessionID)
	require.NoError(t, err)
	assert.Equal(t, models.StepServiceBarber, session.Step)
	assert.Equal(t, "classic-cut", session.Draft.Service)

	session, err = svc.Back(ctx, session.SessionID)
	require.NoError(t, err)
	assert.Equal(t, models.StepServiceBarber, session.Step)
}

func TestSubmitFailureKeepsStepAndReusesID(t *testing.T) {
	reminders := &fakeReminderService{}
	svc := &DefaultWizardService{
		Sessions:  NewMemorySessionStore(),
		Repo:      failingRepo{},
		Reminders: reminders,
		Catalog:   models.DefaultCatalog(),
	}
	ctx := context.Background()

	session, err := svc.StartSession(ctx)
	require.NoError(t, err)
	fillValidDraft(t, svc, session.SessionID)
	session, err = svc.Advance(ctx, session.SessionID)
	require.NoError(t, err)
	session, err = svc.Advance(ctx, session.SessionID)
	require.NoError(t, err)
	require.Equal(t, models.StepDetails, session.Step)

	session, err = svc.Advance(ctx, session.SessionID)
	require.Error(t, err)
	assert.True(t, IsSubmissionError(err))
	assert.Equal(t, models.StepDetails, session.Step)
	firstID := session.AppointmentID
	require.NotEmpty(t, firstID)

	// A retry reuses the identifier generated on the failed attempt.
	session, err = svc.Advance(ctx, session.SessionID)
	require.Error(t, err)
	assert.Equal(t, firstID, session.AppointmentID)
	assert.Empty(t, reminders.scheduled)
}

func TestReminderFailureIsSubmissionError(t *testing.T) {
	svc, reminders, repo := newTestWizard(t)
	reminders.err = errors.New("queue down")
	ctx := context.Background()

	session, err := svc.StartSession(ctx)
	require.NoError(t, err)
	fillValidDraft(t, svc, session.SessionID)
	session, err = svc.Advance(ctx, session.SessionID)
	require.NoError(t, err)
	session, err = svc.Advance(ctx, session.SessionID)
	require.NoError(t, err)

	session, err = svc.Advance(ctx, session.SessionID)
	require.Error(t, err)
	assert.True(t, IsSubmissionError(err))
	assert.Equal(t, models.StepDetails, session.Step)

	// The appointment itself was saved; only scheduling failed.
	appointments, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, appointments, 1)
}

func TestRemindersSkippedWhenAllChannelsOff(t *testing.T) {
	svc, reminders, _ := newTestWizard(t)
	ctx := context.Background()

	session, err := svc.StartSession(ctx)
	require.NoError(t, err)
	fillValidDraft(t, svc, session.SessionID)
	_, err = svc.SetPreferences(ctx, session.SessionID, models.ReminderPreferences{})
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		session, err = svc.Advance(ctx, session.SessionID)
		require.NoError(t, err)
	}
	require.Equal(t, models.StepConfirmed, session.Step)
	assert.Empty(t, reminders.scheduled)
}

func TestResetClearsEverything(t *testing.T) {
	svc, _, _ := newTestWizard(t)
	ctx := context.Background()

	session, err := svc.StartSession(ctx)
	require.NoError(t, err)
	fillValidDraft(t, svc, session.SessionID)
	for i := 0; i < 3; i++ {
		_, err = svc.Advance(ctx, session.SessionID)
		require.NoError(t, err)
	}

	session, err = svc.Reset(ctx, session.SessionID)
	require.NoError(t, err)
	assert.Equal(t, models.StepServiceBarber, session.Step)
	assert.Equal(t, models.BookingDraft{}, session.Draft)
	assert.Empty(t, session.FieldErrors)
	assert.Equal(t, models.DefaultReminderPreferences(), session.Preferences)
	assert.Empty(t, session.AppointmentID)
}
