package appointmentRepo

import (
	"context"
	"testing"

	"barberpro/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemorySaveAssignsDefaults(t *testing.T) {
	repo := NewMemoryAppointmentRepo()

	saved, err := repo.Save(context.Background(), models.Appointment{
		Service: "classic-cut",
		Date:    "2025-06-10",
		Time:    "10:00 AM",
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Phone:   "555-123-4567",
	})
	require.NoError(t, err)
	assert.Regexp(t, `^BP-\d+-[a-z0-9]{9}$`, saved.ID)
	assert.Equal(t, models.StatusPending, saved.Status)
	assert.False(t, saved.CreatedAt.IsZero())
}

func TestMemorySaveUpsertsByID(t *testing.T) {
	repo := NewMemoryAppointmentRepo()
	ctx := context.Background()

	first, err := repo.Save(ctx, models.Appointment{ID: "BP-1-aaaaaaaaa", Name: "Jane Doe"})
	require.NoError(t, err)

	// A second save with the same ID replaces rather than duplicates.
	_, err = repo.Save(ctx, models.Appointment{ID: first.ID, Name: "Jane D. Doe"})
	require.NoError(t, err)

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Jane D. Doe", all[0].Name)
}

func TestMemoryListByStatus(t *testing.T) {
	repo := NewMemoryAppointmentRepo()
	ctx := context.Background()

	pending, err := repo.Save(ctx, models.Appointment{Name: "Pending One"})
	require.NoError(t, err)
	_, err = repo.Save(ctx, models.Appointment{Name: "Cancelled One", Status: models.StatusCancelled})
	require.NoError(t, err)

	got, err := repo.ListByStatus(ctx, models.StatusPending)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, pending.ID, got[0].ID)

	got, err = repo.ListByStatus(ctx, models.StatusConfirmed)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestMemoryUpdateStatus(t *testing.T) {
	repo := NewMemoryAppointmentRepo()
	ctx := context.Background()

	saved, err := repo.Save(ctx, models.Appointment{Name: "Jane Doe"})
	require.NoError(t, err)

	require.NoError(t, repo.UpdateStatus(ctx, saved.ID, models.StatusConfirmed))

	confirmed, err := repo.ListByStatus(ctx, models.StatusConfirmed)
	require.NoError(t, err)
	require.Len(t, confirmed, 1)
	assert.Equal(t, saved.ID, confirmed[0].ID)

	assert.ErrorIs(t, repo.UpdateStatus(ctx, "BP-0-missing000", models.StatusCancelled), ErrNotFound)
}
