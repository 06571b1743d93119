package appointmentRepo

import (
	"context"
	"sort"
	"sync"
	"time"

	"barberpro/models"
	"barberpro/utils"
)

// memoryAppointmentRepo is the in-memory stand-in used when no DATABASE_URL
// is configured, and by tests. Appointments are lost on restart.
type memoryAppointmentRepo struct {
	mu           sync.RWMutex
	appointments map[string]models.Appointment
}

// NewMemoryAppointmentRepo returns an AppointmentRepository backed by a map.
func NewMemoryAppointmentRepo() AppointmentRepository {
	return &memoryAppointmentRepo{
		appointments: make(map[string]models.Appointment),
	}
}

func (r *memoryAppointmentRepo) Save(_ context.Context, appt models.Appointment) (*models.Appointment, error) {
	if appt.ID == "" {
		appt.ID = utils.GenerateAppointmentID()
	}
	if appt.Status == "" {
		appt.Status = models.StatusPending
	}
	if appt.CreatedAt.IsZero() {
		appt.CreatedAt = time.Now()
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.appointments[appt.ID] = appt
	return &appt, nil
}

func (r *memoryAppointmentRepo) GetAll(_ context.Context) ([]models.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	appointments := make([]models.Appointment, 0, len(r.appointments))
	for _, appt := range r.appointments {
		appointments = append(appointments, appt)
	}
	sort.Slice(appointments, func(i, j int) bool {
		return appointments[i].CreatedAt.Before(appointments[j].CreatedAt)
	})
	return appointments, nil
}

func (r *memoryAppointmentRepo) ListByStatus(_ context.Context, status models.AppointmentStatus) ([]models.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	appointments := []models.Appointment{}
	for _, appt := range r.appointments {
		if appt.Status == status {
			appointments = append(appointments, appt)
		}
	}
	sort.Slice(appointments, func(i, j int) bool {
		return appointments[i].CreatedAt.Before(appointments[j].CreatedAt)
	})
	return appointments, nil
}

func (r *memoryAppointmentRepo) UpdateStatus(_ context.Context, id string, status models.AppointmentStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	appt, ok := r.appointments[id]
	if !ok {
		return ErrNotFound
	}
	appt.Status = status
	r.appointments[id] = appt
	return nil
}
