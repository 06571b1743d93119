package appointmentRepo

import (
	"context"
	"time"

	"barberpro/models"
	"barberpro/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Save upserts the appointment by ID so a retried submission with the same
// session-scoped identifier does not create a duplicate record.
func (r *mongoAppointmentRepo) Save(ctx context.Context, appt models.Appointment) (*models.Appointment, error) {
	if appt.ID == "" {
		appt.ID = utils.GenerateAppointmentID()
	}
	if appt.Status == "" {
		appt.Status = models.StatusPending
	}
	if appt.CreatedAt.IsZero() {
		appt.CreatedAt = time.Now()
	}

	opts := options.Replace().SetUpsert(true)
	if _, err := r.coll.ReplaceOne(ctx, bson.M{"id": appt.ID}, appt, opts); err != nil {
		return nil, err
	}
	return &appt, nil
}

// GetAll returns every stored appointment.
func (r *mongoAppointmentRepo) GetAll(ctx context.Context) ([]models.Appointment, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	appointments := []models.Appointment{}
	if err := cursor.All(ctx, &appointments); err != nil {
		return nil, err
	}
	return appointments, nil
}

// ListByStatus returns appointments currently in the given status.
func (r *mongoAppointmentRepo) ListByStatus(ctx context.Context, status models.AppointmentStatus) ([]models.Appointment, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"status": status})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	appointments := []models.Appointment{}
	if err := cursor.All(ctx, &appointments); err != nil {
		return nil, err
	}
	return appointments, nil
}

// UpdateStatus moves an appointment to a new lifecycle status.
func (r *mongoAppointmentRepo) UpdateStatus(ctx context.Context, id string, status models.AppointmentStatus) error {
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
