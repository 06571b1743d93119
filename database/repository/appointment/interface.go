package appointmentRepo

import (
	"context"
	"errors"

	"barberpro/database"
	"barberpro/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound is returned when no appointment matches the given ID.
var ErrNotFound = errors.New("appointment not found")

// AppointmentRepository is the narrow store capability the booking core
// depends on. Save assigns identity and lifecycle fields when missing and
// returns the persisted record.
type AppointmentRepository interface {
	Save(ctx context.Context, appt models.Appointment) (*models.Appointment, error)
	GetAll(ctx context.Context) ([]models.Appointment, error)
	ListByStatus(ctx context.Context, status models.AppointmentStatus) ([]models.Appointment, error)
	UpdateStatus(ctx context.Context, id string, status models.AppointmentStatus) error
}

type mongoAppointmentRepo struct {
	coll *mongo.Collection
}

// NewMongoAppointmentRepo returns an AppointmentRepository backed by MongoDB.
func NewMongoAppointmentRepo() AppointmentRepository {
	db := database.MongoClient.Database("barberpro")
	return &mongoAppointmentRepo{
		coll: db.Collection("appointments"),
	}
}
