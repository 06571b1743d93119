package models

import "time"

// AppointmentStatus is the lifecycle state of a finalized appointment.
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCancelled AppointmentStatus = "cancelled"
)

// Appointment is the finalized booking record as persisted by the store.
type Appointment struct {
	ID        string            `json:"id" bson:"id"`
	Service   string            `json:"service" bson:"service"`
	Date      string            `json:"date" bson:"date"`
	Time      string            `json:"time" bson:"time"`
	Name      string            `json:"name" bson:"name"`
	Email     string            `json:"email" bson:"email"`
	Phone     string            `json:"phone" bson:"phone"`
	Notes     string            `json:"notes,omitempty" bson:"notes,omitempty"`
	Status    AppointmentStatus `json:"status" bson:"status"`
	CreatedAt time.Time         `json:"createdAt" bson:"createdAt"`
}
