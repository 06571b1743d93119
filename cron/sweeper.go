package cron

import (
	"context"
	"log"
	"time"

	appointmentRepo "barberpro/database/repository/appointment"
	"barberpro/models"
	"barberpro/services/calendar"

	"github.com/robfig/cron/v3"
)

// StartStaleBookingSweep runs a nightly job that cancels pending
// appointments whose start time is more than 24 hours in the past. Bookings
// never confirmed by the shop should not linger in the list forever.
func StartStaleBookingSweep(repo appointmentRepo.AppointmentRepository) {
	c := cron.New()
	_, err := c.AddFunc("0 3 * * *", func() {
		sweepStaleBookings(repo)
	})
	if err != nil {
		log.Fatalf("Failed to add stale booking sweep: %v", err)
	}
	c.Start()
	log.Println("Stale booking sweep scheduled")
}

func sweepStaleBookings(repo appointmentRepo.AppointmentRepository) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pending, err := repo.ListByStatus(ctx, models.StatusPending)
	if err != nil {
		log.Printf("Error fetching pending appointments for sweep: %v", err)
		return
	}

	cutoff := time.Now().Add(-24 * time.Hour)
	cancelled := 0
	for _, appt := range pending {
		date, err := time.ParseInLocation(calendar.DraftDateLayout, appt.Date, time.Local)
		if err != nil {
			continue
		}
		start, err := calendar.CombineDateTime(date, appt.Time)
		if err != nil {
			continue
		}
		if start.After(cutoff) {
			continue
		}
		if err := repo.UpdateStatus(ctx, appt.ID, models.StatusCancelled); err != nil {
			log.Printf("Failed to cancel stale appointment %s: %v", appt.ID, err)
			continue
		}
		cancelled++
	}

	if cancelled > 0 {
		log.Printf("Stale booking sweep cancelled %d appointments", cancelled)
	}
}
