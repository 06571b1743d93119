package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"barberpro/config"
	"barberpro/models"
	"barberpro/services/reminder"
	"barberpro/services/tasks"

	"github.com/hibiken/asynq"
)

// InitReminderWorker runs the async worker in background. It consumes the
// deferred reminder jobs registered by the scheduler and hands each one to
// the reminder service for dispatch.
func InitReminderWorker(reminderSvc reminder.ReminderService) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeSendReminder, handleReminderTask(reminderSvc))

	// Start async worker with retry logic
	go func() {
		log.Println("[ReminderWorker] Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ReminderWorker] Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ReminderWorker] Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handleReminderTask(reminderSvc reminder.ReminderService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[ReminderHandler] Invalid payload: %v", err)
			return err
		}

		log.Printf("[ReminderHandler] Firing %s reminder for appointment %s", p.Kind, p.Data.AppointmentID)

		// Delivery failures are already isolated per channel inside Dispatch;
		// an error here means the payload carried an unknown kind, which a
		// retry cannot fix.
		if err := reminderSvc.Dispatch(ctx, p); err != nil {
			log.Printf("[ReminderHandler] Failed to dispatch reminder: %v", err)
			return nil
		}
		return nil
	}
}
