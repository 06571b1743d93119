package tasks

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"barberpro/models"

	"github.com/hibiken/asynq"
)

const TypeSendReminder = "reminder:send"

// NewReminderTask builds an asynq task carrying one reminder payload,
// scheduled for the given instant. The task ID keys the job by
// (appointmentId, kind) so each reminder fires at most once.
func NewReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeSendReminder, b)
	opts := []asynq.Option{
		asynq.ProcessAt(fireAt),
		asynq.TaskID(fmt.Sprintf("reminder:%s:%s", payload.Data.AppointmentID, payload.Kind)),
	}

	return task, opts, nil
}

// AsynqEnqueuer registers deferred reminder jobs on the Redis-backed queue,
// so pending reminders survive a process restart.
type AsynqEnqueuer struct {
	Client *asynq.Client
}

// NewAsynqEnqueuer returns an enqueuer using the given asynq client.
func NewAsynqEnqueuer(client *asynq.Client) *AsynqEnqueuer {
	return &AsynqEnqueuer{Client: client}
}

func (e *AsynqEnqueuer) Enqueue(ctx context.Context, payload models.ReminderPayload, fireAt time.Time) error {
	task, opts, err := NewReminderTask(payload, fireAt)
	if err != nil {
		return err
	}
	if _, err := e.Client.EnqueueContext(ctx, task, opts...); err != nil {
		return err
	}
	return nil
}
