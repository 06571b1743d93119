package tasks

import (
	"encoding/json"
	"testing"
	"time"

	"barberpro/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReminderTask(t *testing.T) {
	payload := models.ReminderPayload{
		Kind: models.Reminder24Hour,
		Data: models.ReminderData{
			AppointmentID: "BP-1718000000000-abc123def",
			CustomerName:  "Jane Doe",
		},
		Email: true,
		SMS:   false,
	}
	fireAt := time.Date(2025, 6, 9, 15, 0, 0, 0, time.Local)

	task, opts, err := NewReminderTask(payload, fireAt)
	require.NoError(t, err)
	assert.Equal(t, TypeSendReminder, task.Type())
	require.Len(t, opts, 2)

	var decoded models.ReminderPayload
	require.NoError(t, json.Unmarshal(task.Payload(), &decoded))
	assert.Equal(t, payload, decoded)
}
