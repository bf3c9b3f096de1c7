package tasks

import (
	"encoding/json"
	"fmt"
	"time"

	"bizbuddy/models"

	"github.com/hibiken/asynq"
)

const TypeReminderSend = "reminder:send"

// ReminderScheduler enqueues appointment reminders on the asynq queue,
// scheduled lead-time before the confirmed slot.
type ReminderScheduler struct {
	client *asynq.Client
	lead   time.Duration
}

func NewReminderScheduler(redisOpt asynq.RedisClientOpt, lead time.Duration) *ReminderScheduler {
	return &ReminderScheduler{
		client: asynq.NewClient(redisOpt),
		lead:   lead,
	}
}

// ScheduleBookingReminder queues a reminder for a just-confirmed booking.
// Slots are same-day, so a fire time already in the past is skipped rather
// than fired immediately.
func (s *ReminderScheduler) ScheduleBookingReminder(record models.BookingRecord) error {
	now := time.Now()
	slot, err := time.ParseInLocation("15:04", record.Time, now.Location())
	if err != nil {
		return fmt.Errorf("reminder: unparseable slot time %q: %w", record.Time, err)
	}

	fireAt := time.Date(now.Year(), now.Month(), now.Day(), slot.Hour(), slot.Minute(), 0, 0, now.Location()).Add(-s.lead)
	if !fireAt.After(now) {
		return nil
	}

	payload := models.ReminderPayload{
		Customer: record.Customer,
		Service:  record.Service,
		Time:     record.Time,
		FireDate: fireAt.Format(time.RFC3339),
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	task := asynq.NewTask(TypeReminderSend, b)
	_, err = s.client.Enqueue(task, asynq.ProcessAt(fireAt))
	return err
}
