package tasks

import (
	"context"
	"fmt"
	"time"

	"github.com/mikestefanello/backlite"
)

// NotificationSweeper re-enforces the notification cap for one user.
type NotificationSweeper interface {
	Sweep(username string) error
}

// SweepNotificationsTask prunes a user's notification feed down to the
// configured cap. Inserts already prune inline; the sweep covers the
// case where the cap was lowered between sessions.
type SweepNotificationsTask struct {
	Username string `json:"username"`
}

// Config returns the queue configuration for notification sweep tasks.
func (t SweepNotificationsTask) Config() backlite.QueueConfig {
	return backlite.QueueConfig{
		Name:        "sweep_notifications",
		MaxAttempts: 3,
		Backoff:     time.Minute,
		Timeout:     time.Minute,
		Retention: &backlite.Retention{
			Duration:   24 * time.Hour,
			OnlyFailed: false,
			Data:       &backlite.RetainData{OnlyFailed: true},
		},
	}
}

// SweepNotificationsProcessor creates a processor function for
// SweepNotificationsTask.
func SweepNotificationsProcessor(sweeper NotificationSweeper) backlite.QueueProcessor[SweepNotificationsTask] {
	return func(ctx context.Context, task SweepNotificationsTask) error {
		if sweeper == nil {
			return fmt.Errorf("notification sweeper not configured")
		}
		if err := sweeper.Sweep(task.Username); err != nil {
			return fmt.Errorf("sweep notifications: %w", err)
		}
		return nil
	}
}

// NewSweepNotificationsQueue creates a backlite queue for notification
// sweep tasks.
func NewSweepNotificationsQueue(sweeper NotificationSweeper) backlite.Queue {
	return backlite.NewQueue(SweepNotificationsProcessor(sweeper))
}
