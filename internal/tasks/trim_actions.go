package tasks

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/mikestefanello/backlite"
)

// ActionTrimmer deletes old action-log rows for one user.
type ActionTrimmer interface {
	DeleteOldActions(username string, olderThan time.Time) (int64, error)
}

// TrimActionsTask removes a user's logged actions older than the
// configured retention period.
type TrimActionsTask struct {
	Username      string `json:"username"`
	RetentionDays int    `json:"retention_days"`
}

// Config returns the queue configuration for action trim tasks.
func (t TrimActionsTask) Config() backlite.QueueConfig {
	return backlite.QueueConfig{
		Name:        "trim_actions",
		MaxAttempts: 3,
		Backoff:     5 * time.Minute,
		Timeout:     2 * time.Minute,
		Retention: &backlite.Retention{
			Duration:   24 * time.Hour,
			OnlyFailed: false,
			Data:       &backlite.RetainData{OnlyFailed: true},
		},
	}
}

// TrimActionsProcessor creates a processor function for TrimActionsTask.
func TrimActionsProcessor(trimmer ActionTrimmer) backlite.QueueProcessor[TrimActionsTask] {
	return func(ctx context.Context, task TrimActionsTask) error {
		if trimmer == nil {
			return fmt.Errorf("action trimmer not configured")
		}

		retentionDays := task.RetentionDays
		if retentionDays <= 0 {
			retentionDays = 90
		}
		cutoff := time.Now().Add(-time.Duration(retentionDays) * 24 * time.Hour)

		deleted, err := trimmer.DeleteOldActions(task.Username, cutoff)
		if err != nil {
			return fmt.Errorf("trim actions: %w", err)
		}

		log.Printf("[TASK] Trimmed %d actions older than %d days", deleted, retentionDays)
		return nil
	}
}

// NewTrimActionsQueue creates a backlite queue for action trim tasks.
func NewTrimActionsQueue(trimmer ActionTrimmer) backlite.Queue {
	return backlite.NewQueue(TrimActionsProcessor(trimmer))
}
