package tasks

import "time"

// Config holds the task queue knobs, mapped from the application config.
type Config struct {
	Workers           int
	ActionRetention   time.Duration
	ReleaseAfter      time.Duration
	CleanupInterval   time.Duration
	RetentionDuration time.Duration
}

// DefaultConfig returns sensible defaults for a single-user desktop
// deployment.
func DefaultConfig() Config {
	return Config{
		Workers:           1,
		ActionRetention:   90 * 24 * time.Hour,
		ReleaseAfter:      15 * time.Minute,
		CleanupInterval:   time.Hour,
		RetentionDuration: 24 * time.Hour,
	}
}
