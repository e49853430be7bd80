package config

import (
	"time"

	"github.com/spf13/viper"
)

// HashAlgorithm selects the password hashing strategy for new credentials.
// Verification always honours the algorithm tag stored with each record,
// so existing credentials keep working when the preference changes.
type HashAlgorithm string

const (
	HashArgon2 HashAlgorithm = "argon2" // Argon2id (default)
	HashPBKDF2 HashAlgorithm = "pbkdf2" // PBKDF2-HMAC-SHA256 fallback
)

type (
	Config struct {
		Database
		Auth
		Notifications
		Tasks
		Scheduler
		Demo
		Global
	}

	Database struct {
		DataDir   string // Directory holding the users DB and per-user data files
		ExportDir string // Where JSON snapshots land; empty means <data_dir>/exports
	}

	Auth struct {
		Algorithm HashAlgorithm

		// Argon2id parameters (64 MiB, t=3, p=1 by default)
		Argon2Time    uint32
		Argon2Memory  uint32 // KiB
		Argon2Threads uint8

		PBKDF2Iterations int
	}

	Notifications struct {
		Max int // Per-user cap; oldest rows beyond it are pruned on insert
	}

	Tasks struct {
		Enabled           bool
		Workers           int
		ActionRetention   time.Duration // How long audit actions are kept
		ReleaseAfter      time.Duration
		CleanupInterval   time.Duration
		RetentionDuration time.Duration
	}

	Scheduler struct {
		Enabled  bool
		Schedule string // Cron format: "* * * * *" = every minute
	}

	Demo struct {
		Enabled  bool
		Username string
		Password string
	}

	Global struct {
		ShutdownTimeoutInSeconds int
	}
)

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("data_dir", DefaultDataDir)
	v.SetDefault("shutdown_timeout_in_seconds", 2)

	// Auth defaults
	v.SetDefault("auth_algorithm", string(HashArgon2))
	v.SetDefault("auth_argon2_time", 3)
	v.SetDefault("auth_argon2_memory", 64*1024) // 64 MiB
	v.SetDefault("auth_argon2_threads", 1)
	v.SetDefault("auth_pbkdf2_iterations", 600000)

	// Notification cap
	v.SetDefault("max_notifications", DefaultMaxNotifications)

	// Maintenance task queue defaults
	v.SetDefault("tasks_enabled", true)
	v.SetDefault("task_workers", 1)
	v.SetDefault("task_action_retention", "2160h") // 90 days
	v.SetDefault("task_release_after", "15m")
	v.SetDefault("task_cleanup_interval", "1h")
	v.SetDefault("task_retention_duration", "24h")

	// Due-scan scheduler defaults
	v.SetDefault("scheduler_enabled", true)
	v.SetDefault("scheduler_schedule", "* * * * *") // Every minute

	// Demo account defaults
	v.SetDefault("demo_enabled", false)
	v.SetDefault("demo_username", "demo")
	v.SetDefault("demo_password", "demo")

	v.SetDefault("export_dir", "")

	return &Config{
		Database: Database{
			DataDir:   v.GetString("DATA_DIR"),
			ExportDir: v.GetString("EXPORT_DIR"),
		},
		Auth: Auth{
			Algorithm:        HashAlgorithm(v.GetString("AUTH_ALGORITHM")),
			Argon2Time:       v.GetUint32("AUTH_ARGON2_TIME"),
			Argon2Memory:     v.GetUint32("AUTH_ARGON2_MEMORY"),
			Argon2Threads:    uint8(v.GetUint("AUTH_ARGON2_THREADS")),
			PBKDF2Iterations: v.GetInt("AUTH_PBKDF2_ITERATIONS"),
		},
		Notifications: Notifications{
			Max: v.GetInt("MAX_NOTIFICATIONS"),
		},
		Tasks: Tasks{
			Enabled:           v.GetBool("TASKS_ENABLED"),
			Workers:           v.GetInt("TASK_WORKERS"),
			ActionRetention:   v.GetDuration("TASK_ACTION_RETENTION"),
			ReleaseAfter:      v.GetDuration("TASK_RELEASE_AFTER"),
			CleanupInterval:   v.GetDuration("TASK_CLEANUP_INTERVAL"),
			RetentionDuration: v.GetDuration("TASK_RETENTION_DURATION"),
		},
		Scheduler: Scheduler{
			Enabled:  v.GetBool("SCHEDULER_ENABLED"),
			Schedule: v.GetString("SCHEDULER_SCHEDULE"),
		},
		Demo: Demo{
			Enabled:  v.GetBool("DEMO_ENABLED"),
			Username: v.GetString("DEMO_USERNAME"),
			Password: v.GetString("DEMO_PASSWORD"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
	}
}
