package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig()
	require.NotNil(t, cfg)

	assert.Equal(t, DefaultDataDir, cfg.Database.DataDir)
	assert.Equal(t, 2, cfg.Global.ShutdownTimeoutInSeconds)

	assert.Equal(t, HashArgon2, cfg.Auth.Algorithm)
	assert.Equal(t, uint32(3), cfg.Auth.Argon2Time)
	assert.Equal(t, uint32(64*1024), cfg.Auth.Argon2Memory)
	assert.Equal(t, uint8(1), cfg.Auth.Argon2Threads)
	assert.Equal(t, 600000, cfg.Auth.PBKDF2Iterations)

	assert.Equal(t, DefaultMaxNotifications, cfg.Notifications.Max)

	assert.True(t, cfg.Tasks.Enabled)
	assert.Equal(t, 1, cfg.Tasks.Workers)
	assert.Equal(t, 90*24*time.Hour, cfg.Tasks.ActionRetention)

	assert.True(t, cfg.Scheduler.Enabled)
	assert.Equal(t, "* * * * *", cfg.Scheduler.Schedule)

	assert.False(t, cfg.Demo.Enabled)
	assert.Equal(t, "demo", cfg.Demo.Username)
	assert.Empty(t, cfg.Database.ExportDir)
}

func TestNewConfig_EnvironmentOverrides(t *testing.T) {
	t.Setenv("DATA_DIR", "/var/lib/techhome")
	t.Setenv("AUTH_ALGORITHM", "pbkdf2")
	t.Setenv("MAX_NOTIFICATIONS", "25")
	t.Setenv("SCHEDULER_ENABLED", "false")

	cfg := NewConfig()

	assert.Equal(t, "/var/lib/techhome", cfg.Database.DataDir)
	assert.Equal(t, HashPBKDF2, cfg.Auth.Algorithm)
	assert.Equal(t, 25, cfg.Notifications.Max)
	assert.False(t, cfg.Scheduler.Enabled)
}
