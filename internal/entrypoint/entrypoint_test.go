package entrypoint

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/techhome/techhome/internal/config"
)

func testConfig(t *testing.T, tasksEnabled bool) *config.Config {
	cfg := config.NewConfig()
	cfg.Database.DataDir = t.TempDir()
	cfg.Tasks.Enabled = tasksEnabled
	cfg.Auth.Argon2Time = 1
	cfg.Auth.Argon2Memory = 8 * 1024
	return cfg
}

func TestNewApp(t *testing.T) {
	app, err := NewApp(testConfig(t, false))
	require.NoError(t, err)
	defer app.Close()

	assert.NotNil(t, app.Users)
	assert.NotNil(t, app.Auth)
	assert.NotNil(t, app.Devices)
	assert.NotNil(t, app.Notifications)
	assert.NotNil(t, app.Exporter)
	assert.Nil(t, app.Tasks)

	assert.NotNil(t, app.NewDueScanner("alice"))

	// Without the queue, scheduling is a no-op.
	assert.NoError(t, app.ScheduleMaintenance(context.Background(), "alice"))
}

func TestNewApp_WithTaskQueue(t *testing.T) {
	app, err := NewApp(testConfig(t, true))
	require.NoError(t, err)
	defer app.Close()

	require.NotNil(t, app.Tasks)
	assert.NoError(t, app.ScheduleMaintenance(context.Background(), "alice"))
}
