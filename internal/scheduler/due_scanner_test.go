package scheduler

import (
	"context"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/techhome/techhome/internal/database/alarms"
	"github.com/techhome/techhome/internal/database/notifications"
	"github.com/techhome/techhome/internal/database/reminders"
	"github.com/techhome/techhome/internal/database/timers"
	"github.com/techhome/techhome/internal/entities"
	"github.com/techhome/techhome/internal/userdb"
)

type scannerFixture struct {
	scanner       *DueScanner
	alarms        *alarms.Repository
	reminders     *reminders.Repository
	timers        *timers.Repository
	notifications *notifications.Repository
}

func setupScanner(t *testing.T) *scannerFixture {
	mgr := userdb.NewManager(t.TempDir())
	f := &scannerFixture{
		alarms:        alarms.NewRepository(mgr),
		reminders:     reminders.NewRepository(mgr),
		timers:        timers.NewRepository(mgr),
		notifications: notifications.NewRepository(mgr, 100),
	}
	f.scanner = NewDueScanner("alice", f.alarms, f.reminders, f.timers, f.notifications)
	return f
}

func (f *scannerFixture) messages(t *testing.T) []string {
	items, err := f.notifications.Notifications("alice")
	require.NoError(t, err)
	msgs := make([]string, len(items))
	for i, item := range items {
		msgs[i] = item.Message
	}
	return msgs
}

func TestDueScanner_AlarmFires(t *testing.T) {
	f := setupScanner(t)

	base := time.Now()
	f.scanner.RunScan(base)

	require.NoError(t, f.alarms.SaveAlarm("alice", &entities.Alarm{
		At:      base.Add(time.Second),
		Text:    "wake up",
		Enabled: true,
	}))

	f.scanner.RunScan(base.Add(2 * time.Second))
	assert.Equal(t, []string{"Alarm: wake up"}, f.messages(t))
}

func TestDueScanner_DisabledAlarmIsSilent(t *testing.T) {
	f := setupScanner(t)

	base := time.Now()
	f.scanner.RunScan(base)

	require.NoError(t, f.alarms.SaveAlarm("alice", &entities.Alarm{
		At:      base.Add(time.Second),
		Text:    "wake up",
		Enabled: false,
	}))

	f.scanner.RunScan(base.Add(2 * time.Second))
	assert.Empty(t, f.messages(t))
}

func TestDueScanner_FutureAlarmIsSilent(t *testing.T) {
	f := setupScanner(t)

	base := time.Now()
	f.scanner.RunScan(base)

	require.NoError(t, f.alarms.SaveAlarm("alice", &entities.Alarm{
		At:      base.Add(time.Hour),
		Text:    "wake up",
		Enabled: true,
	}))

	f.scanner.RunScan(base.Add(time.Second))
	assert.Empty(t, f.messages(t))
}

func TestDueScanner_ReminderFiresOnce(t *testing.T) {
	f := setupScanner(t)

	now := time.Now()
	require.NoError(t, f.reminders.SaveReminder("alice", now.Add(-time.Minute), "take out trash"))

	f.scanner.RunScan(now)
	f.scanner.RunScan(now.Add(time.Minute))

	assert.Equal(t, []string{"Reminder: take out trash"}, f.messages(t))
}

func TestDueScanner_RanOutTimerFiresOnce(t *testing.T) {
	f := setupScanner(t)

	now := time.Now()
	require.NoError(t, f.timers.SaveTimer("alice", &entities.Timer{
		Text:        "tea",
		Duration:    30,
		Remaining:   30,
		Running:     true,
		LastStarted: now.Add(-time.Hour),
		EndTime:     now.Add(-time.Hour).Add(30 * time.Second),
	}))

	f.scanner.RunScan(now)
	f.scanner.RunScan(now.Add(time.Minute))

	assert.Equal(t, []string{"Timer finished: tea"}, f.messages(t))
}

func TestDueScanner_NeverStartedTimerIsSilent(t *testing.T) {
	f := setupScanner(t)

	require.NoError(t, f.timers.SaveTimer("alice", &entities.Timer{
		Text:     "unused",
		Duration: 30,
	}))

	f.scanner.RunScan(time.Now())
	assert.Empty(t, f.messages(t))
}

func TestDueScanner_LoopTimerIsSilent(t *testing.T) {
	f := setupScanner(t)

	now := time.Now()
	require.NoError(t, f.timers.SaveTimer("alice", &entities.Timer{
		Text:        "interval",
		Duration:    30,
		Remaining:   30,
		Running:     true,
		Loop:        true,
		LastStarted: now.Add(-time.Hour),
		EndTime:     now.Add(-time.Hour).Add(30 * time.Second),
	}))

	f.scanner.RunScan(now)
	assert.Empty(t, f.messages(t))
}

func TestDueScanner_AlarmOnScanBoundaryFiresOnce(t *testing.T) {
	f := setupScanner(t)

	trigger := time.Now().Add(time.Minute)
	f.scanner.RunScan(trigger.Add(-time.Minute))

	require.NoError(t, f.alarms.SaveAlarm("alice", &entities.Alarm{
		At:      trigger,
		Text:    "standup",
		Enabled: true,
	}))

	// The trigger lands exactly on the scan boundary: announced by the
	// scan it closes, not by the one it opens.
	f.scanner.RunScan(trigger)
	f.scanner.RunScan(trigger.Add(time.Minute))

	assert.Equal(t, []string{"Alarm: standup"}, f.messages(t))
}

func TestDueScanner_StartStop(t *testing.T) {
	f := setupScanner(t)

	require.NoError(t, f.scanner.Start(context.Background(), "* * * * *"))
	// Starting twice is a no-op.
	require.NoError(t, f.scanner.Start(context.Background(), "* * * * *"))
	f.scanner.Stop()
	// Stopping twice is a no-op.
	f.scanner.Stop()
}

func TestDueScanner_Start_InvalidSchedule(t *testing.T) {
	f := setupScanner(t)
	assert.Error(t, f.scanner.Start(context.Background(), "not a schedule"))
}

func TestDueScanner_RestartDoesNotStackEntries(t *testing.T) {
	f := setupScanner(t)

	for i := 0; i < 3; i++ {
		require.NoError(t, f.scanner.Start(context.Background(), "* * * * *"))
		assert.Len(t, f.scanner.cron.Entries(), 1)
		f.scanner.Stop()
		assert.Empty(t, f.scanner.cron.Entries())
	}
}

func TestDueScanner_StopReleasesWatcher(t *testing.T) {
	f := setupScanner(t)

	before := runtime.NumGoroutine()
	require.NoError(t, f.scanner.Start(context.Background(), "* * * * *"))
	f.scanner.Stop()

	// The watcher goroutine unwinds asynchronously after Stop cancels
	// its context.
	after := runtime.NumGoroutine()
	for i := 0; i < 100 && after > before; i++ {
		time.Sleep(10 * time.Millisecond)
		after = runtime.NumGoroutine()
	}
	assert.LessOrEqual(t, after, before)
}
