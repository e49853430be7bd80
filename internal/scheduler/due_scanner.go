// Package scheduler watches the logged-in user's alarms, reminders, and
// timers and posts a notification when one comes due. Nothing here ticks
// countdown state; due-ness is always derived from the persisted rows
// and the wall clock at scan time.
package scheduler

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/techhome/techhome/internal/database/alarms"
	"github.com/techhome/techhome/internal/database/notifications"
	"github.com/techhome/techhome/internal/database/reminders"
	"github.com/techhome/techhome/internal/database/timers"
)

// DueScanner runs a periodic scan for one user's session.
type DueScanner struct {
	username      string
	alarms        *alarms.Repository
	reminders     *reminders.Repository
	timers        *timers.Repository
	notifications *notifications.Repository

	cron       *cron.Cron
	entryID    cron.EntryID
	mu         sync.Mutex
	isRunning  bool
	cancelFunc context.CancelFunc

	lastScan          time.Time
	notifiedReminders map[uint]bool
	notifiedTimers    map[uint]bool
}

// NewDueScanner creates a scanner for one user.
func NewDueScanner(
	username string,
	alarmsRepo *alarms.Repository,
	remindersRepo *reminders.Repository,
	timersRepo *timers.Repository,
	notificationsRepo *notifications.Repository,
) *DueScanner {
	return &DueScanner{
		username:          username,
		alarms:            alarmsRepo,
		reminders:         remindersRepo,
		timers:            timersRepo,
		notifications:     notificationsRepo,
		cron:              cron.New(cron.WithParser(cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow))),
		lastScan:          time.Now(),
		notifiedReminders: make(map[uint]bool),
		notifiedTimers:    make(map[uint]bool),
	}
}

// Start begins periodic scanning on the given cron schedule.
func (s *DueScanner) Start(ctx context.Context, schedule string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return nil
	}

	entryID, err := s.cron.AddFunc(schedule, func() {
		s.RunScan(time.Now())
	})
	if err != nil {
		return fmt.Errorf("invalid cron schedule '%s': %w", schedule, err)
	}
	s.entryID = entryID

	var cancelCtx context.Context
	cancelCtx, s.cancelFunc = context.WithCancel(ctx)

	s.cron.Start()
	s.isRunning = true

	log.Printf("Due scanner: started for session with schedule '%s'", schedule)

	go func() {
		<-cancelCtx.Done()
		s.Stop()
	}()

	return nil
}

// Stop gracefully stops the scanner, waiting for a running scan to finish.
func (s *DueScanner) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return
	}

	s.cron.Remove(s.entryID)
	ctx := s.cron.Stop()
	<-ctx.Done()

	s.cancelFunc()
	s.cancelFunc = nil
	s.isRunning = false

	log.Printf("Due scanner: stopped")
}

// RunScan checks everything that came due since the previous scan and
// posts one notification per hit. Reminders and run-out timers are
// remembered for the session so they fire once.
func (s *DueScanner) RunScan(now time.Time) {
	s.mu.Lock()
	since := s.lastScan
	s.lastScan = now
	s.mu.Unlock()

	s.scanAlarms(since, now)
	s.scanReminders(now)
	s.scanTimers(now)
}

func (s *DueScanner) scanAlarms(since, now time.Time) {
	all, err := s.alarms.Alarms(s.username)
	if err != nil {
		log.Printf("Due scanner: failed to load alarms: %v", err)
		return
	}
	for _, alarm := range all {
		// The window is half-open (since, now]: a trigger landing exactly
		// on a scan boundary was already announced by the previous scan.
		next, ok := alarm.NextTriggerAfter(since)
		if !ok || next.After(now) || !next.After(since) {
			continue
		}
		s.notify(fmt.Sprintf("Alarm: %s", alarm.Text))
	}
}

func (s *DueScanner) scanReminders(now time.Time) {
	due, err := s.reminders.DueReminders(s.username, now)
	if err != nil {
		log.Printf("Due scanner: failed to load reminders: %v", err)
		return
	}
	for _, reminder := range due {
		if s.notifiedReminders[reminder.ID] {
			continue
		}
		s.notifiedReminders[reminder.ID] = true
		s.notify(fmt.Sprintf("Reminder: %s", reminder.Text))
	}
}

func (s *DueScanner) scanTimers(now time.Time) {
	all, err := s.timers.Timers(s.username)
	if err != nil {
		log.Printf("Due scanner: failed to load timers: %v", err)
		return
	}
	for _, timer := range all {
		if timer.Loop || timer.Running || timer.Remaining > 0 {
			continue
		}
		// EndTime is stamped when the countdown starts; a zero value
		// means the timer never ran, so there is nothing to announce.
		if timer.EndTime.IsZero() || timer.EndTime.After(now) {
			continue
		}
		if s.notifiedTimers[timer.ID] {
			continue
		}
		s.notifiedTimers[timer.ID] = true
		s.notify(fmt.Sprintf("Timer finished: %s", timer.Text))
	}
}

func (s *DueScanner) notify(message string) {
	if err := s.notifications.SaveNotification(s.username, message); err != nil {
		log.Printf("Due scanner: failed to save notification: %v", err)
	}
}
