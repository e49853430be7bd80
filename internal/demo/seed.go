// Package demo fills a throwaway account with sample data so the
// dashboard can be explored without any setup.
package demo

import (
	"errors"
	"fmt"
	"time"

	"github.com/techhome/techhome/internal/auth"
	"github.com/techhome/techhome/internal/database/alarms"
	"github.com/techhome/techhome/internal/database/audit"
	"github.com/techhome/techhome/internal/database/devices"
	"github.com/techhome/techhome/internal/database/lists"
	"github.com/techhome/techhome/internal/database/notes"
	"github.com/techhome/techhome/internal/database/reminders"
	"github.com/techhome/techhome/internal/database/settings"
	"github.com/techhome/techhome/internal/database/timers"
	"github.com/techhome/techhome/internal/entities"
)

// Stores holds everything the seeder writes through.
type Stores struct {
	Auth      *auth.Service
	Audit     *audit.Repository
	Devices   *devices.Repository
	Lists     *lists.Repository
	Notes     *notes.Repository
	Reminders *reminders.Repository
	Alarms    *alarms.Repository
	Timers    *timers.Repository
	Settings  *settings.Repository
}

// Seed creates the demo account and populates it with sample data. When
// the account already exists the previous data is kept untouched.
func Seed(s Stores, username, password string) error {
	err := s.Auth.CreateUser(username, password)
	if errors.Is(err, auth.ErrUserExists) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to create demo user: %w", err)
	}

	sampleDevices := []struct {
		name  string
		group string
		state bool
	}{
		{"Ceiling Lamp", "Living Room", true},
		{"Floor Lamp", "Living Room", false},
		{"Thermostat", "Hall", true},
		{"Coffee Maker", "Kitchen", false},
	}
	for _, d := range sampleDevices {
		if err := s.Devices.SaveDeviceState(username, d.name, d.group, d.state); err != nil {
			return fmt.Errorf("failed to seed device %q: %w", d.name, err)
		}
	}

	if err := s.Lists.SaveList(username, "Groceries"); err != nil {
		return fmt.Errorf("failed to seed list: %w", err)
	}
	for i, item := range []string{"milk", "eggs", "coffee beans"} {
		if err := s.Lists.SaveListItem(username, "Groceries", item, i+1); err != nil {
			return fmt.Errorf("failed to seed list item %q: %w", item, err)
		}
	}

	if err := s.Notes.SaveNote(username, "Welcome to TechHome!", 0, 0); err != nil {
		return fmt.Errorf("failed to seed note: %w", err)
	}
	if err := s.Notes.SaveNote(username, "Water the plants", 0, 1); err != nil {
		return fmt.Errorf("failed to seed note: %w", err)
	}

	tomorrow := time.Now().Add(24 * time.Hour)
	if err := s.Reminders.SaveReminder(username, tomorrow, "Dentist appointment"); err != nil {
		return fmt.Errorf("failed to seed reminder: %w", err)
	}

	weekdays := entities.NewRepeatDaySet(
		time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday,
	)
	alarm := &entities.Alarm{
		At:         time.Date(2000, 1, 1, 7, 0, 0, 0, time.Local),
		Text:       "Wake up",
		Enabled:    false,
		RepeatMask: entities.EncodeRepeatDays(weekdays),
		Sound:      "chime",
		Snooze:     10,
	}
	if err := s.Alarms.SaveAlarm(username, alarm); err != nil {
		return fmt.Errorf("failed to seed alarm: %w", err)
	}

	timer := &entities.Timer{Text: "Tea", Duration: 180, Remaining: 180}
	if err := s.Timers.SaveTimer(username, timer); err != nil {
		return fmt.Errorf("failed to seed timer: %w", err)
	}

	if err := s.Settings.SaveSetting(username, entities.SettingKeyTheme, "dark"); err != nil {
		return fmt.Errorf("failed to seed setting: %w", err)
	}

	if err := s.Audit.LogAction(username, "Demo data seeded"); err != nil {
		return fmt.Errorf("failed to log seed action: %w", err)
	}

	return nil
}
