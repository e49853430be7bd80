// Package export writes point-in-time JSON snapshots of a user's data.
// Snapshots double as backups and as a way to move an account between
// machines without copying raw database files.
package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/techhome/techhome/internal/database/alarms"
	"github.com/techhome/techhome/internal/database/devices"
	"github.com/techhome/techhome/internal/database/lists"
	"github.com/techhome/techhome/internal/database/notes"
	"github.com/techhome/techhome/internal/database/notifications"
	"github.com/techhome/techhome/internal/database/reminders"
	"github.com/techhome/techhome/internal/database/renames"
	"github.com/techhome/techhome/internal/database/settings"
	"github.com/techhome/techhome/internal/database/timers"
	"github.com/techhome/techhome/internal/entities"
)

// Snapshot is the exported shape of one user's data.
type Snapshot struct {
	Username       string                  `json:"username"`
	CreatedAt      time.Time               `json:"created_at"`
	Devices        []entities.DeviceState  `json:"devices"`
	RenamedDevices map[string]string       `json:"renamed_devices"`
	Lists          []List                  `json:"lists"`
	Notes          []entities.Note         `json:"notes"`
	Reminders      []entities.Reminder     `json:"reminders"`
	Alarms         []entities.Alarm        `json:"alarms"`
	Timers         []entities.Timer        `json:"timers"`
	Notifications  []entities.Notification `json:"notifications"`
	Settings       map[string]string       `json:"settings"`
}

// List is a named list with its items inlined.
type List struct {
	Name  string              `json:"name"`
	Items []entities.ListItem `json:"items"`
}

// Stores holds the repositories a snapshot is collected from.
type Stores struct {
	Devices       *devices.Repository
	Renames       *renames.Repository
	Lists         *lists.Repository
	Notes         *notes.Repository
	Reminders     *reminders.Repository
	Alarms        *alarms.Repository
	Timers        *timers.Repository
	Notifications *notifications.Repository
	Settings      *settings.Repository
}

// Exporter collects snapshots and writes them to an export directory.
type Exporter struct {
	dir    string
	stores Stores
}

func NewExporter(dir string, stores Stores) *Exporter {
	return &Exporter{dir: dir, stores: stores}
}

// Export writes a snapshot of the user's data to a uniquely named JSON
// file and returns its path.
func (e *Exporter) Export(username string) (string, error) {
	snapshot, err := e.Collect(username)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(e.dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	path := filepath.Join(e.dir, fmt.Sprintf("techhome_export_%s.json", uuid.New()))
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write snapshot: %w", err)
	}

	return path, nil
}

// Collect assembles a snapshot without writing it anywhere.
func (e *Exporter) Collect(username string) (*Snapshot, error) {
	snapshot := &Snapshot{
		Username:  username,
		CreatedAt: time.Now(),
	}

	var err error
	if snapshot.Devices, err = e.stores.Devices.DeviceStates(username); err != nil {
		return nil, fmt.Errorf("failed to collect devices: %w", err)
	}
	if snapshot.RenamedDevices, err = e.stores.Renames.RenamedDevices(username); err != nil {
		return nil, fmt.Errorf("failed to collect renamed devices: %w", err)
	}
	if snapshot.Lists, err = e.collectLists(username); err != nil {
		return nil, err
	}
	if snapshot.Notes, err = e.stores.Notes.Notes(username); err != nil {
		return nil, fmt.Errorf("failed to collect notes: %w", err)
	}
	if snapshot.Reminders, err = e.stores.Reminders.Reminders(username); err != nil {
		return nil, fmt.Errorf("failed to collect reminders: %w", err)
	}
	if snapshot.Alarms, err = e.stores.Alarms.Alarms(username); err != nil {
		return nil, fmt.Errorf("failed to collect alarms: %w", err)
	}
	if snapshot.Timers, err = e.stores.Timers.Timers(username); err != nil {
		return nil, fmt.Errorf("failed to collect timers: %w", err)
	}
	if snapshot.Notifications, err = e.stores.Notifications.Notifications(username); err != nil {
		return nil, fmt.Errorf("failed to collect notifications: %w", err)
	}
	if snapshot.Settings, err = e.stores.Settings.Settings(username); err != nil {
		return nil, fmt.Errorf("failed to collect settings: %w", err)
	}

	return snapshot, nil
}

func (e *Exporter) collectLists(username string) ([]List, error) {
	userLists, err := e.stores.Lists.Lists(username)
	if err != nil {
		return nil, fmt.Errorf("failed to collect lists: %w", err)
	}

	result := make([]List, 0, len(userLists))
	for _, ul := range userLists {
		items, err := e.stores.Lists.ListItems(username, ul.ListName)
		if err != nil {
			return nil, fmt.Errorf("failed to collect items of list %q: %w", ul.ListName, err)
		}
		result = append(result, List{Name: ul.ListName, Items: items})
	}
	return result, nil
}
