// Package database groups the per-user data access layer.
//
// # Architecture
//
// Each domain lives in its own sub-package:
//
//	database/
//	├── audit/           # Append-only action log
//	├── devices/         # Device on/off states and renames
//	├── lists/           # Named lists and their items
//	├── notes/           # Grid-placed sticky notes
//	├── reminders/       # One-shot dated reminders
//	├── alarms/          # Repeating alarms with weekday masks
//	├── timers/          # Countdown timers with read-time decay
//	├── notifications/   # Capped notification feed
//	├── renames/         # Device rename-mapping indirection
//	└── settings/        # Per-user key/value preferences
//
// # Using Sub-packages
//
// Every Repository holds a *userdb.Manager and scopes each call to one
// user's database file:
//
//	mgr := userdb.NewManager(cfg.DataDir)
//	devicesRepo := devices.NewRepository(mgr)
//	err := devicesRepo.SaveDeviceState("alice", "Kitchen Light", "Kitchen", true)
//
// Connections are opened per call, migrated if needed, and closed before
// the call returns. No state is shared between calls; users never share
// a database file, so cross-user access is impossible by construction.
package database
