package config

// Data file layout
const (
	// DefaultDataDir is the default directory for all persisted state
	DefaultDataDir = "."

	// UsersDatabaseFile holds the shared credential records for all users
	UsersDatabaseFile = "techhome_users.sql"

	// UserDataFilePrefix and UserDataFileExt frame per-user database filenames:
	// techhome_data_<sha256(username)>.sql
	UserDataFilePrefix = "techhome_data_"
	UserDataFileExt    = ".sql"
)

// DefaultMaxNotifications caps the per-user notification log.
const DefaultMaxNotifications = 100
