// Package userdb locates and prepares the SQLite databases backing the
// dashboard: one shared credentials database plus one data file per user.
//
// # Usage
//
//	mgr := userdb.NewManager(cfg.DataDir)
//	err := mgr.WithUser("alice", func(db *gorm.DB) error {
//		return db.Create(&entities.Note{Text: "hi"}).Error
//	})
//
// Connections are opened per call and closed when the callback returns;
// nothing is pooled across calls.
package userdb

import (
	"fmt"
	"os"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/techhome/techhome/internal/entities"
)

// userModels lists every table living in a per-user database. AutoMigrate
// creates missing tables and adds missing columns; it never drops or
// renames existing ones, so older data files upgrade in place.
var userModels = []any{
	&entities.Action{},
	&entities.DeviceState{},
	&entities.UserList{},
	&entities.ListItem{},
	&entities.Note{},
	&entities.Reminder{},
	&entities.Alarm{},
	&entities.Timer{},
	&entities.Notification{},
	&entities.RenamedDevice{},
	&entities.Setting{},
}

// Manager resolves database paths under a single data directory and
// hands out migrated connections.
type Manager struct {
	dataDir string
}

func NewManager(dataDir string) *Manager {
	return &Manager{dataDir: dataDir}
}

// DataDir returns the directory all database files live in.
func (m *Manager) DataDir() string {
	return m.dataDir
}

// OpenShared opens the shared users database, creating and migrating it
// if needed. The caller owns the returned connection and must Close it.
func (m *Manager) OpenShared() (*gorm.DB, error) {
	return m.open(SharedDBPath(m.dataDir), &entities.Credential{})
}

// OpenUser opens the database belonging to one user, creating and
// migrating it if needed.
func (m *Manager) OpenUser(username string) (*gorm.DB, error) {
	return m.open(UserDBPath(m.dataDir, username), userModels...)
}

// WithShared runs fn against the shared users database and closes the
// connection afterwards.
func (m *Manager) WithShared(fn func(db *gorm.DB) error) error {
	db, err := m.OpenShared()
	if err != nil {
		return err
	}
	defer Close(db)
	return fn(db)
}

// WithUser runs fn against one user's database and closes the connection
// afterwards.
func (m *Manager) WithUser(username string, fn func(db *gorm.DB) error) error {
	db, err := m.OpenUser(username)
	if err != nil {
		return err
	}
	defer Close(db)
	return fn(db)
}

// EnsureUser creates and migrates the user's database without keeping a
// connection open. Called eagerly after registration so the first real
// operation does not pay the setup cost.
func (m *Manager) EnsureUser(username string) error {
	db, err := m.OpenUser(username)
	if err != nil {
		return err
	}
	return Close(db)
}

// UserDBExists reports whether the user's data file is already on disk.
func (m *Manager) UserDBExists(username string) bool {
	return fileExists(UserDBPath(m.dataDir, username))
}

func (m *Manager) open(path string, models ...any) (*gorm.DB, error) {
	if err := os.MkdirAll(m.dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory %s: %w", m.dataDir, err)
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database %s: %w", path, err)
	}

	if err := db.AutoMigrate(models...); err != nil {
		Close(db)
		return nil, fmt.Errorf("failed to migrate database %s: %w", path, err)
	}

	return db, nil
}

// Close releases the underlying SQLite connection.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
