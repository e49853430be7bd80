package userdb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/techhome/techhome/internal/entities"
)

func TestManager_EnsureUser(t *testing.T) {
	mgr := NewManager(t.TempDir())

	assert.False(t, mgr.UserDBExists("alice"))
	require.NoError(t, mgr.EnsureUser("alice"))
	assert.True(t, mgr.UserDBExists("alice"))

	// Idempotent
	require.NoError(t, mgr.EnsureUser("alice"))
}

func TestManager_WithUser_RoundTrip(t *testing.T) {
	mgr := NewManager(t.TempDir())

	err := mgr.WithUser("alice", func(db *gorm.DB) error {
		return db.Create(&entities.Note{Text: "hello", CellRow: 1, CellCol: 2}).Error
	})
	require.NoError(t, err)

	var notes []entities.Note
	err = mgr.WithUser("alice", func(db *gorm.DB) error {
		return db.Find(&notes).Error
	})
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, "hello", notes[0].Text)
}

func TestManager_UsersAreIsolated(t *testing.T) {
	mgr := NewManager(t.TempDir())

	err := mgr.WithUser("alice", func(db *gorm.DB) error {
		return db.Create(&entities.Note{Text: "private"}).Error
	})
	require.NoError(t, err)

	var count int64
	err = mgr.WithUser("bob", func(db *gorm.DB) error {
		return db.Model(&entities.Note{}).Count(&count).Error
	})
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestManager_OpenShared(t *testing.T) {
	mgr := NewManager(t.TempDir())

	db, err := mgr.OpenShared()
	require.NoError(t, err)
	defer Close(db)

	require.NoError(t, db.Create(&entities.Credential{
		UsernameHash: HashUsername("alice"),
		PasswordHash: "x",
		Algo:         "argon2",
	}).Error)

	// The unique index on username_hash must reject duplicates.
	err = db.Create(&entities.Credential{
		UsernameHash: HashUsername("alice"),
		PasswordHash: "y",
		Algo:         "argon2",
	}).Error
	assert.Error(t, err)
}

func TestManager_MigrationIsIdempotent(t *testing.T) {
	mgr := NewManager(t.TempDir())

	for i := 0; i < 3; i++ {
		db, err := mgr.OpenUser("alice")
		require.NoError(t, err)
		require.NoError(t, Close(db))
	}
}
