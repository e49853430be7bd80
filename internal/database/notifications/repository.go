package notifications

import (
	"time"

	"gorm.io/gorm"

	"github.com/techhome/techhome/internal/config"
	"github.com/techhome/techhome/internal/entities"
	"github.com/techhome/techhome/internal/userdb"
)

// Repository stores the user's notification feed, capped at a fixed
// number of rows with FIFO eviction.
type Repository struct {
	mgr *userdb.Manager
	max int
}

// NewRepository creates a notifications repository enforcing the given
// cap, falling back to the default when max is not positive.
func NewRepository(mgr *userdb.Manager, max int) *Repository {
	if max <= 0 {
		max = config.DefaultMaxNotifications
	}
	return &Repository{mgr: mgr, max: max}
}

// SaveNotification appends a notification and prunes the oldest rows
// beyond the cap in the same call, so the feed never exceeds the
// configured maximum.
func (r *Repository) SaveNotification(username, message string) error {
	return r.mgr.WithUser(username, func(db *gorm.DB) error {
		if err := db.Create(&entities.Notification{
			Timestamp: time.Now(),
			Message:   message,
		}).Error; err != nil {
			return err
		}
		return prune(db, r.max)
	})
}

// Notifications returns the feed, newest first.
func (r *Repository) Notifications(username string) ([]entities.Notification, error) {
	var items []entities.Notification
	err := r.mgr.WithUser(username, func(db *gorm.DB) error {
		return db.Order("id DESC").Find(&items).Error
	})
	return items, err
}

// UpdateNotificationNames rewrites occurrences of a device's old name in
// stored messages after a rename, keeping the feed readable.
func (r *Repository) UpdateNotificationNames(username, oldName, newName string) error {
	return r.mgr.WithUser(username, func(db *gorm.DB) error {
		return db.Model(&entities.Notification{}).
			Where("message LIKE ?", "%"+oldName+"%").
			Update("message", gorm.Expr("REPLACE(message, ?, ?)", oldName, newName)).Error
	})
}

// ClearNotifications empties the feed.
func (r *Repository) ClearNotifications(username string) error {
	return r.mgr.WithUser(username, func(db *gorm.DB) error {
		return db.Exec("DELETE FROM notifications").Error
	})
}

// Sweep re-enforces the cap without inserting. Used by the maintenance
// task queue in case the cap was lowered between sessions.
func (r *Repository) Sweep(username string) error {
	return r.mgr.WithUser(username, func(db *gorm.DB) error {
		return prune(db, r.max)
	})
}

func prune(db *gorm.DB, max int) error {
	return db.Exec(
		"DELETE FROM notifications WHERE id NOT IN (SELECT id FROM notifications ORDER BY id DESC LIMIT ?)",
		max,
	).Error
}
