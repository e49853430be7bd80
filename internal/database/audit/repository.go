package audit

import (
	"time"

	"gorm.io/gorm"

	"github.com/techhome/techhome/internal/entities"
	"github.com/techhome/techhome/internal/userdb"
)

// Repository appends to and reads a user's activity log. The log is
// append-only; individual rows are never updated or deleted, only the
// retention trim removes old ones in bulk.
type Repository struct {
	mgr *userdb.Manager
}

func NewRepository(mgr *userdb.Manager) *Repository {
	return &Repository{mgr: mgr}
}

// LogAction records one action for the user, stamped with the current time.
func (r *Repository) LogAction(username, action string) error {
	return r.mgr.WithUser(username, func(db *gorm.DB) error {
		return db.Create(&entities.Action{
			Action:    action,
			Timestamp: time.Now(),
		}).Error
	})
}

// ActionCount returns the total number of logged actions for the user.
func (r *Repository) ActionCount(username string) (int64, error) {
	var count int64
	err := r.mgr.WithUser(username, func(db *gorm.DB) error {
		return db.Model(&entities.Action{}).Count(&count).Error
	})
	return count, err
}

// RecentActions retrieves the newest actions, most recent first.
func (r *Repository) RecentActions(username string, limit int) ([]entities.Action, error) {
	if limit <= 0 {
		limit = 50
	}
	var actions []entities.Action
	err := r.mgr.WithUser(username, func(db *gorm.DB) error {
		return db.Order("timestamp DESC, id DESC").Limit(limit).Find(&actions).Error
	})
	return actions, err
}

// DeleteOldActions removes actions older than the given time, returning
// how many rows were removed. Used by the maintenance task queue.
func (r *Repository) DeleteOldActions(username string, olderThan time.Time) (int64, error) {
	var deleted int64
	err := r.mgr.WithUser(username, func(db *gorm.DB) error {
		result := db.Where("timestamp < ?", olderThan).Delete(&entities.Action{})
		deleted = result.RowsAffected
		return result.Error
	})
	return deleted, err
}
