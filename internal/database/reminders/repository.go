package reminders

import (
	"time"

	"gorm.io/gorm"

	"github.com/techhome/techhome/internal/entities"
	"github.com/techhome/techhome/internal/userdb"
)

// Repository stores one-shot dated reminders.
type Repository struct {
	mgr *userdb.Manager
}

func NewRepository(mgr *userdb.Manager) *Repository {
	return &Repository{mgr: mgr}
}

// SaveReminder adds a reminder firing at the given time.
func (r *Repository) SaveReminder(username string, at time.Time, text string) error {
	return r.mgr.WithUser(username, func(db *gorm.DB) error {
		return db.Create(&entities.Reminder{At: at, Text: text}).Error
	})
}

// Reminders returns all reminders, soonest first.
func (r *Repository) Reminders(username string) ([]entities.Reminder, error) {
	var reminders []entities.Reminder
	err := r.mgr.WithUser(username, func(db *gorm.DB) error {
		return db.Order("datetime ASC, id ASC").Find(&reminders).Error
	})
	return reminders, err
}

// DueReminders returns reminders whose trigger time is at or before ref.
func (r *Repository) DueReminders(username string, ref time.Time) ([]entities.Reminder, error) {
	var reminders []entities.Reminder
	err := r.mgr.WithUser(username, func(db *gorm.DB) error {
		return db.Where("datetime <= ?", ref).Order("datetime ASC").Find(&reminders).Error
	})
	return reminders, err
}

// DeleteReminder removes a reminder by id.
func (r *Repository) DeleteReminder(username string, id uint) error {
	return r.mgr.WithUser(username, func(db *gorm.DB) error {
		return db.Delete(&entities.Reminder{}, id).Error
	})
}
