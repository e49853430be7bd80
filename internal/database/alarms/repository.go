package alarms

import (
	"gorm.io/gorm"

	"github.com/techhome/techhome/internal/entities"
	"github.com/techhome/techhome/internal/userdb"
)

// Repository stores alarms with weekday repeat masks.
type Repository struct {
	mgr *userdb.Manager
}

func NewRepository(mgr *userdb.Manager) *Repository {
	return &Repository{mgr: mgr}
}

// SaveAlarm inserts the alarm when its ID is zero, stamping the
// generated ID back onto the value, and updates the existing row
// otherwise. The repeat mask is normalized so the stored value is always
// exactly seven '0'/'1' characters.
func (r *Repository) SaveAlarm(username string, alarm *entities.Alarm) error {
	alarm.RepeatMask = entities.EncodeRepeatDays(entities.DecodeRepeatDays(alarm.RepeatMask))
	return r.mgr.WithUser(username, func(db *gorm.DB) error {
		return db.Save(alarm).Error
	})
}

// Alarms returns all of the user's alarms.
func (r *Repository) Alarms(username string) ([]entities.Alarm, error) {
	var alarms []entities.Alarm
	err := r.mgr.WithUser(username, func(db *gorm.DB) error {
		return db.Order("id ASC").Find(&alarms).Error
	})
	return alarms, err
}

// DeleteAlarm removes an alarm by id.
func (r *Repository) DeleteAlarm(username string, id uint) error {
	return r.mgr.WithUser(username, func(db *gorm.DB) error {
		return db.Delete(&entities.Alarm{}, id).Error
	})
}
