// Package settings provides per-user preference storage.
//
// # Usage
//
//	repo := settings.NewRepository(mgr)
//	theme, err := repo.Setting("alice", entities.SettingKeyTheme, "light")
package settings

import (
	"errors"

	"gorm.io/gorm"

	"github.com/techhome/techhome/internal/entities"
	"github.com/techhome/techhome/internal/userdb"
)

// Repository handles per-user settings.
type Repository struct {
	mgr *userdb.Manager
}

func NewRepository(mgr *userdb.Manager) *Repository {
	return &Repository{mgr: mgr}
}

// SaveSetting creates or updates a setting.
func (r *Repository) SaveSetting(username, key, value string) error {
	return r.mgr.WithUser(username, func(db *gorm.DB) error {
		var setting entities.Setting
		err := db.Where("key = ?", key).First(&setting).Error

		if errors.Is(err, gorm.ErrRecordNotFound) {
			setting = entities.Setting{Key: key, Value: value}
			return db.Create(&setting).Error
		} else if err != nil {
			return err
		}

		setting.Value = value
		return db.Save(&setting).Error
	})
}

// Setting retrieves a setting by key, returning fallback when the key
// has never been set.
func (r *Repository) Setting(username, key, fallback string) (string, error) {
	var setting entities.Setting
	err := r.mgr.WithUser(username, func(db *gorm.DB) error {
		return db.Where("key = ?", key).First(&setting).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fallback, nil
	}
	if err != nil {
		return "", err
	}
	return setting.Value, nil
}

// Settings returns all of the user's settings as a map.
func (r *Repository) Settings(username string) (map[string]string, error) {
	var rows []entities.Setting
	err := r.mgr.WithUser(username, func(db *gorm.DB) error {
		return db.Find(&rows).Error
	})
	if err != nil {
		return nil, err
	}

	values := make(map[string]string, len(rows))
	for _, row := range rows {
		values[row.Key] = row.Value
	}
	return values, nil
}

// DeleteSetting removes a setting by key.
func (r *Repository) DeleteSetting(username, key string) error {
	return r.mgr.WithUser(username, func(db *gorm.DB) error {
		return db.Where("key = ?", key).Delete(&entities.Setting{}).Error
	})
}
