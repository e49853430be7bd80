package entities

import "time"

// Setting is a per-user preference stored as a key/value pair.
type Setting struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Key       string    `gorm:"uniqueIndex;size:100" json:"key"`
	Value     string    `gorm:"type:text" json:"value"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Setting) TableName() string {
	return "settings"
}

// Known setting keys
const (
	SettingKeyTheme                = "theme"
	SettingKeyLanguage             = "language"
	SettingKeyTimeFormat           = "time_format"
	SettingKeyNotificationsEnabled = "notifications_enabled"
	SettingKeyDeviceFilter         = "device_filter"
	SettingKeyDeviceSort           = "device_sort"
)
