package entities

import "time"

// Notification is one entry in the user's capped notification feed.
// Inserts append; the store prunes the oldest rows beyond the configured
// maximum in the same call.
type Notification struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Message   string    `gorm:"size:500" json:"message"`
}

func (Notification) TableName() string {
	return "notifications"
}
