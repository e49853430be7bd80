package entities

import "time"

// Action is one entry in a user's append-only activity log.
type Action struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Action    string    `gorm:"size:500" json:"action"`
	Timestamp time.Time `gorm:"index" json:"timestamp"`
}

func (Action) TableName() string {
	return "actions"
}
