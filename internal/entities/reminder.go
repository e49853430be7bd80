package entities

import "time"

// Reminder is a one-shot dated note; it fires once at At and carries no
// repeat or snooze state.
type Reminder struct {
	ID   uint      `gorm:"primaryKey" json:"id"`
	At   time.Time `gorm:"column:datetime;index" json:"datetime"`
	Text string    `gorm:"size:500" json:"text"`
}

func (Reminder) TableName() string {
	return "reminders"
}
