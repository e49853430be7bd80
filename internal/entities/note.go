package entities

import "time"

// Note is a sticky note pinned to a fixed grid cell on the notes page.
type Note struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Text      string    `gorm:"type:text" json:"text"`
	Timestamp time.Time `json:"timestamp"`
	CellRow   int       `json:"cell_row"`
	CellCol   int       `json:"cell_col"`
}

func (Note) TableName() string {
	return "notes"
}
