package notes

import (
	"time"

	"gorm.io/gorm"

	"github.com/techhome/techhome/internal/entities"
	"github.com/techhome/techhome/internal/userdb"
)

// Repository stores sticky notes with their grid position.
type Repository struct {
	mgr *userdb.Manager
}

func NewRepository(mgr *userdb.Manager) *Repository {
	return &Repository{mgr: mgr}
}

// SaveNote appends a note at the given grid cell, stamped with the
// current time.
func (r *Repository) SaveNote(username, text string, cellRow, cellCol int) error {
	return r.mgr.WithUser(username, func(db *gorm.DB) error {
		return db.Create(&entities.Note{
			Text:      text,
			Timestamp: time.Now(),
			CellRow:   cellRow,
			CellCol:   cellCol,
		}).Error
	})
}

// Notes returns all notes in insertion order.
func (r *Repository) Notes(username string) ([]entities.Note, error) {
	var notes []entities.Note
	err := r.mgr.WithUser(username, func(db *gorm.DB) error {
		return db.Order("id ASC").Find(&notes).Error
	})
	return notes, err
}
