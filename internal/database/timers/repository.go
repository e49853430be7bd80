package timers

import (
	"time"

	"gorm.io/gorm"

	"github.com/techhome/techhome/internal/entities"
	"github.com/techhome/techhome/internal/userdb"
)

// Repository stores countdown timers. Remaining time for running timers
// is derived from the wall clock at read time; nothing ticks in the
// background.
type Repository struct {
	mgr *userdb.Manager
}

func NewRepository(mgr *userdb.Manager) *Repository {
	return &Repository{mgr: mgr}
}

// SaveTimer inserts the timer when its ID is zero, stamping the
// generated ID back onto the value, and updates the existing row
// otherwise.
func (r *Repository) SaveTimer(username string, timer *entities.Timer) error {
	return r.mgr.WithUser(username, func(db *gorm.DB) error {
		return db.Save(timer).Error
	})
}

// Timers returns all of the user's timers with Remaining reconstructed
// for running ones: the stored value minus the wall-clock time elapsed
// since LastStarted. A non-looping timer that ran out reads as stopped
// at zero. Only the returned values are adjusted; the stored rows stay
// as persisted.
func (r *Repository) Timers(username string) ([]entities.Timer, error) {
	var timers []entities.Timer
	err := r.mgr.WithUser(username, func(db *gorm.DB) error {
		return db.Order("id ASC").Find(&timers).Error
	})
	if err != nil {
		return nil, err
	}

	now := time.Now()
	for i := range timers {
		t := &timers[i]
		if !t.Running {
			continue
		}
		t.Remaining = t.RemainingAt(now)
		if t.Remaining == 0 && !t.Loop {
			t.Running = false
		}
	}
	return timers, nil
}

// DeleteTimer removes a timer by id.
func (r *Repository) DeleteTimer(username string, id uint) error {
	return r.mgr.WithUser(username, func(db *gorm.DB) error {
		return db.Delete(&entities.Timer{}, id).Error
	})
}
