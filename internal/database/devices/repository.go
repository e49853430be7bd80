package devices

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/techhome/techhome/internal/entities"
	"github.com/techhome/techhome/internal/userdb"
)

// Repository persists device on/off states, one row per device name.
type Repository struct {
	mgr *userdb.Manager
}

func NewRepository(mgr *userdb.Manager) *Repository {
	return &Repository{mgr: mgr}
}

// SaveDeviceState upserts the state of one device keyed by its name.
func (r *Repository) SaveDeviceState(username, deviceName, groupName string, state bool) error {
	return r.mgr.WithUser(username, func(db *gorm.DB) error {
		return db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "device_name"}},
			DoUpdates: clause.AssignmentColumns([]string{"group_name", "state"}),
		}).Create(&entities.DeviceState{
			DeviceName: deviceName,
			GroupName:  groupName,
			State:      state,
		}).Error
	})
}

// DeviceStates returns all known device states for the user.
func (r *Repository) DeviceStates(username string) ([]entities.DeviceState, error) {
	var states []entities.DeviceState
	err := r.mgr.WithUser(username, func(db *gorm.DB) error {
		return db.Order("device_name ASC").Find(&states).Error
	})
	return states, err
}

// RenameDevice changes the stored name of a device. The rename-mapping
// table is maintained separately by the renames repository.
func (r *Repository) RenameDevice(username, oldName, newName string) error {
	return r.mgr.WithUser(username, func(db *gorm.DB) error {
		return db.Model(&entities.DeviceState{}).
			Where("device_name = ?", oldName).
			Update("device_name", newName).Error
	})
}
