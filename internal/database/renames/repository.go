package renames

import (
	"errors"

	"gorm.io/gorm"

	"github.com/techhome/techhome/internal/entities"
	"github.com/techhome/techhome/internal/userdb"
)

// Repository maintains the rename-mapping table: current display name →
// original creation name. Icon selection matches keywords against the
// original name, so the mapping keeps icons stable across renames.
type Repository struct {
	mgr *userdb.Manager
}

func NewRepository(mgr *userdb.Manager) *Repository {
	return &Repository{mgr: mgr}
}

// UpdateRenamedDevice records a rename from oldName to newName. When
// oldName already maps to an original name the new mapping reuses it, so
// chains collapse to depth 1. Rows keyed by either name are removed
// before inserting, ruling out duplicate keys and multi-hop chains.
func (r *Repository) UpdateRenamedDevice(username, oldName, newName string) error {
	return r.mgr.WithUser(username, func(db *gorm.DB) error {
		original := oldName
		var existing entities.RenamedDevice
		err := db.Where("new_name = ?", oldName).First(&existing).Error
		if err == nil {
			original = existing.OriginalName
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		if err := db.Where("new_name IN ?", []string{oldName, newName}).
			Delete(&entities.RenamedDevice{}).Error; err != nil {
			return err
		}

		return db.Create(&entities.RenamedDevice{
			NewName:      newName,
			OriginalName: original,
		}).Error
	})
}

// RenamedDevices returns the full mapping of current names to original
// names.
func (r *Repository) RenamedDevices(username string) (map[string]string, error) {
	var rows []entities.RenamedDevice
	err := r.mgr.WithUser(username, func(db *gorm.DB) error {
		return db.Find(&rows).Error
	})
	if err != nil {
		return nil, err
	}

	mapping := make(map[string]string, len(rows))
	for _, row := range rows {
		mapping[row.NewName] = row.OriginalName
	}
	return mapping, nil
}

// OriginalDeviceName resolves a display name back to the name the device
// was created with. Names that were never renamed resolve to themselves.
func (r *Repository) OriginalDeviceName(username, name string) (string, error) {
	var row entities.RenamedDevice
	err := r.mgr.WithUser(username, func(db *gorm.DB) error {
		return db.Where("new_name = ?", name).First(&row).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return name, nil
	}
	if err != nil {
		return "", err
	}
	return row.OriginalName, nil
}
