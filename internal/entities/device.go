package entities

// DeviceState holds the last known on/off state of one device.
// One row per device name; toggles upsert in place.
type DeviceState struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	DeviceName string `gorm:"uniqueIndex;size:200" json:"device_name"`
	GroupName  string `gorm:"size:200" json:"group_name"`
	State      bool   `json:"state"`
}

func (DeviceState) TableName() string {
	return "device_states"
}

// RenamedDevice maps a device's current display name back to the name it
// was created with. Icon selection matches keywords against the original
// name, so the mapping keeps icons stable across renames. Chains never
// exceed depth 1: renames always collapse to the base name.
type RenamedDevice struct {
	NewName      string `gorm:"primaryKey;size:200" json:"new_name"`
	OriginalName string `gorm:"size:200" json:"original_name"`
}

func (RenamedDevice) TableName() string {
	return "renamed_devices"
}
