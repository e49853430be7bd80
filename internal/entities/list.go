package entities

// UserList is a named shopping/todo list. Items live in ListItem rows.
type UserList struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	ListName string `gorm:"uniqueIndex;size:200" json:"list_name"`
}

func (UserList) TableName() string {
	return "user_lists"
}

// ListItem is one entry in a list. Duplicate item text within a list is
// allowed; deletion removes a single matching row at a time.
type ListItem struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	ListName  string `gorm:"index;size:200" json:"list_name"`
	ItemText  string `gorm:"size:500" json:"item_text"`
	ItemOrder int    `json:"item_order"`
}

func (ListItem) TableName() string {
	return "list_items"
}
