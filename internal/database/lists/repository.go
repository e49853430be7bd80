package lists

import (
	"gorm.io/gorm"

	"github.com/techhome/techhome/internal/entities"
	"github.com/techhome/techhome/internal/userdb"
)

// Repository manages named lists and their items. Duplicate item text is
// allowed within a list; deletion removes one matching row at a time.
type Repository struct {
	mgr *userdb.Manager
}

func NewRepository(mgr *userdb.Manager) *Repository {
	return &Repository{mgr: mgr}
}

// SaveList creates a list if it does not exist yet. Creating an existing
// list is a no-op, not an error.
func (r *Repository) SaveList(username, listName string) error {
	return r.mgr.WithUser(username, func(db *gorm.DB) error {
		return db.Where(entities.UserList{ListName: listName}).
			FirstOrCreate(&entities.UserList{}).Error
	})
}

// Lists returns all of the user's lists.
func (r *Repository) Lists(username string) ([]entities.UserList, error) {
	var lists []entities.UserList
	err := r.mgr.WithUser(username, func(db *gorm.DB) error {
		return db.Order("list_name ASC").Find(&lists).Error
	})
	return lists, err
}

// SaveListItem appends an item to a list.
func (r *Repository) SaveListItem(username, listName, itemText string, itemOrder int) error {
	return r.mgr.WithUser(username, func(db *gorm.DB) error {
		return db.Create(&entities.ListItem{
			ListName:  listName,
			ItemText:  itemText,
			ItemOrder: itemOrder,
		}).Error
	})
}

// ListItems returns a list's items, newest first (highest order, then
// highest id, so same-order items surface in insertion-reverse order).
func (r *Repository) ListItems(username, listName string) ([]entities.ListItem, error) {
	var items []entities.ListItem
	err := r.mgr.WithUser(username, func(db *gorm.DB) error {
		return db.Where("list_name = ?", listName).
			Order("item_order DESC, id DESC").Find(&items).Error
	})
	return items, err
}

// DeleteListItem removes exactly one item with matching text, so lists
// holding duplicate entries lose a single occurrence per call. Deleting
// a missing item is a no-op.
func (r *Repository) DeleteListItem(username, listName, itemText string) error {
	return r.mgr.WithUser(username, func(db *gorm.DB) error {
		return db.Exec(
			"DELETE FROM list_items WHERE id IN (SELECT id FROM list_items WHERE list_name = ? AND item_text = ? LIMIT 1)",
			listName, itemText,
		).Error
	})
}

// DeleteList removes a list and all of its items. The cascade is
// explicit; the schema declares no foreign keys.
func (r *Repository) DeleteList(username, listName string) error {
	return r.mgr.WithUser(username, func(db *gorm.DB) error {
		if err := db.Where("list_name = ?", listName).Delete(&entities.ListItem{}).Error; err != nil {
			return err
		}
		return db.Where("list_name = ?", listName).Delete(&entities.UserList{}).Error
	})
}
