package lists

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/techhome/techhome/internal/userdb"
)

func setupRepository(t *testing.T) *Repository {
	return NewRepository(userdb.NewManager(t.TempDir()))
}

func TestRepository_SaveList(t *testing.T) {
	repo := setupRepository(t)

	require.NoError(t, repo.SaveList("alice", "Groceries"))
	require.NoError(t, repo.SaveList("alice", "Groceries"))
	require.NoError(t, repo.SaveList("alice", "Chores"))

	lists, err := repo.Lists("alice")
	require.NoError(t, err)
	require.Len(t, lists, 2)
	assert.Equal(t, "Chores", lists[0].ListName)
	assert.Equal(t, "Groceries", lists[1].ListName)
}

func TestRepository_ListItems_Order(t *testing.T) {
	repo := setupRepository(t)
	require.NoError(t, repo.SaveList("alice", "Groceries"))

	require.NoError(t, repo.SaveListItem("alice", "Groceries", "milk", 1))
	require.NoError(t, repo.SaveListItem("alice", "Groceries", "eggs", 2))
	require.NoError(t, repo.SaveListItem("alice", "Groceries", "bread", 2))

	items, err := repo.ListItems("alice", "Groceries")
	require.NoError(t, err)
	require.Len(t, items, 3)
	// Highest order first; ties break toward the newest row.
	assert.Equal(t, "bread", items[0].ItemText)
	assert.Equal(t, "eggs", items[1].ItemText)
	assert.Equal(t, "milk", items[2].ItemText)
}

func TestRepository_DeleteListItem_RemovesOneDuplicate(t *testing.T) {
	repo := setupRepository(t)
	require.NoError(t, repo.SaveList("alice", "Groceries"))

	require.NoError(t, repo.SaveListItem("alice", "Groceries", "milk", 1))
	require.NoError(t, repo.SaveListItem("alice", "Groceries", "milk", 2))

	require.NoError(t, repo.DeleteListItem("alice", "Groceries", "milk"))

	items, err := repo.ListItems("alice", "Groceries")
	require.NoError(t, err)
	assert.Len(t, items, 1)

	require.NoError(t, repo.DeleteListItem("alice", "Groceries", "milk"))
	items, err = repo.ListItems("alice", "Groceries")
	require.NoError(t, err)
	assert.Empty(t, items)

	// Deleting a missing item is a no-op.
	assert.NoError(t, repo.DeleteListItem("alice", "Groceries", "milk"))
}

func TestRepository_DeleteListItem_ScopedToList(t *testing.T) {
	repo := setupRepository(t)
	require.NoError(t, repo.SaveList("alice", "Groceries"))
	require.NoError(t, repo.SaveList("alice", "Chores"))

	require.NoError(t, repo.SaveListItem("alice", "Groceries", "milk", 1))
	require.NoError(t, repo.SaveListItem("alice", "Chores", "milk", 1))

	require.NoError(t, repo.DeleteListItem("alice", "Groceries", "milk"))

	items, err := repo.ListItems("alice", "Chores")
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestRepository_DeleteList_CascadesToItems(t *testing.T) {
	repo := setupRepository(t)
	require.NoError(t, repo.SaveList("alice", "Groceries"))
	require.NoError(t, repo.SaveList("alice", "Chores"))
	require.NoError(t, repo.SaveListItem("alice", "Groceries", "milk", 1))
	require.NoError(t, repo.SaveListItem("alice", "Chores", "laundry", 1))

	require.NoError(t, repo.DeleteList("alice", "Groceries"))

	lists, err := repo.Lists("alice")
	require.NoError(t, err)
	require.Len(t, lists, 1)
	assert.Equal(t, "Chores", lists[0].ListName)

	items, err := repo.ListItems("alice", "Groceries")
	require.NoError(t, err)
	assert.Empty(t, items)

	items, err = repo.ListItems("alice", "Chores")
	require.NoError(t, err)
	assert.Len(t, items, 1)
}
