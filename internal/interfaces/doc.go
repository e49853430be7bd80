// Package interfaces documents the core abstractions used throughout the application.
//
// # Adding a New Database Domain
//
// To add a new data domain (e.g., scenes):
//
//  1. Define the entity in internal/entities/ with gorm tags and a
//     TableName() method, and add it to the migration list in
//     internal/userdb/manager.go
//
//  2. Create a sub-package internal/database/scenes/ with a repository:
//
//     type Repository struct { mgr *userdb.Manager }
//
//     func NewRepository(mgr *userdb.Manager) *Repository
//
//  3. Every method takes the username first and goes through
//     mgr.WithUser so the data lands in that user's database file
//
// # Adding a New Maintenance Task
//
// To add a new background cleanup job:
//
//  1. Define the task type and its queue config in internal/tasks/
//
//     type CompactTask struct {
//         Username string `json:"username"`
//     }
//
//     func (t CompactTask) Config() backlite.QueueConfig
//
//  2. Declare the narrow interface the processor needs and implement it
//     on the relevant repository
//
//  3. Register the queue in internal/entrypoint/entrypoint.go and add a
//     compile-time check in checks.go:
//
//     var _ tasks.Compactor = (*somepkg.Repository)(nil)
//
// # Compile-Time Interface Checks
//
// All implementations should include compile-time checks to ensure they satisfy
// their interfaces. This catches missing methods at compile time rather than runtime:
//
//	var _ SomeInterface = (*MyImplementation)(nil)
//
// See checks.go for the current set.
package interfaces
