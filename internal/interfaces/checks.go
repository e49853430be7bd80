package interfaces

// This file contains compile-time interface implementation checks.
// These ensure that concrete types satisfy their interfaces at compile time,
// catching missing methods before runtime.
//
// To verify all checks pass: go build ./internal/interfaces/...

import (
	"github.com/techhome/techhome/internal/database/audit"
	"github.com/techhome/techhome/internal/database/notifications"
	"github.com/techhome/techhome/internal/tasks"
)

// Maintenance task dependencies
var _ tasks.ActionTrimmer = (*audit.Repository)(nil)
var _ tasks.NotificationSweeper = (*notifications.Repository)(nil)
