package services

import (
	"context"

	"todo-backend/domain/models"
)

// TaskService addresses tasks by id or by owning list. The access token
// is accepted on mutating calls but is NOT cross-checked against the
// list's owner: any caller-supplied token passes. This is existing
// behavior carried over deliberately and flagged in DESIGN.md as a
// probable authorization gap; do not harden it silently.
type TaskService interface {
	// Create persists a task. listID may be nil for an unattached task.
	Create(ctx context.Context, accessToken string, listID *uint, name, description string, isDone bool) (*models.Task, error)

	// Get returns the selected tasks in creation order. TasksByList
	// returns every task of that list; TaskByID at most one. A miss is
	// an empty slice.
	Get(ctx context.Context, accessToken string, sel TaskSelector) ([]*models.Task, error)

	// GetByID is a direct single-row lookup with no ownership scoping.
	// Returns ErrNotFound on a miss.
	GetByID(ctx context.Context, id uint) (*models.Task, error)

	// UpdateIsDone sets the flag on the matching task, no-op on a miss.
	UpdateIsDone(ctx context.Context, accessToken string, id uint, isDone bool) error

	// Delete returns true iff a row existed and was removed.
	Delete(ctx context.Context, accessToken string, id uint) (bool, error)
}
