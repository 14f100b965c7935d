package services

import (
	"context"

	"todo-backend/domain/models"
)

// ListService is scoped to the owner resolved from the access token,
// except where noted: lookups and deletes addressed ByID trust the raw
// id without re-checking ownership (long-standing behavior, kept as is;
// see DESIGN.md).
type ListService interface {
	// Create persists a list owned by the token's user. Returns a
	// one-element slice for symmetry with Get.
	Create(ctx context.Context, accessToken, name, description string, isDone bool) ([]*models.List, error)

	// Get returns the selected lists in creation order. AllLists is
	// scoped to the token's user; ListByID is not. A miss is an empty
	// slice, not an error. ListByName is not a valid read selector.
	Get(ctx context.Context, accessToken string, sel ListSelector) ([]*models.List, error)

	// Delete removes one list, detaching its tasks. ListByID wins over
	// ListByName; the name path is scoped to the token's user. Returns
	// true iff a row was removed.
	Delete(ctx context.Context, accessToken string, sel ListSelector) (bool, error)

	// UpdateIsDone sets the flag on the matching list, no-op on a miss.
	UpdateIsDone(ctx context.Context, accessToken string, id uint, isDone bool) error
}
