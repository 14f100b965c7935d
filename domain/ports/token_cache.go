package ports

import (
	"context"

	"todo-backend/domain/models"
)

// TokenCache is an optional read-through cache in front of access-token
// resolution. Misses and cache failures both fall back to the store, so
// the system is fully correct with no cache at all (services treat a
// nil cache as disabled).
type TokenCache interface {
	GetUser(ctx context.Context, accessID string) (*models.User, bool)
	SetUser(ctx context.Context, accessID string, user *models.User)
	Invalidate(ctx context.Context, accessID string)
}
