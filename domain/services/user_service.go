package services

import (
	"context"

	"todo-backend/domain/models"
)

// UserService resolves opaque access tokens to users and owns the
// registration / credential lifecycle.
type UserService interface {
	// Register creates a user and issues a fresh globally-unique access
	// token. The store's unique index on access_id is the backstop; a
	// collision is surfaced as an error, never retried here.
	Register(ctx context.Context, username, password string) (*models.User, error)

	// Authenticate matches username and password with plain equality.
	// Returns ErrNotFound when no user matches.
	Authenticate(ctx context.Context, username, password string) (*models.User, error)

	// Resolve maps an access token to its user. Empty token returns
	// ErrMissingCredential, an unknown one ErrNotAuthorized.
	Resolve(ctx context.Context, accessToken string) (*models.User, error)

	// Deauthenticate deletes the user only when token, username and
	// password all match its record. Any mismatch returns (false, nil).
	// The user's lists are left untouched.
	Deauthenticate(ctx context.Context, accessToken, username, password string) (bool, error)
}
