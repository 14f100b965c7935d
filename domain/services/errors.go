package services

import "errors"

var (
	// ErrMissingCredential means the access token was omitted entirely.
	// A caller bug: retrying the same call will never succeed.
	ErrMissingCredential = errors.New("missing access token")

	// ErrNotAuthorized means the access token was present but did not
	// resolve to any user. Deliberately says nothing about whether the
	// token ever existed.
	ErrNotAuthorized = errors.New("not authorized")

	// ErrNotFound is returned by single-row lookups only. Collection
	// reads report misses as empty slices, deletes and updates as
	// false / no-op.
	ErrNotFound = errors.New("not found")
)
