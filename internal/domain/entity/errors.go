package entity

import "errors"

var (
	// ErrProductNotFound is returned when the referenced product does not
	// exist in the catalogue. It is never retried.
	ErrProductNotFound = errors.New("product not found")

	// ErrLikeConflict is returned when a like/unlike transaction still
	// conflicts with concurrent writers after the retry budget is spent.
	// The operation is idempotent, so callers may safely retry.
	ErrLikeConflict = errors.New("like operation aborted after repeated write conflicts")
)
