package tag

import "errors"

var (
	// ErrInvalidName indicates the tag name is empty after normalization.
	ErrInvalidName = errors.New("invalid tag name")

	// ErrInvalidKind indicates the kind is outside the closed kind set.
	ErrInvalidKind = errors.New("invalid tag kind")

	// ErrMissingCallback indicates a kind that requires a callback was
	// configured without one.
	ErrMissingCallback = errors.New("tag requires a callback")
)
