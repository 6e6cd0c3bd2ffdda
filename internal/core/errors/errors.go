package errors

import "errors"

// Sentinel errors the HTTP layer maps to status codes with errors.Is.
var (
	// ErrInvalidScreenID signals a screen id that does not match the
	// TV_### shape. Rejected before any storage access.
	ErrInvalidScreenID = errors.New("invalid screen id")

	// ErrCapacityExceeded signals that the screen registry is full.
	ErrCapacityExceeded = errors.New("maximum number of screens reached")

	// ErrDecode signals an unreadable image or deck upload.
	ErrDecode = errors.New("unreadable image or deck")

	// ErrNotFound signals a missing screen or asset on a read path.
	ErrNotFound = errors.New("not found")

	// ErrValidation signals a disallowed file extension or a missing
	// required field.
	ErrValidation = errors.New("validation failed")

	// ErrIO signals a storage write or delete failure.
	ErrIO = errors.New("storage failure")
)
