package contract

import "errors"

// Sentinel errors shared by repositories, usecases and handlers.
// Wrap them with fmt.Errorf("...: %w", ErrX) to add detail.
var (
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrInvalidValue = errors.New("invalid value")
	ErrBadRequest   = errors.New("bad request")
	ErrConflict     = errors.New("conflict")
	// ErrDuplicate is returned by repositories when a unique index rejects a write.
	ErrDuplicate = errors.New("duplicate record")
)
