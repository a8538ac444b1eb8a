package storage

import "errors"

// Common profile storage errors
var (
	// ErrDuplicateAccount indicates that a profile with this account name already exists
	ErrDuplicateAccount = errors.New("account already exists")

	// ErrStorageClosed indicates that storage is closed
	ErrStorageClosed = errors.New("storage is closed")

	// ErrUnknownBackend indicates an unsupported storage backend name
	ErrUnknownBackend = errors.New("unknown storage backend")
)
