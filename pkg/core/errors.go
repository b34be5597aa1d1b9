package core

import "errors"

// Common errors.
var (
	ErrReadOnly         = errors.New("client is in read-only mode")
	ErrEmptyID          = errors.New("document ID cannot be empty")
	ErrNotFound         = errors.New("document not found")
	ErrConflict         = errors.New("document update conflict")
	ErrUnauthorized     = errors.New("unauthorized")
	ErrDatabaseNotFound = errors.New("database does not exist")
	ErrUnknownKind      = errors.New("unknown document kind")
)
