package store

import "errors"

var (
	// ErrNotFound is returned when no phrase has the requested ID
	ErrNotFound = errors.New("phrase not found")

	// ErrEmpty is returned when picking from an empty collection
	ErrEmpty = errors.New("no phrases stored")

	// ErrCorruptData is returned when the stored blob is not a JSON array
	ErrCorruptData = errors.New("stored data must be a JSON array")

	// ErrInvalidPhrase is returned when a phrase fails validation on save
	ErrInvalidPhrase = errors.New("invalid phrase")

	// ErrUnknownBackend is returned by Open for an unsupported backend name
	ErrUnknownBackend = errors.New("unknown storage backend")
)
