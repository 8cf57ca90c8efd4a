package domain

import "errors"

// Repository sentinels. Usecases translate them into apperror kinds.
var (
	ErrNotFound = errors.New("resource not found")
	// ErrConflict is returned when a store-level uniqueness constraint rejects a write.
	ErrConflict = errors.New("resource already exists")
)
