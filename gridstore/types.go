package gridstore

import "errors"

// Sentinel errors for gridstore operations.
var (
	// ErrEmptyWorld indicates non-positive world dimensions.
	ErrEmptyWorld = errors.New("gridstore: world dimensions must be positive")
	// ErrInvalidSeparation indicates a non-positive separation distance.
	ErrInvalidSeparation = errors.New("gridstore: separation distance must be positive")
)
