package bitcube

import "errors"

// Sentinel errors for the bitcube package.
var (
	// Parsing errors
	ErrInvalidNotation = errors.New("bitcube: invalid move notation")

	// Order errors
	ErrOrderLimit = errors.New("bitcube: order exceeds limit")
)
