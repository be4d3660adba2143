package modelhash

import "errors"

// Sentinel errors for lookup operations.
// Use errors.Is() to check for specific error conditions.
var (
	// ErrInvalidArgs indicates the command was invoked with the wrong arguments.
	ErrInvalidArgs = errors.New("modelhash: invalid arguments")

	// ErrFileError indicates the input file could not be opened or read.
	ErrFileError = errors.New("modelhash: file error")

	// ErrNetworkError indicates a network or connection failure.
	ErrNetworkError = errors.New("modelhash: network error")

	// ErrRegistryError indicates the registry answered 200 with a body that is not JSON.
	ErrRegistryError = errors.New("modelhash: invalid registry response")

	// ErrInvalidDigest indicates a digest that is not 64 lowercase hex characters.
	ErrInvalidDigest = errors.New("modelhash: invalid digest")
)
