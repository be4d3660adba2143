// Command modelhash prints the Civitai model version matching a local file.
//
//	modelhash path/to/model.safetensors
//
// The file's SHA-256 digest is looked up in the registry and the response is
// printed as one line of JSON. Any non-200 response prints
// {"error":"Model not found or API error"} and still exits 0.
package main

import (
	"errors"
	"os"

	"github.com/prethora/modelhash"
)

// CLI exit codes for standardized error reporting.
const (
	// ExitSuccess indicates the operation completed successfully.
	ExitSuccess = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError = 1

	// ExitInvalidArgs indicates invalid command line arguments.
	ExitInvalidArgs = 2

	// ExitNetworkError indicates a network or connection failure.
	ExitNetworkError = 5

	// ExitFileError indicates the input file could not be read.
	ExitFileError = 7

	// ExitRegistryError indicates the registry returned an unparseable body.
	ExitRegistryError = 8
)

func main() {
	cmd := modelhash.NewCommand(modelhash.Config{})
	if err := cmd.Execute(); err != nil {
		os.Exit(exitCodeFromError(err))
	}
}

// exitCodeFromError maps error types to exit codes.
func exitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, modelhash.ErrInvalidArgs):
		return ExitInvalidArgs
	case errors.Is(err, modelhash.ErrFileError):
		return ExitFileError
	case errors.Is(err, modelhash.ErrNetworkError):
		return ExitNetworkError
	case errors.Is(err, modelhash.ErrRegistryError):
		return ExitRegistryError
	default:
		return ExitGeneralError
	}
}
