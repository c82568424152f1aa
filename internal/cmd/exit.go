// Package cmd provides command implementations for the plugconf CLI.
package cmd

import (
	"errors"

	"github.com/DarknessDeveloper/asdev-utils-config-class/pkg/conf"
)

// Exit codes.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError = 1

	// ExitValidationError indicates schema validation failed.
	ExitValidationError = 2

	// ExitUnsupported indicates the operation is not supported on the
	// target config (no writable backing file).
	ExitUnsupported = 3

	// ExitNotFound indicates a file or key was not found.
	ExitNotFound = 5
)

// ExitError wraps an error with an exit code.
type ExitError struct {
	Err  error
	Code int
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return e.Err.Error()
}

// Unwrap returns the wrapped error.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given error and exit code.
func NewExitError(err error, code int) *ExitError {
	return &ExitError{Err: err, Code: code}
}

// ExitCodeFromError determines the appropriate exit code for an error.
func ExitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	var validationErrs conf.ValidationErrors
	switch {
	case errors.As(err, &validationErrs):
		return ExitValidationError
	case errors.Is(err, conf.ErrSaveUnsupported), errors.Is(err, conf.ErrReloadUnsupported):
		return ExitUnsupported
	case errors.Is(err, conf.ErrResourceNotFound):
		return ExitNotFound
	default:
		return ExitGeneralError
	}
}
