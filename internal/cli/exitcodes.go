package cli

import (
	"errors"

	"github.com/yaklabco/mdnorm/pkg/runner"
)

// Exit codes for mdnorm.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitFilesFailed indicates some files could not be processed.
	ExitFilesFailed = 1

	// ExitNoInput indicates no markdown files matched the given paths.
	ExitNoInput = 2

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70
)

// ExitCodeFromError maps a command error to a process exit code.
func ExitCodeFromError(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrFilesFailed):
		return ExitFilesFailed
	case errors.Is(err, runner.ErrNoInputFiles):
		return ExitNoInput
	default:
		return ExitInternalError
	}
}
