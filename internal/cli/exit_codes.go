package cli

import (
	"github.com/ariel-frischer/notificator/internal/cli/shared"
)

// Exit codes for the notificator CLI (re-exported from shared)
// These codes let scripts tell a bad invocation from a failed send
const (
	// ExitSuccess indicates the notification was sent
	ExitSuccess = shared.ExitSuccess

	// ExitNotificationFailed indicates the notification could not be delivered
	ExitNotificationFailed = shared.ExitNotificationFailed

	// ExitInvalidArguments indicates invalid command arguments
	ExitInvalidArguments = shared.ExitInvalidArguments

	// ExitConfigError indicates the configuration could not be loaded
	ExitConfigError = shared.ExitConfigError
)

// NewExitError creates a new exit error with the given code (re-exported from shared).
func NewExitError(code int) error {
	return shared.NewExitError(code)
}

// ExitCode returns the exit code from an error (re-exported from shared).
func ExitCode(err error) int {
	return shared.ExitCode(err)
}
