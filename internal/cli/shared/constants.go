// Package shared provides constants and types used across CLI packages.
// This package has no dependencies on other CLI packages to avoid circular imports.
package shared

import (
	"errors"
	"fmt"

	clierrors "github.com/ariel-frischer/notificator/internal/errors"
)

// Command group IDs for organizing help output
const (
	GroupNotifications = "notifications"
	GroupInfo          = "info"
)

// Exit codes for CLI commands
const (
	ExitSuccess            = 0
	ExitNotificationFailed = 1
	ExitInvalidArguments   = 3
	ExitConfigError        = 4
)

// exitError is a custom error type that carries an exit code.
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit code %d", e.code)
}

// NewExitError creates a new exit error with the given code.
func NewExitError(code int) error {
	return &exitError{code: code}
}

// ExitCode returns the exit code for err. CLI errors map by category:
// argument errors exit 3, configuration errors exit 4 and everything else
// exits 1.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var e *exitError
	if errors.As(err, &e) {
		return e.code
	}
	if cliErr := clierrors.AsCLIError(err); cliErr != nil {
		switch cliErr.Category {
		case clierrors.Argument:
			return ExitInvalidArguments
		case clierrors.Configuration:
			return ExitConfigError
		}
	}
	return ExitNotificationFailed
}
