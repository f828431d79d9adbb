package errors

import (
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/ariel-frischer/notificator/internal/notify"
)

// MissingWebhookURL is returned when neither an argument nor config supplies a webhook URL
func MissingWebhookURL(kind notify.Kind, usage string) *CLIError {
	return NewArgumentErrorWithUsage(
		fmt.Sprintf("%s webhook URL is required", kind),
		usage,
		"Pass the webhook URL as the first argument",
		fmt.Sprintf("Or set %s_url in the config file or NOTIFICATOR_%s_URL", kind, strings.ToUpper(string(kind))),
	)
}

// MissingLineToken is returned when no LINE Notify token is available
func MissingLineToken(usage string) *CLIError {
	return NewArgumentErrorWithUsage(
		"LINE Notify token is required",
		usage,
		"Pass the token as the first argument",
		"Or set line_token in the config file or NOTIFICATOR_LINE_TOKEN",
	)
}

// ConfigLoadError wraps a failure to load or validate configuration
func ConfigLoadError(path string, err error) *CLIError {
	where := "configuration"
	if path != "" {
		where = path
	}
	return WrapWithMessage(err, Configuration, "failed to load "+where,
		"Check the JSON syntax of the config file",
		"Check NOTIFICATOR_* environment variables for typos",
	)
}

// FromNotificationError converts a failed send into a CLIError with hints
// matching the failure category. Errors that are not notification errors
// become Runtime errors.
func FromNotificationError(err error) *CLIError {
	if err == nil {
		return nil
	}
	var ne *notify.NotificationError
	if !stderrors.As(err, &ne) {
		return Wrap(err, Runtime)
	}

	cliErr := &CLIError{Category: Notification, Message: ne.Error(), Err: err}
	switch ne.Category {
	case notify.CategoryInvalid:
		cliErr.Category = Argument
		cliErr.Remediation = []string{"Check the values passed on the command line or in the config file"}
	case notify.CategoryPlatform:
		cliErr.Remediation = []string{
			fmt.Sprintf("%s notifications need a supported OS facility on %s", ne.Kind, notify.Platform()),
			"On Linux, run inside a desktop session (DISPLAY, WAYLAND_DISPLAY or a D-Bus session)",
		}
	case notify.CategoryNetwork:
		cliErr.Remediation = []string{
			"Check network connectivity and proxy settings",
			"Raise http_timeout if the service is slow to answer",
		}
	case notify.CategoryHTTPStatus:
		cliErr.Remediation = statusRemediation(ne.Kind, ne.StatusCode)
	}
	return cliErr
}

func statusRemediation(kind notify.Kind, status int) []string {
	switch {
	case status == 401 || status == 403:
		if kind == notify.KindLine {
			return []string{"The LINE Notify token was rejected; issue a new one"}
		}
		return []string{"The webhook rejected the request; check that it has not been revoked"}
	case status == 404:
		return []string{"The webhook URL does not exist; copy it again from the service settings"}
	case status == 429:
		return []string{"The service is rate limiting requests; try again later"}
	case status >= 500:
		return []string{"The service reported an internal error; try again later"}
	default:
		return []string{fmt.Sprintf("The %s API answered with status %d", kind, status)}
	}
}
