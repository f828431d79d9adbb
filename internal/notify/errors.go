package notify

import (
	"errors"
	"strings"
)

// Category classifies the cause of a NotificationError
type Category string

const (
	// CategoryInvalid means the payload failed validation; nothing was sent
	CategoryInvalid Category = "invalid"

	// CategoryPlatform means the OS facility is missing or failed
	CategoryPlatform Category = "platform"

	// CategoryNetwork means the request never produced an HTTP response
	CategoryNetwork Category = "network"

	// CategoryHTTPStatus means the service answered with a non-2xx status
	CategoryHTTPStatus Category = "http_status"
)

// NotificationError is the only error type returned by Notify.
// Callers match it once and use Category for detail.
type NotificationError struct {
	Kind       Kind
	Category   Category
	StatusCode int // set for CategoryHTTPStatus only
	Message    string
	Err        error
}

func (e *NotificationError) Error() string {
	var b strings.Builder
	if e.Kind != "" {
		b.WriteString(string(e.Kind))
		b.WriteString(": ")
	}
	b.WriteString(e.Message)
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *NotificationError) Unwrap() error {
	return e.Err
}

// newError builds a NotificationError for kind
func newError(kind Kind, category Category, message string, err error) *NotificationError {
	return &NotificationError{
		Kind:     kind,
		Category: category,
		Message:  message,
		Err:      err,
	}
}

// IsNotificationError reports whether err is or wraps a *NotificationError
func IsNotificationError(err error) bool {
	var ne *NotificationError
	return errors.As(err, &ne)
}

// CategoryOf returns the category of the wrapped *NotificationError, or an
// empty Category if err is not one.
func CategoryOf(err error) Category {
	var ne *NotificationError
	if errors.As(err, &ne) {
		return ne.Category
	}
	return ""
}
