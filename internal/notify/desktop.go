package notify

import (
	"context"
	"fmt"
)

// Desktop shows a notification in the OS notification center
type Desktop struct {
	payload   DesktopPayload
	displayer Displayer
	probe     DesktopProbe
}

// NewDesktop creates a desktop notification. An empty message is passed to
// the OS facility as is.
func NewDesktop(p DesktopPayload, opts ...Option) *Desktop {
	s := newSettings(opts)
	return &Desktop{
		payload:   p,
		displayer: s.displayer,
		probe:     s.probe,
	}
}

// Kind returns KindDesktop
func (d *Desktop) Kind() Kind { return KindDesktop }

// Payload returns a copy of the desktop parameters
func (d *Desktop) Payload() DesktopPayload { return d.payload }

// Target describes the notification for logs
func (d *Desktop) Target() string {
	return fmt.Sprintf("%s notification center", Platform())
}

// Notify probes the platform and then hands the payload to the displayer.
// The probe result is never cached.
func (d *Desktop) Notify(ctx context.Context) error {
	if err := validatePayload(KindDesktop, d.payload); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return newError(KindDesktop, CategoryPlatform, "not shown", err)
	}
	if err := d.probe(); err != nil {
		return newError(KindDesktop, CategoryPlatform, "desktop notifications unsupported", err)
	}
	if err := d.displayer.Show(d.payload); err != nil {
		return newError(KindDesktop, CategoryPlatform, "notification facility failed", err)
	}
	return nil
}
