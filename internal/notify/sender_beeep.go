//go:build !darwin

package notify

import "github.com/gen2brain/beeep"

// beeepDisplayer implements Displayer with beeep (D-Bus/notify-send on Linux,
// toast notifications on Windows). Neither has a subtitle field, so title and
// subtitle are joined.
type beeepDisplayer struct{}

func newPlatformDisplayer() Displayer {
	return beeepDisplayer{}
}

// Show uses beeep.Alert when sound is requested and beeep.Notify otherwise
func (beeepDisplayer) Show(p DesktopPayload) error {
	title := joinTitle(p.Title, p.Subtitle)
	if p.PlaySound {
		return beeep.Alert(title, p.Message, p.Icon)
	}
	return beeep.Notify(title, p.Message, p.Icon)
}
