//go:build darwin

package notify

import (
	"fmt"
	"os/exec"
	"strings"
)

// osascriptDisplayer implements Displayer for macOS using osascript, which
// unlike beeep supports a subtitle and a named sound.
type osascriptDisplayer struct{}

func newPlatformDisplayer() Displayer {
	return osascriptDisplayer{}
}

// Show runs `osascript -e 'display notification ...'`
func (osascriptDisplayer) Show(p DesktopPayload) error {
	cmd := exec.Command("osascript", "-e", appleScript(p))
	out, err := cmd.CombinedOutput()
	if err != nil {
		if msg := strings.TrimSpace(string(out)); msg != "" {
			return fmt.Errorf("osascript: %s: %w", msg, err)
		}
		return fmt.Errorf("osascript: %w", err)
	}
	return nil
}
