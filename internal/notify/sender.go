package notify

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"unicode"

	"github.com/gen2brain/beeep"
)

// SoundPlayer plays the system alert sound once per call
type SoundPlayer interface {
	PlaySystemAlert() error
}

// Displayer shows a notification through the OS notification facility
type Displayer interface {
	Show(p DesktopPayload) error
}

// DesktopProbe reports whether desktop notifications can be shown on this
// host. It returns nil when supported.
type DesktopProbe func() error

// NewSoundPlayer returns the beeep-backed system sound player
func NewSoundPlayer() SoundPlayer {
	return beeepSound{}
}

// NewDisplayer returns the desktop facility for the current OS
func NewDisplayer() Displayer {
	return newPlatformDisplayer()
}

// Platform returns the current operating system name
func Platform() string {
	return runtime.GOOS
}

// beeepSound plays the default beeep tone
type beeepSound struct{}

func (beeepSound) PlaySystemAlert() error {
	return beeep.Beep(beeep.DefaultFreq, beeep.DefaultDuration)
}

// ProbeDesktop checks the running host for a notification facility
func ProbeDesktop() error {
	return probeDesktop(runtime.GOOS, os.Getenv, exec.LookPath)
}

// probeDesktop is ProbeDesktop with its environment injected
func probeDesktop(goos string, getenv func(string) string, lookPath func(string) (string, error)) error {
	switch goos {
	case "darwin":
		if _, err := lookPath("osascript"); err != nil {
			return fmt.Errorf("osascript not found: %w", err)
		}
		return nil
	case "linux", "freebsd", "openbsd", "netbsd":
		if !hasDisplay(getenv) {
			return fmt.Errorf("no display or D-Bus session available on %s", goos)
		}
		return nil
	case "windows":
		return nil
	default:
		return fmt.Errorf("%s is not a supported platform", goos)
	}
}

// hasDisplay checks if a display or session bus is available
func hasDisplay(getenv func(string) string) bool {
	for _, v := range []string{"DISPLAY", "WAYLAND_DISPLAY", "DBUS_SESSION_BUS_ADDRESS"} {
		if getenv(v) != "" {
			return true
		}
	}
	return false
}

// joinTitle merges title and subtitle for facilities without a subtitle field
func joinTitle(title, subtitle string) string {
	switch {
	case title != "" && subtitle != "":
		return title + " - " + subtitle
	case title != "":
		return title
	default:
		return subtitle
	}
}

// defaultMacOSSound is played by osascript when sound is requested
const defaultMacOSSound = "Glass"

// appleScript builds the `display notification` statement for osascript
func appleScript(p DesktopPayload) string {
	parts := []string{"display notification " + appleScriptString(p.Message)}
	if p.Title != "" {
		parts = append(parts, "with title "+appleScriptString(p.Title))
	}
	if p.Subtitle != "" {
		parts = append(parts, "subtitle "+appleScriptString(p.Subtitle))
	}
	if p.PlaySound {
		parts = append(parts, "sound name "+appleScriptString(defaultMacOSSound))
	}
	return strings.Join(parts, " ")
}

// appleScriptString quotes s as an AppleScript string literal. AppleScript
// only knows the \\, \", \n, \r and \t escapes, so other control
// characters are dropped.
func appleScriptString(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch {
		case r == '\\' || r == '"':
			b.WriteByte('\\')
			b.WriteRune(r)
		case r == '\n':
			b.WriteString(`\n`)
		case r == '\r':
			b.WriteString(`\r`)
		case r == '\t':
			b.WriteString(`\t`)
		case unicode.IsControl(r):
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}
