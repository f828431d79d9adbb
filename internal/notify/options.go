package notify

import (
	"net/http"
	"time"
)

const (
	// DefaultBeepInterval is the pause between consecutive beeps
	DefaultBeepInterval = 500 * time.Millisecond

	// DefaultLineEndpoint is the LINE Notify API endpoint
	DefaultLineEndpoint = "https://notify-api.line.me/api/notify"
)

// settings holds the collaborators a notification talks to
type settings struct {
	sound        SoundPlayer
	displayer    Displayer
	probe        DesktopProbe
	poster       Poster
	beepInterval time.Duration
	lineEndpoint string
}

func defaultSettings() settings {
	return settings{
		sound:        NewSoundPlayer(),
		displayer:    NewDisplayer(),
		probe:        ProbeDesktop,
		poster:       NewHTTPPoster(nil),
		beepInterval: DefaultBeepInterval,
		lineEndpoint: DefaultLineEndpoint,
	}
}

func newSettings(opts []Option) settings {
	s := defaultSettings()
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// Option replaces one of the collaborators used by a notification
type Option func(*settings)

// WithSoundPlayer sets the facility used by beep notifications
func WithSoundPlayer(p SoundPlayer) Option {
	return func(s *settings) {
		if p != nil {
			s.sound = p
		}
	}
}

// WithDisplayer sets the facility used by desktop notifications
func WithDisplayer(d Displayer) Option {
	return func(s *settings) {
		if d != nil {
			s.displayer = d
		}
	}
}

// WithDesktopProbe sets the capability probe run before each desktop notification
func WithDesktopProbe(p DesktopProbe) Option {
	return func(s *settings) {
		if p != nil {
			s.probe = p
		}
	}
}

// WithPoster sets the HTTP facility used by Slack, Discord and LINE
func WithPoster(p Poster) Option {
	return func(s *settings) {
		if p != nil {
			s.poster = p
		}
	}
}

// WithHTTPClient is a shorthand for WithPoster(NewHTTPPoster(client))
func WithHTTPClient(client *http.Client) Option {
	return WithPoster(NewHTTPPoster(client))
}

// WithBeepInterval sets the pause between beeps. Zero disables the pause.
func WithBeepInterval(d time.Duration) Option {
	return func(s *settings) {
		if d >= 0 {
			s.beepInterval = d
		}
	}
}

// WithLineEndpoint overrides the LINE Notify endpoint
func WithLineEndpoint(url string) Option {
	return func(s *settings) {
		if url != "" {
			s.lineEndpoint = url
		}
	}
}
