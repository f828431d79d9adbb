package notify

import (
	"context"
	"fmt"
	"strings"
)

// Kind identifies a notification channel
type Kind string

const (
	KindBeep    Kind = "beep"    // system bell
	KindDesktop Kind = "desktop" // OS notification center
	KindSlack   Kind = "slack"   // Slack incoming webhook
	KindDiscord Kind = "discord" // Discord webhook
	KindLine    Kind = "line"    // LINE Notify, bearer token
)

// Kinds returns every supported kind in display order
func Kinds() []Kind {
	return []Kind{KindBeep, KindDesktop, KindSlack, KindDiscord, KindLine}
}

// ParseKind converts a string to a Kind. Matching is case-insensitive and
// accepts "center" as the historical name of the desktop kind.
func ParseKind(s string) (Kind, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	if v == "center" {
		return KindDesktop, nil
	}
	for _, k := range Kinds() {
		if string(k) == v {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown notification kind %q", s)
}

// Notification is a single notification ready to be sent.
//
// Implementations are immutable once constructed. Notify may be called any
// number of times; each call repeats the side effect.
type Notification interface {
	// Kind reports which channel the notification targets
	Kind() Kind

	// Notify performs the side effect. It returns nil on success and a
	// *NotificationError on any failure.
	Notify(ctx context.Context) error
}

// BeepPayload holds the parameters of a beep notification
type BeepPayload struct {
	// Times is the number of beeps to play
	Times int `json:"times" validate:"min=1"`
}

// DesktopPayload holds the parameters of a desktop notification
type DesktopPayload struct {
	Message   string `json:"message"`
	Title     string `json:"title,omitempty"`
	Subtitle  string `json:"subtitle,omitempty"`
	Icon      string `json:"icon,omitempty"`
	PlaySound bool   `json:"play_sound"`
}

// WebhookPayload holds the parameters shared by webhook-authenticated services
type WebhookPayload struct {
	Message string `json:"message"`
	URL     string `json:"url" validate:"required,http_url"`
}

// TokenPayload holds the parameters shared by token-authenticated services
type TokenPayload struct {
	Message string `json:"message"`
	Token   string `json:"token" validate:"required"`
}

// Params is a flat parameter set from which any kind can be built.
// Fields that do not apply to the requested kind are ignored.
type Params struct {
	Times     int
	Message   string
	Title     string
	Subtitle  string
	Icon      string
	PlaySound bool
	URL       string
	Token     string
}

// New builds the notification for kind from params.
// Like the typed constructors it performs no I/O.
func New(kind Kind, params Params, opts ...Option) (Notification, error) {
	switch kind {
	case KindBeep:
		return NewBeep(params.Times, opts...), nil
	case KindDesktop:
		return NewDesktop(DesktopPayload{
			Message:   params.Message,
			Title:     params.Title,
			Subtitle:  params.Subtitle,
			Icon:      params.Icon,
			PlaySound: params.PlaySound,
		}, opts...), nil
	case KindSlack:
		return NewSlack(params.Message, params.URL, opts...), nil
	case KindDiscord:
		return NewDiscord(params.Message, params.URL, opts...), nil
	case KindLine:
		return NewLine(params.Message, params.Token, opts...), nil
	default:
		return nil, fmt.Errorf("unknown notification kind %q", kind)
	}
}
