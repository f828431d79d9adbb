package notify

import (
	"context"
	"net/http"
	"net/url"

	"github.com/ariel-frischer/notificator/internal/logging"
)

// Line sends a message through LINE Notify using a personal access token
type Line struct {
	payload  TokenPayload
	poster   Poster
	endpoint string
}

// NewLine creates a LINE Notify notification authenticated by token
func NewLine(message, token string, opts ...Option) *Line {
	s := newSettings(opts)
	return &Line{
		payload:  TokenPayload{Message: message, Token: token},
		poster:   s.poster,
		endpoint: s.lineEndpoint,
	}
}

// Kind returns KindLine
func (l *Line) Kind() Kind { return KindLine }

// Payload returns a copy of the token parameters
func (l *Line) Payload() TokenPayload { return l.payload }

// Target names the endpoint and a masked token
func (l *Line) Target() string {
	return l.endpoint + " (token " + logging.RedactToken(l.payload.Token) + ")"
}

// Notify posts message=<message> as a form with the token as a bearer credential
func (l *Line) Notify(ctx context.Context) error {
	if err := validatePayload(KindLine, l.payload); err != nil {
		return err
	}

	form := url.Values{}
	form.Set("message", l.payload.Message)

	header := http.Header{}
	header.Set("Authorization", "Bearer "+l.payload.Token)
	header.Set("Content-Type", "application/x-www-form-urlencoded")
	return post(ctx, KindLine, l.poster, l.endpoint, header, []byte(form.Encode()))
}
