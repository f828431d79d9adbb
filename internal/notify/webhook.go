package notify

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/ariel-frischer/notificator/internal/logging"
)

type slackBody struct {
	Text string `json:"text"`
}

type discordBody struct {
	Content string `json:"content"`
}

// webhook is the shared implementation of webhook-authenticated services.
// Only the JSON body differs between them.
type webhook struct {
	kind    Kind
	payload WebhookPayload
	poster  Poster
	body    func(message string) any
}

func newWebhook(kind Kind, message, url string, body func(string) any, opts []Option) webhook {
	s := newSettings(opts)
	return webhook{
		kind:    kind,
		payload: WebhookPayload{Message: message, URL: url},
		poster:  s.poster,
		body:    body,
	}
}

func (w *webhook) notify(ctx context.Context) error {
	if err := validatePayload(w.kind, w.payload); err != nil {
		return err
	}

	data, err := json.Marshal(w.body(w.payload.Message))
	if err != nil {
		return newError(w.kind, CategoryInvalid, "encoding payload", err)
	}

	header := http.Header{}
	header.Set("Content-Type", "application/json")
	return post(ctx, w.kind, w.poster, w.payload.URL, header, data)
}

// Slack posts {"text": message} to an incoming webhook URL
type Slack struct {
	webhook
}

// NewSlack creates a Slack notification for the incoming webhook at url
func NewSlack(message, url string, opts ...Option) *Slack {
	return &Slack{newWebhook(KindSlack, message, url, func(m string) any {
		return slackBody{Text: m}
	}, opts)}
}

// Kind returns KindSlack
func (s *Slack) Kind() Kind { return KindSlack }

// Payload returns a copy of the webhook parameters
func (s *Slack) Payload() WebhookPayload { return s.payload }

// Target returns the webhook URL with its secret path masked
func (s *Slack) Target() string { return logging.RedactURL(s.payload.URL) }

// Notify sends one POST to the webhook
func (s *Slack) Notify(ctx context.Context) error { return s.notify(ctx) }

// Discord posts {"content": message} to a Discord webhook URL
type Discord struct {
	webhook
}

// NewDiscord creates a Discord notification for the webhook at url
func NewDiscord(message, url string, opts ...Option) *Discord {
	return &Discord{newWebhook(KindDiscord, message, url, func(m string) any {
		return discordBody{Content: m}
	}, opts)}
}

// Kind returns KindDiscord
func (d *Discord) Kind() Kind { return KindDiscord }

// Payload returns a copy of the webhook parameters
func (d *Discord) Payload() WebhookPayload { return d.payload }

// Target returns the webhook URL with its secret path masked
func (d *Discord) Target() string { return logging.RedactURL(d.payload.URL) }

// Notify sends one POST to the webhook
func (d *Discord) Notify(ctx context.Context) error { return d.notify(ctx) }
