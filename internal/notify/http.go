package notify

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/ariel-frischer/notificator/internal/build"
	"github.com/ariel-frischer/notificator/internal/logging"
)

// maxResponseBody caps how much of a response is kept for error messages
const maxResponseBody = 64 << 10

// maxErrorBody caps how much of a response body appears in an error message
const maxErrorBody = 256

// Response is the part of an HTTP response a notification inspects
type Response struct {
	StatusCode int
	Body       []byte
}

// Poster sends a single POST request. Implementations must not retry.
type Poster interface {
	Post(ctx context.Context, url string, header http.Header, body []byte) (*Response, error)
}

// HTTPPoster implements Poster with an *http.Client. Timeouts are whatever
// the client is configured with.
type HTTPPoster struct {
	client *http.Client
}

// NewHTTPPoster wraps a copy of client that never follows redirects, so a
// 3xx answer is reported as a status instead of becoming a GET elsewhere.
// nil means http.DefaultClient.
func NewHTTPPoster(client *http.Client) *HTTPPoster {
	if client == nil {
		client = http.DefaultClient
	}
	c := *client
	c.CheckRedirect = func(*http.Request, []*http.Request) error {
		return http.ErrUseLastResponse
	}
	return &HTTPPoster{client: &c}
}

// Post issues one POST request and reads at most maxResponseBody bytes of the reply
func (p *HTTPPoster) Post(ctx context.Context, url string, header http.Header, body []byte) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	req.Header.Set("User-Agent", "notificator/"+build.Version)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, redactURLError(err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}
	return &Response{StatusCode: resp.StatusCode, Body: data}, nil
}

// post sends body to url and maps the outcome onto a NotificationError
func post(ctx context.Context, kind Kind, poster Poster, url string, header http.Header, body []byte) error {
	resp, err := poster.Post(ctx, url, header, body)
	if err != nil {
		return newError(kind, CategoryNetwork, "request failed", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := fmt.Sprintf("unexpected status %d", resp.StatusCode)
		if snippet := truncate(strings.TrimSpace(string(resp.Body)), maxErrorBody); snippet != "" {
			msg += ": " + snippet
		}
		ne := newError(kind, CategoryHTTPStatus, msg, nil)
		ne.StatusCode = resp.StatusCode
		return ne
	}
	return nil
}

// redactURLError masks the request URL carried by a *url.Error; the path of
// a webhook URL is its secret.
func redactURLError(err error) error {
	var uerr *url.Error
	if errors.As(err, &uerr) {
		uerr.URL = logging.RedactURL(uerr.URL)
	}
	return err
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
