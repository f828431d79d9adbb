package notify

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordedRequest is what a test server saw
type recordedRequest struct {
	method      string
	contentType string
	userAgent   string
	body        string
}

// newRecordingServer answers every request with status and body and
// records the last request it received
func newRecordingServer(t *testing.T, status int, body string) (*httptest.Server, *recordedRequest) {
	t.Helper()

	rec := &recordedRequest{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		rec.method = r.Method
		rec.contentType = r.Header.Get("Content-Type")
		rec.userAgent = r.Header.Get("User-Agent")
		rec.body = string(data)
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, rec
}

func TestSlackNotify(t *testing.T) {
	t.Parallel()

	srv, rec := newRecordingServer(t, http.StatusOK, "ok")

	n := NewSlack("hello", srv.URL+"/services/T000/B000/XXXX", WithHTTPClient(srv.Client()))
	require.NoError(t, n.Notify(context.Background()))

	assert.Equal(t, http.MethodPost, rec.method)
	assert.Equal(t, "application/json", rec.contentType)
	assert.JSONEq(t, `{"text":"hello"}`, rec.body)
	assert.True(t, strings.HasPrefix(rec.userAgent, "notificator/"))
}

func TestDiscordNotify(t *testing.T) {
	t.Parallel()

	srv, rec := newRecordingServer(t, http.StatusNoContent, "")

	n := NewDiscord("deploy done", srv.URL+"/api/webhooks/1/abc", WithHTTPClient(srv.Client()))
	require.NoError(t, n.Notify(context.Background()))

	assert.Equal(t, "application/json", rec.contentType)
	assert.JSONEq(t, `{"content":"deploy done"}`, rec.body)
}

func TestWebhookNotifyErrors(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		build        func(url string, opts ...Option) Notification
		status       int
		body         string
		wantKind     Kind
		wantCategory Category
		wantStatus   int
		wantMsg      string
	}{
		"slack rejects the payload": {
			build:        func(u string, o ...Option) Notification { return NewSlack("hi", u, o...) },
			status:       http.StatusBadRequest,
			body:         "invalid_payload",
			wantKind:     KindSlack,
			wantCategory: CategoryHTTPStatus,
			wantStatus:   http.StatusBadRequest,
			wantMsg:      "unexpected status 400: invalid_payload",
		},
		"discord webhook deleted": {
			build:        func(u string, o ...Option) Notification { return NewDiscord("hi", u, o...) },
			status:       http.StatusNotFound,
			body:         `{"message": "Unknown Webhook", "code": 10015}`,
			wantKind:     KindDiscord,
			wantCategory: CategoryHTTPStatus,
			wantStatus:   http.StatusNotFound,
			wantMsg:      "Unknown Webhook",
		},
		"server error": {
			build:        func(u string, o ...Option) Notification { return NewSlack("hi", u, o...) },
			status:       http.StatusBadGateway,
			wantKind:     KindSlack,
			wantCategory: CategoryHTTPStatus,
			wantStatus:   http.StatusBadGateway,
			wantMsg:      "unexpected status 502",
		},
		"found is not success": {
			build:        func(u string, o ...Option) Notification { return NewSlack("hi", u, o...) },
			status:       http.StatusFound,
			wantKind:     KindSlack,
			wantCategory: CategoryHTTPStatus,
			wantStatus:   http.StatusFound,
			wantMsg:      "unexpected status 302",
		},
		"temporary redirect is not success": {
			build:        func(u string, o ...Option) Notification { return NewDiscord("hi", u, o...) },
			status:       http.StatusTemporaryRedirect,
			wantKind:     KindDiscord,
			wantCategory: CategoryHTTPStatus,
			wantStatus:   http.StatusTemporaryRedirect,
			wantMsg:      "unexpected status 307",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			srv, _ := newRecordingServer(t, tt.status, tt.body)
			err := tt.build(srv.URL, WithHTTPClient(srv.Client())).Notify(context.Background())

			var ne *NotificationError
			require.ErrorAs(t, err, &ne)
			assert.Equal(t, tt.wantKind, ne.Kind)
			assert.Equal(t, tt.wantCategory, ne.Category)
			assert.Equal(t, tt.wantStatus, ne.StatusCode)
			assert.Contains(t, ne.Error(), tt.wantMsg)
		})
	}
}

func TestWebhookValidation(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		url     string
		wantMsg string
	}{
		"missing url": {
			url:     "",
			wantMsg: "url is required",
		},
		"not a url": {
			url:     "hooks.slack.com/services/x",
			wantMsg: "url must be an http(s) URL",
		},
		"wrong scheme": {
			url:     "ftp://example.com/hook",
			wantMsg: "url must be an http(s) URL",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			poster := NewMockPoster()
			for _, n := range []Notification{
				NewSlack("hi", tt.url, WithPoster(poster)),
				NewDiscord("hi", tt.url, WithPoster(poster)),
			} {
				err := n.Notify(context.Background())

				var ne *NotificationError
				require.ErrorAs(t, err, &ne)
				assert.Equal(t, CategoryInvalid, ne.Category)
				assert.Contains(t, ne.Message, tt.wantMsg)
			}
			assert.Zero(t, poster.CallCount(), "invalid payloads must not reach the network")
		})
	}
}

func TestWebhookNetworkError(t *testing.T) {
	t.Parallel()

	errDial := errors.New("dial tcp: connection refused")
	poster := NewMockPoster().WithError(errDial)

	err := NewSlack("hi", "https://hooks.slack.com/services/T/B/X", WithPoster(poster)).
		Notify(context.Background())

	var ne *NotificationError
	require.ErrorAs(t, err, &ne)
	assert.Equal(t, CategoryNetwork, ne.Category)
	assert.Zero(t, ne.StatusCode)
	assert.ErrorIs(t, err, errDial)
	assert.Equal(t, 1, poster.CallCount())
}

func TestWebhookEmptyMessage(t *testing.T) {
	t.Parallel()

	poster := NewMockPoster()
	require.NoError(t, NewSlack("", "https://hooks.slack.com/services/T/B/X", WithPoster(poster)).
		Notify(context.Background()))

	require.Equal(t, 1, poster.CallCount())
	assert.JSONEq(t, `{"text":""}`, string(poster.Calls[0].Body))
}

func TestWebhookTargetRedacted(t *testing.T) {
	t.Parallel()

	s := NewSlack("hi", "https://hooks.slack.com/services/T000/B000/secret")
	d := NewDiscord("hi", "https://discord.com/api/webhooks/123/secret")

	assert.Equal(t, KindSlack, s.Kind())
	assert.Equal(t, KindDiscord, d.Kind())
	assert.NotContains(t, s.Target(), "secret")
	assert.NotContains(t, d.Target(), "secret")
	assert.Equal(t, "https://hooks.slack.com/services/T000/B000/secret", s.Payload().URL)
}

func TestPostTruncatesLongBodies(t *testing.T) {
	t.Parallel()

	poster := NewMockPoster().WithStatus(http.StatusInternalServerError, strings.Repeat("x", 1000))
	err := NewDiscord("hi", "https://discord.com/api/webhooks/1/a", WithPoster(poster)).
		Notify(context.Background())

	var ne *NotificationError
	require.ErrorAs(t, err, &ne)
	assert.Less(t, len(ne.Message), 300)
	assert.True(t, strings.HasSuffix(ne.Message, "..."))
}

func TestWebhookRedirectsAreNotFollowed(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		status int
	}{
		"moved permanently":  {status: http.StatusMovedPermanently},
		"found":              {status: http.StatusFound},
		"see other":          {status: http.StatusSeeOther},
		"temporary redirect": {status: http.StatusTemporaryRedirect},
		"permanent redirect": {status: http.StatusPermanentRedirect},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			var hooks, elsewhere atomic.Int32
			mux := http.NewServeMux()
			mux.HandleFunc("/hook", func(w http.ResponseWriter, r *http.Request) {
				hooks.Add(1)
				http.Redirect(w, r, "/elsewhere", tt.status)
			})
			mux.HandleFunc("/elsewhere", func(w http.ResponseWriter, r *http.Request) {
				elsewhere.Add(1)
				w.WriteHeader(http.StatusOK)
			})
			srv := httptest.NewServer(mux)
			t.Cleanup(srv.Close)

			err := NewSlack("hello", srv.URL+"/hook", WithHTTPClient(srv.Client())).
				Notify(context.Background())

			var ne *NotificationError
			require.ErrorAs(t, err, &ne)
			assert.Equal(t, CategoryHTTPStatus, ne.Category)
			assert.Equal(t, tt.status, ne.StatusCode)
			assert.Equal(t, int32(1), hooks.Load())
			assert.Zero(t, elsewhere.Load(), "the redirect target must not be requested")
		})
	}
}

func TestHTTPPosterKeepsCallerClient(t *testing.T) {
	t.Parallel()

	client := &http.Client{}
	NewHTTPPoster(client)
	assert.Nil(t, client.CheckRedirect)
}

func TestPostStatusBoundaries(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		status  int
		wantErr bool
	}{
		"199": {status: 199, wantErr: true},
		"200": {status: 200},
		"299": {status: 299},
		"300": {status: 300, wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			poster := NewMockPoster().WithStatus(tt.status, "")
			err := NewDiscord("hi", "https://discord.com/api/webhooks/1/a", WithPoster(poster)).
				Notify(context.Background())
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}

			var ne *NotificationError
			require.ErrorAs(t, err, &ne)
			assert.Equal(t, CategoryHTTPStatus, ne.Category)
			assert.Equal(t, tt.status, ne.StatusCode)
		})
	}
}

func TestNetworkErrorHidesWebhookPath(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.NotFoundHandler())
	hook := srv.URL + "/custom/s3cr3t-path"
	srv.Close()

	err := NewSlack("hi", hook).Notify(context.Background())

	var ne *NotificationError
	require.ErrorAs(t, err, &ne)
	assert.Equal(t, CategoryNetwork, ne.Category)
	assert.NotContains(t, err.Error(), "s3cr3t-path")

	var uerr *url.Error
	require.ErrorAs(t, err, &uerr)
	assert.Equal(t, srv.URL+"/****", uerr.URL)
}
