// Package notify_test provides mock collaborators for notification tests.
// Related: internal/notify/sender.go, internal/notify/http.go
// Tags: notify, mocks, testing

package notify

import (
	"context"
	"net/http"
	"sync"
)

// MockSoundPlayer records system alert calls and can fail on a given call.
type MockSoundPlayer struct {
	mu sync.Mutex

	// Configuration
	Err    error
	FailOn int // 1-based call number that returns Err; 0 means every call

	// Call tracking
	Calls int
}

// NewMockSoundPlayer creates a sound player that always succeeds
func NewMockSoundPlayer() *MockSoundPlayer {
	return &MockSoundPlayer{}
}

// WithError configures the mock to return err
func (m *MockSoundPlayer) WithError(err error) *MockSoundPlayer {
	m.Err = err
	return m
}

// WithFailOn configures the call number that fails
func (m *MockSoundPlayer) WithFailOn(n int) *MockSoundPlayer {
	m.FailOn = n
	return m
}

// PlaySystemAlert records the call and returns the configured error
func (m *MockSoundPlayer) PlaySystemAlert() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls++
	if m.Err != nil && (m.FailOn == 0 || m.FailOn == m.Calls) {
		return m.Err
	}
	return nil
}

// CallCount returns the number of PlaySystemAlert calls
func (m *MockSoundPlayer) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Calls
}

// MockDisplayer records shown payloads
type MockDisplayer struct {
	mu sync.Mutex

	// Configuration
	Err error

	// Call tracking
	Shown []DesktopPayload
}

// NewMockDisplayer creates a displayer that always succeeds
func NewMockDisplayer() *MockDisplayer {
	return &MockDisplayer{Shown: make([]DesktopPayload, 0)}
}

// WithError configures the mock to return err from Show
func (m *MockDisplayer) WithError(err error) *MockDisplayer {
	m.Err = err
	return m
}

// Show records the payload and returns the configured error
func (m *MockDisplayer) Show(p DesktopPayload) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Shown = append(m.Shown, p)
	return m.Err
}

// CallCount returns the number of Show calls
func (m *MockDisplayer) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Shown)
}

// PostCall is one recorded Post invocation
type PostCall struct {
	URL    string
	Header http.Header
	Body   []byte
}

// MockPoster records requests and replies with a canned response
type MockPoster struct {
	mu sync.Mutex

	// Configuration
	Response *Response
	Err      error

	// Call tracking
	Calls []PostCall
}

// NewMockPoster creates a poster that answers 200 with an empty body
func NewMockPoster() *MockPoster {
	return &MockPoster{
		Response: &Response{StatusCode: http.StatusOK},
		Calls:    make([]PostCall, 0),
	}
}

// WithStatus configures the status code and body of the reply
func (m *MockPoster) WithStatus(code int, body string) *MockPoster {
	m.Response = &Response{StatusCode: code, Body: []byte(body)}
	return m
}

// WithError configures the mock to fail before any response
func (m *MockPoster) WithError(err error) *MockPoster {
	m.Err = err
	return m
}

// Post records the request and returns the configured reply
func (m *MockPoster) Post(_ context.Context, url string, header http.Header, body []byte) (*Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls = append(m.Calls, PostCall{URL: url, Header: header.Clone(), Body: append([]byte(nil), body...)})
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Response, nil
}

// CallCount returns the number of Post calls
func (m *MockPoster) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}

// probeOK is a DesktopProbe that always reports support
func probeOK() error { return nil }

// countingProbe returns a probe that counts invocations and returns err
func countingProbe(err error) (DesktopProbe, *int) {
	var calls int
	return func() error {
		calls++
		return err
	}, &calls
}
