// Package testutil provides helpers for exercising the HTTP stack in tests.
package testutil

import (
	"bytes"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap/zaptest"

	"thumbforge.studio/site/internal/httpserver"
)

// ServerOption customises the HTTP server configuration for tests.
type ServerOption func(*httpserver.Config)

// WithClock fixes the clock used for rendering.
func WithClock(clock func() time.Time) ServerOption {
	return func(cfg *httpserver.Config) {
		cfg.Clock = clock
	}
}

// WithBaseURL sets the canonical site URL.
func WithBaseURL(url string) ServerOption {
	return func(cfg *httpserver.Config) {
		cfg.BaseURL = url
	}
}

// NewServer constructs an httptest server running the site HTTP stack with
// a test logger and the embedded copy deck.
func NewServer(t testing.TB, opts ...ServerOption) *httptest.Server {
	t.Helper()

	cfg := httpserver.Config{
		Address: ":0",
		Logger:  zaptest.NewLogger(t),
		BaseURL: "https://thumbforge.studio",
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	srv, err := httpserver.New(cfg)
	if err != nil {
		t.Fatalf("new server: %v", err)
	}
	ts := httptest.NewServer(srv.Handler)
	t.Cleanup(ts.Close)
	return ts
}

// ParseHTML loads a rendered page into a goquery document, failing the test
// on malformed markup.
func ParseHTML(t testing.TB, page []byte) *goquery.Document {
	t.Helper()

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(page))
	if err != nil {
		t.Fatalf("testutil: parse page: %v", err)
	}
	return doc
}
