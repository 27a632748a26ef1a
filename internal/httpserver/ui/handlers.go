// Package ui renders the public pages.
package ui

import (
	"bytes"
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"

	"thumbforge.studio/site/internal/content"
	"thumbforge.studio/site/internal/observability"
	"thumbforge.studio/site/internal/views/landing"
)

// Dependencies collects what the page handlers need.
type Dependencies struct {
	Deck content.Deck
	Site landing.Site
	// Clock defaults to time.Now.
	Clock func() time.Time
}

// Handlers exposes the landing page and health endpoints.
type Handlers struct {
	deck    content.Deck
	site    landing.Site
	clock   func() time.Time
	started time.Time
}

// NewHandlers wires the handler set.
func NewHandlers(deps Dependencies) *Handlers {
	clock := deps.Clock
	if clock == nil {
		clock = time.Now
	}
	return &Handlers{
		deck:    deps.Deck,
		site:    deps.Site,
		clock:   clock,
		started: clock(),
	}
}

// Landing renders the single marketing page. The footer year is taken from
// the clock on every request.
func (h *Handlers) Landing(w http.ResponseWriter, r *http.Request) {
	data := landing.BuildPageData(h.deck, h.site, h.clock())

	var buf bytes.Buffer
	if err := landing.Page(data).Render(&buf); err != nil {
		observability.FromContext(r.Context()).Error("render landing page", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	if r.Method == http.MethodHead {
		return
	}
	_, _ = buf.WriteTo(w)
}

// Healthz responds with a simple status payload for monitoring.
func (h *Handlers) Healthz(w http.ResponseWriter, r *http.Request) {
	now := h.clock()
	payload := map[string]any{
		"status":    "ok",
		"uptime":    now.Sub(h.started).String(),
		"timestamp": now.UTC().Format(time.RFC3339),
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		observability.FromContext(r.Context()).Warn("encode health payload", zap.Error(err))
	}
}
