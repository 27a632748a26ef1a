// Package httpserver assembles the router and HTTP server for the site.
package httpserver

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"thumbforge.studio/site/internal/content"
	custommw "thumbforge.studio/site/internal/httpserver/middleware"
	"thumbforge.studio/site/internal/httpserver/ui"
	"thumbforge.studio/site/internal/observability"
	"thumbforge.studio/site/internal/views/landing"
	"thumbforge.studio/site/public"
)

// AssetsPath is where the embedded static assets are mounted.
const AssetsPath = "/assets"

// Config holds runtime options for the HTTP server.
type Config struct {
	Address           string
	Logger            *zap.Logger
	Deck              content.Deck
	BaseURL           string
	SceneURL          string
	Clock             func() time.Time
	ReadHeaderTimeout time.Duration
	ReadTimeout       time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
	RequestTimeout    time.Duration
}

// New constructs the HTTP server with its middleware stack and embedded assets.
// A zero Deck falls back to the embedded copy deck.
func New(cfg Config) (*http.Server, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	deck := cfg.Deck
	if deck.Brand == "" {
		d, err := content.Default()
		if err != nil {
			return nil, fmt.Errorf("httpserver: load content: %w", err)
		}
		deck = d
	}

	assetsFS, err := public.AssetsFS()
	if err != nil {
		return nil, fmt.Errorf("httpserver: embed assets: %w", err)
	}
	assets, err := custommw.AssetsWithCache(assetsFS, AssetsPath)
	if err != nil {
		return nil, fmt.Errorf("httpserver: index assets: %w", err)
	}

	handlers := ui.NewHandlers(ui.Dependencies{
		Deck: deck,
		Site: landing.Site{
			BaseURL:   cfg.BaseURL,
			SceneURL:  cfg.SceneURL,
			AssetBase: AssetsPath,
		},
		Clock: cfg.Clock,
	})

	router := chi.NewRouter()
	router.Use(chimw.RequestID)
	router.Use(chimw.RealIP)
	router.Use(observability.InjectLogger(logger))
	router.Use(observability.RequestLogger())
	router.Use(observability.Recovery(logger))
	router.Use(chimw.GetHead)
	router.Use(chimw.Compress(5))
	router.Use(chimw.Timeout(durationOr(cfg.RequestTimeout, 30*time.Second)))

	router.Get("/", handlers.Landing)
	router.Get("/healthz", handlers.Healthz)
	router.Get(AssetsPath+"/*", assets.ServeHTTP)

	return &http.Server{
		Addr:              cfg.Address,
		Handler:           router,
		ErrorLog:          zap.NewStdLog(logger),
		ReadHeaderTimeout: durationOr(cfg.ReadHeaderTimeout, 5*time.Second),
		ReadTimeout:       durationOr(cfg.ReadTimeout, 15*time.Second),
		WriteTimeout:      durationOr(cfg.WriteTimeout, 30*time.Second),
		IdleTimeout:       durationOr(cfg.IdleTimeout, 120*time.Second),
	}, nil
}

func durationOr(d, fallback time.Duration) time.Duration {
	if d > 0 {
		return d
	}
	return fallback
}
