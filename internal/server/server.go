// Package server wires the site, its static files, and the content API into
// an HTTP server.
package server

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	"github.com/rs/zerolog"

	"impractical.co/elysion"
	v1 "impractical.co/elysion/internal/api/v1"
	"impractical.co/elysion/internal/logging"
	"impractical.co/elysion/internal/server/middleware"
	"impractical.co/elysion/render"
)

// Config holds the server's settings.
type Config struct {
	Addr string

	// CORSOrigins may call the content API from a browser. "*" allows
	// any origin.
	CORSOrigins []string

	// APIRateLimit is the content API's requests per second per client;
	// 0 disables the limit.
	APIRateLimit float64
	APIRateBurst int

	// Version is reported in the API's OpenAPI document.
	Version string
}

// Server is the HTTP server that serves the site.
type Server struct {
	router     chi.Router
	httpServer *http.Server
	site       *elysion.Site
	logger     zerolog.Logger
	slog       *slog.Logger
}

// New creates a Server with all routes wired. staticFiles is served under
// /static/; ctx bounds background work such as rate limiter cleanup.
func New(ctx context.Context, cfg Config, site *elysion.Site, staticFiles fs.FS, logger zerolog.Logger) *Server {
	router := chi.NewRouter()

	router.Use(chimw.RequestID)
	router.Use(chimw.RealIP)
	router.Use(middleware.Tracing)
	router.Use(middleware.AccessLog(logger))
	router.Use(chimw.Recoverer)

	s := &Server{
		router: router,
		site:   site,
		logger: logger,
		slog:   logging.Slog(logger),
		httpServer: &http.Server{
			Addr:              cfg.Addr,
			Handler:           router,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      30 * time.Second,
		},
	}

	router.Get("/", s.handleHome)

	router.Handle("/static/*", http.StripPrefix("/static/",
		middleware.CacheStatic(staticFileServer(staticFiles)),
	))

	router.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(cors.New(cors.Options{
			AllowedOrigins: cfg.CORSOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodHead, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
			ExposedHeaders: []string{"X-Request-ID"},
			MaxAge:         300,
		}).Handler)
		r.Use(middleware.RateLimitByIP(ctx, cfg.APIRateLimit, cfg.APIRateBurst))

		version := cfg.Version
		if version == "" {
			version = "dev"
		}
		apiConfig := huma.DefaultConfig(site.Title()+" Content API", version)
		apiConfig.Servers = []*huma.Server{
			{URL: "/api/v1"},
		}
		api := humachi.New(r, apiConfig)
		v1.RegisterContentRoutes(api, site.Content)
	})

	return s
}

// Handler returns the server's root http.Handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	ctx := render.LoggingContext(r.Context(), s.slog)

	var buf bytes.Buffer
	status := http.StatusOK
	if err := render.Execute(ctx, &buf, s.site, s.site.HomePage()); err != nil {
		s.logger.Error().Err(err).Str("request_id", chimw.GetReqID(ctx)).Msg("error rendering home page")
		buf.Reset()
		render.RenderServerError(ctx, &buf, s.site)
		status = http.StatusInternalServerError
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		s.logger.Debug().Err(err).Msg("error writing home page")
	}
}

// Start begins listening for HTTP requests. It returns nil once Shutdown has
// been called.
func (s *Server) Start(_ context.Context) error {
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server.Start: %w", err)
	}
	return nil
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server.Shutdown: %w", err)
	}
	return nil
}
