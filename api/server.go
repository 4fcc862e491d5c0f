// Package api serves the portfolio page, the theme toggle and a small JSON
// preference API.
package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/aishwary11/portfolio"
	"github.com/aishwary11/portfolio/encryption"
)

// Server holds the dependencies for the HTTP server.
type Server struct {
	store        *portfolio.Store
	registry     *portfolio.Registry
	identity     *browserIdentity
	defaultTheme portfolio.Theme
	logger       portfolio.Logger
	now          func() time.Time
	router       *chi.Mux
	httpServer   *http.Server
}

// CookieConfig controls the browser identifier cookie.
type CookieConfig struct {
	Name   string
	Secure bool
	MaxAge time.Duration
	// Sealer encrypts the cookie value. A nil Sealer stores the identifier in
	// the clear.
	Sealer *encryption.Sealer
}

// Config holds configuration for the API server.
type Config struct {
	ListenAddress string
	ReadTimeout   time.Duration
	WriteTimeout  time.Duration
	IdleTimeout   time.Duration

	Store        *portfolio.Store
	Registry     *portfolio.Registry
	DefaultTheme portfolio.Theme
	Cookie       CookieConfig
	Logger       portfolio.Logger
	// Now is the clock of the live page. Defaults to time.Now.
	Now func() time.Time
}

// NewServer creates and configures a new API server instance.
func NewServer(cfg Config) (*Server, error) {
	if cfg.Store == nil {
		return nil, fmt.Errorf("store is required")
	}
	if cfg.Logger == nil {
		cfg.Logger = cfg.Store.Logger()
	}
	if cfg.ListenAddress == "" {
		cfg.ListenAddress = ":8080"
	}
	if cfg.ReadTimeout == 0 {
		cfg.ReadTimeout = 15 * time.Second
	}
	if cfg.WriteTimeout == 0 {
		cfg.WriteTimeout = 15 * time.Second
	}
	if cfg.IdleTimeout == 0 {
		cfg.IdleTimeout = 60 * time.Second
	}
	if cfg.DefaultTheme == "" {
		cfg.DefaultTheme = portfolio.ThemeDark
	}
	if err := cfg.DefaultTheme.Validate(); err != nil {
		return nil, fmt.Errorf("default theme: %w", err)
	}
	if cfg.Registry == nil {
		cfg.Registry = portfolio.NewRegistry()
	}
	if _, ok := cfg.Registry.Lookup(portfolio.ThemeKey); !ok {
		if err := cfg.Registry.Define(portfolio.ThemeDefinition(cfg.DefaultTheme)); err != nil {
			return nil, fmt.Errorf("defining theme preference: %w", err)
		}
	}
	if cfg.Cookie.Name == "" {
		cfg.Cookie.Name = "portfolio_browser"
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	s := &Server{
		store:        cfg.Store,
		registry:     cfg.Registry,
		identity:     newBrowserIdentity(cfg.Cookie, cfg.Logger),
		defaultTheme: cfg.DefaultTheme,
		logger:       cfg.Logger,
		now:          cfg.Now,
		router:       chi.NewRouter(),
	}

	s.setupRoutes()

	s.httpServer = &http.Server{
		Addr:         cfg.ListenAddress,
		Handler:      s.router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return s, nil
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start runs the HTTP server and blocks until it is shut down. A graceful
// shutdown returns nil.
func (s *Server) Start() error {
	s.logger.Info("HTTP server starting", "address", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("could not start server: %w", err)
	}
	return nil
}

// Stop gracefully shuts down the HTTP server.
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("HTTP server stopping")
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	s.logger.Info("HTTP server stopped gracefully")
	return nil
}
