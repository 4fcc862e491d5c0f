package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/aishwary11/portfolio/view"
)

func (s *Server) setupRoutes() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(LoggerMiddleware(s.logger))
	s.router.Use(middleware.Recoverer)

	s.router.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(view.Static()))))

	s.router.Group(func(r chi.Router) {
		r.Use(s.identity.Middleware)
		r.Get("/", s.handlePage)
		r.Post("/theme/toggle", s.handleToggleTheme)
	})

	s.router.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("OK"))
		})

		r.Route("/preferences", func(r chi.Router) {
			r.Use(s.identity.Middleware)
			r.Use(middleware.SetHeader("Content-Type", "application/json"))
			r.Get("/", s.handleListPreferences)
			r.Get("/{key}", s.handleGetPreference)
			r.Put("/{key}", s.handleSetPreference)
			r.Delete("/{key}", s.handleDeletePreference)
		})
	})
}
