package api

import (
	"net/http"

	"github.com/aishwary11/portfolio"
	"github.com/aishwary11/portfolio/view"
)

// themeFor binds the theme preference of the requesting browser and runs its
// durable read.
func (s *Server) themeFor(r *http.Request) (*portfolio.Pref[portfolio.Theme], error) {
	local, err := s.store.Local(BrowserID(r.Context()))
	if err != nil {
		return nil, err
	}
	theme := portfolio.UseTheme(local, s.defaultTheme)
	theme.Sync(r.Context())
	return theme, nil
}

// handlePage renders the page with the browser's stored theme.
func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	theme, err := s.themeFor(r)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	if err := view.Render(w, view.Live(theme.Value(), s.now())); err != nil {
		s.logger.Error("Failed to render page", "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

// handleToggleTheme flips the stored theme and sends the browser back to the page.
func (s *Server) handleToggleTheme(w http.ResponseWriter, r *http.Request) {
	theme, err := s.themeFor(r)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	next := portfolio.ToggleTheme(r.Context(), theme)
	s.logger.Debug("Theme toggled", "browser_id", BrowserID(r.Context()), "theme", next)

	http.Redirect(w, r, "/", http.StatusSeeOther)
}
