package api

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/aishwary11/portfolio"
	"github.com/aishwary11/portfolio/encryption"
)

type contextKey string

const browserIDKey contextKey = "browser_id"

// browserIdentity issues and recognizes the cookie that partitions durable
// storage per browser.
type browserIdentity struct {
	cookie CookieConfig
	sealer *encryption.Sealer
	logger portfolio.Logger
}

func newBrowserIdentity(cfg CookieConfig, logger portfolio.Logger) *browserIdentity {
	return &browserIdentity{cookie: cfg, sealer: cfg.Sealer, logger: logger}
}

// Middleware puts the browser ID of the request into its context, issuing a
// new one when the cookie is missing or cannot be read.
func (b *browserIdentity) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := b.read(r)
		if !ok {
			id = uuid.NewString()
			b.write(w, id)
		}
		if rl := requestLogFrom(r.Context()); rl != nil {
			rl.browserID = id
		}
		ctx := context.WithValue(r.Context(), browserIDKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (b *browserIdentity) read(r *http.Request) (string, bool) {
	c, err := r.Cookie(b.cookie.Name)
	if err != nil || c.Value == "" {
		return "", false
	}

	value := c.Value
	if b.sealer != nil {
		value, err = b.sealer.Open(b.cookie.Name, c.Value)
		if err != nil {
			b.logger.Debug("Discarding unreadable browser cookie", "error", err)
			return "", false
		}
	}

	id, err := uuid.Parse(value)
	if err != nil {
		return "", false
	}
	return id.String(), true
}

func (b *browserIdentity) write(w http.ResponseWriter, id string) {
	value := id
	if b.sealer != nil {
		sealed, err := b.sealer.Seal(b.cookie.Name, id)
		if err != nil {
			b.logger.Error("Failed to seal browser cookie", "error", err)
			return
		}
		value = sealed
	}

	http.SetCookie(w, &http.Cookie{
		Name:     b.cookie.Name,
		Value:    value,
		Path:     "/",
		MaxAge:   int(b.cookie.MaxAge.Seconds()),
		HttpOnly: true,
		Secure:   b.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// BrowserID returns the browser identifier placed in ctx by the identity middleware.
func BrowserID(ctx context.Context) string {
	id, _ := ctx.Value(browserIDKey).(string)
	return id
}
