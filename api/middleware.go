package api

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/aishwary11/portfolio"
)

const requestLogKey contextKey = "request_log"

// requestLog collects fields that inner handlers learn about a request, for
// the access log line written by LoggerMiddleware.
type requestLog struct {
	browserID string
}

func requestLogFrom(ctx context.Context) *requestLog {
	rl, _ := ctx.Value(requestLogKey).(*requestLog)
	return rl
}

// LoggerMiddleware logs one line per request. Requests that passed the
// browser identity middleware also carry their browser_id.
func LoggerMiddleware(logger portfolio.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			rl := &requestLog{}
			t0 := time.Now()
			defer func() {
				args := []any{
					"method", r.Method,
					"path", r.URL.Path,
					"status", ww.Status(),
					"bytes", ww.BytesWritten(),
					"latency_ms", float64(time.Since(t0).Microseconds()) / 1000.0,
					"request_id", middleware.GetReqID(r.Context()),
				}
				if rl.browserID != "" {
					args = append(args, "browser_id", rl.browserID)
				}
				logger.Info("Served request", args...)
			}()
			next.ServeHTTP(ww, r.WithContext(context.WithValue(r.Context(), requestLogKey, rl)))
		}
		return http.HandlerFunc(fn)
	}
}
