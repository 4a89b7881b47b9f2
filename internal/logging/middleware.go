package logging

import (
	"log/slog"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"
)

// maxLoggedBody is how much of a JSON response body is echoed into the
// request log line.
const maxLoggedBody = 80

// responseWriter wraps http.ResponseWriter to capture the status code and
// the start of the body.
type responseWriter struct {
	http.ResponseWriter
	status int
	body   []byte
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.status = code
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if room := (maxLoggedBody+1)*utf8.UTFMax - len(rw.body); room > 0 {
		if len(b) < room {
			room = len(b)
		}
		rw.body = append(rw.body, b[:room]...)
	}
	return rw.ResponseWriter.Write(b)
}

// summary returns the captured body, cut to maxLoggedBody runes with an
// ellipsis when longer.
func (rw *responseWriter) summary() string {
	s := strings.TrimSpace(string(rw.body))
	if utf8.RuneCountInString(s) <= maxLoggedBody {
		return s
	}
	return string([]rune(s)[:maxLoggedBody-1]) + "…"
}

// RequestLogger is middleware that logs /api/ requests. Other paths, such
// as /health, pass through unlogged.
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.URL.Path, "/api/") {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()
		rw := &responseWriter{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rw, r)

		duration := time.Since(start)

		level := slog.LevelInfo
		if rw.status >= 500 {
			level = slog.LevelError
		} else if rw.status >= 400 {
			level = slog.LevelWarn
		}

		attrs := []any{
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.status,
			"duration", duration.String(),
			"ip", r.RemoteAddr,
		}
		if body := rw.summary(); body != "" {
			attrs = append(attrs, "response", body)
		}

		slog.Log(r.Context(), level, "request", attrs...)
	})
}
