package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestNewDevMode(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, true)

	log.Debug("test debug")
	log.Info("test info")

	output := buf.String()
	if !strings.Contains(output, "test debug") {
		t.Error("expected debug message visible in dev mode")
	}
	if !strings.Contains(output, "test info") {
		t.Error("expected info message visible in dev mode")
	}
}

func TestNewProdMode(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, false)

	log.Debug("hidden")
	log.Info("shown", "k", "v")

	if strings.Contains(buf.String(), "hidden") {
		t.Error("debug should be suppressed in prod mode")
	}

	var line map[string]any
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("expected JSON output: %v", err)
	}
	if line["msg"] != "shown" || line["k"] != "v" {
		t.Errorf("unexpected log line: %v", line)
	}
}

func TestSetup(t *testing.T) {
	old := slog.Default()
	defer slog.SetDefault(old)

	Setup(false)
	if slog.Default().Enabled(t.Context(), slog.LevelDebug) {
		t.Error("prod logger should not enable debug")
	}
}

// captureDefault points the default logger at a buffer for the test.
func captureDefault(t *testing.T) *bytes.Buffer {
	t.Helper()
	old := slog.Default()
	t.Cleanup(func() { slog.SetDefault(old) })

	var buf bytes.Buffer
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	return &buf
}

func TestRequestLogger(t *testing.T) {
	buf := captureDefault(t)

	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"id":1}`))
	})

	handler := RequestLogger(inner)

	req := httptest.NewRequest("GET", "/api/properties", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	output := buf.String()
	if output == "" {
		t.Fatal("expected log output")
	}
	for _, want := range []string{"GET", "/api/properties", "status=200", `{\"id\":1}`} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in log: %s", want, output)
		}
	}
	if rec.Body.String() != `{"id":1}` {
		t.Errorf("body = %q, response must pass through unchanged", rec.Body.String())
	}
}

func TestRequestLoggerTruncatesBody(t *testing.T) {
	buf := captureDefault(t)

	long := `"` + strings.Repeat("x", 200) + `"`
	handler := RequestLogger(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(long))
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/api/properties", nil))

	if rec.Body.String() != long {
		t.Error("response body was altered")
	}
	if strings.Contains(buf.String(), strings.Repeat("x", maxLoggedBody)) {
		t.Error("logged body should be truncated")
	}
	if !strings.Contains(buf.String(), "…") {
		t.Error("expected ellipsis on truncated body")
	}
}

func TestRequestLoggerTruncatesOnRuneBoundary(t *testing.T) {
	buf := captureDefault(t)

	long := `"` + strings.Repeat("é", 200) + `"`
	handler := RequestLogger(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(long))
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/api/properties", nil))

	out := buf.String()
	if !utf8.ValidString(out) {
		t.Fatalf("log line is not valid UTF-8: %q", out)
	}
	want := `"` + strings.Repeat("é", maxLoggedBody-2) + "…"
	if !strings.Contains(out, want) {
		t.Errorf("expected %d runes plus ellipsis, got %s", maxLoggedBody-1, out)
	}
}

func TestRequestLoggerLevels(t *testing.T) {
	tests := []struct {
		status int
		level  string
	}{
		{http.StatusOK, "level=INFO"},
		{http.StatusNotFound, "level=WARN"},
		{http.StatusInternalServerError, "level=ERROR"},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			buf := captureDefault(t)
			handler := RequestLogger(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/api/wishlist", nil))

			if !strings.Contains(buf.String(), tt.level) {
				t.Errorf("expected %s in %q", tt.level, buf.String())
			}
		})
	}
}

func TestRequestLoggerSkipsNonAPI(t *testing.T) {
	for _, path := range []string{"/health", "/static/style.css", "/"} {
		t.Run(path, func(t *testing.T) {
			buf := captureDefault(t)

			handler := RequestLogger(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			}))
			handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", path, nil))

			if buf.Len() > 0 {
				t.Errorf("expected no log for %s", path)
			}
		})
	}
}
