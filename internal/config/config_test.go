package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

var envKeys = []string{
	"SF_DEV_MODE", "SF_PORT", "SF_DB", "SF_REMOTE_ENDPOINT", "SF_REMOTE_API_KEY",
	"SF_REMOTE_CACHE_TTL", "SF_JWT_SECRET", "SF_STRIPE_SECRET_KEY",
	"SF_STRIPE_PUBLIC_KEY", "SF_PLACEHOLDER_USER_ID",
}

// isolate runs the test in an empty directory with every SF_ variable
// unset, restoring them afterwards.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	for _, k := range envKeys {
		t.Setenv(k, "")
		if err := os.Unsetenv(k); err != nil {
			t.Fatalf("unset %s: %v", k, err)
		}
	}
	return dir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestLoadDefaults(t *testing.T) {
	dir := isolate(t)

	cfg, err := Load(filepath.Join(dir, "missing.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg != Default() {
		t.Errorf("got %+v, want defaults", cfg)
	}
	if cfg.Port != 8080 || cfg.PlaceholderUserID != 1 {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "config.yaml")
	writeFile(t, path, `
dev_mode: true
port: 9000
db: /tmp/sf.db
remote_cache_ttl: 5m
placeholder_user_id: 7
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.DevMode || cfg.Port != 9000 || cfg.DBPath != "/tmp/sf.db" {
		t.Errorf("unexpected config: %+v", cfg)
	}
	if cfg.RemoteCacheTTL != 5*time.Minute {
		t.Errorf("cache ttl = %v", cfg.RemoteCacheTTL)
	}
	if cfg.PlaceholderUserID != 7 {
		t.Errorf("placeholder user = %d", cfg.PlaceholderUserID)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "config.yaml")
	writeFile(t, path, "port: 9000\nremote_endpoint: https://file.example.com\n")

	t.Setenv("SF_PORT", "9100")
	t.Setenv("SF_REMOTE_ENDPOINT", "https://env.example.com")
	t.Setenv("SF_REMOTE_CACHE_TTL", "30s")
	t.Setenv("SF_DEV_MODE", "true")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != 9100 {
		t.Errorf("port = %d, want 9100", cfg.Port)
	}
	if cfg.RemoteEndpoint != "https://env.example.com" {
		t.Errorf("endpoint = %q", cfg.RemoteEndpoint)
	}
	if cfg.RemoteCacheTTL != 30*time.Second {
		t.Errorf("cache ttl = %v", cfg.RemoteCacheTTL)
	}
	if !cfg.DevMode {
		t.Error("dev mode should be on")
	}
}

func TestDotEnv(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, ".env"), "SF_STRIPE_PUBLIC_KEY=pk_test_dotenv\nSF_PORT=9200\n")
	t.Setenv("SF_PORT", "9300")

	cfg, err := Load(filepath.Join(dir, "missing.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.StripePublicKey != "pk_test_dotenv" {
		t.Errorf("public key = %q", cfg.StripePublicKey)
	}
	if cfg.Port != 9300 {
		t.Errorf("port = %d, .env must not override the environment", cfg.Port)
	}
}

func TestFileOverridesDotEnv(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, ".env"), "SF_PORT=9200\nSF_JWT_SECRET=from-dotenv\n")
	path := filepath.Join(dir, "config.yaml")
	writeFile(t, path, "port: 9100\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != 9100 {
		t.Errorf("port = %d, config file must override .env", cfg.Port)
	}
	if cfg.JWTSecret != "from-dotenv" {
		t.Errorf("jwt secret = %q, .env should fill keys the file leaves unset", cfg.JWTSecret)
	}
	if v, ok := os.LookupEnv("SF_JWT_SECRET"); ok {
		t.Errorf("SF_JWT_SECRET leaked into the environment: %q", v)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"bad port", "SF_PORT", "eighty"},
		{"port out of range", "SF_PORT", "70000"},
		{"bad dev mode", "SF_DEV_MODE", "sometimes"},
		{"bad ttl", "SF_REMOTE_CACHE_TTL", "5 minutes"},
		{"negative ttl", "SF_REMOTE_CACHE_TTL", "-1s"},
		{"bad user id", "SF_PLACEHOLDER_USER_ID", "one"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := isolate(t)
			t.Setenv(tt.key, tt.val)
			if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}

	t.Run("bad yaml", func(t *testing.T) {
		dir := isolate(t)
		path := filepath.Join(dir, "config.yaml")
		writeFile(t, path, "port: [1, 2\n")
		if _, err := Load(path); err == nil {
			t.Error("expected error, got nil")
		}
	})
}

func TestUseRemote(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want bool
	}{
		{"production", Config{}, true},
		{"dev without endpoint", Config{DevMode: true}, false},
		{"dev with endpoint", Config{DevMode: true, RemoteEndpoint: "https://x"}, true},
	}
	for _, tt := range tests {
		if got := tt.cfg.UseRemote(); got != tt.want {
			t.Errorf("%s: UseRemote() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestDefaultPath(t *testing.T) {
	p, err := DefaultPath()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if filepath.Base(p) != "config.yaml" || filepath.Base(filepath.Dir(p)) != "stayfinder" {
		t.Errorf("unexpected path %s", p)
	}
}
