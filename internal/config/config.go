// Package config loads server settings from defaults, an optional .env
// file, an optional YAML file and the environment, in that order.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds server settings.
type Config struct {
	DevMode           bool          `yaml:"dev_mode"`
	Port              int           `yaml:"port"`
	DBPath            string        `yaml:"db"`
	RemoteEndpoint    string        `yaml:"remote_endpoint"`
	RemoteAPIKey      string        `yaml:"remote_api_key"`
	RemoteCacheTTL    time.Duration `yaml:"remote_cache_ttl"`
	JWTSecret         string        `yaml:"jwt_secret"`
	StripeSecretKey   string        `yaml:"stripe_secret_key"`
	StripePublicKey   string        `yaml:"stripe_public_key"`
	PlaceholderUserID int64         `yaml:"placeholder_user_id"`
}

// Default returns the settings used when nothing else is configured.
func Default() Config {
	return Config{
		Port:              8080,
		PlaceholderUserID: 1,
	}
}

// DefaultPath returns ~/.config/stayfinder/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".config", "stayfinder", "config.yaml"), nil
}

// Load builds a Config. A .env file in the working directory is loaded into
// the environment first without overriding variables already set. path
// names the YAML file; when empty, DefaultPath is tried. A missing file is
// not an error.
func Load(path string) (Config, error) {
	dotenv, err := godotenv.Read()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("loading .env: %w", err)
	}

	cfg := Default()
	if err := cfg.applyEnv(func(k string) string { return dotenv[k] }); err != nil {
		return Config{}, fmt.Errorf(".env: %w", err)
	}

	if path == "" {
		p, err := DefaultPath()
		if err == nil {
			path = p
		}
	}
	if path != "" {
		if err := cfg.readFile(path); err != nil {
			return Config{}, err
		}
	}

	if err := cfg.applyEnv(os.Getenv); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) readFile(path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing config %s: %w", path, err)
	}
	return nil
}

// applyEnv overrides c with the SF_ variables that lookup reports as set.
func (c *Config) applyEnv(lookup func(string) string) error {
	if v := lookup("SF_DEV_MODE"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("SF_DEV_MODE: %w", err)
		}
		c.DevMode = b
	}
	if v := lookup("SF_PORT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("SF_PORT: %w", err)
		}
		c.Port = n
	}
	if v := lookup("SF_REMOTE_CACHE_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("SF_REMOTE_CACHE_TTL: %w", err)
		}
		c.RemoteCacheTTL = d
	}
	if v := lookup("SF_PLACEHOLDER_USER_ID"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("SF_PLACEHOLDER_USER_ID: %w", err)
		}
		c.PlaceholderUserID = n
	}

	for env, dst := range map[string]*string{
		"SF_DB":                &c.DBPath,
		"SF_REMOTE_ENDPOINT":   &c.RemoteEndpoint,
		"SF_REMOTE_API_KEY":    &c.RemoteAPIKey,
		"SF_JWT_SECRET":        &c.JWTSecret,
		"SF_STRIPE_SECRET_KEY": &c.StripeSecretKey,
		"SF_STRIPE_PUBLIC_KEY": &c.StripePublicKey,
	} {
		if v := lookup(env); v != "" {
			*dst = v
		}
	}
	return nil
}

// Validate checks values that would make the server unusable.
func (c Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("port %d out of range", c.Port)
	}
	if c.RemoteCacheTTL < 0 {
		return fmt.Errorf("remote cache TTL must not be negative")
	}
	return nil
}

// UseRemote reports whether the remote backend should be used: always
// outside dev mode, and in dev mode only when an endpoint is set.
func (c Config) UseRemote() bool {
	return !c.DevMode || c.RemoteEndpoint != ""
}
