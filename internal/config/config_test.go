package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeYAML(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write yaml: %v", err)
	}
	return path
}

const validYAML = `
server:
  host: "127.0.0.1"
  port: 9090
  read_timeout: "5s"
  write_timeout: "15s"
  idle_timeout: "30s"
  shutdown_timeout: "5s"
  rate_limit_per_min: 120

database:
  dsn: "postgres://u:p@localhost:5432/testdb"
  max_conns: 10
  min_conns: 2

cors:
  allowed_origins: "http://localhost:5173"
  allow_credentials: true

log:
  level: "debug"
  format: "text"

autosave:
  debounce_delay: "1s"
  flush_interval: "20s"
`

func TestLoad_ValidYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeYAML(t, dir, validYAML)
	t.Setenv("CONFIG_PATH", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Server
	if cfg.Server.Host != "127.0.0.1" {
		t.Errorf("server.host = %q, want %q", cfg.Server.Host, "127.0.0.1")
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("server.port = %d, want %d", cfg.Server.Port, 9090)
	}
	if cfg.Server.ReadTimeout != 5*time.Second {
		t.Errorf("server.read_timeout = %v, want %v", cfg.Server.ReadTimeout, 5*time.Second)
	}
	if cfg.Server.RateLimitPerMin != 120 {
		t.Errorf("server.rate_limit_per_min = %d, want 120", cfg.Server.RateLimitPerMin)
	}

	// Database
	if cfg.Database.DSN != "postgres://u:p@localhost:5432/testdb" {
		t.Errorf("database.dsn = %q", cfg.Database.DSN)
	}
	if cfg.Database.MaxConns != 10 {
		t.Errorf("database.max_conns = %d, want 10", cfg.Database.MaxConns)
	}

	// CORS
	if cfg.CORS.AllowedOrigins != "http://localhost:5173" {
		t.Errorf("cors.allowed_origins = %q", cfg.CORS.AllowedOrigins)
	}

	// Log
	if cfg.Log.Level != "debug" {
		t.Errorf("log.level = %q, want %q", cfg.Log.Level, "debug")
	}
	if cfg.Log.Format != "text" {
		t.Errorf("log.format = %q, want %q", cfg.Log.Format, "text")
	}

	// AutoSave
	if cfg.AutoSave.DebounceDelay != time.Second {
		t.Errorf("autosave.debounce_delay = %v, want 1s", cfg.AutoSave.DebounceDelay)
	}
	if cfg.AutoSave.FlushInterval != 20*time.Second {
		t.Errorf("autosave.flush_interval = %v, want 20s", cfg.AutoSave.FlushInterval)
	}
}

func TestLoad_ENVOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeYAML(t, dir, validYAML)
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("SERVER_PORT", "3000")
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != 3000 {
		t.Errorf("server.port = %d, want 3000 (ENV override)", cfg.Server.Port)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("log.level = %q, want %q (ENV override)", cfg.Log.Level, "warn")
	}
}

func TestLoad_NoFile_ENVOnly(t *testing.T) {
	t.Setenv("DATABASE_DSN", "postgres://u:p@localhost:5432/testdb")
	t.Setenv("CONFIG_PATH", "")

	origDir, _ := os.Getwd()
	t.Cleanup(func() { _ = os.Chdir(origDir) })
	_ = os.Chdir(t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("server.port = %d, want 8080 (default)", cfg.Server.Port)
	}
	if cfg.AutoSave.DebounceDelay != 2*time.Second {
		t.Errorf("autosave.debounce_delay = %v, want 2s (default)", cfg.AutoSave.DebounceDelay)
	}
	if cfg.AutoSave.FlushInterval != 30*time.Second {
		t.Errorf("autosave.flush_interval = %v, want 30s (default)", cfg.AutoSave.FlushInterval)
	}
}

func TestLoad_ExplicitPathNotFound(t *testing.T) {
	t.Setenv("CONFIG_PATH", "/nonexistent/config.yaml")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error for missing explicit config path")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeYAML(t, dir, `{{{invalid yaml`)
	t.Setenv("CONFIG_PATH", path)

	_, err := Load()
	if err == nil {
		t.Fatal("expected error for invalid YAML")
	}
}

func validConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            8080,
			RateLimitPerMin: 600,
		},
		Database: DatabaseConfig{
			DSN:      "postgres://u:p@localhost:5432/testdb",
			MaxConns: 25,
			MinConns: 5,
		},
		AutoSave: AutoSaveConfig{
			DebounceDelay: 2 * time.Second,
			FlushInterval: 30 * time.Second,
		},
	}
}

func TestValidate_PortOutOfRange(t *testing.T) {
	cfg := validConfig()
	cfg.Server.Port = 70000

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for out-of-range port")
	}
}

func TestValidate_RateLimitNonPositive(t *testing.T) {
	cfg := validConfig()
	cfg.Server.RateLimitPerMin = 0

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for zero rate limit")
	}
}

func TestValidate_MaxConnsBelowMin(t *testing.T) {
	cfg := validConfig()
	cfg.Database.MaxConns = 2
	cfg.Database.MinConns = 5

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for max_conns < min_conns")
	}
}

func TestValidate_FlushNotLongerThanDebounce(t *testing.T) {
	cfg := validConfig()
	cfg.AutoSave.DebounceDelay = 30 * time.Second
	cfg.AutoSave.FlushInterval = 30 * time.Second

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error when flush_interval <= debounce_delay")
	}
}
