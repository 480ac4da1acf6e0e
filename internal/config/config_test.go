// ABOUTME: Tests for configuration loading
// ABOUTME: Covers parsing, env expansion, defaults, and validation failures

package config

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing config file: %v", err)
	}
	return path
}

const validSecret = "0123456789abcdef0123456789abcdef"

func TestLoad_Full(t *testing.T) {
	path := writeConfig(t, `
server:
  addr: ":9090"
database:
  path: /tmp/hatchboard.db
session:
  secret: "`+validSecret+`"
  backend: redis
  redis_url: redis://localhost:6379/0
  ttl: 12h
cookie:
  secure: true
  same_site: none
cors:
  allowed_origins:
    - https://app.example.com
logging:
  level: debug
  format: json
metrics:
  enabled: true
  path: /internal/metrics
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Addr != ":9090" {
		t.Errorf("server.addr: got %q", cfg.Server.Addr)
	}
	if cfg.Database.Path != "/tmp/hatchboard.db" {
		t.Errorf("database.path: got %q", cfg.Database.Path)
	}
	if cfg.Session.Backend != "redis" {
		t.Errorf("session.backend: got %q", cfg.Session.Backend)
	}
	if cfg.Session.RedisURL != "redis://localhost:6379/0" {
		t.Errorf("session.redis_url: got %q", cfg.Session.RedisURL)
	}
	if cfg.Session.TTL != 12*time.Hour {
		t.Errorf("session.ttl: got %v", cfg.Session.TTL)
	}
	if !cfg.Cookie.Secure {
		t.Error("cookie.secure should be true")
	}
	if cfg.SameSiteMode() != http.SameSiteNoneMode {
		t.Errorf("same_site mode: got %v", cfg.SameSiteMode())
	}
	if len(cfg.CORS.AllowedOrigins) != 1 || cfg.CORS.AllowedOrigins[0] != "https://app.example.com" {
		t.Errorf("cors.allowed_origins: got %v", cfg.CORS.AllowedOrigins)
	}
	if cfg.Metrics.Path != "/internal/metrics" {
		t.Errorf("metrics.path: got %q", cfg.Metrics.Path)
	}
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, `
database:
  path: /tmp/hatchboard.db
session:
  secret: "`+validSecret+`"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Addr != ":8080" {
		t.Errorf("default server.addr: got %q", cfg.Server.Addr)
	}
	if cfg.Session.Backend != "memory" {
		t.Errorf("default session.backend: got %q", cfg.Session.Backend)
	}
	if cfg.Session.TTL != DefaultSessionTTL {
		t.Errorf("default session.ttl: got %v", cfg.Session.TTL)
	}
	if cfg.Cookie.SameSite != "lax" {
		t.Errorf("default cookie.same_site: got %q", cfg.Cookie.SameSite)
	}
	if cfg.SameSiteMode() != http.SameSiteLaxMode {
		t.Errorf("default same_site mode: got %v", cfg.SameSiteMode())
	}
	if cfg.Metrics.Path != "/metrics" {
		t.Errorf("default metrics.path: got %q", cfg.Metrics.Path)
	}
}

func TestLoad_EnvExpansion(t *testing.T) {
	t.Setenv("HATCHBOARD_TEST_SECRET", validSecret)

	path := writeConfig(t, `
database:
  path: /tmp/hatchboard.db
session:
  secret: "${HATCHBOARD_TEST_SECRET}"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Session.Secret != validSecret {
		t.Errorf("session.secret not expanded: got %q", cfg.Session.Secret)
	}
}

func TestLoad_MissingDatabasePath(t *testing.T) {
	path := writeConfig(t, `
session:
  secret: "`+validSecret+`"
`)

	_, err := Load(path)
	if err == nil || !strings.Contains(err.Error(), "database.path") {
		t.Errorf("expected database.path error, got %v", err)
	}
}

func TestLoad_ShortSecret(t *testing.T) {
	path := writeConfig(t, `
database:
  path: /tmp/hatchboard.db
session:
  secret: "too-short"
`)

	_, err := Load(path)
	if err == nil || !strings.Contains(err.Error(), "session.secret") {
		t.Errorf("expected session.secret error, got %v", err)
	}
}

func TestLoad_RedisWithoutURL(t *testing.T) {
	path := writeConfig(t, `
database:
  path: /tmp/hatchboard.db
session:
  secret: "`+validSecret+`"
  backend: redis
`)

	_, err := Load(path)
	if err == nil || !strings.Contains(err.Error(), "redis_url") {
		t.Errorf("expected redis_url error, got %v", err)
	}
}

func TestLoad_BadBackend(t *testing.T) {
	path := writeConfig(t, `
database:
  path: /tmp/hatchboard.db
session:
  secret: "`+validSecret+`"
  backend: memcached
`)

	_, err := Load(path)
	if err == nil || !strings.Contains(err.Error(), "session.backend") {
		t.Errorf("expected session.backend error, got %v", err)
	}
}

func TestLoad_BadTTL(t *testing.T) {
	path := writeConfig(t, `
database:
  path: /tmp/hatchboard.db
session:
  secret: "`+validSecret+`"
  ttl: "a fortnight"
`)

	_, err := Load(path)
	if err == nil || !strings.Contains(err.Error(), "ttl") {
		t.Errorf("expected ttl parse error, got %v", err)
	}
}

func TestLoad_BadSameSite(t *testing.T) {
	path := writeConfig(t, `
database:
  path: /tmp/hatchboard.db
session:
  secret: "`+validSecret+`"
cookie:
  same_site: sideways
`)

	_, err := Load(path)
	if err == nil || !strings.Contains(err.Error(), "same_site") {
		t.Errorf("expected same_site error, got %v", err)
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load("/nonexistent/config.yaml")
	if err == nil {
		t.Error("expected error for missing file")
	}
}
