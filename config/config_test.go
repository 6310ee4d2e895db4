package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{"DATABASE_PATH", "DATABASE_DSN", "DATABASE_READ_REPLICAS", "PORT", "JWT_SECRET",
		"JWT_EXPIRATION_HOURS", "LOG_LEVEL", "DB_LOG_LEVEL", "CORS_ALLOWED_ORIGINS"} {
		t.Setenv(key, "")
	}

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.DatabasePath != "pv_theatres.db" || cfg.Port != "8080" || cfg.LogLevel != "info" || cfg.DBLogLevel != "warn" {
		t.Fatalf("defaults = %+v", cfg)
	}
	if cfg.JWTExpiration != 24*time.Hour {
		t.Fatalf("JWT expiration = %v", cfg.JWTExpiration)
	}
	if len(cfg.AllowedOrigins) != 1 || cfg.AllowedOrigins[0] != "http://localhost:5173" {
		t.Fatalf("origins = %v", cfg.AllowedOrigins)
	}
	if cfg.RequireJWTSecret() == nil {
		t.Fatalf("empty secret accepted")
	}
}

func TestLoadConfigFromEnvironment(t *testing.T) {
	t.Setenv("DATABASE_DSN", "postgres://archive@localhost/pv")
	t.Setenv("DATABASE_READ_REPLICAS", "postgres://r1/pv, ,postgres://r2/pv")
	t.Setenv("PORT", "9000")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("JWT_EXPIRATION_HOURS", "nope")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if len(cfg.ReadReplicaDSNs) != 2 || cfg.ReadReplicaDSNs[1] != "postgres://r2/pv" {
		t.Fatalf("replicas = %q", cfg.ReadReplicaDSNs)
	}
	if cfg.Port != "9000" || cfg.RequireJWTSecret() != nil {
		t.Fatalf("cfg = %+v", cfg)
	}
	if cfg.JWTExpiration != 24*time.Hour {
		t.Fatalf("invalid hours should fall back to the default, got %v", cfg.JWTExpiration)
	}
	if len(cfg.AllowedOrigins) != 2 || cfg.AllowedOrigins[1] != "https://b.example" {
		t.Fatalf("origins = %q", cfg.AllowedOrigins)
	}
}

func TestLoadConfigRejectsBadPort(t *testing.T) {
	t.Setenv("PORT", "http")
	if _, err := LoadConfig(); err == nil {
		t.Fatal("expected an error for a non-numeric port")
	}
}

func TestLoadDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("LOG_LEVEL=debug\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("LOG_LEVEL", "")
	os.Unsetenv("LOG_LEVEL")

	if err := LoadDotEnv(path, filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Fatalf("LoadDotEnv: %v", err)
	}
	if got := os.Getenv("LOG_LEVEL"); got != "debug" {
		t.Fatalf("LOG_LEVEL = %q", got)
	}
}
