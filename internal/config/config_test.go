package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.StoreDriver != StoreMemory {
		t.Fatalf("expected memory store by default, got %q", cfg.StoreDriver)
	}
	if cfg.MatchPageSize != 10 || cfg.HonorsPageSize != 10 {
		t.Fatalf("unexpected page sizes: matches=%d honors=%d", cfg.MatchPageSize, cfg.HonorsPageSize)
	}
	if cfg.AuthTokenTTL != 24*time.Hour {
		t.Fatalf("unexpected token ttl: %s", cfg.AuthTokenTTL)
	}
	if len(cfg.AuthTokenSecret) < minTokenSecretLength {
		t.Fatalf("expected a development token secret")
	}
	if cfg.AuthTokenIssuer != cfg.ServiceName {
		t.Fatalf("expected issuer to default to service name, got %q", cfg.AuthTokenIssuer)
	}
}

func TestLoad_UptraceRequiresDSNWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when UPTRACE_ENABLED=true without UPTRACE_DSN")
	}
}

func TestLoad_UptraceDSNFromOTLPHeaders(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", `foo=bar, uptrace-dsn="https://token@api.uptrace.dev/1"`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.UptraceDSN != "https://token@api.uptrace.dev/1" {
		t.Fatalf("unexpected UptraceDSN: %q", cfg.UptraceDSN)
	}
}

func TestLoad_DefaultsByEnv(t *testing.T) {
	t.Run("prod disables swagger by default", func(t *testing.T) {
		t.Setenv("APP_ENV", EnvProd)
		t.Setenv("AUTH_TOKEN_SECRET", "0123456789abcdef0123456789abcdef")
		t.Setenv("SWAGGER_ENABLED", "")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if cfg.SwaggerEnabled {
			t.Fatalf("expected SwaggerEnabled=false in prod by default")
		}
	})

	t.Run("prod requires a token secret", func(t *testing.T) {
		t.Setenv("APP_ENV", EnvProd)
		t.Setenv("AUTH_TOKEN_SECRET", "")

		if _, err := Load(); err == nil {
			t.Fatalf("expected error without AUTH_TOKEN_SECRET in prod")
		}
	})

	t.Run("dev enables swagger by default", func(t *testing.T) {
		t.Setenv("APP_ENV", EnvDev)
		t.Setenv("SWAGGER_ENABLED", "")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if !cfg.SwaggerEnabled {
			t.Fatalf("expected SwaggerEnabled=true in dev by default")
		}
	})
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "unknown store driver", env: map[string]string{"STORE_DRIVER": "redis"}},
		{name: "postgres without url", env: map[string]string{"STORE_DRIVER": "postgres", "DB_URL": ""}},
		{name: "short token secret", env: map[string]string{"AUTH_TOKEN_SECRET": "short"}},
		{name: "zero page size", env: map[string]string{"MATCH_PAGE_SIZE": "0"}},
		{name: "bad honors page size", env: map[string]string{"HONORS_PAGE_SIZE": "ten"}},
		{name: "negative cache ttl", env: map[string]string{"CACHE_TTL": "-1s"}},
		{name: "admin email without password", env: map[string]string{"SEED_ADMIN_EMAIL": "admin@example.org", "SEED_ADMIN_PASSWORD": ""}},
		{name: "bad log format", env: map[string]string{"APP_LOG_FORMAT": "xml"}},
		{name: "pyroscope without address", env: map[string]string{"PYROSCOPE_ENABLED": "true", "PYROSCOPE_SERVER_ADDRESS": ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("APP_ENV", EnvDev)
			for key, value := range tt.env {
				t.Setenv(key, value)
			}
			if _, err := Load(); err == nil {
				t.Fatalf("expected validation error")
			}
		})
	}
}

func TestLoad_PprofDefaultsAddrWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("PPROF_ENABLED", "true")
	t.Setenv("PPROF_ADDR", "  ")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.PprofAddr != ":6060" {
		t.Fatalf("expected default pprof addr :6060, got %q", cfg.PprofAddr)
	}
}

func TestLoad_ReadsEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	if err := os.WriteFile(path, []byte("HONORS_PAGE_SIZE=7\nMATCH_PAGE_SIZE=3\n"), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}

	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("ENV_FILE", path)
	t.Setenv("MATCH_PAGE_SIZE", "12")
	// Registered for cleanup, then removed so that the file provides the value.
	t.Setenv("HONORS_PAGE_SIZE", "")
	if err := os.Unsetenv("HONORS_PAGE_SIZE"); err != nil {
		t.Fatalf("unset: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.HonorsPageSize != 7 {
		t.Fatalf("expected HONORS_PAGE_SIZE from env file, got %d", cfg.HonorsPageSize)
	}
	if cfg.MatchPageSize != 12 {
		t.Fatalf("expected process environment to win, got %d", cfg.MatchPageSize)
	}
}
