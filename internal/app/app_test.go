package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/riskibarqy/club-manager/internal/config"
	"github.com/riskibarqy/club-manager/internal/platform/logging"
	"github.com/stretchr/testify/require"
)

func memoryConfig() config.Config {
	return config.Config{
		AppEnv:                  "dev",
		ServiceName:             "club-manager-api",
		HTTPAddr:                ":0",
		ReadTimeout:             time.Second,
		WriteTimeout:            time.Second,
		StoreDriver:             config.StoreMemory,
		CacheEnabled:            true,
		CacheTTL:                time.Minute,
		AuthTokenSecret:         strings.Repeat("k", 32),
		AuthTokenIssuer:         "club-manager-api",
		AuthTokenTTL:            time.Hour,
		AuthBcryptCost:          4,
		LoginRateLimitPerMinute: 100,
		LoginRateLimitBurst:     100,
		MatchPageSize:           10,
		HonorsPageSize:          10,
		RecategorizeWorkers:     2,
		SeedEnabled:             true,
		SeedAdminEmail:          "admin@club.example.org",
		SeedAdminPassword:       "admin-password",
	}
}

func TestNewHTTPServer_MemoryStore(t *testing.T) {
	srv, cleanup, err := NewHTTPServer(context.Background(), memoryConfig(), logging.NewNop())
	require.NoError(t, err)
	defer cleanup()

	rec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/categories", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	// The seeded admin can log in and reach the admin surface.
	rec = httptest.NewRecorder()
	body := `{"email":"admin@club.example.org","password":"admin-password"}`
	srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/auth/login", strings.NewReader(body)))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var envelope struct {
		Data struct {
			AccessToken string `json:"access_token"`
			IsAdmin     bool   `json:"is_admin"`
		} `json:"data"`
	}
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &envelope))
	require.True(t, envelope.Data.IsAdmin)

	req := httptest.NewRequest(http.MethodGet, "/v1/admin/seasons", nil)
	req.Header.Set("Authorization", "Bearer "+envelope.Data.AccessToken)
	rec = httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func TestNewHTTPServer_RejectsEmptyAddr(t *testing.T) {
	cfg := memoryConfig()
	cfg.HTTPAddr = ""

	_, cleanup, err := NewHTTPServer(context.Background(), cfg, logging.NewNop())
	require.Error(t, err)
	cleanup()
}

func TestNewHTTPServer_AdminSeedNeedsGenres(t *testing.T) {
	cfg := memoryConfig()
	cfg.SeedEnabled = false

	_, cleanup, err := NewHTTPServer(context.Background(), cfg, logging.NewNop())
	require.Error(t, err)
	cleanup()
}
