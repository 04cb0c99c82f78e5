package observability

import (
	"context"
	"testing"

	"github.com/riskibarqy/club-manager/internal/config"
	"github.com/riskibarqy/club-manager/internal/platform/logging"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
)

func TestInitUptrace_Disabled(t *testing.T) {
	cfg := config.Config{
		UptraceEnabled: false,
		ServiceName:    "club-manager-api",
		ServiceVersion: "dev",
		AppEnv:         config.EnvDev,
	}

	shutdown, err := InitUptrace(cfg, logging.NewNop())
	if err != nil {
		t.Fatalf("init uptrace: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown uptrace: %v", err)
	}
}

func TestInitUptrace_EnabledWithoutDSNIsNoop(t *testing.T) {
	cfg := config.Config{UptraceEnabled: true, ServiceName: "club-manager-api"}

	shutdown, err := InitUptrace(cfg, logging.NewNop())
	if err != nil {
		t.Fatalf("init uptrace: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown uptrace: %v", err)
	}
}

func TestInitPyroscope_Disabled(t *testing.T) {
	stop, err := InitPyroscope(config.Config{}, logging.NewNop())
	if err != nil {
		t.Fatalf("init pyroscope: %v", err)
	}
	if err := stop(); err != nil {
		t.Fatalf("stop pyroscope: %v", err)
	}
}

func TestStartPprofServer_Disabled(t *testing.T) {
	srv, err := StartPprofServer(config.Config{}, logging.NewNop())
	if err != nil {
		t.Fatalf("start pprof: %v", err)
	}
	if srv != nil {
		t.Fatalf("expected no server when pprof is disabled")
	}
	if err := StopPprofServer(srv, logging.NewNop(), 0); err != nil {
		t.Fatalf("stop pprof: %v", err)
	}
}

func TestClubAttributes(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.Config
		want []attribute.KeyValue
	}{
		{
			name: "defaults to memory store",
			cfg:  config.Config{},
			want: []attribute.KeyValue{
				attribute.String("club.store", config.StoreMemory),
				attribute.Bool("club.cache_enabled", false),
			},
		},
		{
			name: "postgres with cache",
			cfg:  config.Config{StoreDriver: config.StorePostgres, CacheEnabled: true},
			want: []attribute.KeyValue{
				attribute.String("club.store", config.StorePostgres),
				attribute.Bool("club.cache_enabled", true),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, clubAttributes(tt.cfg))
		})
	}
}

func TestProfileTags(t *testing.T) {
	cfg := config.Config{AppEnv: config.EnvDev, ServiceName: "club-manager-api", StoreDriver: config.StorePostgres, CacheEnabled: true}

	require.Equal(t, map[string]string{
		"env":                "dev",
		"service":            "club-manager-api",
		"club.store":         "postgres",
		"club.cache_enabled": "true",
	}, profileTags(cfg))
}
