package observability

import (
	"context"
	"testing"

	"github.com/riskibarqy/football-cache/internal/config"
	"github.com/riskibarqy/football-cache/internal/platform/logging"
)

func TestInitUptrace_Disabled(t *testing.T) {
	cfg := config.Config{
		UptraceEnabled: false,
		ServiceName:    "football-cache-api",
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

func TestInitPyroscope_Disabled(t *testing.T) {
	stop, err := InitPyroscope(config.Config{PyroscopeEnabled: false}, logging.NewNop())
	if err != nil {
		t.Fatalf("init pyroscope: %v", err)
	}
	if err := stop(); err != nil {
		t.Fatalf("stop pyroscope: %v", err)
	}
}

func TestStartPprofServer_Disabled(t *testing.T) {
	srv, err := StartPprofServer(config.Config{PprofEnabled: false}, logging.NewNop())
	if err != nil {
		t.Fatalf("start pprof: %v", err)
	}
	if srv != nil {
		t.Fatalf("expected no server when pprof is disabled")
	}
	if err := StopPprofServer(nil, logging.NewNop(), 0); err != nil {
		t.Fatalf("stop nil server: %v", err)
	}
}

func TestUptraceDisabledReason(t *testing.T) {
	cases := []struct {
		cfg  config.Config
		want string
	}{
		{config.Config{}, "UPTRACE_ENABLED=false"},
		{config.Config{UptraceEnabled: true, UptraceDSN: "  "}, "UPTRACE_DSN empty"},
		{config.Config{UptraceEnabled: true, UptraceDSN: "https://token@api.uptrace.dev?grpc=4317"}, ""},
	}
	for _, tc := range cases {
		if got := uptraceDisabledReason(tc.cfg); got != tc.want {
			t.Fatalf("uptraceDisabledReason(%+v) = %q, want %q", tc.cfg, got, tc.want)
		}
	}
}
