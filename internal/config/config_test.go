package config

import (
	"testing"
	"time"
)

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_UptraceRequiresDSNWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when UPTRACE_ENABLED=true without UPTRACE_DSN")
	}
}

func TestLoad_DefaultsByEnv(t *testing.T) {
	t.Run("prod disables swagger by default", func(t *testing.T) {
		t.Setenv("APP_ENV", EnvProd)
		t.Setenv("UPTRACE_ENABLED", "false")
		t.Setenv("SWAGGER_ENABLED", "")
		t.Setenv("PROVIDER_API_KEY", "key-123")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if cfg.SwaggerEnabled {
			t.Fatalf("expected SwaggerEnabled=false in prod by default")
		}
	})

	t.Run("dev enables swagger by default", func(t *testing.T) {
		t.Setenv("APP_ENV", EnvDev)
		t.Setenv("UPTRACE_ENABLED", "false")
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

func TestLoad_PprofDefaultsAddrWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
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

func TestLoad_PyroscopeRequiresServerAddressWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("PYROSCOPE_ENABLED", "true")
	t.Setenv("PYROSCOPE_SERVER_ADDRESS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when PYROSCOPE_ENABLED=true without PYROSCOPE_SERVER_ADDRESS")
	}
}

func TestLoad_PyroscopeAppNameDefaultsToServiceName(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("APP_SERVICE_NAME", "football-cache-api-test")
	t.Setenv("PYROSCOPE_ENABLED", "true")
	t.Setenv("PYROSCOPE_SERVER_ADDRESS", "http://localhost:4040")
	t.Setenv("PYROSCOPE_APP_NAME", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.PyroscopeAppName != "football-cache-api-test" {
		t.Fatalf("unexpected pyroscope app name: %q", cfg.PyroscopeAppName)
	}
}

func TestLoad_CORSOriginsDefaultAndParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")

	t.Run("default wildcard", func(t *testing.T) {
		t.Setenv("CORS_ALLOWED_ORIGINS", "")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "*" {
			t.Fatalf("unexpected default CORS origins: %+v", cfg.CORSAllowedOrigins)
		}
	})

	t.Run("comma separated parsing", func(t *testing.T) {
		t.Setenv("CORS_ALLOWED_ORIGINS", " https://a.example.com, http://localhost:5173 ")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if len(cfg.CORSAllowedOrigins) != 2 {
			t.Fatalf("unexpected CORS origins length: %d", len(cfg.CORSAllowedOrigins))
		}
		if cfg.CORSAllowedOrigins[0] != "https://a.example.com" {
			t.Fatalf("unexpected first CORS origin: %s", cfg.CORSAllowedOrigins[0])
		}
		if cfg.CORSAllowedOrigins[1] != "http://localhost:5173" {
			t.Fatalf("unexpected second CORS origin: %s", cfg.CORSAllowedOrigins[1])
		}
	})
}

func TestLoad_DBPoolParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)

	t.Run("defaults", func(t *testing.T) {
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if cfg.DBMaxOpenConns != 10 || cfg.DBConnMaxLifetime != 30*time.Minute {
			t.Fatalf("unexpected pool defaults open=%d lifetime=%s", cfg.DBMaxOpenConns, cfg.DBConnMaxLifetime)
		}
	})

	t.Run("invalid value", func(t *testing.T) {
		t.Setenv("DB_MAX_OPEN_CONNS", "zero")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for invalid DB_MAX_OPEN_CONNS")
		}
	})
}

func TestLoad_CacheConfigParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")

	t.Run("defaults", func(t *testing.T) {
		t.Setenv("CACHE_ENABLED", "")
		t.Setenv("CACHE_TTL", "")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if !cfg.CacheEnabled {
			t.Fatalf("expected cache enabled by default")
		}
		if cfg.CacheTTL != 60*time.Second {
			t.Fatalf("unexpected default cache ttl: %s", cfg.CacheTTL)
		}
	})

	t.Run("invalid ttl", func(t *testing.T) {
		t.Setenv("CACHE_TTL", "bad")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for invalid CACHE_TTL")
		}
	})
}


func TestLoad_StorageDriver(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)

	t.Run("postgres by default", func(t *testing.T) {
		t.Setenv("STORAGE_DRIVER", "")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if cfg.StorageDriver != StoragePostgres {
			t.Fatalf("unexpected storage driver %q", cfg.StorageDriver)
		}
	})

	t.Run("memory is case insensitive", func(t *testing.T) {
		t.Setenv("STORAGE_DRIVER", " Memory ")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if cfg.StorageDriver != StorageMemory {
			t.Fatalf("unexpected storage driver %q", cfg.StorageDriver)
		}
	})

	t.Run("unknown driver", func(t *testing.T) {
		t.Setenv("STORAGE_DRIVER", "sqlite")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for unknown STORAGE_DRIVER")
		}
	})
}

func TestLoad_ProviderConfigParsing(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("APP_ENV", EnvDev)
		t.Setenv("PROVIDER_API_KEY", "")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if cfg.ProviderBaseURL != "https://v3.football.api-sports.io" || cfg.ProviderHost != "v3.football.api-sports.io" {
			t.Fatalf("unexpected provider endpoint %q host %q", cfg.ProviderBaseURL, cfg.ProviderHost)
		}
		if cfg.ProviderTimeout != 20*time.Second || cfg.ProviderMaxRetries != 2 || cfg.ProviderRatePerMinute != 300 {
			t.Fatalf("unexpected provider defaults %+v", cfg)
		}
		if !cfg.ProviderCircuitEnabled || cfg.ProviderCircuitFailureCount != 5 {
			t.Fatalf("unexpected circuit defaults %+v", cfg)
		}
	})

	t.Run("api key required outside dev", func(t *testing.T) {
		t.Setenv("APP_ENV", EnvStage)
		t.Setenv("PROVIDER_API_KEY", "")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error when PROVIDER_API_KEY is missing in stage")
		}
	})

	t.Run("negative retries", func(t *testing.T) {
		t.Setenv("APP_ENV", EnvDev)
		t.Setenv("PROVIDER_MAX_RETRIES", "-1")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for negative PROVIDER_MAX_RETRIES")
		}
	})

	t.Run("zero timeout", func(t *testing.T) {
		t.Setenv("APP_ENV", EnvDev)
		t.Setenv("PROVIDER_TIMEOUT", "0s")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for zero PROVIDER_TIMEOUT")
		}
	})
}

func TestLoad_TranslateConfigParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)

	t.Run("defaults", func(t *testing.T) {
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if !cfg.TranslateEnabled || cfg.TranslateTargetLang != "fa" {
			t.Fatalf("unexpected translate defaults enabled=%v lang=%q", cfg.TranslateEnabled, cfg.TranslateTargetLang)
		}
		if cfg.TranslateCacheTTL != 24*time.Hour || cfg.TranslateConcurrency != 8 {
			t.Fatalf("unexpected translate tuning ttl=%s concurrency=%d", cfg.TranslateCacheTTL, cfg.TranslateConcurrency)
		}
	})

	t.Run("zero concurrency", func(t *testing.T) {
		t.Setenv("TRANSLATE_CONCURRENCY", "0")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for TRANSLATE_CONCURRENCY=0")
		}
	})
}

func TestLoad_TrackedLeagues(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)

	t.Run("symbols and ids", func(t *testing.T) {
		t.Setenv("TRACKED_LEAGUES", "PremierLeague, 140 ,uefachampionsleague")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		want := []int64{39, 140, 2}
		if len(cfg.TrackedLeagues) != len(want) {
			t.Fatalf("unexpected tracked leagues %v", cfg.TrackedLeagues)
		}
		for i := range want {
			if cfg.TrackedLeagues[i] != want[i] {
				t.Fatalf("unexpected tracked leagues %v", cfg.TrackedLeagues)
			}
		}
	})

	t.Run("empty means all", func(t *testing.T) {
		t.Setenv("TRACKED_LEAGUES", "")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if len(cfg.TrackedLeagues) != 0 {
			t.Fatalf("expected no explicit tracked leagues, got %v", cfg.TrackedLeagues)
		}
	})

	t.Run("unknown symbol", func(t *testing.T) {
		t.Setenv("TRACKED_LEAGUES", "NotALeague")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for unknown league")
		}
	})
}

func TestLoad_ResolverMaxDepth(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("RESOLVER_MAX_DEPTH", "0")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for RESOLVER_MAX_DEPTH=0")
	}
}
