package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/riskibarqy/football-cache/external/apisports"
	"github.com/riskibarqy/football-cache/external/translate"
	"github.com/riskibarqy/football-cache/internal/config"
	"github.com/riskibarqy/football-cache/internal/domain/league"
	"github.com/riskibarqy/football-cache/internal/domain/team"
	"github.com/riskibarqy/football-cache/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/football-cache/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/football-cache/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/football-cache/internal/interfaces/httpapi"
	basecache "github.com/riskibarqy/football-cache/internal/platform/cache"
	"github.com/riskibarqy/football-cache/internal/platform/i18n"
	"github.com/riskibarqy/football-cache/internal/platform/logging"
	"github.com/riskibarqy/football-cache/internal/platform/readthrough"
	"github.com/riskibarqy/football-cache/internal/platform/resilience"
	"github.com/riskibarqy/football-cache/internal/usecase"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// App owns the dependencies shared by the API server and the CLI.
type App struct {
	cfg      config.Config
	logger   *logging.Logger
	Services httpapi.Services
	Warm     *usecase.WarmService
	closers  []func() error
}

func New(ctx context.Context, cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}
	a := &App{cfg: cfg, logger: logger}

	repos, tx, err := a.openStorage(ctx)
	if err != nil {
		return nil, err
	}

	translator, err := newTranslator(cfg, logger)
	if err != nil {
		_ = a.Close()
		return nil, err
	}

	provider := apisports.NewClient(apisports.ClientConfig{
		HTTPClient:    outboundClient(cfg.ProviderTimeout),
		BaseURL:       cfg.ProviderBaseURL,
		Host:          cfg.ProviderHost,
		APIKey:        cfg.ProviderAPIKey,
		Timeout:       cfg.ProviderTimeout,
		MaxRetries:    cfg.ProviderMaxRetries,
		RatePerMinute: cfg.ProviderRatePerMinute,
		Logger:        logger,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.ProviderCircuitEnabled,
			FailureThreshold: cfg.ProviderCircuitFailureCount,
			OpenTimeout:      cfg.ProviderCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.ProviderCircuitHalfOpenMax,
		},
	})

	rtLogger := logger.Named("readthrough")
	resolver := readthrough.NewResolver(readthrough.Env{
		Translator: translator,
		Tx:         tx,
	}, cfg.ResolverMaxDepth, rtLogger)
	graph := usecase.NewGraph(repos, provider, readthrough.NewOrchestrator(resolver, rtLogger))

	a.Services = httpapi.Services{
		Leagues:   usecase.NewLeagueService(graph),
		Teams:     usecase.NewTeamService(graph),
		Players:   usecase.NewPlayerService(graph),
		Fixtures:  usecase.NewFixtureService(graph),
		Standings: usecase.NewStandingService(graph),
		H2H:       usecase.NewH2HService(graph),
		Matches:   usecase.NewMatchService(graph, cfg.TrackedLeagues),
	}
	a.Warm = usecase.NewWarmService(graph)

	logger.Info("app initialized",
		"storage", cfg.StorageDriver,
		"cache_enabled", cfg.CacheEnabled,
		"translate_enabled", cfg.TranslateEnabled,
		"tracked_leagues", len(a.Services.Matches.TrackedLeagues()),
	)
	return a, nil
}

func (a *App) openStorage(ctx context.Context) (usecase.Repositories, readthrough.TxRunner, error) {
	var (
		repos usecase.Repositories
		tx    readthrough.TxRunner
	)

	switch a.cfg.StorageDriver {
	case config.StorageMemory:
		db := memory.NewDB()
		repos = usecase.Repositories{
			Leagues:      memory.NewLeagueRepository(db),
			Seasons:      memory.NewSeasonRepository(db),
			Teams:        memory.NewTeamRepository(db),
			Coaches:      memory.NewCoachRepository(db),
			Players:      memory.NewPlayerRepository(db),
			PlayerStats:  memory.NewPlayerStatRepository(db),
			Transfers:    memory.NewTransferRepository(db),
			Fixtures:     memory.NewFixtureRepository(db),
			FixtureStats: memory.NewFixtureStatRepository(db),
			Events:       memory.NewFixtureEventRepository(db),
			Lineups:      memory.NewFixtureLineupRepository(db),
			Performances: memory.NewFixturePlayerRepository(db),
			Standings:    memory.NewStandingRepository(db),
		}
		tx = memory.NewTxRunner(db)
	case config.StoragePostgres:
		db, err := openPostgres(ctx, a.cfg)
		if err != nil {
			return usecase.Repositories{}, nil, err
		}
		a.closers = append(a.closers, db.Close)
		repos = usecase.Repositories{
			Leagues:      postgres.NewLeagueRepository(db),
			Seasons:      postgres.NewSeasonRepository(db),
			Teams:        postgres.NewTeamRepository(db),
			Coaches:      postgres.NewCoachRepository(db),
			Players:      postgres.NewPlayerRepository(db),
			PlayerStats:  postgres.NewPlayerStatRepository(db),
			Transfers:    postgres.NewTransferRepository(db),
			Fixtures:     postgres.NewFixtureRepository(db),
			FixtureStats: postgres.NewFixtureStatRepository(db),
			Events:       postgres.NewFixtureEventRepository(db),
			Lineups:      postgres.NewFixtureLineupRepository(db),
			Performances: postgres.NewFixturePlayerRepository(db),
			Standings:    postgres.NewStandingRepository(db),
		}
		tx = postgres.NewTxRunner(db)
	default:
		return usecase.Repositories{}, nil, fmt.Errorf("unsupported storage driver %q", a.cfg.StorageDriver)
	}

	if a.cfg.CacheEnabled {
		repos.Leagues = cache.NewLeagueRepository(repos.Leagues, basecache.NewStore[league.League](a.cfg.CacheTTL))
		repos.Seasons = cache.NewSeasonRepository(repos.Seasons, basecache.NewStore[[]league.Season](a.cfg.CacheTTL))
		repos.Teams = cache.NewTeamRepository(repos.Teams, basecache.NewStore[team.Team](a.cfg.CacheTTL))
	}
	return repos, tx, nil
}

func newTranslator(cfg config.Config, logger *logging.Logger) (i18n.Translator, error) {
	if !cfg.TranslateEnabled {
		logger.Info("translation disabled", "reason", "TRANSLATE_ENABLED=false")
		return i18n.Nop{}, nil
	}
	client, err := translate.NewClient(translate.Config{
		HTTPClient:  outboundClient(cfg.TranslateTimeout),
		BaseURL:     cfg.TranslateBaseURL,
		TargetLang:  cfg.TranslateTargetLang,
		Timeout:     cfg.TranslateTimeout,
		Concurrency: cfg.TranslateConcurrency,
		CacheTTL:    cfg.TranslateCacheTTL,
		Logger:      logger,
	})
	if err != nil {
		return nil, fmt.Errorf("build translator: %w", err)
	}
	return client, nil
}

// outboundClient traces every upstream call as a child of the request span.
func outboundClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout:   timeout,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}
}

// HTTPServer wraps the router in an http.Server configured from the app settings.
func (a *App) HTTPServer() (*http.Server, error) {
	if a.cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	handler := httpapi.NewHandler(a.Services, a.logger)
	router := httpapi.NewRouter(handler, a.logger, a.cfg.SwaggerEnabled, a.cfg.CORSAllowedOrigins)

	return &http.Server{
		Addr:              a.cfg.HTTPAddr,
		Handler:           router,
		ReadTimeout:       a.cfg.ReadTimeout,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      a.cfg.WriteTimeout,
	}, nil
}

// Close releases storage handles in reverse order of acquisition.
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}
