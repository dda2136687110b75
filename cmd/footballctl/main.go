// Command footballctl is the operator CLI for the football cache.
//
// Usage:
//
//	footballctl leagues
//	footballctl warm
//	footballctl warm --league PremierLeague --league 140 --season 2023 --kinds teams,fixtures --workers 4
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	sonic "github.com/bytedance/sonic"
	"github.com/joho/godotenv"
	"github.com/riskibarqy/football-cache/internal/app"
	"github.com/riskibarqy/football-cache/internal/config"
	"github.com/riskibarqy/football-cache/internal/domain/league"
	"github.com/riskibarqy/football-cache/internal/platform/logging"
	"github.com/riskibarqy/football-cache/internal/usecase"
	"github.com/spf13/cobra"
)

func main() {
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "footballctl",
		Short:         "Football cache operator CLI",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(leaguesCmd(), warmCmd())
	return root
}

func leaguesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "leagues",
		Short: "List the league symbols the API accepts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tSYMBOL")
			for _, entry := range league.Catalog() {
				fmt.Fprintf(w, "%d\t%s\n", entry.ID, entry.Symbol)
			}
			return w.Flush()
		},
	}
}

type warmFlags struct {
	leagues []string
	season  int
	kinds   []string
	workers int
}

func warmCmd() *cobra.Command {
	var flags warmFlags
	cmd := &cobra.Command{
		Use:   "warm",
		Short: "Populate storage for the tracked leagues through the read-through paths",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			input, err := flags.input(cfg)
			if err != nil {
				return err
			}

			logger := logging.NewJSON(cfg.LogLevel).Named("footballctl")
			logging.SetDefault(logger)
			defer func() { _ = logger.Sync() }()

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return runWarm(ctx, cmd, cfg, logger, input)
		},
	}
	cmd.Flags().StringSliceVar(&flags.leagues, "league", nil, "League symbol or id (repeatable; default TRACKED_LEAGUES)")
	cmd.Flags().IntVar(&flags.season, "season", 0, "Season year (0 = current season of each league)")
	cmd.Flags().StringSliceVar(&flags.kinds, "kinds", nil, "Comma separated kinds: league,teams,fixtures,standings (default all)")
	cmd.Flags().IntVar(&flags.workers, "workers", 0, "Worker pool size (default WARM_CONCURRENCY)")
	return cmd
}

func (f warmFlags) input(cfg config.Config) (usecase.WarmInput, error) {
	leagueIDs := cfg.TrackedLeagues
	if len(f.leagues) > 0 {
		leagueIDs = make([]int64, 0, len(f.leagues))
		for _, ref := range f.leagues {
			id, ok := league.ParseRef(ref)
			if !ok {
				return usecase.WarmInput{}, fmt.Errorf("unknown league %q", ref)
			}
			leagueIDs = append(leagueIDs, id)
		}
	}
	if len(leagueIDs) == 0 {
		for _, entry := range league.Catalog() {
			leagueIDs = append(leagueIDs, entry.ID)
		}
	}

	kinds, err := usecase.ParseWarmKinds(f.kinds)
	if err != nil {
		return usecase.WarmInput{}, err
	}

	workers := f.workers
	if workers <= 0 {
		workers = cfg.WarmConcurrency
	}

	return usecase.WarmInput{
		LeagueIDs:  leagueIDs,
		Season:     f.season,
		Kinds:      kinds,
		MaxWorkers: workers,
	}, nil
}

func runWarm(ctx context.Context, cmd *cobra.Command, cfg config.Config, logger *logging.Logger, input usecase.WarmInput) error {
	application, err := app.New(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("build app: %w", err)
	}
	defer func() {
		if err := application.Close(); err != nil {
			logger.Warn("close app", "error", err)
		}
	}()

	logger.Info("warm starting", "leagues", len(input.LeagueIDs), "kinds", len(input.Kinds), "workers", input.MaxWorkers)
	result, err := application.Warm.Warm(ctx, input)
	if err != nil {
		return err
	}
	logger.Info("warm finished",
		"tasks", result.TaskCount,
		"succeeded", result.SuccessCount,
		"failed", result.FailedCount,
		"duration_ms", result.DurationMs,
	)

	out, err := sonic.ConfigStd.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))

	if result.FailedCount > 0 {
		return fmt.Errorf("%d of %d warm tasks failed", result.FailedCount, result.TaskCount)
	}
	return nil
}
