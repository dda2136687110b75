package usecase_test

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/riskibarqy/football-cache/internal/domain/fixture"
	"github.com/riskibarqy/football-cache/internal/domain/league"
	"github.com/riskibarqy/football-cache/internal/domain/team"
	"github.com/riskibarqy/football-cache/internal/infrastructure/repository/memory"
	usecasemock "github.com/riskibarqy/football-cache/internal/mocks/usecase"
	"github.com/riskibarqy/football-cache/internal/platform/i18n"
	"github.com/riskibarqy/football-cache/internal/platform/logging"
	"github.com/riskibarqy/football-cache/internal/platform/readthrough"
	"github.com/riskibarqy/football-cache/internal/usecase"
)

const (
	premierLeague = int64(39)
	season2023    = 2023
	arsenal       = int64(42)
	chelsea       = int64(49)
)

// prefixTranslator returns "fa:" + text and records every batch it receives.
type prefixTranslator struct {
	mu      sync.Mutex
	batches [][]string
	err     error
}

func (p *prefixTranslator) Translate(_ context.Context, texts []string) (i18n.Dictionary, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.batches = append(p.batches, append([]string(nil), texts...))
	if p.err != nil {
		return nil, p.err
	}
	out := make(i18n.Dictionary, len(texts))
	for _, text := range texts {
		out[text] = "fa:" + text
	}
	return out, nil
}

func (p *prefixTranslator) calls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.batches)
}

type harness struct {
	repos      usecase.Repositories
	provider   *usecasemock.SportsProvider
	translator *prefixTranslator
	graph      *usecase.Graph
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	db := memory.NewDB()
	repos := usecase.Repositories{
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
	provider := usecasemock.NewSportsProvider(t)
	translator := &prefixTranslator{}

	logger := logging.NewNop()
	resolver := readthrough.NewResolver(readthrough.Env{
		Translator: translator,
		Tx:         memory.NewTxRunner(db),
	}, readthrough.DefaultMaxDepth, logger)
	orchestrator := readthrough.NewOrchestrator(resolver, logger)

	return &harness{
		repos:      repos,
		provider:   provider,
		translator: translator,
		graph:      usecase.NewGraph(repos, provider, orchestrator),
	}
}

func premierLeagueBundle() usecase.LeagueBundle {
	return usecase.LeagueBundle{
		League: league.League{
			ID:      premierLeague,
			Name:    "Premier League",
			Type:    "League",
			Country: league.Country{Name: "England", Code: "GB"},
		},
		Seasons: []league.Season{
			{LeagueID: premierLeague, Year: 2022},
			{LeagueID: premierLeague, Year: season2023, Current: true},
		},
	}
}

func seasonTeams() []team.Team {
	return []team.Team{
		{ID: arsenal, Name: "Arsenal", Country: "England", Venue: team.Venue{Name: "Emirates Stadium", City: "London"}},
		{ID: chelsea, Name: "Chelsea", Country: "England", Venue: team.Venue{Name: "Stamford Bridge", City: "London"}},
	}
}

// seedSeason stores the league, its seasons and both teams without touching the provider.
func (h *harness) seedSeason(t *testing.T) {
	t.Helper()
	ctx := context.Background()
	bundle := premierLeagueBundle()
	if err := h.repos.Leagues.Upsert(ctx, bundle.League); err != nil {
		t.Fatalf("seed league: %v", err)
	}
	if err := h.repos.Seasons.UpsertMany(ctx, bundle.Seasons); err != nil {
		t.Fatalf("seed seasons: %v", err)
	}
	if err := h.repos.Teams.UpsertMany(ctx, seasonTeams()); err != nil {
		t.Fatalf("seed teams: %v", err)
	}
	if err := h.repos.Teams.AttachToSeason(ctx, []team.Membership{
		{TeamID: arsenal, LeagueID: premierLeague, Season: season2023},
		{TeamID: chelsea, LeagueID: premierLeague, Season: season2023},
	}); err != nil {
		t.Fatalf("seed memberships: %v", err)
	}
}

func finished(id int64, home, away int64, homeGoals, awayGoals int, kickoff time.Time) fixture.Fixture {
	return fixture.Fixture{
		ID:       id,
		LeagueID: premierLeague,
		Season:   season2023,
		Round:    "Regular Season - 1",
		Kickoff:  kickoff,
		Status:   fixture.Status{Long: "Match Finished", Short: fixture.StatusFinished},
		Home:     team.Ref{ID: home},
		Away:     team.Ref{ID: away},
		Goals:    fixture.Score{Home: fixture.IntPtr(homeGoals), Away: fixture.IntPtr(awayGoals)},
	}
}

func scheduled(id int64, round string, kickoff time.Time) fixture.Fixture {
	return fixture.Fixture{
		ID:         id,
		LeagueID:   premierLeague,
		LeagueName: "Premier League",
		Season:     season2023,
		Round:      round,
		Kickoff:    kickoff,
		Status:     fixture.Status{Long: "Not Started", Short: "NS"},
		Home:       team.Ref{ID: arsenal, Name: "Arsenal"},
		Away:       team.Ref{ID: chelsea, Name: "Chelsea"},
	}
}

func containsText(batches [][]string, text string) bool {
	for _, batch := range batches {
		for _, item := range batch {
			if strings.EqualFold(item, text) {
				return true
			}
		}
	}
	return false
}
