package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/football-cache/internal/domain/fixture"
	"github.com/riskibarqy/football-cache/internal/domain/fixturedetail"
	"github.com/riskibarqy/football-cache/internal/platform/readthrough"
	"go.opentelemetry.io/otel/attribute"
)

type FixtureService struct {
	graph *Graph
}

func NewFixtureService(graph *Graph) *FixtureService {
	return &FixtureService{graph: graph}
}

func (g *Graph) seasonFixtures() readthrough.Entity[seasonKey, fixture.Fixture] {
	return readthrough.Entity[seasonKey, fixture.Fixture]{
		Name: "fixtures",
		Key:  seasonKey.String,
		Lookup: func(ctx context.Context, k seasonKey) ([]fixture.Fixture, error) {
			synced, err := g.repos.Fixtures.Synced(ctx, fixture.SeasonScope(k.LeagueID, k.Season))
			if err != nil || !synced {
				return nil, err
			}
			return g.repos.Fixtures.ListBySeason(ctx, k.LeagueID, k.Season)
		},
		Populate: func(k seasonKey) readthrough.Node { return g.fixturesNode(k.LeagueID, k.Season) },
	}
}

func (g *Graph) fixtures() readthrough.Entity[int64, fixture.Fixture] {
	return readthrough.Entity[int64, fixture.Fixture]{
		Name: "fixture",
		Key:  func(id int64) string { return key(id) },
		Lookup: func(ctx context.Context, id int64) ([]fixture.Fixture, error) {
			item, ok, err := g.repos.Fixtures.GetByID(ctx, id)
			if err != nil || !ok {
				return nil, err
			}
			return []fixture.Fixture{item}, nil
		},
		Populate: g.fixtureNode,
	}
}

// detail builds the entity of a per-fixture sub-resource.
func detail[T any](name string, list func(context.Context, int64) ([]T, error), populate func(int64) readthrough.Node) readthrough.Entity[int64, T] {
	return readthrough.Entity[int64, T]{
		Name:     name,
		Key:      func(id int64) string { return key(id) },
		Lookup:   list,
		Populate: populate,
	}
}

func (s *FixtureService) ListBySeason(ctx context.Context, leagueRef string, season int) ([]fixture.Fixture, error) {
	leagueID, err := parseLeague(leagueRef)
	if err != nil {
		return nil, err
	}
	ctx, span := startUsecaseSpan(ctx, "usecase.FixtureService.ListBySeason", attribute.Int64("league.id", leagueID))
	defer span.End()

	season, err = s.graph.season(ctx, leagueID, season)
	if err != nil {
		return nil, err
	}
	items, err := load(ctx, s.graph, s.graph.seasonFixtures(), seasonKey{LeagueID: leagueID, Season: season})
	if err != nil {
		return nil, fmt.Errorf("load fixtures: %w", err)
	}
	return items, nil
}

// ListByRound returns the regular-season fixtures of one round. The season
// is populated as a whole on a miss since the provider has no round filter.
func (s *FixtureService) ListByRound(ctx context.Context, leagueRef string, season, round int) ([]fixture.Fixture, error) {
	leagueID, err := parseLeague(leagueRef)
	if err != nil {
		return nil, err
	}
	if round <= 0 {
		return nil, fmt.Errorf("%w: round must be a positive integer", ErrInvalidInput)
	}
	ctx, span := startUsecaseSpan(ctx, "usecase.FixtureService.ListByRound",
		attribute.Int64("league.id", leagueID), attribute.Int("fixture.round", round))
	defer span.End()

	season, err = s.graph.season(ctx, leagueID, season)
	if err != nil {
		return nil, err
	}
	if _, err := load(ctx, s.graph, s.graph.seasonFixtures(), seasonKey{LeagueID: leagueID, Season: season}); err != nil {
		return nil, fmt.Errorf("load fixtures: %w", err)
	}
	items, err := s.graph.repos.Fixtures.ListBySeasonRound(ctx, leagueID, season, fixture.RoundPrefix(round))
	if err != nil {
		return nil, fmt.Errorf("list round: %w", err)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: league=%d season=%d round=%d", ErrNotFound, leagueID, season, round)
	}
	return items, nil
}

func (s *FixtureService) Get(ctx context.Context, fixtureID int64) (fixture.Fixture, error) {
	if err := requireID("fixture id", fixtureID); err != nil {
		return fixture.Fixture{}, err
	}
	ctx, span := startUsecaseSpan(ctx, "usecase.FixtureService.Get", attribute.Int64("fixture.id", fixtureID))
	defer span.End()

	items, err := load(ctx, s.graph, s.graph.fixtures(), fixtureID)
	if err != nil {
		return fixture.Fixture{}, fmt.Errorf("load fixture: %w", err)
	}
	return items[0], nil
}

func (s *FixtureService) Statistics(ctx context.Context, fixtureID int64) ([]fixturedetail.TeamStat, error) {
	if err := requireID("fixture id", fixtureID); err != nil {
		return nil, err
	}
	ctx, span := startUsecaseSpan(ctx, "usecase.FixtureService.Statistics", attribute.Int64("fixture.id", fixtureID))
	defer span.End()

	e := detail("fixture-statistics", s.graph.repos.FixtureStats.ListByFixture, s.graph.fixtureStatsNode)
	items, err := load(ctx, s.graph, e, fixtureID)
	if err != nil {
		return nil, fmt.Errorf("load statistics: %w", err)
	}
	return items, nil
}

func (s *FixtureService) Events(ctx context.Context, fixtureID int64) ([]fixturedetail.Event, error) {
	if err := requireID("fixture id", fixtureID); err != nil {
		return nil, err
	}
	ctx, span := startUsecaseSpan(ctx, "usecase.FixtureService.Events", attribute.Int64("fixture.id", fixtureID))
	defer span.End()

	e := detail("fixture-events", s.graph.repos.Events.ListByFixture, s.graph.fixtureEventsNode)
	items, err := load(ctx, s.graph, e, fixtureID)
	if err != nil {
		return nil, fmt.Errorf("load events: %w", err)
	}
	return items, nil
}

func (s *FixtureService) Lineups(ctx context.Context, fixtureID int64) ([]fixturedetail.Lineup, error) {
	if err := requireID("fixture id", fixtureID); err != nil {
		return nil, err
	}
	ctx, span := startUsecaseSpan(ctx, "usecase.FixtureService.Lineups", attribute.Int64("fixture.id", fixtureID))
	defer span.End()

	e := detail("fixture-lineups", s.graph.repos.Lineups.ListByFixture, s.graph.fixtureLineupsNode)
	items, err := load(ctx, s.graph, e, fixtureID)
	if err != nil {
		return nil, fmt.Errorf("load lineups: %w", err)
	}
	return items, nil
}

func (s *FixtureService) Players(ctx context.Context, fixtureID int64) ([]fixturedetail.PlayerPerformance, error) {
	if err := requireID("fixture id", fixtureID); err != nil {
		return nil, err
	}
	ctx, span := startUsecaseSpan(ctx, "usecase.FixtureService.Players", attribute.Int64("fixture.id", fixtureID))
	defer span.End()

	e := detail("fixture-players", s.graph.repos.Performances.ListByFixture, s.graph.fixturePlayersNode)
	items, err := load(ctx, s.graph, e, fixtureID)
	if err != nil {
		return nil, fmt.Errorf("load players: %w", err)
	}
	return items, nil
}
