package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/football-cache/internal/domain/league"
	"github.com/riskibarqy/football-cache/internal/platform/readthrough"
	"go.opentelemetry.io/otel/attribute"
)

type LeagueDetails struct {
	League  league.League
	Seasons []league.Season
}

type LeagueService struct {
	graph *Graph
}

func NewLeagueService(graph *Graph) *LeagueService {
	return &LeagueService{graph: graph}
}

func (g *Graph) leagues() readthrough.Entity[int64, league.League] {
	return readthrough.Entity[int64, league.League]{
		Name: "league",
		Key:  func(id int64) string { return key(id) },
		Lookup: func(ctx context.Context, id int64) ([]league.League, error) {
			item, ok, err := g.repos.Leagues.GetByID(ctx, id)
			if err != nil || !ok {
				return nil, err
			}
			return []league.League{item}, nil
		},
		Populate: g.leagueNode,
	}
}

func (g *Graph) seasons() readthrough.Entity[int64, league.Season] {
	return readthrough.Entity[int64, league.Season]{
		Name: "seasons",
		Key:  func(id int64) string { return key(id) },
		Lookup: func(ctx context.Context, id int64) ([]league.Season, error) {
			return g.repos.Seasons.ListByLeague(ctx, id)
		},
		Populate: g.leagueNode,
	}
}

// season returns the requested season, or the league's current one when season is 0.
func (g *Graph) season(ctx context.Context, leagueID int64, season int) (int, error) {
	if err := requireSeason(season); err != nil {
		return 0, err
	}
	if season > 0 {
		return season, nil
	}
	seasons, err := load(ctx, g, g.seasons(), leagueID)
	if err != nil {
		return 0, fmt.Errorf("load seasons: %w", err)
	}
	current, ok := league.CurrentSeason(seasons)
	if !ok {
		return 0, fmt.Errorf("%w: league=%d has no seasons", ErrNotFound, leagueID)
	}
	return current.Year, nil
}

func (s *LeagueService) Get(ctx context.Context, leagueRef string) (LeagueDetails, error) {
	leagueID, err := parseLeague(leagueRef)
	if err != nil {
		return LeagueDetails{}, err
	}
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.Get", attribute.Int64("league.id", leagueID))
	defer span.End()

	leagues, err := load(ctx, s.graph, s.graph.leagues(), leagueID)
	if err != nil {
		return LeagueDetails{}, fmt.Errorf("load league: %w", err)
	}
	seasons, err := s.graph.repos.Seasons.ListByLeague(ctx, leagueID)
	if err != nil {
		return LeagueDetails{}, fmt.Errorf("list seasons: %w", err)
	}
	return LeagueDetails{League: leagues[0], Seasons: seasons}, nil
}

// CurrentSeason returns the season flagged current, or the latest one.
func (s *LeagueService) CurrentSeason(ctx context.Context, leagueRef string) (int, error) {
	leagueID, err := parseLeague(leagueRef)
	if err != nil {
		return 0, err
	}
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.CurrentSeason", attribute.Int64("league.id", leagueID))
	defer span.End()

	return s.graph.season(ctx, leagueID, 0)
}
