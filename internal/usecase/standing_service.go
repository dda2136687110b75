package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/football-cache/internal/domain/standing"
	"github.com/riskibarqy/football-cache/internal/platform/readthrough"
	"go.opentelemetry.io/otel/attribute"
)

type StandingService struct {
	graph *Graph
}

func NewStandingService(graph *Graph) *StandingService {
	return &StandingService{graph: graph}
}

func (g *Graph) standings() readthrough.Entity[seasonKey, standing.Row] {
	return readthrough.Entity[seasonKey, standing.Row]{
		Name: "standings",
		Key:  seasonKey.String,
		Lookup: func(ctx context.Context, k seasonKey) ([]standing.Row, error) {
			return g.repos.Standings.ListBySeason(ctx, k.LeagueID, k.Season)
		},
		Populate: func(k seasonKey) readthrough.Node { return g.standingsNode(k.LeagueID, k.Season) },
	}
}

// Table returns the league table ordered by group then rank.
func (s *StandingService) Table(ctx context.Context, leagueRef string, season int) ([]standing.Row, error) {
	leagueID, err := parseLeague(leagueRef)
	if err != nil {
		return nil, err
	}
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingService.Table", attribute.Int64("league.id", leagueID))
	defer span.End()

	season, err = s.graph.season(ctx, leagueID, season)
	if err != nil {
		return nil, err
	}
	rows, err := load(ctx, s.graph, s.graph.standings(), seasonKey{LeagueID: leagueID, Season: season})
	if err != nil {
		return nil, fmt.Errorf("load standings: %w", err)
	}
	return rows, nil
}
