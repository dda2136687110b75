package usecase

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/riskibarqy/football-cache/internal/domain/fixture"
	"github.com/riskibarqy/football-cache/internal/domain/league"
	"go.opentelemetry.io/otel/attribute"
)

// MatchService lists the fixtures of a day across the tracked leagues.
type MatchService struct {
	graph     *Graph
	leagueIDs []int64
}

// NewMatchService tracks every catalog league when leagueIDs is empty.
func NewMatchService(graph *Graph, leagueIDs []int64) *MatchService {
	if len(leagueIDs) == 0 {
		for _, e := range league.Catalog() {
			leagueIDs = append(leagueIDs, e.ID)
		}
	}
	ids := slices.Clone(leagueIDs)
	slices.Sort(ids)
	return &MatchService{graph: graph, leagueIDs: slices.Compact(ids)}
}

func (s *MatchService) TrackedLeagues() []int64 {
	return slices.Clone(s.leagueIDs)
}

// ByDate returns the day's fixtures ordered by kickoff. A day without
// matches is an empty list, not a miss.
func (s *MatchService) ByDate(ctx context.Context, date string) ([]fixture.Fixture, error) {
	day, err := time.ParseInLocation(time.DateOnly, strings.TrimSpace(date), time.UTC)
	if err != nil {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidInput)
	}
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.ByDate", attribute.String("match.date", day.Format(time.DateOnly)))
	defer span.End()

	synced, err := s.graph.repos.Fixtures.Synced(ctx, fixture.DayScope(day, s.leagueIDs))
	if err != nil {
		return nil, fmt.Errorf("check matches sync: %w", err)
	}
	if !synced {
		if err := s.graph.orchestrator.Resolve(ctx, s.graph.fixturesOnDateNode(day, s.leagueIDs)); err != nil {
			return nil, fmt.Errorf("resolve matches: %w", err)
		}
	}
	items, err := s.graph.repos.Fixtures.ListByDate(ctx, day, day.AddDate(0, 0, 1), s.leagueIDs)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}
	if items == nil {
		items = []fixture.Fixture{}
	}
	return items, nil
}
