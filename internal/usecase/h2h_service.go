package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/riskibarqy/football-cache/internal/domain/fixture"
	"go.opentelemetry.io/otel/attribute"
)

// MinLocalHeadToHead is how many finished local meetings are enough to skip
// the provider.
const MinLocalHeadToHead = 3

const (
	SourceLocal    = "local"
	SourceProvider = "provider"
)

type HeadToHead struct {
	TeamA    int64
	TeamB    int64
	Source   string
	Fixtures []fixture.Fixture
	Summary  fixture.Summary
}

type H2HService struct {
	graph *Graph
}

func NewH2HService(graph *Graph) *H2HService {
	return &H2HService{graph: graph}
}

// ForFixture summarizes previous meetings of a fixture's two teams, with the
// home team as the first side.
func (s *H2HService) ForFixture(ctx context.Context, fixtureID int64) (HeadToHead, error) {
	if err := requireID("fixture id", fixtureID); err != nil {
		return HeadToHead{}, err
	}
	ctx, span := startUsecaseSpan(ctx, "usecase.H2HService.ForFixture", attribute.Int64("fixture.id", fixtureID))
	defer span.End()

	items, err := load(ctx, s.graph, s.graph.fixtures(), fixtureID)
	if err != nil {
		return HeadToHead{}, fmt.Errorf("load fixture: %w", err)
	}
	f := items[0]
	return s.compute(ctx, f.Home.ID, f.Away.ID, f.ID, f.Kickoff)
}

func (s *H2HService) ForTeams(ctx context.Context, teamA, teamB int64) (HeadToHead, error) {
	if err := requireID("team id", teamA); err != nil {
		return HeadToHead{}, err
	}
	if err := requireID("other team id", teamB); err != nil {
		return HeadToHead{}, err
	}
	if teamA == teamB {
		return HeadToHead{}, fmt.Errorf("%w: teams must differ", ErrInvalidInput)
	}
	ctx, span := startUsecaseSpan(ctx, "usecase.H2HService.ForTeams",
		attribute.Int64("team.a", teamA), attribute.Int64("team.b", teamB))
	defer span.End()

	for _, id := range []int64{teamA, teamB} {
		if _, err := load(ctx, s.graph, s.graph.teams(), id); err != nil {
			return HeadToHead{}, fmt.Errorf("load team %d: %w", id, err)
		}
	}
	return s.compute(ctx, teamA, teamB, 0, time.Time{})
}

// compute prefers stored meetings. Provider meetings are summarized but not
// stored since they usually span leagues that are not cached. A non-zero
// before drops meetings played at or after it.
func (s *H2HService) compute(ctx context.Context, a, b, exclude int64, before time.Time) (HeadToHead, error) {
	local, err := s.graph.repos.Fixtures.ListHeadToHead(ctx, a, b)
	if err != nil {
		return HeadToHead{}, fmt.Errorf("list head to head: %w", err)
	}
	items := fixture.HeadToHead(local, a, b, exclude, before)
	source := SourceLocal

	if len(items) < MinLocalHeadToHead {
		remote, err := s.graph.provider.HeadToHead(ctx, a, b)
		if err != nil {
			return HeadToHead{}, fmt.Errorf("fetch head to head: %w", err)
		}
		items = fixture.HeadToHead(remote, a, b, exclude, before)
		source = SourceProvider
	}

	sort.SliceStable(items, func(i, j int) bool { return items[i].Kickoff.After(items[j].Kickoff) })
	return HeadToHead{
		TeamA:    a,
		TeamB:    b,
		Source:   source,
		Fixtures: items,
		Summary:  fixture.Summarize(a, b, items),
	}, nil
}
