package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/football-cache/internal/domain/coach"
	"github.com/riskibarqy/football-cache/internal/domain/team"
	"github.com/riskibarqy/football-cache/internal/platform/readthrough"
	"go.opentelemetry.io/otel/attribute"
)

type TeamService struct {
	graph *Graph
}

func NewTeamService(graph *Graph) *TeamService {
	return &TeamService{graph: graph}
}

type seasonKey struct {
	LeagueID int64
	Season   int
}

func (k seasonKey) String() string { return key(k.LeagueID, k.Season) }

func (g *Graph) seasonTeams() readthrough.Entity[seasonKey, team.Team] {
	return readthrough.Entity[seasonKey, team.Team]{
		Name: "teams",
		Key:  seasonKey.String,
		Lookup: func(ctx context.Context, k seasonKey) ([]team.Team, error) {
			return g.repos.Teams.ListBySeason(ctx, k.LeagueID, k.Season)
		},
		Populate: func(k seasonKey) readthrough.Node { return g.teamSeasonNode(k.LeagueID, k.Season) },
	}
}

func (g *Graph) teams() readthrough.Entity[int64, team.Team] {
	return readthrough.Entity[int64, team.Team]{
		Name: "team",
		Key:  func(id int64) string { return key(id) },
		Lookup: func(ctx context.Context, id int64) ([]team.Team, error) {
			item, ok, err := g.repos.Teams.GetByID(ctx, id)
			if err != nil || !ok {
				return nil, err
			}
			return []team.Team{item}, nil
		},
		Populate: g.teamNode,
	}
}

func (g *Graph) coaches() readthrough.Entity[int64, coach.Coach] {
	return readthrough.Entity[int64, coach.Coach]{
		Name: "coaches",
		Key:  func(id int64) string { return key(id) },
		Lookup: func(ctx context.Context, teamID int64) ([]coach.Coach, error) {
			return g.repos.Coaches.ListByTeam(ctx, teamID)
		},
		Populate: g.coachesNode,
	}
}

// ListBySeason returns the teams of a league season; season 0 means current.
func (s *TeamService) ListBySeason(ctx context.Context, leagueRef string, season int) ([]team.Team, error) {
	leagueID, err := parseLeague(leagueRef)
	if err != nil {
		return nil, err
	}
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.ListBySeason", attribute.Int64("league.id", leagueID))
	defer span.End()

	season, err = s.graph.season(ctx, leagueID, season)
	if err != nil {
		return nil, err
	}
	teams, err := load(ctx, s.graph, s.graph.seasonTeams(), seasonKey{LeagueID: leagueID, Season: season})
	if err != nil {
		return nil, fmt.Errorf("load teams: %w", err)
	}
	return teams, nil
}

func (s *TeamService) Get(ctx context.Context, teamID int64) (team.Team, error) {
	if err := requireID("team id", teamID); err != nil {
		return team.Team{}, err
	}
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Get", attribute.Int64("team.id", teamID))
	defer span.End()

	teams, err := load(ctx, s.graph, s.graph.teams(), teamID)
	if err != nil {
		return team.Team{}, fmt.Errorf("load team: %w", err)
	}
	return teams[0], nil
}

func (s *TeamService) Coaches(ctx context.Context, teamID int64) ([]coach.Coach, error) {
	if err := requireID("team id", teamID); err != nil {
		return nil, err
	}
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Coaches", attribute.Int64("team.id", teamID))
	defer span.End()

	coaches, err := load(ctx, s.graph, s.graph.coaches(), teamID)
	if err != nil {
		return nil, fmt.Errorf("load coaches: %w", err)
	}
	return coaches, nil
}
