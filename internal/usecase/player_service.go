package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/football-cache/internal/domain/player"
	"github.com/riskibarqy/football-cache/internal/domain/playerstats"
	"github.com/riskibarqy/football-cache/internal/domain/transfer"
	"github.com/riskibarqy/football-cache/internal/platform/readthrough"
	"go.opentelemetry.io/otel/attribute"
)

type PlayerSeason struct {
	Player player.Player
	Season int
	Stats  []playerstats.Stat
}

type PlayerService struct {
	graph *Graph
}

func NewPlayerService(graph *Graph) *PlayerService {
	return &PlayerService{graph: graph}
}

type squadKey struct {
	LeagueID int64
	Season   int
	TeamID   int64
}

type playerSeasonKey struct {
	PlayerID int64
	Season   int
}

func (g *Graph) squads() readthrough.Entity[squadKey, player.SquadMember] {
	return readthrough.Entity[squadKey, player.SquadMember]{
		Name: "squad",
		Key:  func(k squadKey) string { return key(k.LeagueID, k.Season, k.TeamID) },
		Lookup: func(ctx context.Context, k squadKey) ([]player.SquadMember, error) {
			return g.repos.Players.ListSquad(ctx, k.LeagueID, k.TeamID, k.Season)
		},
		Populate: func(k squadKey) readthrough.Node { return g.squadNode(k.LeagueID, k.Season, k.TeamID) },
	}
}

func (g *Graph) playerStats() readthrough.Entity[playerSeasonKey, playerstats.Stat] {
	return readthrough.Entity[playerSeasonKey, playerstats.Stat]{
		Name: "player-stats",
		Key:  func(k playerSeasonKey) string { return key(k.PlayerID, k.Season) },
		Lookup: func(ctx context.Context, k playerSeasonKey) ([]playerstats.Stat, error) {
			return g.repos.PlayerStats.ListByPlayerSeason(ctx, k.PlayerID, k.Season)
		},
		Populate: func(k playerSeasonKey) readthrough.Node { return g.playerSeasonNode(k.PlayerID, k.Season) },
	}
}

func (g *Graph) transfers() readthrough.Entity[int64, transfer.Transfer] {
	return readthrough.Entity[int64, transfer.Transfer]{
		Name: "transfers",
		Key:  func(id int64) string { return key(id) },
		Lookup: func(ctx context.Context, playerID int64) ([]transfer.Transfer, error) {
			return g.repos.Transfers.ListByPlayer(ctx, playerID)
		},
		Populate: g.transfersNode,
	}
}

// Squad returns a team's players for a league season; season 0 means current.
func (s *PlayerService) Squad(ctx context.Context, leagueRef string, season int, teamID int64) ([]player.SquadMember, error) {
	leagueID, err := parseLeague(leagueRef)
	if err != nil {
		return nil, err
	}
	if err := requireID("team id", teamID); err != nil {
		return nil, err
	}
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Squad",
		attribute.Int64("league.id", leagueID), attribute.Int64("team.id", teamID))
	defer span.End()

	season, err = s.graph.season(ctx, leagueID, season)
	if err != nil {
		return nil, err
	}
	squad, err := load(ctx, s.graph, s.graph.squads(), squadKey{LeagueID: leagueID, Season: season, TeamID: teamID})
	if err != nil {
		return nil, fmt.Errorf("load squad: %w", err)
	}
	return squad, nil
}

func (s *PlayerService) SeasonStats(ctx context.Context, playerID int64, season int) (PlayerSeason, error) {
	if err := requireID("player id", playerID); err != nil {
		return PlayerSeason{}, err
	}
	if season <= 0 {
		return PlayerSeason{}, fmt.Errorf("%w: season must be a positive integer", ErrInvalidInput)
	}
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.SeasonStats", attribute.Int64("player.id", playerID))
	defer span.End()

	stats, err := load(ctx, s.graph, s.graph.playerStats(), playerSeasonKey{PlayerID: playerID, Season: season})
	if err != nil {
		return PlayerSeason{}, fmt.Errorf("load player stats: %w", err)
	}
	p, ok, err := s.graph.repos.Players.GetByID(ctx, playerID)
	if err != nil {
		return PlayerSeason{}, fmt.Errorf("get player: %w", err)
	}
	if !ok {
		return PlayerSeason{}, fmt.Errorf("%w: player=%d", ErrNotFound, playerID)
	}
	return PlayerSeason{Player: p, Season: season, Stats: stats}, nil
}

func (s *PlayerService) Transfers(ctx context.Context, playerID int64) ([]transfer.Transfer, error) {
	if err := requireID("player id", playerID); err != nil {
		return nil, err
	}
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Transfers", attribute.Int64("player.id", playerID))
	defer span.End()

	items, err := load(ctx, s.graph, s.graph.transfers(), playerID)
	if err != nil {
		return nil, fmt.Errorf("load transfers: %w", err)
	}
	return items, nil
}
