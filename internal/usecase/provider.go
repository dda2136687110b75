package usecase

import (
	"context"

	"github.com/riskibarqy/football-cache/internal/domain/coach"
	"github.com/riskibarqy/football-cache/internal/domain/fixture"
	"github.com/riskibarqy/football-cache/internal/domain/fixturedetail"
	"github.com/riskibarqy/football-cache/internal/domain/league"
	"github.com/riskibarqy/football-cache/internal/domain/player"
	"github.com/riskibarqy/football-cache/internal/domain/playerstats"
	"github.com/riskibarqy/football-cache/internal/domain/standing"
	"github.com/riskibarqy/football-cache/internal/domain/team"
	"github.com/riskibarqy/football-cache/internal/domain/transfer"
)

// SportsProvider is the upstream football data source. Single-resource calls
// return ErrNotFound when the provider has nothing for the key; list calls
// return an empty slice instead.
type SportsProvider interface {
	League(ctx context.Context, leagueID int64) (LeagueBundle, error)
	Teams(ctx context.Context, leagueID int64, season int) ([]team.Team, error)
	Team(ctx context.Context, teamID int64) (team.Team, error)
	Coaches(ctx context.Context, teamID int64) ([]coach.Coach, error)
	Squad(ctx context.Context, leagueID int64, season int, teamID int64) ([]SquadEntry, error)
	PlayerSeason(ctx context.Context, playerID int64, season int) (PlayerBundle, error)
	Fixtures(ctx context.Context, leagueID int64, season int) ([]fixture.Fixture, error)
	Fixture(ctx context.Context, fixtureID int64) (fixture.Fixture, error)
	FixturesByDate(ctx context.Context, date string) ([]fixture.Fixture, error)
	HeadToHead(ctx context.Context, teamA, teamB int64) ([]fixture.Fixture, error)
	FixtureStatistics(ctx context.Context, fixtureID int64) ([]fixturedetail.TeamStat, error)
	FixtureEvents(ctx context.Context, fixtureID int64) ([]fixturedetail.Event, error)
	FixtureLineups(ctx context.Context, fixtureID int64) ([]fixturedetail.Lineup, error)
	FixturePlayers(ctx context.Context, fixtureID int64) ([]fixturedetail.PlayerPerformance, error)
	Standings(ctx context.Context, leagueID int64, season int) ([]standing.Row, error)
	Transfers(ctx context.Context, playerID int64) ([]transfer.Transfer, error)
}

type LeagueBundle struct {
	League  league.League
	Seasons []league.Season
}

// SquadEntry is one player row of a team squad page.
// SquadEntry is one squad player with the season stats the squad payload carries.
type SquadEntry struct {
	Player   player.Player
	Number   *int
	Position string
	Stats    []playerstats.Stat
}

type PlayerBundle struct {
	Player player.Player
	Stats  []playerstats.Stat
}
