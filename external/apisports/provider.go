package apisports

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/riskibarqy/football-cache/internal/domain/coach"
	"github.com/riskibarqy/football-cache/internal/domain/fixture"
	"github.com/riskibarqy/football-cache/internal/domain/fixturedetail"
	"github.com/riskibarqy/football-cache/internal/domain/standing"
	"github.com/riskibarqy/football-cache/internal/domain/team"
	"github.com/riskibarqy/football-cache/internal/domain/transfer"
	"github.com/riskibarqy/football-cache/internal/usecase"
)

func query(pairs ...string) url.Values {
	v := url.Values{}
	for i := 0; i+1 < len(pairs); i += 2 {
		v.Set(pairs[i], pairs[i+1])
	}
	return v
}

func id(v int64) string { return strconv.FormatInt(v, 10) }

func (c *Client) League(ctx context.Context, leagueID int64) (usecase.LeagueBundle, error) {
	items, _, err := get[leagueItem](ctx, c, "leagues", query("id", id(leagueID)))
	if err != nil {
		return usecase.LeagueBundle{}, fmt.Errorf("fetch league id=%d: %w", leagueID, err)
	}
	if len(items) == 0 {
		return usecase.LeagueBundle{}, fmt.Errorf("%w: league=%d", usecase.ErrNotFound, leagueID)
	}
	return mapLeague(items[0])
}

func (c *Client) Teams(ctx context.Context, leagueID int64, season int) ([]team.Team, error) {
	items, err := getAll[teamItem](ctx, c, "teams", query("league", id(leagueID), "season", strconv.Itoa(season)))
	if err != nil {
		return nil, fmt.Errorf("fetch teams league=%d season=%d: %w", leagueID, season, err)
	}
	out := make([]team.Team, 0, len(items))
	for _, item := range items {
		t, err := mapTeam(item)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

func (c *Client) Team(ctx context.Context, teamID int64) (team.Team, error) {
	items, _, err := get[teamItem](ctx, c, "teams", query("id", id(teamID)))
	if err != nil {
		return team.Team{}, fmt.Errorf("fetch team id=%d: %w", teamID, err)
	}
	if len(items) == 0 {
		return team.Team{}, fmt.Errorf("%w: team=%d", usecase.ErrNotFound, teamID)
	}
	return mapTeam(items[0])
}

func (c *Client) Coaches(ctx context.Context, teamID int64) ([]coach.Coach, error) {
	items, _, err := get[coachItem](ctx, c, "coachs", query("team", id(teamID)))
	if err != nil {
		return nil, fmt.Errorf("fetch coaches team=%d: %w", teamID, err)
	}
	out := make([]coach.Coach, 0, len(items))
	for _, item := range items {
		co, err := mapCoach(item)
		if err != nil {
			return nil, err
		}
		out = append(out, co)
	}
	return out, nil
}

func (c *Client) Squad(ctx context.Context, leagueID int64, season int, teamID int64) ([]usecase.SquadEntry, error) {
	items, err := getAll[playerItem](ctx, c, "players", query(
		"league", id(leagueID),
		"season", strconv.Itoa(season),
		"team", id(teamID),
	))
	if err != nil {
		return nil, fmt.Errorf("fetch squad team=%d season=%d: %w", teamID, season, err)
	}
	out := make([]usecase.SquadEntry, 0, len(items))
	for _, item := range items {
		entry, err := mapSquadEntry(item, teamID)
		if err != nil {
			return nil, err
		}
		out = append(out, entry)
	}
	return out, nil
}

func (c *Client) PlayerSeason(ctx context.Context, playerID int64, season int) (usecase.PlayerBundle, error) {
	items, err := getAll[playerItem](ctx, c, "players", query("id", id(playerID), "season", strconv.Itoa(season)))
	if err != nil {
		return usecase.PlayerBundle{}, fmt.Errorf("fetch player id=%d season=%d: %w", playerID, season, err)
	}
	if len(items) == 0 {
		return usecase.PlayerBundle{}, fmt.Errorf("%w: player=%d season=%d", usecase.ErrNotFound, playerID, season)
	}
	return mapPlayerBundle(items[0])
}

func (c *Client) fixtures(ctx context.Context, what string, q url.Values) ([]fixture.Fixture, error) {
	items, _, err := get[fixtureItem](ctx, c, "fixtures", q)
	if err != nil {
		return nil, fmt.Errorf("fetch fixtures %s: %w", what, err)
	}
	return mapFixtures(items)
}

func mapFixtures(items []fixtureItem) ([]fixture.Fixture, error) {
	out := make([]fixture.Fixture, 0, len(items))
	for _, item := range items {
		f, err := mapFixture(item)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, nil
}

func (c *Client) Fixtures(ctx context.Context, leagueID int64, season int) ([]fixture.Fixture, error) {
	return c.fixtures(ctx, fmt.Sprintf("league=%d season=%d", leagueID, season),
		query("league", id(leagueID), "season", strconv.Itoa(season)))
}

func (c *Client) Fixture(ctx context.Context, fixtureID int64) (fixture.Fixture, error) {
	items, err := c.fixtures(ctx, fmt.Sprintf("id=%d", fixtureID), query("id", id(fixtureID)))
	if err != nil {
		return fixture.Fixture{}, err
	}
	if len(items) == 0 {
		return fixture.Fixture{}, fmt.Errorf("%w: fixture=%d", usecase.ErrNotFound, fixtureID)
	}
	return items[0], nil
}

func (c *Client) FixturesByDate(ctx context.Context, date string) ([]fixture.Fixture, error) {
	return c.fixtures(ctx, "date="+date, query("date", date))
}

func (c *Client) HeadToHead(ctx context.Context, teamA, teamB int64) ([]fixture.Fixture, error) {
	items, _, err := get[fixtureItem](ctx, c, "fixtures/headtohead", query("h2h", id(teamA)+"-"+id(teamB)))
	if err != nil {
		return nil, fmt.Errorf("fetch head to head %d-%d: %w", teamA, teamB, err)
	}
	return mapFixtures(items)
}

func (c *Client) FixtureStatistics(ctx context.Context, fixtureID int64) ([]fixturedetail.TeamStat, error) {
	items, _, err := get[statisticsItem](ctx, c, "fixtures/statistics", query("fixture", id(fixtureID)))
	if err != nil {
		return nil, fmt.Errorf("fetch statistics fixture=%d: %w", fixtureID, err)
	}
	return mapTeamStats(fixtureID, items)
}

func (c *Client) FixtureEvents(ctx context.Context, fixtureID int64) ([]fixturedetail.Event, error) {
	items, _, err := get[eventItem](ctx, c, "fixtures/events", query("fixture", id(fixtureID)))
	if err != nil {
		return nil, fmt.Errorf("fetch events fixture=%d: %w", fixtureID, err)
	}
	return mapEvents(fixtureID, items), nil
}

func (c *Client) FixtureLineups(ctx context.Context, fixtureID int64) ([]fixturedetail.Lineup, error) {
	items, _, err := get[lineupItem](ctx, c, "fixtures/lineups", query("fixture", id(fixtureID)))
	if err != nil {
		return nil, fmt.Errorf("fetch lineups fixture=%d: %w", fixtureID, err)
	}
	return mapLineups(fixtureID, items)
}

func (c *Client) FixturePlayers(ctx context.Context, fixtureID int64) ([]fixturedetail.PlayerPerformance, error) {
	items, _, err := get[fixturePlayersItem](ctx, c, "fixtures/players", query("fixture", id(fixtureID)))
	if err != nil {
		return nil, fmt.Errorf("fetch players fixture=%d: %w", fixtureID, err)
	}
	return mapPerformances(fixtureID, items)
}

func (c *Client) Standings(ctx context.Context, leagueID int64, season int) ([]standing.Row, error) {
	items, _, err := get[standingsItem](ctx, c, "standings", query("league", id(leagueID), "season", strconv.Itoa(season)))
	if err != nil {
		return nil, fmt.Errorf("fetch standings league=%d season=%d: %w", leagueID, season, err)
	}
	return mapStandings(items)
}

func (c *Client) Transfers(ctx context.Context, playerID int64) ([]transfer.Transfer, error) {
	items, _, err := get[transfersItem](ctx, c, "transfers", query("player", id(playerID)))
	if err != nil {
		return nil, fmt.Errorf("fetch transfers player=%d: %w", playerID, err)
	}
	return mapTransfers(items)
}
