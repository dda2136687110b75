package usecase

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/riskibarqy/football-cache/internal/domain/coach"
	"github.com/riskibarqy/football-cache/internal/domain/fixture"
	"github.com/riskibarqy/football-cache/internal/domain/fixturedetail"
	"github.com/riskibarqy/football-cache/internal/domain/league"
	"github.com/riskibarqy/football-cache/internal/domain/player"
	"github.com/riskibarqy/football-cache/internal/domain/playerstats"
	"github.com/riskibarqy/football-cache/internal/domain/standing"
	"github.com/riskibarqy/football-cache/internal/domain/team"
	"github.com/riskibarqy/football-cache/internal/domain/transfer"
	"github.com/riskibarqy/football-cache/internal/platform/i18n"
	"github.com/riskibarqy/football-cache/internal/platform/readthrough"
)

// Repositories is the storage a Graph reads from and populates.
type Repositories struct {
	Leagues      league.Repository
	Seasons      league.SeasonRepository
	Teams        team.Repository
	Coaches      coach.Repository
	Players      player.Repository
	PlayerStats  playerstats.Repository
	Transfers    transfer.Repository
	Fixtures     fixture.Repository
	FixtureStats fixturedetail.StatRepository
	Events       fixturedetail.EventRepository
	Lineups      fixturedetail.LineupRepository
	Performances fixturedetail.PerformanceRepository
	Standings    standing.Repository
}

// Graph builds the read-through node for every provider resource and knows
// which parents each one needs before it can be stored.
type Graph struct {
	repos        Repositories
	provider     SportsProvider
	orchestrator *readthrough.Orchestrator
}

func NewGraph(repos Repositories, provider SportsProvider, orchestrator *readthrough.Orchestrator) *Graph {
	return &Graph{repos: repos, provider: provider, orchestrator: orchestrator}
}

func key(parts ...any) string {
	out := ""
	for i, p := range parts {
		if i > 0 {
			out += ":"
		}
		out += fmt.Sprint(p)
	}
	return out
}

func (g *Graph) persistLeague(ctx context.Context, bundle LeagueBundle, dict i18n.Dictionary) error {
	if err := g.repos.Leagues.Upsert(ctx, localizeLeague(bundle.League, dict)); err != nil {
		return fmt.Errorf("upsert league: %w", err)
	}
	if err := g.repos.Seasons.UpsertMany(ctx, bundle.Seasons); err != nil {
		return fmt.Errorf("upsert seasons: %w", err)
	}
	return nil
}

// leagueNode materializes a league and all of its seasons.
func (g *Graph) leagueNode(leagueID int64) readthrough.Node {
	return readthrough.New(readthrough.Spec[LeagueBundle]{
		Kind: "league",
		ID:   key(leagueID),
		Exists: func(ctx context.Context) (bool, error) {
			_, ok, err := g.repos.Leagues.GetByID(ctx, leagueID)
			return ok, err
		},
		Fetch: func(ctx context.Context) (LeagueBundle, error) {
			return g.provider.League(ctx, leagueID)
		},
		Texts: func(b LeagueBundle) []string { return leagueTexts(b.League) },
		Persist: func(ctx context.Context, b LeagueBundle, dict i18n.Dictionary) error {
			return g.persistLeague(ctx, b, dict)
		},
	})
}

// seasonNode re-reads the league when a season is missing even though the
// league row exists, e.g. after a new season started.
func (g *Graph) seasonNode(leagueID int64, season int) readthrough.Node {
	return readthrough.New(readthrough.Spec[LeagueBundle]{
		Kind: "season",
		ID:   key(leagueID, season),
		Exists: func(ctx context.Context) (bool, error) {
			seasons, err := g.repos.Seasons.ListByLeague(ctx, leagueID)
			if err != nil {
				return false, err
			}
			return slices.ContainsFunc(seasons, func(s league.Season) bool { return s.Year == season }), nil
		},
		Fetch: func(ctx context.Context) (LeagueBundle, error) {
			return g.provider.League(ctx, leagueID)
		},
		Texts: func(b LeagueBundle) []string { return leagueTexts(b.League) },
		Persist: func(ctx context.Context, b LeagueBundle, dict i18n.Dictionary) error {
			if !slices.ContainsFunc(b.Seasons, func(s league.Season) bool { return s.Year == season }) {
				return fmt.Errorf("%w: league=%d season=%d", ErrNotFound, leagueID, season)
			}
			return g.persistLeague(ctx, b, dict)
		},
	})
}

// teamSeasonNode stores the teams of a league season and their membership.
func (g *Graph) teamSeasonNode(leagueID int64, season int) readthrough.Node {
	return readthrough.New(readthrough.Spec[[]team.Team]{
		Kind: "teams",
		ID:   key(leagueID, season),
		Exists: func(ctx context.Context) (bool, error) {
			items, err := g.repos.Teams.ListBySeason(ctx, leagueID, season)
			return len(items) > 0, err
		},
		Fetch: func(ctx context.Context) ([]team.Team, error) {
			return g.provider.Teams(ctx, leagueID, season)
		},
		Parents: func([]team.Team) []readthrough.Node {
			return []readthrough.Node{g.seasonNode(leagueID, season)}
		},
		Texts: teamTexts,
		Persist: func(ctx context.Context, items []team.Team, dict i18n.Dictionary) error {
			if len(items) == 0 {
				return nil
			}
			localizeTeams(items, dict)
			if err := g.repos.Teams.UpsertMany(ctx, items); err != nil {
				return fmt.Errorf("upsert teams: %w", err)
			}
			memberships := make([]team.Membership, 0, len(items))
			for _, t := range items {
				memberships = append(memberships, team.Membership{TeamID: t.ID, LeagueID: leagueID, Season: season})
			}
			if err := g.repos.Teams.AttachToSeason(ctx, memberships); err != nil {
				return fmt.Errorf("attach teams: %w", err)
			}
			return nil
		},
	})
}

func (g *Graph) teamNode(teamID int64) readthrough.Node {
	return readthrough.New(readthrough.Spec[team.Team]{
		Kind: "team",
		ID:   key(teamID),
		Exists: func(ctx context.Context) (bool, error) {
			_, ok, err := g.repos.Teams.GetByID(ctx, teamID)
			return ok, err
		},
		Fetch: func(ctx context.Context) (team.Team, error) {
			return g.provider.Team(ctx, teamID)
		},
		Texts: func(t team.Team) []string { return teamTexts([]team.Team{t}) },
		Persist: func(ctx context.Context, t team.Team, dict i18n.Dictionary) error {
			items := []team.Team{t}
			localizeTeams(items, dict)
			if err := g.repos.Teams.UpsertMany(ctx, items); err != nil {
				return fmt.Errorf("upsert team: %w", err)
			}
			return nil
		},
	})
}

// teamNodes returns one node per distinct positive team id.
func (g *Graph) teamNodes(ids ...int64) []readthrough.Node {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]readthrough.Node, 0, len(ids))
	for _, id := range ids {
		if id <= 0 {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, g.teamNode(id))
	}
	return out
}

func (g *Graph) coachesNode(teamID int64) readthrough.Node {
	return readthrough.New(readthrough.Spec[[]coach.Coach]{
		Kind: "coaches",
		ID:   key(teamID),
		Exists: func(ctx context.Context) (bool, error) {
			items, err := g.repos.Coaches.ListByTeam(ctx, teamID)
			return len(items) > 0, err
		},
		Fetch: func(ctx context.Context) ([]coach.Coach, error) {
			return g.provider.Coaches(ctx, teamID)
		},
		Parents: func([]coach.Coach) []readthrough.Node {
			return []readthrough.Node{g.teamNode(teamID)}
		},
		Texts: coachTexts,
		Persist: func(ctx context.Context, items []coach.Coach, dict i18n.Dictionary) error {
			if len(items) == 0 {
				return nil
			}
			localizeCoaches(items, dict)
			return g.repos.Coaches.UpsertForTeam(ctx, teamID, items)
		},
	})
}

func (g *Graph) squadNode(leagueID int64, season int, teamID int64) readthrough.Node {
	return readthrough.New(readthrough.Spec[[]SquadEntry]{
		Kind: "squad",
		ID:   key(leagueID, season, teamID),
		Exists: func(ctx context.Context) (bool, error) {
			items, err := g.repos.Players.ListSquad(ctx, leagueID, teamID, season)
			return len(items) > 0, err
		},
		Fetch: func(ctx context.Context) ([]SquadEntry, error) {
			return g.provider.Squad(ctx, leagueID, season, teamID)
		},
		Parents: func([]SquadEntry) []readthrough.Node {
			return []readthrough.Node{g.teamSeasonNode(leagueID, season), g.teamNode(teamID)}
		},
		Texts: func(items []SquadEntry) []string {
			out := make([]string, 0, len(items)*4)
			for _, e := range items {
				out = append(out, playerTexts(e.Player)...)
			}
			return out
		},
		Persist: func(ctx context.Context, items []SquadEntry, dict i18n.Dictionary) error {
			if len(items) == 0 {
				return nil
			}
			players := make([]player.Player, 0, len(items))
			memberships := make([]player.Membership, 0, len(items))
			var stats []playerstats.Stat
			for _, e := range items {
				players = append(players, localizePlayer(e.Player, dict))
				stats = append(stats, e.Stats...)
				memberships = append(memberships, player.Membership{
					PlayerID: e.Player.ID,
					TeamID:   teamID,
					LeagueID: leagueID,
					Season:   season,
					Number:   e.Number,
					Position: e.Position,
				})
			}
			if err := g.repos.Players.UpsertMany(ctx, players); err != nil {
				return fmt.Errorf("upsert players: %w", err)
			}
			if err := g.repos.Players.AttachToTeam(ctx, memberships); err != nil {
				return fmt.Errorf("attach players: %w", err)
			}
			if len(stats) == 0 {
				return nil
			}
			if err := g.repos.PlayerStats.UpsertMany(ctx, playerstats.Dedupe(stats)); err != nil {
				return fmt.Errorf("upsert squad player stats: %w", err)
			}
			return nil
		},
	})
}

func (g *Graph) playerSeasonNode(playerID int64, season int) readthrough.Node {
	return readthrough.New(readthrough.Spec[PlayerBundle]{
		Kind: "player",
		ID:   key(playerID, season),
		Exists: func(ctx context.Context) (bool, error) {
			items, err := g.repos.PlayerStats.ListByPlayerSeason(ctx, playerID, season)
			return len(items) > 0, err
		},
		Fetch: func(ctx context.Context) (PlayerBundle, error) {
			return g.provider.PlayerSeason(ctx, playerID, season)
		},
		Texts: func(b PlayerBundle) []string { return playerTexts(b.Player) },
		Persist: func(ctx context.Context, b PlayerBundle, dict i18n.Dictionary) error {
			b.Stats = playerstats.Dedupe(b.Stats)
			if err := g.repos.Players.UpsertMany(ctx, []player.Player{localizePlayer(b.Player, dict)}); err != nil {
				return fmt.Errorf("upsert player: %w", err)
			}
			if len(b.Stats) == 0 {
				return nil
			}
			if err := g.repos.PlayerStats.UpsertMany(ctx, b.Stats); err != nil {
				return fmt.Errorf("upsert player stats: %w", err)
			}
			return nil
		},
	})
}

// fixtureParents lists the season teams and both sides of every fixture.
func (g *Graph) fixtureParents(items []fixture.Fixture) []readthrough.Node {
	var out []readthrough.Node
	seasons := make(map[[2]int64]struct{})
	teamIDs := make([]int64, 0, len(items)*2)
	for _, f := range items {
		k := [2]int64{f.LeagueID, int64(f.Season)}
		if _, ok := seasons[k]; !ok {
			seasons[k] = struct{}{}
			out = append(out, g.teamSeasonNode(f.LeagueID, f.Season))
		}
		teamIDs = append(teamIDs, f.Home.ID, f.Away.ID)
	}
	return append(out, g.teamNodes(teamIDs...)...)
}

// persistFixtures labels rounds per league season against the stored maximum
// and upserts the batch.
func (g *Graph) persistFixtures(ctx context.Context, items []fixture.Fixture, dict i18n.Dictionary) error {
	if len(items) == 0 {
		return nil
	}
	groups := make(map[[2]int64][]int)
	for i, f := range items {
		k := [2]int64{f.LeagueID, int64(f.Season)}
		groups[k] = append(groups[k], i)
	}
	for k, idx := range groups {
		stored, err := g.repos.Fixtures.MaxRegularRound(ctx, k[0], int(k[1]))
		if err != nil {
			return fmt.Errorf("max round league=%d season=%d: %w", k[0], k[1], err)
		}
		batch := make([]fixture.Fixture, len(idx))
		for j, i := range idx {
			batch[j] = items[i]
		}
		fixture.LabelRounds(batch, stored)
		for j, i := range idx {
			items[i].RoundLabel = batch[j].RoundLabel
		}
	}
	localizeFixtures(items, dict)
	if err := g.repos.Fixtures.UpsertMany(ctx, items); err != nil {
		return fmt.Errorf("upsert fixtures: %w", err)
	}
	return nil
}

// relabelSeason rewrites stored round labels of a season whose maximum grew,
// such as fixtures stored one by one before the full list arrived.
func (g *Graph) relabelSeason(ctx context.Context, leagueID int64, season int) error {
	stored, err := g.repos.Fixtures.ListBySeason(ctx, leagueID, season)
	if err != nil {
		return fmt.Errorf("list season fixtures: %w", err)
	}
	maxRound := fixture.MaxRegularRound(stored)
	var stale []fixture.Fixture
	for _, f := range stored {
		if label := fixture.RoundLabel(f.Round, maxRound); label != f.RoundLabel {
			f.RoundLabel = label
			stale = append(stale, f)
		}
	}
	if len(stale) == 0 {
		return nil
	}
	if err := g.repos.Fixtures.UpsertMany(ctx, stale); err != nil {
		return fmt.Errorf("relabel fixtures: %w", err)
	}
	return nil
}

// fixturesNode stores a full league season. It is only satisfied by its own
// sync marker since single fixtures land in the same table.
func (g *Graph) fixturesNode(leagueID int64, season int) readthrough.Node {
	scope := fixture.SeasonScope(leagueID, season)
	return readthrough.New(readthrough.Spec[[]fixture.Fixture]{
		Kind: "fixtures",
		ID:   key(leagueID, season),
		Exists: func(ctx context.Context) (bool, error) {
			return g.repos.Fixtures.Synced(ctx, scope)
		},
		Fetch: func(ctx context.Context) ([]fixture.Fixture, error) {
			return g.provider.Fixtures(ctx, leagueID, season)
		},
		Parents: g.fixtureParents,
		Texts:   fixtureTexts,
		Persist: func(ctx context.Context, items []fixture.Fixture, dict i18n.Dictionary) error {
			if len(items) == 0 {
				return nil
			}
			if err := g.persistFixtures(ctx, items, dict); err != nil {
				return err
			}
			if err := g.relabelSeason(ctx, leagueID, season); err != nil {
				return err
			}
			return g.repos.Fixtures.MarkSynced(ctx, scope)
		},
	})
}

func (g *Graph) fixtureNode(fixtureID int64) readthrough.Node {
	return readthrough.New(readthrough.Spec[[]fixture.Fixture]{
		Kind: "fixture",
		ID:   key(fixtureID),
		Exists: func(ctx context.Context) (bool, error) {
			_, ok, err := g.repos.Fixtures.GetByID(ctx, fixtureID)
			return ok, err
		},
		Fetch: func(ctx context.Context) ([]fixture.Fixture, error) {
			f, err := g.provider.Fixture(ctx, fixtureID)
			if err != nil {
				return nil, err
			}
			return []fixture.Fixture{f}, nil
		},
		Parents: g.fixtureParents,
		Texts:   fixtureTexts,
		Persist: g.persistFixtures,
	})
}

// fixturesOnDateNode stores the day's fixtures of the given leagues only.
func (g *Graph) fixturesOnDateNode(day time.Time, leagueIDs []int64) readthrough.Node {
	date := day.Format(time.DateOnly)
	scope := fixture.DayScope(day, leagueIDs)
	return readthrough.New(readthrough.Spec[[]fixture.Fixture]{
		Kind: "matches",
		ID:   date,
		Exists: func(ctx context.Context) (bool, error) {
			return g.repos.Fixtures.Synced(ctx, scope)
		},
		Fetch: func(ctx context.Context) ([]fixture.Fixture, error) {
			items, err := g.provider.FixturesByDate(ctx, date)
			if err != nil {
				return nil, err
			}
			return slices.DeleteFunc(items, func(f fixture.Fixture) bool {
				return !slices.Contains(leagueIDs, f.LeagueID)
			}), nil
		},
		Parents: g.fixtureParents,
		Texts:   fixtureTexts,
		Persist: func(ctx context.Context, items []fixture.Fixture, dict i18n.Dictionary) error {
			if len(items) == 0 {
				return nil
			}
			if err := g.persistFixtures(ctx, items, dict); err != nil {
				return err
			}
			return g.repos.Fixtures.MarkSynced(ctx, scope)
		},
	})
}

func (g *Graph) fixtureStatsNode(fixtureID int64) readthrough.Node {
	return readthrough.New(readthrough.Spec[[]fixturedetail.TeamStat]{
		Kind: "fixture-statistics",
		ID:   key(fixtureID),
		Exists: func(ctx context.Context) (bool, error) {
			items, err := g.repos.FixtureStats.ListByFixture(ctx, fixtureID)
			return len(items) > 0, err
		},
		Fetch: func(ctx context.Context) ([]fixturedetail.TeamStat, error) {
			return g.provider.FixtureStatistics(ctx, fixtureID)
		},
		Parents: func([]fixturedetail.TeamStat) []readthrough.Node {
			return []readthrough.Node{g.fixtureNode(fixtureID)}
		},
		Persist: func(ctx context.Context, items []fixturedetail.TeamStat, _ i18n.Dictionary) error {
			return g.repos.FixtureStats.ReplaceForFixture(ctx, fixtureID, items)
		},
	})
}

func (g *Graph) fixtureEventsNode(fixtureID int64) readthrough.Node {
	return readthrough.New(readthrough.Spec[[]fixturedetail.Event]{
		Kind: "fixture-events",
		ID:   key(fixtureID),
		Exists: func(ctx context.Context) (bool, error) {
			items, err := g.repos.Events.ListByFixture(ctx, fixtureID)
			return len(items) > 0, err
		},
		Fetch: func(ctx context.Context) ([]fixturedetail.Event, error) {
			return g.provider.FixtureEvents(ctx, fixtureID)
		},
		Parents: func([]fixturedetail.Event) []readthrough.Node {
			return []readthrough.Node{g.fixtureNode(fixtureID)}
		},
		Texts: eventTexts,
		Persist: func(ctx context.Context, items []fixturedetail.Event, dict i18n.Dictionary) error {
			localizeEvents(items, dict)
			return g.repos.Events.ReplaceForFixture(ctx, fixtureID, items)
		},
	})
}

func (g *Graph) fixtureLineupsNode(fixtureID int64) readthrough.Node {
	return readthrough.New(readthrough.Spec[[]fixturedetail.Lineup]{
		Kind: "fixture-lineups",
		ID:   key(fixtureID),
		Exists: func(ctx context.Context) (bool, error) {
			items, err := g.repos.Lineups.ListByFixture(ctx, fixtureID)
			return len(items) > 0, err
		},
		Fetch: func(ctx context.Context) ([]fixturedetail.Lineup, error) {
			return g.provider.FixtureLineups(ctx, fixtureID)
		},
		Parents: func([]fixturedetail.Lineup) []readthrough.Node {
			return []readthrough.Node{g.fixtureNode(fixtureID)}
		},
		Persist: func(ctx context.Context, items []fixturedetail.Lineup, _ i18n.Dictionary) error {
			return g.repos.Lineups.ReplaceForFixture(ctx, fixtureID, items)
		},
	})
}

func (g *Graph) fixturePlayersNode(fixtureID int64) readthrough.Node {
	return readthrough.New(readthrough.Spec[[]fixturedetail.PlayerPerformance]{
		Kind: "fixture-players",
		ID:   key(fixtureID),
		Exists: func(ctx context.Context) (bool, error) {
			items, err := g.repos.Performances.ListByFixture(ctx, fixtureID)
			return len(items) > 0, err
		},
		Fetch: func(ctx context.Context) ([]fixturedetail.PlayerPerformance, error) {
			return g.provider.FixturePlayers(ctx, fixtureID)
		},
		Parents: func([]fixturedetail.PlayerPerformance) []readthrough.Node {
			return []readthrough.Node{g.fixtureNode(fixtureID)}
		},
		Persist: func(ctx context.Context, items []fixturedetail.PlayerPerformance, _ i18n.Dictionary) error {
			return g.repos.Performances.ReplaceForFixture(ctx, fixtureID, items)
		},
	})
}

func (g *Graph) standingsNode(leagueID int64, season int) readthrough.Node {
	return readthrough.New(readthrough.Spec[[]standing.Row]{
		Kind: "standings",
		ID:   key(leagueID, season),
		Exists: func(ctx context.Context) (bool, error) {
			items, err := g.repos.Standings.ListBySeason(ctx, leagueID, season)
			return len(items) > 0, err
		},
		Fetch: func(ctx context.Context) ([]standing.Row, error) {
			return g.provider.Standings(ctx, leagueID, season)
		},
		Parents: func(items []standing.Row) []readthrough.Node {
			ids := make([]int64, 0, len(items))
			for _, r := range items {
				ids = append(ids, r.TeamID)
			}
			return append([]readthrough.Node{g.teamSeasonNode(leagueID, season)}, g.teamNodes(ids...)...)
		},
		Texts: standingTexts,
		Persist: func(ctx context.Context, items []standing.Row, dict i18n.Dictionary) error {
			if len(items) == 0 {
				return nil
			}
			localizeStandings(items, dict)
			return g.repos.Standings.UpsertMany(ctx, items)
		},
	})
}

// transfersNode has no parents: transfer teams are stored denormalized.
func (g *Graph) transfersNode(playerID int64) readthrough.Node {
	return readthrough.New(readthrough.Spec[[]transfer.Transfer]{
		Kind: "transfers",
		ID:   key(playerID),
		Exists: func(ctx context.Context) (bool, error) {
			items, err := g.repos.Transfers.ListByPlayer(ctx, playerID)
			return len(items) > 0, err
		},
		Fetch: func(ctx context.Context) ([]transfer.Transfer, error) {
			return g.provider.Transfers(ctx, playerID)
		},
		Texts: transferTexts,
		Persist: func(ctx context.Context, items []transfer.Transfer, dict i18n.Dictionary) error {
			items = transfer.Dedupe(items)
			if len(items) == 0 {
				return nil
			}
			localizeTransfers(items, dict)
			return g.repos.Transfers.UpsertMany(ctx, items)
		},
	})
}
