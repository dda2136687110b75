package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/football-cache/internal/domain/fixture"
	"github.com/riskibarqy/football-cache/internal/domain/league"
	"github.com/riskibarqy/football-cache/internal/domain/player"
	"github.com/riskibarqy/football-cache/internal/domain/team"
	"github.com/stretchr/testify/require"
)

func seedSeason(t *testing.T, db *DB) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, NewLeagueRepository(db).Upsert(ctx, league.League{ID: 39, Name: "Premier League"}))
	require.NoError(t, NewSeasonRepository(db).UpsertMany(ctx, []league.Season{{LeagueID: 39, Year: 2023, Current: true}}))
	teams := NewTeamRepository(db)
	require.NoError(t, teams.UpsertMany(ctx, []team.Team{{ID: 42, Name: "Arsenal"}, {ID: 49, Name: "Chelsea"}}))
	require.NoError(t, teams.AttachToSeason(ctx, []team.Membership{
		{TeamID: 42, LeagueID: 39, Season: 2023},
		{TeamID: 49, LeagueID: 39, Season: 2023},
	}))
}

func TestTxRunner_RollsBackOnError(t *testing.T) {
	db := NewDB()
	seedSeason(t, db)
	ctx := context.Background()
	teams := NewTeamRepository(db)
	boom := errors.New("boom")

	err := NewTxRunner(db).WithinTx(ctx, func(ctx context.Context) error {
		require.NoError(t, teams.UpsertMany(ctx, []team.Team{{ID: 50, Name: "Man City"}}))
		return boom
	})
	require.ErrorIs(t, err, boom)

	_, ok, err := teams.GetByID(ctx, 50)
	require.NoError(t, err)
	require.False(t, ok, "team written inside failed tx must be rolled back")

	_, ok, err = teams.GetByID(ctx, 42)
	require.NoError(t, err)
	require.True(t, ok, "rows committed before the tx must survive")
}

func TestTxRunner_CommitsOnSuccess(t *testing.T) {
	db := NewDB()
	seedSeason(t, db)
	ctx := context.Background()
	teams := NewTeamRepository(db)

	require.NoError(t, NewTxRunner(db).WithinTx(ctx, func(ctx context.Context) error {
		return teams.UpsertMany(ctx, []team.Team{{ID: 50, Name: "Man City"}})
	}))

	_, ok, err := teams.GetByID(ctx, 50)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestTeamRepository_ListBySeason(t *testing.T) {
	db := NewDB()
	seedSeason(t, db)

	items, err := NewTeamRepository(db).ListBySeason(context.Background(), 39, 2023)
	require.NoError(t, err)
	require.Len(t, items, 2)
	require.Equal(t, "Arsenal", items[0].Name)
	require.Equal(t, "Chelsea", items[1].Name)
}

func TestTeamRepository_AttachRequiresSeason(t *testing.T) {
	db := NewDB()
	seedSeason(t, db)

	err := NewTeamRepository(db).AttachToSeason(context.Background(), []team.Membership{{TeamID: 42, LeagueID: 39, Season: 1999}})
	require.Error(t, err)
}

func TestFixtureRepository_Queries(t *testing.T) {
	db := NewDB()
	seedSeason(t, db)
	ctx := context.Background()
	repo := NewFixtureRepository(db)

	kickoff := time.Date(2023, 8, 12, 14, 0, 0, 0, time.UTC)
	items := []fixture.Fixture{
		{ID: 1, LeagueID: 39, Season: 2023, Round: "Regular Season - 1", Kickoff: kickoff,
			Home: team.Ref{ID: 42}, Away: team.Ref{ID: 49}, Status: fixture.Status{Short: "FT"}},
		{ID: 2, LeagueID: 39, Season: 2023, Round: "Regular Season - 20", Kickoff: kickoff.Add(24 * time.Hour),
			Home: team.Ref{ID: 49}, Away: team.Ref{ID: 42}, Status: fixture.Status{Short: "NS"}},
	}
	fixture.LabelRounds(items, 0)
	require.NoError(t, repo.UpsertMany(ctx, items))

	maxRound, err := repo.MaxRegularRound(ctx, 39, 2023)
	require.NoError(t, err)
	require.Equal(t, 20, maxRound)

	round, err := repo.ListBySeasonRound(ctx, 39, 2023, fixture.RoundPrefix(1))
	require.NoError(t, err)
	require.Len(t, round, 1)
	require.Equal(t, "1/20", round[0].RoundLabel)

	day, err := repo.ListByDate(ctx, kickoff.Truncate(24*time.Hour), kickoff.Truncate(24*time.Hour).Add(24*time.Hour), []int64{39})
	require.NoError(t, err)
	require.Len(t, day, 1)
	require.Equal(t, int64(1), day[0].ID)

	h2h, err := repo.ListHeadToHead(ctx, 49, 42)
	require.NoError(t, err)
	require.Len(t, h2h, 1, "only finished fixtures count")
}

func TestFixtureRepository_RejectsUnknownTeam(t *testing.T) {
	db := NewDB()
	seedSeason(t, db)

	err := NewFixtureRepository(db).UpsertMany(context.Background(), []fixture.Fixture{{
		ID: 9, LeagueID: 39, Season: 2023, Home: team.Ref{ID: 42}, Away: team.Ref{ID: 999},
	}})
	require.Error(t, err)
}

func TestFixtureRepository_SyncMarkerFollowsTx(t *testing.T) {
	db := NewDB()
	ctx := context.Background()
	repo := NewFixtureRepository(db)
	scope := fixture.SeasonScope(39, 2023)
	boom := errors.New("boom")

	err := NewTxRunner(db).WithinTx(ctx, func(ctx context.Context) error {
		require.NoError(t, repo.MarkSynced(ctx, scope))
		return boom
	})
	require.ErrorIs(t, err, boom)
	synced, err := repo.Synced(ctx, scope)
	require.NoError(t, err)
	require.False(t, synced, "marker written inside failed tx must be rolled back")

	require.NoError(t, repo.MarkSynced(ctx, scope))
	synced, err = repo.Synced(ctx, scope)
	require.NoError(t, err)
	require.True(t, synced)

	other, err := repo.Synced(ctx, fixture.SeasonScope(39, 2022))
	require.NoError(t, err)
	require.False(t, other)
	require.Error(t, repo.MarkSynced(ctx, ""))
}

func TestPlayerRepository_SquadIsPerLeague(t *testing.T) {
	db := NewDB()
	seedSeason(t, db)
	ctx := context.Background()
	repo := NewPlayerRepository(db)

	require.NoError(t, repo.UpsertMany(ctx, []player.Player{{ID: 1100, Name: "B. Saka"}}))
	require.NoError(t, repo.AttachToTeam(ctx, []player.Membership{{PlayerID: 1100, TeamID: 42, LeagueID: 39, Season: 2023}}))

	squad, err := repo.ListSquad(ctx, 39, 42, 2023)
	require.NoError(t, err)
	require.Len(t, squad, 1)
	require.Equal(t, int64(39), squad[0].LeagueID)

	cup, err := repo.ListSquad(ctx, 45, 42, 2023)
	require.NoError(t, err)
	require.Empty(t, cup)
}
