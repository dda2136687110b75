package usecase_test

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/riskibarqy/football-cache/internal/domain/fixture"
	"github.com/riskibarqy/football-cache/internal/domain/player"
	"github.com/riskibarqy/football-cache/internal/domain/playerstats"
	"github.com/riskibarqy/football-cache/internal/domain/team"
	"github.com/riskibarqy/football-cache/internal/usecase"
	"github.com/stretchr/testify/mock"
)

func TestTeamService_ListBySeason_FetchesOnceThenServesLocal(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	h.provider.On("League", mock.Anything, premierLeague).Return(premierLeagueBundle(), nil).Once()
	h.provider.On("Teams", mock.Anything, premierLeague, season2023).Return(seasonTeams(), nil).Once()

	service := usecase.NewTeamService(h.graph)
	first, err := service.ListBySeason(ctx, "PremierLeague", season2023)
	if err != nil {
		t.Fatalf("first list: %v", err)
	}
	second, err := service.ListBySeason(ctx, "39", season2023)
	if err != nil {
		t.Fatalf("second list: %v", err)
	}

	if len(first) != 2 {
		t.Fatalf("unexpected team count: %d", len(first))
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("cached read differs from the populating read:\nfirst=%+v\nsecond=%+v", first, second)
	}
	if first[0].FaName != "fa:Arsenal" || first[0].Venue.FaCity != "fa:London" {
		t.Fatalf("team was not localized: %+v", first[0])
	}
	// league node then teams node; nothing on the cached read.
	if got := h.translator.calls(); got != 2 {
		t.Fatalf("unexpected translate batches: %d", got)
	}

	stored, ok, err := h.repos.Leagues.GetByID(ctx, premierLeague)
	if err != nil || !ok {
		t.Fatalf("league parent was not stored: ok=%v err=%v", ok, err)
	}
	if stored.FaName != "fa:Premier League" {
		t.Fatalf("league parent was not localized: %+v", stored)
	}
}

func TestTeamService_ListBySeason_CurrentSeasonDefault(t *testing.T) {
	h := newHarness(t)
	h.seedSeason(t)

	_, err := usecase.NewTeamService(h.graph).ListBySeason(context.Background(), "NotALeague", 0)
	if !errors.Is(err, usecase.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}

	teams, err := usecase.NewTeamService(h.graph).ListBySeason(context.Background(), "39", 0)
	if err != nil {
		t.Fatalf("list current season: %v", err)
	}
	if len(teams) != 2 {
		t.Fatalf("unexpected team count: %d", len(teams))
	}
}

func TestLeagueService_Get_ProviderEmptyIsNotFound(t *testing.T) {
	h := newHarness(t)
	h.provider.On("League", mock.Anything, int64(9999)).
		Return(usecase.LeagueBundle{}, usecase.ErrNotFound).Once()

	_, err := usecase.NewLeagueService(h.graph).Get(context.Background(), "9999")
	if !errors.Is(err, usecase.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestLeagueService_CurrentSeason(t *testing.T) {
	h := newHarness(t)
	h.seedSeason(t)

	got, err := usecase.NewLeagueService(h.graph).CurrentSeason(context.Background(), "PremierLeague")
	if err != nil {
		t.Fatalf("current season: %v", err)
	}
	if got != season2023 {
		t.Fatalf("unexpected current season: %d", got)
	}
}

func TestPlayerService_SeasonStats_NaturalKeyIsUnique(t *testing.T) {
	h := newHarness(t)
	h.seedSeason(t)
	ctx := context.Background()

	stat := playerstats.Stat{PlayerID: 1100, TeamID: arsenal, LeagueID: premierLeague, Season: season2023, Appearances: 10}
	updated := stat
	updated.Appearances = 12
	h.provider.On("PlayerSeason", mock.Anything, int64(1100), season2023).Return(usecase.PlayerBundle{
		Player: player.Player{ID: 1100, Name: "B. Saka", FirstName: "Bukayo", LastName: "Saka", DisplayName: "Bukayo Saka"},
		Stats:  []playerstats.Stat{stat, updated},
	}, nil).Once()

	service := usecase.NewPlayerService(h.graph)
	got, err := service.SeasonStats(ctx, 1100, season2023)
	if err != nil {
		t.Fatalf("season stats: %v", err)
	}
	if len(got.Stats) != 1 || got.Stats[0].Appearances != 12 {
		t.Fatalf("expected one stat row with the last appearances, got %+v", got.Stats)
	}
	if got.Player.FaName != "fa:Bukayo Saka" {
		t.Fatalf("unexpected localized player name %q", got.Player.FaName)
	}

	if err := h.repos.PlayerStats.UpsertMany(ctx, []playerstats.Stat{stat}); err != nil {
		t.Fatalf("re-upsert stat: %v", err)
	}
	again, err := service.SeasonStats(ctx, 1100, season2023)
	if err != nil {
		t.Fatalf("season stats again: %v", err)
	}
	if len(again.Stats) != 1 {
		t.Fatalf("expected natural key to stay unique, got %d rows", len(again.Stats))
	}
}

func TestPlayerService_SeasonStats_PersistFailureRollsBack(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	h.provider.On("PlayerSeason", mock.Anything, int64(1100), season2023).Return(usecase.PlayerBundle{
		Player: player.Player{ID: 1100, Name: "B. Saka"},
		Stats:  []playerstats.Stat{{PlayerID: 1100, LeagueID: premierLeague, Season: season2023}},
	}, nil).Once()

	_, err := usecase.NewPlayerService(h.graph).SeasonStats(ctx, 1100, season2023)
	if err == nil {
		t.Fatalf("expected persist failure for a stat without team")
	}
	if _, ok, err := h.repos.Players.GetByID(ctx, 1100); err != nil || ok {
		t.Fatalf("player written before the failing stat must be rolled back: ok=%v err=%v", ok, err)
	}
}

func TestTeamService_TranslatorFailureIsUpstream(t *testing.T) {
	h := newHarness(t)
	h.seedSeason(t)
	h.translator.err = errors.Join(usecase.ErrUpstream, errors.New("translate: status 429"))
	h.provider.On("Team", mock.Anything, int64(50)).Return(team.Team{ID: 50, Name: "Manchester City"}, nil).Once()
	_, err := usecase.NewTeamService(h.graph).Get(context.Background(), 50)
	if !errors.Is(err, usecase.ErrUpstream) {
		t.Fatalf("expected ErrUpstream, got %v", err)
	}
}

func TestFixtureService_ListByRound_LabelsAgainstSeasonMax(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	kickoff := time.Date(2023, 9, 16, 14, 0, 0, 0, time.UTC)

	h.provider.On("League", mock.Anything, premierLeague).Return(premierLeagueBundle(), nil).Once()
	h.provider.On("Teams", mock.Anything, premierLeague, season2023).Return(seasonTeams(), nil).Once()
	h.provider.On("Fixtures", mock.Anything, premierLeague, season2023).Return([]fixture.Fixture{
		scheduled(1035, "Regular Season - 5", kickoff),
		scheduled(1036, "Regular Season - 38", kickoff.AddDate(0, 8, 0)),
		scheduled(1037, "Relegation Round", kickoff.AddDate(0, 9, 0)),
	}, nil).Once()

	service := usecase.NewFixtureService(h.graph)
	items, err := service.ListByRound(ctx, "39", season2023, 5)
	if err != nil {
		t.Fatalf("list round: %v", err)
	}
	if len(items) != 1 || items[0].ID != 1035 {
		t.Fatalf("unexpected round fixtures: %+v", items)
	}
	if items[0].RoundLabel != "5/38" {
		t.Fatalf("unexpected round label %q", items[0].RoundLabel)
	}

	other, ok, err := h.repos.Fixtures.GetByID(ctx, 1037)
	if err != nil || !ok {
		t.Fatalf("get fixture 1037: ok=%v err=%v", ok, err)
	}
	if other.RoundLabel != "Relegation Round" {
		t.Fatalf("non regular round must stay verbatim, got %q", other.RoundLabel)
	}

	if _, err := service.ListByRound(ctx, "39", season2023, 7); !errors.Is(err, usecase.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for an empty round, got %v", err)
	}
	if _, err := service.ListByRound(ctx, "39", season2023, 0); !errors.Is(err, usecase.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for round 0, got %v", err)
	}
	if !containsText(h.translator.batches, "Not Started") {
		t.Fatalf("fixture status was not sent for translation")
	}
}

func TestFixtureService_Get_RejectsNonPositiveID(t *testing.T) {
	h := newHarness(t)

	_, err := usecase.NewFixtureService(h.graph).Get(context.Background(), -4)
	if !errors.Is(err, usecase.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
