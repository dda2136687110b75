package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/football-cache/internal/domain/fixture"
	"github.com/riskibarqy/football-cache/internal/domain/league"
	"github.com/riskibarqy/football-cache/internal/domain/team"
	"github.com/riskibarqy/football-cache/internal/infrastructure/repository/memory"
	usecasemock "github.com/riskibarqy/football-cache/internal/mocks/usecase"
	"github.com/riskibarqy/football-cache/internal/platform/i18n"
	"github.com/riskibarqy/football-cache/internal/platform/logging"
	"github.com/riskibarqy/football-cache/internal/platform/readthrough"
	"github.com/riskibarqy/football-cache/internal/usecase"
	"github.com/stretchr/testify/mock"
)

type routerFixture struct {
	provider *usecasemock.SportsProvider
	router   http.Handler
}

func newRouterFixture(t *testing.T) *routerFixture {
	t.Helper()

	db := memory.NewDB()
	repos := usecase.Repositories{
		Leagues:      memory.NewLeagueRepository(db),
		Seasons:      memory.NewSeasonRepository(db),
		Teams:        memory.NewTeamRepository(db),
		Coaches:      memory.NewCoachRepository(db),
		Players:      memory.NewPlayerRepository(db),
		PlayerStats:  memory.NewPlayerStatRepository(db),
		Transfers:    memory.NewTransferRepository(db),
		Fixtures:     memory.NewFixtureRepository(db),
		FixtureStats: memory.NewFixtureStatRepository(db),
		Events:       memory.NewFixtureEventRepository(db),
		Lineups:      memory.NewFixtureLineupRepository(db),
		Performances: memory.NewFixturePlayerRepository(db),
		Standings:    memory.NewStandingRepository(db),
	}
	provider := usecasemock.NewSportsProvider(t)
	logger := logging.NewNop()
	resolver := readthrough.NewResolver(readthrough.Env{
		Translator: i18n.Nop{},
		Tx:         memory.NewTxRunner(db),
	}, readthrough.DefaultMaxDepth, logger)
	graph := usecase.NewGraph(repos, provider, readthrough.NewOrchestrator(resolver, logger))

	handler := NewHandler(Services{
		Leagues:   usecase.NewLeagueService(graph),
		Teams:     usecase.NewTeamService(graph),
		Players:   usecase.NewPlayerService(graph),
		Fixtures:  usecase.NewFixtureService(graph),
		Standings: usecase.NewStandingService(graph),
		H2H:       usecase.NewH2HService(graph),
		Matches:   usecase.NewMatchService(graph, []int64{39}),
	}, logger)

	return &routerFixture{
		provider: provider,
		router:   NewRouter(handler, logger, true, []string{"*"}),
	}
}

func (f *routerFixture) get(t *testing.T, path string) (int, map[string]any) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	var body map[string]any
	if rec.Header().Get("Content-Type") == "application/json" {
		if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("unmarshal %s: %v", path, err)
		}
	}
	return rec.Code, body
}

func premierLeague() usecase.LeagueBundle {
	return usecase.LeagueBundle{
		League: league.League{ID: 39, Name: "Premier League", Type: "League", Country: league.Country{Name: "England"}},
		Seasons: []league.Season{
			{LeagueID: 39, Year: 2022},
			{LeagueID: 39, Year: 2023, Current: true},
		},
	}
}

func TestRouter_Healthz(t *testing.T) {
	f := newRouterFixture(t)

	status, body := f.get(t, "/healthz")
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	data, _ := body["data"].(map[string]any)
	if data["status"] != "ok" {
		t.Fatalf("unexpected body %v", body)
	}
}

func TestRouter_LeagueIsFetchedOnceThenServedFromStorage(t *testing.T) {
	f := newRouterFixture(t)
	f.provider.On("League", mock.Anything, int64(39)).Return(premierLeague(), nil).Once()

	for i := 0; i < 2; i++ {
		status, body := f.get(t, "/v1/leagues/premierleague")
		if status != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d (%v)", i, status, body)
		}
		data, _ := body["data"].(map[string]any)
		if data["name"] != "Premier League" || data["symbol"] != "PremierLeague" {
			t.Fatalf("unexpected league payload %v", data)
		}
		seasons, _ := data["seasons"].([]any)
		if len(seasons) != 2 {
			t.Fatalf("expected 2 seasons, got %d", len(seasons))
		}
	}

	status, body := f.get(t, "/v1/leagues/39/seasons/current")
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	data, _ := body["data"].(map[string]any)
	if data["year"] != float64(2023) {
		t.Fatalf("expected current season 2023, got %v", data["year"])
	}
}

func TestRouter_ValidationErrors(t *testing.T) {
	f := newRouterFixture(t)

	paths := []string{
		"/v1/leagues/NotALeague",
		"/v1/leagues/39/seasons/abc/teams",
		"/v1/leagues/39/seasons/1800/teams",
		"/v1/leagues/39/seasons/2023/fixtures/rounds/0",
		"/v1/teams/0",
		"/v1/teams/x/coaches",
		"/v1/teams/42/h2h/42",
		"/v1/fixtures/-1",
		"/v1/matches/19-05-2024",
		"/v1/players/10/seasons/0/stats",
	}
	for _, path := range paths {
		status, body := f.get(t, path)
		if status != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d (%v)", path, status, body)
		}
		if body["status"] != "INVALID_ARGUMENT" {
			t.Fatalf("%s: unexpected error envelope %v", path, body)
		}
	}
}

func TestRouter_ProviderMissReturnsNotFound(t *testing.T) {
	f := newRouterFixture(t)
	f.provider.On("Team", mock.Anything, int64(999)).Return(team.Team{}, fmt.Errorf("team 999: %w", usecase.ErrNotFound)).Once()

	status, body := f.get(t, "/v1/teams/999")
	if status != http.StatusNotFound {
		t.Fatalf("expected 404, got %d (%v)", status, body)
	}
	if body["reason"] != "notFound" {
		t.Fatalf("unexpected reason %v", body["reason"])
	}
}

func TestRouter_UpstreamFailureReturns500(t *testing.T) {
	f := newRouterFixture(t)
	f.provider.On("League", mock.Anything, int64(140)).Return(usecase.LeagueBundle{}, fmt.Errorf("%w: status 502", usecase.ErrUpstream)).Once()

	status, body := f.get(t, "/v1/leagues/Laliga")
	if status != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d (%v)", status, body)
	}
	if body["reason"] != "upstreamFailure" {
		t.Fatalf("unexpected reason %v", body["reason"])
	}
}

func TestRouter_MatchesByDate(t *testing.T) {
	f := newRouterFixture(t)
	kickoff := time.Date(2024, 5, 19, 15, 0, 0, 0, time.UTC)
	f.provider.On("League", mock.Anything, int64(39)).Return(premierLeague(), nil).Maybe()
	f.provider.On("Teams", mock.Anything, int64(39), 2023).Return([]team.Team{
		{ID: 42, Name: "Arsenal"},
		{ID: 49, Name: "Chelsea"},
	}, nil).Maybe()
	f.provider.On("FixturesByDate", mock.Anything, "2024-05-19").Return([]fixture.Fixture{
		{
			ID:       1001,
			LeagueID: 39,
			Season:   2023,
			Round:    "Regular Season - 38",
			Kickoff:  kickoff,
			Status:   fixture.Status{Long: "Not Started", Short: "NS"},
			Home:     team.Ref{ID: 42, Name: "Arsenal"},
			Away:     team.Ref{ID: 49, Name: "Chelsea"},
		},
		{
			ID:       2002,
			LeagueID: 140,
			Season:   2023,
			Round:    "Regular Season - 38",
			Kickoff:  kickoff,
			Home:     team.Ref{ID: 529, Name: "Barcelona"},
			Away:     team.Ref{ID: 541, Name: "Real Madrid"},
		},
	}, nil).Once()

	status, body := f.get(t, "/v1/matches/2024-05-19")
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d (%v)", status, body)
	}
	items, _ := body["data"].([]any)
	if len(items) != 1 {
		t.Fatalf("expected only the tracked league fixture, got %d", len(items))
	}
	first, _ := items[0].(map[string]any)
	if first["id"] != float64(1001) || first["round_label"] != "38/38" {
		t.Fatalf("unexpected fixture payload %v", first)
	}
}

func TestRouter_OpenAPIAndDocs(t *testing.T) {
	f := newRouterFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/openapi.yaml", nil)
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK || rec.Body.Len() == 0 {
		t.Fatalf("expected openapi document, got %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/docs", nil)
	rec = httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected docs page, got %d", rec.Code)
	}
}

func TestRouter_RecoversPanics(t *testing.T) {
	logger := logging.NewNop()
	h := recoverPanic(logger, http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/teams/1", nil).WithContext(context.Background()))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}
