package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/football-cache/internal/domain/fixture"
	"github.com/riskibarqy/football-cache/internal/usecase"
	"github.com/stretchr/testify/mock"
)

var meetingDay = time.Date(2022, 1, 15, 15, 0, 0, 0, time.UTC)

func (h *harness) seedFixtures(t *testing.T, items ...fixture.Fixture) {
	t.Helper()
	if err := h.repos.Fixtures.UpsertMany(context.Background(), items); err != nil {
		t.Fatalf("seed fixtures: %v", err)
	}
}

func TestH2HService_ForFixture_FallsBackToProviderBelowThreshold(t *testing.T) {
	h := newHarness(t)
	h.seedSeason(t)
	h.seedFixtures(t,
		scheduled(100, "Regular Season - 20", meetingDay.AddDate(1, 0, 0)),
		finished(1, arsenal, chelsea, 2, 1, meetingDay),
		finished(2, chelsea, arsenal, 0, 0, meetingDay.AddDate(0, 3, 0)),
	)

	remote := []fixture.Fixture{
		finished(1, arsenal, chelsea, 2, 1, meetingDay),
		finished(2, chelsea, arsenal, 0, 0, meetingDay.AddDate(0, 3, 0)),
		finished(9001, arsenal, chelsea, 1, 0, meetingDay.AddDate(-1, 0, 0)),
		scheduled(100, "Regular Season - 20", meetingDay.AddDate(1, 0, 0)),
	}
	remote[2].LeagueID = 45
	h.provider.On("HeadToHead", mock.Anything, arsenal, chelsea).Return(remote, nil).Once()

	got, err := usecase.NewH2HService(h.graph).ForFixture(context.Background(), 100)
	if err != nil {
		t.Fatalf("h2h for fixture: %v", err)
	}
	if got.Source != usecase.SourceProvider {
		t.Fatalf("expected provider source with 2 local meetings, got %s", got.Source)
	}
	if len(got.Fixtures) != 3 {
		t.Fatalf("expected 3 finished meetings, got %d", len(got.Fixtures))
	}
	if got.Fixtures[0].ID != 2 || got.Fixtures[2].ID != 9001 {
		t.Fatalf("meetings must be newest first, got %d..%d", got.Fixtures[0].ID, got.Fixtures[2].ID)
	}
	if len(got.Summary.Leagues) != 2 {
		t.Fatalf("expected a tally per league, got %+v", got.Summary.Leagues)
	}
	if _, ok, _ := h.repos.Fixtures.GetByID(context.Background(), 9001); ok {
		t.Fatalf("provider meetings must not be stored")
	}
}

func TestH2HService_ForFixture_UsesLocalAtThreshold(t *testing.T) {
	h := newHarness(t)
	h.seedSeason(t)
	h.seedFixtures(t,
		scheduled(100, "Regular Season - 20", meetingDay.AddDate(1, 0, 0)),
		finished(1, arsenal, chelsea, 2, 1, meetingDay),
		finished(2, arsenal, chelsea, 0, 0, meetingDay.AddDate(0, 1, 0)),
		finished(3, arsenal, chelsea, 1, 3, meetingDay.AddDate(0, 2, 0)),
	)

	got, err := usecase.NewH2HService(h.graph).ForFixture(context.Background(), 100)
	if err != nil {
		t.Fatalf("h2h for fixture: %v", err)
	}
	if got.Source != usecase.SourceLocal {
		t.Fatalf("expected local source with 3 meetings, got %s", got.Source)
	}

	s := got.Summary
	if s.Fixtures != 3 || s.Goals != 7 || s.Draws != 1 {
		t.Fatalf("unexpected totals: %+v", s)
	}
	if s.First.TeamID != arsenal || s.First.Wins != 1 || s.First.Goals != 3 {
		t.Fatalf("unexpected home side tally: %+v", s.First)
	}
	if s.Second.TeamID != chelsea || s.Second.Wins != 1 || s.Second.Goals != 4 {
		t.Fatalf("unexpected away side tally: %+v", s.Second)
	}
}

func TestH2HService_ForFixture_IgnoresLaterMeetings(t *testing.T) {
	h := newHarness(t)
	h.seedSeason(t)
	target := finished(100, arsenal, chelsea, 1, 1, meetingDay.AddDate(1, 0, 0))
	target.Round = "Regular Season - 20"
	h.seedFixtures(t,
		target,
		finished(1, arsenal, chelsea, 2, 1, meetingDay),
		finished(2, chelsea, arsenal, 0, 0, meetingDay.AddDate(0, 3, 0)),
		finished(3, arsenal, chelsea, 4, 0, meetingDay.AddDate(1, 2, 0)),
		finished(4, chelsea, arsenal, 2, 2, meetingDay.AddDate(1, 5, 0)),
	)

	remote := []fixture.Fixture{
		finished(1, arsenal, chelsea, 2, 1, meetingDay),
		finished(2, chelsea, arsenal, 0, 0, meetingDay.AddDate(0, 3, 0)),
		finished(3, arsenal, chelsea, 4, 0, meetingDay.AddDate(1, 2, 0)),
		finished(9001, arsenal, chelsea, 1, 0, meetingDay.AddDate(-1, 0, 0)),
	}
	h.provider.On("HeadToHead", mock.Anything, arsenal, chelsea).Return(remote, nil).Once()

	got, err := usecase.NewH2HService(h.graph).ForFixture(context.Background(), 100)
	if err != nil {
		t.Fatalf("h2h for fixture: %v", err)
	}
	if got.Source != usecase.SourceProvider {
		t.Fatalf("later local meetings must not reach the threshold, got source %s", got.Source)
	}
	if len(got.Fixtures) != 3 {
		t.Fatalf("expected 3 prior meetings, got %+v", got.Fixtures)
	}
	for _, f := range got.Fixtures {
		if !f.Kickoff.Before(target.Kickoff) {
			t.Fatalf("meeting %d was played after the fixture", f.ID)
		}
	}
	if got.Summary.Goals != 4 {
		t.Fatalf("unexpected goal total: %+v", got.Summary)
	}
}

func TestH2HService_ForTeams_Validation(t *testing.T) {
	h := newHarness(t)
	service := usecase.NewH2HService(h.graph)

	if _, err := service.ForTeams(context.Background(), arsenal, arsenal); !errors.Is(err, usecase.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for identical teams, got %v", err)
	}
	if _, err := service.ForTeams(context.Background(), 0, arsenal); !errors.Is(err, usecase.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for team 0, got %v", err)
	}
}

func TestH2HService_ForTeams_ProviderFailure(t *testing.T) {
	h := newHarness(t)
	h.seedSeason(t)
	h.provider.On("HeadToHead", mock.Anything, chelsea, arsenal).
		Return(nil, usecase.ErrUpstream).Once()

	_, err := usecase.NewH2HService(h.graph).ForTeams(context.Background(), chelsea, arsenal)
	if !errors.Is(err, usecase.ErrUpstream) {
		t.Fatalf("expected ErrUpstream, got %v", err)
	}
}

func TestMatchService_ByDate(t *testing.T) {
	h := newHarness(t)
	h.seedSeason(t)
	ctx := context.Background()
	kickoff := time.Date(2023, 9, 16, 14, 0, 0, 0, time.UTC)

	laliga := scheduled(2001, "Regular Season - 5", kickoff)
	laliga.LeagueID = 140
	h.provider.On("FixturesByDate", mock.Anything, "2023-09-16").Return([]fixture.Fixture{
		scheduled(1035, "Regular Season - 5", kickoff),
		laliga,
	}, nil).Once()
	h.provider.On("FixturesByDate", mock.Anything, "2023-09-17").Return([]fixture.Fixture{}, nil).Once()

	service := usecase.NewMatchService(h.graph, []int64{premierLeague, premierLeague})
	if got := service.TrackedLeagues(); len(got) != 1 {
		t.Fatalf("tracked leagues must be de-duplicated, got %v", got)
	}

	for range 2 {
		items, err := service.ByDate(ctx, "2023-09-16")
		if err != nil {
			t.Fatalf("matches by date: %v", err)
		}
		if len(items) != 1 || items[0].ID != 1035 {
			t.Fatalf("unexpected matches: %+v", items)
		}
	}

	empty, err := service.ByDate(ctx, "2023-09-17")
	if err != nil {
		t.Fatalf("empty day: %v", err)
	}
	if empty == nil || len(empty) != 0 {
		t.Fatalf("expected an empty non-nil list, got %+v", empty)
	}

	if _, err := service.ByDate(ctx, "16-09-2023"); !errors.Is(err, usecase.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for a malformed date, got %v", err)
	}
}
