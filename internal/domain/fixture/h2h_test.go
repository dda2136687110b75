package fixture

import (
	"testing"
	"time"

	"github.com/riskibarqy/football-cache/internal/domain/team"
)

func finished(id, league, home, away int64, homeGoals, awayGoals int) Fixture {
	return Fixture{
		ID:       id,
		LeagueID: league,
		Season:   2023,
		Home:     team.Ref{ID: home},
		Away:     team.Ref{ID: away},
		Status:   Status{Short: StatusFinished},
		Goals:    Score{Home: IntPtr(homeGoals), Away: IntPtr(awayGoals)},
	}
}

func TestSummarize_Aggregates(t *testing.T) {
	const a, b = 10, 20
	items := []Fixture{
		finished(1, 39, a, b, 2, 1),
		finished(2, 39, a, b, 0, 0),
		finished(3, 39, a, b, 1, 3),
	}

	s := Summarize(a, b, items)
	if s.Fixtures != 3 || s.Goals != 7 || s.Draws != 1 {
		t.Fatalf("unexpected totals: %+v", s)
	}
	if s.First.Wins != 1 || s.Second.Wins != 1 {
		t.Fatalf("expected one win each, got first=%+v second=%+v", s.First, s.Second)
	}
	if s.First.Goals != 3 || s.Second.Goals != 4 {
		t.Fatalf("unexpected per-team goals: first=%+v second=%+v", s.First, s.Second)
	}
	if len(s.Leagues) != 1 || s.Leagues[0].Goals != 7 || s.Leagues[0].Fixtures != 3 {
		t.Fatalf("unexpected league breakdown: %+v", s.Leagues)
	}
}

func TestSummarize_CountsByTeamIdentityNotVenue(t *testing.T) {
	const a, b = 10, 20
	items := []Fixture{
		finished(1, 39, a, b, 2, 0),
		finished(2, 45, b, a, 0, 1),
	}

	s := Summarize(a, b, items)
	if s.First.Wins != 2 || s.Second.Wins != 0 {
		t.Fatalf("expected team a to win both, got %+v / %+v", s.First, s.Second)
	}
	if s.First.Goals != 3 || s.Second.Goals != 0 {
		t.Fatalf("unexpected goals: %+v / %+v", s.First, s.Second)
	}
	if len(s.Leagues) != 2 || s.Leagues[0].LeagueID != 39 || s.Leagues[1].LeagueID != 45 {
		t.Fatalf("expected leagues ordered by id, got %+v", s.Leagues)
	}
}

func TestHeadToHead_FiltersFinishedPairExcludingSelf(t *testing.T) {
	const a, b = 10, 20
	live := finished(4, 39, a, b, 1, 1)
	live.Status.Short = "2H"
	items := []Fixture{
		finished(1, 39, a, b, 2, 1),
		finished(2, 39, b, a, 0, 0),
		finished(3, 39, a, 30, 1, 0),
		live,
		finished(5, 39, a, b, 3, 3),
	}

	got := HeadToHead(items, a, b, 5, time.Time{})
	if len(got) != 2 || got[0].ID != 1 || got[1].ID != 2 {
		t.Fatalf("unexpected head to head: %+v", got)
	}
}

func TestHeadToHead_KeepsOnlyEarlierMeetings(t *testing.T) {
	const a, b = 10, 20
	day := time.Date(2023, 9, 16, 14, 0, 0, 0, time.UTC)
	earlier := finished(1, 39, a, b, 2, 1)
	earlier.Kickoff = day.AddDate(-1, 0, 0)
	sameTime := finished(2, 39, b, a, 0, 0)
	sameTime.Kickoff = day
	later := finished(3, 39, a, b, 1, 0)
	later.Kickoff = day.AddDate(0, 6, 0)

	got := HeadToHead([]Fixture{earlier, sameTime, later}, a, b, 9, day)
	if len(got) != 1 || got[0].ID != 1 {
		t.Fatalf("expected only the earlier meeting, got %+v", got)
	}
}

func TestFinalScore_PrefersFulltime(t *testing.T) {
	extraTime := finished(1, 45, 10, 20, 2, 1)
	extraTime.Score.Fulltime = Score{Home: IntPtr(1), Away: IntPtr(1)}
	home, away, ok := extraTime.FinalScore()
	if !ok || home != 1 || away != 1 {
		t.Fatalf("expected fulltime 1-1, got %d-%d ok=%v", home, away, ok)
	}

	noFulltime := finished(2, 39, 10, 20, 3, 0)
	home, away, ok = noFulltime.FinalScore()
	if !ok || home != 3 || away != 0 {
		t.Fatalf("expected goals fallback 3-0, got %d-%d ok=%v", home, away, ok)
	}

	if _, _, ok := (Fixture{}).FinalScore(); ok {
		t.Fatalf("expected no score for an unplayed fixture")
	}

	s := Summarize(10, 20, []Fixture{extraTime})
	if s.Draws != 1 || s.First.Wins != 0 || s.Goals != 2 {
		t.Fatalf("extra time goals must not decide the summary: %+v", s)
	}
}
