package fixture

import (
	"sort"
	"time"
)

// TeamTally counts one side of a head-to-head by team identity.
type TeamTally struct {
	TeamID int64
	Goals  int
	Wins   int
}

type LeagueTally struct {
	LeagueID int64
	Fixtures int
	Goals    int
	Draws    int
	First    TeamTally
	Second   TeamTally
}

// Summary aggregates finished fixtures between First and Second.
type Summary struct {
	Fixtures int
	Goals    int
	Draws    int
	First    TeamTally
	Second   TeamTally
	Leagues  []LeagueTally
}

// HeadToHead filters items to finished fixtures between a and b, excluding
// the fixture with id exclude. A non-zero before keeps only meetings that
// kicked off earlier.
func HeadToHead(items []Fixture, a, b, exclude int64, before time.Time) []Fixture {
	out := make([]Fixture, 0, len(items))
	for _, item := range items {
		if item.ID == exclude || !item.Finished() || !item.Involves(a, b) {
			continue
		}
		if !before.IsZero() && !item.Kickoff.Before(before) {
			continue
		}
		out = append(out, item)
	}
	return out
}

// Summarize reduces fixtures between first and second. Fixtures without a
// final score or involving other teams are skipped.
func Summarize(first, second int64, items []Fixture) Summary {
	summary := Summary{
		First:  TeamTally{TeamID: first},
		Second: TeamTally{TeamID: second},
	}
	byLeague := make(map[int64]*LeagueTally)

	for _, item := range items {
		if !item.Involves(first, second) {
			continue
		}
		homeGoals, awayGoals, ok := item.FinalScore()
		if !ok {
			continue
		}

		firstGoals, secondGoals := homeGoals, awayGoals
		if item.Home.ID == second {
			firstGoals, secondGoals = awayGoals, homeGoals
		}

		lt, ok := byLeague[item.LeagueID]
		if !ok {
			lt = &LeagueTally{
				LeagueID: item.LeagueID,
				First:    TeamTally{TeamID: first},
				Second:   TeamTally{TeamID: second},
			}
			byLeague[item.LeagueID] = lt
		}

		summary.Fixtures++
		lt.Fixtures++
		summary.Goals += firstGoals + secondGoals
		lt.Goals += firstGoals + secondGoals
		summary.First.Goals += firstGoals
		summary.Second.Goals += secondGoals
		lt.First.Goals += firstGoals
		lt.Second.Goals += secondGoals

		switch {
		case firstGoals == secondGoals:
			summary.Draws++
			lt.Draws++
		case firstGoals > secondGoals:
			summary.First.Wins++
			lt.First.Wins++
		default:
			summary.Second.Wins++
			lt.Second.Wins++
		}
	}

	summary.Leagues = make([]LeagueTally, 0, len(byLeague))
	for _, lt := range byLeague {
		summary.Leagues = append(summary.Leagues, *lt)
	}
	sort.Slice(summary.Leagues, func(i, j int) bool {
		return summary.Leagues[i].LeagueID < summary.Leagues[j].LeagueID
	})
	return summary
}
