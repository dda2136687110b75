package fixture

import (
	"fmt"
	"time"

	"github.com/riskibarqy/football-cache/internal/domain/team"
)

const StatusFinished = "FT"

// Fixture is a single match. Team and league names are denormalized so list
// reads do not need joins.
type Fixture struct {
	ID           int64
	LeagueID     int64
	LeagueName   string
	FaLeagueName string
	LeagueLogo   string
	Season       int
	Round        string
	RoundLabel   string
	Referee      string
	FaReferee    string
	Timezone     string
	Kickoff      time.Time
	Timestamp    int64
	Venue        Venue
	Status       Status
	Home         team.Ref
	Away         team.Ref
	HomeWinner   *bool
	AwayWinner   *bool
	Goals        Score
	Score        Scores
}

type Venue struct {
	ID     int64
	Name   string
	FaName string
	City   string
	FaCity string
}

type Status struct {
	Long    string
	FaLong  string
	Short   string
	Elapsed *int
}

// Score is a {home, away} pair; nil means the period was not played.
type Score struct {
	Home *int `json:"home"`
	Away *int `json:"away"`
}

type Scores struct {
	Halftime  Score
	Fulltime  Score
	Extratime Score
	Penalty   Score
}

func (f Fixture) Validate() error {
	if f.ID <= 0 {
		return fmt.Errorf("fixture id is required")
	}
	if f.LeagueID <= 0 || f.Season <= 0 {
		return fmt.Errorf("fixture %d: league and season are required", f.ID)
	}
	if f.Home.ID <= 0 || f.Away.ID <= 0 {
		return fmt.Errorf("fixture %d: both teams are required", f.ID)
	}
	return nil
}

func (f Fixture) Finished() bool {
	return f.Status.Short == StatusFinished
}

// Involves reports whether the fixture is between a and b in either order.
func (f Fixture) Involves(a, b int64) bool {
	return (f.Home.ID == a && f.Away.ID == b) || (f.Home.ID == b && f.Away.ID == a)
}

// FinalScore returns the fulltime score, falling back to the running goals
// when the provider left fulltime empty. Extra time and penalties are not
// counted.
func (f Fixture) FinalScore() (home, away int, ok bool) {
	s := f.Score.Fulltime
	if s.Home == nil || s.Away == nil {
		s = f.Goals
	}
	if s.Home == nil || s.Away == nil {
		return 0, 0, false
	}
	return *s.Home, *s.Away, true
}

func IntPtr(v int) *int { return &v }
