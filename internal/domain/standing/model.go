package standing

import "time"

// Row is one team's line in a league table. (LeagueID, Season, TeamID, Group)
// is the natural key; cups carry several groups per season.
type Row struct {
	LeagueID      int64
	Season        int
	TeamID        int64
	TeamName      string
	TeamLogo      string
	Rank          int
	Points        int
	GoalsDiff     int
	Group         string
	FaGroup       string
	Form          string
	Status        string
	Description   string
	FaDescription string
	Played        int
	Win           int
	Draw          int
	Lose          int
	GoalsFor      int
	GoalsAgainst  int
	LastUpdate    *time.Time
}
