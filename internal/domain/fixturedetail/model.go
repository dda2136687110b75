package fixturedetail

import (
	"encoding/json"

	"github.com/riskibarqy/football-cache/internal/domain/playerstats"
)

// TeamStat is one team's statistics line for a fixture.
type TeamStat struct {
	FixtureID       int64
	TeamID          int64
	TeamName        string
	TeamLogo        string
	ShotsOnGoal     int
	ShotsOffGoal    int
	TotalShots      int
	BlockedShots    int
	ShotsInsideBox  int
	ShotsOutsideBox int
	Fouls           int
	CornerKicks     int
	Offsides        int
	BallPossession  int
	YellowCards     int
	RedCards        int
	GoalkeeperSaves int
	TotalPasses     int
	PassesAccurate  int
	PassesPercent   int
	ExpectedGoals   string
}

// Event is an in-match incident. Seq keeps provider order within a fixture.
type Event struct {
	FixtureID  int64
	Seq        int
	TeamID     int64
	TeamName   string
	PlayerID   int64
	PlayerName string
	AssistID   int64
	AssistName string
	Type       string
	Detail     string
	FaDetail   string
	Comments   string
	Elapsed    int
	Extra      *int
}

type Lineup struct {
	FixtureID  int64
	TeamID     int64
	TeamName   string
	TeamLogo   string
	CoachID    int64
	CoachName  string
	CoachPhoto string
	Formation  string
	Colors     json.RawMessage
	Players    []LineupPlayer
}

type LineupPlayer struct {
	FixtureID int64
	TeamID    int64
	PlayerID  int64
	Name      string
	Number    *int
	Pos       string
	Grid      string
	Starting  bool
}

// Split returns the starting eleven and the substitutes in stored order.
func (l Lineup) Split() (startXI, substitutes []LineupPlayer) {
	for _, p := range l.Players {
		if p.Starting {
			startXI = append(startXI, p)
			continue
		}
		substitutes = append(substitutes, p)
	}
	return startXI, substitutes
}

// PlayerPerformance is one player's line in a single fixture.
type PlayerPerformance struct {
	FixtureID  int64
	PlayerID   int64
	TeamID     int64
	TeamName   string
	Name       string
	Photo      string
	Minutes    int
	Number     *int
	Position   string
	Rating     string
	Captain    bool
	Substitute bool
	Offsides   int
	playerstats.Figures
}
