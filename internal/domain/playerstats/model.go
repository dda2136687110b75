package playerstats

import "fmt"

// Figures are the counting numbers shared by season aggregates and single-fixture lines.
type Figures struct {
	ShotsTotal       int
	ShotsOn          int
	Goals            int
	Conceded         int
	Assists          int
	Saves            int
	PassesTotal      int
	PassesKey        int
	PassesAccuracy   int
	TacklesTotal     int
	Blocks           int
	Interceptions    int
	DuelsTotal       int
	DuelsWon         int
	DribblesAttempts int
	DribblesSuccess  int
	DribblesPast     int
	FoulsDrawn       int
	FoulsCommitted   int
	Yellow           int
	YellowRed        int
	Red              int
	PenaltyWon       int
	PenaltyCommitted int
	PenaltyScored    int
	PenaltyMissed    int
	PenaltySaved     int
}

// Stat is a player's aggregate for one team in one league season.
// (PlayerID, TeamID, LeagueID, Season) is the natural key.
type Stat struct {
	PlayerID    int64
	TeamID      int64
	TeamName    string
	TeamLogo    string
	LeagueID    int64
	LeagueName  string
	Season      int
	Position    string
	Appearances int
	Lineups     int
	Minutes     int
	Number      *int
	Rating      string
	Captain     bool
	SubIn       int
	SubOut      int
	Bench       int
	Figures
}

// Key identifies the row a stat upserts into.
type Key struct {
	PlayerID int64
	TeamID   int64
	LeagueID int64
	Season   int
}

func (s Stat) Key() Key {
	return Key{PlayerID: s.PlayerID, TeamID: s.TeamID, LeagueID: s.LeagueID, Season: s.Season}
}

func (s Stat) Validate() error {
	if s.PlayerID <= 0 || s.TeamID <= 0 || s.LeagueID <= 0 {
		return fmt.Errorf("player stat requires player, team and league ids")
	}
	if s.Season <= 0 {
		return fmt.Errorf("player stat season is required")
	}
	return nil
}

// Dedupe keeps the last stat per natural key, preserving first-seen order.
func Dedupe(items []Stat) []Stat {
	index := make(map[Key]int, len(items))
	out := make([]Stat, 0, len(items))
	for _, item := range items {
		if pos, ok := index[item.Key()]; ok {
			out[pos] = item
			continue
		}
		index[item.Key()] = len(out)
		out = append(out, item)
	}
	return out
}
