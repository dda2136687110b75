package player

import (
	"fmt"
	"strings"
	"time"
)

// Position long names as served to clients.
const (
	PositionGoalkeeper = "Goalkeeper"
	PositionDefender   = "Defender"
	PositionMidfielder = "Midfielder"
	PositionAttacker   = "Attacker"
)

var positionByCode = map[string]string{
	"G": PositionGoalkeeper,
	"D": PositionDefender,
	"M": PositionMidfielder,
	"F": PositionAttacker,
}

// PositionName maps the provider short codes G/D/M/F to long names.
// Long names and unknown values pass through unchanged.
func PositionName(code string) string {
	value := strings.TrimSpace(code)
	if long, ok := positionByCode[strings.ToUpper(value)]; ok {
		return long
	}
	return value
}

// Player holds biographical data; season-level numbers live in playerstats.
type Player struct {
	ID             int64
	Name           string
	DisplayName    string
	FaName         string
	FirstName      string
	LastName       string
	Age            int
	BirthDate      *time.Time
	BirthPlace     string
	FaBirthPlace   string
	BirthCountry   string
	FaBirthCountry string
	Nationality    string
	FaNationality  string
	Height         string
	Weight         string
	Injured        bool
	Photo          string
}

// Membership places a player in a team squad for one league season. The same
// team can list different players per competition.
type Membership struct {
	PlayerID int64
	TeamID   int64
	LeagueID int64
	Season   int
	Number   *int
	Position string
}

// SquadMember is a player listed with squad-specific fields.
type SquadMember struct {
	Player
	TeamID   int64
	LeagueID int64
	Season   int
	Number   *int
	Position string
}

func (p Player) Validate() error {
	if p.ID <= 0 {
		return fmt.Errorf("player id is required")
	}
	if p.Name == "" {
		return fmt.Errorf("player name is required")
	}
	return nil
}
