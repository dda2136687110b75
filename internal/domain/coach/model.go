package coach

import "time"

// Coach is a manager with the current team and a free-form career history.
type Coach struct {
	ID            int64
	Name          string
	FaName        string
	FirstName     string
	LastName      string
	Age           int
	BirthDate     *time.Time
	BirthPlace    string
	FaBirthPlace  string
	BirthCountry  string
	Nationality   string
	FaNationality string
	Height        string
	Weight        string
	Photo         string
	TeamID        int64
	TeamName      string
	Career        []Spell
}

// Spell is one career entry; End is empty while the spell is ongoing.
type Spell struct {
	TeamID   int64  `json:"team_id"`
	TeamName string `json:"team_name"`
	TeamLogo string `json:"team_logo,omitempty"`
	Start    string `json:"start,omitempty"`
	End      string `json:"end,omitempty"`
}
