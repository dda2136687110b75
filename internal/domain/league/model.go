package league

import (
	"fmt"
	"time"
)

// League is a competition mirrored from the provider.
type League struct {
	ID        int64
	Symbol    string
	Name      string
	FaName    string
	Type      string
	FaType    string
	Logo      string
	Country   Country
	FaCountry string
}

type Country struct {
	Name string
	Code string
	Flag string
}

// Season is one year of a league. Current marks the provider's running season.
type Season struct {
	LeagueID int64
	Year     int
	Start    *time.Time
	End      *time.Time
	Current  bool
}

func (l League) Validate() error {
	if l.ID <= 0 {
		return fmt.Errorf("league id is required")
	}
	if l.Name == "" {
		return fmt.Errorf("league name is required")
	}
	return nil
}

// CurrentSeason picks the season flagged current, falling back to the latest year.
func CurrentSeason(seasons []Season) (Season, bool) {
	var latest Season
	found := false
	for _, s := range seasons {
		if s.Current {
			return s, true
		}
		if !found || s.Year > latest.Year {
			latest = s
			found = true
		}
	}
	return latest, found
}
