package team

import "fmt"

// Team is a club or national side mirrored from the provider.
type Team struct {
	ID        int64
	Name      string
	FaName    string
	Code      string
	Country   string
	FaCountry string
	Founded   int
	National  bool
	Logo      string
	Venue     Venue
}

type Venue struct {
	ID       int64
	Name     string
	FaName   string
	Address  string
	City     string
	FaCity   string
	Capacity int
	Surface  string
	Image    string
}

// Membership says a team played a league season.
type Membership struct {
	TeamID   int64
	LeagueID int64
	Season   int
}

// Ref is the abbreviated team shape embedded in fixtures, stats and transfers.
type Ref struct {
	ID     int64
	Name   string
	FaName string
	Logo   string
}

func (t Team) Validate() error {
	if t.ID <= 0 {
		return fmt.Errorf("team id is required")
	}
	if t.Name == "" {
		return fmt.Errorf("team name is required")
	}
	return nil
}

func (t Team) Ref() Ref {
	return Ref{ID: t.ID, Name: t.Name, FaName: t.FaName, Logo: t.Logo}
}
