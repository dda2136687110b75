package postgres

import (
	"time"

	"github.com/riskibarqy/football-cache/internal/domain/team"
)

type teamTableModel struct {
	ID            int64     `db:"id"`
	Name          string    `db:"name"`
	FaName        string    `db:"fa_name"`
	Code          string    `db:"code"`
	Country       string    `db:"country"`
	FaCountry     string    `db:"fa_country"`
	Founded       int       `db:"founded"`
	National      bool      `db:"national"`
	Logo          string    `db:"logo"`
	VenueID       int64     `db:"venue_id"`
	VenueName     string    `db:"venue_name"`
	VenueFaName   string    `db:"venue_fa_name"`
	VenueAddress  string    `db:"venue_address"`
	VenueCity     string    `db:"venue_city"`
	VenueFaCity   string    `db:"venue_fa_city"`
	VenueCapacity int       `db:"venue_capacity"`
	VenueSurface  string    `db:"venue_surface"`
	VenueImage    string    `db:"venue_image"`
	UpdatedAt     time.Time `db:"updated_at"`
}

type teamSeasonModel struct {
	LeagueID int64 `db:"league_id"`
	Season   int   `db:"season"`
	TeamID   int64 `db:"team_id"`
}

func toTeamModel(item team.Team, now time.Time) teamTableModel {
	return teamTableModel{
		ID:            item.ID,
		Name:          item.Name,
		FaName:        item.FaName,
		Code:          item.Code,
		Country:       item.Country,
		FaCountry:     item.FaCountry,
		Founded:       item.Founded,
		National:      item.National,
		Logo:          item.Logo,
		VenueID:       item.Venue.ID,
		VenueName:     item.Venue.Name,
		VenueFaName:   item.Venue.FaName,
		VenueAddress:  item.Venue.Address,
		VenueCity:     item.Venue.City,
		VenueFaCity:   item.Venue.FaCity,
		VenueCapacity: item.Venue.Capacity,
		VenueSurface:  item.Venue.Surface,
		VenueImage:    item.Venue.Image,
		UpdatedAt:     now,
	}
}

func (m teamTableModel) toDomain() team.Team {
	return team.Team{
		ID:        m.ID,
		Name:      m.Name,
		FaName:    m.FaName,
		Code:      m.Code,
		Country:   m.Country,
		FaCountry: m.FaCountry,
		Founded:   m.Founded,
		National:  m.National,
		Logo:      m.Logo,
		Venue: team.Venue{
			ID:       m.VenueID,
			Name:     m.VenueName,
			FaName:   m.VenueFaName,
			Address:  m.VenueAddress,
			City:     m.VenueCity,
			FaCity:   m.VenueFaCity,
			Capacity: m.VenueCapacity,
			Surface:  m.VenueSurface,
			Image:    m.VenueImage,
		},
	}
}
