package postgres

import (
	"time"

	"github.com/riskibarqy/football-cache/internal/domain/player"
)

type playerTableModel struct {
	ID             int64      `db:"id"`
	Name           string     `db:"name"`
	DisplayName    string     `db:"display_name"`
	FaName         string     `db:"fa_name"`
	FirstName      string     `db:"firstname"`
	LastName       string     `db:"lastname"`
	Age            int        `db:"age"`
	BirthDate      *time.Time `db:"birth_date"`
	BirthPlace     string     `db:"birth_place"`
	FaBirthPlace   string     `db:"fa_birth_place"`
	BirthCountry   string     `db:"birth_country"`
	FaBirthCountry string     `db:"fa_birth_country"`
	Nationality    string     `db:"nationality"`
	FaNationality  string     `db:"fa_nationality"`
	Height         string     `db:"height"`
	Weight         string     `db:"weight"`
	Injured        bool       `db:"injured"`
	Photo          string     `db:"photo"`
	UpdatedAt      time.Time  `db:"updated_at"`
}

type playerTeamModel struct {
	PlayerID int64  `db:"player_id"`
	TeamID   int64  `db:"team_id"`
	LeagueID int64  `db:"league_id"`
	Season   int    `db:"season"`
	Number   *int   `db:"number"`
	Position string `db:"position"`
}

type squadRowModel struct {
	playerTableModel
	TeamID   int64  `db:"team_id"`
	LeagueID int64  `db:"league_id"`
	Season   int    `db:"season"`
	Number   *int   `db:"number"`
	Position string `db:"position"`
}

func toPlayerModel(item player.Player, now time.Time) playerTableModel {
	return playerTableModel{
		ID:             item.ID,
		Name:           item.Name,
		DisplayName:    item.DisplayName,
		FaName:         item.FaName,
		FirstName:      item.FirstName,
		LastName:       item.LastName,
		Age:            item.Age,
		BirthDate:      item.BirthDate,
		BirthPlace:     item.BirthPlace,
		FaBirthPlace:   item.FaBirthPlace,
		BirthCountry:   item.BirthCountry,
		FaBirthCountry: item.FaBirthCountry,
		Nationality:    item.Nationality,
		FaNationality:  item.FaNationality,
		Height:         item.Height,
		Weight:         item.Weight,
		Injured:        item.Injured,
		Photo:          item.Photo,
		UpdatedAt:      now,
	}
}

func (m playerTableModel) toDomain() player.Player {
	return player.Player{
		ID:             m.ID,
		Name:           m.Name,
		DisplayName:    m.DisplayName,
		FaName:         m.FaName,
		FirstName:      m.FirstName,
		LastName:       m.LastName,
		Age:            m.Age,
		BirthDate:      m.BirthDate,
		BirthPlace:     m.BirthPlace,
		FaBirthPlace:   m.FaBirthPlace,
		BirthCountry:   m.BirthCountry,
		FaBirthCountry: m.FaBirthCountry,
		Nationality:    m.Nationality,
		FaNationality:  m.FaNationality,
		Height:         m.Height,
		Weight:         m.Weight,
		Injured:        m.Injured,
		Photo:          m.Photo,
	}
}
