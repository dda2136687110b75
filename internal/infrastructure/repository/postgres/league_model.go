package postgres

import (
	"time"

	"github.com/riskibarqy/football-cache/internal/domain/league"
)

type leagueTableModel struct {
	ID          int64     `db:"id"`
	Symbol      string    `db:"symbol"`
	Name        string    `db:"name"`
	FaName      string    `db:"fa_name"`
	Type        string    `db:"type"`
	FaType      string    `db:"fa_type"`
	Logo        string    `db:"logo"`
	CountryName string    `db:"country_name"`
	CountryCode string    `db:"country_code"`
	CountryFlag string    `db:"country_flag"`
	FaCountry   string    `db:"fa_country"`
	UpdatedAt   time.Time `db:"updated_at"`
}

type seasonTableModel struct {
	LeagueID  int64      `db:"league_id"`
	Year      int        `db:"year"`
	StartDate *time.Time `db:"start_date"`
	EndDate   *time.Time `db:"end_date"`
	Current   bool       `db:"current"`
}

func toLeagueModel(item league.League, now time.Time) leagueTableModel {
	return leagueTableModel{
		ID:          item.ID,
		Symbol:      item.Symbol,
		Name:        item.Name,
		FaName:      item.FaName,
		Type:        item.Type,
		FaType:      item.FaType,
		Logo:        item.Logo,
		CountryName: item.Country.Name,
		CountryCode: item.Country.Code,
		CountryFlag: item.Country.Flag,
		FaCountry:   item.FaCountry,
		UpdatedAt:   now,
	}
}

func (m leagueTableModel) toDomain() league.League {
	return league.League{
		ID:     m.ID,
		Symbol: m.Symbol,
		Name:   m.Name,
		FaName: m.FaName,
		Type:   m.Type,
		FaType: m.FaType,
		Logo:   m.Logo,
		Country: league.Country{
			Name: m.CountryName,
			Code: m.CountryCode,
			Flag: m.CountryFlag,
		},
		FaCountry: m.FaCountry,
	}
}

func (m seasonTableModel) toDomain() league.Season {
	return league.Season{
		LeagueID: m.LeagueID,
		Year:     m.Year,
		Start:    m.StartDate,
		End:      m.EndDate,
		Current:  m.Current,
	}
}
