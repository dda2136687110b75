package postgres

import (
	"time"

	"github.com/bytedance/sonic"
	"github.com/riskibarqy/football-cache/internal/domain/coach"
)

type coachTableModel struct {
	ID            int64      `db:"id"`
	Name          string     `db:"name"`
	FaName        string     `db:"fa_name"`
	FirstName     string     `db:"firstname"`
	LastName      string     `db:"lastname"`
	Age           int        `db:"age"`
	BirthDate     *time.Time `db:"birth_date"`
	BirthPlace    string     `db:"birth_place"`
	FaBirthPlace  string     `db:"fa_birth_place"`
	BirthCountry  string     `db:"birth_country"`
	Nationality   string     `db:"nationality"`
	FaNationality string     `db:"fa_nationality"`
	Height        string     `db:"height"`
	Weight        string     `db:"weight"`
	Photo         string     `db:"photo"`
	TeamID        int64      `db:"team_id"`
	TeamName      string     `db:"team_name"`
	Career        string     `db:"career"`
	UpdatedAt     time.Time  `db:"updated_at"`
}

type teamCoachModel struct {
	TeamID  int64 `db:"team_id"`
	CoachID int64 `db:"coach_id"`
}

func toCoachModel(item coach.Coach, now time.Time) (coachTableModel, error) {
	career := item.Career
	if career == nil {
		career = []coach.Spell{}
	}
	raw, err := sonic.MarshalString(career)
	if err != nil {
		return coachTableModel{}, err
	}
	return coachTableModel{
		ID:            item.ID,
		Name:          item.Name,
		FaName:        item.FaName,
		FirstName:     item.FirstName,
		LastName:      item.LastName,
		Age:           item.Age,
		BirthDate:     item.BirthDate,
		BirthPlace:    item.BirthPlace,
		FaBirthPlace:  item.FaBirthPlace,
		BirthCountry:  item.BirthCountry,
		Nationality:   item.Nationality,
		FaNationality: item.FaNationality,
		Height:        item.Height,
		Weight:        item.Weight,
		Photo:         item.Photo,
		TeamID:        item.TeamID,
		TeamName:      item.TeamName,
		Career:        raw,
		UpdatedAt:     now,
	}, nil
}

func (m coachTableModel) toDomain() (coach.Coach, error) {
	var career []coach.Spell
	if m.Career != "" {
		if err := sonic.UnmarshalString(m.Career, &career); err != nil {
			return coach.Coach{}, err
		}
	}
	return coach.Coach{
		ID:            m.ID,
		Name:          m.Name,
		FaName:        m.FaName,
		FirstName:     m.FirstName,
		LastName:      m.LastName,
		Age:           m.Age,
		BirthDate:     m.BirthDate,
		BirthPlace:    m.BirthPlace,
		FaBirthPlace:  m.FaBirthPlace,
		BirthCountry:  m.BirthCountry,
		Nationality:   m.Nationality,
		FaNationality: m.FaNationality,
		Height:        m.Height,
		Weight:        m.Weight,
		Photo:         m.Photo,
		TeamID:        m.TeamID,
		TeamName:      m.TeamName,
		Career:        career,
	}, nil
}
