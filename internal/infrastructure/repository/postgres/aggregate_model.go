package postgres

import (
	"time"

	"github.com/riskibarqy/football-cache/internal/domain/playerstats"
	"github.com/riskibarqy/football-cache/internal/domain/standing"
	"github.com/riskibarqy/football-cache/internal/domain/team"
	"github.com/riskibarqy/football-cache/internal/domain/transfer"
)

type standingTableModel struct {
	LeagueID      int64      `db:"league_id"`
	Season        int        `db:"season"`
	TeamID        int64      `db:"team_id"`
	TeamName      string     `db:"team_name"`
	TeamLogo      string     `db:"team_logo"`
	Rank          int        `db:"rank"`
	Points        int        `db:"points"`
	GoalsDiff     int        `db:"goals_diff"`
	Group         string     `db:"group_name"`
	FaGroup       string     `db:"fa_group"`
	Form          string     `db:"form"`
	Status        string     `db:"status"`
	Description   string     `db:"description"`
	FaDescription string     `db:"fa_description"`
	Played        int        `db:"played"`
	Win           int        `db:"win"`
	Draw          int        `db:"draw"`
	Lose          int        `db:"lose"`
	GoalsFor      int        `db:"goals_for"`
	GoalsAgainst  int        `db:"goals_against"`
	LastUpdate    *time.Time `db:"last_update"`
}

type playerStatTableModel struct {
	PlayerID    int64     `db:"player_id"`
	TeamID      int64     `db:"team_id"`
	TeamName    string    `db:"team_name"`
	TeamLogo    string    `db:"team_logo"`
	LeagueID    int64     `db:"league_id"`
	LeagueName  string    `db:"league_name"`
	Season      int       `db:"season"`
	Position    string    `db:"position"`
	Appearances int       `db:"appearances"`
	Lineups     int       `db:"lineups"`
	Minutes     int       `db:"minutes"`
	Number      *int      `db:"number"`
	Rating      string    `db:"rating"`
	Captain     bool      `db:"captain"`
	SubIn       int       `db:"sub_in"`
	SubOut      int       `db:"sub_out"`
	Bench       int       `db:"bench"`
	UpdatedAt   time.Time `db:"updated_at"`
	figuresModel
}

type transferTableModel struct {
	PlayerID    int64     `db:"player_id"`
	PlayerName  string    `db:"player_name"`
	Date        time.Time `db:"transfer_date"`
	Type        string    `db:"type"`
	FaType      string    `db:"fa_type"`
	TeamInID    int64     `db:"team_in_id"`
	TeamInName  string    `db:"team_in_name"`
	TeamInLogo  string    `db:"team_in_logo"`
	TeamOutID   int64     `db:"team_out_id"`
	TeamOutName string    `db:"team_out_name"`
	TeamOutLogo string    `db:"team_out_logo"`
}

func toStandingModel(item standing.Row) standingTableModel {
	return standingTableModel(item)
}

func (m standingTableModel) toDomain() standing.Row {
	return standing.Row(m)
}

func toPlayerStatModel(item playerstats.Stat, now time.Time) playerStatTableModel {
	return playerStatTableModel{
		PlayerID:     item.PlayerID,
		TeamID:       item.TeamID,
		TeamName:     item.TeamName,
		TeamLogo:     item.TeamLogo,
		LeagueID:     item.LeagueID,
		LeagueName:   item.LeagueName,
		Season:       item.Season,
		Position:     item.Position,
		Appearances:  item.Appearances,
		Lineups:      item.Lineups,
		Minutes:      item.Minutes,
		Number:       item.Number,
		Rating:       item.Rating,
		Captain:      item.Captain,
		SubIn:        item.SubIn,
		SubOut:       item.SubOut,
		Bench:        item.Bench,
		UpdatedAt:    now,
		figuresModel: toFiguresModel(item.Figures),
	}
}

func (m playerStatTableModel) toDomain() playerstats.Stat {
	return playerstats.Stat{
		PlayerID:    m.PlayerID,
		TeamID:      m.TeamID,
		TeamName:    m.TeamName,
		TeamLogo:    m.TeamLogo,
		LeagueID:    m.LeagueID,
		LeagueName:  m.LeagueName,
		Season:      m.Season,
		Position:    m.Position,
		Appearances: m.Appearances,
		Lineups:     m.Lineups,
		Minutes:     m.Minutes,
		Number:      m.Number,
		Rating:      m.Rating,
		Captain:     m.Captain,
		SubIn:       m.SubIn,
		SubOut:      m.SubOut,
		Bench:       m.Bench,
		Figures:     m.figuresModel.toDomain(),
	}
}

func toTransferModel(item transfer.Transfer) transferTableModel {
	return transferTableModel{
		PlayerID:    item.PlayerID,
		PlayerName:  item.PlayerName,
		Date:        item.Date.UTC(),
		Type:        item.Type,
		FaType:      item.FaType,
		TeamInID:    item.TeamIn.ID,
		TeamInName:  item.TeamIn.Name,
		TeamInLogo:  item.TeamIn.Logo,
		TeamOutID:   item.TeamOut.ID,
		TeamOutName: item.TeamOut.Name,
		TeamOutLogo: item.TeamOut.Logo,
	}
}

func (m transferTableModel) toDomain() transfer.Transfer {
	return transfer.Transfer{
		PlayerID:   m.PlayerID,
		PlayerName: m.PlayerName,
		Date:       m.Date.UTC(),
		Type:       m.Type,
		FaType:     m.FaType,
		TeamIn:     team.Ref{ID: m.TeamInID, Name: m.TeamInName, Logo: m.TeamInLogo},
		TeamOut:    team.Ref{ID: m.TeamOutID, Name: m.TeamOutName, Logo: m.TeamOutLogo},
	}
}
