package postgres

import (
	"github.com/riskibarqy/football-cache/internal/domain/fixturedetail"
	"github.com/riskibarqy/football-cache/internal/domain/playerstats"
)

type fixtureStatModel struct {
	FixtureID       int64  `db:"fixture_id"`
	TeamID          int64  `db:"team_id"`
	TeamName        string `db:"team_name"`
	TeamLogo        string `db:"team_logo"`
	ShotsOnGoal     int    `db:"shots_on_goal"`
	ShotsOffGoal    int    `db:"shots_off_goal"`
	TotalShots      int    `db:"total_shots"`
	BlockedShots    int    `db:"blocked_shots"`
	ShotsInsideBox  int    `db:"shots_inside_box"`
	ShotsOutsideBox int    `db:"shots_outside_box"`
	Fouls           int    `db:"fouls"`
	CornerKicks     int    `db:"corner_kicks"`
	Offsides        int    `db:"offsides"`
	BallPossession  int    `db:"ball_possession"`
	YellowCards     int    `db:"yellow_cards"`
	RedCards        int    `db:"red_cards"`
	GoalkeeperSaves int    `db:"goalkeeper_saves"`
	TotalPasses     int    `db:"total_passes"`
	PassesAccurate  int    `db:"passes_accurate"`
	PassesPercent   int    `db:"passes_percent"`
	ExpectedGoals   string `db:"expected_goals"`
}

type fixtureEventModel struct {
	FixtureID  int64  `db:"fixture_id"`
	Seq        int    `db:"seq"`
	TeamID     int64  `db:"team_id"`
	TeamName   string `db:"team_name"`
	PlayerID   int64  `db:"player_id"`
	PlayerName string `db:"player_name"`
	AssistID   int64  `db:"assist_id"`
	AssistName string `db:"assist_name"`
	Type       string `db:"type"`
	Detail     string `db:"detail"`
	FaDetail   string `db:"fa_detail"`
	Comments   string `db:"comments"`
	Elapsed    int    `db:"time_elapsed"`
	Extra      *int   `db:"time_extra"`
}

type fixtureLineupModel struct {
	FixtureID  int64  `db:"fixture_id"`
	TeamID     int64  `db:"team_id"`
	TeamName   string `db:"team_name"`
	TeamLogo   string `db:"team_logo"`
	CoachID    int64  `db:"coach_id"`
	CoachName  string `db:"coach_name"`
	CoachPhoto string `db:"coach_photo"`
	Formation  string `db:"formation"`
	Colors     string `db:"colors"`
}

type fixtureLineupPlayerModel struct {
	FixtureID int64  `db:"fixture_id"`
	TeamID    int64  `db:"team_id"`
	Seq       int    `db:"seq"`
	PlayerID  int64  `db:"player_id"`
	Name      string `db:"name"`
	Number    *int   `db:"number"`
	Pos       string `db:"pos"`
	Grid      string `db:"grid"`
	Starting  bool   `db:"is_starting"`
}

// figuresModel maps playerstats.Figures; it is embedded in both per-fixture
// and per-season player rows.
type figuresModel struct {
	ShotsTotal       int `db:"shots_total"`
	ShotsOn          int `db:"shots_on"`
	Goals            int `db:"goals"`
	Conceded         int `db:"conceded"`
	Assists          int `db:"assists"`
	Saves            int `db:"saves"`
	PassesTotal      int `db:"passes_total"`
	PassesKey        int `db:"passes_key"`
	PassesAccuracy   int `db:"passes_accuracy"`
	TacklesTotal     int `db:"tackles_total"`
	Blocks           int `db:"blocks"`
	Interceptions    int `db:"interceptions"`
	DuelsTotal       int `db:"duels_total"`
	DuelsWon         int `db:"duels_won"`
	DribblesAttempts int `db:"dribbles_attempts"`
	DribblesSuccess  int `db:"dribbles_success"`
	DribblesPast     int `db:"dribbles_past"`
	FoulsDrawn       int `db:"fouls_drawn"`
	FoulsCommitted   int `db:"fouls_committed"`
	Yellow           int `db:"yellow"`
	YellowRed        int `db:"yellow_red"`
	Red              int `db:"red"`
	PenaltyWon       int `db:"penalty_won"`
	PenaltyCommitted int `db:"penalty_committed"`
	PenaltyScored    int `db:"penalty_scored"`
	PenaltyMissed    int `db:"penalty_missed"`
	PenaltySaved     int `db:"penalty_saved"`
}

type fixturePlayerModel struct {
	FixtureID  int64  `db:"fixture_id"`
	PlayerID   int64  `db:"player_id"`
	TeamID     int64  `db:"team_id"`
	TeamName   string `db:"team_name"`
	Name       string `db:"name"`
	Photo      string `db:"photo"`
	Minutes    int    `db:"minutes"`
	Number     *int   `db:"number"`
	Position   string `db:"position"`
	Rating     string `db:"rating"`
	Captain    bool   `db:"captain"`
	Substitute bool   `db:"substitute"`
	Offsides   int    `db:"offsides"`
	figuresModel
}

func toFiguresModel(f playerstats.Figures) figuresModel {
	return figuresModel(f)
}

func (m figuresModel) toDomain() playerstats.Figures {
	return playerstats.Figures(m)
}

func toFixtureStatModel(item fixturedetail.TeamStat) fixtureStatModel {
	return fixtureStatModel(item)
}

func (m fixtureStatModel) toDomain() fixturedetail.TeamStat {
	return fixturedetail.TeamStat(m)
}

func toFixtureEventModel(item fixturedetail.Event) fixtureEventModel {
	return fixtureEventModel(item)
}

func (m fixtureEventModel) toDomain() fixturedetail.Event {
	return fixturedetail.Event(m)
}

func toFixturePlayerModel(item fixturedetail.PlayerPerformance) fixturePlayerModel {
	return fixturePlayerModel{
		FixtureID:    item.FixtureID,
		PlayerID:     item.PlayerID,
		TeamID:       item.TeamID,
		TeamName:     item.TeamName,
		Name:         item.Name,
		Photo:        item.Photo,
		Minutes:      item.Minutes,
		Number:       item.Number,
		Position:     item.Position,
		Rating:       item.Rating,
		Captain:      item.Captain,
		Substitute:   item.Substitute,
		Offsides:     item.Offsides,
		figuresModel: toFiguresModel(item.Figures),
	}
}

func (m fixturePlayerModel) toDomain() fixturedetail.PlayerPerformance {
	return fixturedetail.PlayerPerformance{
		FixtureID:  m.FixtureID,
		PlayerID:   m.PlayerID,
		TeamID:     m.TeamID,
		TeamName:   m.TeamName,
		Name:       m.Name,
		Photo:      m.Photo,
		Minutes:    m.Minutes,
		Number:     m.Number,
		Position:   m.Position,
		Rating:     m.Rating,
		Captain:    m.Captain,
		Substitute: m.Substitute,
		Offsides:   m.Offsides,
		Figures:    m.figuresModel.toDomain(),
	}
}
