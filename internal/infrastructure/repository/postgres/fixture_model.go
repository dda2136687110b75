package postgres

import (
	"time"

	"github.com/bytedance/sonic"
	"github.com/riskibarqy/football-cache/internal/domain/fixture"
	"github.com/riskibarqy/football-cache/internal/domain/team"
)

type fixtureTableModel struct {
	ID             int64     `db:"id"`
	LeagueID       int64     `db:"league_id"`
	Season         int       `db:"season"`
	LeagueName     string    `db:"league_name"`
	FaLeagueName   string    `db:"fa_league_name"`
	LeagueLogo     string    `db:"league_logo"`
	Round          string    `db:"round"`
	RoundLabel     string    `db:"round_label"`
	Referee        string    `db:"referee"`
	FaReferee      string    `db:"fa_referee"`
	Timezone       string    `db:"timezone"`
	Kickoff        time.Time `db:"kickoff"`
	KickoffUnix    int64     `db:"kickoff_unix"`
	VenueID        int64     `db:"venue_id"`
	VenueName      string    `db:"venue_name"`
	VenueFaName    string    `db:"venue_fa_name"`
	VenueCity      string    `db:"venue_city"`
	VenueFaCity    string    `db:"venue_fa_city"`
	StatusLong     string    `db:"status_long"`
	StatusFaLong   string    `db:"status_fa_long"`
	StatusShort    string    `db:"status_short"`
	StatusElapsed  *int      `db:"status_elapsed"`
	HomeTeamID     int64     `db:"home_team_id"`
	HomeTeamName   string    `db:"home_team_name"`
	HomeTeamFaName string    `db:"home_team_fa_name"`
	HomeTeamLogo   string    `db:"home_team_logo"`
	AwayTeamID     int64     `db:"away_team_id"`
	AwayTeamName   string    `db:"away_team_name"`
	AwayTeamFaName string    `db:"away_team_fa_name"`
	AwayTeamLogo   string    `db:"away_team_logo"`
	HomeWinner     *bool     `db:"home_winner"`
	AwayWinner     *bool     `db:"away_winner"`
	GoalsHome      *int      `db:"goals_home"`
	GoalsAway      *int      `db:"goals_away"`
	ScoreHalftime  string    `db:"score_halftime"`
	ScoreFulltime  string    `db:"score_fulltime"`
	ScoreExtratime string    `db:"score_extratime"`
	ScorePenalty   string    `db:"score_penalty"`
	UpdatedAt      time.Time `db:"updated_at"`
}

// fixtureSyncModel marks a fixture list scope as stored in full.
type fixtureSyncModel struct {
	Scope    string    `db:"scope"`
	SyncedAt time.Time `db:"synced_at"`
}

func encodeScore(s fixture.Score) string {
	raw, err := sonic.MarshalString(s)
	if err != nil {
		return "{}"
	}
	return raw
}

func decodeScore(raw string) fixture.Score {
	var s fixture.Score
	if raw == "" {
		return s
	}
	_ = sonic.UnmarshalString(raw, &s)
	return s
}

func toFixtureModel(item fixture.Fixture, now time.Time) fixtureTableModel {
	return fixtureTableModel{
		ID:             item.ID,
		LeagueID:       item.LeagueID,
		Season:         item.Season,
		LeagueName:     item.LeagueName,
		FaLeagueName:   item.FaLeagueName,
		LeagueLogo:     item.LeagueLogo,
		Round:          item.Round,
		RoundLabel:     item.RoundLabel,
		Referee:        item.Referee,
		FaReferee:      item.FaReferee,
		Timezone:       item.Timezone,
		Kickoff:        item.Kickoff.UTC(),
		KickoffUnix:    item.Timestamp,
		VenueID:        item.Venue.ID,
		VenueName:      item.Venue.Name,
		VenueFaName:    item.Venue.FaName,
		VenueCity:      item.Venue.City,
		VenueFaCity:    item.Venue.FaCity,
		StatusLong:     item.Status.Long,
		StatusFaLong:   item.Status.FaLong,
		StatusShort:    item.Status.Short,
		StatusElapsed:  item.Status.Elapsed,
		HomeTeamID:     item.Home.ID,
		HomeTeamName:   item.Home.Name,
		HomeTeamFaName: item.Home.FaName,
		HomeTeamLogo:   item.Home.Logo,
		AwayTeamID:     item.Away.ID,
		AwayTeamName:   item.Away.Name,
		AwayTeamFaName: item.Away.FaName,
		AwayTeamLogo:   item.Away.Logo,
		HomeWinner:     item.HomeWinner,
		AwayWinner:     item.AwayWinner,
		GoalsHome:      item.Goals.Home,
		GoalsAway:      item.Goals.Away,
		ScoreHalftime:  encodeScore(item.Score.Halftime),
		ScoreFulltime:  encodeScore(item.Score.Fulltime),
		ScoreExtratime: encodeScore(item.Score.Extratime),
		ScorePenalty:   encodeScore(item.Score.Penalty),
		UpdatedAt:      now,
	}
}

func (m fixtureTableModel) toDomain() fixture.Fixture {
	return fixture.Fixture{
		ID:           m.ID,
		LeagueID:     m.LeagueID,
		LeagueName:   m.LeagueName,
		FaLeagueName: m.FaLeagueName,
		LeagueLogo:   m.LeagueLogo,
		Season:       m.Season,
		Round:        m.Round,
		RoundLabel:   m.RoundLabel,
		Referee:      m.Referee,
		FaReferee:    m.FaReferee,
		Timezone:     m.Timezone,
		Kickoff:      m.Kickoff.UTC(),
		Timestamp:    m.KickoffUnix,
		Venue: fixture.Venue{
			ID:     m.VenueID,
			Name:   m.VenueName,
			FaName: m.VenueFaName,
			City:   m.VenueCity,
			FaCity: m.VenueFaCity,
		},
		Status: fixture.Status{
			Long:    m.StatusLong,
			FaLong:  m.StatusFaLong,
			Short:   m.StatusShort,
			Elapsed: m.StatusElapsed,
		},
		Home:       team.Ref{ID: m.HomeTeamID, Name: m.HomeTeamName, FaName: m.HomeTeamFaName, Logo: m.HomeTeamLogo},
		Away:       team.Ref{ID: m.AwayTeamID, Name: m.AwayTeamName, FaName: m.AwayTeamFaName, Logo: m.AwayTeamLogo},
		HomeWinner: m.HomeWinner,
		AwayWinner: m.AwayWinner,
		Goals:      fixture.Score{Home: m.GoalsHome, Away: m.GoalsAway},
		Score: fixture.Scores{
			Halftime:  decodeScore(m.ScoreHalftime),
			Fulltime:  decodeScore(m.ScoreFulltime),
			Extratime: decodeScore(m.ScoreExtratime),
			Penalty:   decodeScore(m.ScorePenalty),
		},
	}
}
