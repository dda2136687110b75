package httpapi

import (
	"encoding/json"
	"time"

	"github.com/riskibarqy/football-cache/internal/domain/coach"
	"github.com/riskibarqy/football-cache/internal/domain/fixture"
	"github.com/riskibarqy/football-cache/internal/domain/fixturedetail"
	"github.com/riskibarqy/football-cache/internal/domain/player"
	"github.com/riskibarqy/football-cache/internal/domain/playerstats"
	"github.com/riskibarqy/football-cache/internal/domain/standing"
	"github.com/riskibarqy/football-cache/internal/domain/team"
	"github.com/riskibarqy/football-cache/internal/domain/transfer"
	"github.com/riskibarqy/football-cache/internal/usecase"
)

type countryDTO struct {
	Name   string `json:"name"`
	FaName string `json:"fa_name"`
	Code   string `json:"code,omitempty"`
	Flag   string `json:"flag,omitempty"`
}

type leagueSeasonDTO struct {
	Year    int        `json:"year"`
	Start   *time.Time `json:"start,omitempty"`
	End     *time.Time `json:"end,omitempty"`
	Current bool       `json:"current"`
}

type leagueDTO struct {
	ID      int64             `json:"id"`
	Symbol  string            `json:"symbol,omitempty"`
	Name    string            `json:"name"`
	FaName  string            `json:"fa_name"`
	Type    string            `json:"type"`
	FaType  string            `json:"fa_type"`
	Logo    string            `json:"logo"`
	Country countryDTO        `json:"country"`
	Seasons []leagueSeasonDTO `json:"seasons"`
}

// seasonDTO wraps a bare year the way every season-scoped payload exposes it.
type seasonDTO struct {
	Year int `json:"year"`
}

type refDTO struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	FaName string `json:"fa_name"`
	Logo   string `json:"logo"`
}

type venueDTO struct {
	ID       int64  `json:"id,omitempty"`
	Name     string `json:"name"`
	FaName   string `json:"fa_name"`
	Address  string `json:"address,omitempty"`
	City     string `json:"city"`
	FaCity   string `json:"fa_city"`
	Capacity int    `json:"capacity,omitempty"`
	Surface  string `json:"surface,omitempty"`
	Image    string `json:"image,omitempty"`
}

type teamDTO struct {
	ID        int64    `json:"id"`
	Name      string   `json:"name"`
	FaName    string   `json:"fa_name"`
	Code      string   `json:"code"`
	Country   string   `json:"country"`
	FaCountry string   `json:"fa_country"`
	Founded   int      `json:"founded"`
	National  bool     `json:"national"`
	Logo      string   `json:"logo"`
	Venue     venueDTO `json:"venue"`
}

type coachDTO struct {
	ID            int64         `json:"id"`
	Name          string        `json:"name"`
	FaName        string        `json:"fa_name"`
	FirstName     string        `json:"firstname"`
	LastName      string        `json:"lastname"`
	Age           int           `json:"age"`
	BirthDate     *time.Time    `json:"birth_date,omitempty"`
	BirthPlace    string        `json:"birth_place"`
	FaBirthPlace  string        `json:"fa_birth_place"`
	BirthCountry  string        `json:"birth_country"`
	Nationality   string        `json:"nationality"`
	FaNationality string        `json:"fa_nationality"`
	Photo         string        `json:"photo"`
	Team          refDTO        `json:"team"`
	Career        []coach.Spell `json:"career"`
}

type playerDTO struct {
	ID             int64      `json:"id"`
	Name           string     `json:"name"`
	DisplayName    string     `json:"display_name"`
	FaName         string     `json:"fa_name"`
	FirstName      string     `json:"firstname"`
	LastName       string     `json:"lastname"`
	Age            int        `json:"age"`
	BirthDate      *time.Time `json:"birth_date,omitempty"`
	BirthPlace     string     `json:"birth_place"`
	FaBirthPlace   string     `json:"fa_birth_place"`
	BirthCountry   string     `json:"birth_country"`
	FaBirthCountry string     `json:"fa_birth_country"`
	Nationality    string     `json:"nationality"`
	FaNationality  string     `json:"fa_nationality"`
	Height         string     `json:"height"`
	Weight         string     `json:"weight"`
	Injured        bool       `json:"injured"`
	Photo          string     `json:"photo"`
}

type squadMemberDTO struct {
	playerDTO
	Season   seasonDTO `json:"season"`
	Number   *int      `json:"number"`
	Position string    `json:"position"`
}

type figuresDTO struct {
	ShotsTotal       int `json:"shots_total"`
	ShotsOn          int `json:"shots_on"`
	Goals            int `json:"goals"`
	Conceded         int `json:"conceded"`
	Assists          int `json:"assists"`
	Saves            int `json:"saves"`
	PassesTotal      int `json:"passes_total"`
	PassesKey        int `json:"passes_key"`
	PassesAccuracy   int `json:"passes_accuracy"`
	TacklesTotal     int `json:"tackles_total"`
	Blocks           int `json:"blocks"`
	Interceptions    int `json:"interceptions"`
	DuelsTotal       int `json:"duels_total"`
	DuelsWon         int `json:"duels_won"`
	DribblesAttempts int `json:"dribbles_attempts"`
	DribblesSuccess  int `json:"dribbles_success"`
	DribblesPast     int `json:"dribbles_past"`
	FoulsDrawn       int `json:"fouls_drawn"`
	FoulsCommitted   int `json:"fouls_committed"`
	Yellow           int `json:"cards_yellow"`
	YellowRed        int `json:"cards_yellowred"`
	Red              int `json:"cards_red"`
	PenaltyWon       int `json:"penalty_won"`
	PenaltyCommitted int `json:"penalty_committed"`
	PenaltyScored    int `json:"penalty_scored"`
	PenaltyMissed    int `json:"penalty_missed"`
	PenaltySaved     int `json:"penalty_saved"`
}

type playerStatDTO struct {
	Team        refDTO     `json:"team"`
	League      refDTO     `json:"league"`
	Season      seasonDTO  `json:"season"`
	Position    string     `json:"position"`
	Appearances int        `json:"appearances"`
	Lineups     int        `json:"lineups"`
	Minutes     int        `json:"minutes"`
	Number      *int       `json:"number"`
	Rating      string     `json:"rating"`
	Captain     bool       `json:"captain"`
	SubIn       int        `json:"substitutes_in"`
	SubOut      int        `json:"substitutes_out"`
	Bench       int        `json:"bench"`
	Figures     figuresDTO `json:"figures"`
}

type playerSeasonDTO struct {
	Player     playerDTO       `json:"player"`
	Season     seasonDTO       `json:"season"`
	Statistics []playerStatDTO `json:"statistics"`
}

type transferDTO struct {
	Date    string `json:"date"`
	Type    string `json:"type"`
	FaType  string `json:"fa_type"`
	TeamIn  refDTO `json:"team_in"`
	TeamOut refDTO `json:"team_out"`
}

type statusDTO struct {
	Long    string `json:"long"`
	FaLong  string `json:"fa_long"`
	Short   string `json:"short"`
	Elapsed *int   `json:"elapsed"`
}

type scoresDTO struct {
	Halftime  fixture.Score `json:"halftime"`
	Fulltime  fixture.Score `json:"fulltime"`
	Extratime fixture.Score `json:"extratime"`
	Penalty   fixture.Score `json:"penalty"`
}

type fixtureDTO struct {
	ID         int64         `json:"id"`
	League     refDTO        `json:"league"`
	Season     seasonDTO     `json:"season"`
	Round      string        `json:"round"`
	RoundLabel string        `json:"round_label"`
	Referee    string        `json:"referee"`
	FaReferee  string        `json:"fa_referee"`
	Timezone   string        `json:"timezone"`
	Date       time.Time     `json:"date"`
	Timestamp  int64         `json:"timestamp"`
	Venue      venueDTO      `json:"venue"`
	Status     statusDTO     `json:"status"`
	Home       refDTO        `json:"home"`
	Away       refDTO        `json:"away"`
	HomeWinner *bool         `json:"home_winner"`
	AwayWinner *bool         `json:"away_winner"`
	Goals      fixture.Score `json:"goals"`
	Score      scoresDTO     `json:"score"`
}

type teamStatDTO struct {
	Team            refDTO `json:"team"`
	ShotsOnGoal     int    `json:"shots_on_goal"`
	ShotsOffGoal    int    `json:"shots_off_goal"`
	TotalShots      int    `json:"total_shots"`
	BlockedShots    int    `json:"blocked_shots"`
	ShotsInsideBox  int    `json:"shots_insidebox"`
	ShotsOutsideBox int    `json:"shots_outsidebox"`
	Fouls           int    `json:"fouls"`
	CornerKicks     int    `json:"corner_kicks"`
	Offsides        int    `json:"offsides"`
	BallPossession  int    `json:"ball_possession"`
	YellowCards     int    `json:"yellow_cards"`
	RedCards        int    `json:"red_cards"`
	GoalkeeperSaves int    `json:"goalkeeper_saves"`
	TotalPasses     int    `json:"total_passes"`
	PassesAccurate  int    `json:"passes_accurate"`
	PassesPercent   int    `json:"passes_percent"`
	ExpectedGoals   string `json:"expected_goals"`
}

type personDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type eventDTO struct {
	Elapsed  int       `json:"elapsed"`
	Extra    *int      `json:"extra"`
	Team     refDTO    `json:"team"`
	Player   personDTO `json:"player"`
	Assist   personDTO `json:"assist"`
	Type     string    `json:"type"`
	Detail   string    `json:"detail"`
	FaDetail string    `json:"fa_detail"`
	Comments string    `json:"comments"`
}

type lineupPlayerDTO struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Number *int   `json:"number"`
	Pos    string `json:"pos"`
	Grid   string `json:"grid"`
}

type lineupCoachDTO struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Photo string `json:"photo"`
}

type lineupDTO struct {
	Team        refDTO            `json:"team"`
	Coach       lineupCoachDTO    `json:"coach"`
	Formation   string            `json:"formation"`
	Colors      json.RawMessage   `json:"colors,omitempty"`
	StartXI     []lineupPlayerDTO `json:"start_xi"`
	Substitutes []lineupPlayerDTO `json:"substitutes"`
}

type performanceDTO struct {
	Player     personDTO  `json:"player"`
	Photo      string     `json:"photo"`
	Team       refDTO     `json:"team"`
	Minutes    int        `json:"minutes"`
	Number     *int       `json:"number"`
	Position   string     `json:"position"`
	Rating     string     `json:"rating"`
	Captain    bool       `json:"captain"`
	Substitute bool       `json:"substitute"`
	Offsides   int        `json:"offsides"`
	Figures    figuresDTO `json:"figures"`
}

type standingDTO struct {
	Rank          int        `json:"rank"`
	Team          refDTO     `json:"team"`
	Points        int        `json:"points"`
	GoalsDiff     int        `json:"goals_diff"`
	Group         string     `json:"group"`
	FaGroup       string     `json:"fa_group"`
	Form          string     `json:"form"`
	Status        string     `json:"status"`
	Description   string     `json:"description"`
	FaDescription string     `json:"fa_description"`
	Played        int        `json:"played"`
	Win           int        `json:"win"`
	Draw          int        `json:"draw"`
	Lose          int        `json:"lose"`
	GoalsFor      int        `json:"goals_for"`
	GoalsAgainst  int        `json:"goals_against"`
	LastUpdate    *time.Time `json:"last_update,omitempty"`
}

type tallyDTO struct {
	TeamID int64 `json:"team_id"`
	Goals  int   `json:"goals"`
	Wins   int   `json:"wins"`
}

type leagueTallyDTO struct {
	LeagueID int64      `json:"league_id"`
	Fixtures int        `json:"fixtures"`
	Goals    int        `json:"goals"`
	Draws    int        `json:"draws"`
	Teams    []tallyDTO `json:"teams"`
}

type h2hDTO struct {
	Source   string           `json:"source"`
	Fixtures int              `json:"fixtures"`
	Goals    int              `json:"goals"`
	Draws    int              `json:"draws"`
	Teams    []tallyDTO       `json:"teams"`
	Leagues  []leagueTallyDTO `json:"leagues"`
	Matches  []fixtureDTO     `json:"matches"`
}

func leagueToDTO(v usecase.LeagueDetails) leagueDTO {
	l := v.League
	out := leagueDTO{
		ID:     l.ID,
		Symbol: l.Symbol,
		Name:   l.Name,
		FaName: l.FaName,
		Type:   l.Type,
		FaType: l.FaType,
		Logo:   l.Logo,
		Country: countryDTO{
			Name:   l.Country.Name,
			FaName: l.FaCountry,
			Code:   l.Country.Code,
			Flag:   l.Country.Flag,
		},
		Seasons: make([]leagueSeasonDTO, 0, len(v.Seasons)),
	}
	for _, s := range v.Seasons {
		out.Seasons = append(out.Seasons, leagueSeasonDTO{Year: s.Year, Start: s.Start, End: s.End, Current: s.Current})
	}
	return out
}

func leagueRef(f fixture.Fixture) refDTO {
	return refDTO{ID: f.LeagueID, Name: f.LeagueName, FaName: f.FaLeagueName, Logo: f.LeagueLogo}
}

func teamRef(v team.Ref) refDTO {
	return refDTO{ID: v.ID, Name: v.Name, FaName: v.FaName, Logo: v.Logo}
}

func teamToDTO(v team.Team) teamDTO {
	return teamDTO{
		ID:        v.ID,
		Name:      v.Name,
		FaName:    v.FaName,
		Code:      v.Code,
		Country:   v.Country,
		FaCountry: v.FaCountry,
		Founded:   v.Founded,
		National:  v.National,
		Logo:      v.Logo,
		Venue: venueDTO{
			ID:       v.Venue.ID,
			Name:     v.Venue.Name,
			FaName:   v.Venue.FaName,
			Address:  v.Venue.Address,
			City:     v.Venue.City,
			FaCity:   v.Venue.FaCity,
			Capacity: v.Venue.Capacity,
			Surface:  v.Venue.Surface,
			Image:    v.Venue.Image,
		},
	}
}

func coachToDTO(v coach.Coach) coachDTO {
	career := v.Career
	if career == nil {
		career = []coach.Spell{}
	}
	return coachDTO{
		ID:            v.ID,
		Name:          v.Name,
		FaName:        v.FaName,
		FirstName:     v.FirstName,
		LastName:      v.LastName,
		Age:           v.Age,
		BirthDate:     v.BirthDate,
		BirthPlace:    v.BirthPlace,
		FaBirthPlace:  v.FaBirthPlace,
		BirthCountry:  v.BirthCountry,
		Nationality:   v.Nationality,
		FaNationality: v.FaNationality,
		Photo:         v.Photo,
		Team:          refDTO{ID: v.TeamID, Name: v.TeamName},
		Career:        career,
	}
}

func playerToDTO(v player.Player) playerDTO {
	return playerDTO{
		ID:             v.ID,
		Name:           v.Name,
		DisplayName:    v.DisplayName,
		FaName:         v.FaName,
		FirstName:      v.FirstName,
		LastName:       v.LastName,
		Age:            v.Age,
		BirthDate:      v.BirthDate,
		BirthPlace:     v.BirthPlace,
		FaBirthPlace:   v.FaBirthPlace,
		BirthCountry:   v.BirthCountry,
		FaBirthCountry: v.FaBirthCountry,
		Nationality:    v.Nationality,
		FaNationality:  v.FaNationality,
		Height:         v.Height,
		Weight:         v.Weight,
		Injured:        v.Injured,
		Photo:          v.Photo,
	}
}

func squadMemberToDTO(v player.SquadMember) squadMemberDTO {
	return squadMemberDTO{
		playerDTO: playerToDTO(v.Player),
		Season:    seasonDTO{Year: v.Season},
		Number:    v.Number,
		Position:  v.Position,
	}
}

func figuresToDTO(v playerstats.Figures) figuresDTO {
	return figuresDTO(v)
}

func playerSeasonToDTO(v usecase.PlayerSeason) playerSeasonDTO {
	out := playerSeasonDTO{
		Player:     playerToDTO(v.Player),
		Season:     seasonDTO{Year: v.Season},
		Statistics: make([]playerStatDTO, 0, len(v.Stats)),
	}
	for _, s := range v.Stats {
		out.Statistics = append(out.Statistics, playerStatDTO{
			Team:        refDTO{ID: s.TeamID, Name: s.TeamName, Logo: s.TeamLogo},
			League:      refDTO{ID: s.LeagueID, Name: s.LeagueName},
			Season:      seasonDTO{Year: s.Season},
			Position:    s.Position,
			Appearances: s.Appearances,
			Lineups:     s.Lineups,
			Minutes:     s.Minutes,
			Number:      s.Number,
			Rating:      s.Rating,
			Captain:     s.Captain,
			SubIn:       s.SubIn,
			SubOut:      s.SubOut,
			Bench:       s.Bench,
			Figures:     figuresToDTO(s.Figures),
		})
	}
	return out
}

func transferToDTO(v transfer.Transfer) transferDTO {
	return transferDTO{
		Date:    v.Date.Format(time.DateOnly),
		Type:    v.Type,
		FaType:  v.FaType,
		TeamIn:  teamRef(v.TeamIn),
		TeamOut: teamRef(v.TeamOut),
	}
}

func fixtureToDTO(v fixture.Fixture) fixtureDTO {
	return fixtureDTO{
		ID:         v.ID,
		League:     leagueRef(v),
		Season:     seasonDTO{Year: v.Season},
		Round:      v.Round,
		RoundLabel: v.RoundLabel,
		Referee:    v.Referee,
		FaReferee:  v.FaReferee,
		Timezone:   v.Timezone,
		Date:       v.Kickoff,
		Timestamp:  v.Timestamp,
		Venue: venueDTO{
			ID:     v.Venue.ID,
			Name:   v.Venue.Name,
			FaName: v.Venue.FaName,
			City:   v.Venue.City,
			FaCity: v.Venue.FaCity,
		},
		Status: statusDTO{
			Long:    v.Status.Long,
			FaLong:  v.Status.FaLong,
			Short:   v.Status.Short,
			Elapsed: v.Status.Elapsed,
		},
		Home:       teamRef(v.Home),
		Away:       teamRef(v.Away),
		HomeWinner: v.HomeWinner,
		AwayWinner: v.AwayWinner,
		Goals:      v.Goals,
		Score: scoresDTO{
			Halftime:  v.Score.Halftime,
			Fulltime:  v.Score.Fulltime,
			Extratime: v.Score.Extratime,
			Penalty:   v.Score.Penalty,
		},
	}
}

func fixturesToDTO(items []fixture.Fixture) []fixtureDTO {
	return mapSlice(items, fixtureToDTO)
}

func teamStatToDTO(v fixturedetail.TeamStat) teamStatDTO {
	return teamStatDTO{
		Team:            refDTO{ID: v.TeamID, Name: v.TeamName, Logo: v.TeamLogo},
		ShotsOnGoal:     v.ShotsOnGoal,
		ShotsOffGoal:    v.ShotsOffGoal,
		TotalShots:      v.TotalShots,
		BlockedShots:    v.BlockedShots,
		ShotsInsideBox:  v.ShotsInsideBox,
		ShotsOutsideBox: v.ShotsOutsideBox,
		Fouls:           v.Fouls,
		CornerKicks:     v.CornerKicks,
		Offsides:        v.Offsides,
		BallPossession:  v.BallPossession,
		YellowCards:     v.YellowCards,
		RedCards:        v.RedCards,
		GoalkeeperSaves: v.GoalkeeperSaves,
		TotalPasses:     v.TotalPasses,
		PassesAccurate:  v.PassesAccurate,
		PassesPercent:   v.PassesPercent,
		ExpectedGoals:   v.ExpectedGoals,
	}
}

func eventToDTO(v fixturedetail.Event) eventDTO {
	return eventDTO{
		Elapsed:  v.Elapsed,
		Extra:    v.Extra,
		Team:     refDTO{ID: v.TeamID, Name: v.TeamName},
		Player:   personDTO{ID: v.PlayerID, Name: v.PlayerName},
		Assist:   personDTO{ID: v.AssistID, Name: v.AssistName},
		Type:     v.Type,
		Detail:   v.Detail,
		FaDetail: v.FaDetail,
		Comments: v.Comments,
	}
}

func lineupPlayersToDTO(items []fixturedetail.LineupPlayer) []lineupPlayerDTO {
	out := make([]lineupPlayerDTO, 0, len(items))
	for _, p := range items {
		out = append(out, lineupPlayerDTO{ID: p.PlayerID, Name: p.Name, Number: p.Number, Pos: p.Pos, Grid: p.Grid})
	}
	return out
}

func lineupToDTO(v fixturedetail.Lineup) lineupDTO {
	startXI, substitutes := v.Split()
	return lineupDTO{
		Team:        refDTO{ID: v.TeamID, Name: v.TeamName, Logo: v.TeamLogo},
		Coach:       lineupCoachDTO{ID: v.CoachID, Name: v.CoachName, Photo: v.CoachPhoto},
		Formation:   v.Formation,
		Colors:      v.Colors,
		StartXI:     lineupPlayersToDTO(startXI),
		Substitutes: lineupPlayersToDTO(substitutes),
	}
}

func performanceToDTO(v fixturedetail.PlayerPerformance) performanceDTO {
	return performanceDTO{
		Player:     personDTO{ID: v.PlayerID, Name: v.Name},
		Photo:      v.Photo,
		Team:       refDTO{ID: v.TeamID, Name: v.TeamName},
		Minutes:    v.Minutes,
		Number:     v.Number,
		Position:   v.Position,
		Rating:     v.Rating,
		Captain:    v.Captain,
		Substitute: v.Substitute,
		Offsides:   v.Offsides,
		Figures:    figuresToDTO(v.Figures),
	}
}

func standingToDTO(v standing.Row) standingDTO {
	return standingDTO{
		Rank:          v.Rank,
		Team:          refDTO{ID: v.TeamID, Name: v.TeamName, Logo: v.TeamLogo},
		Points:        v.Points,
		GoalsDiff:     v.GoalsDiff,
		Group:         v.Group,
		FaGroup:       v.FaGroup,
		Form:          v.Form,
		Status:        v.Status,
		Description:   v.Description,
		FaDescription: v.FaDescription,
		Played:        v.Played,
		Win:           v.Win,
		Draw:          v.Draw,
		Lose:          v.Lose,
		GoalsFor:      v.GoalsFor,
		GoalsAgainst:  v.GoalsAgainst,
		LastUpdate:    v.LastUpdate,
	}
}

func tallies(first, second fixture.TeamTally) []tallyDTO {
	return []tallyDTO{
		{TeamID: first.TeamID, Goals: first.Goals, Wins: first.Wins},
		{TeamID: second.TeamID, Goals: second.Goals, Wins: second.Wins},
	}
}

func h2hToDTO(v usecase.HeadToHead) h2hDTO {
	s := v.Summary
	out := h2hDTO{
		Source:   v.Source,
		Fixtures: s.Fixtures,
		Goals:    s.Goals,
		Draws:    s.Draws,
		Teams:    tallies(s.First, s.Second),
		Leagues:  make([]leagueTallyDTO, 0, len(s.Leagues)),
		Matches:  fixturesToDTO(v.Fixtures),
	}
	for _, l := range s.Leagues {
		out.Leagues = append(out.Leagues, leagueTallyDTO{
			LeagueID: l.LeagueID,
			Fixtures: l.Fixtures,
			Goals:    l.Goals,
			Draws:    l.Draws,
			Teams:    tallies(l.First, l.Second),
		})
	}
	return out
}

// mapSlice projects a result list, keeping empty lists as [] rather than null.
func mapSlice[T any, D any](items []T, fn func(T) D) []D {
	out := make([]D, 0, len(items))
	for _, item := range items {
		out = append(out, fn(item))
	}
	return out
}
