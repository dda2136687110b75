package apisports

import (
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/football-cache/internal/domain/coach"
	"github.com/riskibarqy/football-cache/internal/domain/fixture"
	"github.com/riskibarqy/football-cache/internal/domain/fixturedetail"
	"github.com/riskibarqy/football-cache/internal/domain/league"
	"github.com/riskibarqy/football-cache/internal/domain/player"
	"github.com/riskibarqy/football-cache/internal/domain/playerstats"
	"github.com/riskibarqy/football-cache/internal/domain/standing"
	"github.com/riskibarqy/football-cache/internal/domain/team"
	"github.com/riskibarqy/football-cache/internal/domain/transfer"
	"github.com/riskibarqy/football-cache/internal/usecase"
)

func shapeError(endpoint, field string) error {
	return fmt.Errorf("%w: %s: response is missing %s", usecase.ErrUpstream, endpoint, field)
}

func parseDay(raw string) *time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	t, err := time.Parse(time.DateOnly, raw)
	if err != nil {
		return nil
	}
	return &t
}

func parseInstant(raw string) *time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil
	}
	t = t.UTC()
	return &t
}

func mapLeague(item leagueItem) (usecase.LeagueBundle, error) {
	if item.League.ID <= 0 {
		return usecase.LeagueBundle{}, shapeError("leagues", "league.id")
	}
	out := usecase.LeagueBundle{
		League: league.League{
			ID:     item.League.ID,
			Symbol: league.SymbolFor(item.League.ID),
			Name:   item.League.Name,
			Type:   item.League.Type,
			Logo:   item.League.Logo,
			Country: league.Country{
				Name: item.Country.Name,
				Code: item.Country.Code,
				Flag: item.Country.Flag,
			},
		},
		Seasons: make([]league.Season, 0, len(item.Seasons)),
	}
	for _, s := range item.Seasons {
		if s.Year <= 0 {
			continue
		}
		out.Seasons = append(out.Seasons, league.Season{
			LeagueID: item.League.ID,
			Year:     s.Year,
			Start:    parseDay(s.Start),
			End:      parseDay(s.End),
			Current:  s.Current,
		})
	}
	return out, nil
}

func mapTeam(item teamItem) (team.Team, error) {
	if item.Team.ID <= 0 {
		return team.Team{}, shapeError("teams", "team.id")
	}
	return team.Team{
		ID:       item.Team.ID,
		Name:     item.Team.Name,
		Code:     item.Team.Code,
		Country:  item.Team.Country,
		Founded:  item.Team.Founded,
		National: item.Team.National,
		Logo:     item.Team.Logo,
		Venue: team.Venue{
			ID:       item.Venue.ID,
			Name:     item.Venue.Name,
			Address:  item.Venue.Address,
			City:     item.Venue.City,
			Capacity: item.Venue.Capacity,
			Surface:  item.Venue.Surface,
			Image:    item.Venue.Image,
		},
	}, nil
}

func mapCoach(item coachItem) (coach.Coach, error) {
	if item.ID <= 0 {
		return coach.Coach{}, shapeError("coachs", "id")
	}
	out := coach.Coach{
		ID:           item.ID,
		Name:         item.Name,
		FirstName:    item.Firstname,
		LastName:     item.Lastname,
		Age:          item.Age,
		BirthDate:    parseDay(item.Birth.Date),
		BirthPlace:   item.Birth.Place,
		BirthCountry: item.Birth.Country,
		Nationality:  item.Nationality,
		Height:       string(item.Height),
		Weight:       string(item.Weight),
		Photo:        item.Photo,
		TeamID:       item.Team.ID,
		TeamName:     item.Team.Name,
	}
	for _, spell := range item.Career {
		out.Career = append(out.Career, coach.Spell{
			TeamID:   spell.Team.ID,
			TeamName: spell.Team.Name,
			TeamLogo: spell.Team.Logo,
			Start:    spell.Start,
			End:      spell.End,
		})
	}
	return out, nil
}

func mapPlayer(info playerInfo) (player.Player, error) {
	if info.ID <= 0 {
		return player.Player{}, shapeError("players", "player.id")
	}
	return player.Player{
		ID:           info.ID,
		Name:         info.Name,
		DisplayName:  player.DisplayName(info.Name, info.Firstname),
		FirstName:    info.Firstname,
		LastName:     info.Lastname,
		Age:          info.Age,
		BirthDate:    parseDay(info.Birth.Date),
		BirthPlace:   info.Birth.Place,
		BirthCountry: info.Birth.Country,
		Nationality:  info.Nationality,
		Height:       string(info.Height),
		Weight:       string(info.Weight),
		Injured:      info.Injured,
		Photo:        info.Photo,
	}, nil
}

func mapFigures(f figures) playerstats.Figures {
	return playerstats.Figures{
		ShotsTotal:       f.Shots.Total.Int(),
		ShotsOn:          f.Shots.On.Int(),
		Goals:            f.Goals.Total.Int(),
		Conceded:         f.Goals.Conceded.Int(),
		Assists:          f.Goals.Assists.Int(),
		Saves:            f.Goals.Saves.Int(),
		PassesTotal:      f.Passes.Total.Int(),
		PassesKey:        f.Passes.Key.Int(),
		PassesAccuracy:   f.Passes.Accuracy.Int(),
		TacklesTotal:     f.Tackles.Total.Int(),
		Blocks:           f.Tackles.Blocks.Int(),
		Interceptions:    f.Tackles.Interceptions.Int(),
		DuelsTotal:       f.Duels.Total.Int(),
		DuelsWon:         f.Duels.Won.Int(),
		DribblesAttempts: f.Dribbles.Attempts.Int(),
		DribblesSuccess:  f.Dribbles.Success.Int(),
		DribblesPast:     f.Dribbles.Past.Int(),
		FoulsDrawn:       f.Fouls.Drawn.Int(),
		FoulsCommitted:   f.Fouls.Committed.Int(),
		Yellow:           f.Cards.Yellow.Int(),
		YellowRed:        f.Cards.YellowRed.Int(),
		Red:              f.Cards.Red.Int(),
		PenaltyWon:       f.Penalty.Won.Int(),
		PenaltyCommitted: f.Penalty.Committed.Int(),
		PenaltyScored:    f.Penalty.Scored.Int(),
		PenaltyMissed:    f.Penalty.Missed.Int(),
		PenaltySaved:     f.Penalty.Saved.Int(),
	}
}

func mapPlayerBundle(item playerItem) (usecase.PlayerBundle, error) {
	p, err := mapPlayer(item.Player)
	if err != nil {
		return usecase.PlayerBundle{}, err
	}
	out := usecase.PlayerBundle{Player: p}
	for _, st := range item.Statistics {
		if st.Team.ID <= 0 || st.League.ID <= 0 {
			return usecase.PlayerBundle{}, shapeError("players", "statistics team or league id")
		}
		out.Stats = append(out.Stats, playerstats.Stat{
			PlayerID:    p.ID,
			TeamID:      st.Team.ID,
			TeamName:    st.Team.Name,
			TeamLogo:    st.Team.Logo,
			LeagueID:    st.League.ID,
			LeagueName:  st.League.Name,
			Season:      st.League.Season,
			Position:    player.PositionName(st.Games.Position),
			Appearances: st.Games.Appearences,
			Lineups:     st.Games.Lineups,
			Minutes:     st.Games.Minutes,
			Number:      st.Games.Number,
			Rating:      string(st.Games.Rating),
			Captain:     st.Games.Captain,
			SubIn:       st.Substitutes.In,
			SubOut:      st.Substitutes.Out,
			Bench:       st.Substitutes.Bench,
			Figures:     mapFigures(st.figures),
		})
	}
	return out, nil
}

// mapSquadEntry keeps every season stat block of the player and takes shirt
// number and position from the block of teamID.
func mapSquadEntry(item playerItem, teamID int64) (usecase.SquadEntry, error) {
	bundle, err := mapPlayerBundle(item)
	if err != nil {
		return usecase.SquadEntry{}, err
	}
	entry := usecase.SquadEntry{Player: bundle.Player, Stats: bundle.Stats}
	for _, st := range bundle.Stats {
		if st.TeamID != teamID {
			continue
		}
		if entry.Number == nil {
			entry.Number = st.Number
		}
		if entry.Position == "" {
			entry.Position = st.Position
		}
	}
	return entry, nil
}

func mapFixture(item fixtureItem) (fixture.Fixture, error) {
	switch {
	case item.Fixture.ID <= 0:
		return fixture.Fixture{}, shapeError("fixtures", "fixture.id")
	case item.League.ID <= 0 || item.League.Season <= 0:
		return fixture.Fixture{}, shapeError("fixtures", "league.id or league.season")
	case item.Teams.Home.ID <= 0 || item.Teams.Away.ID <= 0:
		return fixture.Fixture{}, shapeError("fixtures", "teams.home.id or teams.away.id")
	}

	out := fixture.Fixture{
		ID:         item.Fixture.ID,
		LeagueID:   item.League.ID,
		LeagueName: item.League.Name,
		LeagueLogo: item.League.Logo,
		Season:     item.League.Season,
		Round:      item.League.Round,
		RoundLabel: item.League.Round,
		Referee:    item.Fixture.Referee,
		Timezone:   item.Fixture.Timezone,
		Timestamp:  item.Fixture.Timestamp,
		Venue: fixture.Venue{
			ID:   item.Fixture.Venue.ID,
			Name: item.Fixture.Venue.Name,
			City: item.Fixture.Venue.City,
		},
		Status: fixture.Status{
			Long:    item.Fixture.Status.Long,
			Short:   item.Fixture.Status.Short,
			Elapsed: item.Fixture.Status.Elapsed,
		},
		Home:       team.Ref{ID: item.Teams.Home.ID, Name: item.Teams.Home.Name, Logo: item.Teams.Home.Logo},
		Away:       team.Ref{ID: item.Teams.Away.ID, Name: item.Teams.Away.Name, Logo: item.Teams.Away.Logo},
		HomeWinner: item.Teams.Home.Winner,
		AwayWinner: item.Teams.Away.Winner,
		Goals:      fixture.Score(item.Goals),
		Score: fixture.Scores{
			Halftime:  fixture.Score(item.Score.Halftime),
			Fulltime:  fixture.Score(item.Score.Fulltime),
			Extratime: fixture.Score(item.Score.Extratime),
			Penalty:   fixture.Score(item.Score.Penalty),
		},
	}
	if kickoff := parseInstant(item.Fixture.Date); kickoff != nil {
		out.Kickoff = *kickoff
	} else if item.Fixture.Timestamp > 0 {
		out.Kickoff = time.Unix(item.Fixture.Timestamp, 0).UTC()
	}
	return out, nil
}

// applyTeamStat copies one provider statistic onto its typed column.
// Unknown types are ignored.
func applyTeamStat(stat *fixturedetail.TeamStat, kind string, value text) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "shots on goal":
		stat.ShotsOnGoal = value.Int()
	case "shots off goal":
		stat.ShotsOffGoal = value.Int()
	case "total shots":
		stat.TotalShots = value.Int()
	case "blocked shots":
		stat.BlockedShots = value.Int()
	case "shots insidebox":
		stat.ShotsInsideBox = value.Int()
	case "shots outsidebox":
		stat.ShotsOutsideBox = value.Int()
	case "fouls":
		stat.Fouls = value.Int()
	case "corner kicks":
		stat.CornerKicks = value.Int()
	case "offsides":
		stat.Offsides = value.Int()
	case "ball possession":
		stat.BallPossession = value.Int()
	case "yellow cards":
		stat.YellowCards = value.Int()
	case "red cards":
		stat.RedCards = value.Int()
	case "goalkeeper saves":
		stat.GoalkeeperSaves = value.Int()
	case "total passes":
		stat.TotalPasses = value.Int()
	case "passes accurate":
		stat.PassesAccurate = value.Int()
	case "passes %":
		stat.PassesPercent = value.Int()
	case "expected_goals":
		stat.ExpectedGoals = string(value)
	}
}

func mapTeamStats(fixtureID int64, items []statisticsItem) ([]fixturedetail.TeamStat, error) {
	out := make([]fixturedetail.TeamStat, 0, len(items))
	for _, item := range items {
		if item.Team.ID <= 0 {
			return nil, shapeError("fixtures/statistics", "team.id")
		}
		stat := fixturedetail.TeamStat{
			FixtureID: fixtureID,
			TeamID:    item.Team.ID,
			TeamName:  item.Team.Name,
			TeamLogo:  item.Team.Logo,
		}
		for _, s := range item.Statistics {
			applyTeamStat(&stat, s.Type, s.Value)
		}
		out = append(out, stat)
	}
	return out, nil
}

func mapEvents(fixtureID int64, items []eventItem) []fixturedetail.Event {
	out := make([]fixturedetail.Event, 0, len(items))
	for i, item := range items {
		out = append(out, fixturedetail.Event{
			FixtureID:  fixtureID,
			Seq:        i + 1,
			TeamID:     item.Team.ID,
			TeamName:   item.Team.Name,
			PlayerID:   item.Player.ID,
			PlayerName: item.Player.Name,
			AssistID:   item.Assist.ID,
			AssistName: item.Assist.Name,
			Type:       item.Type,
			Detail:     item.Detail,
			Comments:   item.Comments,
			Elapsed:    item.Time.Elapsed,
			Extra:      item.Time.Extra,
		})
	}
	return out
}

func mapLineups(fixtureID int64, items []lineupItem) ([]fixturedetail.Lineup, error) {
	out := make([]fixturedetail.Lineup, 0, len(items))
	for _, item := range items {
		if item.Team.ID <= 0 {
			return nil, shapeError("fixtures/lineups", "team.id")
		}
		lineup := fixturedetail.Lineup{
			FixtureID:  fixtureID,
			TeamID:     item.Team.ID,
			TeamName:   item.Team.Name,
			TeamLogo:   item.Team.Logo,
			CoachID:    item.Coach.ID,
			CoachName:  item.Coach.Name,
			CoachPhoto: item.Coach.Photo,
			Formation:  item.Formation,
			Colors:     item.Team.Colors,
		}
		add := func(entries []lineupEntry, starting bool) {
			for _, e := range entries {
				lineup.Players = append(lineup.Players, fixturedetail.LineupPlayer{
					FixtureID: fixtureID,
					TeamID:    item.Team.ID,
					PlayerID:  e.Player.ID,
					Name:      e.Player.Name,
					Number:    e.Player.Number,
					Pos:       player.PositionName(e.Player.Pos),
					Grid:      e.Player.Grid,
					Starting:  starting,
				})
			}
		}
		add(item.StartXI, true)
		add(item.Substitutes, false)
		out = append(out, lineup)
	}
	return out, nil
}

func mapPerformances(fixtureID int64, items []fixturePlayersItem) ([]fixturedetail.PlayerPerformance, error) {
	var out []fixturedetail.PlayerPerformance
	for _, item := range items {
		if item.Team.ID <= 0 {
			return nil, shapeError("fixtures/players", "team.id")
		}
		for _, p := range item.Players {
			if p.Player.ID <= 0 {
				return nil, shapeError("fixtures/players", "player.id")
			}
			perf := fixturedetail.PlayerPerformance{
				FixtureID: fixtureID,
				PlayerID:  p.Player.ID,
				TeamID:    item.Team.ID,
				TeamName:  item.Team.Name,
				Name:      p.Player.Name,
				Photo:     p.Player.Photo,
			}
			if len(p.Statistics) > 0 {
				st := p.Statistics[0]
				perf.Minutes = st.Games.Minutes
				perf.Number = st.Games.Number
				perf.Position = player.PositionName(st.Games.Position)
				perf.Rating = string(st.Games.Rating)
				perf.Captain = st.Games.Captain
				perf.Substitute = st.Games.Substitute
				perf.Offsides = st.Offsides.Int()
				perf.Figures = mapFigures(st.figures)
			}
			out = append(out, perf)
		}
	}
	return out, nil
}

func mapStandings(items []standingsItem) ([]standing.Row, error) {
	var out []standing.Row
	for _, item := range items {
		if item.League.ID <= 0 || item.League.Season <= 0 {
			return nil, shapeError("standings", "league.id or league.season")
		}
		for _, group := range item.League.Standings {
			for _, row := range group {
				if row.Team.ID <= 0 {
					return nil, shapeError("standings", "team.id")
				}
				out = append(out, standing.Row{
					LeagueID:     item.League.ID,
					Season:       item.League.Season,
					TeamID:       row.Team.ID,
					TeamName:     row.Team.Name,
					TeamLogo:     row.Team.Logo,
					Rank:         row.Rank,
					Points:       row.Points,
					GoalsDiff:    row.GoalsDiff,
					Group:        row.Group,
					Form:         row.Form,
					Status:       row.Status,
					Description:  row.Description,
					Played:       row.All.Played,
					Win:          row.All.Win,
					Draw:         row.All.Draw,
					Lose:         row.All.Lose,
					GoalsFor:     row.All.Goals.For,
					GoalsAgainst: row.All.Goals.Against,
					LastUpdate:   parseInstant(row.Update),
				})
			}
		}
	}
	return out, nil
}

func mapTransfers(items []transfersItem) ([]transfer.Transfer, error) {
	var out []transfer.Transfer
	for _, item := range items {
		if item.Player.ID <= 0 {
			return nil, shapeError("transfers", "player.id")
		}
		for _, t := range item.Transfers {
			date := parseDay(t.Date)
			if date == nil {
				continue
			}
			out = append(out, transfer.Transfer{
				PlayerID:   item.Player.ID,
				PlayerName: item.Player.Name,
				Date:       *date,
				Type:       t.Type,
				TeamIn:     team.Ref{ID: t.Teams.In.ID, Name: t.Teams.In.Name, Logo: t.Teams.In.Logo},
				TeamOut:    team.Ref{ID: t.Teams.Out.ID, Name: t.Teams.Out.Name, Logo: t.Teams.Out.Logo},
			})
		}
	}
	return out, nil
}
