package usecase

import (
	"github.com/riskibarqy/football-cache/internal/domain/coach"
	"github.com/riskibarqy/football-cache/internal/domain/fixture"
	"github.com/riskibarqy/football-cache/internal/domain/fixturedetail"
	"github.com/riskibarqy/football-cache/internal/domain/league"
	"github.com/riskibarqy/football-cache/internal/domain/player"
	"github.com/riskibarqy/football-cache/internal/domain/standing"
	"github.com/riskibarqy/football-cache/internal/domain/team"
	"github.com/riskibarqy/football-cache/internal/domain/transfer"
	"github.com/riskibarqy/football-cache/internal/platform/i18n"
)

// Each entity has a texts function listing the strings that get a Persian
// column and a localize function filling those columns from a dictionary.

func leagueTexts(l league.League) []string {
	return []string{l.Name, l.Type, l.Country.Name}
}

func localizeLeague(l league.League, dict i18n.Dictionary) league.League {
	l.FaName = dict.Get(l.Name)
	l.FaType = dict.Get(l.Type)
	l.FaCountry = dict.Get(l.Country.Name)
	return l
}

func teamTexts(items []team.Team) []string {
	out := make([]string, 0, len(items)*4)
	for _, t := range items {
		out = append(out, t.Name, t.Country, t.Venue.Name, t.Venue.City)
	}
	return out
}

func localizeTeams(items []team.Team, dict i18n.Dictionary) {
	for i := range items {
		items[i].FaName = dict.Get(items[i].Name)
		items[i].FaCountry = dict.Get(items[i].Country)
		items[i].Venue.FaName = dict.Get(items[i].Venue.Name)
		items[i].Venue.FaCity = dict.Get(items[i].Venue.City)
	}
}

func coachTexts(items []coach.Coach) []string {
	out := make([]string, 0, len(items)*3)
	for _, c := range items {
		out = append(out, c.Name, c.Nationality, c.BirthPlace)
	}
	return out
}

func localizeCoaches(items []coach.Coach, dict i18n.Dictionary) {
	for i := range items {
		items[i].FaName = dict.Get(items[i].Name)
		items[i].FaNationality = dict.Get(items[i].Nationality)
		items[i].FaBirthPlace = dict.Get(items[i].BirthPlace)
	}
}

func playerName(p player.Player) string {
	if p.DisplayName != "" {
		return p.DisplayName
	}
	return p.Name
}

func playerTexts(p player.Player) []string {
	return []string{playerName(p), p.BirthPlace, p.BirthCountry, p.Nationality}
}

func localizePlayer(p player.Player, dict i18n.Dictionary) player.Player {
	p.FaName = dict.Get(playerName(p))
	p.FaBirthPlace = dict.Get(p.BirthPlace)
	p.FaBirthCountry = dict.Get(p.BirthCountry)
	p.FaNationality = dict.Get(p.Nationality)
	return p
}

func fixtureTexts(items []fixture.Fixture) []string {
	out := make([]string, 0, len(items)*7)
	for _, f := range items {
		out = append(out, f.LeagueName, f.Referee, f.Venue.Name, f.Venue.City, f.Status.Long, f.Home.Name, f.Away.Name)
	}
	return out
}

func localizeFixtures(items []fixture.Fixture, dict i18n.Dictionary) {
	for i := range items {
		f := &items[i]
		f.FaLeagueName = dict.Get(f.LeagueName)
		f.FaReferee = dict.Get(f.Referee)
		f.Venue.FaName = dict.Get(f.Venue.Name)
		f.Venue.FaCity = dict.Get(f.Venue.City)
		f.Status.FaLong = dict.Get(f.Status.Long)
		f.Home.FaName = dict.Get(f.Home.Name)
		f.Away.FaName = dict.Get(f.Away.Name)
	}
}

func eventTexts(items []fixturedetail.Event) []string {
	out := make([]string, 0, len(items))
	for _, e := range items {
		out = append(out, e.Detail)
	}
	return out
}

func localizeEvents(items []fixturedetail.Event, dict i18n.Dictionary) {
	for i := range items {
		items[i].FaDetail = dict.Get(items[i].Detail)
	}
}

func standingTexts(items []standing.Row) []string {
	out := make([]string, 0, len(items)*2)
	for _, r := range items {
		out = append(out, r.Group, r.Description)
	}
	return out
}

func localizeStandings(items []standing.Row, dict i18n.Dictionary) {
	for i := range items {
		items[i].FaGroup = dict.Get(items[i].Group)
		items[i].FaDescription = dict.Get(items[i].Description)
	}
}

func transferTexts(items []transfer.Transfer) []string {
	out := make([]string, 0, len(items))
	for _, t := range items {
		out = append(out, t.Type)
	}
	return out
}

func localizeTransfers(items []transfer.Transfer, dict i18n.Dictionary) {
	for i := range items {
		items[i].FaType = dict.Get(items[i].Type)
	}
}
