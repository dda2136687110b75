package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, swaggerEnabled bool) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	if !swaggerEnabled {
		return
	}

	mux.HandleFunc("GET "+openAPIPath, handler.OpenAPI)
	mux.HandleFunc("GET /docs", handler.SwaggerUI)
	mux.HandleFunc("GET /docs/", handler.SwaggerUI)
}

// Routes without a {season} segment use the league's current season.
func registerLeagueRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/leagues/{league}", handler.GetLeague)
	mux.HandleFunc("GET /v1/leagues/{league}/seasons/current", handler.GetCurrentSeason)
	mux.HandleFunc("GET /v1/leagues/{league}/teams", handler.ListTeams)
	mux.HandleFunc("GET /v1/leagues/{league}/seasons/{season}/teams", handler.ListTeams)
	mux.HandleFunc("GET /v1/leagues/{league}/teams/{teamID}/players", handler.ListSquad)
	mux.HandleFunc("GET /v1/leagues/{league}/seasons/{season}/teams/{teamID}/players", handler.ListSquad)
	mux.HandleFunc("GET /v1/leagues/{league}/fixtures", handler.ListFixtures)
	mux.HandleFunc("GET /v1/leagues/{league}/seasons/{season}/fixtures", handler.ListFixtures)
	mux.HandleFunc("GET /v1/leagues/{league}/fixtures/rounds/{round}", handler.ListRoundFixtures)
	mux.HandleFunc("GET /v1/leagues/{league}/seasons/{season}/fixtures/rounds/{round}", handler.ListRoundFixtures)
	mux.HandleFunc("GET /v1/leagues/{league}/standings", handler.ListStandings)
	mux.HandleFunc("GET /v1/leagues/{league}/seasons/{season}/standings", handler.ListStandings)
}

func registerTeamRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/teams/{teamID}", handler.GetTeam)
	mux.HandleFunc("GET /v1/teams/{teamID}/coaches", handler.ListCoaches)
	mux.HandleFunc("GET /v1/teams/{teamID}/h2h/{otherTeamID}", handler.GetTeamsHeadToHead)
}

func registerFixtureRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/fixtures/{fixtureID}", handler.GetFixture)
	mux.HandleFunc("GET /v1/fixtures/{fixtureID}/statistics", handler.ListFixtureStatistics)
	mux.HandleFunc("GET /v1/fixtures/{fixtureID}/events", handler.ListFixtureEvents)
	mux.HandleFunc("GET /v1/fixtures/{fixtureID}/lineups", handler.ListFixtureLineups)
	mux.HandleFunc("GET /v1/fixtures/{fixtureID}/players", handler.ListFixturePlayers)
	mux.HandleFunc("GET /v1/fixtures/{fixtureID}/h2h", handler.GetFixtureHeadToHead)
	mux.HandleFunc("GET /v1/matches/{date}", handler.ListMatchesByDate)
}

func registerPlayerRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/players/{playerID}/seasons/{season}/stats", handler.GetPlayerSeasonStats)
	mux.HandleFunc("GET /v1/players/{playerID}/transfers", handler.ListTransfers)
}
