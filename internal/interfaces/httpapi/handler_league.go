package httpapi

import (
	"net/http"
)

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) GetLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLeague")
	defer span.End()

	p, err := h.parseSeasonPath(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.services.Leagues.Get(ctx, p.League)
	if err != nil {
		h.fail(ctx, w, "get league failed", err, "league", p.League)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, leagueToDTO(item))
}

func (h *Handler) GetCurrentSeason(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetCurrentSeason")
	defer span.End()

	p, err := h.parseSeasonPath(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	year, err := h.services.Leagues.CurrentSeason(ctx, p.League)
	if err != nil {
		h.fail(ctx, w, "get current season failed", err, "league", p.League)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, seasonDTO{Year: year})
}

func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeams")
	defer span.End()

	p, err := h.parseSeasonPath(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.services.Teams.ListBySeason(ctx, p.League, p.Season)
	if err != nil {
		h.fail(ctx, w, "list teams failed", err, "league", p.League, "season", p.Season)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, mapSlice(items, teamToDTO))
}

func (h *Handler) ListSquad(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListSquad")
	defer span.End()

	sp, err := h.parseSeasonPath(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	teamID, err := pathInt64(r, "teamID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	p := teamSeasonPath{seasonPath: sp, TeamID: teamID}
	if err := h.validateRequest(ctx, p); err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.services.Players.Squad(ctx, p.League, p.Season, p.TeamID)
	if err != nil {
		h.fail(ctx, w, "list squad failed", err, "league", p.League, "season", p.Season, "team_id", p.TeamID)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, mapSlice(items, squadMemberToDTO))
}

func (h *Handler) ListStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListStandings")
	defer span.End()

	p, err := h.parseSeasonPath(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	rows, err := h.services.Standings.Table(ctx, p.League, p.Season)
	if err != nil {
		h.fail(ctx, w, "list standings failed", err, "league", p.League, "season", p.Season)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, mapSlice(rows, standingToDTO))
}
