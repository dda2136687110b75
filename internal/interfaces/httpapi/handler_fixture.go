package httpapi

import (
	"net/http"
	"strings"
)

func (h *Handler) ListFixtures(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListFixtures")
	defer span.End()

	p, err := h.parseSeasonPath(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.services.Fixtures.ListBySeason(ctx, p.League, p.Season)
	if err != nil {
		h.fail(ctx, w, "list fixtures failed", err, "league", p.League, "season", p.Season)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, fixturesToDTO(items))
}

func (h *Handler) ListRoundFixtures(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListRoundFixtures")
	defer span.End()

	sp, err := h.parseSeasonPath(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	round, err := pathInt64(r, "round")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	p := roundPath{seasonPath: sp, Round: int(round)}
	if err := h.validateRequest(ctx, p); err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.services.Fixtures.ListByRound(ctx, p.League, p.Season, p.Round)
	if err != nil {
		h.fail(ctx, w, "list round fixtures failed", err, "league", p.League, "season", p.Season, "round", p.Round)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, fixturesToDTO(items))
}

func (h *Handler) GetFixture(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetFixture")
	defer span.End()

	fixtureID, err := h.parseID(r, "fixtureID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.services.Fixtures.Get(ctx, fixtureID)
	if err != nil {
		h.fail(ctx, w, "get fixture failed", err, "fixture_id", fixtureID)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, fixtureToDTO(item))
}

func (h *Handler) ListFixtureStatistics(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListFixtureStatistics")
	defer span.End()

	fixtureID, err := h.parseID(r, "fixtureID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.services.Fixtures.Statistics(ctx, fixtureID)
	if err != nil {
		h.fail(ctx, w, "list fixture statistics failed", err, "fixture_id", fixtureID)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, mapSlice(items, teamStatToDTO))
}

func (h *Handler) ListFixtureEvents(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListFixtureEvents")
	defer span.End()

	fixtureID, err := h.parseID(r, "fixtureID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.services.Fixtures.Events(ctx, fixtureID)
	if err != nil {
		h.fail(ctx, w, "list fixture events failed", err, "fixture_id", fixtureID)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, mapSlice(items, eventToDTO))
}

func (h *Handler) ListFixtureLineups(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListFixtureLineups")
	defer span.End()

	fixtureID, err := h.parseID(r, "fixtureID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.services.Fixtures.Lineups(ctx, fixtureID)
	if err != nil {
		h.fail(ctx, w, "list fixture lineups failed", err, "fixture_id", fixtureID)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, mapSlice(items, lineupToDTO))
}

func (h *Handler) ListFixturePlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListFixturePlayers")
	defer span.End()

	fixtureID, err := h.parseID(r, "fixtureID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.services.Fixtures.Players(ctx, fixtureID)
	if err != nil {
		h.fail(ctx, w, "list fixture players failed", err, "fixture_id", fixtureID)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, mapSlice(items, performanceToDTO))
}

func (h *Handler) GetFixtureHeadToHead(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetFixtureHeadToHead")
	defer span.End()

	fixtureID, err := h.parseID(r, "fixtureID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.services.H2H.ForFixture(ctx, fixtureID)
	if err != nil {
		h.fail(ctx, w, "fixture head to head failed", err, "fixture_id", fixtureID)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, h2hToDTO(item))
}

func (h *Handler) ListMatchesByDate(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatchesByDate")
	defer span.End()

	p := datePath{Date: strings.TrimSpace(r.PathValue("date"))}
	if err := h.validateRequest(ctx, p); err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.services.Matches.ByDate(ctx, p.Date)
	if err != nil {
		h.fail(ctx, w, "list matches failed", err, "date", p.Date)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, fixturesToDTO(items))
}
