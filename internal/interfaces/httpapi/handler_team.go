package httpapi

import "net/http"

func (h *Handler) GetTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeam")
	defer span.End()

	teamID, err := h.parseID(r, "teamID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.services.Teams.Get(ctx, teamID)
	if err != nil {
		h.fail(ctx, w, "get team failed", err, "team_id", teamID)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teamToDTO(item))
}

func (h *Handler) ListCoaches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListCoaches")
	defer span.End()

	teamID, err := h.parseID(r, "teamID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.services.Teams.Coaches(ctx, teamID)
	if err != nil {
		h.fail(ctx, w, "list coaches failed", err, "team_id", teamID)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, mapSlice(items, coachToDTO))
}

func (h *Handler) GetTeamsHeadToHead(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeamsHeadToHead")
	defer span.End()

	teamID, err := pathInt64(r, "teamID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	otherID, err := pathInt64(r, "otherTeamID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	p := pairPath{TeamID: teamID, OtherTeamID: otherID}
	if err := h.validateRequest(ctx, p); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.services.H2H.ForTeams(ctx, p.TeamID, p.OtherTeamID)
	if err != nil {
		h.fail(ctx, w, "head to head failed", err, "team_id", p.TeamID, "other_team_id", p.OtherTeamID)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, h2hToDTO(item))
}
