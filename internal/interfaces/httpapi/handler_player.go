package httpapi

import "net/http"

func (h *Handler) GetPlayerSeasonStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayerSeasonStats")
	defer span.End()

	playerID, err := pathInt64(r, "playerID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	season, err := pathSeason(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	p := playerSeasonPath{PlayerID: playerID, Season: season}
	if err := h.validateRequest(ctx, p); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.services.Players.SeasonStats(ctx, p.PlayerID, p.Season)
	if err != nil {
		h.fail(ctx, w, "get player stats failed", err, "player_id", p.PlayerID, "season", p.Season)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerSeasonToDTO(item))
}

func (h *Handler) ListTransfers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTransfers")
	defer span.End()

	playerID, err := h.parseID(r, "playerID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.services.Players.Transfers(ctx, playerID)
	if err != nil {
		h.fail(ctx, w, "list transfers failed", err, "player_id", playerID)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, mapSlice(items, transferToDTO))
}
