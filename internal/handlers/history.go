package handlers

import (
	"net/http"

	"github.com/osutrack/stats-api/internal/params"
)

// GetStatsHistory returns the snapshot time series for a player/mode
// @Summary Stats History
// @Description Fetch every stored stat snapshot for the player inside the optional date range
// @Tags Stats
// @Produce json
// @Param user query int true "osu! user ID"
// @Param mode query int true "Game mode (0-3)"
// @Param from query string false "Range start (RFC3339 or YYYY-MM-DD)"
// @Param to query string false "Range end (RFC3339 or YYYY-MM-DD)"
// @Success 200 {array} models.StatSnapshot
// @Failure 400 {string} string "Invalid parameter"
// @Router /stats_history [get]
func (h *Handler) GetStatsHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	userID, ok := params.ValidateUser(params.FromQuery(q, "user"))
	if !ok {
		h.textResponse(w, http.StatusBadRequest, params.ErrTextUser)
		return
	}
	mode, ok := params.ValidateMode(params.FromQuery(q, "mode"))
	if !ok {
		h.textResponse(w, http.StatusBadRequest, params.ErrTextMode)
		return
	}

	from := params.DateOrDefault(params.FromQuery(q, "from"), params.RangeFrom)
	to := params.DateOrDefault(params.FromQuery(q, "to"), params.RangeTo)

	snapshots, err := h.stats.History(ctx, userID, mode, from, to)
	if err != nil {
		h.logger.Errorw("Failed to query stats history", "user", userID, "mode", mode, "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.jsonResponse(w, http.StatusOK, snapshots)
}
