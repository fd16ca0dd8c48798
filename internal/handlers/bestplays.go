package handlers

import (
	"net/http"

	"github.com/osutrack/stats-api/internal/params"
)

// GetBestPlays returns the mode-wide top plays by pp
// @Summary Best Plays Leaderboard
// @Description Fetch the top recorded plays for a mode by performance value, across all players
// @Tags Stats
// @Produce json
// @Param mode query int true "Game mode (0-3)"
// @Param from query string false "Range start (RFC3339 or YYYY-MM-DD)"
// @Param to query string false "Range end (RFC3339 or YYYY-MM-DD)"
// @Param limit query int false "Row cap, 1-10000" default(100)
// @Success 200 {array} models.BestPlay
// @Failure 400 {string} string "Invalid parameter"
// @Router /bestplays [get]
func (h *Handler) GetBestPlays(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	mode, ok := params.ValidateMode(params.FromQuery(q, "mode"))
	if !ok {
		h.textResponse(w, http.StatusBadRequest, params.ErrTextMode)
		return
	}
	limit, ok := params.ValidateLimit(params.FromQuery(q, "limit"))
	if !ok {
		h.textResponse(w, http.StatusBadRequest, params.ErrTextLimit)
		return
	}

	from := params.DateOrDefault(params.FromQuery(q, "from"), params.RangeFrom)
	to := params.DateOrDefault(params.FromQuery(q, "to"), params.RangeTo)

	plays, err := h.stats.BestPlays(ctx, mode, from, to, limit)
	if err != nil {
		h.logger.Errorw("Failed to query bestplays", "mode", mode, "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.jsonResponse(w, http.StatusOK, plays)
}
