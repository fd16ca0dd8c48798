package handlers

import (
	"net/http"

	"github.com/osutrack/stats-api/internal/params"
)

// GetPeak returns the extremal rank/accuracy summary for a player/mode
// @Summary Peak Stats
// @Description Fetch the best global rank and best accuracy the player ever reached, with the timestamps they were last reached at
// @Tags Stats
// @Produce json
// @Param user query int true "osu! user ID"
// @Param mode query int true "Game mode (0-3)"
// @Success 200 {object} models.PeakStats
// @Failure 400 {string} string "Invalid parameter"
// @Router /peak [get]
func (h *Handler) GetPeak(w http.ResponseWriter, r *http.Request) {
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

	peak, err := h.stats.Peak(ctx, userID, mode)
	if err != nil {
		h.logger.Errorw("Failed to query peak stats", "user", userID, "mode", mode, "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.jsonResponse(w, http.StatusOK, peak)
}
