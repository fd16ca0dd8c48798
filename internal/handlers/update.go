package handlers

import (
	"errors"
	"net/http"

	"github.com/osutrack/stats-api/internal/logic"
	"github.com/osutrack/stats-api/internal/osutrack"
	"github.com/osutrack/stats-api/internal/params"
)

// PostUpdate triggers an upstream refresh for a tracked player
// @Summary Update Player
// @Description Trigger an osu!track refresh for the player and relay the changes payload
// @Tags Update
// @Produce json
// @Param user query int true "osu! user ID"
// @Param mode query int true "Game mode (0-3)"
// @Success 200 {object} interface{} "Upstream changes payload"
// @Failure 400 {string} string "Invalid parameter"
// @Failure 404 {object} map[string]string "User not found"
// @Router /update [post]
func (h *Handler) PostUpdate(w http.ResponseWriter, r *http.Request) {
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

	player, err := h.players.GetByID(ctx, userID)
	if errors.Is(err, logic.ErrNotFound) {
		h.textResponse(w, http.StatusNotFound, params.ErrTextUserNotFound)
		return
	}
	if err != nil {
		h.logger.Errorw("Failed to load player", "user", userID, "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	// The upstream osu!track endpoint owns the actual refresh work; relay
	// its changes payload untouched.
	changes, err := h.upstream.GetChanges(ctx, player.Username, mode)
	switch {
	case errors.Is(err, osutrack.ErrUserNotFound):
		h.jsonResponse(w, http.StatusNotFound, map[string]string{"error": "User not found"})
		return
	case errors.Is(err, osutrack.ErrMalformedResponse):
		h.logger.Errorw("Non-JSON response from base osu!track API", "user", userID, "error", err)
		h.textResponse(w, http.StatusInternalServerError, "Internal error when updating user")
		return
	case err != nil:
		h.logger.Errorw("Failed to fetch from base osu!track API", "user", userID, "error", err)
		h.textResponse(w, http.StatusInternalServerError, "Internal error when updating user")
		return
	}

	h.jsonResponse(w, http.StatusOK, changes)
}
