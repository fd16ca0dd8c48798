package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/osutrack/stats-api/internal/logic"
	"github.com/osutrack/stats-api/internal/osutrack"
	"github.com/osutrack/stats-api/internal/params"
)

// GetHiscores returns the recorded hiscore events for a player/mode
// @Summary Player Hiscores
// @Description Fetch the player's recorded hiscores inside the optional date range, refreshing from upstream once when the local result set is empty
// @Tags Stats
// @Produce json
// @Param user query string true "osu! user ID, or username when userMode=username"
// @Param userMode query string false "Set to 'username' to look the player up by name"
// @Param mode query int true "Game mode (0-3)"
// @Param from query string false "Range start (RFC3339 or YYYY-MM-DD)"
// @Param to query string false "Range end (RFC3339 or YYYY-MM-DD)"
// @Success 200 {array} models.ScoreEvent
// @Failure 400 {string} string "Invalid parameter"
// @Router /hiscores [get]
func (h *Handler) GetHiscores(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	userVal := params.FromQuery(q, "user")
	if userVal.Kind() != params.Single {
		h.textResponse(w, http.StatusBadRequest, params.ErrTextUser)
		return
	}
	kind := params.ValidateUserMode(params.FromQuery(q, "userMode"))

	mode, ok := params.ValidateMode(params.FromQuery(q, "mode"))
	if !ok {
		h.textResponse(w, http.StatusBadRequest, params.ErrTextMode)
		return
	}

	res, err := h.resolver.Resolve(ctx, userVal.Raw(), mode, kind)
	if errors.Is(err, logic.ErrNotFound) {
		h.logger.Infow("Failed to resolve user", "user", userVal.Raw(), "mode", mode, "error", err)
		h.textResponse(w, http.StatusBadRequest, params.ErrTextUser)
		return
	}
	if err != nil {
		h.logger.Errorw("Resolver storage error", "user", userVal.Raw(), "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	from := params.DateOrDefault(params.FromQuery(q, "from"), params.RangeFrom)
	to := params.DateOrDefault(params.FromQuery(q, "to"), params.RangeTo)

	events, err := h.stats.Hiscores(ctx, res.ID, mode, from, to)
	if err != nil {
		h.logger.Errorw("Failed to query hiscores", "user", res.ID, "mode", mode, "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	// An empty result usually means the player was never refreshed for this
	// mode. Trigger one upstream refresh and re-query, unless resolution
	// already refreshed the player. Never more than one attempt per request.
	if len(events) == 0 && !res.RefreshPerformed {
		_, err := h.upstream.GetChanges(ctx, strconv.FormatInt(res.ID, 10), mode)
		switch {
		case errors.Is(err, osutrack.ErrUserNotFound):
			// Upstream has never heard of the player either; the empty
			// result stands.
			h.logger.Infow("Refresh skipped, user unknown upstream", "user", res.ID, "mode", mode)
		case err != nil:
			h.logger.Errorw("Upstream refresh failed", "user", res.ID, "mode", mode, "error", err)
			h.errorResponse(w, http.StatusInternalServerError, "Internal server error")
			return
		default:
			events, err = h.stats.Hiscores(ctx, res.ID, mode, from, to)
			if err != nil {
				h.logger.Errorw("Failed to re-query hiscores", "user", res.ID, "mode", mode, "error", err)
				h.errorResponse(w, http.StatusInternalServerError, "Internal server error")
				return
			}
		}
	}

	h.jsonResponse(w, http.StatusOK, events)
}
