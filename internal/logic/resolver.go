package logic

import (
	"context"
	"errors"
	"fmt"

	"github.com/osutrack/stats-api/internal/models"
	"github.com/osutrack/stats-api/internal/params"
)

// Resolution is the outcome of mapping a raw identifier to a player ID.
// RefreshPerformed records whether an upstream lookup already pulled fresh
// data for the player, so callers can skip a redundant refresh.
type Resolution struct {
	ID               int64
	RefreshPerformed bool
}

type resolver struct {
	players  PlayerService
	upstream UpstreamClient
}

func NewResolver(players PlayerService, upstream UpstreamClient) ResolverService {
	return &resolver{players: players, upstream: upstream}
}

// Resolve maps an identifier to a canonical player ID.
//
// ByID applies the strict numeric rule and is otherwise the identity. By
// username it consults local storage first; a miss falls through to the
// upstream service, which creates the player as a side effect. Every upstream
// failure mode collapses to ErrNotFound, with the cause joined in for logs.
func (r *resolver) Resolve(ctx context.Context, identifier string, mode models.GameMode, kind params.UserMode) (Resolution, error) {
	if kind == params.ByID {
		id, ok := params.ParseUserID(identifier)
		if !ok {
			return Resolution{}, ErrNotFound
		}
		return Resolution{ID: id}, nil
	}

	matches, err := r.players.FindByName(ctx, identifier)
	if err != nil {
		return Resolution{}, err
	}
	switch len(matches) {
	case 1:
		return Resolution{ID: matches[0].OsuID}, nil
	case 0:
		player, err := r.upstream.GetUser(ctx, identifier, mode)
		if err != nil {
			return Resolution{}, errors.Join(ErrNotFound, fmt.Errorf("upstream lookup %q: %w", identifier, err))
		}
		return Resolution{ID: player.OsuID, RefreshPerformed: true}, nil
	default:
		// Duplicate usernames should be impossible. Refuse to guess.
		return Resolution{}, errors.Join(ErrNotFound, fmt.Errorf("username %q matches %d players", identifier, len(matches)))
	}
}
