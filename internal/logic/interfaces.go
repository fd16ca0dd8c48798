package logic

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/osutrack/stats-api/internal/models"
	"github.com/osutrack/stats-api/internal/params"
)

// ErrNotFound is returned when a player cannot be resolved locally or
// upstream.
var ErrNotFound = errors.New("player not found")

// PgPool defines the interface for the PostgreSQL connection pool
type PgPool interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
}

// UpstreamClient defines the two osu!track API operations this service
// consumes. Both are fallible, latency-bearing and never retried.
type UpstreamClient interface {
	// GetChanges triggers a refresh for the player and returns the changes
	// payload the upstream produced.
	GetChanges(ctx context.Context, user string, mode models.GameMode) (json.RawMessage, error)
	// GetUser looks a player up by username and returns its canonical record.
	GetUser(ctx context.Context, username string, mode models.GameMode) (*models.Player, error)
}

// StatsService exposes the four read-only reporting queries.
type StatsService interface {
	History(ctx context.Context, user int64, mode models.GameMode, from, to time.Time) ([]models.StatSnapshot, error)
	Hiscores(ctx context.Context, user int64, mode models.GameMode, from, to time.Time) ([]models.ScoreEvent, error)
	Peak(ctx context.Context, user int64, mode models.GameMode) (*models.PeakStats, error)
	BestPlays(ctx context.Context, mode models.GameMode, from, to time.Time, limit int) ([]models.BestPlay, error)
}

// PlayerService reads tracked players from local storage.
type PlayerService interface {
	GetByID(ctx context.Context, id int64) (*models.Player, error)
	FindByName(ctx context.Context, username string) ([]models.Player, error)
}

// ResolverService turns a raw user identifier into a canonical player ID.
type ResolverService interface {
	Resolve(ctx context.Context, identifier string, mode models.GameMode, kind params.UserMode) (Resolution, error)
}
