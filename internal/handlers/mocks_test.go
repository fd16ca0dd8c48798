package handlers

import (
	"context"
	"encoding/json"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/osutrack/stats-api/internal/logic"
	"github.com/osutrack/stats-api/internal/models"
	"github.com/osutrack/stats-api/internal/params"
)

// MockStatsService
type MockStatsService struct {
	HistoryFunc   func(ctx context.Context, user int64, mode models.GameMode, from, to time.Time) ([]models.StatSnapshot, error)
	HiscoresFunc  func(ctx context.Context, user int64, mode models.GameMode, from, to time.Time) ([]models.ScoreEvent, error)
	PeakFunc      func(ctx context.Context, user int64, mode models.GameMode) (*models.PeakStats, error)
	BestPlaysFunc func(ctx context.Context, mode models.GameMode, from, to time.Time, limit int) ([]models.BestPlay, error)

	HiscoresCalls int
}

func (m *MockStatsService) History(ctx context.Context, user int64, mode models.GameMode, from, to time.Time) ([]models.StatSnapshot, error) {
	if m.HistoryFunc != nil {
		return m.HistoryFunc(ctx, user, mode, from, to)
	}
	return []models.StatSnapshot{}, nil
}

func (m *MockStatsService) Hiscores(ctx context.Context, user int64, mode models.GameMode, from, to time.Time) ([]models.ScoreEvent, error) {
	m.HiscoresCalls++
	if m.HiscoresFunc != nil {
		return m.HiscoresFunc(ctx, user, mode, from, to)
	}
	return []models.ScoreEvent{}, nil
}

func (m *MockStatsService) Peak(ctx context.Context, user int64, mode models.GameMode) (*models.PeakStats, error) {
	if m.PeakFunc != nil {
		return m.PeakFunc(ctx, user, mode)
	}
	return &models.PeakStats{}, nil
}

func (m *MockStatsService) BestPlays(ctx context.Context, mode models.GameMode, from, to time.Time, limit int) ([]models.BestPlay, error) {
	if m.BestPlaysFunc != nil {
		return m.BestPlaysFunc(ctx, mode, from, to, limit)
	}
	return []models.BestPlay{}, nil
}

// MockPlayerService
type MockPlayerService struct {
	GetByIDFunc    func(ctx context.Context, id int64) (*models.Player, error)
	FindByNameFunc func(ctx context.Context, username string) ([]models.Player, error)
}

func (m *MockPlayerService) GetByID(ctx context.Context, id int64) (*models.Player, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return &models.Player{OsuID: id, Username: "mock"}, nil
}

func (m *MockPlayerService) FindByName(ctx context.Context, username string) ([]models.Player, error) {
	if m.FindByNameFunc != nil {
		return m.FindByNameFunc(ctx, username)
	}
	return nil, nil
}

// MockResolverService
type MockResolverService struct {
	ResolveFunc func(ctx context.Context, identifier string, mode models.GameMode, kind params.UserMode) (logic.Resolution, error)
}

func (m *MockResolverService) Resolve(ctx context.Context, identifier string, mode models.GameMode, kind params.UserMode) (logic.Resolution, error) {
	if m.ResolveFunc != nil {
		return m.ResolveFunc(ctx, identifier, mode, kind)
	}
	if id, ok := params.ParseUserID(identifier); ok {
		return logic.Resolution{ID: id}, nil
	}
	return logic.Resolution{}, logic.ErrNotFound
}

// MockUpstreamClient counts calls so the refresh policy can be asserted.
type MockUpstreamClient struct {
	GetChangesFunc func(ctx context.Context, user string, mode models.GameMode) (json.RawMessage, error)
	GetUserFunc    func(ctx context.Context, username string, mode models.GameMode) (*models.Player, error)

	GetChangesCalls int
}

func (m *MockUpstreamClient) GetChanges(ctx context.Context, user string, mode models.GameMode) (json.RawMessage, error) {
	m.GetChangesCalls++
	if m.GetChangesFunc != nil {
		return m.GetChangesFunc(ctx, user, mode)
	}
	return json.RawMessage(`[]`), nil
}

func (m *MockUpstreamClient) GetUser(ctx context.Context, username string, mode models.GameMode) (*models.Player, error) {
	if m.GetUserFunc != nil {
		return m.GetUserFunc(ctx, username, mode)
	}
	return &models.Player{OsuID: 1, Username: username}, nil
}

// MockPgPool only backs the readiness probe in handler tests.
type MockPgPool struct {
	PingErr error
}

func (m *MockPgPool) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}
func (m *MockPgPool) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row { return nil }
func (m *MockPgPool) Ping(ctx context.Context) error                                { return m.PingErr }
