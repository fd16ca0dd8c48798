package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/osutrack/stats-api/internal/models"
	"github.com/osutrack/stats-api/internal/params"
)

func TestGetBestPlays(t *testing.T) {
	logger := zap.NewNop()

	tests := []struct {
		name           string
		url            string
		mockSetup      func(*MockStatsService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "Invalid mode",
			url:            "/bestplays?mode=9",
			expectedStatus: http.StatusBadRequest,
			expectedBody:   params.ErrTextMode,
		},
		{
			name:           "Missing mode",
			url:            "/bestplays",
			expectedStatus: http.StatusBadRequest,
			expectedBody:   params.ErrTextMode,
		},
		{
			name:           "Limit over max",
			url:            "/bestplays?mode=0&limit=10001",
			expectedStatus: http.StatusBadRequest,
			expectedBody:   params.ErrTextLimit,
		},
		{
			name:           "Limit zero",
			url:            "/bestplays?mode=0&limit=0",
			expectedStatus: http.StatusBadRequest,
			expectedBody:   params.ErrTextLimit,
		},
		{
			name:           "Empty leaderboard",
			url:            "/bestplays?mode=3",
			expectedStatus: http.StatusOK,
			expectedBody:   "[]",
		},
		{
			name: "Rows include the owning player",
			url:  "/bestplays?mode=0",
			mockSetup: func(m *MockStatsService) {
				m.BestPlaysFunc = func(ctx context.Context, mode models.GameMode, from, to time.Time, limit int) ([]models.BestPlay, error) {
					return []models.BestPlay{{
						User:       42,
						ScoreEvent: models.ScoreEvent{BeatmapID: 53, PP: 812.3, Rank: "XH"},
					}}, nil
				}
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"user":42`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockStats := &MockStatsService{}
			if tt.mockSetup != nil {
				tt.mockSetup(mockStats)
			}

			h := &Handler{stats: mockStats, logger: logger.Sugar()}

			r := httptest.NewRequest("GET", tt.url, nil)
			w := httptest.NewRecorder()
			h.GetBestPlays(w, r)

			if w.Code != tt.expectedStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.expectedStatus)
			}
			if !strings.Contains(w.Body.String(), tt.expectedBody) {
				t.Errorf("body = %q, want it to contain %q", w.Body.String(), tt.expectedBody)
			}
		})
	}
}

func TestGetBestPlaysLimitDefault(t *testing.T) {
	var gotLimit int
	mockStats := &MockStatsService{
		BestPlaysFunc: func(ctx context.Context, mode models.GameMode, from, to time.Time, limit int) ([]models.BestPlay, error) {
			gotLimit = limit
			return []models.BestPlay{}, nil
		},
	}

	h := &Handler{stats: mockStats, logger: zap.NewNop().Sugar()}

	r := httptest.NewRequest("GET", "/bestplays?mode=0", nil)
	w := httptest.NewRecorder()
	h.GetBestPlays(w, r)

	if gotLimit != 100 {
		t.Errorf("default limit = %d, want 100", gotLimit)
	}

	r = httptest.NewRequest("GET", "/bestplays?mode=0&limit=10000", nil)
	w = httptest.NewRecorder()
	h.GetBestPlays(w, r)

	if gotLimit != 10000 {
		t.Errorf("limit = %d, want 10000", gotLimit)
	}
}
