package logic

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/osutrack/stats-api/internal/models"
)

type playerService struct {
	db PgPool
}

func NewPlayerService(db PgPool) PlayerService {
	return &playerService{db: db}
}

func (s *playerService) GetByID(ctx context.Context, id int64) (*models.Player, error) {
	var p models.Player
	err := s.db.QueryRow(ctx,
		`SELECT osu_id, username FROM users WHERE osu_id = $1`, id,
	).Scan(&p.OsuID, &p.Username)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query player by id: %w", err)
	}
	return &p, nil
}

// FindByName returns every player matching the exact display name. The table
// is expected unique on username, so more than one row is an anomaly the
// caller decides how to treat.
func (s *playerService) FindByName(ctx context.Context, username string) ([]models.Player, error) {
	rows, err := s.db.Query(ctx,
		`SELECT osu_id, username FROM users WHERE username = $1`, username)
	if err != nil {
		return nil, fmt.Errorf("query player by name: %w", err)
	}
	defer rows.Close()

	var players []models.Player
	for rows.Next() {
		var p models.Player
		if err := rows.Scan(&p.OsuID, &p.Username); err != nil {
			return nil, fmt.Errorf("scan player: %w", err)
		}
		players = append(players, p)
	}
	return players, rows.Err()
}
