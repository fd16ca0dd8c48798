package logic

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"golang.org/x/sync/errgroup"

	"github.com/osutrack/stats-api/internal/models"
)

type statsService struct {
	db PgPool
}

func NewStatsService(db PgPool) StatsService {
	return &statsService{db: db}
}

// History returns every snapshot for the player/mode inside [from, to],
// oldest first.
func (s *statsService) History(ctx context.Context, user int64, mode models.GameMode, from, to time.Time) ([]models.StatSnapshot, error) {
	rows, err := s.db.Query(ctx, `
		SELECT count300, count100, count50, playcount, ranked_score, total_score,
		       pp_rank, level, pp_raw, accuracy,
		       count_rank_ss, count_rank_s, count_rank_a, "timestamp"
		FROM updates
		WHERE mode = $1 AND "user" = $2 AND "timestamp" >= $3 AND "timestamp" <= $4
		ORDER BY "timestamp" ASC
	`, int(mode), user, from, to)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	snapshots := make([]models.StatSnapshot, 0)
	for rows.Next() {
		var u models.StatSnapshot
		if err := rows.Scan(
			&u.Count300, &u.Count100, &u.Count50, &u.Playcount,
			&u.RankedScore, &u.TotalScore, &u.PPRank, &u.Level, &u.PPRaw,
			&u.Accuracy, &u.CountRankSS, &u.CountRankS, &u.CountRankA,
			&u.Timestamp,
		); err != nil {
			return nil, fmt.Errorf("scan snapshot: %w", err)
		}
		snapshots = append(snapshots, u)
	}
	return snapshots, rows.Err()
}

// Hiscores returns the player's score events inside [from, to], ordered by
// the time the play occurred.
func (s *statsService) Hiscores(ctx context.Context, user int64, mode models.GameMode, from, to time.Time) ([]models.ScoreEvent, error) {
	rows, err := s.db.Query(ctx, `
		SELECT beatmap_id, score, pp, mods, "rank", score_time, update_time
		FROM hiscore_updates
		WHERE mode = $1 AND "user" = $2 AND score_time >= $3 AND score_time <= $4
		ORDER BY score_time ASC
	`, int(mode), user, from, to)
	if err != nil {
		return nil, fmt.Errorf("query hiscores: %w", err)
	}
	defer rows.Close()

	events := make([]models.ScoreEvent, 0)
	for rows.Next() {
		var e models.ScoreEvent
		if err := rows.Scan(
			&e.BeatmapID, &e.Score, &e.PP, &e.Mods, &e.Rank,
			&e.ScoreTime, &e.UpdateTime,
		); err != nil {
			return nil, fmt.Errorf("scan score event: %w", err)
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

// Peak returns the best global rank and best accuracy the player ever
// reached, each with the timestamp of the latest snapshot that reached it.
// A player with no snapshots yields all-nil fields.
func (s *statsService) Peak(ctx context.Context, user int64, mode models.GameMode) (*models.PeakStats, error) {
	peak := &models.PeakStats{}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var rank int64
		var ts time.Time
		err := s.db.QueryRow(ctx, `
			SELECT pp_rank, "timestamp"
			FROM updates
			WHERE "user" = $1 AND mode = $2
			ORDER BY pp_rank ASC, "timestamp" DESC
			LIMIT 1
		`, user, int(mode)).Scan(&rank, &ts)
		if errors.Is(err, pgx.ErrNoRows) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("query best rank: %w", err)
		}
		peak.BestGlobalRank = &rank
		peak.BestRankTimestamp = &ts
		return nil
	})

	g.Go(func() error {
		var acc float64
		var ts time.Time
		err := s.db.QueryRow(ctx, `
			SELECT accuracy, "timestamp"
			FROM updates
			WHERE "user" = $1 AND mode = $2
			ORDER BY accuracy DESC, "timestamp" DESC
			LIMIT 1
		`, user, int(mode)).Scan(&acc, &ts)
		if errors.Is(err, pgx.ErrNoRows) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("query best accuracy: %w", err)
		}
		peak.BestAccuracy = &acc
		peak.BestAccTimestamp = &ts
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return peak, nil
}

// BestPlays returns the mode-wide top score events by pp, with the owning
// player on each row.
func (s *statsService) BestPlays(ctx context.Context, mode models.GameMode, from, to time.Time, limit int) ([]models.BestPlay, error) {
	rows, err := s.db.Query(ctx, `
		SELECT "user", beatmap_id, score, pp, mods, "rank", score_time, update_time
		FROM hiscore_updates
		WHERE mode = $1 AND score_time >= $2 AND score_time <= $3
		ORDER BY pp DESC
		LIMIT $4
	`, int(mode), from, to, limit)
	if err != nil {
		return nil, fmt.Errorf("query bestplays: %w", err)
	}
	defer rows.Close()

	plays := make([]models.BestPlay, 0)
	for rows.Next() {
		var p models.BestPlay
		if err := rows.Scan(
			&p.User, &p.BeatmapID, &p.Score, &p.PP, &p.Mods, &p.Rank,
			&p.ScoreTime, &p.UpdateTime,
		); err != nil {
			return nil, fmt.Errorf("scan bestplay: %w", err)
		}
		plays = append(plays, p)
	}
	return plays, rows.Err()
}
