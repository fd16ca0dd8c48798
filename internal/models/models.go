package models

import "time"

// GameMode is one of the four osu! disciplines.
type GameMode int

const (
	ModeOsu GameMode = iota
	ModeTaiko
	ModeCtb
	ModeMania
)

func (m GameMode) String() string {
	switch m {
	case ModeOsu:
		return "osu!"
	case ModeTaiko:
		return "taiko"
	case ModeCtb:
		return "ctb"
	case ModeMania:
		return "mania"
	}
	return "unknown"
}

// Player is a tracked osu! account. Rows are created by the out-of-band
// refresh pipeline; this API only ever reads them.
type Player struct {
	OsuID    int64  `json:"osu_id"`
	Username string `json:"username"`
}

// StatSnapshot is one point-in-time rollup of a player's lifetime statistics
// for a single mode. Column names follow the osu! API v1 payload the tracker
// stores verbatim.
type StatSnapshot struct {
	Count300    int64     `json:"count300"`
	Count100    int64     `json:"count100"`
	Count50     int64     `json:"count50"`
	Playcount   int64     `json:"playcount"`
	RankedScore int64     `json:"ranked_score"`
	TotalScore  int64     `json:"total_score"`
	PPRank      int64     `json:"pp_rank"`
	Level       float64   `json:"level"`
	PPRaw       float64   `json:"pp_raw"`
	Accuracy    float64   `json:"accuracy"`
	CountRankSS int64     `json:"count_rank_ss"`
	CountRankS  int64     `json:"count_rank_s"`
	CountRankA  int64     `json:"count_rank_a"`
	Timestamp   time.Time `json:"timestamp"`
}

// ScoreEvent is a single recorded hiscore observation for a player.
type ScoreEvent struct {
	BeatmapID  int64     `json:"beatmap_id"`
	Score      int64     `json:"score"`
	PP         float64   `json:"pp"`
	Mods       int64     `json:"mods"`
	Rank       string    `json:"rank"`
	ScoreTime  time.Time `json:"score_time"`
	UpdateTime time.Time `json:"update_time"`
}

// BestPlay is a leaderboard row: a score event plus its owning player.
type BestPlay struct {
	User int64 `json:"user"`
	ScoreEvent
}

// PeakStats is the extremal summary for a player/mode pair. Fields are nil
// when the player has no snapshots at all.
type PeakStats struct {
	BestGlobalRank    *int64     `json:"best_global_rank"`
	BestRankTimestamp *time.Time `json:"best_rank_timestamp"`
	BestAccuracy      *float64   `json:"best_accuracy"`
	BestAccTimestamp  *time.Time `json:"best_acc_timestamp"`
}
