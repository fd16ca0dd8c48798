package handlers

import (
	"go.uber.org/zap"

	"github.com/osutrack/stats-api/internal/logic"
)

type Config struct {
	Postgres logic.PgPool
	Logger   *zap.Logger
	// Services
	Stats    logic.StatsService
	Players  logic.PlayerService
	Resolver logic.ResolverService
	Upstream logic.UpstreamClient
}

type Handler struct {
	pg       logic.PgPool
	logger   *zap.SugaredLogger
	stats    logic.StatsService
	players  logic.PlayerService
	resolver logic.ResolverService
	upstream logic.UpstreamClient
}

func New(cfg Config) *Handler {
	return &Handler{
		pg:       cfg.Postgres,
		logger:   cfg.Logger.Sugar(),
		stats:    cfg.Stats,
		players:  cfg.Players,
		resolver: cfg.Resolver,
		upstream: cfg.Upstream,
	}
}
