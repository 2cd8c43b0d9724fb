// Package enginefx provides an fx module for a ready-to-use draughts
// engine with zap-backed metrics.
package enginefx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/discochess/draughts"
	"github.com/discochess/draughts/internal/stats"
	"github.com/discochess/draughts/internal/stats/logger"
)

// Module provides a *draughts.Engine.
// Requires a *zap.Logger to be provided.
var Module = fx.Module("draughtsengine",
	fx.Provide(
		newStatsCollector,
		newEngine,
	),
)

func newStatsCollector(log *zap.Logger) stats.Collector {
	return logger.New(log.Named("draughts.stats"))
}

// Params holds dependencies for creating the engine.
type Params struct {
	fx.In

	Logger    *zap.Logger
	Collector stats.Collector
}

func newEngine(p Params) (*draughts.Engine, error) {
	return draughts.New(
		draughts.WithStats(p.Collector),
		draughts.WithLogger(p.Logger.Named("draughts")),
	)
}
