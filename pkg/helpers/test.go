package helpers

import (
	"context"
	"log/slog"

	"github.com/SolarGUY14/EasyCeipt/pkg/logger"
)

// TestCtx returns a context carrying a quiet test logger.
func TestCtx() context.Context {
	log := slog.New(logger.NewTestHandler(slog.LevelInfo))
	return logger.ToContext(context.Background(), log)
}
