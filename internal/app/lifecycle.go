// Package app holds the process lifecycle hooks: load the chore list once at
// start, write it back once at shutdown.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Makepad-fr/chores/internal/model"
	"github.com/Makepad-fr/chores/internal/store"
)

// OnStart reads the persisted state. It never fails: a missing slot, an
// unreadable store or undecodable bytes all yield the default chore list.
func OnStart(ctx context.Context, st store.Storage, logger *slog.Logger) model.State {
	b, ok, err := st.Get(store.AppKey)
	if err != nil {
		logger.WarnContext(ctx, "reading persisted state failed, using defaults",
			slog.String("operation", "OnStart"),
			slog.Any("error", err),
		)
		return model.DefaultState()
	}
	if !ok {
		logger.DebugContext(ctx, "no persisted state, using defaults")
		return model.DefaultState()
	}
	if _, err := model.Decode(b); err != nil {
		logger.WarnContext(ctx, "persisted state unreadable, using defaults",
			slog.String("operation", "OnStart"),
			slog.Any("error", err),
		)
	}
	s := model.Load(b)
	logger.DebugContext(ctx, "state loaded", slog.Int("chores", len(s.Chores)))
	return s
}

// OnShutdown writes the full state snapshot, replacing whatever was stored.
func OnShutdown(ctx context.Context, st store.Storage, logger *slog.Logger, s model.State) error {
	b, err := model.Save(s)
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}
	if err := st.Set(store.AppKey, b); err != nil {
		return fmt.Errorf("save state: %w", err)
	}
	logger.DebugContext(ctx, "state saved", slog.Int("chores", len(s.Chores)))
	return nil
}
