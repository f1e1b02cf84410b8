package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Makepad-fr/chores/internal/app"
	"github.com/Makepad-fr/chores/internal/store"
	"github.com/Makepad-fr/chores/internal/ui"
)

// runBoard is the interactive session: load once, run the event loop, save once.
func runBoard(ctx context.Context, e *env) (err error) {
	st, err := store.Open(e.cfg.Storage.Driver, e.cfg.Storage.Path)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer func() { err = errors.Join(err, st.Close()) }()

	state := app.OnStart(ctx, st, e.logger)
	e.logger.InfoContext(ctx, "board started",
		slog.String("storage", e.cfg.Storage.Driver),
		slog.String("path", e.cfg.Storage.Path),
	)

	opts := append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, e.programOpts...)
	p := tea.NewProgram(ui.New(&state, e.logger, e.theme), opts...)
	if _, err := p.Run(); err != nil {
		// still persist what we have
		return errors.Join(fmt.Errorf("run board: %w", err), app.OnShutdown(ctx, st, e.logger, state))
	}
	return app.OnShutdown(ctx, st, e.logger, state)
}
