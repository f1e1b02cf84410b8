package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Makepad-fr/chores/internal/app"
	"github.com/Makepad-fr/chores/internal/model"
	"github.com/Makepad-fr/chores/internal/store"
	"github.com/Makepad-fr/chores/internal/ui"
)

const listWidth = 72

func newListCommand(e *env) *cobra.Command {
	return &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "Print the chore list grouped by owner",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			st, err := store.Open(e.cfg.Storage.Driver, e.cfg.Storage.Path)
			if err != nil {
				return fmt.Errorf("open storage: %w", err)
			}
			defer func() { err = errors.Join(err, st.Close()) }()

			s := app.OnStart(cmd.Context(), st, e.logger)

			counts := make([]string, 0, len(model.Owners())+1)
			for _, o := range model.Owners() {
				counts = append(counts, fmt.Sprintf("%s %d", e.theme.Heading.Render(o.String()), len(s.ByOwner(o))))
			}
			counts = append(counts, fmt.Sprintf("Total %d", len(s.Chores)))

			lines := strings.Split(ui.Render(s, ui.Frame{Width: listWidth, Focus: -1, Theme: e.theme}), "\n")
			lines = append(lines, "", e.theme.Muted.Render(strings.Join(counts, "  ")))
			ui.Panel(cmd.OutOrStdout(), e.theme, lines)
			return nil
		},
	}
}
