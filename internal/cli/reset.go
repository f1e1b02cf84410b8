package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Makepad-fr/chores/internal/store"
	"github.com/Makepad-fr/chores/internal/ui"
)

func newResetCommand(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Forget the saved chore list; the next start uses the defaults",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			st, err := store.Open(e.cfg.Storage.Driver, e.cfg.Storage.Path)
			if err != nil {
				return fmt.Errorf("open storage: %w", err)
			}
			defer func() { err = errors.Join(err, st.Close()) }()

			if err := st.Delete(store.AppKey); err != nil {
				return fmt.Errorf("reset: %w", err)
			}
			e.logger.InfoContext(cmd.Context(), "state reset")
			ui.OK(cmd.OutOrStdout(), e.theme, "reset")
			return nil
		},
	}
}
