package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/Makepad-fr/chores/internal/config"
	"github.com/Makepad-fr/chores/internal/logging"
	"github.com/Makepad-fr/chores/internal/ui"
)

// env is what every subcommand gets once the root has loaded config.
type env struct {
	configPath string

	cfg     *config.Config
	logger  *slog.Logger
	logFile io.Closer
	theme   ui.Theme

	// extra Bubble Tea options for the board, e.g. scripted input
	programOpts []tea.ProgramOption
}

// Run executes the command line and returns an exit code (0 ok, 1 error).
func Run(args []string, stdout, stderr io.Writer) int {
	return execute(&env{}, args, stdout, stderr)
}

func execute(e *env, args []string, stdout, stderr io.Writer) int {
	cmd := newRootCommand(e)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	// teardown runs here, not in a post-run hook, so failed commands close the log too
	err := errors.Join(cmd.Execute(), e.teardown())
	if err != nil {
		ui.Fail(stderr, ui.ThemeByName(""), err.Error())
		return 1
	}
	return 0
}

// NewRootCommand builds the command tree. The root itself runs the board.
func NewRootCommand() *cobra.Command { return newRootCommand(&env{}) }

func newRootCommand(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "chores",
		Short:         "Household chores, grouped by owner",
		Long:          "chores shows the household chore list per owner and keeps it across restarts.",
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return e.setup()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBoard(cmd.Context(), e)
		},
	}

	cmd.PersistentFlags().StringVarP(&e.configPath, "config", "c", "", "config file (default <user config dir>/chores/config.yaml)")

	cmd.AddCommand(newListCommand(e))
	cmd.AddCommand(newResetCommand(e))
	return cmd
}

func (e *env) setup() error {
	cfg, err := config.Load(e.configPath)
	if err != nil {
		return err
	}
	f, err := logging.OpenFile(cfg.Log.File)
	if err != nil {
		return err
	}
	e.cfg = cfg
	e.logFile = f
	e.logger = logging.New(cfg.Log.Level, cfg.Log.Format, f)
	e.theme = ui.ThemeByName(cfg.UI.Theme)
	return nil
}

func (e *env) teardown() error {
	if e.logFile == nil {
		return nil
	}
	err := e.logFile.Close()
	e.logFile = nil
	if err != nil {
		return fmt.Errorf("close log: %w", err)
	}
	return nil
}
