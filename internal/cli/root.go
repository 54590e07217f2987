package cli

import (
	"fmt"
	"time"

	"github.com/catbot-team/catbot/internal/config"
	"github.com/catbot-team/catbot/internal/logging"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// App holds what the CLI commands need at run time. Config and Logger are
// filled in by the root command before any subcommand runs.
type App struct {
	Version string
	Config  config.Config
	Logger  *zap.Logger

	// IsInteractive reports whether stdin is a terminal. Nil means false.
	IsInteractive func() bool

	// Now is the clock used for the greeting. Nil means time.Now.
	Now func() time.Time

	// RunProgram runs the TUI. Nil means a real tea.Program.
	RunProgram func(m tea.Model, opts ...tea.ProgramOption) error
}

type rootFlags struct {
	configPath  string
	logFile     string
	debug       bool
	noAltScreen bool
	noMouse     bool
}

// NewRootCmd creates the top-level "catbot" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	var flags rootFlags

	root := &cobra.Command{
		Use:           "catbot",
		Short:         "Your cat companion for creators",
		Version:       app.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.setup(cmd, flags)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app.Logger != nil {
				_ = app.Logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive == nil || !app.IsInteractive() {
				return printStatic(cmd.OutOrStdout(), app, "")
			}
			return app.runTUI()
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", "", "Config file (default ~/.config/catbot/config.toml)")
	pf.StringVar(&flags.logFile, "log-file", "", "Write logs to this file")
	pf.BoolVar(&flags.debug, "debug", false, "Log at debug level")
	pf.BoolVar(&flags.noAltScreen, "no-alt-screen", false, "Render inline instead of using the alternate screen")
	pf.BoolVar(&flags.noMouse, "no-mouse", false, "Disable mouse support")

	root.AddCommand(
		newViewCmd(app),
		newTabsCmd(),
		newVersionCmd(app),
	)

	return root
}

// setup loads config, applies flag overrides and builds the logger.
func (app *App) setup(cmd *cobra.Command, flags rootFlags) error {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return err
	}

	pf := cmd.Flags()
	if pf.Changed("log-file") {
		cfg.Log.File = flags.logFile
	}
	if flags.debug {
		cfg.Log.Level = "debug"
	}
	if flags.noAltScreen {
		cfg.UI.AltScreen = false
	}
	if flags.noMouse {
		cfg.UI.Mouse = false
	}

	logger, err := logging.New(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("setting up logging: %w", err)
	}

	app.Config = cfg
	app.Logger = logger
	return nil
}

// programOptions maps UI config to bubbletea options. Mouse hit-testing
// assumes screen coordinates, so mouse is only enabled with the alt screen.
func (app *App) programOptions() []tea.ProgramOption {
	var opts []tea.ProgramOption
	if app.Config.UI.AltScreen {
		opts = append(opts, tea.WithAltScreen())
		if app.Config.UI.Mouse {
			opts = append(opts, tea.WithMouseCellMotion())
		}
	}
	return opts
}

func (app *App) runTUI() error {
	log := app.Logger
	if log == nil {
		log = zap.NewNop()
	}
	defer func() { _ = log.Sync() }()

	log.Info("starting tui",
		zap.Bool("alt_screen", app.Config.UI.AltScreen),
		zap.Bool("mouse", app.Config.UI.Mouse))

	run := app.RunProgram
	if run == nil {
		run = func(m tea.Model, opts ...tea.ProgramOption) error {
			_, err := tea.NewProgram(m, opts...).Run()
			return err
		}
	}
	if err := run(newAppModel(app), app.programOptions()...); err != nil {
		log.Error("tui exited with error", zap.Error(err))
		return fmt.Errorf("running tui: %w", err)
	}
	log.Info("tui stopped")
	return nil
}
