package cli

import (
	"github.com/alexanderramin/fluxo/internal/config"
	"github.com/alexanderramin/fluxo/internal/service"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Flowchart service.FlowchartService
	CRAA      service.CRAAService

	Config config.Config
	Logger *zap.Logger

	// Bootstrap wires the services after flags are parsed. It is skipped
	// when the services were injected directly.
	Bootstrap func(cfg config.Config) error

	// IsInteractive reports whether stdin is a terminal. Nil means false.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) logger() *zap.Logger {
	if a.Logger == nil {
		return zap.NewNop()
	}
	return a.Logger
}

// NewRootCmd creates the top-level "fluxo" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "fluxo",
		Short:         "Curriculum flowchart and enrollment planner",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			if flags.Changed("db") {
				app.Config.DBPath, _ = flags.GetString("db")
			}
			if flags.Changed("dataset") {
				app.Config.DatasetPath, _ = flags.GetString("dataset")
			}
			app.logger().Debug("running command",
				zap.String("command", cmd.CommandPath()),
				zap.String("db", app.Config.DBPath))
			if app.Flowchart != nil || app.Bootstrap == nil {
				return nil
			}
			return app.Bootstrap(app.Config)
		},
		// Bare "fluxo" opens the browser on a terminal.
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 || !app.interactive() {
				return cmd.Help()
			}
			return runBrowse(cmd, app)
		},
	}

	root.PersistentFlags().String("db", app.Config.DBPath, "Path to the SQLite database")
	root.PersistentFlags().String("dataset", app.Config.DatasetPath, "Curriculum dataset file (YAML or JSON); empty uses the built-in curriculum")

	root.AddCommand(
		newGridCmd(app),
		newShowCmd(app),
		newSetCmd(app),
		newProgressCmd(app),
		newResetCmd(app),
		newPlanCmd(app),
		newCheckCmd(app),
		newCRAACmd(app),
		newBrowseCmd(app),
	)

	return root
}
