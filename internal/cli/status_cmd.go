package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/fluxo/internal/cli/formatter"
	"github.com/alexanderramin/fluxo/internal/domain"
	"github.com/spf13/cobra"
)

var errConfirmRequired = errors.New("refusing to reset without confirmation (use --yes)")

func newSetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:       "set <code> <completed|in_progress|pending>",
		Short:     "Set the completion status of a discipline",
		Args:      cobra.ExactArgs(2),
		ValidArgs: []string{"completed", "in_progress", "pending"},
		RunE: func(cmd *cobra.Command, args []string) error {
			status, err := domain.ParseProgressStatus(args[1])
			if err != nil {
				return err
			}
			code := normalizeCode(args[0])
			if err := app.Flowchart.SetStatus(cmd.Context(), code, status); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s → %s\n",
				formatter.StatusMark(status), app.Flowchart.Graph().DisplayName(code), formatter.StatusPill(status))
			return nil
		},
	}
}

func newProgressCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "progress",
		Short: "Show completed credits overall and per semester",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatOverview(app.Flowchart.Overview()))
			return nil
		},
	}
}

func newResetCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Clear the completion status of every discipline",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				if !app.interactive() {
					return errConfirmRequired
				}
				confirmed := false
				if err := wizardConfirm("Limpar todo o progresso?", &confirmed).Run(); err != nil {
					return err
				}
				if !confirmed {
					fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("Nada foi alterado."))
					return nil
				}
			}
			if err := app.Flowchart.ResetAll(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Progresso limpo.")
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}
