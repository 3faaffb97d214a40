package cli

import (
	"fmt"

	"github.com/alexanderramin/fluxo/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newPlanCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "plan <code>...",
		Short: "Check a set of enrollments against completed prerequisites",
		Long: `Plan builds a fresh planned set from the given codes and reports the
total credits and every prerequisite not yet completed. Repeating a code
toggles it back out of the set.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app.Flowchart.ClearPlanned()
			for _, arg := range args {
				if _, err := app.Flowchart.TogglePlanned(normalizeCode(arg)); err != nil {
					return err
				}
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatPlan(app.Flowchart.Plan()))
			return nil
		},
	}
}
