package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/fluxo/internal/cli/formatter"
	"github.com/spf13/cobra"
)

// normalizeCode lets users type codes in any case.
func normalizeCode(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

func (a *App) gridData() formatter.GridData {
	return formatter.GridData{
		Graph:    a.Flowchart.Graph(),
		Progress: a.Flowchart.Progress(),
		Planned:  a.Flowchart.Planned(),
	}
}

func newGridCmd(app *App) *cobra.Command {
	var optional bool

	cmd := &cobra.Command{
		Use:   "grid",
		Short: "Show the curriculum flowchart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data := app.gridData()
			out := cmd.OutOrStdout()
			fmt.Fprint(out, formatter.FormatGrid(data))
			if optional {
				fmt.Fprintln(out)
				fmt.Fprint(out, formatter.FormatOptional(data))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&optional, "optional", false, "Also list the optional disciplines")

	return cmd
}

func newShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <code>",
		Short: "Show a discipline with its prerequisites and dependents",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			details, err := app.Flowchart.Details(normalizeCode(args[0]))
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatDisciplineDetails(details))
			return nil
		},
	}
}

func newCheckCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Report references to disciplines missing from the curriculum",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g := app.Flowchart.Graph()
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatUnresolved(g, g.UnresolvedReferences()))
			return nil
		},
	}
}
