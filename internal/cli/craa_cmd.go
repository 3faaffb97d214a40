package cli

import (
	"fmt"

	"github.com/alexanderramin/fluxo/internal/cli/formatter"
	"github.com/alexanderramin/fluxo/internal/craa"
	"github.com/spf13/cobra"
)

func newCRAACmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "craa",
		Short: "Project the cumulative weighted average (CRAA)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printCRAA(cmd, app)
		},
	}

	cmd.AddCommand(
		newCRAAShowCmd(app),
		newCRAASetCmd(app),
		newCRAAAddCmd(app),
		newCRAAUpdateCmd(app),
		newCRAARemoveCmd(app),
		newCRAAClearCmd(app),
	)

	return cmd
}

func printCRAA(cmd *cobra.Command, app *App) error {
	fmt.Fprint(cmd.OutOrStdout(), formatter.FormatCRAA(app.CRAA.Worksheet(), app.CRAA.Projection()))
	return nil
}

func newCRAAShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the worksheet and the projected CRAA",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printCRAA(cmd, app)
		},
	}
}

func newCRAASetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "set [<craa> <credits>]",
		Short: "Set the current CRAA and the credits already taken",
		Args:  oneOfArgCounts(0, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := app.CRAA.Update(cmd.Context(), func(ws *craa.Worksheet) error {
				if len(args) == 2 {
					ws.CurrentCRAA, ws.CurrentCredits = args[0], args[1]
					return nil
				}
				if !app.interactive() {
					return fmt.Errorf("expected <craa> <credits>")
				}
				return wizardCRAACurrent(ws).Run()
			})
			if err != nil {
				return err
			}
			return printCRAA(cmd, app)
		},
	}
}

func newCRAAAddCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add [<name> <credits> <grade>]",
		Short: "Add a discipline to the worksheet",
		Long: `Add fills the last row when it is still blank and appends a new row
otherwise. Without arguments an interactive form asks for the fields.`,
		Args: oneOfArgCounts(0, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			var row craa.Row
			switch {
			case len(args) == 3:
				row.Name, row.Credits, row.Grade = args[0], args[1], args[2]
			case app.interactive():
				if err := wizardCRAARow(&row).Run(); err != nil {
					return err
				}
			}
			_, err := app.CRAA.Update(cmd.Context(), func(ws *craa.Worksheet) error {
				if n := len(ws.Rows); n == 0 || !ws.Rows[n-1].Blank() {
					ws.AddRow()
				}
				target := &ws.Rows[len(ws.Rows)-1]
				target.Name, target.Credits, target.Grade = row.Name, row.Credits, row.Grade
				return nil
			})
			if err != nil {
				return err
			}
			return printCRAA(cmd, app)
		},
	}
}

func newCRAAUpdateCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:       "update <row> <name|credits|grade> <value>",
		Short:     "Change one field of a worksheet row",
		Long:      "A row is referenced by its position (1, 2, ...) or by its ID.",
		Args:      cobra.ExactArgs(3),
		ValidArgs: []string{string(craa.FieldName), string(craa.FieldCredits), string(craa.FieldGrade)},
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := app.CRAA.Update(cmd.Context(), func(ws *craa.Worksheet) error {
				return ws.UpdateRow(args[0], craa.RowField(args[1]), args[2])
			})
			if err != nil {
				return err
			}
			return printCRAA(cmd, app)
		},
	}
}

func newCRAARemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "remove <row>",
		Aliases: []string{"rm"},
		Short:   "Remove a worksheet row",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := app.CRAA.Update(cmd.Context(), func(ws *craa.Worksheet) error {
				return ws.RemoveRow(args[0])
			})
			if err != nil {
				return err
			}
			return printCRAA(cmd, app)
		},
	}
}

func newCRAAClearCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Discard the worksheet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := app.CRAA.Reset(cmd.Context()); err != nil {
				return err
			}
			return printCRAA(cmd, app)
		},
	}
}

// oneOfArgCounts accepts exactly one of the given argument counts.
func oneOfArgCounts(counts ...int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		for _, n := range counts {
			if len(args) == n {
				return nil
			}
		}
		return fmt.Errorf("accepts %v args, received %d", counts, len(args))
	}
}
