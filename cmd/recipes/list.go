package main

import (
	"github.com/spf13/cobra"
	"philcali.me/recipebook/internal/view"
)

func newListCommand(opts *rootOptions) *cobra.Command {
	var search string
	var format string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recipes, optionally filtered by ingredient",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app := opts.app
			if err := app.Controller.Load(commandContext(cmd)); err != nil {
				return reportError(cmd.ErrOrStderr(), err)
			}
			app.Controller.SetSearch(search)
			out := cmd.OutOrStdout()
			return view.WriteList(out, app.Controller.Filtered(), format, view.StylesFor(out))
		},
	}
	cmd.Flags().StringVarP(&search, "search", "s", "", "Only show recipes whose ingredients contain this text")
	cmd.Flags().StringVarP(&format, "format", "o", view.FormatTable, "Output format: table, json or yaml")
	return cmd
}
