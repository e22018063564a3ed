package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newDeleteCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "delete [id]",
		Short: "Delete a recipe from the book",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			app := opts.app
			ctx := commandContext(cmd)
			app.Controller.Load(ctx)
			if err := app.Controller.Delete(ctx, id); err != nil {
				return reportError(cmd.ErrOrStderr(), err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Recipe deleted: %s\n", id)
			return nil
		},
	}
}
