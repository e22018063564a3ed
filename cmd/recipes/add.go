package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"philcali.me/recipebook/internal/controller"
)

func newAddCommand(opts *rootOptions) *cobra.Command {
	var draft controller.Draft
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a recipe to the book",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app := opts.app
			ctx := commandContext(cmd)
			// A failed load only leaves the local copy empty.
			app.Controller.Load(ctx)
			if err := app.Controller.Submit(ctx, draft); err != nil {
				return reportError(cmd.ErrOrStderr(), err)
			}
			recipes := app.Controller.Snapshot().Recipes
			created := recipes[len(recipes)-1]
			fmt.Fprintf(cmd.OutOrStdout(), "Recipe added: %s (%s)\n", created.Id, created.Recipe)
			return nil
		},
	}
	cmd.Flags().StringVar(&draft.Recipe, "recipe", "", "Recipe name (required)")
	cmd.Flags().StringVar(&draft.Ingredients, "ingredients", "", "Ingredients (required)")
	cmd.Flags().StringVar(&draft.Cuisine, "cuisine", "", "Cuisine")
	return cmd
}
