package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"philcali.me/recipebook/internal/exceptions"
)

func newEditCommand(opts *rootOptions) *cobra.Command {
	var recipe, ingredients, cuisine string
	cmd := &cobra.Command{
		Use:   "edit [id]",
		Short: "Update a recipe in the book",
		Long:  `Edit starts from the stored recipe and replaces only the fields given as flags.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			app := opts.app
			ctx := commandContext(cmd)
			if err := app.Controller.Load(ctx); err != nil {
				return reportError(cmd.ErrOrStderr(), err)
			}
			if !app.Controller.BeginEdit(id) {
				return exceptions.NotFound("recipe", id)
			}
			draft := app.Controller.Snapshot().Draft
			if cmd.Flags().Changed("recipe") {
				draft.Recipe = recipe
			}
			if cmd.Flags().Changed("ingredients") {
				draft.Ingredients = ingredients
			}
			if cmd.Flags().Changed("cuisine") {
				draft.Cuisine = cuisine
			}
			if err := app.Controller.Submit(ctx, draft); err != nil {
				return reportError(cmd.ErrOrStderr(), err)
			}
			updated, _ := app.Controller.Snapshot().Find(id)
			fmt.Fprintf(cmd.OutOrStdout(), "Recipe updated: %s (%s)\n", updated.Id, updated.Recipe)
			return nil
		},
	}
	cmd.Flags().StringVar(&recipe, "recipe", "", "New recipe name")
	cmd.Flags().StringVar(&ingredients, "ingredients", "", "New ingredients")
	cmd.Flags().StringVar(&cuisine, "cuisine", "", "New cuisine")
	return cmd
}
