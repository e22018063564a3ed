package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"philcali.me/recipebook/internal/controller"
	"philcali.me/recipebook/internal/exceptions"
	"philcali.me/recipebook/internal/mealdb"
)

func newImportCommand(opts *rootOptions) *cobra.Command {
	var pick int
	var random bool
	cmd := &cobra.Command{
		Use:   "import [query]",
		Short: "Add a recipe found on TheMealDB",
		Long: `Import searches TheMealDB by name and adds the chosen meal to the book.
Ingredients are stored as "measure ingredient" pairs separated by commas.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app := opts.app
			ctx := commandContext(cmd)
			var meals []mealdb.Meal
			var err error
			switch {
			case random:
				meals, err = app.Meals.Random(ctx)
			case len(args) == 1:
				meals, err = app.Meals.Search(ctx, args[0])
			default:
				return exceptions.InvalidInput("a query or --random is required")
			}
			if err != nil {
				return fmt.Errorf("failed to query TheMealDB: %w", err)
			}
			if len(meals) == 0 {
				return exceptions.InvalidInput("no meals matched")
			}
			if pick < 1 || pick > len(meals) {
				return exceptions.InvalidInput(fmt.Sprintf("--pick must be between 1 and %d", len(meals)))
			}
			meal := meals[pick-1]
			input := mealdb.ToRecipeInput(meal)
			app.Controller.Load(ctx)
			draft := controller.Draft{Recipe: input.Recipe, Ingredients: input.Ingredients, Cuisine: input.Cuisine}
			if err := app.Controller.Submit(ctx, draft); err != nil {
				return reportError(cmd.ErrOrStderr(), err)
			}
			recipes := app.Controller.Snapshot().Recipes
			created := recipes[len(recipes)-1]
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Recipe imported: %s (%s)\n", created.Id, created.Recipe)
			if meal.Category != "" {
				fmt.Fprintf(out, "TheMealDB category: %s\n", meal.Category)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&pick, "pick", 1, "Which search result to import, starting at 1")
	cmd.Flags().BoolVar(&random, "random", false, "Import a random meal instead of searching")
	return cmd
}
