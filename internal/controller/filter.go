package controller

import (
	"strings"

	"golang.org/x/exp/slices"
	"philcali.me/recipebook/internal/data"
)

// Filter keeps the recipes whose ingredients contain search, ignoring case.
// A blank search keeps everything in stored order.
func Filter(recipes []data.Recipe, search string) []data.Recipe {
	if strings.TrimSpace(search) == "" {
		return slices.Clone(recipes)
	}
	needle := strings.ToLower(search)
	filtered := make([]data.Recipe, 0, len(recipes))
	for _, recipe := range recipes {
		if strings.Contains(strings.ToLower(recipe.Ingredients), needle) {
			filtered = append(filtered, recipe)
		}
	}
	return filtered
}
