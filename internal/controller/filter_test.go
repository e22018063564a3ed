package controller

import (
	"reflect"
	"testing"

	"philcali.me/recipebook/internal/data"
)

func TestFilter(t *testing.T) {
	recipes := []data.Recipe{
		{Id: "1", Recipe: "Soup", Ingredients: "carrot, water"},
		{Id: "2", Recipe: "Cake", Ingredients: "flour, sugar"},
		{Id: "3", Recipe: "Glazed Carrots", Ingredients: "Carrot, honey"},
	}

	t.Run("Blank", func(t *testing.T) {
		for _, search := range []string{"", " ", "\t"} {
			if filtered := Filter(recipes, search); !reflect.DeepEqual(filtered, recipes) {
				t.Fatalf("Expected all recipes in order for %q, got %v", search, filtered)
			}
		}
	})

	t.Run("CaseInsensitiveSubstring", func(t *testing.T) {
		filtered := Filter(recipes, "CARR")
		if len(filtered) != 2 || filtered[0].Id != "1" || filtered[1].Id != "3" {
			t.Fatalf("Expected soup and carrots, got %v", filtered)
		}
	})

	t.Run("OnlyIngredients", func(t *testing.T) {
		if filtered := Filter(recipes, "cake"); len(filtered) != 0 {
			t.Fatalf("Expected names to be ignored, got %v", filtered)
		}
	})

	t.Run("NotTokenized", func(t *testing.T) {
		if filtered := Filter(recipes, "sugar flour"); len(filtered) != 0 {
			t.Fatalf("Expected no fuzzy matching, got %v", filtered)
		}
		if filtered := Filter(recipes, "r, s"); len(filtered) != 1 {
			t.Fatalf("Expected raw substring match, got %v", filtered)
		}
	})

	t.Run("Idempotent", func(t *testing.T) {
		once := Filter(recipes, "honey")
		twice := Filter(Filter(recipes, "honey"), "honey")
		if !reflect.DeepEqual(once, twice) {
			t.Fatalf("Expected %v, got %v", once, twice)
		}
	})

	t.Run("DoesNotAlias", func(t *testing.T) {
		filtered := Filter(recipes, "")
		filtered[0].Recipe = "changed"
		if recipes[0].Recipe != "Soup" {
			t.Fatalf("Expected the input slice to be untouched")
		}
	})
}
