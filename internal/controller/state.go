package controller

import (
	"golang.org/x/exp/slices"
	"philcali.me/recipebook/internal/data"
	"philcali.me/recipebook/internal/exceptions"
)

type Draft struct {
	Recipe      string
	Ingredients string
	Cuisine     string
}

func (d Draft) Input() data.RecipeInput {
	return data.RecipeInput{
		Recipe:      d.Recipe,
		Ingredients: d.Ingredients,
		Cuisine:     d.Cuisine,
	}
}

func DraftOf(r data.Recipe) Draft {
	input := r.ToInput()
	return Draft{
		Recipe:      input.Recipe,
		Ingredients: input.Ingredients,
		Cuisine:     input.Cuisine,
	}
}

type State struct {
	Recipes []data.Recipe
	Draft   Draft
	Mode    Mode
	Search  string
	Err     *exceptions.UserError
}

func (s State) Filtered() []data.Recipe {
	return Filter(s.Recipes, s.Search)
}

func (s State) SubmitLabel() string {
	if _, editing := EditTarget(s.Mode); editing {
		return "Update Recipe"
	}
	return "Add Recipe"
}

func (s State) Find(id string) (data.Recipe, bool) {
	index := slices.IndexFunc(s.Recipes, func(r data.Recipe) bool {
		return r.Id == id
	})
	if index < 0 {
		return data.Recipe{}, false
	}
	return s.Recipes[index], true
}

func (s State) clone() State {
	s.Recipes = slices.Clone(s.Recipes)
	return s
}
