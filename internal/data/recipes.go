package data

import (
	"context"
	"encoding/json"
	"strings"
)

type Recipe struct {
	Id          string `json:"id" yaml:"id"`
	Recipe      string `json:"recipe" yaml:"recipe"`
	Ingredients string `json:"ingredients" yaml:"ingredients"`
	Cuisine     string `json:"cuisine" yaml:"cuisine"`
}

// Mongo-backed stores key records by "_id"; both spellings are accepted.
func (r *Recipe) UnmarshalJSON(body []byte) error {
	var wire struct {
		Id          string `json:"id"`
		MongoId     string `json:"_id"`
		Recipe      string `json:"recipe"`
		Ingredients string `json:"ingredients"`
		Cuisine     string `json:"cuisine"`
	}
	if err := json.Unmarshal(body, &wire); err != nil {
		return err
	}
	id := wire.Id
	if id == "" {
		id = wire.MongoId
	}
	*r = Recipe{
		Id:          id,
		Recipe:      wire.Recipe,
		Ingredients: wire.Ingredients,
		Cuisine:     wire.Cuisine,
	}
	return nil
}

func (r Recipe) ToInput() RecipeInput {
	return RecipeInput{
		Recipe:      r.Recipe,
		Ingredients: r.Ingredients,
		Cuisine:     r.Cuisine,
	}
}

type RecipeInput struct {
	Recipe      string `json:"recipe" yaml:"recipe"`
	Ingredients string `json:"ingredients" yaml:"ingredients"`
	Cuisine     string `json:"cuisine" yaml:"cuisine"`
}

// Blank reports whether either required field is empty after trimming.
func (in RecipeInput) Blank() bool {
	return strings.TrimSpace(in.Recipe) == "" || strings.TrimSpace(in.Ingredients) == ""
}

type RecipeStore interface {
	ListRecipes(ctx context.Context) ([]Recipe, error)
	CreateRecipe(ctx context.Context, input RecipeInput) (Recipe, error)
	UpdateRecipe(ctx context.Context, recipeId string, input RecipeInput) (Recipe, error)
	DeleteRecipe(ctx context.Context, recipeId string) error
}
