package mealdb

import (
	"encoding/json"
	"fmt"
	"strings"

	"philcali.me/recipebook/internal/data"
)

type Ingredient struct {
	Name    string
	Measure string
}

// Meal flattens TheMealDB's numbered strIngredientN/strMeasureN columns
// into Ingredients.
type Meal struct {
	Id          string
	Name        string
	Category    string
	Area        string
	Ingredients []Ingredient
}

func (m *Meal) UnmarshalJSON(body []byte) error {
	var bagOfStrings map[string]*string
	if err := json.Unmarshal(body, &bagOfStrings); err != nil {
		return err
	}
	field := func(name string) string {
		if value, ok := bagOfStrings[name]; ok && value != nil {
			return strings.TrimSpace(*value)
		}
		return ""
	}
	*m = Meal{
		Id:        field("idMeal"),
		Name:      field("strMeal"),
		Category:  field("strCategory"),
		Area:      field("strArea"),
	}
	for i := 1; i <= 20; i++ {
		name := field(fmt.Sprintf("strIngredient%d", i))
		if name == "" {
			continue
		}
		m.Ingredients = append(m.Ingredients, Ingredient{
			Name:    name,
			Measure: field(fmt.Sprintf("strMeasure%d", i)),
		})
	}
	return nil
}

// ToRecipeInput converts a meal into the form fields of the recipe book.
// "Unknown" is TheMealDB's placeholder area and is dropped.
func ToRecipeInput(m Meal) data.RecipeInput {
	parts := make([]string, 0, len(m.Ingredients))
	for _, ingredient := range m.Ingredients {
		measure := ingredient.Measure
		if measure == "" || strings.EqualFold(measure, "To taste") || strings.EqualFold(measure, "To serve") {
			parts = append(parts, ingredient.Name)
			continue
		}
		parts = append(parts, measure+" "+ingredient.Name)
	}
	cuisine := m.Area
	if strings.EqualFold(cuisine, "Unknown") {
		cuisine = ""
	}
	return data.RecipeInput{
		Recipe:      m.Name,
		Ingredients: strings.Join(parts, ", "),
		Cuisine:     cuisine,
	}
}

type QueryResponse struct {
	Meals []Meal `json:"meals"`
}
