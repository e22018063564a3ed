package data

import "time"

// RecipeDTO is the table item shape used by the direct DynamoDB backend.
type RecipeDTO struct {
	PK          string    `dynamodbav:"PK"`
	SK          string    `dynamodbav:"SK"`
	Recipe      string    `dynamodbav:"recipe"`
	Ingredients string    `dynamodbav:"ingredients"`
	Cuisine     string    `dynamodbav:"cuisine"`
	CreateTime  time.Time `dynamodbav:"createTime"`
	UpdateTime  time.Time `dynamodbav:"updateTime"`
}

func (dto RecipeDTO) ToRecipe() Recipe {
	return Recipe{
		Id:          dto.SK,
		Recipe:      dto.Recipe,
		Ingredients: dto.Ingredients,
		Cuisine:     dto.Cuisine,
	}
}
