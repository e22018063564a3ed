package recipes

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"philcali.me/recipebook/internal/data"
	"philcali.me/recipebook/internal/dynamodb/services"
)

type RecipeDynamoDBService struct {
	Repository *services.RepositoryDynamoDBService[data.RecipeDTO, data.RecipeInput]
}

func (rs *RecipeDynamoDBService) ListRecipes(ctx context.Context) ([]data.Recipe, error) {
	items, err := rs.Repository.List(ctx)
	if err != nil {
		return nil, err
	}
	recipes := make([]data.Recipe, len(items))
	for i, item := range items {
		recipes[i] = item.ToRecipe()
	}
	return recipes, nil
}

func (rs *RecipeDynamoDBService) CreateRecipe(ctx context.Context, input data.RecipeInput) (data.Recipe, error) {
	created, err := rs.Repository.Create(ctx, input)
	return created.ToRecipe(), err
}

func (rs *RecipeDynamoDBService) UpdateRecipe(ctx context.Context, recipeId string, input data.RecipeInput) (data.Recipe, error) {
	updated, err := rs.Repository.Update(ctx, recipeId, input)
	return updated.ToRecipe(), err
}

func (rs *RecipeDynamoDBService) DeleteRecipe(ctx context.Context, recipeId string) error {
	return rs.Repository.Delete(ctx, recipeId)
}

func NewRecipeService(tableName string, accountId string, client services.DynamoDBAPI) data.RecipeStore {
	return &RecipeDynamoDBService{
		Repository: &services.RepositoryDynamoDBService[data.RecipeDTO, data.RecipeInput]{
			DynamoDB:  client,
			TableName: tableName,
			AccountId: accountId,
			Name:      "Recipe",
			Shim: func(pk, sk string) data.RecipeDTO {
				return data.RecipeDTO{PK: pk, SK: sk}
			},
			GetSK: func(dto data.RecipeDTO) string {
				return dto.SK
			},
			OnCreate: func(input data.RecipeInput, now time.Time, pk, sk string) data.RecipeDTO {
				return data.RecipeDTO{
					PK:          pk,
					SK:          sk,
					Recipe:      input.Recipe,
					Ingredients: input.Ingredients,
					Cuisine:     input.Cuisine,
					CreateTime:  now,
					UpdateTime:  now,
				}
			},
			// The form always sends all three fields, so all three are set.
			OnUpdate: func(input data.RecipeInput, update expression.UpdateBuilder) expression.UpdateBuilder {
				return update.
					Set(expression.Name("recipe"), expression.Value(input.Recipe)).
					Set(expression.Name("ingredients"), expression.Value(input.Ingredients)).
					Set(expression.Name("cuisine"), expression.Value(input.Cuisine))
			},
		},
	}
}
