package mealdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"philcali.me/recipebook/internal/exceptions"
)

const DefaultBaseURL = "https://themealdb.com/api/json"

type MealAPI struct {
	BaseURL string
	Version string
	Token   string
	Client  *http.Client
}

type MealProvider interface {
	Random(ctx context.Context) ([]Meal, error)
	Lookup(ctx context.Context, id string) ([]Meal, error)
	Search(ctx context.Context, text string) ([]Meal, error)
}

func _apiRequest(ctx context.Context, mc *MealAPI, resource string, params url.Values) ([]byte, error) {
	target := fmt.Sprintf("%s/%s/%s/%s.php", mc.BaseURL, mc.Version, mc.Token, resource)
	if len(params) > 0 {
		target += "?" + params.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, err
	}
	resp, err := mc.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, exceptions.Status(http.MethodGet, target, resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

func _queryRequest(ctx context.Context, mc *MealAPI, resource string, params url.Values) ([]Meal, error) {
	body, err := _apiRequest(ctx, mc, resource, params)
	if err != nil {
		return nil, err
	}
	var query QueryResponse
	if err := json.Unmarshal(body, &query); err != nil {
		return nil, err
	}
	if query.Meals == nil {
		return make([]Meal, 0), nil
	}
	return query.Meals, nil
}

func (mc *MealAPI) Random(ctx context.Context) ([]Meal, error) {
	return _queryRequest(ctx, mc, "random", nil)
}

func (mc *MealAPI) Lookup(ctx context.Context, id string) ([]Meal, error) {
	return _queryRequest(ctx, mc, "lookup", url.Values{"i": {id}})
}

func (mc *MealAPI) Search(ctx context.Context, text string) ([]Meal, error) {
	return _queryRequest(ctx, mc, "search", url.Values{"s": {text}})
}

func NewMealClient(baseURL string, version string, token string, client *http.Client) MealProvider {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if client == nil {
		client = &http.Client{}
	}
	return &MealAPI{
		BaseURL: baseURL,
		Version: version,
		Token:   token,
		Client:  client,
	}
}
