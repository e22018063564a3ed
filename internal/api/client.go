package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"philcali.me/recipebook/internal/data"
	"philcali.me/recipebook/internal/exceptions"
)

const DefaultBaseURL = "https://silver-hummingbird-c13315.netlify.app/.netlify/functions/api/"

// RecipeAPI talks to the remote recipe store over HTTP+JSON.
type RecipeAPI struct {
	BaseURL string
	Client  *http.Client
	Logger  *slog.Logger
}

func _itemURL(ra *RecipeAPI, id string) string {
	return strings.TrimRight(ra.BaseURL, "/") + "/" + url.PathEscape(id)
}

func _apiRequest(ctx context.Context, ra *RecipeAPI, method string, target string, payload any, out any) error {
	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewReader(encoded)
	}
	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	ra.Logger.Debug("recipe store request", "method", method, "url", target)
	resp, err := ra.Client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		return exceptions.Status(method, target, resp.StatusCode)
	}
	if out == nil {
		_, err = io.Copy(io.Discard, resp.Body)
		return err
	}
	content, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(content, out); err != nil {
		return fmt.Errorf("decoding %s %s: %w", method, target, err)
	}
	return nil
}

func (ra *RecipeAPI) ListRecipes(ctx context.Context) ([]data.Recipe, error) {
	var items []data.Recipe
	if err := _apiRequest(ctx, ra, http.MethodGet, ra.BaseURL, nil, &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = make([]data.Recipe, 0)
	}
	return items, nil
}

func (ra *RecipeAPI) CreateRecipe(ctx context.Context, input data.RecipeInput) (data.Recipe, error) {
	var created data.Recipe
	err := _apiRequest(ctx, ra, http.MethodPost, ra.BaseURL, input, &created)
	return created, err
}

func (ra *RecipeAPI) UpdateRecipe(ctx context.Context, recipeId string, input data.RecipeInput) (data.Recipe, error) {
	var updated data.Recipe
	err := _apiRequest(ctx, ra, http.MethodPut, _itemURL(ra, recipeId), input, &updated)
	return updated, err
}

func (ra *RecipeAPI) DeleteRecipe(ctx context.Context, recipeId string) error {
	return _apiRequest(ctx, ra, http.MethodDelete, _itemURL(ra, recipeId), nil, nil)
}

func NewRecipeAPI(baseURL string, client *http.Client, logger *slog.Logger) data.RecipeStore {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if client == nil {
		client = &http.Client{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &RecipeAPI{
		BaseURL: baseURL,
		Client:  client,
		Logger:  logger,
	}
}
