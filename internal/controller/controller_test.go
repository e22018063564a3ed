package controller

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"philcali.me/recipebook/internal/data"
	"philcali.me/recipebook/internal/exceptions"
	"philcali.me/recipebook/internal/notifications"
)

type LocalStore struct {
	Records []data.Recipe
	Calls   []string
	Fail    map[string]error
	NextId  int
	// Echo overrides the record returned by create and update.
	Echo *data.Recipe
}

func (ls *LocalStore) _call(name string) error {
	ls.Calls = append(ls.Calls, name)
	return ls.Fail[name]
}

func (ls *LocalStore) ListRecipes(ctx context.Context) ([]data.Recipe, error) {
	if err := ls._call("list"); err != nil {
		return nil, err
	}
	return append([]data.Recipe{}, ls.Records...), nil
}

func (ls *LocalStore) CreateRecipe(ctx context.Context, input data.RecipeInput) (data.Recipe, error) {
	if err := ls._call("create"); err != nil {
		return data.Recipe{}, err
	}
	if ls.Echo != nil {
		return *ls.Echo, nil
	}
	ls.NextId++
	created := data.Recipe{
		Id:          fmt.Sprintf("%d", ls.NextId),
		Recipe:      input.Recipe,
		Ingredients: input.Ingredients,
		Cuisine:     input.Cuisine,
	}
	ls.Records = append(ls.Records, created)
	return created, nil
}

func (ls *LocalStore) UpdateRecipe(ctx context.Context, recipeId string, input data.RecipeInput) (data.Recipe, error) {
	if err := ls._call("update " + recipeId); err != nil {
		return data.Recipe{}, err
	}
	if ls.Echo != nil {
		return *ls.Echo, nil
	}
	updated := data.Recipe{
		Id:          recipeId,
		Recipe:      input.Recipe,
		Ingredients: input.Ingredients,
		Cuisine:     input.Cuisine,
	}
	for i, record := range ls.Records {
		if record.Id == recipeId {
			ls.Records[i] = updated
		}
	}
	return updated, nil
}

func (ls *LocalStore) DeleteRecipe(ctx context.Context, recipeId string) error {
	return ls._call("delete " + recipeId)
}

type LocalNotifier struct {
	Events []notifications.ChangeEvent
	Err    error
}

func (ln *LocalNotifier) Notify(ctx context.Context, event notifications.ChangeEvent) error {
	ln.Events = append(ln.Events, event)
	return ln.Err
}

var soup = data.Recipe{Id: "1", Recipe: "Soup", Ingredients: "carrot, water", Cuisine: "French"}

func newLoaded(t *testing.T, store *LocalStore, opts ...Option) *Controller {
	opts = append([]Option{WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))}, opts...)
	c := NewController(store, opts...)
	if err := c.Load(context.Background()); err != nil {
		t.Fatalf("Failed to load: %v", err)
	}
	return c
}

func TestController(t *testing.T) {
	ctx := context.Background()

	t.Run("InitialLoad", func(t *testing.T) {
		c := newLoaded(t, &LocalStore{Records: []data.Recipe{soup}, NextId: 1})
		filtered := c.Filtered()
		if len(filtered) != 1 || filtered[0] != soup {
			t.Fatalf("Expected only the soup row, but got %v", filtered)
		}
		if c.Snapshot().SubmitLabel() != "Add Recipe" {
			t.Fatalf("Expected create mode, but got %v", c.Snapshot().Mode)
		}
	})

	t.Run("LoadFailureIsLogOnly", func(t *testing.T) {
		store := &LocalStore{Fail: map[string]error{"list": errors.New("offline")}}
		c := NewController(store, WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
		if err := c.Load(ctx); err == nil {
			t.Fatalf("Expected the load error to be returned")
		}
		state := c.Snapshot()
		if len(state.Recipes) != 0 || state.Err != nil {
			t.Fatalf("Expected an empty collection and no error, got %v", state)
		}
	})

	t.Run("LoadFailureSurfaced", func(t *testing.T) {
		store := &LocalStore{Fail: map[string]error{"list": errors.New("offline")}}
		c := NewController(store, WithPolicy(Policy{SurfaceLoadErrors: true}))
		c.Load(ctx)
		state := c.Snapshot()
		if state.Err == nil || state.Err.Message != exceptions.MessageLoadFailed || state.Err.Kind != exceptions.KindStoreFailure {
			t.Fatalf("Expected a load failure in the error slot, got %v", state.Err)
		}
	})

	t.Run("Search", func(t *testing.T) {
		c := newLoaded(t, &LocalStore{Records: []data.Recipe{soup}, NextId: 1})
		for _, search := range []string{"carrot", "CARROT", "Water"} {
			c.SetSearch(search)
			if filtered := c.Filtered(); len(filtered) != 1 {
				t.Fatalf("Expected %q to match the soup, got %v", search, filtered)
			}
		}
		c.SetSearch("pepper")
		if filtered := c.Filtered(); len(filtered) != 0 {
			t.Fatalf("Expected no matches, got %v", filtered)
		}
		c.SetSearch("   ")
		if filtered := c.Filtered(); len(filtered) != 1 {
			t.Fatalf("Expected blank search to keep everything, got %v", filtered)
		}
	})

	t.Run("Create", func(t *testing.T) {
		notifier := &LocalNotifier{}
		c := newLoaded(t, &LocalStore{Records: []data.Recipe{soup}, NextId: 1}, WithNotifier(notifier))
		c._setError(exceptions.Validation(exceptions.MessageRequired))
		err := c.Submit(ctx, Draft{Recipe: "Cake", Ingredients: "flour, sugar"})
		if err != nil {
			t.Fatalf("Expected no error, but got %v", err)
		}
		state := c.Snapshot()
		if len(state.Recipes) != 2 {
			t.Fatalf("Expected two recipes, but got %v", state.Recipes)
		}
		expected := data.Recipe{Id: "2", Recipe: "Cake", Ingredients: "flour, sugar"}
		if state.Recipes[1] != expected {
			t.Fatalf("Expected %v, but got %v", expected, state.Recipes[1])
		}
		if state.Draft != (Draft{}) {
			t.Fatalf("Expected the draft to reset, but got %v", state.Draft)
		}
		if state.Err != nil {
			t.Fatalf("Expected the error to clear, but got %v", state.Err)
		}
		if len(notifier.Events) != 1 || notifier.Events[0].Action != notifications.Created {
			t.Fatalf("Expected a created event, got %v", notifier.Events)
		}
	})

	t.Run("CreateFailureKeepsDraft", func(t *testing.T) {
		store := &LocalStore{Records: []data.Recipe{soup}, Fail: map[string]error{"create": errors.New("500")}}
		c := newLoaded(t, store)
		draft := Draft{Recipe: "Cake", Ingredients: "flour"}
		err := c.Submit(ctx, draft)
		var ue *exceptions.UserError
		if !errors.As(err, &ue) || ue.Kind != exceptions.KindStoreFailure {
			t.Fatalf("Expected a store failure, but got %v", err)
		}
		state := c.Snapshot()
		if state.Err.Message != exceptions.MessageSaveFailed {
			t.Fatalf("Unexpected message %s", state.Err.Message)
		}
		if state.Draft != draft || len(state.Recipes) != 1 {
			t.Fatalf("Expected draft and collection untouched, got %v", state)
		}
	})

	t.Run("CreateWithoutId", func(t *testing.T) {
		store := &LocalStore{Echo: &data.Recipe{Recipe: "Cake", Ingredients: "flour"}}
		c := newLoaded(t, store)
		c.Submit(ctx, Draft{Recipe: "Cake", Ingredients: "flour"})
		state := c.Snapshot()
		if len(state.Recipes) != 0 || state.Err == nil || state.Err.Kind != exceptions.KindStoreFailure {
			t.Fatalf("Expected the id-less record to be rejected, got %v", state)
		}
	})

	t.Run("Validation", func(t *testing.T) {
		drafts := []Draft{
			{Recipe: "", Ingredients: "flour"},
			{Recipe: "Cake", Ingredients: ""},
			{Recipe: "  ", Ingredients: "flour"},
			{Recipe: "Cake", Ingredients: "\t\n"},
		}
		for _, draft := range drafts {
			store := &LocalStore{Records: []data.Recipe{soup}}
			c := newLoaded(t, store)
			calls := len(store.Calls)
			err := c.Submit(ctx, draft)
			var ue *exceptions.UserError
			if !errors.As(err, &ue) || ue.Kind != exceptions.KindValidation {
				t.Fatalf("Expected a validation error for %v, got %v", draft, err)
			}
			if len(store.Calls) != calls {
				t.Fatalf("Expected no store call for %v, got %v", draft, store.Calls)
			}
			state := c.Snapshot()
			if state.Err.Message != "Recipe and Ingredients are required" || len(state.Recipes) != 1 {
				t.Fatalf("Unexpected state %v", state)
			}
		}
	})

	t.Run("LatestErrorWins", func(t *testing.T) {
		store := &LocalStore{Fail: map[string]error{"create": errors.New("500")}}
		c := newLoaded(t, store)
		c.Submit(ctx, Draft{})
		c.Submit(ctx, Draft{Recipe: "Cake", Ingredients: "flour"})
		if c.Snapshot().Err.Message != exceptions.MessageSaveFailed {
			t.Fatalf("Expected the save failure to replace validation, got %v", c.Snapshot().Err)
		}
		c.Submit(ctx, Draft{})
		if c.Snapshot().Err.Kind != exceptions.KindValidation {
			t.Fatalf("Expected validation to replace the save failure, got %v", c.Snapshot().Err)
		}
	})

	t.Run("EditAndUpdate", func(t *testing.T) {
		notifier := &LocalNotifier{}
		store := &LocalStore{Records: []data.Recipe{soup, {Id: "2", Recipe: "Cake", Ingredients: "flour"}}, NextId: 2}
		c := newLoaded(t, store, WithNotifier(notifier))
		if !c.BeginEdit("1") {
			t.Fatalf("Expected to find recipe 1")
		}
		state := c.Snapshot()
		if state.Draft != DraftOf(soup) {
			t.Fatalf("Expected draft %v, but got %v", DraftOf(soup), state.Draft)
		}
		if id, ok := EditTarget(state.Mode); !ok || id != "1" || state.SubmitLabel() != "Update Recipe" {
			t.Fatalf("Expected to edit 1, but got %v", state.Mode)
		}
		draft := state.Draft
		draft.Ingredients = "carrot, leek"
		if err := c.Submit(ctx, draft); err != nil {
			t.Fatalf("Expected no error, but got %v", err)
		}
		state = c.Snapshot()
		if len(state.Recipes) != 2 {
			t.Fatalf("Expected length unchanged, but got %v", state.Recipes)
		}
		if state.Recipes[0].Ingredients != "carrot, leek" || state.Recipes[0].Id != "1" {
			t.Fatalf("Expected the soup to be updated, got %v", state.Recipes[0])
		}
		if _, editing := EditTarget(state.Mode); editing {
			t.Fatalf("Expected create mode after update, got %v", state.Mode)
		}
		if store.Calls[len(store.Calls)-1] != "update 1" {
			t.Fatalf("Expected an update call, got %v", store.Calls)
		}
		if len(notifier.Events) != 1 || notifier.Events[0].Action != notifications.Updated {
			t.Fatalf("Expected an updated event, got %v", notifier.Events)
		}
	})

	t.Run("UpdateUsesStoreRepresentation", func(t *testing.T) {
		store := &LocalStore{Records: []data.Recipe{soup}, Echo: &data.Recipe{Recipe: "Potage", Ingredients: "leek", Cuisine: "French"}}
		c := newLoaded(t, store)
		c.BeginEdit("1")
		c.Submit(ctx, Draft{Recipe: "Soup", Ingredients: "leek"})
		recipe, _ := c.Snapshot().Find("1")
		if recipe.Recipe != "Potage" || recipe.Id != "1" {
			t.Fatalf("Expected the store response with the edited id, got %v", recipe)
		}
	})

	t.Run("UpdateFailureStaysEditing", func(t *testing.T) {
		store := &LocalStore{Records: []data.Recipe{soup}, Fail: map[string]error{"update 1": errors.New("500")}}
		c := newLoaded(t, store)
		c.BeginEdit("1")
		c.Submit(ctx, Draft{Recipe: "Soup", Ingredients: "leek"})
		state := c.Snapshot()
		if id, ok := EditTarget(state.Mode); !ok || id != "1" {
			t.Fatalf("Expected to still edit 1, got %v", state.Mode)
		}
		if state.Err == nil || state.Err.Message != exceptions.MessageSaveFailed {
			t.Fatalf("Expected a save failure, got %v", state.Err)
		}
		if state.Recipes[0] != soup {
			t.Fatalf("Expected the soup unchanged, got %v", state.Recipes[0])
		}
	})

	t.Run("BeginEditUnknown", func(t *testing.T) {
		c := newLoaded(t, &LocalStore{Records: []data.Recipe{soup}})
		c.Submit(ctx, Draft{Recipe: "partial"})
		before := c.Snapshot()
		if c.BeginEdit("missing") {
			t.Fatalf("Expected missing id to be ignored")
		}
		after := c.Snapshot()
		if after.Draft != before.Draft || after.Mode != before.Mode {
			t.Fatalf("Expected no change, got %v", after)
		}
	})

	t.Run("CancelEdit", func(t *testing.T) {
		c := newLoaded(t, &LocalStore{Records: []data.Recipe{soup}})
		c.BeginEdit("1")
		c.CancelEdit()
		state := c.Snapshot()
		if _, editing := EditTarget(state.Mode); editing || state.Draft != (Draft{}) {
			t.Fatalf("Expected a clean create mode, got %v", state)
		}
	})

	t.Run("Delete", func(t *testing.T) {
		notifier := &LocalNotifier{Err: errors.New("sns down")}
		store := &LocalStore{Records: []data.Recipe{soup, {Id: "2", Recipe: "Cake", Ingredients: "flour"}}}
		c := newLoaded(t, store, WithNotifier(notifier))
		if err := c.Delete(ctx, "2"); err != nil {
			t.Fatalf("Expected no error, but got %v", err)
		}
		state := c.Snapshot()
		if len(state.Recipes) != 1 {
			t.Fatalf("Expected one recipe left, got %v", state.Recipes)
		}
		if _, found := state.Find("2"); found {
			t.Fatalf("Expected recipe 2 to be gone")
		}
		if len(notifier.Events) != 1 || notifier.Events[0].Recipe.Recipe != "Cake" {
			t.Fatalf("Expected a deleted event for the cake, got %v", notifier.Events)
		}
		if state.Err != nil {
			t.Fatalf("Expected notifier failure to stay out of the error slot, got %v", state.Err)
		}
	})

	t.Run("DeleteEditTarget", func(t *testing.T) {
		c := newLoaded(t, &LocalStore{Records: []data.Recipe{soup}})
		c.BeginEdit("1")
		c.Delete(ctx, "1")
		if _, editing := EditTarget(c.Snapshot().Mode); editing {
			t.Fatalf("Expected create mode after deleting the edit target")
		}
	})

	t.Run("DeleteFailureIsLogOnly", func(t *testing.T) {
		cake := data.Recipe{Id: "2", Recipe: "Cake", Ingredients: "flour"}
		store := &LocalStore{Records: []data.Recipe{soup, cake}, Fail: map[string]error{"delete 2": errors.New("500")}}
		c := newLoaded(t, store)
		c._setError(exceptions.Validation(exceptions.MessageRequired))
		if err := c.Delete(ctx, "2"); err == nil {
			t.Fatalf("Expected the delete error to be returned")
		}
		state := c.Snapshot()
		if _, found := state.Find("2"); !found {
			t.Fatalf("Expected recipe 2 to remain")
		}
		if state.Err.Kind != exceptions.KindValidation {
			t.Fatalf("Expected the error slot unchanged, got %v", state.Err)
		}
	})

	t.Run("DeleteFailureSurfaced", func(t *testing.T) {
		store := &LocalStore{Records: []data.Recipe{soup}, Fail: map[string]error{"delete 1": errors.New("500")}}
		c := newLoaded(t, store, WithPolicy(Policy{SurfaceDeleteErrors: true}))
		c.Delete(ctx, "1")
		state := c.Snapshot()
		if state.Err == nil || state.Err.Message != exceptions.MessageDelFailed {
			t.Fatalf("Expected a delete failure, got %v", state.Err)
		}
		if len(state.Recipes) != 1 {
			t.Fatalf("Expected the collection unchanged, got %v", state.Recipes)
		}
	})

	t.Run("SnapshotIsACopy", func(t *testing.T) {
		c := newLoaded(t, &LocalStore{Records: []data.Recipe{soup}})
		state := c.Snapshot()
		state.Recipes[0].Recipe = "mutated"
		if recipe, _ := c.Snapshot().Find("1"); recipe.Recipe != "Soup" {
			t.Fatalf("Expected internal state untouched, got %v", recipe)
		}
	})

	t.Run("LoadDropsRecordsWithoutId", func(t *testing.T) {
		anonymous := data.Recipe{Recipe: "Bread", Ingredients: "flour, yeast"}
		c := newLoaded(t, &LocalStore{Records: []data.Recipe{anonymous, soup}})
		state := c.Snapshot()
		if len(state.Recipes) != 1 || state.Recipes[0] != soup {
			t.Fatalf("Expected only the soup row, but got %v", state.Recipes)
		}
		if c.BeginEdit("") {
			t.Fatalf("Expected no record to answer to an empty id")
		}
	})

	t.Run("DraftOfCopiesFields", func(t *testing.T) {
		draft := DraftOf(data.Recipe{Id: "7", Recipe: "Stew", Ingredients: "beef, wine", Cuisine: "French"})
		expected := Draft{Recipe: "Stew", Ingredients: "beef, wine", Cuisine: "French"}
		if draft != expected {
			t.Fatalf("Expected %v, but got %v", expected, draft)
		}
	})
}
