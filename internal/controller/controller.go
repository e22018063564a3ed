package controller

import (
	"context"
	"log/slog"
	"sync"

	"golang.org/x/exp/slices"
	"philcali.me/recipebook/internal/data"
	"philcali.me/recipebook/internal/exceptions"
	"philcali.me/recipebook/internal/notifications"
)

// Policy decides whether load and delete failures reach the error slot.
// Both are log-only by default.
type Policy struct {
	SurfaceLoadErrors   bool
	SurfaceDeleteErrors bool
}

type Option func(*Controller)

func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) {
		c.Logger = logger
	}
}

func WithNotifier(notifier notifications.Notifier) Option {
	return func(c *Controller) {
		c.Notifier = notifier
	}
}

func WithPolicy(policy Policy) Option {
	return func(c *Controller) {
		c.Policy = policy
	}
}

// Controller owns the local mirror of the remote collection along with the
// form draft, the search text and the error slot. The mutex is never held
// across a store call, so overlapping requests resolve in arrival order.
type Controller struct {
	Store    data.RecipeStore
	Notifier notifications.Notifier
	Logger   *slog.Logger
	Policy   Policy
	mutex    sync.Mutex
	state    State
}

func NewController(store data.RecipeStore, opts ...Option) *Controller {
	c := &Controller{
		Store: store,
		state: State{
			Recipes: make([]data.Recipe, 0),
			Mode:    Creating{},
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
	return c
}

func (c *Controller) Snapshot() State {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return c.state.clone()
}

func (c *Controller) Filtered() []data.Recipe {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return Filter(c.state.Recipes, c.state.Search)
}

func (c *Controller) _setError(ue *exceptions.UserError) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.state.Err = ue
}

func (c *Controller) _notify(ctx context.Context, action notifications.Action, recipe data.Recipe) {
	if c.Notifier == nil {
		return
	}
	event := notifications.ChangeEvent{Action: action, Recipe: recipe}
	if err := c.Notifier.Notify(ctx, event); err != nil {
		c.Logger.WarnContext(ctx, "failed to publish change", "action", string(action), "recipeId", recipe.Id, "error", err)
	}
}

func (c *Controller) Load(ctx context.Context) error {
	items, err := c.Store.ListRecipes(ctx)
	if err != nil {
		c.Logger.ErrorContext(ctx, "failed to load recipes", "error", err)
		if c.Policy.SurfaceLoadErrors {
			ue := exceptions.StoreFailure(exceptions.MessageLoadFailed, err)
			c._setError(ue)
			return ue
		}
		return err
	}
	// Records without an id can be neither edited nor deleted.
	recipes := slices.DeleteFunc(slices.Clone(items), func(r data.Recipe) bool {
		return r.Id == ""
	})
	if dropped := len(items) - len(recipes); dropped > 0 {
		c.Logger.WarnContext(ctx, "dropped recipes without an id", "count", dropped)
	}
	if recipes == nil {
		recipes = make([]data.Recipe, 0)
	}
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.state.Recipes = recipes
	c.Logger.DebugContext(ctx, "loaded recipes", "count", len(recipes))
	return nil
}

// Submit validates the draft and either creates a recipe or updates the
// edit target. The draft is kept as-is on any failure.
func (c *Controller) Submit(ctx context.Context, draft Draft) error {
	c.mutex.Lock()
	c.state.Draft = draft
	mode := c.state.Mode
	c.mutex.Unlock()

	input := draft.Input()
	if input.Blank() {
		ue := exceptions.Validation(exceptions.MessageRequired)
		c._setError(ue)
		return ue
	}
	if id, editing := EditTarget(mode); editing {
		return c._update(ctx, id, input)
	}
	return c._create(ctx, input)
}

func (c *Controller) _create(ctx context.Context, input data.RecipeInput) error {
	created, err := c.Store.CreateRecipe(ctx, input)
	if err == nil && created.Id == "" {
		err = exceptions.InvalidResponse("created recipe %q has no id", input.Recipe)
	}
	if err != nil {
		c.Logger.ErrorContext(ctx, "failed to create recipe", "recipe", input.Recipe, "error", err)
		ue := exceptions.StoreFailure(exceptions.MessageSaveFailed, err)
		c._setError(ue)
		return ue
	}
	c.mutex.Lock()
	c.state.Recipes = append(c.state.Recipes, created)
	c.state.Draft = Draft{}
	c.state.Err = nil
	c.mutex.Unlock()
	c._notify(ctx, notifications.Created, created)
	return nil
}

func (c *Controller) _update(ctx context.Context, id string, input data.RecipeInput) error {
	updated, err := c.Store.UpdateRecipe(ctx, id, input)
	if err != nil {
		c.Logger.ErrorContext(ctx, "failed to update recipe", "recipeId", id, "error", err)
		ue := exceptions.StoreFailure(exceptions.MessageSaveFailed, err)
		c._setError(ue)
		return ue
	}
	if updated.Id == "" {
		updated.Id = id
	}
	c.mutex.Lock()
	for i, recipe := range c.state.Recipes {
		if recipe.Id == id {
			c.state.Recipes[i] = updated
		}
	}
	c.state.Mode = Creating{}
	c.state.Err = nil
	c.mutex.Unlock()
	c._notify(ctx, notifications.Updated, updated)
	return nil
}

// BeginEdit copies the record into the draft and targets it for the next
// submission. Unknown ids are ignored.
func (c *Controller) BeginEdit(id string) bool {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	recipe, ok := c.state.Find(id)
	if !ok {
		return false
	}
	c.state.Draft = DraftOf(recipe)
	c.state.Mode = Editing{Id: id}
	return true
}

// CancelEdit abandons an edit in progress and clears the draft.
func (c *Controller) CancelEdit() {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	if _, editing := EditTarget(c.state.Mode); !editing {
		return
	}
	c.state.Mode = Creating{}
	c.state.Draft = Draft{}
}

func (c *Controller) Delete(ctx context.Context, id string) error {
	if err := c.Store.DeleteRecipe(ctx, id); err != nil {
		c.Logger.ErrorContext(ctx, "failed to delete recipe", "recipeId", id, "error", err)
		if c.Policy.SurfaceDeleteErrors {
			ue := exceptions.StoreFailure(exceptions.MessageDelFailed, err)
			c._setError(ue)
			return ue
		}
		return err
	}
	c.mutex.Lock()
	removed, _ := c.state.Find(id)
	c.state.Recipes = slices.DeleteFunc(c.state.Recipes, func(r data.Recipe) bool {
		return r.Id == id
	})
	if target, editing := EditTarget(c.state.Mode); editing && target == id {
		c.state.Mode = Creating{}
		c.state.Draft = Draft{}
	}
	c.mutex.Unlock()
	if removed.Id == "" {
		removed.Id = id
	}
	c._notify(ctx, notifications.Deleted, removed)
	return nil
}

func (c *Controller) SetSearch(text string) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.state.Search = text
}
