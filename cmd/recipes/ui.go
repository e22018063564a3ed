package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/huh"
	"philcali.me/recipebook/internal/controller"
	"philcali.me/recipebook/internal/data"
	"philcali.me/recipebook/internal/view"
)

const (
	actionSearch = "search"
	actionSubmit = "submit"
	actionEdit   = "edit"
	actionDelete = "delete"
	actionCancel = "cancel"
	actionReload = "reload"
	actionQuit   = "quit"
)

// errSkipped is returned by a prompt the user backed out of.
var errSkipped = errors.New("prompt skipped")

// Prompter collects one user interaction at a time. Returning
// huh.ErrUserAborted from any prompt closes the book.
type Prompter interface {
	Action(state controller.State) (string, error)
	Search(current string) (string, error)
	Draft(label string, draft controller.Draft) (controller.Draft, error)
	Pick(title string, recipes []data.Recipe) (string, error)
}

type huhPrompter struct{}

func (hp *huhPrompter) Action(state controller.State) (string, error) {
	options := []huh.Option[string]{
		huh.NewOption(state.SubmitLabel(), actionSubmit),
		huh.NewOption("Search by ingredients", actionSearch),
		huh.NewOption("Edit a recipe", actionEdit),
		huh.NewOption("Delete a recipe", actionDelete),
	}
	if _, editing := controller.EditTarget(state.Mode); editing {
		options = append(options, huh.NewOption("Cancel edit", actionCancel))
	}
	options = append(options,
		huh.NewOption("Reload", actionReload),
		huh.NewOption("Quit", actionQuit),
	)
	var action string
	err := huh.NewSelect[string]().
		Title("What next?").
		Options(options...).
		Value(&action).
		Run()
	return action, err
}

func (hp *huhPrompter) Search(current string) (string, error) {
	search := current
	err := huh.NewInput().
		Title("Search by ingredients").
		Placeholder("e.g., garlic").
		Value(&search).
		Run()
	return search, err
}

func (hp *huhPrompter) Draft(label string, draft controller.Draft) (controller.Draft, error) {
	confirmed := true
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Cuisine").
				Value(&draft.Cuisine),
			huh.NewInput().
				Title("Recipe").
				Description("Required").
				Value(&draft.Recipe),
			huh.NewText().
				Title("Ingredients").
				Description("Required").
				CharLimit(5000).
				Value(&draft.Ingredients),
			huh.NewConfirm().
				Title(label+"?").
				Affirmative(label).
				Negative("Back").
				Value(&confirmed),
		),
	).WithTheme(huh.ThemeDracula())
	if err := form.Run(); err != nil {
		return draft, err
	}
	if !confirmed {
		return draft, errSkipped
	}
	return draft, nil
}

func (hp *huhPrompter) Pick(title string, recipes []data.Recipe) (string, error) {
	options := make([]huh.Option[string], 0, len(recipes))
	for _, recipe := range recipes {
		options = append(options, huh.NewOption(fmt.Sprintf("%s (%s)", recipe.Recipe, recipe.Ingredients), recipe.Id))
	}
	var id string
	err := huh.NewSelect[string]().
		Title(title).
		Options(options...).
		Value(&id).
		Run()
	return id, err
}

// runAction applies a single user action to the controller. Store failures
// land in the error slot and are rendered on the next screen, so only prompt
// errors are returned.
func runAction(ctx context.Context, c *controller.Controller, action string, p Prompter) (bool, error) {
	state := c.Snapshot()
	switch action {
	case actionQuit:
		return true, nil
	case actionSearch:
		search, err := p.Search(state.Search)
		if err != nil {
			return false, err
		}
		c.SetSearch(search)
	case actionSubmit:
		draft, err := p.Draft(state.SubmitLabel(), state.Draft)
		if err != nil {
			return false, err
		}
		c.Submit(ctx, draft)
	case actionEdit, actionDelete:
		visible := state.Filtered()
		if len(visible) == 0 {
			return false, nil
		}
		id, err := p.Pick(fmt.Sprintf("Choose a recipe to %s", action), visible)
		if err != nil {
			return false, err
		}
		if action == actionEdit {
			c.BeginEdit(id)
		} else {
			c.Delete(ctx, id)
		}
	case actionCancel:
		c.CancelEdit()
	case actionReload:
		c.Load(ctx)
	default:
		return false, fmt.Errorf("unknown action %q", action)
	}
	return false, nil
}

// runBook loads the collection once and then alternates between rendering
// the screen and prompting for the next action until the user quits.
func runBook(ctx context.Context, app *App, out io.Writer, p Prompter) error {
	c := app.Controller
	c.Load(ctx)
	styles := view.StylesFor(out)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := view.Screen(out, c.Snapshot(), styles); err != nil {
			return err
		}
		action, err := p.Action(c.Snapshot())
		if err == nil {
			var quit bool
			quit, err = runAction(ctx, c, action, p)
			if quit {
				return nil
			}
		}
		if errors.Is(err, huh.ErrUserAborted) {
			return nil
		}
		if errors.Is(err, errSkipped) {
			continue
		}
		if err != nil {
			return err
		}
	}
}
