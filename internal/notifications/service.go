package notifications

import (
	"context"
	"fmt"
	"log/slog"

	"philcali.me/recipebook/internal/data"
)

type Action string

const (
	Created Action = "created"
	Updated Action = "updated"
	Deleted Action = "deleted"
)

type ChangeEvent struct {
	Action Action
	Recipe data.Recipe
}

// Message renders the event the same way regardless of the channel it is
// delivered on.
func (ce ChangeEvent) Message() string {
	return fmt.Sprintf("Recipe %s (%s) was %s", ce.Recipe.Id, ce.Recipe.Recipe, ce.Action)
}

type Notifier interface {
	Notify(ctx context.Context, event ChangeEvent) error
}

type LogNotifier struct {
	Logger *slog.Logger
}

func (ln *LogNotifier) Notify(ctx context.Context, event ChangeEvent) error {
	ln.Logger.InfoContext(ctx, event.Message(), "action", string(event.Action), "recipeId", event.Recipe.Id)
	return nil
}

func NewLogNotifier(logger *slog.Logger) Notifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogNotifier{
		Logger: logger,
	}
}
