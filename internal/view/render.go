package view

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"gopkg.in/yaml.v3"
	"philcali.me/recipebook/internal/controller"
	"philcali.me/recipebook/internal/data"
)

const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

func RecipeTable(recipes []data.Recipe, styles Styles) string {
	rows := make([][]string, len(recipes))
	for i, recipe := range recipes {
		rows[i] = []string{recipe.Recipe, recipe.Ingredients, recipe.Cuisine, recipe.Id}
	}
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(styles.Border).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styles.Header
			}
			return styles.Cell
		}).
		Headers("Recipe", "Ingredients", "Cuisine", "ID").
		Rows(rows...).
		String()
}

// Screen draws the whole page: search, form, error line and the filtered
// table.
func Screen(w io.Writer, state controller.State, styles Styles) error {
	var b strings.Builder
	b.WriteString(styles.Title.Render("BOOK RECIPE"))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "%s %s\n", styles.Muted.Render("Search by ingredients:"), state.Search)
	if id, editing := controller.EditTarget(state.Mode); editing {
		fmt.Fprintf(&b, "%s %s\n", styles.Muted.Render("Editing:"), id)
	}
	fmt.Fprintf(&b, "%s %s\n", styles.Muted.Render("Cuisine:"), state.Draft.Cuisine)
	fmt.Fprintf(&b, "%s %s\n", styles.Muted.Render("Recipe:"), state.Draft.Recipe)
	fmt.Fprintf(&b, "%s %s\n", styles.Muted.Render("Ingredients:"), state.Draft.Ingredients)
	fmt.Fprintf(&b, "[ %s ]\n", state.SubmitLabel())
	if state.Err != nil {
		b.WriteString(styles.Error.Render(state.Err.Message))
		b.WriteString("\n")
	}
	b.WriteString(RecipeTable(state.Filtered(), styles))
	b.WriteString("\n")
	_, err := io.WriteString(w, b.String())
	return err
}

func WriteList(w io.Writer, recipes []data.Recipe, format string, styles Styles) error {
	switch format {
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(recipes)
	case FormatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(recipes); err != nil {
			return err
		}
		return encoder.Close()
	case FormatTable, "":
		_, err := fmt.Fprintln(w, RecipeTable(recipes, styles))
		return err
	}
	return fmt.Errorf("unknown format %q (valid values: table, json, yaml)", format)
}
