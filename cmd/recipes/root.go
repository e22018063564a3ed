package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"philcali.me/recipebook/internal/config"
	"philcali.me/recipebook/internal/exceptions"
	"philcali.me/recipebook/internal/view"
)

type rootOptions struct {
	configPath string
	verbose    bool
	url        string
	app        *App
	// newApp is swapped in tests.
	newApp func(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error)
}

// errReported marks a failure whose message was already printed from the
// error slot.
var errReported = errors.New("operation failed")

func NewRootCommand() *cobra.Command {
	opts := &rootOptions{newApp: NewApp}
	rootCmd := &cobra.Command{
		Use:   "recipes",
		Short: "Manage a remote recipe book",
		Long: `Recipes keeps a local view of a remote recipe store.
Run without a subcommand to open the interactive book, or use the
subcommands to list, add, edit, delete and import recipes.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}
			if opts.url != "" {
				cfg.API.URL = opts.url
			}
			level := cfg.LogLevel()
			if opts.verbose {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
			slog.SetDefault(logger)
			if cfg.File != "" {
				logger.Debug("loaded config", "file", cfg.File)
			}
			app, err := opts.newApp(commandContext(cmd), cfg, logger)
			if err != nil {
				return err
			}
			opts.app = app
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBook(commandContext(cmd), opts.app, cmd.OutOrStdout(), &huhPrompter{})
		},
	}
	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Config file (default $XDG_CONFIG_HOME/recipes/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&opts.url, "url", "", "Recipe store base URL")

	rootCmd.AddCommand(
		newListCommand(opts),
		newAddCommand(opts),
		newEditCommand(opts),
		newDeleteCommand(opts),
		newImportCommand(opts),
	)
	return rootCmd
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// reportError prints the message the failing operation put in the error
// slot and converts it to errReported. Errors that never reached the slot
// are returned unchanged.
func reportError(w io.Writer, err error) error {
	var ue *exceptions.UserError
	if !errors.As(err, &ue) {
		return err
	}
	fmt.Fprintln(w, view.StylesFor(w).Error.Render(ue.Message))
	return errReported
}
