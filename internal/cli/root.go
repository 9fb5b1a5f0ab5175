// Package cli implements the todoer command tree. Commands talk to the
// store through the filter service; all output goes to the command's
// writer so tests can capture it.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hunterjackson/todoer-sub002/config"
	"github.com/hunterjackson/todoer-sub002/internal/service"
	"github.com/hunterjackson/todoer-sub002/store"
	"github.com/hunterjackson/todoer-sub002/store/todostore"
)

// App wires the store and services behind the command tree. Tests inject
// an in-memory store; the real binary opens the file store lazily in
// PersistentPreRunE so --data-dir has been parsed by then.
type App struct {
	Store   store.Store
	Filters *service.FilterService
}

// NewRootCmd builds the todoer command tree around the given app.
// When app.Store is nil the file store is opened on first run.
func NewRootCmd(app *App) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "todoer",
		Short: "todoer is a filterable task list",
		Long: `todoer keeps tasks as markdown files and finds them with filter
queries: boolean expressions like "today & p1" or "#work & !recurring".`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}
			config.SetupLogging(cfg)

			if app.Store == nil {
				dataDir := config.EffectiveDataDir()
				s, err := todostore.NewTodoStore(dataDir)
				if err != nil {
					return fmt.Errorf("open store at %s: %w", dataDir, err)
				}
				app.Store = s
			}
			if app.Filters == nil {
				app.Filters = service.NewFilterService(app.Store)
			}
			return nil
		},
	}

	// These mirror the viper-bound flags; viper reads them from os.Args,
	// cobra owns the help text and validation.
	rootCmd.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("data-dir", "", "Directory holding tasks and catalogs")

	rootCmd.AddCommand(
		newListCmd(app),
		newAddCmd(app),
		newDoneCmd(app),
		newRemoveCmd(app),
		newProjectCmd(app),
		newLabelCmd(app),
		newFilterCmd(app),
		newEvalCmd(app),
	)
	return rootCmd
}

// Execute runs the command tree against the file-backed store
func Execute() error {
	return NewRootCmd(&App{}).Execute()
}
