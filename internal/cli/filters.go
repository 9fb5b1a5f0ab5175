package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/hunterjackson/todoer-sub002/task"
)

func newFilterCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "filter",
		Short: "Manage saved filters",
	}
	cmd.AddCommand(newFilterSaveCmd(app), newFilterLsCmd(app), newFilterRmCmd(app))
	return cmd
}

func newFilterSaveCmd(app *App) *cobra.Command {
	var (
		color     string
		sortOrder int
		favorite  bool
	)

	cmd := &cobra.Command{
		Use:   "save NAME QUERY",
		Short: "Save a filter query under a name",
		Long: `Save a filter query under a name. The query is stored exactly as
typed and is never validated; a malformed query simply matches everything
or nothing when run.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			f := &task.Filter{
				Name:       args[0],
				Query:      args[1],
				Color:      color,
				SortOrder:  sortOrder,
				IsFavorite: favorite,
			}
			if existing, ok := app.Filters.SavedFilterByName(f.Name); ok {
				f.ID = existing.ID
			}
			if err := app.Filters.SaveFilter(f); err != nil {
				return err
			}
			cmd.Printf("saved filter %s (%s)\n", f.Name, f.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&color, "color", "", "Display color")
	cmd.Flags().IntVar(&sortOrder, "order", 0, "Sort position in filter lists")
	cmd.Flags().BoolVar(&favorite, "favorite", false, "Mark as favorite")
	return cmd
}

func newFilterLsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "ls",
		Short: "List saved filters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			filters := app.Filters.SavedFilters()
			if len(filters) == 0 {
				cmd.Println("no saved filters")
				return nil
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
			for _, f := range filters {
				fav := ""
				if f.IsFavorite {
					fav = "*"
				}
				fmt.Fprintf(w, "%s\t%s%s\t%s\n", f.ID, f.Name, fav, f.Query)
			}
			return w.Flush()
		},
	}
}

func newFilterRmCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm NAME",
		Short: "Delete a saved filter",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, ok := app.Filters.SavedFilterByName(args[0])
			if !ok {
				return fmt.Errorf("no saved filter named %q", args[0])
			}
			if !app.Filters.DeleteFilter(f.ID) {
				return fmt.Errorf("failed to delete filter %s", f.ID)
			}
			cmd.Printf("deleted filter %s\n", f.Name)
			return nil
		},
	}
}

func newEvalCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "eval QUERY",
		Short: "Evaluate a filter query and print matches as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := app.Filters.EvaluateJSON(args[0])
			if err != nil {
				return err
			}
			cmd.Println(string(data))
			return nil
		},
	}
}
