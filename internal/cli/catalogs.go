package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newProjectCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage projects",
	}

	var color string
	addCmd := &cobra.Command{
		Use:   "add NAME",
		Short: "Create a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.Store.CreateProject(args[0], color)
			if err != nil {
				return err
			}
			cmd.Printf("added project %s (%s)\n", p.Name, p.ID)
			return nil
		},
	}
	addCmd.Flags().StringVar(&color, "color", "", "Display color")

	lsCmd := &cobra.Command{
		Use:   "ls",
		Short: "List projects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			projects := app.Store.Projects()
			if len(projects) == 0 {
				cmd.Println("no projects")
				return nil
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
			for _, p := range projects {
				fmt.Fprintf(w, "%s\t#%s\t%s\n", p.ID, p.Name, p.Color)
			}
			return w.Flush()
		},
	}

	cmd.AddCommand(addCmd, lsCmd)
	return cmd
}

func newLabelCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "label",
		Short: "Manage labels",
	}

	var color string
	addCmd := &cobra.Command{
		Use:   "add NAME",
		Short: "Create a label",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := app.Store.CreateLabel(args[0], color)
			if err != nil {
				return err
			}
			cmd.Printf("added label %s (%s)\n", l.Name, l.ID)
			return nil
		},
	}
	addCmd.Flags().StringVar(&color, "color", "", "Display color")

	lsCmd := &cobra.Command{
		Use:   "ls",
		Short: "List labels",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			labels := app.Store.Labels()
			if len(labels) == 0 {
				cmd.Println("no labels")
				return nil
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
			for _, l := range labels {
				fmt.Fprintf(w, "%s\t@%s\t%s\n", l.ID, l.Name, l.Color)
			}
			return w.Flush()
		},
	}

	cmd.AddCommand(addCmd, lsCmd)
	return cmd
}
