package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/hunterjackson/todoer-sub002/task"
)

func newListCmd(app *App) *cobra.Command {
	var query string
	var savedName string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks, optionally narrowed by a filter query",
		RunE: func(cmd *cobra.Command, args []string) error {
			if savedName != "" {
				f, ok := app.Filters.SavedFilterByName(savedName)
				if !ok {
					return fmt.Errorf("no saved filter named %q", savedName)
				}
				query = f.Query
			}
			return printTasks(cmd, app, app.Filters.EvaluateQuery(query))
		},
	}
	cmd.Flags().StringVarP(&query, "filter", "f", "", "Filter query, e.g. \"today & p1\"")
	cmd.Flags().StringVar(&savedName, "saved", "", "Use a saved filter by name")
	return cmd
}

func newAddCmd(app *App) *cobra.Command {
	var (
		priority    int
		due         string
		projectName string
		labelNames  []string
		description string
		recurrence  string
	)

	cmd := &cobra.Command{
		Use:   "add CONTENT...",
		Short: "Add a task",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t := &task.Task{
				Content:     strings.Join(args, " "),
				Description: description,
				Priority:    priority,
				Recurrence:  recurrence,
			}

			if due != "" {
				d, err := parseDue(due, time.Now())
				if err != nil {
					return err
				}
				t.DueDate = &d
			}
			if projectName != "" {
				p, ok := findProject(app, projectName)
				if !ok {
					return fmt.Errorf("no project named %q (create it with: todoer project add)", projectName)
				}
				t.ProjectID = p.ID
			}
			for _, name := range labelNames {
				t.Labels = append(t.Labels, task.Label{Name: name})
			}

			if errs := task.Validate(t); len(errs) > 0 {
				return fmt.Errorf("invalid task: %s", errs[0].Message)
			}
			if err := app.Store.CreateTask(t); err != nil {
				return err
			}
			cmd.Printf("added %s\n", t.ID)
			return nil
		},
	}
	cmd.Flags().IntVarP(&priority, "priority", "p", task.DefaultPriority, "Priority 1 (highest) to 4")
	cmd.Flags().StringVar(&due, "due", "", "Due date: today, tomorrow or YYYY-MM-DD")
	cmd.Flags().StringVar(&projectName, "project", "", "Project name")
	cmd.Flags().StringArrayVarP(&labelNames, "label", "l", nil, "Label name (repeatable)")
	cmd.Flags().StringVarP(&description, "desc", "d", "", "Longer description (markdown)")
	cmd.Flags().StringVar(&recurrence, "recur", "", "Recurrence rule, e.g. \"every week\"")
	return cmd
}

func newDoneCmd(app *App) *cobra.Command {
	var reopen bool

	cmd := &cobra.Command{
		Use:   "done ID",
		Short: "Mark a task completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			if reopen {
				if !app.Store.ReopenTask(id) {
					return fmt.Errorf("task %s not found or already open", id)
				}
				cmd.Printf("reopened %s\n", id)
				return nil
			}
			if !app.Store.CompleteTask(id) {
				return fmt.Errorf("task %s not found or already completed", id)
			}
			cmd.Printf("completed %s\n", id)
			return nil
		},
	}
	cmd.Flags().BoolVar(&reopen, "undo", false, "Reopen a completed task")
	return cmd
}

func newRemoveCmd(app *App) *cobra.Command {
	var purge bool

	cmd := &cobra.Command{
		Use:   "rm ID",
		Short: "Delete a task (soft delete; --purge removes the file)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			if purge {
				if !app.Store.PurgeTask(id) {
					return fmt.Errorf("task %s not found", id)
				}
				cmd.Printf("purged %s\n", id)
				return nil
			}
			if !app.Store.DeleteTask(id) {
				return fmt.Errorf("task %s not found or already deleted", id)
			}
			cmd.Printf("deleted %s\n", id)
			return nil
		},
	}
	cmd.Flags().BoolVar(&purge, "purge", false, "Remove the task and its file entirely")
	return cmd
}

// parseDue resolves a --due value to a concrete date. Only the forms the
// command documents are accepted; anything fancier belongs to a proper
// date parser.
func parseDue(s string, now time.Time) (time.Time, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "today":
		return startOfDay(now), nil
	case "tomorrow":
		return startOfDay(now.AddDate(0, 0, 1)), nil
	}
	d, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid due date %q: use today, tomorrow or YYYY-MM-DD", s)
	}
	return d, nil
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func findProject(app *App, name string) (task.Project, bool) {
	for _, p := range app.Store.Projects() {
		if strings.EqualFold(p.Name, name) {
			return p, true
		}
	}
	return task.Project{}, false
}

// printTasks renders tasks in aligned columns
func printTasks(cmd *cobra.Command, app *App, tasks []*task.Task) error {
	if len(tasks) == 0 {
		cmd.Println("no tasks")
		return nil
	}

	projectNames := make(map[string]string)
	for _, p := range app.Store.Projects() {
		projectNames[p.ID] = p.Name
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
	for _, t := range tasks {
		due := ""
		if t.DueDate != nil {
			due = t.DueDate.Format("2006-01-02")
		}
		extras := make([]string, 0, len(t.Labels)+1)
		if name := projectNames[t.ProjectID]; name != "" {
			extras = append(extras, "#"+name)
		}
		for _, l := range t.Labels {
			extras = append(extras, "@"+l.Name)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			t.ID, task.PriorityLabel(t.Priority), due, t.Content, strings.Join(extras, " "))
	}
	return w.Flush()
}
