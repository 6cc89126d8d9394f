package cli

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"timetally/internal/app"
	"timetally/internal/tui"
	"timetally/internal/usecase"
)

// newTaskCommand creates the task command group.
func newTaskCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks in a list",
	}
	cmd.AddCommand(
		newTaskAddCommand(c),
		newTaskEditCommand(c),
		newTaskRmCommand(c),
		newTaskMoveCommand(c),
		newTaskToggleCommand(c),
		newTaskListCommand(c),
	)
	return cmd
}

func newTaskAddCommand(c *app.Container) *cobra.Command {
	var opts struct {
		List     string
		From     string
		Duration int
	}

	cmd := &cobra.Command{
		Use:   "add [name]",
		Short: "Add a task, or bulk-add tasks from a YAML file",
		Long: `Add a task to a list.

A YouTube link in the task name attaches that video to the task; it is
played while the task counts down.

Examples:
  timetally task add "Warmup" --duration 300
  timetally task add "Stretch https://youtu.be/dQw4w9WgXcQ" -t 120
  timetally task add --from tasks.yaml

File format for --from:
  tasks:
    - name: Warmup
      duration: 300
    - name: Plank
      duration: 60
      enabled: false`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.From != "" {
				content, err := os.ReadFile(opts.From)
				if err != nil {
					return fmt.Errorf("read task file: %w", err)
				}
				out, err := c.AddTasksFromFileUseCase().Execute(cmd.Context(), usecase.AddTasksFromFileInput{
					Content: string(content),
					List:    opts.List,
				})
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Added %d tasks\n", len(out.Tasks))
				return nil
			}

			if len(args) == 0 {
				return fmt.Errorf("task name or --from is required")
			}
			out, err := c.AddTaskUseCase().Execute(cmd.Context(), usecase.AddTaskInput{
				List:     opts.List,
				Name:     args[0],
				Duration: opts.Duration,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added task #%d: %s (%s)\n",
				out.Index, out.Task.Name, tui.FormatClock(float64(out.Task.Duration)))
			return nil
		},
	}

	cmd.Flags().IntVarP(&opts.Duration, "duration", "t", 60, "Task duration in seconds")
	cmd.Flags().StringVarP(&opts.List, "list", "l", "", "Target list (default: active list)")
	cmd.Flags().StringVar(&opts.From, "from", "", "Create tasks from a YAML file")
	return cmd
}

func newTaskEditCommand(c *app.Container) *cobra.Command {
	var opts struct {
		List     string
		Name     string
		Duration int
	}

	cmd := &cobra.Command{
		Use:   "edit <index>",
		Short: "Edit a task's name or duration",
		Long: `Edit a task. Changing the duration resets the remaining time to the
new full duration; changing the name re-runs media link detection.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := parseIndex(args[0])
			if err != nil {
				return err
			}

			in := usecase.EditTaskInput{List: opts.List, Index: index}
			if cmd.Flags().Changed("name") {
				in.Name = &opts.Name
			}
			if cmd.Flags().Changed("duration") {
				in.Duration = &opts.Duration
			}

			out, err := c.EditTaskUseCase().Execute(cmd.Context(), in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated task #%d: %s (%s)\n",
				index, out.Task.Name, tui.FormatClock(float64(out.Task.Duration)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.Name, "name", "n", "", "New task name")
	cmd.Flags().IntVarP(&opts.Duration, "duration", "t", 0, "New duration in seconds")
	cmd.Flags().StringVarP(&opts.List, "list", "l", "", "Target list (default: active list)")
	return cmd
}

func newTaskRmCommand(c *app.Container) *cobra.Command {
	var list string

	cmd := &cobra.Command{
		Use:   "rm <index>",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := parseIndex(args[0])
			if err != nil {
				return err
			}
			if err := c.DeleteTaskUseCase().Execute(cmd.Context(), usecase.DeleteTaskInput{List: list, Index: index}); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted task #%d\n", index)
			return nil
		},
	}

	cmd.Flags().StringVarP(&list, "list", "l", "", "Target list (default: active list)")
	return cmd
}

func newTaskMoveCommand(c *app.Container) *cobra.Command {
	var list string

	cmd := &cobra.Command{
		Use:   "move <from> <to>",
		Short: "Move a task to another position",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := parseIndex(args[0])
			if err != nil {
				return err
			}
			to, err := parseIndex(args[1])
			if err != nil {
				return err
			}
			return c.MoveTaskUseCase().Execute(cmd.Context(), usecase.MoveTaskInput{List: list, From: from, To: to})
		},
	}

	cmd.Flags().StringVarP(&list, "list", "l", "", "Target list (default: active list)")
	return cmd
}

func newTaskToggleCommand(c *app.Container) *cobra.Command {
	var list string

	cmd := &cobra.Command{
		Use:   "toggle <index>",
		Short: "Enable or disable a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := parseIndex(args[0])
			if err != nil {
				return err
			}
			out, err := c.ToggleTaskUseCase().Execute(cmd.Context(), usecase.ToggleTaskInput{List: list, Index: index})
			if err != nil {
				return err
			}
			state := "disabled"
			if out.Enabled {
				state = "enabled"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Task #%d %s\n", index, state)
			return nil
		},
	}

	cmd.Flags().StringVarP(&list, "list", "l", "", "Target list (default: active list)")
	return cmd
}

func newTaskListCommand(c *app.Container) *cobra.Command {
	var list string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show the tasks of a list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			snap := c.Store.Snapshot()
			name := list
			if name == "" {
				name = snap.ActiveList
			}
			target, err := snap.ListByName(name)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "#\tNAME\tREMAINING\tDURATION\tENABLED\tMEDIA")
			for i, task := range target.Tasks {
				media := "-"
				if task.Media != nil {
					media = task.Media.ID
				}
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%v\t%s\n",
					i, task.Name,
					tui.FormatClock(task.Remaining),
					tui.FormatClock(float64(task.Duration)),
					task.Enabled, media)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVarP(&list, "list", "l", "", "Target list (default: active list)")
	return cmd
}

// parseIndex parses a zero-based task position.
func parseIndex(s string) (int, error) {
	index, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid task index %q", s)
	}
	return index, nil
}
