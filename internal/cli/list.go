package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"timetally/internal/app"
	"timetally/internal/tui"
	"timetally/internal/usecase"
)

// newListCommand creates the list command group.
func newListCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Manage task lists",
	}
	cmd.AddCommand(
		newListAddCommand(c),
		newListRenameCommand(c),
		newListRmCommand(c),
		newListMoveCommand(c),
		newListSelectCommand(c),
		newListShowCommand(c),
	)
	return cmd
}

func newListAddCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "add <name>",
		Short: "Create a list and make it active",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.AddListUseCase().Execute(cmd.Context(), usecase.AddListInput{Name: args[0]}); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created list %q\n", args[0])
			return nil
		},
	}
}

func newListRenameCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "rename <from> <to>",
		Short: "Rename a list",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.RenameListUseCase().Execute(cmd.Context(), usecase.RenameListInput{From: args[0], To: args[1]})
		},
	}
}

func newListRmCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <name>",
		Short: "Delete a list and its tasks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.DeleteListUseCase().Execute(cmd.Context(), usecase.DeleteListInput{Name: args[0]}); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted list %q\n", args[0])
			return nil
		},
	}
}

func newListMoveCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "move <from> <to>",
		Short: "Move a list to another position in the tab order",
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
			return c.MoveListUseCase().Execute(cmd.Context(), usecase.MoveListInput{From: from, To: to})
		},
	}
}

func newListSelectCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "select <name>",
		Short: "Switch the active list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.SelectListUseCase().Execute(cmd.Context(), usecase.SelectListInput{Name: args[0]})
		},
	}
}

func newListShowCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show all lists",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			snap := c.Store.Snapshot()
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tTASKS\tTOTAL\tACTIVE")
			for _, name := range snap.ListOrder {
				list := snap.Lists[name]
				var total float64
				for _, task := range list.Tasks {
					if task.Enabled {
						total += float64(task.Duration)
					}
				}
				active := ""
				if name == snap.ActiveList {
					active = "*"
				}
				fmt.Fprintf(w, "%s\t%d\t%s\t%s\n", name, len(list.Tasks), tui.FormatClock(total), active)
			}
			return w.Flush()
		},
	}
}
