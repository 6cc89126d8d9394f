// Package cli provides the command-line interface for timetally.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"timetally/internal/app"
	"timetally/internal/tui"
)

// Command group IDs.
const (
	groupTasks = "tasks"
	groupLists = "lists"
	groupData  = "data"
)

// launchTUIFunc is a function variable for launching the TUI, allowing
// it to be mocked in tests.
var launchTUIFunc = tui.Run

// NewRootCommand creates the root command for timetally.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "timetally",
		Short: "Timed task playlists with audio notifications",
		Long: `timetally runs ordered lists of timed tasks as countdown playlists.
Tasks announce themselves when they start, beep when they finish, and
media links embedded in task names are played along with the countdown.

Running timetally without arguments opens the interactive TUI.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if c == nil || c.Settings == nil {
				return
			}
			for _, w := range c.Settings.Warnings {
				fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", w)
			}
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			return launchTUIFunc(c)
		},
	}

	root.AddGroup(
		&cobra.Group{ID: groupTasks, Title: "Task Management:"},
		&cobra.Group{ID: groupLists, Title: "List Management:"},
		&cobra.Group{ID: groupData, Title: "Data:"},
	)

	taskCmd := newTaskCommand(c)
	taskCmd.GroupID = groupTasks

	listCmd := newListCommand(c)
	listCmd.GroupID = groupLists

	configCmd := newConfigCommand(c)
	configCmd.GroupID = groupLists

	exportCmd := newExportCommand(c)
	exportCmd.GroupID = groupData

	importCmd := newImportCommand(c)
	importCmd.GroupID = groupData

	runCmd := newRunCommand(c)
	runCmd.GroupID = groupTasks

	root.AddCommand(taskCmd, listCmd, configCmd, exportCmd, importCmd, runCmd)
	return root
}
