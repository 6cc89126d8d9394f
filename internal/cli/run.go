package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"timetally/internal/app"
	"timetally/internal/scheduler"
	"timetally/internal/tui"
	"timetally/internal/usecase"
)

// newRunCommand creates the headless run command: start the active
// list's queue and block until it finishes or the process is
// interrupted.
func newRunCommand(c *app.Container) *cobra.Command {
	var list string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the queue without the TUI",
		Long: `Start the active list's countdown queue and block until every
enabled task has completed or the process is interrupted. Remote
changes from other instances are picked up while running.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			c.StartWatcher(ctx)

			if list != "" {
				if err := c.SelectListUseCase().Execute(ctx, usecase.SelectListInput{Name: list}); err != nil {
					return err
				}
			}

			if err := c.Scheduler.Start(); err != nil {
				return err
			}

			ticker := time.NewTicker(time.Second)
			defer ticker.Stop()
			for {
				select {
				case <-ctx.Done():
					c.Scheduler.Pause()
					fmt.Fprintln(cmd.OutOrStdout(), "interrupted")
					return nil
				case <-ticker.C:
					snap := c.Store.Snapshot()
					phase := c.Scheduler.Phase()
					if phase == scheduler.PhaseIdle {
						fmt.Fprintln(cmd.OutOrStdout(), "queue finished")
						return nil
					}
					tasks := snap.ActiveTaskList().Tasks
					if snap.ActiveTask < len(tasks) {
						task := tasks[snap.ActiveTask]
						fmt.Fprintf(cmd.OutOrStdout(), "\r%-40s %s ", task.Name, tui.FormatClock(task.Remaining))
					}
				}
			}
		},
	}

	cmd.Flags().StringVarP(&list, "list", "l", "", "List to run (default: active list)")
	return cmd
}
