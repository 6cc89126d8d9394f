package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"timetally/internal/app"
	"timetally/internal/domain"
	"timetally/internal/usecase"
)

// newConfigCommand creates the config command for per-list
// notification settings.
func newConfigCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or change a list's notification settings",
	}
	cmd.AddCommand(newConfigShowCommand(c), newConfigSetCommand(c))
	return cmd
}

func newConfigShowCommand(c *app.Container) *cobra.Command {
	var list string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show notification settings",
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

			cfg := target.Config
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintf(w, "list\t%s\n", name)
			fmt.Fprintf(w, "beep\t%v\n", cfg.BeepEnabled)
			fmt.Fprintf(w, "voice\t%v\n", cfg.VoiceEnabled)
			fmt.Fprintf(w, "voice-id\t%s\n", cfg.VoiceID)
			fmt.Fprintf(w, "announce\t%s\n", cfg.AnnounceMode)
			fmt.Fprintf(w, "message\t%s\n", cfg.CustomMessage)
			return w.Flush()
		},
	}

	cmd.Flags().StringVarP(&list, "list", "l", "", "Target list (default: active list)")
	return cmd
}

func newConfigSetCommand(c *app.Container) *cobra.Command {
	var opts struct {
		List    string
		VoiceID string
		Mode    string
		Message string
		Beep    bool
		Voice   bool
	}

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change notification settings",
		Long: `Change a list's notification settings. Only flags that are given
are applied.

Announce modes:
  name_and_duration        announce task name and duration on start
  name_only                announce task name on start
  duration_only            announce duration on start
  custom_on_complete       speak a custom message when a task completes
  affirmation_on_complete  speak a random affirmation when a task completes`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in := usecase.UpdateConfigInput{List: opts.List}
			if cmd.Flags().Changed("beep") {
				in.BeepEnabled = &opts.Beep
			}
			if cmd.Flags().Changed("voice") {
				in.VoiceEnabled = &opts.Voice
			}
			if cmd.Flags().Changed("voice-id") {
				in.VoiceID = &opts.VoiceID
			}
			if cmd.Flags().Changed("announce") {
				mode := domain.AnnounceMode(opts.Mode)
				in.AnnounceMode = &mode
			}
			if cmd.Flags().Changed("message") {
				in.CustomMessage = &opts.Message
			}

			out, err := c.UpdateConfigUseCase().Execute(cmd.Context(), in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "announce=%s beep=%v voice=%v\n",
				out.Config.AnnounceMode, out.Config.BeepEnabled, out.Config.VoiceEnabled)
			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.Beep, "beep", true, "Beep when a task completes")
	cmd.Flags().BoolVar(&opts.Voice, "voice", true, "Announce tasks by voice")
	cmd.Flags().StringVar(&opts.VoiceID, "voice-id", "", "Voice identifier for speech output")
	cmd.Flags().StringVar(&opts.Mode, "announce", "", "Announce mode")
	cmd.Flags().StringVar(&opts.Message, "message", "", "Custom completion message")
	cmd.Flags().StringVarP(&opts.List, "list", "l", "", "Target list (default: active list)")
	return cmd
}
