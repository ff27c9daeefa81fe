package cli

import "github.com/spf13/cobra"

// newTUICommand creates the tui command for launching the interactive TUI.
// This is the same as running `gantt` without arguments.
func newTUICommand(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Launch interactive chart",
		Long: `Launch the interactive chart.

Mouse:
  drag a bar's left handle   move its start date
  drag a bar's right handle  move its end date

Keys:
  n        add a task
  j/k      select a row
  [ / ]    move the selected start date by one day
  < / >    move the selected end date by one day
  ?        help
  q        quit`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return launchTUIFunc(e.container())
		},
	}
}
