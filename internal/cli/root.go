// Package cli provides the command-line interface for gantt.
package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/runoshun/gantt/internal/app"
	"github.com/runoshun/gantt/internal/domain"
	"github.com/runoshun/gantt/internal/tui"
)

// Command group IDs.
const (
	groupChart = "chart"
	groupSetup = "setup"
)

// launchTUIFunc is a function variable for launching the TUI, allowing it to be mocked in tests.
var launchTUIFunc = launchTUI

// newContainerFunc builds the container from flags, allowing it to be replaced in tests.
var newContainerFunc = app.New

// env carries the container from PersistentPreRunE to the subcommands.
type env struct {
	c       *app.Container
	opts    app.Config
	created bool // Container was built from flags and must be closed
}

// container returns the container prepared for the running command.
func (e *env) container() *app.Container {
	return e.c
}

// NewRootCommand creates the root command for gantt.
// A nil container is built from the --config and --tasks flags before any
// command runs; tests pass a prepared container instead.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	e := &env{c: c}

	root := &cobra.Command{
		Use:   "gantt",
		Short: "Interactive Gantt chart in the terminal",
		Long: `gantt draws tasks as bars on a date grid.

Drag the left or right handle of a bar with the mouse to move its start
or end date, and press n to add a task. Tasks are seeded from the
configuration or a YAML task file and are never written back.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if e.c != nil {
				return nil
			}
			container, err := newContainerFunc(e.opts)
			if err != nil {
				return err
			}
			e.c = container
			e.created = true

			for _, w := range container.AppConfig.Warnings {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", w)
			}
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			if !e.created {
				return nil
			}
			return e.c.Close()
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			return launchTUIFunc(e.container())
		},
	}

	root.PersistentFlags().StringVar(&e.opts.ConfigPath, "config", domain.LocalConfigName, "Local config file")
	root.PersistentFlags().StringVar(&e.opts.TasksFile, "tasks", "", "YAML task file (replaces [[tasks]] from config)")

	// Define command groups
	root.AddGroup(
		&cobra.Group{ID: groupChart, Title: "Chart Commands:"},
		&cobra.Group{ID: groupSetup, Title: "Setup Commands:"},
	)

	tuiCmd := newTUICommand(e)
	tuiCmd.GroupID = groupChart
	renderCmd := newRenderCommand(e)
	renderCmd.GroupID = groupChart
	listCmd := newListCommand(e)
	listCmd.GroupID = groupChart
	configCmd := newConfigCommand(e)
	configCmd.GroupID = groupSetup

	root.AddCommand(tuiCmd, renderCmd, listCmd, configCmd)

	return root
}

// launchTUI runs the interactive chart until the user quits.
func launchTUI(c *app.Container) error {
	p := tea.NewProgram(tui.New(c), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
