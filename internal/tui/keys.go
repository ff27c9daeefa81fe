package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings for the TUI.
type KeyMap struct {
	// Navigation
	Up   key.Binding
	Down key.Binding

	// Rescheduling of the selected row
	StartEarlier key.Binding
	StartLater   key.Binding
	EndEarlier   key.Binding
	EndLater     key.Binding

	// Task management
	New key.Binding

	// Form
	NextField key.Binding
	PrevField key.Binding
	Submit    key.Binding

	// General
	Help   key.Binding
	Quit   key.Binding
	Escape key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		StartEarlier: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "start -1d"),
		),
		StartLater: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "start +1d"),
		),
		EndEarlier: key.NewBinding(
			key.WithKeys("<", ","),
			key.WithHelp("<", "end -1d"),
		),
		EndLater: key.NewBinding(
			key.WithKeys(">", "."),
			key.WithHelp(">", "end +1d"),
		),
		New: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new task"),
		),
		NextField: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next field"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev field"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "create"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
	}
}

// ShortHelp returns keybindings to show in the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.StartEarlier, k.StartLater, k.EndEarlier, k.EndLater, k.New, k.Help, k.Quit}
}

// FullHelp returns keybindings for the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down}, // Navigation
		{k.StartEarlier, k.StartLater, k.EndEarlier, k.EndLater}, // Rescheduling
		{k.New, k.NextField, k.PrevField, k.Submit},              // Form
		{k.Help, k.Escape, k.Quit},                               // General
	}
}
