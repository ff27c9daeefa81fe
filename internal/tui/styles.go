package tui

import "github.com/charmbracelet/lipgloss"

// Colors defines the color palette for the TUI chrome.
// Chart colors come from the [colors] config section instead.
var Colors = struct {
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Muted     lipgloss.Color
	Error     lipgloss.Color
	Success   lipgloss.Color
	Selected  lipgloss.Color
}{
	Primary:   lipgloss.Color("#6C5CE7"), // Purple
	Secondary: lipgloss.Color("#A29BFE"), // Lavender
	Muted:     lipgloss.Color("#636E72"), // Gray
	Error:     lipgloss.Color("#D63031"), // Red
	Success:   lipgloss.Color("#00B894"), // Green
	Selected:  lipgloss.Color("#FFEAA7"), // Yellow
}

// Styles contains all the lipgloss styles for the TUI.
type Styles struct {
	// Header
	Header     lipgloss.Style
	HeaderText lipgloss.Style
	HeaderMeta lipgloss.Style

	// Chart
	RowMarker lipgloss.Style
	Dragging  lipgloss.Style

	// Help
	Help     lipgloss.Style
	HelpKey  lipgloss.Style
	HelpDesc lipgloss.Style

	// Footer
	Footer    lipgloss.Style
	FooterKey lipgloss.Style
	Status    lipgloss.Style

	// Dialog
	Dialog      lipgloss.Style
	DialogTitle lipgloss.Style

	// Input
	InputPrompt       lipgloss.Style
	InputPromptActive lipgloss.Style

	// Error
	ErrorMsg lipgloss.Style
}

// DefaultStyles returns the default styles for the TUI.
func DefaultStyles() Styles {
	return Styles{
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Primary),

		HeaderText: lipgloss.NewStyle().
			Bold(true),

		HeaderMeta: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		RowMarker: lipgloss.NewStyle().
			Foreground(Colors.Selected).
			Bold(true),

		Dragging: lipgloss.NewStyle().
			Foreground(Colors.Success).
			Bold(true),

		Help: lipgloss.NewStyle().
			Padding(1, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Colors.Muted),

		HelpKey: lipgloss.NewStyle().
			Foreground(Colors.Primary).
			Bold(true),

		HelpDesc: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		Footer: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		FooterKey: lipgloss.NewStyle().
			Foreground(Colors.Primary).
			Bold(true),

		Status: lipgloss.NewStyle().
			Foreground(Colors.Secondary),

		Dialog: lipgloss.NewStyle().
			Padding(1, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Colors.Primary),

		DialogTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Primary),

		InputPrompt: lipgloss.NewStyle().
			Foreground(Colors.Muted).
			Width(12),

		InputPromptActive: lipgloss.NewStyle().
			Foreground(Colors.Primary).
			Bold(true).
			Width(12),

		ErrorMsg: lipgloss.NewStyle().
			Foreground(Colors.Error).
			Bold(true),
	}
}
