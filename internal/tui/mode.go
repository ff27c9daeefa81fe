// Package tui provides the terminal user interface for gantt.
package tui

// Mode represents the current UI mode.
type Mode int

const (
	ModeNormal Mode = iota // Chart interaction
	ModeInput              // New task form
	ModeAlert              // Blocking error dialog
	ModeHelp               // Help overlay
)

// String returns the string representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeInput:
		return "input"
	case ModeAlert:
		return "alert"
	case ModeHelp:
		return "help"
	default:
		return "unknown"
	}
}

// IsInputMode returns true if the mode accepts text input.
func (m Mode) IsInputMode() bool {
	switch m {
	case ModeInput:
		return true
	case ModeNormal, ModeAlert, ModeHelp:
		return false
	}
	return false
}

// AcceptsPointer returns true if mouse events reach the chart in this mode.
func (m Mode) AcceptsPointer() bool {
	return m == ModeNormal
}

// FormField identifies a field of the new task form.
type FormField int

const (
	FieldName FormField = iota
	FieldStart
	FieldEnd
	formFieldCount
)

// Next returns the following field, wrapping around.
func (f FormField) Next() FormField {
	return (f + 1) % formFieldCount
}

// Prev returns the preceding field, wrapping around.
func (f FormField) Prev() FormField {
	return (f + formFieldCount - 1) % formFieldCount
}

// String returns the field label.
func (f FormField) String() string {
	switch f {
	case FieldName:
		return "Name"
	case FieldStart:
		return "Start date"
	case FieldEnd:
		return "End date"
	default:
		return "?"
	}
}
