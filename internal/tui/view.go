package tui

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/runoshun/gantt/internal/domain"
	"github.com/runoshun/gantt/internal/usecase"
)

// View renders the model.
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var body string
	switch m.mode {
	case ModeHelp:
		body = m.place(m.viewHelp())
	case ModeInput:
		body = m.place(m.viewForm())
	case ModeAlert:
		body = m.place(m.viewAlert())
	case ModeNormal:
		body = m.viewChart()
	}

	return strings.Join([]string{
		m.viewHeader(),
		"",
		body,
		m.viewStatus(),
		m.viewFooter(),
	}, "\n")
}

// viewHeader renders the title line with the task count and date range.
func (m *Model) viewHeader() string {
	title := m.styles.Header.Render("◆ gantt")
	out, err := m.container.ListTasksUseCase().Execute(context.Background(), usecase.ListTasksInput{})
	if err != nil || len(out.Tasks) == 0 {
		return m.fit(title + m.styles.HeaderMeta.Render("  no tasks"))
	}
	meta := fmt.Sprintf("  %d tasks · %s .. %s · drag: %s",
		len(out.Tasks), domain.FormatDate(out.MinDate), domain.FormatDate(out.MaxDate), m.controller.Mode())
	return m.fit(title + m.styles.HeaderMeta.Render(meta))
}

// viewChart renders the last frame with the row marker gutter.
func (m *Model) viewChart() string {
	_, h := m.chartSize()
	frame := strings.Split(m.frame, "\n")

	marker := -1
	if m.SelectedTask() != nil {
		layout := m.controller.Layout()
		marker = int(math.Floor(layout.RowY(m.selected) + layout.TaskHeight/2))
	}

	lines := make([]string, h)
	for i := range lines {
		gutter := "  "
		if i == marker {
			gutter = m.styles.RowMarker.Render("▶ ")
		}
		line := ""
		if i < len(frame) {
			line = frame[i]
		}
		lines[i] = gutter + line
	}
	return strings.Join(lines, "\n")
}

// viewStatus renders the drag state, the selected task or a transient status.
func (m *Model) viewStatus() string {
	if m.controller.Dragging() {
		s := m.controller.Session()
		text := fmt.Sprintf("dragging %s %s → %s", s.Task.Name, s.Edge, domain.FormatDate(s.Task.Date(s.Edge)))
		return m.fit(m.styles.Dragging.Render(text))
	}
	if m.status != "" {
		return m.fit(m.styles.Status.Render(m.status))
	}
	if task := m.SelectedTask(); task != nil {
		return m.fit(m.styles.Footer.Render(fmt.Sprintf("%s · %d days", task, task.Days())))
	}
	return ""
}

// viewFooter renders the key hints for the current mode.
func (m *Model) viewFooter() string {
	switch m.mode {
	case ModeNormal:
		return m.help.View(m.keys)
	case ModeInput, ModeAlert, ModeHelp:
		// Hints are shown in the dialogs themselves
		return ""
	}
	return ""
}

// viewForm renders the new task dialog.
func (m *Model) viewForm() string {
	title := m.styles.DialogTitle.Render("◆ New Task")

	fields := []struct {
		input string
		field FormField
	}{
		{m.nameInput.View(), FieldName},
		{m.startInput.View(), FieldStart},
		{m.endInput.View(), FieldEnd},
	}
	rows := make([]string, 0, len(fields))
	for _, f := range fields {
		prompt := m.styles.InputPrompt
		if f.field == m.field {
			prompt = m.styles.InputPromptActive
		}
		rows = append(rows, prompt.Render(f.field.String())+f.input)
	}

	hint := m.styles.FooterKey.Render("enter") + m.styles.Footer.Render(" create  ") +
		m.styles.FooterKey.Render("tab") + m.styles.Footer.Render(" next  ") +
		m.styles.FooterKey.Render("esc") + m.styles.Footer.Render(" cancel")

	content := lipgloss.JoinVertical(lipgloss.Left, title, "", strings.Join(rows, "\n"), "", hint)
	return m.styles.Dialog.Render(content)
}

// viewAlert renders the rejection dialog for a form submission.
func (m *Model) viewAlert() string {
	title := m.styles.DialogTitle.Foreground(Colors.Error).Render("✗ Cannot create task")
	msg := ""
	if m.err != nil {
		msg = truncate.StringWithTail(m.err.Error(), uint(max(m.width-8, 10)), "…")
	}
	hint := m.styles.FooterKey.Render("enter") + m.styles.Footer.Render(" back to form")

	content := lipgloss.JoinVertical(lipgloss.Left, title, "", msg, "", hint)
	return m.styles.Dialog.BorderForeground(Colors.Error).Render(content)
}

// viewHelp renders the help overlay.
func (m *Model) viewHelp() string {
	title := m.styles.HeaderText.Render("KEYBOARD & MOUSE")
	mouse := m.styles.HelpKey.Render("drag") + " " +
		m.styles.HelpDesc.Render("a bar's left or right handle to reschedule it")
	keys := m.help.FullHelpView(m.keys.FullHelp())
	content := lipgloss.JoinVertical(lipgloss.Left, title, "", mouse, "", keys)
	return m.styles.Help.Render(content)
}

// place centers a dialog over the chart area.
func (m *Model) place(dialog string) string {
	w, h := m.chartSize()
	return lipgloss.Place(w+chartOriginX, h, lipgloss.Center, lipgloss.Center, dialog)
}

// fit truncates a line to the terminal width.
func (m *Model) fit(s string) string {
	return truncate.String(s, uint(max(m.width, 0)))
}
