package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/runoshun/gantt/internal/domain"
	"github.com/runoshun/gantt/internal/usecase"
)

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.MouseMsg:
		return m.handleMouseMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		w, h := m.chartSize()
		m.surface.Resize(w, h)
		m.controller.SetWidth(float64(w))
		return m, m.requestRedraw()

	case MsgFrame:
		m.renderFrame()
		return m, nil

	case MsgTaskAdded:
		m.mode = ModeNormal
		m.resetForm()
		m.selected = msg.Row
		m.status = fmt.Sprintf("added %s", msg.Task)
		return m, tea.Batch(m.requestRedraw(), clearStatusAfter(statusTimeout))

	case MsgError:
		m.err = msg.Err
		m.mode = ModeAlert
		return m, nil

	case MsgClearStatus:
		m.status = ""
		return m, nil
	}

	return m, nil
}

// handleKeyMsg dispatches key presses by mode.
func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case ModeNormal:
		return m.handleNormalMode(msg)
	case ModeInput:
		return m.handleInputMode(msg)
	case ModeAlert:
		return m.handleAlertMode(msg)
	case ModeHelp:
		return m.handleHelpMode(msg)
	}
	return m, nil
}

func (m *Model) handleNormalMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.mode = ModeHelp
		return m, nil

	case key.Matches(msg, m.keys.New):
		m.mode = ModeInput
		m.resetForm()
		return m, m.focusField()

	case key.Matches(msg, m.keys.Up):
		if m.selected > 0 {
			m.selected--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.selected < m.container.Tasks.Len()-1 {
			m.selected++
		}
		return m, nil

	case key.Matches(msg, m.keys.StartEarlier):
		return m, m.nudge(domain.EdgeStart, -1)
	case key.Matches(msg, m.keys.StartLater):
		return m, m.nudge(domain.EdgeStart, 1)
	case key.Matches(msg, m.keys.EndEarlier):
		return m, m.nudge(domain.EdgeEnd, -1)
	case key.Matches(msg, m.keys.EndLater):
		return m, m.nudge(domain.EdgeEnd, 1)
	}
	return m, nil
}

// nudge shifts one edge of the selected task by days.
// Rejected edits leave the task unchanged, the same as a rejected drag.
func (m *Model) nudge(edge domain.Edge, days int) tea.Cmd {
	task := m.SelectedTask()
	if task == nil {
		return nil
	}
	if _, schedule := m.controller.MoveEdge(task, edge, days); schedule {
		return m.scheduleFrame()
	}
	return nil
}

func (m *Model) handleInputMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.mode = ModeNormal
		m.resetForm()
		return m, nil

	case key.Matches(msg, m.keys.NextField):
		m.field = m.field.Next()
		return m, m.focusField()

	case key.Matches(msg, m.keys.PrevField):
		m.field = m.field.Prev()
		return m, m.focusField()

	case key.Matches(msg, m.keys.Submit):
		return m.submitForm()
	}

	// Forward to current input field
	var cmd tea.Cmd
	switch m.field {
	case FieldName:
		m.nameInput, cmd = m.nameInput.Update(msg)
	case FieldStart:
		m.startInput, cmd = m.startInput.Update(msg)
	case FieldEnd:
		m.endInput, cmd = m.endInput.Update(msg)
	}
	return m, cmd
}

// submitForm runs AddTask inside Update so the task sequence is only
// mutated on the program goroutine.
func (m *Model) submitForm() (tea.Model, tea.Cmd) {
	out, err := m.container.AddTaskUseCase().Execute(context.Background(), usecase.AddTaskInput{
		Name:      m.nameInput.Value(),
		StartDate: m.startInput.Value(),
		EndDate:   m.endInput.Value(),
	})
	if err != nil {
		return m.Update(MsgError{Err: err})
	}
	return m.Update(MsgTaskAdded{Task: out.Task, Row: out.Row})
}

func (m *Model) handleAlertMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit), key.Matches(msg, m.keys.Escape):
		// Back to the form with the submitted values kept for correction.
		m.err = nil
		m.mode = ModeInput
		return m, m.focusField()
	}
	return m, nil
}

func (m *Model) handleHelpMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help), key.Matches(msg, m.keys.Escape):
		m.mode = ModeNormal
	}
	return m, nil
}

// handleMouseMsg feeds pointer events to the interaction controller.
func (m *Model) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if !m.mode.AcceptsPointer() {
		return m, nil
	}
	x, y := m.chartPoint(msg.X, msg.Y)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		if row := m.controller.Layout().RowAt(m.tasks(), y); row >= 0 {
			m.selected = row
		}
		m.controller.PointerDown(x, y)

	case tea.MouseActionMotion:
		if _, schedule := m.controller.PointerMove(x, y); schedule {
			return m, m.scheduleFrame()
		}

	case tea.MouseActionRelease:
		m.controller.PointerUp()
	}
	return m, nil
}

// focusField focuses the current form field.
func (m *Model) focusField() tea.Cmd {
	m.nameInput.Blur()
	m.startInput.Blur()
	m.endInput.Blur()

	switch m.field {
	case FieldName:
		return m.nameInput.Focus()
	case FieldStart:
		return m.startInput.Focus()
	case FieldEnd:
		return m.endInput.Focus()
	}
	return nil
}

// resetForm clears the form and moves focus to the name field.
func (m *Model) resetForm() {
	m.nameInput.Reset()
	m.startInput.Reset()
	m.endInput.Reset()
	m.field = FieldName
	m.err = nil
}
