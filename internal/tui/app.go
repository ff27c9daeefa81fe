package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/runoshun/gantt/internal/app"
	"github.com/runoshun/gantt/internal/domain"
	"github.com/runoshun/gantt/internal/infra/cellsurface"
	"github.com/runoshun/gantt/internal/interaction"
	"github.com/runoshun/gantt/internal/usecase"
)

// Screen regions around the chart, in cells.
const (
	chartOriginX = 2 // Gutter for the selected-row marker
	chartOriginY = 2 // Header line and a blank line
	footerLines  = 2 // Status line and key hints

	statusTimeout = 3 * time.Second
)

// Model is the main bubbletea model for the TUI.
type Model struct {
	// Dependencies (pointers first for alignment)
	container   *app.Container
	controller  *interaction.Controller
	surface     *cellsurface.Surface
	renderChart *usecase.RenderChart
	err         error

	// Rendered state
	frame  string
	status string

	// Components (structs with pointers)
	keys   KeyMap
	styles Styles
	help   help.Model

	// Input state (large structs)
	nameInput  textinput.Model
	startInput textinput.Model
	endInput   textinput.Model

	// Numeric state (smaller types last)
	frameInterval time.Duration
	mode          Mode
	field         FormField
	width         int
	height        int
	selected      int
}

// New creates a new TUI Model with the given container.
func New(c *app.Container) *Model {
	ni := textinput.New()
	ni.Placeholder = "Task name"
	ni.CharLimit = 100

	si := textinput.New()
	si.Placeholder = domain.DateLayout
	si.CharLimit = len(domain.DateLayout)

	ei := textinput.New()
	ei.Placeholder = domain.DateLayout
	ei.CharLimit = len(domain.DateLayout)

	return &Model{
		container:     c,
		controller:    c.NewController(),
		surface:       cellsurface.New(0, 0),
		renderChart:   c.RenderChartUseCase(),
		keys:          DefaultKeyMap(),
		styles:        DefaultStyles(),
		help:          help.New(),
		nameInput:     ni,
		startInput:    si,
		endInput:      ei,
		frameInterval: c.AppConfig.Chart.FrameInterval(),
		mode:          ModeNormal,
	}
}

// Init initializes the model and returns the initial command.
func (m *Model) Init() tea.Cmd {
	return m.requestRedraw()
}

// tasks returns the live task sequence in row order.
func (m *Model) tasks() []*domain.Task {
	return m.container.Tasks.List()
}

// SelectedTask returns the task on the selected row, or nil if none.
func (m *Model) SelectedTask() *domain.Task {
	tasks := m.tasks()
	if m.selected < 0 || m.selected >= len(tasks) {
		return nil
	}
	return tasks[m.selected]
}

// chartSize returns the drawable chart area in cells.
func (m *Model) chartSize() (int, int) {
	return max(m.width-chartOriginX, 1), max(m.height-chartOriginY-footerLines, 1)
}

// chartPoint converts a terminal cell to surface coordinates.
func (m *Model) chartPoint(col, row int) (float64, float64) {
	return float64(col - chartOriginX), float64(row - chartOriginY)
}

// scheduleFrame delivers MsgFrame after the coalescing window.
func (m *Model) scheduleFrame() tea.Cmd {
	return tea.Tick(m.frameInterval, func(time.Time) tea.Msg {
		return MsgFrame{}
	})
}

// requestRedraw schedules a frame unless one is already pending.
func (m *Model) requestRedraw() tea.Cmd {
	if m.controller.RequestRedraw() {
		return m.scheduleFrame()
	}
	return nil
}

// renderFrame runs the pending redraw and caches the styled chart.
func (m *Model) renderFrame() {
	m.controller.Frame(func() {
		if _, err := m.renderChart.Execute(context.Background(), usecase.RenderChartInput{Surface: m.surface}); err != nil {
			m.container.Logger.Error("render", err.Error())
			return
		}
		m.frame = m.surface.Render()
	})
}

// clearStatusAfter returns a command that clears the status line later.
func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return MsgClearStatus{}
	})
}
