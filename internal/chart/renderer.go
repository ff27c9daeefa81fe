package chart

import (
	"github.com/mattn/go-runewidth"

	"github.com/runoshun/gantt/internal/domain"
)

// Renderer draws the chart onto a surface.
// It holds no per-frame state, so Draw may be called at any frequency.
type Renderer struct {
	Palette domain.Palette
	Layout  Layout
}

// NewRenderer creates a Renderer.
func NewRenderer(layout Layout, palette domain.Palette) *Renderer {
	return &Renderer{Layout: layout, Palette: palette}
}

// Draw clears the surface and redraws the date grid and every task bar.
func (r *Renderer) Draw(s domain.Surface, tasks []*domain.Task) {
	width, height := s.Width(), s.Height()
	s.ClearRect(0, 0, width, height)

	if len(tasks) == 0 {
		return
	}

	r.drawGrid(s, tasks)
	for i := range tasks {
		r.drawBar(s, tasks, i)
	}
}

// drawGrid draws one line and one label per day, starting at the 1st of the
// month containing the earliest start.
func (r *Renderer) drawGrid(s domain.Surface, tasks []*domain.Task) {
	minDate, maxDate, err := DateRange(tasks)
	if err != nil {
		return
	}
	width, height := s.Width(), s.Height()

	s.SetStrokeColor(r.Palette.Grid)
	s.BeginPath()
	type label struct {
		text string
		x    float64
	}
	var labels []label
	labelEnd := 0.0
	for day := domain.FirstOfMonth(minDate); !day.After(maxDate); day = day.AddDate(0, 0, 1) {
		x := OffsetForDate(day, tasks, width)
		s.MoveTo(x, 0)
		s.LineTo(x, height)

		text := domain.FormatDate(day)
		lx := x + r.Layout.LabelPadX
		if r.Layout.MinLabelSpacing > 0 {
			if len(labels) > 0 && lx < labelEnd {
				continue
			}
			labelEnd = lx + float64(runewidth.StringWidth(text)) + r.Layout.MinLabelSpacing
		}
		labels = append(labels, label{text: text, x: lx})
	}
	s.Stroke()

	s.SetFillColor(r.Palette.Label)
	for _, l := range labels {
		s.FillText(l.text, l.x, r.Layout.LabelY)
	}
}

func (r *Renderer) drawBar(s domain.Surface, tasks []*domain.Task, i int) {
	bar := r.Layout.BarRect(tasks, i, s.Width())

	s.SetFillColor(r.Palette.Bar)
	s.FillRect(bar.X, bar.Y, bar.W, bar.H)

	s.SetFillColor(r.Palette.Handle)
	left := r.Layout.StartHandle(bar)
	s.FillRect(left.X, left.Y, left.W, left.H)
	right := r.Layout.EndHandle(bar)
	s.FillRect(right.X, right.Y, right.W, right.H)

	s.SetFillColor(r.Palette.Text)
	s.FillText(tasks[i].Name, bar.X+r.Layout.LabelPadX, bar.Y+r.Layout.TaskHeight/2)
}
