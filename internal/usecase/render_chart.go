package usecase

import (
	"context"

	"github.com/runoshun/gantt/internal/chart"
	"github.com/runoshun/gantt/internal/domain"
)

// RenderChartInput contains the drawing target.
type RenderChartInput struct {
	Surface domain.Surface
}

// RenderChartOutput reports what was drawn.
type RenderChartOutput struct {
	Rows int // Number of task rows drawn
}

// RenderChart is the use case for drawing the current tasks onto a surface.
type RenderChart struct {
	tasks    domain.TaskRepository
	renderer *chart.Renderer
}

// NewRenderChart creates a new RenderChart use case.
func NewRenderChart(tasks domain.TaskRepository, renderer *chart.Renderer) *RenderChart {
	return &RenderChart{
		tasks:    tasks,
		renderer: renderer,
	}
}

// Execute performs a full redraw.
func (uc *RenderChart) Execute(_ context.Context, in RenderChartInput) (*RenderChartOutput, error) {
	tasks := uc.tasks.List()
	uc.renderer.Draw(in.Surface, tasks)
	return &RenderChartOutput{Rows: len(tasks)}, nil
}
