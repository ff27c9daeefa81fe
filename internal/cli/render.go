package cli

import (
	"fmt"
	"io"
	"math"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/runoshun/gantt/internal/app"
	"github.com/runoshun/gantt/internal/chart"
	"github.com/runoshun/gantt/internal/domain"
	"github.com/runoshun/gantt/internal/infra/cellsurface"
	"github.com/runoshun/gantt/internal/infra/svgsurface"
	"github.com/runoshun/gantt/internal/usecase"
)

// Output formats for the render command.
const (
	formatText = "text"
	formatSVG  = "svg"
)

// Color modes for text output.
const (
	colorAuto   = "auto"
	colorAlways = "always"
	colorNever  = "never"
)

// Default surface widths per format.
const (
	defaultTextWidth = 100
	defaultSVGWidth  = 800
	svgTopMargin     = 20 // Keeps date labels above the first bar
)

// newRenderCommand creates the render command.
func newRenderCommand(e *env) *cobra.Command {
	var opts struct {
		Format string
		Color  string
		Width  int
		Height int
	}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the chart to stdout",
		Long: `Render the chart once and write it to stdout.

Formats:
  text  plain terminal cells using the [chart] layout (default)
  svg   an SVG document using 30px rows and 10px handles

Width and height default to fit the tasks.

Examples:
  gantt render
  gantt render --format svg --width 1200 > chart.svg
  gantt render --tasks plan.yaml --width 160`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			switch opts.Format {
			case formatText:
				return renderText(cmd, e.container(), opts.Color, opts.Width, opts.Height)
			case formatSVG:
				return renderSVG(cmd, e.container(), opts.Width, opts.Height)
			default:
				return fmt.Errorf("%w: %q (use %s or %s)", domain.ErrUnsupportedFormat, opts.Format, formatText, formatSVG)
			}
		},
	}

	cmd.Flags().StringVarP(&opts.Format, "format", "f", formatText, "Output format: text or svg")
	cmd.Flags().StringVar(&opts.Color, "color", colorAuto, "Colored text output: auto, always or never")
	cmd.Flags().IntVarP(&opts.Width, "width", "W", 0, "Surface width (cells for text, pixels for svg)")
	cmd.Flags().IntVarP(&opts.Height, "height", "H", 0, "Surface height (0 fits all rows)")

	return cmd
}

// fitHeight returns the height needed to show every row of the layout.
func fitHeight(layout chart.Layout, rows int) int {
	return int(math.Ceil(layout.RowY(rows)))
}

func renderText(cmd *cobra.Command, c *app.Container, color string, width, height int) error {
	profile, err := colorProfile(cmd.OutOrStdout(), color)
	if err != nil {
		return err
	}

	layout := c.Layout()
	if width <= 0 {
		width = defaultTextWidth
	}
	if height <= 0 {
		height = max(fitHeight(layout, c.Tasks.Len()), 1)
	}

	s := cellsurface.New(width, height)
	if _, err := c.RenderChartUseCase().Execute(cmd.Context(), usecase.RenderChartInput{Surface: s}); err != nil {
		return err
	}
	text := s.PlainString()
	if profile != termenv.Ascii {
		lipgloss.SetColorProfile(profile)
		text = s.Render()
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), text)
	return err
}

// colorProfile resolves the --color flag against the output writer.
// Ascii means no escape sequences.
func colorProfile(w io.Writer, mode string) (termenv.Profile, error) {
	switch mode {
	case colorNever:
		return termenv.Ascii, nil
	case colorAlways:
		return termenv.TrueColor, nil
	case colorAuto:
		return termenv.NewOutput(w).ColorProfile(), nil
	default:
		return termenv.Ascii, fmt.Errorf("invalid --color %q (use %s, %s or %s)", mode, colorAuto, colorAlways, colorNever)
	}
}

func renderSVG(cmd *cobra.Command, c *app.Container, width, height int) error {
	layout := chart.DefaultLayout()
	layout.TopMargin = svgTopMargin
	if width <= 0 {
		width = defaultSVGWidth
	}
	if height <= 0 {
		height = fitHeight(layout, c.Tasks.Len()) + int(layout.LabelPadX)
	}

	s := svgsurface.New(float64(width), float64(height))
	if _, err := c.RenderChartUseCaseWithLayout(layout).Execute(cmd.Context(), usecase.RenderChartInput{Surface: s}); err != nil {
		return err
	}
	return writeSVG(cmd.OutOrStdout(), s)
}

func writeSVG(w io.Writer, s *svgsurface.Surface) error {
	if _, err := s.WriteTo(w); err != nil {
		return fmt.Errorf("write svg: %w", err)
	}
	return nil
}
