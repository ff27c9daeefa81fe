// Package cellsurface implements domain.Surface on a grid of terminal cells.
// One surface unit is one cell: x is the column and y is the row.
package cellsurface

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/runoshun/gantt/internal/domain"
)

// Ensure Surface implements domain.Surface.
var _ domain.Surface = (*Surface)(nil)

const (
	blank        = ' '
	vertical     = '│'
	horizontal   = '─'
	diagonal     = '·'
	continuation = 0 // Second half of a wide rune
)

// Cell is one terminal cell. Empty colors mean the terminal default.
type Cell struct {
	FG   domain.Color
	BG   domain.Color
	Rune rune
}

type point struct {
	x, y float64
}

// Surface is a fixed-size cell grid.
// Fields are ordered to minimize memory padding.
type Surface struct {
	cells       [][]Cell
	path        [][]point
	fillColor   domain.Color
	strokeColor domain.Color
	width       int
	height      int
}

// New creates a blank surface of width columns and height rows.
func New(width, height int) *Surface {
	s := &Surface{}
	s.Resize(width, height)
	return s
}

// Resize discards the contents and sets a new size.
func (s *Surface) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	s.width, s.height = width, height
	s.cells = make([][]Cell, height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, width)
		for x := range s.cells[y] {
			s.cells[y][x] = Cell{Rune: blank}
		}
	}
	s.path = nil
}

// Width returns the number of columns.
func (s *Surface) Width() float64 { return float64(s.width) }

// Height returns the number of rows.
func (s *Surface) Height() float64 { return float64(s.height) }

// SetFillColor sets the color used by FillRect and FillText.
func (s *Surface) SetFillColor(c domain.Color) { s.fillColor = c }

// SetStrokeColor sets the color used by Stroke.
func (s *Surface) SetStrokeColor(c domain.Color) { s.strokeColor = c }

// Cell returns the cell at column x, row y. Out of range returns a blank cell.
func (s *Surface) Cell(x, y int) Cell {
	if !s.inBounds(x, y) {
		return Cell{Rune: blank}
	}
	return s.cells[y][x]
}

func (s *Surface) inBounds(x, y int) bool {
	return x >= 0 && x < s.width && y >= 0 && y < s.height
}

// span converts [start, start+length) into a half-open cell range.
// A positive length always covers at least one cell.
func span(start, length float64) (int, int) {
	lo := int(math.Round(start))
	hi := int(math.Round(start + length))
	if length > 0 && hi <= lo {
		hi = lo + 1
	}
	return lo, hi
}

// ClearRect resets the covered cells to blank with default colors.
func (s *Surface) ClearRect(x, y, w, h float64) {
	x0, x1 := span(x, w)
	y0, y1 := span(y, h)
	for row := max(y0, 0); row < min(y1, s.height); row++ {
		for col := max(x0, 0); col < min(x1, s.width); col++ {
			s.cells[row][col] = Cell{Rune: blank}
		}
	}
}

// FillRect paints the covered cells' background and erases their contents.
func (s *Surface) FillRect(x, y, w, h float64) {
	if w <= 0 || h <= 0 {
		return
	}
	x0, x1 := span(x, w)
	y0, y1 := span(y, h)
	for row := max(y0, 0); row < min(y1, s.height); row++ {
		for col := max(x0, 0); col < min(x1, s.width); col++ {
			s.cells[row][col] = Cell{Rune: blank, BG: s.fillColor}
		}
	}
}

// BeginPath discards pending path segments.
func (s *Surface) BeginPath() {
	s.path = nil
}

// MoveTo starts a new sub-path.
func (s *Surface) MoveTo(x, y float64) {
	s.path = append(s.path, []point{{x, y}})
}

// LineTo extends the current sub-path.
func (s *Surface) LineTo(x, y float64) {
	if len(s.path) == 0 {
		s.MoveTo(x, y)
		return
	}
	last := len(s.path) - 1
	s.path[last] = append(s.path[last], point{x, y})
}

// Stroke draws every pending segment with box-drawing characters.
// Backgrounds are kept, so lines drawn over a bar keep the bar color.
func (s *Surface) Stroke() {
	for _, sub := range s.path {
		for i := 1; i < len(sub); i++ {
			s.strokeSegment(sub[i-1], sub[i])
		}
	}
}

func (s *Surface) strokeSegment(a, b point) {
	ax, ay := int(math.Round(a.x)), int(math.Round(a.y))
	bx, by := int(math.Round(b.x)), int(math.Round(b.y))

	r := diagonal
	switch {
	case ax == bx:
		r = vertical
	case ay == by:
		r = horizontal
	}

	steps := max(abs(bx-ax), abs(by-ay))
	if steps == 0 {
		s.plot(ax, ay, r)
		return
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		x := int(math.Round(float64(ax) + t*float64(bx-ax)))
		y := int(math.Round(float64(ay) + t*float64(by-ay)))
		s.plot(x, y, r)
	}
}

func (s *Surface) plot(x, y int, r rune) {
	if !s.inBounds(x, y) {
		return
	}
	c := &s.cells[y][x]
	c.Rune = r
	c.FG = s.strokeColor
}

// FillText writes text starting at column round(x) on row floor(y).
// Text is clipped at the surface edges.
func (s *Surface) FillText(text string, x, y float64) {
	row := int(math.Floor(y))
	if row < 0 || row >= s.height {
		return
	}
	col := int(math.Round(x))
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if col >= s.width {
			return
		}
		if col >= 0 && col+w <= s.width {
			s.cells[row][col].Rune = r
			s.cells[row][col].FG = s.fillColor
			for i := 1; i < w; i++ {
				s.cells[row][col+i].Rune = continuation
				s.cells[row][col+i].FG = s.fillColor
			}
		}
		col += w
	}
}

// PlainString returns the grid as text without colors.
// Trailing spaces are trimmed from each row.
func (s *Surface) PlainString() string {
	lines := make([]string, s.height)
	for y, row := range s.cells {
		var b strings.Builder
		for _, c := range row {
			if c.Rune != continuation {
				b.WriteRune(c.Rune)
			}
		}
		lines[y] = strings.TrimRight(b.String(), " ")
	}
	return strings.Join(lines, "\n")
}

// Render returns the grid as styled terminal output.
// Adjacent cells with the same colors share one lipgloss style.
func (s *Surface) Render() string {
	lines := make([]string, s.height)
	for y, row := range s.cells {
		var line strings.Builder
		var run strings.Builder
		var fg, bg domain.Color
		flush := func() {
			if run.Len() == 0 {
				return
			}
			line.WriteString(styleFor(fg, bg).Render(run.String()))
			run.Reset()
		}
		for _, c := range row {
			if c.Rune == continuation {
				continue
			}
			if c.FG != fg || c.BG != bg {
				flush()
				fg, bg = c.FG, c.BG
			}
			run.WriteRune(c.Rune)
		}
		flush()
		lines[y] = line.String()
	}
	return strings.Join(lines, "\n")
}

func styleFor(fg, bg domain.Color) lipgloss.Style {
	st := lipgloss.NewStyle()
	if fg != "" {
		st = st.Foreground(lipgloss.Color(string(fg)))
	}
	if bg != "" {
		st = st.Background(lipgloss.Color(string(bg)))
	}
	return st
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
