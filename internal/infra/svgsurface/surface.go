// Package svgsurface implements domain.Surface as an SVG document.
package svgsurface

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strconv"

	"github.com/runoshun/gantt/internal/domain"
)

// Ensure Surface implements domain.Surface.
var _ domain.Surface = (*Surface)(nil)

const (
	defaultFont       = "Arial, sans-serif"
	defaultFontSize   = 10.0
	defaultBackground = "#ffffff"
)

// Surface accumulates SVG elements in drawing order.
// Fields are ordered to minimize memory padding.
type Surface struct {
	body        bytes.Buffer
	path        bytes.Buffer
	fillColor   domain.Color
	strokeColor domain.Color
	width       float64
	height      float64
}

// New creates an empty SVG surface.
func New(width, height float64) *Surface {
	return &Surface{
		width:       width,
		height:      height,
		fillColor:   "#000000",
		strokeColor: "#000000",
	}
}

// Width returns the document width.
func (s *Surface) Width() float64 { return s.width }

// Height returns the document height.
func (s *Surface) Height() float64 { return s.height }

// SetFillColor sets the color used by FillRect and FillText.
func (s *Surface) SetFillColor(c domain.Color) { s.fillColor = c }

// SetStrokeColor sets the color used by Stroke.
func (s *Surface) SetStrokeColor(c domain.Color) { s.strokeColor = c }

// ClearRect erases a region. Clearing the whole document drops every element
// drawn so far; a partial clear paints the background over the region.
func (s *Surface) ClearRect(x, y, w, h float64) {
	if x <= 0 && y <= 0 && x+w >= s.width && y+h >= s.height {
		s.body.Reset()
		return
	}
	fmt.Fprintf(&s.body, `<rect x="%s" y="%s" width="%s" height="%s" fill="%s"/>`+"\n",
		num(x), num(y), num(w), num(h), defaultBackground)
}

// FillRect appends a filled rectangle.
func (s *Surface) FillRect(x, y, w, h float64) {
	if w <= 0 || h <= 0 {
		return
	}
	fmt.Fprintf(&s.body, `<rect x="%s" y="%s" width="%s" height="%s" fill="%s"/>`+"\n",
		num(x), num(y), num(w), num(h), s.fillColor)
}

// BeginPath discards pending path data.
func (s *Surface) BeginPath() {
	s.path.Reset()
}

// MoveTo starts a new sub-path.
func (s *Surface) MoveTo(x, y float64) {
	fmt.Fprintf(&s.path, "M%s %s ", num(x), num(y))
}

// LineTo extends the current sub-path.
func (s *Surface) LineTo(x, y float64) {
	fmt.Fprintf(&s.path, "L%s %s ", num(x), num(y))
}

// Stroke appends the pending path as a single <path> element.
func (s *Surface) Stroke() {
	if s.path.Len() == 0 {
		return
	}
	d := bytes.TrimSpace(s.path.Bytes())
	fmt.Fprintf(&s.body, `<path d="%s" stroke="%s" stroke-width="1" fill="none"/>`+"\n", d, s.strokeColor)
}

// FillText appends a text element with its baseline at y.
func (s *Surface) FillText(text string, x, y float64) {
	var escaped bytes.Buffer
	_ = xml.EscapeText(&escaped, []byte(text))
	fmt.Fprintf(&s.body, `<text x="%s" y="%s" fill="%s" font-family="%s" font-size="%s">%s</text>`+"\n",
		num(x), num(y), s.fillColor, defaultFont, num(defaultFontSize), escaped.String())
}

// WriteTo writes the complete SVG document.
func (s *Surface) WriteTo(w io.Writer) (int64, error) {
	var doc bytes.Buffer
	fmt.Fprintf(&doc, `<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s" viewBox="0 0 %s %s">`+"\n",
		num(s.width), num(s.height), num(s.width), num(s.height))
	fmt.Fprintf(&doc, `<rect width="100%%" height="100%%" fill="%s"/>`+"\n", defaultBackground)
	doc.Write(s.body.Bytes())
	doc.WriteString("</svg>\n")
	return doc.WriteTo(w)
}

// String returns the complete SVG document.
func (s *Surface) String() string {
	var b bytes.Buffer
	_, _ = s.WriteTo(&b)
	return b.String()
}

// num formats a coordinate without trailing zeros.
func num(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
