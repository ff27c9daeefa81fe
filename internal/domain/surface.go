package domain

import (
	"fmt"
	"regexp"
)

// Color is a "#RRGGBB" hex color.
type Color string

var hexColorPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// Valid reports whether the color is a 6-digit hex color.
func (c Color) Valid() bool {
	return hexColorPattern.MatchString(string(c))
}

// Palette is the set of colors used by the chart renderer.
type Palette struct {
	Bar    Color `toml:"bar"`    // Task body
	Handle Color `toml:"handle"` // Drag handles
	Text   Color `toml:"text"`   // Task names
	Grid   Color `toml:"grid"`   // Day lines
	Label  Color `toml:"label"`  // Date labels
}

// DefaultPalette returns the default chart colors.
func DefaultPalette() Palette {
	return Palette{
		Bar:    "#6C5CE7", // Purple
		Handle: "#D63031", // Red
		Text:   "#DFE6E9", // Light gray
		Grid:   "#636E72", // Gray
		Label:  "#B2BEC3", // Light gray
	}
}

// Validate checks every palette entry.
func (p Palette) Validate() error {
	for name, c := range map[string]Color{
		"bar": p.Bar, "handle": p.Handle, "text": p.Text, "grid": p.Grid, "label": p.Label,
	} {
		if !c.Valid() {
			return fmt.Errorf("%w: colors.%s = %q", ErrInvalidColor, name, c)
		}
	}
	return nil
}

// Surface is a 2D canvas-like drawing target.
// Coordinates are surface units with the origin at the top-left corner.
type Surface interface {
	// Width returns the drawable width.
	Width() float64
	// Height returns the drawable height.
	Height() float64

	SetFillColor(c Color)
	SetStrokeColor(c Color)

	// ClearRect erases a rectangle back to the background.
	ClearRect(x, y, w, h float64)
	// FillRect fills a rectangle with the current fill color.
	FillRect(x, y, w, h float64)

	// BeginPath starts a new path, discarding any pending segments.
	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	// Stroke draws the pending path with the current stroke color.
	Stroke()

	// FillText draws text with its left edge at x and vertical position y.
	FillText(text string, x, y float64)
}
