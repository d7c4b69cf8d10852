// Package render draws a cube as an unfolded net of colored letters.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/SeamusWaldron/bitcube"
)

// Option configures a Renderer.
type Option func(*Renderer)

// WithColor enables or disables ANSI colors. Enabled by default.
func WithColor(enabled bool) Option {
	return func(r *Renderer) {
		r.color = enabled
	}
}

// WithRenderer sets the lipgloss renderer that decides the color profile.
// Defaults to lipgloss.DefaultRenderer, which inspects stdout.
func WithRenderer(lr *lipgloss.Renderer) Option {
	return func(r *Renderer) {
		r.renderer = lr
	}
}

// Renderer turns cube state into text.
type Renderer struct {
	color    bool
	renderer *lipgloss.Renderer
	styles   [6]lipgloss.Style
}

// palette maps each color id to its terminal color.
var palette = [6]lipgloss.Color{
	bitcube.White:  lipgloss.Color("#FFFFFF"),
	bitcube.Green:  lipgloss.Color("#00C000"),
	bitcube.Red:    lipgloss.Color("#D00000"),
	bitcube.Blue:   lipgloss.Color("#2060FF"),
	bitcube.Orange: lipgloss.Color("#FFA500"),
	bitcube.Yellow: lipgloss.Color("#FFFF00"),
}

// New creates a renderer.
func New(opts ...Option) *Renderer {
	r := &Renderer{color: true}
	for _, opt := range opts {
		opt(r)
	}
	if r.renderer == nil {
		r.renderer = lipgloss.DefaultRenderer()
	}
	for i, c := range palette {
		r.styles[i] = r.renderer.NewStyle().Bold(true).Foreground(c)
	}
	return r
}

// Glyph returns the letter for a color, styled if color is enabled.
func (r *Renderer) Glyph(c bitcube.Color) string {
	if !r.color || !c.Valid() {
		return c.String()
	}
	return r.styles[c].Render(c.String())
}

const (
	border = "+-------+"
	indent = "        "
	strip  = "+-------+-------+-------+-------+"
)

// Net renders the cube as an unfolded net: U on top, then L F R B in a row,
// then D.
//
//	        +-------+
//	        | W W W |
//	        | W W W |
//	        | W W W |
//	+-------+-------+-------+-------+
//	| G G G | R R R | B B B | O O O |
//	...
func (r *Renderer) Net(c bitcube.Cube) string {
	var b strings.Builder

	b.WriteString(indent + border + "\n")
	for row := 0; row < 3; row++ {
		b.WriteString(indent + "|" + r.faceRow(c, bitcube.FaceU, row) + "|\n")
	}

	b.WriteString(strip + "\n")
	for row := 0; row < 3; row++ {
		b.WriteString("|")
		for _, face := range []bitcube.Face{bitcube.FaceL, bitcube.FaceF, bitcube.FaceR, bitcube.FaceB} {
			b.WriteString(r.faceRow(c, face, row) + "|")
		}
		b.WriteString("\n")
	}
	b.WriteString(strip + "\n")

	for row := 0; row < 3; row++ {
		b.WriteString(indent + "|" + r.faceRow(c, bitcube.FaceD, row) + "|\n")
	}
	b.WriteString(indent + border + "\n")

	return b.String()
}

// rowPositions gives the ring positions shown on each row of a face.
// -1 marks the center.
var rowPositions = [3][3]int{
	{0, 1, 2},
	{7, -1, 3},
	{6, 5, 4},
}

func (r *Renderer) faceRow(c bitcube.Cube, face bitcube.Face, row int) string {
	var b strings.Builder
	for _, pos := range rowPositions[row] {
		b.WriteByte(' ')
		if pos < 0 {
			b.WriteString(r.Glyph(c.Center(face)))
		} else {
			b.WriteString(r.Glyph(c.Sticker(face, pos)))
		}
	}
	b.WriteByte(' ')
	return b.String()
}
