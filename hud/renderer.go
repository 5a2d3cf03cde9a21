package hud

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// LineHeight is the vertical advance between overlay text lines, sized
// for the fixed-width overlay face.
const LineHeight = 16

// TextColor is the default overlay text color.
var TextColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}

// Renderer draws overlay text into an RGBA image using a fixed-width
// bitmap face. It has no state beyond the destination image; items are
// free to share one renderer per frame.
type Renderer struct {
	dst  *image.RGBA
	face font.Face
}

// NewRenderer creates a renderer drawing into dst.
func NewRenderer(dst *image.RGBA) *Renderer {
	return &Renderer{
		dst:  dst,
		face: basicfont.Face7x13,
	}
}

// DrawText draws a single line of text with its top-left corner at pos.
func (r *Renderer) DrawText(pos Pos, col color.Color, text string) {
	ascent := r.face.Metrics().Ascent.Ceil()
	d := &font.Drawer{
		Dst:  r.dst,
		Src:  image.NewUniform(col),
		Face: r.face,
		Dot:  fixed.P(int(pos.X), int(pos.Y)+ascent),
	}
	d.DrawString(text)
}

// MeasureText returns the horizontal advance of text in pixels.
func (r *Renderer) MeasureText(text string) int {
	return font.MeasureString(r.face, text).Ceil()
}
