// Package swatch renders a palette as a labelled PNG sheet: one column per
// scale, one cell per grade.
package swatch

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"strings"

	"github.com/jmylchreest/tonal/internal/colour"
	"github.com/jmylchreest/tonal/internal/grade"
	"github.com/jmylchreest/tonal/internal/palette"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Cell and header dimensions in pixels.
const (
	CellWidth    = 156
	CellHeight   = 96
	HeaderHeight = 24
)

var face = basicfont.Face7x13

// Render draws p and returns the image. Unparsable colours are drawn as a
// mid grey so the sheet stays complete.
func Render(p palette.Palette) *image.RGBA {
	rows := 0
	for _, s := range p {
		rows = max(rows, len(s.Grades))
	}

	img := image.NewRGBA(image.Rect(0, 0, max(1, len(p))*CellWidth, HeaderHeight+rows*CellHeight))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	for col, s := range p {
		x := col * CellWidth
		drawCentred(img, s.Name, image.Rect(x, 0, x+CellWidth, HeaderHeight), color.Black)

		for row, e := range s.Grades {
			y := HeaderHeight + row*CellHeight
			drawCell(img, s.Name, e, image.Rect(x, y, x+CellWidth, y+CellHeight))
		}
	}

	return img
}

// Write renders p as PNG to w.
func Write(w io.Writer, p palette.Palette) error {
	if err := png.Encode(w, Render(p)); err != nil {
		return fmt.Errorf("failed to encode swatch: %w", err)
	}
	return nil
}

func drawCell(img *image.RGBA, scale string, e palette.Entry, r image.Rectangle) {
	rgb, ok := colour.ParseHex(e.Color)
	if !ok {
		rgb = colour.RGB{R: 128, G: 128, B: 128}
	}
	draw.Draw(img, r, image.NewUniform(rgb), image.Point{}, draw.Src)

	lum := colour.LuminanceOf(e.Color)
	text := colour.LegibleText(max(lum.Raw, 0))

	lines := []string{
		fmt.Sprintf("%s %d", scale, e.Grade),
		"Lum: " + lum.Legible,
		e.Color,
		// Face7x13 has no glyph for the degree sign.
		strings.ReplaceAll(colour.HSLString(e.Color), "°", ""),
	}
	lineHeight := face.Metrics().Height.Ceil()
	top := r.Min.Y + (r.Dy()-lineHeight*len(lines))/2
	for i, line := range lines {
		y := top + i*lineHeight
		drawCentred(img, line, image.Rect(r.Min.X, y, r.Max.X, y+lineHeight), text)
	}

	if !grade.Check(e.Color, e.Grade).Passes {
		drawWarning(img, r, text)
	}
}

// drawWarning marks a failing cell with a "!" badge in its top-right corner.
func drawWarning(img *image.RGBA, r image.Rectangle, c color.Color) {
	const size = 16
	badge := image.Rect(r.Max.X-size-4, r.Min.Y+4, r.Max.X-4, r.Min.Y+4+size)
	draw.Draw(img, badge, image.NewUniform(c), image.Point{}, draw.Src)

	inverse := color.Color(color.White)
	if c == (colour.RGB{R: 255, G: 255, B: 255}) {
		inverse = color.Black
	}
	drawCentred(img, "!", badge, inverse)
}

func drawCentred(img *image.RGBA, s string, r image.Rectangle, c color.Color) {
	width := font.MeasureString(face, s).Ceil()
	m := face.Metrics()
	baseline := r.Min.Y + (r.Dy()+m.Ascent.Ceil()-m.Descent.Ceil())/2

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(r.Min.X+(r.Dx()-width)/2, baseline),
	}
	d.DrawString(s)
}
