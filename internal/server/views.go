package server

import (
	"github.com/jmylchreest/tonal/internal/colour"
	"github.com/jmylchreest/tonal/internal/grade"
	"github.com/jmylchreest/tonal/internal/palette"
)

// EntryView is a palette entry with everything a renderer needs to draw it.
type EntryView struct {
	Grade     grade.Grade      `json:"grade"`
	Color     string           `json:"color"`
	Luminance colour.Luminance `json:"luminance"`
	HSL       string           `json:"hsl"`
	// TextColor is the label colour that stays legible on Color.
	TextColor string       `json:"text_color"`
	Check     grade.Result `json:"check"`
}

// ScaleView is an annotated scale.
type ScaleView struct {
	Scale  string      `json:"scale"`
	Grades []EntryView `json:"grades"`
}

// PaletteView is an annotated palette and the location that addresses it.
type PaletteView struct {
	Scales   []ScaleView `json:"scales"`
	Location string      `json:"location"`
	// Failing counts entries that do not meet their grade.
	Failing int `json:"failing"`
}

func newEntryView(e palette.Entry) EntryView {
	lum := colour.LuminanceOf(e.Color)
	return EntryView{
		Grade:     e.Grade,
		Color:     e.Color,
		Luminance: lum,
		HSL:       colour.HSLString(e.Color),
		TextColor: colour.LegibleText(max(lum.Raw, 0)).Hex(),
		Check:     grade.Check(e.Color, e.Grade),
	}
}

func newPaletteView(p palette.Palette, location string) PaletteView {
	view := PaletteView{
		Scales:   make([]ScaleView, len(p)),
		Location: location,
	}
	for i, s := range p {
		sv := ScaleView{Scale: s.Name, Grades: make([]EntryView, len(s.Grades))}
		for j, e := range s.Grades {
			sv.Grades[j] = newEntryView(e)
			if !sv.Grades[j].Check.Passes {
				view.Failing++
			}
		}
		view.Scales[i] = sv
	}
	return view
}
