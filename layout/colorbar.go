// seehuhn.de/go/prepress - composing print-ready PDF files
// Copyright (C) 2025  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package layout

import (
	"seehuhn.de/go/prepress/document"
	"seehuhn.de/go/prepress/graphics/color"
	"seehuhn.de/go/prepress/graphics/content/builder"
)

const (
	swatchSize   = 6.0
	swatchOffset = 10.0
)

// ColorBarOptions controls the color bar drawn by [DrawPrintColor].
// A nil value selects the defaults.
type ColorBarOptions struct {
	// Process selects the process colors cyan, magenta, yellow and black.
	// By default, the bar shows red, green, blue and black.
	Process bool

	// Colors (optional) overrides the swatch colors, from top to bottom.
	Colors []color.Color
}

func (opt *ColorBarOptions) colors() []color.Color {
	switch {
	case opt == nil:
		return []color.Color{color.Red, color.Green, color.Blue, color.Black}
	case len(opt.Colors) > 0:
		return opt.Colors
	case opt.Process:
		return []color.Color{color.Cyan, color.Magenta, color.Yellow, color.Black}
	default:
		return []color.Color{color.Red, color.Green, color.Blue, color.Black}
	}
}

// DrawPrintColor draws a column of color swatches for printer calibration
// near the top-left corner of the page.  Each swatch is a 6x6 square,
// filled without stroke.
func DrawPrintColor(p *document.Page, border float64, opt *ColorBarOptions) error {
	if err := checkBorder("DrawPrintColor", p.MediaBox, border); err != nil {
		return err
	}

	h := p.MediaBox.URy
	bx := border/2 - swatchSize/2
	return p.Edit(func(b *builder.Builder) error {
		for k, c := range opt.colors() {
			by := h - border/2 - swatchSize*float64(k+1) - swatchOffset
			b.SetFillColor(c)
			b.Rectangle(bx, by, swatchSize, swatchSize)
			b.Fill()
		}
		return nil
	})
}
