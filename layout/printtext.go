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
	"seehuhn.de/go/prepress/font"
	"seehuhn.de/go/prepress/graphics/color"
	"seehuhn.de/go/prepress/graphics/content/builder"
)

// printTextSize is the font size used for the page title and serial numbers.
const printTextSize = 6

// DrawPrintText draws the labels in the border band of a print sheet.  The
// title, if non-nil, is centred at the bottom of the page.  The serial
// numbers, if non-nil, are placed at the top-left and top-right.
// All labels use 6pt Helvetica and are lowered by a third of the line
// height, to centre them in the border.
func DrawPrintText(p *document.Page, border float64, title, first, last *string) error {
	if err := checkBorder("DrawPrintText", p.MediaBox, border); err != nil {
		return err
	}
	if title == nil && first == nil && last == nil {
		return nil
	}

	f := font.Helvetica
	name, err := p.Document().AddFont(f)
	if err != nil {
		return err
	}

	w, h := p.MediaBox.URx, p.MediaBox.URy
	th := font.LineHeight(f, printTextSize)
	top := h - border/2 - th/3

	return p.Edit(func(b *builder.Builder) error {
		b.SetFillColor(color.Black)
		show := func(s string, x, y float64) {
			b.TextBegin()
			b.TextSetFont(name, printTextSize)
			b.TextMoveOffset(x, y)
			b.TextShow(s)
			b.TextEnd()
		}

		if title != nil {
			tw, _ := font.MeasureText(f, *title, printTextSize)
			show(*title, (w-tw)/2, border/2-th/3)
		}
		if first != nil {
			show(*first, border+5, top)
		}
		if last != nil {
			tw, _ := font.MeasureText(f, *last, printTextSize)
			show(*last, w-border-5-tw, top)
		}
		return nil
	})
}
