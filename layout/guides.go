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
	"fmt"

	"seehuhn.de/go/prepress/document"
	"seehuhn.de/go/prepress/graphics/color"
	"seehuhn.de/go/prepress/graphics/content/builder"
	"seehuhn.de/go/prepress/pdf"
)

// guideDivisions is the number of horizontal bands the content area is
// divided into by [DrawLayoutLevel3].
const guideDivisions = 5

// DrawLayoutLevel3 draws cutting and folding guides inside the border:
// horizontal lines at 1/5, 2/5, 3/5 and 4/5 of the content height, from
// bottom to top, followed by a vertical line through the centre.
func DrawLayoutLevel3(p *document.Page, border float64) error {
	if !(border >= 0) {
		return &pdf.GeometryError{Op: "DrawLayoutLevel3", Msg: fmt.Sprintf("invalid border %g", border)}
	}
	cw := p.MediaBox.URx - 2*border
	ch := p.MediaBox.URy - 2*border
	if err := pdf.CheckPositive("DrawLayoutLevel3", "content width", cw); err != nil {
		return err
	}
	if err := pdf.CheckPositive("DrawLayoutLevel3", "content height", ch); err != nil {
		return err
	}

	return p.Edit(func(b *builder.Builder) error {
		b.SetLineWidth(markLineWidth)
		b.SetStrokeColor(color.Registration)
		line := func(x0, y0, x1, y1 float64) {
			b.MoveTo(x0, y0)
			b.LineTo(x1, y1)
			b.CloseAndStroke()
		}
		for k := 1; k < guideDivisions; k++ {
			y := border + ch*float64(k)/guideDivisions
			line(border, y, border+cw, y)
		}
		x := border + cw/2
		line(x, border, x, border+ch)
		return nil
	})
}

// DrawRect strokes the outline of a rectangle in cyan.
func DrawRect(p *document.Page, x, y, width, height float64) error {
	return p.Edit(func(b *builder.Builder) error {
		b.SetStrokeColor(color.Cyan)
		b.Rectangle(x, y, width, height)
		b.Stroke()
		return nil
	})
}
