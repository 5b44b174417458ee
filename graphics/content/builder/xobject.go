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

package builder

import (
	"fmt"

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/prepress/graphics/content"
	"seehuhn.de/go/prepress/pdf"
)

// DrawImage draws the image XObject with the given resource name, filling
// the rectangle with lower left corner (x, y) and the given width and
// height.  The drawing is wrapped in a saved graphics state.
//
// This implements the PDF graphics operators "q", "cm", "Do" and "Q".
func (b *Builder) DrawImage(name pdf.Name, x, y, width, height float64) {
	if !b.requirePage("DrawImage") {
		return
	}
	if !(width > 0) || !(height > 0) || !isFinite(x, y, width, height) {
		b.Err = &pdf.GeometryError{
			Op:  "DrawImage",
			Msg: fmt.Sprintf("invalid image size %gx%g", width, height),
		}
		return
	}

	b.PushGraphicsState()
	b.Transform(matrix.Matrix{width, 0, 0, height, x, y})
	b.DrawXObject(name)
	b.PopGraphicsState()
}

// DrawXObject draws the XObject with the given resource name.
//
// This implements the PDF graphics operator "Do".
func (b *Builder) DrawXObject(name pdf.Name) {
	if !b.requirePage("DrawXObject") {
		return
	}
	b.Resources.AddXObject(name)
	b.emit(content.OpXObject, name)
}
