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

	"seehuhn.de/go/prepress/graphics/content"
	"seehuhn.de/go/prepress/pdf"
)

// Path Construction Operators

// MoveTo starts a new path at the given coordinates.
//
// This implements the PDF graphics operator "m".
func (b *Builder) MoveTo(x, y float64) {
	if !b.requirePage("MoveTo") {
		return
	}
	if !isFinite(x, y) {
		b.Err = &pdf.GeometryError{Op: "MoveTo", Msg: "non-finite coordinates"}
		return
	}
	b.emit(content.OpMoveTo, pdf.Number(x), pdf.Number(y))
}

// LineTo appends a straight line segment to the current path.
//
// This implements the PDF graphics operator "l".
func (b *Builder) LineTo(x, y float64) {
	if !b.requirePage("LineTo") {
		return
	}
	if !isFinite(x, y) {
		b.Err = &pdf.GeometryError{Op: "LineTo", Msg: "non-finite coordinates"}
		return
	}
	b.emit(content.OpLineTo, pdf.Number(x), pdf.Number(y))
}

// CurveTo appends a cubic Bézier curve to the current path.
//
// This implements the PDF graphics operator "c".
func (b *Builder) CurveTo(x1, y1, x2, y2, x3, y3 float64) {
	if !b.requirePage("CurveTo") {
		return
	}
	if !isFinite(x1, y1, x2, y2, x3, y3) {
		b.Err = &pdf.GeometryError{Op: "CurveTo", Msg: "non-finite coordinates"}
		return
	}
	b.emit(content.OpCurveTo,
		pdf.Number(x1), pdf.Number(y1),
		pdf.Number(x2), pdf.Number(y2),
		pdf.Number(x3), pdf.Number(y3))
}

// ClosePath closes the current subpath.
//
// This implements the PDF graphics operator "h".
func (b *Builder) ClosePath() {
	if !b.requirePage("ClosePath") {
		return
	}
	b.emit(content.OpClosePath)
}

// Rectangle appends a rectangle to the current path as a closed subpath.
// Width and height must be positive.
//
// This implements the PDF graphics operator "re".
func (b *Builder) Rectangle(x, y, width, height float64) {
	if !b.requirePage("Rectangle") {
		return
	}
	if !isFinite(x, y) || !(width > 0) || !(height > 0) || !isFinite(width, height) {
		b.Err = &pdf.GeometryError{
			Op:  "Rectangle",
			Msg: fmt.Sprintf("invalid rectangle %gx%g at (%g, %g)", width, height, x, y),
		}
		return
	}
	b.emit(content.OpRectangle,
		pdf.Number(x), pdf.Number(y),
		pdf.Number(width), pdf.Number(height))
}

// Path Painting Operators

// Stroke strokes the current path.
//
// This implements the PDF graphics operator "S".
func (b *Builder) Stroke() {
	if !b.requirePage("Stroke") {
		return
	}
	b.emit(content.OpStroke)
}

// CloseAndStroke closes and strokes the current path.
//
// This implements the PDF graphics operator "s".
func (b *Builder) CloseAndStroke() {
	if !b.requirePage("CloseAndStroke") {
		return
	}
	b.emit(content.OpCloseAndStroke)
}

// Fill fills the current path, using the nonzero winding number rule.
//
// This implements the PDF graphics operator "f".
func (b *Builder) Fill() {
	if !b.requirePage("Fill") {
		return
	}
	b.emit(content.OpFill)
}

// FillAndStroke fills and then strokes the current path.
//
// This implements the PDF graphics operator "B".
func (b *Builder) FillAndStroke() {
	if !b.requirePage("FillAndStroke") {
		return
	}
	b.emit(content.OpFillAndStroke)
}
