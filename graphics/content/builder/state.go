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

// PushGraphicsState saves the current graphics state.
//
// This implements the PDF graphics operator "q".
func (b *Builder) PushGraphicsState() {
	if !b.requirePage("PushGraphicsState") {
		return
	}
	b.emit(content.OpPushGraphicsState)
	if b.Err == nil {
		b.depth++
	}
}

// PopGraphicsState restores the previous graphics state.
//
// This implements the PDF graphics operator "Q".
func (b *Builder) PopGraphicsState() {
	if !b.requirePage("PopGraphicsState") {
		return
	}
	if b.depth == 0 {
		b.Err = pdf.StateErrorf("PopGraphicsState", "no saved graphics state")
		return
	}
	b.emit(content.OpPopGraphicsState)
	if b.Err == nil {
		b.depth--
	}
}

// Transform applies a transformation matrix to the coordinate system.
//
// This implements the PDF graphics operator "cm".
func (b *Builder) Transform(m matrix.Matrix) {
	if !b.requirePage("Transform") {
		return
	}
	if !isFinite(m[:]...) {
		b.Err = &pdf.GeometryError{Op: "Transform", Msg: "non-finite matrix"}
		return
	}
	b.emit(content.OpTransform,
		pdf.Number(m[0]), pdf.Number(m[1]),
		pdf.Number(m[2]), pdf.Number(m[3]),
		pdf.Number(m[4]), pdf.Number(m[5]))
}

// SetLineWidth sets the line width.  A width of 0 selects the thinnest
// line the output device can render.
//
// This implements the PDF graphics operator "w".
func (b *Builder) SetLineWidth(width float64) {
	if b.Err != nil {
		return
	}
	if !(width >= 0) || !isFinite(width) {
		b.Err = &pdf.GeometryError{
			Op:  "SetLineWidth",
			Msg: fmt.Sprintf("invalid line width %g", width),
		}
		return
	}
	b.emit(content.OpSetLineWidth, pdf.Number(width))
}

// SetLineDash sets the line dash pattern.  An empty pattern selects solid
// lines.
//
// This implements the PDF graphics operator "d".
func (b *Builder) SetLineDash(pattern []float64, phase float64) {
	if b.Err != nil {
		return
	}
	arr := make(pdf.Array, len(pattern))
	allZero := len(pattern) > 0
	for i, x := range pattern {
		if !(x >= 0) || !isFinite(x) {
			b.Err = &pdf.GeometryError{
				Op:  "SetLineDash",
				Msg: fmt.Sprintf("invalid dash length %g", x),
			}
			return
		}
		if x != 0 {
			allZero = false
		}
		arr[i] = pdf.Number(x)
	}
	if allZero || !isFinite(phase) {
		b.Err = &pdf.GeometryError{Op: "SetLineDash", Msg: "invalid dash pattern"}
		return
	}
	b.emit(content.OpSetLineDash, arr, pdf.Number(phase))
}
