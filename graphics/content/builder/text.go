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
	"math"

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/prepress/graphics/content"
	"seehuhn.de/go/prepress/pdf"
)

// Text Object Operators

// TextBegin starts a new text object.
// The text matrix is reset to the identity.
//
// This implements the PDF graphics operator "BT".
func (b *Builder) TextBegin() {
	if !b.requirePage("TextBegin") {
		return
	}
	b.emit(content.OpTextBegin)
	if b.Err == nil {
		b.inText = true
		b.lineMatrix = matrix.Identity
	}
}

// TextEnd ends the current text object.
//
// This implements the PDF graphics operator "ET".
func (b *Builder) TextEnd() {
	if !b.requireText("TextEnd") {
		return
	}
	b.emit(content.OpTextEnd)
	if b.Err == nil {
		b.inText = false
	}
}

// Text State Operators

// TextSetFont sets the font and font size.  The font is looked up in the
// font source of the builder.
//
// This implements the PDF graphics operator "Tf".
func (b *Builder) TextSetFont(name pdf.Name, size float64) {
	if b.Err != nil {
		return
	}
	if err := pdf.CheckPositive("TextSetFont", "font size", size); err != nil {
		b.Err = err
		return
	}
	var ok bool
	if b.fonts != nil {
		b.font, ok = b.fonts.Font(name)
	}
	if !ok {
		b.Err = &pdf.ResourceError{Op: "TextSetFont", Path: string(name), Err: errUnknownFont}
		return
	}
	b.fontSize = size
	b.Resources.AddFont(name)
	b.emit(content.OpTextSetFont, name, pdf.Number(size))
}

// Text Positioning Operators

// TextMoveOffset moves to the start of the next line, offset from the start
// of the current line by (dx, dy).  Offsets accumulate.
//
// This implements the PDF graphics operator "Td".
func (b *Builder) TextMoveOffset(dx, dy float64) {
	if !b.requireText("TextMoveOffset") {
		return
	}
	if !isFinite(dx, dy) {
		b.Err = &pdf.GeometryError{Op: "TextMoveOffset", Msg: "non-finite offset"}
		return
	}
	b.emit(content.OpTextMoveOffset, pdf.Number(dx), pdf.Number(dy))
	if b.Err == nil {
		b.lineMatrix = matrix.Translate(dx, dy).Mul(b.lineMatrix)
	}
}

// TextSetMatrix replaces the text matrix by a rotation by the given angle
// (in radians, counterclockwise), with the origin moved to (cx, cy).
//
// This implements the PDF graphics operator "Tm".
func (b *Builder) TextSetMatrix(rotation, cx, cy float64) {
	if !b.requireText("TextSetMatrix") {
		return
	}
	if !isFinite(rotation, cx, cy) {
		b.Err = &pdf.GeometryError{Op: "TextSetMatrix", Msg: "non-finite matrix"}
		return
	}
	sin, cos := math.Sincos(rotation)
	m := matrix.Matrix{cos, sin, -sin, cos, cx, cy}
	b.emit(content.OpTextSetMatrix,
		pdf.Number(m[0]), pdf.Number(m[1]),
		pdf.Number(m[2]), pdf.Number(m[3]),
		pdf.Number(m[4]), pdf.Number(m[5]))
	if b.Err == nil {
		b.lineMatrix = m
	}
}

// Text Showing Operators

// TextShow shows a text string, using the current font.
//
// This implements the PDF graphics operator "Tj".
func (b *Builder) TextShow(s string) {
	if !b.requireText("TextShow") {
		return
	}
	if b.font == nil {
		b.Err = pdf.StateErrorf("TextShow", "no font set")
		return
	}
	codes, err := b.font.Encode(s)
	if err != nil {
		b.Err = err
		return
	}
	b.emitText(content.OpTextShow, s, codes)
}
