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

package annotation

import "seehuhn.de/go/prepress/pdf"

// PDF 2.0 sections: 12.5.6.8

// Circle represents a circle annotation.  The annotation displays an
// ellipse inscribed in the annotation rectangle.
type Circle struct {
	shape
}

var _ Annotation = (*Circle)(nil)

// NewCircle returns a circle annotation centred at (cx, cy) with the given
// radius.
func NewCircle(cx, cy, radius float64) *Circle {
	c := &Circle{}
	c.Rect = pdf.Rectangle{
		LLx: cx - radius,
		LLy: cy - radius,
		URx: cx + radius,
		URy: cy + radius,
	}
	return c
}

// AnnotationType returns "Circle".
// This implements the [Annotation] interface.
func (c *Circle) AnnotationType() pdf.Name {
	return "Circle"
}

// Encode returns the annotation dictionary.
// This implements the [Annotation] interface.
func (c *Circle) Encode(w *pdf.Writer) (pdf.Dict, error) {
	return c.shape.encode(w, "Circle")
}
