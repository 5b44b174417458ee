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

// Square represents a square annotation.  Despite the name, the annotation
// displays a rectangle filling the annotation rectangle.
type Square struct {
	shape
}

var _ Annotation = (*Square)(nil)

// NewSquare returns a square annotation covering the given rectangle.
func NewSquare(rect pdf.Rectangle) *Square {
	s := &Square{}
	s.Rect = rect
	return s
}

// AnnotationType returns "Square".
// This implements the [Annotation] interface.
func (s *Square) AnnotationType() pdf.Name {
	return "Square"
}

// Encode returns the annotation dictionary.
// This implements the [Annotation] interface.
func (s *Square) Encode(w *pdf.Writer) (pdf.Dict, error) {
	return s.shape.encode(w, "Square")
}
