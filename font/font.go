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

// Package font implements the fonts used for placing text on a page.
//
// All widths and glyph space coordinates in this package are given in
// thousandths of the text size, as in PDF glyph space.
package font

import (
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/prepress/pdf"
)

// Font represents a loaded font.  Fonts are immutable once loaded and can
// be shared between documents.
type Font interface {
	// PostScriptName returns the PostScript name of the font.
	PostScriptName() string

	// GlyphWidth returns the advance width of the glyph used to show r.
	// Runes which cannot be shown by the font get the missing width.
	GlyphWidth(r rune) float64

	// Metrics returns the global metrics of the font.
	Metrics() Metrics

	// Encode converts s to the character codes used in a PDF string for a
	// text showing operator.
	Encode(s string) (pdf.String, error)

	// Embed writes the font dictionary to w, as the object ref.
	// Text lists the runes shown in the document using this font.
	Embed(w *pdf.Writer, ref pdf.Reference, text []rune) error
}

// Metrics holds the global metrics of a font.
type Metrics struct {
	BBox         rect.Rect
	Ascent       float64
	Descent      float64 // negative
	CapHeight    float64
	XHeight      float64
	ItalicAngle  float64
	IsFixedPitch bool
}

// MeasureText returns the width and height of s when set in font f at the
// given size.  The width is the sum of the advance widths of the runes of s.
// The height is the vertical extent of the font bounding box.
func MeasureText(f Font, s string, size float64) (width, height float64) {
	var w float64
	for _, r := range s {
		w += f.GlyphWidth(r)
	}
	return w * size / 1000, LineHeight(f, size)
}

// LineHeight returns the height of the font bounding box, at the given size.
func LineHeight(f Font, size float64) float64 {
	bbox := f.Metrics().BBox
	return (bbox.URy - bbox.LLy) * size / 1000
}
