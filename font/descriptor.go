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

package font

import (
	"math"

	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/prepress/pdf"
)

// Descriptor represents a PDF font descriptor.
//
// See section 9.8.1 of ISO 32000-2:2020.
type Descriptor struct {
	FontName     string
	IsFixedPitch bool
	IsSerif      bool
	IsSymbolic   bool
	IsItalic     bool

	FontBBox     rect.Rect
	ItalicAngle  float64
	Ascent       float64
	Descent      float64
	CapHeight    float64
	XHeight      float64 // optional
	StemV        float64
	MissingWidth float64 // optional

	FontFile2 pdf.Reference // optional, TrueType font program
}

const (
	flagFixedPitch  pdf.Integer = 1 << 0
	flagSerif       pdf.Integer = 1 << 1
	flagSymbolic    pdf.Integer = 1 << 2
	flagNonsymbolic pdf.Integer = 1 << 5
	flagItalic      pdf.Integer = 1 << 6
)

// AsDict returns the font descriptor dictionary.
func (d *Descriptor) AsDict() pdf.Dict {
	var flags pdf.Integer
	if d.IsFixedPitch {
		flags |= flagFixedPitch
	}
	if d.IsSerif {
		flags |= flagSerif
	}
	if d.IsSymbolic {
		flags |= flagSymbolic
	} else {
		flags |= flagNonsymbolic
	}
	if d.IsItalic {
		flags |= flagItalic
	}

	bbox := d.FontBBox
	dict := pdf.Dict{
		"Type":     pdf.Name("FontDescriptor"),
		"FontName": pdf.Name(d.FontName),
		"Flags":    flags,
		"FontBBox": &pdf.Rectangle{
			LLx: math.Round(bbox.LLx),
			LLy: math.Round(bbox.LLy),
			URx: math.Round(bbox.URx),
			URy: math.Round(bbox.URy),
		},
		"ItalicAngle": pdf.Number(d.ItalicAngle),
		"Ascent":      pdf.Number(math.Round(d.Ascent)),
		"Descent":     pdf.Number(math.Round(d.Descent)),
		"CapHeight":   pdf.Number(math.Round(d.CapHeight)),
		"StemV":       pdf.Number(d.StemV),
	}
	if d.XHeight != 0 {
		dict["XHeight"] = pdf.Number(math.Round(d.XHeight))
	}
	if d.MissingWidth != 0 {
		dict["MissingWidth"] = pdf.Number(d.MissingWidth)
	}
	if d.FontFile2 != 0 {
		dict["FontFile2"] = d.FontFile2
	}
	return dict
}
