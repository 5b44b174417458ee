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

// Package annotation implements the page annotations used for print marks.
//
// Annotations are not part of the page content stream.  They are written
// as separate objects and listed in the /Annots array of the page.
package annotation

import (
	"errors"

	"seehuhn.de/go/prepress/graphics/color"
	"seehuhn.de/go/prepress/pdf"
)

// Annotation represents a PDF annotation.
type Annotation interface {
	// AnnotationType returns the subtype of the annotation, e.g. "Circle".
	AnnotationType() pdf.Name

	// Encode returns the annotation dictionary.  Auxiliary objects, like
	// appearance streams, are written to w.
	Encode(w *pdf.Writer) (pdf.Dict, error)
}

// PDF 2.0 sections: 12.5.2

// Common holds the fields shared by all annotation types.
type Common struct {
	// Rect is the location of the annotation on the page,
	// in default user space units.
	Rect pdf.Rectangle

	// Contents (optional) is a text description of the annotation.
	Contents string

	// Name (optional) uniquely identifies the annotation on its page.
	Name string

	// Flags is a set of flags specifying various characteristics of the
	// annotation.
	Flags Flags

	// Color (optional) is the color of the border.
	// If this is nil, no border is drawn.
	Color color.Color
}

func (c *Common) fillDict(dict pdf.Dict) error {
	if c.Rect.Dx() <= 0 || c.Rect.Dy() <= 0 {
		return &pdf.GeometryError{Op: "annotation", Msg: "empty rectangle " + c.Rect.String()}
	}

	dict["Type"] = pdf.Name("Annot")
	rect := c.Rect
	dict["Rect"] = &rect
	if c.Contents != "" {
		dict["Contents"] = pdf.TextString(c.Contents)
	}
	if c.Name != "" {
		dict["NM"] = pdf.TextString(c.Name)
	}
	if c.Flags != 0 {
		dict["F"] = pdf.Integer(c.Flags)
	}
	if c.Color != nil {
		arr, err := colorArray(c.Color)
		if err != nil {
			return err
		}
		dict["C"] = arr
	}
	return nil
}

// colorArray converts a device color to the array form used in annotation
// dictionaries.
func colorArray(c color.Color) (pdf.Array, error) {
	if err := color.Check(c); err != nil {
		return nil, err
	}
	values := c.Components()
	if len(values) != 1 && len(values) != 3 && len(values) != 4 {
		return nil, errors.New("unsupported annotation color")
	}
	res := make(pdf.Array, len(values))
	for i, x := range values {
		res[i] = pdf.Number(x)
	}
	return res, nil
}
