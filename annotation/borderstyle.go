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

import (
	"errors"

	"seehuhn.de/go/prepress/pdf"
)

// PDF 2.0 sections: 12.5.4

// BorderStyle describes the border drawn around an annotation.
type BorderStyle struct {
	// Width is the border width in points.
	// If 0, no border is drawn.
	Width float64

	// Style is the border style.
	//  - "S" (Solid) is the default.
	//  - "D" (Dashed) specifies a dashed line.
	//  - "B" (Beveled) specifies a beveled line.
	//  - "I" (Inset) specifies an inset line.
	//  - "U" (Underline) specifies an underline.
	Style pdf.Name

	// DashArray (optional) defines a pattern of dashes and gaps for drawing
	// the border when Style is "D".
	DashArray []float64
}

var defaultDash = []float64{3}

// AsDict returns the border style dictionary.
func (b *BorderStyle) AsDict() (pdf.Dict, error) {
	if !(b.Width >= 0) {
		return nil, &pdf.GeometryError{Op: "BorderStyle", Msg: "negative border width"}
	}

	style := b.Style
	if style == "" {
		style = "S"
	}
	switch style {
	case "S", "D", "B", "I", "U":
	default:
		return nil, errors.New("invalid border style /" + string(style))
	}

	d := pdf.Dict{
		"Type": pdf.Name("Border"),
		"S":    style,
	}
	if b.Width != 1 {
		d["W"] = pdf.Number(b.Width)
	}

	if style == "D" {
		dash := b.dash()
		a := make(pdf.Array, len(dash))
		for i, x := range dash {
			if x < 0 {
				return nil, errors.New("negative dash value")
			}
			a[i] = pdf.Number(x)
		}
		d["D"] = a
	} else if b.DashArray != nil {
		return nil, errors.New("unexpected dash array")
	}

	return d, nil
}

// dash returns the dash pattern used for dashed borders.
func (b *BorderStyle) dash() []float64 {
	if len(b.DashArray) == 0 {
		return defaultDash
	}
	return b.DashArray
}
