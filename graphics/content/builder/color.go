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
	"seehuhn.de/go/prepress/graphics/color"
	"seehuhn.de/go/prepress/graphics/content"
	"seehuhn.de/go/prepress/pdf"
)

// SetStrokeColor sets the color to use for stroking operations.
//
// This implements the PDF graphics operators "G", "RG" and "K".
func (b *Builder) SetStrokeColor(c color.Color) {
	b.setColor(c, false)
}

// SetFillColor sets the color to use for non-stroking operations.
//
// This implements the PDF graphics operators "g", "rg" and "k".
func (b *Builder) SetFillColor(c color.Color) {
	b.setColor(c, true)
}

func (b *Builder) setColor(c color.Color, fill bool) {
	if b.Err != nil {
		return
	}
	if err := color.Check(c); err != nil {
		b.Err = err
		return
	}

	var op content.OpName
	switch c.ColorSpaceFamily() {
	case color.FamilyDeviceGray:
		op = content.OpSetStrokeGray
		if fill {
			op = content.OpSetFillGray
		}
	case color.FamilyDeviceRGB:
		op = content.OpSetStrokeRGB
		if fill {
			op = content.OpSetFillRGB
		}
	case color.FamilyDeviceCMYK:
		op = content.OpSetStrokeCMYK
		if fill {
			op = content.OpSetFillCMYK
		}
	default:
		b.Err = pdf.StateErrorf("SetColor", "unsupported color space %s", c.ColorSpaceFamily())
		return
	}

	values := c.Components()
	args := make([]pdf.Object, len(values))
	for i, x := range values {
		args[i] = pdf.Number(x)
	}
	b.emit(op, args...)
}
