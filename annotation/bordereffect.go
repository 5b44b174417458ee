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

// BorderEffect represents a border effect dictionary that specifies
// an effect applied to an annotation's border.
type BorderEffect struct {
	// Style is the border effect style.
	//  - "S" (Solid): no effect.
	//  - "C" (Cloudy): border effect.
	//
	// An empty Style value is a shorthand for "S".
	Style pdf.Name

	// Intensity (meaningful only when Style is "C") specifies
	// the intensity of the cloudy border effect.
	// Valid range is 0.0 to 2.0.
	Intensity float64
}

// AsDict returns the border effect dictionary.
func (be *BorderEffect) AsDict() (pdf.Dict, error) {
	style := be.Style
	if style == "" {
		style = "S"
	}

	d := pdf.Dict{"S": style}
	switch style {
	case "C":
		if be.Intensity < 0.0 || be.Intensity > 2.0 {
			return nil, errors.New("invalid Intensity value")
		} else if be.Intensity != 0 {
			d["I"] = pdf.Number(be.Intensity)
		}
	case "S":
		if be.Intensity != 0 {
			return nil, errors.New("unexpected Intensity value")
		}
	default:
		return nil, errors.New("invalid border effect /" + string(style))
	}
	return d, nil
}
