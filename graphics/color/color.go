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

// Package color implements the device color spaces and output intents.
package color

import (
	"fmt"

	"seehuhn.de/go/prepress/pdf"
)

// Color represents a color in one of the device color spaces.
type Color interface {
	// ColorSpaceFamily returns the name of the color space,
	// for example /DeviceRGB.
	ColorSpaceFamily() pdf.Name

	// Components returns the color values, each in the range [0, 1].
	Components() []float64
}

// Names of the device color spaces.
const (
	FamilyDeviceGray pdf.Name = "DeviceGray"
	FamilyDeviceRGB  pdf.Name = "DeviceRGB"
	FamilyDeviceCMYK pdf.Name = "DeviceCMYK"
)

// Gray is a color in the DeviceGray color space.
// The value ranges from 0 (black) to 1 (white).
type Gray float64

// ColorSpaceFamily implements the [Color] interface.
func (c Gray) ColorSpaceFamily() pdf.Name {
	return FamilyDeviceGray
}

// Components implements the [Color] interface.
func (c Gray) Components() []float64 {
	return []float64{float64(c)}
}

// RGB is a color in the DeviceRGB color space.
type RGB struct {
	R, G, B float64
}

// ColorSpaceFamily implements the [Color] interface.
func (c RGB) ColorSpaceFamily() pdf.Name {
	return FamilyDeviceRGB
}

// Components implements the [Color] interface.
func (c RGB) Components() []float64 {
	return []float64{c.R, c.G, c.B}
}

// CMYK is a color in the DeviceCMYK color space.
type CMYK struct {
	C, M, Y, K float64
}

// ColorSpaceFamily implements the [Color] interface.
func (c CMYK) ColorSpaceFamily() pdf.Name {
	return FamilyDeviceCMYK
}

// Components implements the [Color] interface.
func (c CMYK) Components() []float64 {
	return []float64{c.C, c.M, c.Y, c.K}
}

// Frequently used colors.
var (
	Red   = RGB{R: 1}
	Green = RGB{G: 1}
	Blue  = RGB{B: 1}

	Cyan    = CMYK{C: 1}
	Magenta = CMYK{M: 1}
	Yellow  = CMYK{Y: 1}
	Black   = CMYK{K: 1}

	// Registration is used for marks which must appear on the
	// cyan, magenta and yellow separations.
	Registration = CMYK{C: 1, M: 1, Y: 1}
)

// Check returns an error if c is nil or if any color component lies
// outside the range [0, 1].
func Check(c Color) error {
	if c == nil {
		return &pdf.GeometryError{Op: "set color", Msg: "missing color"}
	}
	for i, x := range c.Components() {
		if !(x >= 0 && x <= 1) {
			return &pdf.GeometryError{
				Op:  "set color",
				Msg: fmt.Sprintf("%s component %d out of range: %g", c.ColorSpaceFamily(), i, x),
			}
		}
	}
	return nil
}
