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

package content

// OpName is the name of a content stream operator.
type OpName string

// These are the operators used by this library.
const (
	// General Graphics State
	OpPushGraphicsState OpName = "q"
	OpPopGraphicsState  OpName = "Q"
	OpTransform         OpName = "cm"
	OpSetLineWidth      OpName = "w"
	OpSetLineDash       OpName = "d"

	// Path Construction
	OpMoveTo    OpName = "m"
	OpLineTo    OpName = "l"
	OpCurveTo   OpName = "c"
	OpClosePath OpName = "h"
	OpRectangle OpName = "re"

	// Path Painting
	OpStroke         OpName = "S"
	OpCloseAndStroke OpName = "s"
	OpFill           OpName = "f"
	OpFillAndStroke  OpName = "B"

	// Text Objects
	OpTextBegin OpName = "BT"
	OpTextEnd   OpName = "ET"

	// Text State and Positioning
	OpTextSetFont    OpName = "Tf"
	OpTextMoveOffset OpName = "Td"
	OpTextSetMatrix  OpName = "Tm"

	// Text Showing
	OpTextShow OpName = "Tj"

	// Device Colors
	OpSetStrokeGray OpName = "G"
	OpSetFillGray   OpName = "g"
	OpSetStrokeRGB  OpName = "RG"
	OpSetFillRGB    OpName = "rg"
	OpSetStrokeCMYK OpName = "K"
	OpSetFillCMYK   OpName = "k"

	// XObjects
	OpXObject OpName = "Do"
)
