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

import (
	"errors"
	"fmt"

	"seehuhn.de/go/prepress/pdf"
)

var (
	// ErrUnknown is returned when an operator is not recognized.
	ErrUnknown = errors.New("unknown operator")

	// ErrArgs is returned when an operator has the wrong number of arguments.
	ErrArgs = errors.New("wrong number of arguments")
)

// Operator represents a content stream operator with its arguments.
type Operator struct {
	Name OpName
	Args []pdf.Object

	// Text holds the text shown by a text showing operator.
	// It is not written to the content stream.
	Text string
}

// check verifies that the operator is known and has the right number of
// arguments.
func (o Operator) check() error {
	n, ok := numArgs[o.Name]
	if !ok {
		return ErrUnknown
	}
	if len(o.Args) != n {
		return fmt.Errorf("%w: expected %d, got %d", ErrArgs, n, len(o.Args))
	}
	return nil
}

// numArgs gives the number of operands for each operator.
var numArgs = map[OpName]int{
	OpPushGraphicsState: 0,
	OpPopGraphicsState:  0,
	OpTransform:         6,
	OpSetLineWidth:      1,
	OpSetLineDash:       2,

	OpMoveTo:    2,
	OpLineTo:    2,
	OpCurveTo:   6,
	OpClosePath: 0,
	OpRectangle: 4,

	OpStroke:         0,
	OpCloseAndStroke: 0,
	OpFill:           0,
	OpFillAndStroke:  0,

	OpTextBegin: 0,
	OpTextEnd:   0,

	OpTextSetFont:    2,
	OpTextMoveOffset: 2,
	OpTextSetMatrix:  6,

	OpTextShow: 1,

	OpSetStrokeGray: 1,
	OpSetFillGray:   1,
	OpSetStrokeRGB:  3,
	OpSetFillRGB:    3,
	OpSetStrokeCMYK: 4,
	OpSetFillCMYK:   4,

	OpXObject: 1,
}
