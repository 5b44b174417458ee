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

// Package layout draws print production marks and lays out text on pages.
//
// All drawing routines take the page geometry from the MediaBox.  As in
// common imposition tools, the width and height of the page are taken to be
// the upper right corner of the MediaBox.
package layout

import (
	"fmt"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/prepress/annotation"
	"seehuhn.de/go/prepress/document"
	"seehuhn.de/go/prepress/graphics/color"
	"seehuhn.de/go/prepress/graphics/content/builder"
	"seehuhn.de/go/prepress/pdf"
)

const (
	markLineWidth  = 0.5
	tickLength     = 7.0
	circleDiameter = 5.0
)

// checkBorder verifies that the border is positive and that the page is
// larger than the border in both directions.
func checkBorder(op string, mediaBox pdf.Rectangle, border float64) error {
	if err := pdf.CheckPositive(op, "border", border); err != nil {
		return err
	}
	if !(mediaBox.URx > border) || !(mediaBox.URy > border) {
		return &pdf.GeometryError{
			Op:  op,
			Msg: fmt.Sprintf("border %g does not fit page %gx%g", border, mediaBox.URx, mediaBox.URy),
		}
	}
	return nil
}

// Corners returns the centres of the registration marks for a page:
// bottom-left, top-left, top-right and bottom-right, in this order.
// Each point lies at distance border/2 from the two nearest page edges.
func Corners(mediaBox pdf.Rectangle, border float64) ([]vec.Vec2, error) {
	if err := checkBorder("Corners", mediaBox, border); err != nil {
		return nil, err
	}
	w, h := mediaBox.URx, mediaBox.URy
	d := border / 2
	return []vec.Vec2{
		{X: d, Y: d},
		{X: d, Y: h - d},
		{X: w - d, Y: h - d},
		{X: w - d, Y: d},
	}, nil
}

// DrawPrintFocus draws registration marks in the four corners of the page.
// Each mark consists of a horizontal and a vertical tick, drawn in the page
// content, and a small circle annotation centred on the same point.
func DrawPrintFocus(p *document.Page, border float64) error {
	corners, err := Corners(p.MediaBox, border)
	if err != nil {
		return err
	}

	err = p.Edit(func(b *builder.Builder) error {
		b.SetLineWidth(markLineWidth)
		b.SetStrokeColor(color.Registration)
		for _, c := range corners {
			b.MoveTo(c.X-tickLength/2, c.Y)
			b.LineTo(c.X+tickLength/2, c.Y)
			b.CloseAndStroke()

			b.MoveTo(c.X, c.Y-tickLength/2)
			b.LineTo(c.X, c.Y+tickLength/2)
			b.CloseAndStroke()
		}
		return nil
	})
	if err != nil {
		return err
	}

	for _, c := range corners {
		circle := annotation.NewCircle(c.X, c.Y, circleDiameter/2)
		circle.Flags = annotation.FlagPrint
		circle.Color = color.Registration
		circle.BorderStyle = &annotation.BorderStyle{Width: markLineWidth, Style: "S"}
		circle.BorderEffect = &annotation.BorderEffect{Style: "S"}
		if err := p.AddAnnotation(circle); err != nil {
			return err
		}
	}
	return nil
}
