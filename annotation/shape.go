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
	"bytes"
	"errors"
	"math"

	"seehuhn.de/go/prepress/graphics/color"
	"seehuhn.de/go/prepress/graphics/content/builder"
	"seehuhn.de/go/prepress/pdf"
)

// shape holds the fields shared by circle and square annotations.
type shape struct {
	Common

	// FillColor (optional) is the interior color of the annotation.
	// If this is nil, the interior is transparent.
	FillColor color.Color

	// BorderStyle (optional) is the border style.
	// If this is nil, a solid border of width 1 is used.
	BorderStyle *BorderStyle

	// BorderEffect (optional) is an effect applied to the border.
	// This requires BorderStyle to be set.
	BorderEffect *BorderEffect
}

func (s *shape) encode(w *pdf.Writer, subtype pdf.Name) (pdf.Dict, error) {
	if s.BorderStyle == nil && s.BorderEffect != nil {
		return nil, errors.New("border effect without border style")
	}

	dict := pdf.Dict{
		"Subtype": subtype,
	}
	if err := s.Common.fillDict(dict); err != nil {
		return nil, err
	}

	if s.BorderStyle != nil {
		bs, err := s.BorderStyle.AsDict()
		if err != nil {
			return nil, err
		}
		dict["BS"] = bs
	}
	if s.BorderEffect != nil {
		be, err := s.BorderEffect.AsDict()
		if err != nil {
			return nil, err
		}
		dict["BE"] = be
	}
	if s.FillColor != nil {
		ic, err := colorArray(s.FillColor)
		if err != nil {
			return nil, err
		}
		dict["IC"] = ic
	}

	ap, err := s.appearance(subtype)
	if err != nil {
		return nil, err
	}
	ref := w.Alloc()
	if err := w.Put(ref, ap); err != nil {
		return nil, err
	}
	dict["AP"] = pdf.Dict{"N": ref}

	return dict, nil
}

func (s *shape) borderWidth() float64 {
	if s.Color == nil {
		return 0
	}
	if s.BorderStyle == nil {
		return 1
	}
	return s.BorderStyle.Width
}

// appearance returns a form XObject which draws the annotation.
// The bounding box of the form is the annotation rectangle, translated to
// the origin.
func (s *shape) appearance(subtype pdf.Name) (*pdf.Stream, error) {
	dx := s.Rect.Dx()
	dy := s.Rect.Dy()
	bw := s.borderWidth()
	stroke := bw > 0 && 2*bw < min(dx, dy)
	fill := s.FillColor != nil

	b := builder.New(nil)
	if stroke || fill {
		if fill {
			b.SetFillColor(s.FillColor)
		}
		if stroke {
			b.SetLineWidth(bw)
			b.SetStrokeColor(s.Color)
			if s.BorderStyle != nil && s.BorderStyle.Style == "D" {
				b.SetLineDash(s.BorderStyle.dash(), 0)
			}
		} else {
			bw = 0
		}

		x0, y0 := bw/2, bw/2
		w, h := dx-bw, dy-bw
		switch subtype {
		case "Circle":
			ellipse(b, x0+w/2, y0+h/2, w/2, h/2)
		default:
			b.Rectangle(x0, y0, w, h)
		}

		switch {
		case stroke && fill:
			b.FillAndStroke()
		case stroke:
			b.Stroke()
		default:
			b.Fill()
		}
	}
	stm, err := b.Harvest()
	if err != nil {
		return nil, err
	}

	buf := &bytes.Buffer{}
	if err := stm.Write(buf); err != nil {
		return nil, err
	}
	dict := pdf.Dict{
		"Type":    pdf.Name("XObject"),
		"Subtype": pdf.Name("Form"),
		"BBox":    &pdf.Rectangle{URx: dx, URy: dy},
	}
	return &pdf.Stream{Dict: dict, Data: buf.Bytes()}, nil
}

// kappa is the control point distance for approximating a quarter circle
// of radius 1 by a cubic Bézier curve.
var kappa = 4 * (math.Sqrt2 - 1) / 3

// ellipse appends an axis-aligned ellipse to the current path of b.
func ellipse(b *builder.Builder, cx, cy, rx, ry float64) {
	kx := kappa * rx
	ky := kappa * ry
	b.MoveTo(cx+rx, cy)
	b.CurveTo(cx+rx, cy+ky, cx+kx, cy+ry, cx, cy+ry)
	b.CurveTo(cx-kx, cy+ry, cx-rx, cy+ky, cx-rx, cy)
	b.CurveTo(cx-rx, cy-ky, cx-kx, cy-ry, cx, cy-ry)
	b.CurveTo(cx+kx, cy-ry, cx+rx, cy-ky, cx+rx, cy)
	b.ClosePath()
}
