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
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/prepress/graphics/color"
	"seehuhn.de/go/prepress/pdf"
)

func newWriter(t *testing.T) (*pdf.Writer, *bytes.Buffer) {
	t.Helper()
	buf := &bytes.Buffer{}
	w, err := pdf.NewWriter(buf, pdf.V1_7)
	if err != nil {
		t.Fatal(err)
	}
	return w, buf
}

func registrationCircle() *Circle {
	c := NewCircle(10, 20, 2.5)
	c.Flags = FlagPrint
	c.Color = color.Registration
	c.BorderStyle = &BorderStyle{Width: 0.5, Style: "S"}
	c.BorderEffect = &BorderEffect{Style: "S"}
	return c
}

func TestCircleDict(t *testing.T) {
	w, buf := newWriter(t)
	dict, err := registrationCircle().Encode(w)
	if err != nil {
		t.Fatal(err)
	}

	want := pdf.Dict{
		"Type":    pdf.Name("Annot"),
		"Subtype": pdf.Name("Circle"),
		"Rect":    &pdf.Rectangle{LLx: 7.5, LLy: 17.5, URx: 12.5, URy: 22.5},
		"F":       pdf.Integer(4),
		"C":       pdf.Array{pdf.Number(1), pdf.Number(1), pdf.Number(1), pdf.Number(0)},
		"BS": pdf.Dict{
			"Type": pdf.Name("Border"),
			"W":    pdf.Number(0.5),
			"S":    pdf.Name("S"),
		},
		"BE": pdf.Dict{"S": pdf.Name("S")},
		"AP": pdf.Dict{"N": pdf.Reference(1)},
	}
	if d := cmp.Diff(want, dict); d != "" {
		t.Errorf("annotation dict (-want +got):\n%s", d)
	}
	if _, hasIC := dict["IC"]; hasIC {
		t.Error("transparent circle has an interior color")
	}

	out := buf.String()
	if !strings.Contains(out, "/Subtype /Form") {
		t.Error("appearance stream is not a form XObject")
	}
	if !strings.Contains(out, "0.5 w\n1 1 1 0 K\n") {
		t.Errorf("appearance does not set the border:\n%s", out)
	}
	if n := strings.Count(out, " c\n"); n != 4 {
		t.Errorf("expected 4 curve segments, got %d", n)
	}
	if !strings.Contains(out, "h\nS\n") {
		t.Errorf("ellipse is not closed and stroked:\n%s", out)
	}
}

func TestSquareAppearance(t *testing.T) {
	s := NewSquare(pdf.Rectangle{LLx: 0, LLy: 0, URx: 20, URy: 10})
	s.Color = color.Black
	s.FillColor = color.Gray(0.5)
	s.BorderStyle = &BorderStyle{Width: 2, Style: "D", DashArray: []float64{4, 2}}

	w, buf := newWriter(t)
	dict, err := s.Encode(w)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(pdf.Array{pdf.Number(0.5)}, dict["IC"]); d != "" {
		t.Errorf("interior color (-want +got):\n%s", d)
	}
	wantContent := "0.5 g\n2 w\n0 0 0 1 K\n[4 2] 0 d\n1 1 18 8 re\nB\n"
	if !strings.Contains(buf.String(), wantContent) {
		t.Errorf("unexpected appearance stream:\n%s", buf.String())
	}
}

func TestEncodeErrors(t *testing.T) {
	cases := []struct {
		name string
		ann  func() Annotation
	}{
		{"effect without style", func() Annotation {
			c := registrationCircle()
			c.BorderStyle = nil
			return c
		}},
		{"negative width", func() Annotation {
			c := registrationCircle()
			c.BorderStyle.Width = -1
			return c
		}},
		{"unexpected dash", func() Annotation {
			c := registrationCircle()
			c.BorderStyle.DashArray = []float64{1}
			return c
		}},
		{"invalid intensity", func() Annotation {
			c := registrationCircle()
			c.BorderEffect = &BorderEffect{Style: "C", Intensity: 3}
			return c
		}},
		{"empty rectangle", func() Annotation {
			return NewCircle(0, 0, 0)
		}},
		{"color out of range", func() Annotation {
			c := registrationCircle()
			c.Color = color.CMYK{C: 1.5}
			return c
		}},
	}
	for _, test := range cases {
		w, _ := newWriter(t)
		if _, err := test.ann().Encode(w); err == nil {
			t.Errorf("%s: expected an error", test.name)
		}
	}

	w, _ := newWriter(t)
	_, err := NewCircle(0, 0, -1).Encode(w)
	var geomErr *pdf.GeometryError
	if !errors.As(err, &geomErr) {
		t.Errorf("expected GeometryError, got %v", err)
	}
}

func TestBorderStyleDefaults(t *testing.T) {
	bs := &BorderStyle{Width: 1}
	d, err := bs.AsDict()
	if err != nil {
		t.Fatal(err)
	}
	want := pdf.Dict{"Type": pdf.Name("Border"), "S": pdf.Name("S")}
	if diff := cmp.Diff(want, d); diff != "" {
		t.Errorf("default border style (-want +got):\n%s", diff)
	}

	bs = &BorderStyle{Width: 1, Style: "D"}
	d, err = bs.AsDict()
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(pdf.Array{pdf.Number(3)}, d["D"]); diff != "" {
		t.Errorf("default dash (-want +got):\n%s", diff)
	}
}
