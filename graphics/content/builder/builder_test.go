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
	"bytes"
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/prepress/font"
	"seehuhn.de/go/prepress/graphics/color"
	"seehuhn.de/go/prepress/graphics/content"
	"seehuhn.de/go/prepress/pdf"
)

var testFonts = FontMap{"F1": font.Helvetica}

func render(t *testing.T, s content.Stream) string {
	t.Helper()
	buf := &bytes.Buffer{}
	if err := s.Write(buf); err != nil {
		t.Fatal(err)
	}
	return buf.String()
}

func TestOperatorOrder(t *testing.T) {
	b := New(testFonts)
	b.SetLineWidth(0.5)
	b.SetStrokeColor(color.Registration)
	b.MoveTo(6.5, 10)
	b.LineTo(13.5, 10)
	b.CloseAndStroke()
	b.SetFillColor(color.Red)
	b.Rectangle(7, 766, 6, 6)
	b.Fill()
	b.SetFillColor(color.Gray(0.5))
	b.TextBegin()
	b.TextSetFont("F1", 12)
	b.TextMoveOffset(40, 780)
	b.TextShow("Hi")
	b.TextMoveOffset(0, -40)
	b.TextEnd()
	b.DrawImage("Im1", 10, 20, 100, 50)

	stm, err := b.Harvest()
	if err != nil {
		t.Fatal(err)
	}
	want := `0.5 w
1 1 1 0 K
6.5 10 m
13.5 10 l
s
1 0 0 rg
7 766 6 6 re
f
0.5 g
BT
/F1 12 Tf
40 780 Td
(Hi) Tj
0 -40 Td
ET
q
100 0 0 50 10 20 cm
/Im1 Do
Q
`
	if d := cmp.Diff(want, render(t, stm)); d != "" {
		t.Errorf("content stream mismatch (-want +got):\n%s", d)
	}
	if err := stm.Validate(); err != nil {
		t.Error(err)
	}

	if d := cmp.Diff([]pdf.Name{"F1"}, b.Resources.FontNames()); d != "" {
		t.Errorf("font resources (-want +got):\n%s", d)
	}
	if d := cmp.Diff([]pdf.Name{"Im1"}, b.Resources.XObjectNames()); d != "" {
		t.Errorf("XObject resources (-want +got):\n%s", d)
	}
}

func TestTextState(t *testing.T) {
	cases := []struct {
		name string
		run  func(b *Builder)
	}{
		{"show outside text", func(b *Builder) {
			b.TextSetFont("F1", 12)
			b.TextShow("x")
		}},
		{"nested BT", func(b *Builder) {
			b.TextBegin()
			b.TextBegin()
		}},
		{"ET without BT", func(b *Builder) {
			b.TextEnd()
		}},
		{"show without font", func(b *Builder) {
			b.TextBegin()
			b.TextShow("x")
		}},
		{"Td outside text", func(b *Builder) {
			b.TextMoveOffset(1, 1)
		}},
		{"path in text", func(b *Builder) {
			b.TextBegin()
			b.MoveTo(1, 1)
		}},
		{"unbalanced Q", func(b *Builder) {
			b.PopGraphicsState()
		}},
	}
	for _, test := range cases {
		b := New(testFonts)
		test.run(b)
		var stateErr *pdf.StateError
		if !errors.As(b.Err, &stateErr) {
			t.Errorf("%s: expected StateError, got %v", test.name, b.Err)
		}
	}
}

func TestStickyError(t *testing.T) {
	b := New(testFonts)
	b.MoveTo(0, 0)
	b.TextEnd() // error
	first := b.Err
	b.LineTo(1, 1)
	b.SetLineWidth(-1)
	if b.Err != first {
		t.Errorf("error was replaced: %v", b.Err)
	}
	if len(b.Stream) != 1 {
		t.Errorf("operators appended after error: %d", len(b.Stream))
	}
	if _, err := b.Harvest(); err != first {
		t.Errorf("Harvest returned %v", err)
	}
}

func TestGeometryErrors(t *testing.T) {
	cases := []struct {
		name string
		run  func(b *Builder)
	}{
		{"zero rectangle", func(b *Builder) { b.Rectangle(0, 0, 0, 10) }},
		{"negative rectangle", func(b *Builder) { b.Rectangle(0, 0, 10, -1) }},
		{"font size", func(b *Builder) { b.TextSetFont("F1", 0) }},
		{"image size", func(b *Builder) { b.DrawImage("Im1", 0, 0, 10, 0) }},
		{"line width", func(b *Builder) { b.SetLineWidth(-0.5) }},
		{"color", func(b *Builder) { b.SetFillColor(color.RGB{R: 2}) }},
		{"NaN", func(b *Builder) { b.MoveTo(math.NaN(), 0) }},
	}
	for _, test := range cases {
		b := New(testFonts)
		test.run(b)
		var geomErr *pdf.GeometryError
		if !errors.As(b.Err, &geomErr) {
			t.Errorf("%s: expected GeometryError, got %v", test.name, b.Err)
		}
	}
}

func TestUnknownFont(t *testing.T) {
	b := New(testFonts)
	b.TextSetFont("F9", 10)
	var resErr *pdf.ResourceError
	if !errors.As(b.Err, &resErr) {
		t.Errorf("expected ResourceError, got %v", b.Err)
	}

	b = New(testFonts)
	b.TextBegin()
	b.TextSetFont("F1", 10)
	b.TextShow("日本")
	if !errors.As(b.Err, &resErr) {
		t.Errorf("expected ResourceError, got %v", b.Err)
	}
}

func TestHarvest(t *testing.T) {
	b := New(testFonts)
	b.TextBegin()
	if _, err := b.Harvest(); err == nil {
		t.Error("harvest with open text object succeeded")
	}

	b = New(testFonts)
	b.PushGraphicsState()
	if _, err := b.Harvest(); err == nil {
		t.Error("harvest with open graphics state succeeded")
	}

	b = New(testFonts)
	b.MoveTo(0, 0)
	if _, err := b.Harvest(); err != nil {
		t.Fatal(err)
	}
	b.LineTo(1, 1)
	var stateErr *pdf.StateError
	if !errors.As(b.Err, &stateErr) {
		t.Errorf("use after harvest: expected StateError, got %v", b.Err)
	}
}

func TestTextMatrix(t *testing.T) {
	b := New(testFonts)
	b.TextBegin()
	b.TextMoveOffset(10, 20)
	b.TextMoveOffset(5, -40)
	if d := cmp.Diff(matrix.Translate(15, -20), b.TextLineMatrix()); d != "" {
		t.Errorf("cumulative offset (-want +got):\n%s", d)
	}

	b.TextSetMatrix(math.Pi/2, 100, 200)
	m := b.TextLineMatrix()
	want := matrix.Matrix{0, 1, -1, 0, 100, 200}
	for i := range m {
		if math.Abs(m[i]-want[i]) > 1e-9 {
			t.Fatalf("rotated matrix: expected %v, got %v", want, m)
		}
	}
	b.TextEnd()

	stm, err := b.Harvest()
	if err != nil {
		t.Fatal(err)
	}
	got := render(t, stm[3:4])
	if got != "0 1 -1 0 100 200 Tm\n" {
		t.Errorf("unexpected Tm operator %q", got)
	}

	b = New(testFonts)
	b.TextBegin()
	b.TextMoveOffset(1, 1)
	b.TextEnd()
	b.TextBegin()
	if d := cmp.Diff(matrix.Identity, b.TextLineMatrix()); d != "" {
		t.Errorf("BT does not reset the text matrix (-want +got):\n%s", d)
	}
}

func TestCurvesAndDashes(t *testing.T) {
	b := New(nil)
	b.SetLineDash([]float64{3, 1}, 0.5)
	b.MoveTo(0, 0)
	b.CurveTo(1, 2, 3, 4, 5, 6)
	b.ClosePath()
	b.FillAndStroke()
	stm, err := b.Harvest()
	if err != nil {
		t.Fatal(err)
	}
	want := "[3 1] 0.5 d\n0 0 m\n1 2 3 4 5 6 c\nh\nB\n"
	if d := cmp.Diff(want, render(t, stm)); d != "" {
		t.Errorf("content stream mismatch (-want +got):\n%s", d)
	}

	b = New(nil)
	b.SetLineDash([]float64{0, 0}, 0)
	var geomErr *pdf.GeometryError
	if !errors.As(b.Err, &geomErr) {
		t.Errorf("all-zero dash: expected GeometryError, got %v", b.Err)
	}
}
