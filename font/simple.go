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

package font

import (
	"fmt"
	"io"
	"math"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/postscript/afm"

	"seehuhn.de/go/prepress/pdf"
)

// Simple is a non-embedded Type 1 font, described by AFM metrics and used
// with WinAnsiEncoding.
type Simple struct {
	metrics      *afm.Metrics
	bbox         rect.Rect
	missingWidth float64
	standard     bool
}

var _ Font = (*Simple)(nil)

// LoadAFM reads font metrics in AFM format and returns the corresponding
// font.  The font program is not embedded; the PDF viewer must supply it.
func LoadAFM(r io.Reader) (*Simple, error) {
	metrics, err := afm.Read(r)
	if err != nil {
		return nil, &pdf.ResourceError{Op: "load AFM", Err: err}
	}
	if metrics.FontName == "" || len(metrics.Glyphs) == 0 {
		return nil, &pdf.ResourceError{
			Op:  "load AFM",
			Err: fmt.Errorf("incomplete font metrics"),
		}
	}

	f := &Simple{
		metrics:  metrics,
		bbox:     metrics.FontBBoxPDF(),
		standard: isStandard[metrics.FontName],
	}
	if g, ok := metrics.Glyphs[".notdef"]; ok {
		f.missingWidth = g.WidthX
	} else if g, ok := metrics.Glyphs["space"]; ok {
		f.missingWidth = g.WidthX
	}
	return f, nil
}

// PostScriptName implements the [Font] interface.
func (f *Simple) PostScriptName() string {
	return f.metrics.FontName
}

// GlyphWidth implements the [Font] interface.
func (f *Simple) GlyphWidth(r rune) float64 {
	c, ok := winAnsiCode(r)
	if !ok {
		return f.missingWidth
	}
	return f.codeWidth(c)
}

func (f *Simple) codeWidth(c byte) float64 {
	g, ok := f.metrics.Glyphs[winAnsiNames[c]]
	if !ok {
		return f.missingWidth
	}
	return g.WidthX
}

// Metrics implements the [Font] interface.
func (f *Simple) Metrics() Metrics {
	return Metrics{
		BBox:         f.bbox,
		Ascent:       f.metrics.Ascent,
		Descent:      f.metrics.Descent,
		CapHeight:    f.metrics.CapHeight,
		XHeight:      f.metrics.XHeight,
		IsFixedPitch: f.metrics.IsFixedPitch,
	}
}

// Encode implements the [Font] interface.
func (f *Simple) Encode(s string) (pdf.String, error) {
	res := make(pdf.String, 0, len(s))
	for _, r := range s {
		c, ok := winAnsiCode(r)
		if !ok {
			return nil, &pdf.ResourceError{
				Op:  "encode text",
				Err: fmt.Errorf("font %s cannot show %q", f.metrics.FontName, r),
			}
		}
		res = append(res, c)
	}
	return res, nil
}

// Embed implements the [Font] interface.
//
// The standard 14 fonts are written without widths.  For all other fonts
// the /Widths array covers the range of codes used in text.
func (f *Simple) Embed(w *pdf.Writer, ref pdf.Reference, text []rune) error {
	dict := pdf.Dict{
		"Type":     pdf.Name("Font"),
		"Subtype":  pdf.Name("Type1"),
		"BaseFont": pdf.Name(f.metrics.FontName),
		"Encoding": pdf.Name("WinAnsiEncoding"),
	}
	if f.standard {
		return w.Put(ref, dict)
	}

	first, last := 255, 0
	for _, r := range text {
		if c, ok := winAnsiCode(r); ok {
			first = min(first, int(c))
			last = max(last, int(c))
		}
	}
	if first > last {
		first, last = 32, 32
	}
	widths := make(pdf.Array, 0, last-first+1)
	for c := first; c <= last; c++ {
		widths = append(widths, pdf.Number(math.Round(f.codeWidth(byte(c)))))
	}

	fdRef := w.Alloc()
	dict["FirstChar"] = pdf.Integer(first)
	dict["LastChar"] = pdf.Integer(last)
	dict["Widths"] = widths
	dict["FontDescriptor"] = fdRef

	fd := &Descriptor{
		FontName:     f.metrics.FontName,
		IsFixedPitch: f.metrics.IsFixedPitch,
		FontBBox:     f.bbox,
		Ascent:       f.metrics.Ascent,
		Descent:      f.metrics.Descent,
		CapHeight:    f.metrics.CapHeight,
		XHeight:      f.metrics.XHeight,
		StemV:        80,
		MissingWidth: f.missingWidth,
	}
	err := w.Put(ref, dict)
	if err != nil {
		return err
	}
	return w.Put(fdRef, fd.AsDict())
}

var isStandard = map[string]bool{
	"Courier":               true,
	"Courier-Bold":          true,
	"Courier-BoldOblique":   true,
	"Courier-Oblique":       true,
	"Helvetica":             true,
	"Helvetica-Bold":        true,
	"Helvetica-BoldOblique": true,
	"Helvetica-Oblique":     true,
	"Times-Roman":           true,
	"Times-Bold":            true,
	"Times-BoldItalic":      true,
	"Times-Italic":          true,
	"Symbol":                true,
	"ZapfDingbats":          true,
}
