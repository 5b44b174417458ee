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
	"bytes"
	"crypto/sha256"
	"errors"
	"fmt"
	"math"
	"os"
	"slices"

	"seehuhn.de/go/sfnt"
	"seehuhn.de/go/sfnt/cmap"
	"seehuhn.de/go/sfnt/glyph"

	"seehuhn.de/go/prepress/pdf"
)

// TrueType is a TrueType or OpenType font with glyf outlines.  The font is
// embedded as a composite font, using two-byte glyph IDs as character codes.
type TrueType struct {
	info *sfnt.Font
	data []byte
	cmap cmap.Subtable
	q    float64
}

var _ Font = (*TrueType)(nil)

// LoadTrueType reads a TrueType font from a file.
func LoadTrueType(path string) (*TrueType, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &pdf.ResourceError{Op: "load font", Path: path, Err: err}
	}
	f, err := ParseTrueType(data)
	var resErr *pdf.ResourceError
	if errors.As(err, &resErr) {
		resErr.Path = path
	}
	return f, err
}

// ParseTrueType decodes a TrueType font from memory.
func ParseTrueType(data []byte) (*TrueType, error) {
	info, err := sfnt.Read(bytes.NewReader(data))
	if err != nil {
		return nil, &pdf.ResourceError{Op: "load font", Err: err}
	}
	if !info.IsGlyf() {
		return nil, &pdf.ResourceError{
			Op:  "load font",
			Err: fmt.Errorf("%s: no TrueType outlines", info.PostScriptName()),
		}
	}
	subtable, err := info.CMapTable.GetBest()
	if err != nil {
		return nil, &pdf.ResourceError{Op: "load font", Err: err}
	}

	return &TrueType{
		info: info,
		data: data,
		cmap: subtable,
		q:    1000 / float64(info.UnitsPerEm),
	}, nil
}

// Sum returns the SHA-256 hash of the font file.
func (f *TrueType) Sum() [32]byte {
	return sha256.Sum256(f.data)
}

// PostScriptName implements the [Font] interface.
func (f *TrueType) PostScriptName() string {
	return f.info.PostScriptName()
}

// GlyphWidth implements the [Font] interface.
// Unmapped runes get the width of the .notdef glyph.
func (f *TrueType) GlyphWidth(r rune) float64 {
	return f.info.GlyphWidthPDF(f.cmap.Lookup(r))
}

// Metrics implements the [Font] interface.
func (f *TrueType) Metrics() Metrics {
	return Metrics{
		BBox:         f.info.FontBBoxPDF(),
		Ascent:       float64(f.info.Ascent) * f.q,
		Descent:      float64(f.info.Descent) * f.q,
		CapHeight:    float64(f.info.CapHeight) * f.q,
		XHeight:      float64(f.info.XHeight) * f.q,
		ItalicAngle:  f.info.ItalicAngle,
		IsFixedPitch: f.info.IsFixedPitch(),
	}
}

// Encode implements the [Font] interface.
func (f *TrueType) Encode(s string) (pdf.String, error) {
	res := make(pdf.String, 0, 2*len(s))
	for _, r := range s {
		gid := f.cmap.Lookup(r)
		if gid == 0 {
			return nil, &pdf.ResourceError{
				Op:  "encode text",
				Err: fmt.Errorf("font %s has no glyph for %q", f.PostScriptName(), r),
			}
		}
		res = append(res, byte(gid>>8), byte(gid))
	}
	return res, nil
}

// Embed implements the [Font] interface.
//
// The complete font program is embedded.  Glyph widths and the
// /ToUnicode CMap are restricted to the glyphs used for text.
func (f *TrueType) Embed(w *pdf.Writer, ref pdf.Reference, text []rune) error {
	toUni := make(map[glyph.ID]rune)
	for _, r := range text {
		gid := f.cmap.Lookup(r)
		if gid == 0 {
			continue
		}
		if prev, seen := toUni[gid]; !seen || r < prev {
			toUni[gid] = r
		}
	}
	gids := make([]glyph.ID, 0, len(toUni))
	for gid := range toUni {
		gids = append(gids, gid)
	}
	slices.Sort(gids)

	cidFontRef := w.Alloc()
	fdRef := w.Alloc()
	fontFileRef := w.Alloc()
	toUniRef := w.Alloc()

	baseFont := pdf.Name(f.PostScriptName())
	dw := math.Round(f.info.GlyphWidthPDF(0))
	fontDict := pdf.Dict{
		"Type":            pdf.Name("Font"),
		"Subtype":         pdf.Name("Type0"),
		"BaseFont":        baseFont,
		"Encoding":        pdf.Name("Identity-H"),
		"DescendantFonts": pdf.Array{cidFontRef},
		"ToUnicode":       toUniRef,
	}
	cidFontDict := pdf.Dict{
		"Type":     pdf.Name("Font"),
		"Subtype":  pdf.Name("CIDFontType2"),
		"BaseFont": baseFont,
		"CIDSystemInfo": pdf.Dict{
			"Registry":   pdf.String("Adobe"),
			"Ordering":   pdf.String("Identity"),
			"Supplement": pdf.Integer(0),
		},
		"FontDescriptor": fdRef,
		"DW":             pdf.Number(dw),
		"CIDToGIDMap":    pdf.Name("Identity"),
	}
	if wArr := f.widthArray(gids, dw); len(wArr) > 0 {
		cidFontDict["W"] = wArr
	}

	m := f.Metrics()
	fd := &Descriptor{
		FontName:     f.PostScriptName(),
		IsFixedPitch: m.IsFixedPitch,
		IsSerif:      f.info.IsSerif,
		IsSymbolic:   true,
		IsItalic:     f.info.IsItalic,
		FontBBox:     m.BBox,
		ItalicAngle:  m.ItalicAngle,
		Ascent:       m.Ascent,
		Descent:      m.Descent,
		CapHeight:    m.CapHeight,
		XHeight:      m.XHeight,
		StemV:        80,
		FontFile2:    fontFileRef,
	}

	fontFile, err := pdf.FlateStream(pdf.Dict{"Length1": pdf.Integer(len(f.data))}, f.data, true)
	if err != nil {
		return err
	}
	toUniStm, err := pdf.FlateStream(nil, toUnicodeCMap(gids, toUni), true)
	if err != nil {
		return err
	}

	for _, obj := range []struct {
		ref pdf.Reference
		obj pdf.Object
	}{
		{ref, fontDict},
		{cidFontRef, cidFontDict},
		{fdRef, fd.AsDict()},
		{fontFileRef, fontFile},
		{toUniRef, toUniStm},
	} {
		err := w.Put(obj.ref, obj.obj)
		if err != nil {
			return err
		}
	}
	return nil
}

// widthArray returns the /W array for the given, sorted glyphs.
// Consecutive glyph IDs are grouped into one run.
func (f *TrueType) widthArray(gids []glyph.ID, dw float64) pdf.Array {
	var res pdf.Array
	var run pdf.Array
	var start, next glyph.ID
	flush := func() {
		if len(run) > 0 {
			res = append(res, pdf.Integer(start), run)
		}
		run = nil
	}
	for _, gid := range gids {
		width := math.Round(f.info.GlyphWidthPDF(gid))
		if width == dw {
			continue
		}
		if len(run) == 0 || gid != next {
			flush()
			start = gid
		}
		run = append(run, pdf.Number(width))
		next = gid + 1
	}
	flush()
	return res
}

// toUnicodeCMap returns a ToUnicode CMap mapping the two-byte glyph codes
// back to text.
func toUnicodeCMap(gids []glyph.ID, toUni map[glyph.ID]rune) []byte {
	buf := &bytes.Buffer{}
	buf.WriteString(`/CIDInit /ProcSet findresource begin
12 dict begin
begincmap
/CIDSystemInfo << /Registry (Adobe) /Ordering (UCS) /Supplement 0 >> def
/CMapName /Adobe-Identity-UCS def
/CMapType 2 def
1 begincodespacerange
<0000> <FFFF>
endcodespacerange
`)
	for len(gids) > 0 {
		n := min(len(gids), 100)
		fmt.Fprintf(buf, "%d beginbfchar\n", n)
		for _, gid := range gids[:n] {
			fmt.Fprintf(buf, "<%04X> <", uint16(gid))
			for _, u := range utf16Units(toUni[gid]) {
				fmt.Fprintf(buf, "%04X", u)
			}
			buf.WriteString(">\n")
		}
		buf.WriteString("endbfchar\n")
		gids = gids[n:]
	}
	buf.WriteString(`endcmap
CMapName currentdict /CMap defineresource pop
end
end
`)
	return buf.Bytes()
}

func utf16Units(r rune) []uint16 {
	if r < 0x10000 {
		return []uint16{uint16(r)}
	}
	r -= 0x10000
	return []uint16{uint16(0xD800 + r>>10), uint16(0xDC00 + r&0x3FF)}
}
