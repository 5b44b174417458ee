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
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/postscript/afm"
)

// Helvetica is the standard font Helvetica, using WinAnsiEncoding.
var Helvetica = newHelvetica()

func newHelvetica() *Simple {
	glyphs := make(map[string]*afm.GlyphInfo, len(helveticaWidths))
	for name, w := range helveticaWidths {
		glyphs[name] = &afm.GlyphInfo{WidthX: w}
	}
	metrics := &afm.Metrics{
		Glyphs:    glyphs,
		FontName:  "Helvetica",
		FullName:  "Helvetica",
		Ascent:    718,
		Descent:   -207,
		CapHeight: 718,
		XHeight:   523,
	}
	return &Simple{
		metrics:      metrics,
		bbox:         rect.Rect{LLx: -166, LLy: -225, URx: 1000, URy: 931},
		missingWidth: 556,
		standard:     true,
	}
}

// helveticaWidths lists the advance widths of the Helvetica glyphs
// reachable through WinAnsiEncoding.
var helveticaWidths = map[string]float64{
	"space": 278, "exclam": 278, "quotedbl": 355, "numbersign": 556,
	"dollar": 556, "percent": 889, "ampersand": 667, "quotesingle": 191,
	"parenleft": 333, "parenright": 333, "asterisk": 389, "plus": 584,
	"comma": 278, "hyphen": 333, "period": 278, "slash": 278,
	"zero": 556, "one": 556, "two": 556, "three": 556, "four": 556,
	"five": 556, "six": 556, "seven": 556, "eight": 556, "nine": 556,
	"colon": 278, "semicolon": 278, "less": 584, "equal": 584,
	"greater": 584, "question": 556, "at": 1015,
	"A": 667, "B": 667, "C": 722, "D": 722, "E": 667, "F": 611, "G": 778,
	"H": 722, "I": 278, "J": 500, "K": 667, "L": 556, "M": 833, "N": 722,
	"O": 778, "P": 667, "Q": 778, "R": 722, "S": 667, "T": 611, "U": 722,
	"V": 667, "W": 944, "X": 667, "Y": 667, "Z": 611,
	"bracketleft": 278, "backslash": 278, "bracketright": 278,
	"asciicircum": 469, "underscore": 556, "grave": 333,
	"a": 556, "b": 556, "c": 500, "d": 556, "e": 556, "f": 278, "g": 556,
	"h": 556, "i": 222, "j": 222, "k": 500, "l": 222, "m": 833, "n": 556,
	"o": 556, "p": 556, "q": 556, "r": 333, "s": 500, "t": 278, "u": 556,
	"v": 500, "w": 722, "x": 500, "y": 500, "z": 500,
	"braceleft": 334, "bar": 260, "braceright": 334, "asciitilde": 584,

	"Euro": 556, "quotesinglbase": 222, "florin": 556, "quotedblbase": 333,
	"ellipsis": 1000, "dagger": 556, "daggerdbl": 556, "circumflex": 333,
	"perthousand": 1000, "Scaron": 667, "guilsinglleft": 333, "OE": 1000,
	"Zcaron": 611, "quoteleft": 222, "quoteright": 222, "quotedblleft": 333,
	"quotedblright": 333, "bullet": 350, "endash": 556, "emdash": 1000,
	"tilde": 333, "trademark": 1000, "scaron": 500, "guilsinglright": 333,
	"oe": 944, "zcaron": 500, "Ydieresis": 667,

	"exclamdown": 333, "cent": 556, "sterling": 556, "currency": 556,
	"yen": 556, "brokenbar": 260, "section": 556, "dieresis": 333,
	"copyright": 737, "ordfeminine": 370, "guillemotleft": 556,
	"logicalnot": 584, "registered": 737, "macron": 333, "degree": 400,
	"plusminus": 584, "twosuperior": 333, "threesuperior": 333,
	"acute": 333, "mu": 556, "paragraph": 537, "periodcentered": 278,
	"cedilla": 333, "onesuperior": 333, "ordmasculine": 365,
	"guillemotright": 556, "onequarter": 834, "onehalf": 834,
	"threequarters": 834, "questiondown": 611,
	"Agrave": 667, "Aacute": 667, "Acircumflex": 667, "Atilde": 667,
	"Adieresis": 667, "Aring": 667, "AE": 1000, "Ccedilla": 722,
	"Egrave": 667, "Eacute": 667, "Ecircumflex": 667, "Edieresis": 667,
	"Igrave": 278, "Iacute": 278, "Icircumflex": 278, "Idieresis": 278,
	"Eth": 722, "Ntilde": 722, "Ograve": 778, "Oacute": 778,
	"Ocircumflex": 778, "Otilde": 778, "Odieresis": 778, "multiply": 584,
	"Oslash": 778, "Ugrave": 722, "Uacute": 722, "Ucircumflex": 722,
	"Udieresis": 722, "Yacute": 667, "Thorn": 667, "germandbls": 611,
	"agrave": 556, "aacute": 556, "acircumflex": 556, "atilde": 556,
	"adieresis": 556, "aring": 556, "ae": 889, "ccedilla": 500,
	"egrave": 556, "eacute": 556, "ecircumflex": 556, "edieresis": 556,
	"igrave": 278, "iacute": 278, "icircumflex": 278, "idieresis": 278,
	"eth": 556, "ntilde": 556, "ograve": 556, "oacute": 556,
	"ocircumflex": 556, "otilde": 556, "odieresis": 556, "divide": 584,
	"oslash": 611, "ugrave": 556, "uacute": 556, "ucircumflex": 556,
	"udieresis": 556, "yacute": 500, "thorn": 556, "ydieresis": 500,
}
