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

// Package builder accumulates content stream operators.
//
// The methods of a [Builder] append operators to the stream in call order.
// Errors are recorded in the Err field: once an error has occurred, all
// further method calls are ignored.
package builder

import (
	"errors"
	"math"

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/prepress/font"
	"seehuhn.de/go/prepress/graphics/content"
	"seehuhn.de/go/prepress/pdf"
)

var errUnknownFont = errors.New("unknown font")

// FontSource resolves font resource names.
type FontSource interface {
	Font(name pdf.Name) (font.Font, bool)
}

// FontMap is a [FontSource] backed by a map.
type FontMap map[pdf.Name]font.Font

// Font implements the [FontSource] interface.
func (m FontMap) Font(name pdf.Name) (font.Font, bool) {
	f, ok := m[name]
	return f, ok
}

// Builder accumulates content stream operators for one edit session.
type Builder struct {
	Stream    content.Stream
	Resources *content.Resources
	Err       error

	fonts FontSource

	inText     bool
	font       font.Font
	fontSize   float64
	lineMatrix matrix.Matrix // start of the current line, in text space

	depth  int
	closed bool
}

// New creates a new Builder.  Fonts are looked up in fonts when they are
// selected using [Builder.TextSetFont].
func New(fonts FontSource) *Builder {
	return &Builder{
		Resources:  &content.Resources{},
		fonts:      fonts,
		lineMatrix: matrix.Identity,
	}
}

// emit appends an operator to the stream.
func (b *Builder) emit(name content.OpName, args ...pdf.Object) {
	b.emitText(name, "", args...)
}

func (b *Builder) emitText(name content.OpName, text string, args ...pdf.Object) {
	if b.Err != nil {
		return
	}
	if b.closed {
		b.Err = pdf.StateErrorf(string(name), "builder already harvested")
		return
	}
	b.Stream = append(b.Stream, content.Operator{Name: name, Args: args, Text: text})
}

// requireText records a StateError unless a text object is open.
func (b *Builder) requireText(op string) bool {
	if b.Err != nil {
		return false
	}
	if !b.inText {
		b.Err = pdf.StateErrorf(op, "not in a text object")
		return false
	}
	return true
}

// requirePage records a StateError if a text object is open.
func (b *Builder) requirePage(op string) bool {
	if b.Err != nil {
		return false
	}
	if b.inText {
		b.Err = pdf.StateErrorf(op, "not allowed inside a text object")
		return false
	}
	return true
}

// Harvest ends the edit session and returns the accumulated operators.
// It is an error if a text object or a saved graphics state is still open.
// After Harvest has been called, all further method calls fail.
func (b *Builder) Harvest() (content.Stream, error) {
	if b.Err != nil {
		return nil, b.Err
	}
	if b.closed {
		return nil, pdf.StateErrorf("harvest", "builder already harvested")
	}
	if b.inText {
		b.Err = pdf.StateErrorf("harvest", "unterminated text object")
		return nil, b.Err
	}
	if b.depth > 0 {
		b.Err = pdf.StateErrorf("harvest", "%d unbalanced PushGraphicsState", b.depth)
		return nil, b.Err
	}
	b.closed = true
	return b.Stream, nil
}

// IsText reports whether a text object is open.
func (b *Builder) IsText() bool {
	return b.inText
}

// TextFont returns the current font and font size.
// The font is nil if no font has been set.
func (b *Builder) TextFont() (font.Font, float64) {
	return b.font, b.fontSize
}

// TextLineMatrix returns the text line matrix, which records the start of
// the current line.
func (b *Builder) TextLineMatrix() matrix.Matrix {
	return b.lineMatrix
}

func isFinite(xs ...float64) bool {
	for _, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}
