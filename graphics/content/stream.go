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

// Package content represents PDF content streams as lists of operators.
package content

import (
	"bufio"
	"fmt"
	"io"

	"seehuhn.de/go/prepress/pdf"
)

// Stream represents a PDF content stream.  The order of operators is
// significant: the stream is a replay log of drawing commands.
type Stream []Operator

// Validate checks that all operators are known, that they have the right
// number of arguments, and that text objects and saved graphics states are
// balanced.
func (s Stream) Validate() error {
	inText := false
	depth := 0
	for i, op := range s {
		err := op.check()
		if err != nil {
			return fmt.Errorf("operator %d (%s): %w", i, op.Name, err)
		}

		switch op.Name {
		case OpTextBegin:
			if inText {
				return pdf.StateErrorf("validate", "operator %d: nested text object", i)
			}
			inText = true
		case OpTextEnd:
			if !inText {
				return pdf.StateErrorf("validate", "operator %d: ET outside text object", i)
			}
			inText = false
		case OpPushGraphicsState:
			depth++
		case OpPopGraphicsState:
			if depth == 0 {
				return pdf.StateErrorf("validate", "operator %d: unbalanced Q", i)
			}
			depth--
		}
	}
	if inText {
		return pdf.StateErrorf("validate", "unterminated text object")
	}
	if depth > 0 {
		return pdf.StateErrorf("validate", "%d unbalanced q", depth)
	}
	return nil
}

// Write writes the content stream to w in PDF content stream format.
// Each operator is written on a line of its own.
func (s Stream) Write(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, op := range s {
		for _, arg := range op.Args {
			if err := arg.PDF(bw); err != nil {
				return err
			}
			if err := bw.WriteByte(' '); err != nil {
				return err
			}
		}
		if _, err := bw.WriteString(string(op.Name)); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// FontText returns, for every font used in the stream, the runes shown
// using this font.  Fonts are identified by their resource names.
func (s Stream) FontText() map[pdf.Name][]rune {
	res := make(map[pdf.Name][]rune)
	var current pdf.Name
	for _, op := range s {
		switch op.Name {
		case OpTextSetFont:
			if name, ok := op.Args[0].(pdf.Name); ok {
				current = name
				if _, seen := res[name]; !seen {
					res[name] = nil
				}
			}
		case OpTextShow:
			res[current] = append(res[current], []rune(op.Text)...)
		}
	}
	return res
}
