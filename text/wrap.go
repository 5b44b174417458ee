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

// Package text breaks text into lines of a fixed number of characters.
package text

import (
	"iter"
	"strings"

	"seehuhn.de/go/prepress/pdf"
)

// Wrap splits s into chunks of at most n runes.
//
// The text is first split at newline characters.  Each line is then cut
// into pieces of n runes; only the last piece of a line can be shorter.
// An empty line gives a single empty chunk.
func Wrap(s string, n int) ([]string, error) {
	if n <= 0 {
		return nil, &pdf.GeometryError{Op: "wrap text", Msg: "chunk width must be positive"}
	}
	var res []string
	for line := range strings.SplitSeq(s, "\n") {
		for chunk := range Chunks(line, n) {
			res = append(res, chunk)
		}
	}
	return res, nil
}

// Chunks iterates over the pieces of n runes which make up a single line.
// The concatenation of all pieces equals line.  If n is not positive,
// the whole line is returned as one piece.
func Chunks(line string, n int) iter.Seq[string] {
	return func(yield func(string) bool) {
		if line == "" || n <= 0 {
			yield(line)
			return
		}

		start := 0
		count := 0
		for i := range line {
			if count == n {
				if !yield(line[start:i]) {
					return
				}
				start = i
				count = 0
			}
			count++
		}
		yield(line[start:])
	}
}
